package env

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from .env files without overriding
// variables already set. ENV_PATH, when set, names the only file to load and
// must exist; otherwise missing files among paths are skipped.
func LoadDotEnv(paths ...string) error {
	if envPath := os.Getenv("ENV_PATH"); envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			slog.Error("Failed to load environment file", "path", envPath, "error", err)
			return err
		}
		slog.Debug("Loaded environment file", "path", envPath)
		return nil
	}

	var found []string
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				slog.Debug("Skipping .env ...", "path", p)
				continue
			}
			return err
		}
		found = append(found, p)
	}
	if len(found) == 0 {
		return nil
	}
	return godotenv.Load(found...)
}
