package runner

import (
	"io"
	"os"
)

const DefaultVersion = "dev"

type Config struct {
	// Out receives the plan table.
	Out io.Writer
	// JSONPath, when set, also writes the plan as JSON.
	JSONPath string
	Version  string
}

func DefaultConfig() Config {
	return Config{
		Out:     os.Stdout,
		Version: DefaultVersion,
	}
}
