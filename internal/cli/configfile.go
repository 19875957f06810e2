package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/Caroline-an777/VectorDBBench-0208/internal/apperr"
	"github.com/Caroline-an777/VectorDBBench-0208/internal/field"
	"gopkg.in/yaml.v3"
)

// ConfigFile holds per-command parameter defaults:
//
//	MilvusHNSW:
//	  uri: http://localhost:19530
//	  m: 16
//	  ef-construction: 200
type ConfigFile map[string]map[string]any

func LoadConfigFile(path string) (ConfigFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return ParseConfigFile(data)
}

func ParseConfigFile(data []byte) (ConfigFile, error) {
	var cf ConfigFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse config file YAML: %w", err)
	}
	if cf == nil {
		cf = ConfigFile{}
	}
	return cf, nil
}

// Defaults returns the typed defaults the file declares for command. Keys
// may be spelled with underscores or hyphens; values go through the same
// parsing and choice checks as command-line input.
func (cf ConfigFile) Defaults(command string, set field.Set) (map[string]any, error) {
	section, ok := cf[command]
	if !ok {
		return nil, nil
	}

	out := make(map[string]any, len(section))
	for key, raw := range section {
		name := strings.ReplaceAll(key, "-", "_")
		d, ok := set.Get(name)
		if !ok {
			return nil, apperr.NewInvalidOption(key, fmt.Sprintf("config file: %s has no such option", command))
		}
		if raw == nil {
			continue
		}
		parsed, err := d.Parse(stringify(raw))
		if err != nil {
			msg := err.Error()
			if d.Secret {
				msg = "value rejected"
			}
			return nil, apperr.NewInvalidOption(d.FlagName(), "config file: "+msg)
		}
		out[name] = parsed
	}
	return out, nil
}

func stringify(v any) string {
	if list, ok := v.([]any); ok {
		parts := make([]string, len(list))
		for i, item := range list {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprint(v)
}
