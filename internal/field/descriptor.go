package field

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Caroline-an777/VectorDBBench-0208/internal/apperr"
)

type Kind string

const (
	String Kind = "string"
	Int    Kind = "int"
	Float  Kind = "float"
	Bool   Kind = "bool"
)

// Descriptor declares a single named parameter.
type Descriptor struct {
	Name     string
	Kind     Kind
	Required bool
	// Default is nil when the parameter has no default.
	Default any
	// Choices is a closed set of allowed values, matched case-insensitively.
	Choices []string
	Help    string
	// Env names an environment variable consulted when the option is not given.
	Env string
	// Flag makes a Bool parameter usable as a bare switch (--dry-run).
	Flag bool
	// Secret values are never echoed in usage, logs or error messages.
	Secret bool
}

// FlagName derives the command-line spelling of the descriptor name.
func (d Descriptor) FlagName() string {
	return strings.ReplaceAll(d.Name, "_", "-")
}

func (d Descriptor) Validate() error {
	if d.Name == "" {
		return apperr.NewDefinition("descriptor without name")
	}
	switch d.Kind {
	case String, Int, Float, Bool:
	default:
		return apperr.NewDefinition("field %q has unsupported kind %q", d.Name, d.Kind)
	}
	if d.Flag && d.Kind != Bool {
		return apperr.NewDefinition("field %q: only bool fields can be switches", d.Name)
	}
	if d.Secret && (d.Kind != String || d.Default != nil || len(d.Choices) > 0) {
		return apperr.NewDefinition("field %q: secrets must be plain string fields without default", d.Name)
	}
	if len(d.Choices) > 0 && d.Kind != String {
		return apperr.NewDefinition("field %q: choices require a string field", d.Name)
	}
	if d.Default == nil {
		return nil
	}
	if !d.accepts(d.Default) {
		return apperr.NewDefinition("field %q: default %v is not a %s", d.Name, d.Default, d.Kind)
	}
	if len(d.Choices) > 0 {
		if _, ok := d.choice(d.Default.(string)); !ok {
			return apperr.NewDefinition("field %q: default %q is not one of %s", d.Name, d.Default, strings.Join(d.Choices, ", "))
		}
	}
	return nil
}

// Parse converts raw text into the typed value for this descriptor.
// Choice-constrained values are normalized to the declared spelling.
func (d Descriptor) Parse(raw string) (any, error) {
	switch d.Kind {
	case String:
		if len(d.Choices) == 0 {
			return raw, nil
		}
		c, ok := d.choice(raw)
		if !ok {
			return nil, fmt.Errorf("%q is not one of %s", raw, strings.Join(d.Choices, ", "))
		}
		return c, nil
	case Int:
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("%q is not a valid integer", raw)
		}
		return v, nil
	case Float:
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%q is not a valid float", raw)
		}
		return v, nil
	case Bool:
		return parseBool(raw)
	default:
		return nil, fmt.Errorf("unsupported kind %q", d.Kind)
	}
}

func (d Descriptor) choice(raw string) (string, bool) {
	for _, c := range d.Choices {
		if strings.EqualFold(c, raw) {
			return c, true
		}
	}
	return "", false
}

func (d Descriptor) accepts(v any) bool {
	switch d.Kind {
	case String:
		_, ok := v.(string)
		return ok
	case Int:
		_, ok := v.(int)
		return ok
	case Float:
		f, ok := v.(float64)
		return ok && !math.IsNaN(f) && !math.IsInf(f, 0)
	case Bool:
		_, ok := v.(bool)
		return ok
	}
	return false
}

func parseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "t", "yes", "y", "on":
		return true, nil
	case "0", "false", "f", "no", "n", "off":
		return false, nil
	}
	return false, fmt.Errorf("%q is not a valid boolean", raw)
}
