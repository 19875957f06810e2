package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Caroline-an777/VectorDBBench-0208/internal/apperr"
	"github.com/Caroline-an777/VectorDBBench-0208/internal/field"
	"github.com/spf13/pflag"
)

// Option is the command-line rendering of one field descriptor.
type Option struct {
	Field    string
	Flag     string
	Type     string
	Usage    string
	Required bool
	Default  string
	Choices  []string
	Env      string
	Switch   bool
}

// Synthesize derives one option per descriptor, in field-set order.
func Synthesize(set field.Set) []Option {
	descs := set.Fields()
	opts := make([]Option, 0, len(descs))
	for _, d := range descs {
		opts = append(opts, Option{
			Field:    d.Name,
			Flag:     d.FlagName(),
			Type:     typeName(d),
			Usage:    usage(d),
			Required: d.Required,
			Default:  formatDefault(d),
			Choices:  d.Choices,
			Env:      d.Env,
			Switch:   d.Flag,
		})
	}
	return opts
}

func typeName(d field.Descriptor) string {
	switch {
	case len(d.Choices) > 0:
		return "choice"
	case d.Kind == field.Bool && d.Flag:
		return "bool"
	case d.Kind == field.Bool:
		return "boolean"
	case d.Kind == field.Float:
		return "float"
	default:
		return string(d.Kind)
	}
}

func usage(d field.Descriptor) string {
	var b strings.Builder
	b.WriteString(d.Help)
	if len(d.Choices) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(d.Choices, "|"))
	}
	if d.Env != "" {
		fmt.Fprintf(&b, " [env %s]", d.Env)
	}
	if d.Required {
		b.WriteString(" (required)")
	}
	return strings.TrimSpace(b.String())
}

func formatDefault(d field.Descriptor) string {
	if d.Default == nil || d.Secret {
		return ""
	}
	switch v := d.Default.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// optionValue is the pflag.Value bound to one descriptor. Parsing errors are
// recorded on the collector so the typed error survives pflag's wrapping.
type optionValue struct {
	desc  field.Descriptor
	opt   Option
	val   any
	set   bool
	owner *Collector
}

func (v *optionValue) String() string {
	if v.desc.Secret {
		return ""
	}
	if !v.set {
		return v.opt.Default
	}
	return fmt.Sprint(v.val)
}

func (v *optionValue) Set(raw string) error {
	parsed, err := v.desc.Parse(raw)
	if err != nil {
		ie := apperr.NewInvalidOption(v.opt.Flag, err.Error())
		if v.desc.Secret {
			ie = apperr.NewInvalidOption(v.opt.Flag, "value rejected")
		}
		v.owner.parseErr = ie
		return ie
	}
	v.val = parsed
	v.set = true
	return nil
}

func (v *optionValue) Type() string { return v.opt.Type }

var _ pflag.Value = (*optionValue)(nil)
