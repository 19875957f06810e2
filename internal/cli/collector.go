package cli

import (
	"os"

	"github.com/Caroline-an777/VectorDBBench-0208/internal/apperr"
	"github.com/Caroline-an777/VectorDBBench-0208/internal/field"
	"github.com/spf13/cobra"
)

// Collector gathers every parsed option of one command into a single
// field.Values mapping.
type Collector struct {
	set       field.Set
	values    []*optionValue
	byField   map[string]*optionValue
	parseErr  *apperr.InvalidOptionError
	lookupEnv func(string) (string, bool)
}

// Bind registers the synthesized options of set on cmd. Binding again
// replaces the previous options of cmd.
func Bind(cmd *cobra.Command, set field.Set) *Collector {
	cmd.ResetFlags()

	c := &Collector{
		set:       set,
		byField:   make(map[string]*optionValue, set.Len()),
		lookupEnv: os.LookupEnv,
	}

	fs := cmd.Flags()
	descs := set.Fields()
	for i, opt := range Synthesize(set) {
		v := &optionValue{desc: descs[i], opt: opt, owner: c}
		fs.Var(v, opt.Flag, opt.Usage)
		if opt.Switch {
			fs.Lookup(opt.Flag).NoOptDefVal = "true"
		}
		c.values = append(c.values, v)
		c.byField[opt.Field] = v
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		if c.parseErr != nil {
			return c.parseErr
		}
		return apperr.NewInvalidOptionWrap("", "invalid arguments", err)
	})

	return c
}

func (c *Collector) reset() {
	c.parseErr = nil
	for _, v := range c.values {
		v.val = nil
		v.set = false
	}
}

// Raw returns the value of a field given on the command line or through its
// environment variable, ignoring file and declared defaults.
func (c *Collector) Raw(name string) (any, bool, error) {
	v, ok := c.byField[name]
	if !ok {
		return nil, false, nil
	}
	if v.set {
		return v.val, true, nil
	}
	return c.fromEnv(v)
}

// Collect resolves every field: command line, then environment, then
// fileDefaults, then the declared default. Required fields left unresolved
// are reported as InvalidOptionError.
func (c *Collector) Collect(fileDefaults map[string]any) (field.Values, error) {
	out := make(map[string]any, len(c.values))
	for _, v := range c.values {
		if v.set {
			out[v.desc.Name] = v.val
			continue
		}

		envVal, ok, err := c.fromEnv(v)
		if err != nil {
			return field.Values{}, err
		}
		if ok {
			out[v.desc.Name] = envVal
			continue
		}

		if fv, ok := fileDefaults[v.desc.Name]; ok {
			out[v.desc.Name] = fv
			continue
		}

		if v.desc.Default != nil {
			out[v.desc.Name] = v.desc.Default
			continue
		}

		if v.desc.Required {
			return field.Values{}, apperr.NewInvalidOption(v.opt.Flag, "missing required option")
		}
	}
	return field.NewValues(out), nil
}

func (c *Collector) fromEnv(v *optionValue) (any, bool, error) {
	if v.desc.Env == "" {
		return nil, false, nil
	}
	raw, ok := c.lookupEnv(v.desc.Env)
	if !ok {
		return nil, false, nil
	}
	parsed, err := v.desc.Parse(raw)
	if err != nil {
		msg := "from $" + v.desc.Env + ": " + err.Error()
		if v.desc.Secret {
			msg = "from $" + v.desc.Env + ": value rejected"
		}
		return nil, false, apperr.NewInvalidOption(v.opt.Flag, msg)
	}
	return parsed, true, nil
}
