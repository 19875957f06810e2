package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Caroline-an777/VectorDBBench-0208/internal/apperr"
	"github.com/Caroline-an777/VectorDBBench-0208/internal/field"
	"github.com/spf13/cobra"
)

type RunFunc func(ctx context.Context, vals field.Values) error

type Command struct {
	Name   string
	Short  string
	Fields field.Set
	Run    RunFunc
	// Validate, when set, is checked at registration. A failure is reported
	// as a DefinitionError.
	Validate func() error
}

type entry struct {
	cmd       Command
	cobra     *cobra.Command
	collector *Collector
}

// Registry groups one subcommand per registered Command under a single
// cobra root. A definition error poisons the registry: nothing is listed
// and every invocation fails.
type Registry struct {
	root        *cobra.Command
	entries     []*entry
	byName      map[string]*entry
	defErr      error
	configField string
	stderr      io.Writer
}

type Opt func(*Registry)

// WithConfigFile names the field that carries the path of a YAML
// per-command defaults file.
func WithConfigFile(fieldName string) Opt {
	return func(r *Registry) { r.configField = fieldName }
}

func WithStderr(w io.Writer) Opt {
	return func(r *Registry) { r.stderr = w }
}

func NewRegistry(use, short string, opts ...Opt) *Registry {
	r := &Registry{
		root: &cobra.Command{
			Use:           use,
			Short:         short,
			SilenceUsage:  true,
			SilenceErrors: true,
		},
		byName: make(map[string]*entry),
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.root.SetErr(r.stderr)
	return r
}

func (r *Registry) Register(c Command) error {
	if err := r.register(c); err != nil {
		if r.defErr == nil {
			r.defErr = err
		}
		return err
	}
	return nil
}

func (r *Registry) register(c Command) error {
	if c.Name == "" {
		return apperr.NewDefinition("command without name")
	}
	if c.Run == nil {
		return apperr.NewDefinition("command %q has no run function", c.Name)
	}
	if _, dup := r.byName[c.Name]; dup {
		return apperr.NewDefinition("command %q registered twice", c.Name)
	}
	if c.Validate != nil {
		if err := c.Validate(); err != nil {
			var de *apperr.DefinitionError
			if errors.As(err, &de) {
				return err
			}
			return apperr.NewDefinitionWrap(fmt.Sprintf("command %q", c.Name), err)
		}
	}

	e := &entry{cmd: c}
	e.cobra = &cobra.Command{
		Use:   c.Name,
		Short: c.Short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd.Context(), e)
		},
	}
	e.collector = Bind(e.cobra, c.Fields)

	r.root.AddCommand(e.cobra)
	r.entries = append(r.entries, e)
	r.byName[c.Name] = e
	return nil
}

// Err returns the first definition error, if any.
func (r *Registry) Err() error { return r.defErr }

// List returns the registered command names in registration order.
func (r *Registry) List() []string {
	if r.defErr != nil {
		return nil
	}
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.cmd.Name
	}
	return names
}

// Root exposes the cobra root for persistent flags and hooks.
func (r *Registry) Root() *cobra.Command { return r.root }

// Invoke parses argv (without the program name), runs the selected command
// and returns the exit status.
func (r *Registry) Invoke(ctx context.Context, argv []string) int {
	if r.defErr != nil {
		slog.Error("Command definitions are invalid", "error", r.defErr)
		return apperr.ExitUsage
	}

	for _, e := range r.entries {
		e.collector.reset()
	}

	// cobra falls back to os.Args on nil
	if argv == nil {
		argv = []string{}
	}
	r.root.SetArgs(argv)
	err := r.root.ExecuteContext(ctx)
	if err == nil {
		return apperr.ExitOK
	}

	var rf *runFailure
	if errors.As(err, &rf) {
		slog.Error("Command failed", "command", rf.command, "error", rf.err)
		return apperr.ExitCode(rf.err)
	}

	slog.Error("Invalid invocation", "error", err)
	fmt.Fprintf(r.stderr, "Run '%s --help' for usage.\n", r.root.CommandPath())
	return apperr.ExitUsage
}

type runFailure struct {
	command string
	err     error
}

func (f *runFailure) Error() string { return f.command + ": " + f.err.Error() }

func (f *runFailure) Unwrap() error { return f.err }

func (r *Registry) run(ctx context.Context, e *entry) error {
	defaults, err := r.fileDefaults(e)
	if err != nil {
		return &runFailure{command: e.cmd.Name, err: err}
	}

	vals, err := e.collector.Collect(defaults)
	if err != nil {
		return &runFailure{command: e.cmd.Name, err: err}
	}

	slog.Debug("Dispatching command", "command", e.cmd.Name, "params", vals.Len())
	if err := e.cmd.Run(ctx, vals); err != nil {
		return &runFailure{command: e.cmd.Name, err: err}
	}
	return nil
}

func (r *Registry) fileDefaults(e *entry) (map[string]any, error) {
	if r.configField == "" {
		return nil, nil
	}
	raw, ok, err := e.collector.Raw(r.configField)
	if err != nil || !ok {
		return nil, err
	}
	path, _ := raw.(string)
	if path == "" {
		return nil, nil
	}

	cf, err := LoadConfigFile(path)
	if err != nil {
		return nil, apperr.NewInvalidOptionWrap(field.Descriptor{Name: r.configField}.FlagName(), "cannot load", err)
	}
	slog.Debug("Loaded config file", "path", path, "command", e.cmd.Name)
	return cf.Defaults(e.cmd.Name, e.cmd.Fields)
}
