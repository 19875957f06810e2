package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Caroline-an777/VectorDBBench-0208/internal/apperr"
	"github.com/Caroline-an777/VectorDBBench-0208/internal/cli"
	"github.com/Caroline-an777/VectorDBBench-0208/internal/field"
	"github.com/google/uuid"
)

// Task is everything a benchmark engine needs to execute one invocation.
type Task struct {
	ID          uuid.UUID    `json:"id"`
	DB          DB           `json:"db"`
	Variant     string       `json:"variant"`
	DBConfig    DBConfig     `json:"db_config"`
	IndexConfig IndexConfig  `json:"index_config"`
	Common      CommonParams `json:"common"`
	Concurrency []int        `json:"concurrency"`
}

// Runner executes a task. Its error decides the exit status.
type Runner interface {
	Run(ctx context.Context, t Task) error
}

type RunnerFunc func(ctx context.Context, t Task) error

func (f RunnerFunc) Run(ctx context.Context, t Task) error { return f(ctx, t) }

// Dispatcher turns the parsed parameters of a variant into a Task.
type Dispatcher struct {
	runner Runner
	newID  func() uuid.UUID
}

func NewDispatcher(r Runner) *Dispatcher {
	return &Dispatcher{runner: r, newID: uuid.New}
}

func (d *Dispatcher) Dispatch(ctx context.Context, v Variant, vals field.Values) error {
	dbCfg, err := v.NewDBConfig(vals.Subset(v.Connection))
	if err != nil {
		return buildError("connection", err)
	}
	if err := dbCfg.Validate(); err != nil {
		return buildError("connection", err)
	}

	idxCfg, err := v.NewIndexConfig(vals.Subset(v.Algorithm))
	if err != nil {
		return buildError("index", err)
	}
	if err := idxCfg.Validate(); err != nil {
		return buildError("index", err)
	}

	var common CommonParams
	if err := field.Decode(vals.Subset(Common), &common); err != nil {
		return err
	}
	levels, err := common.Check()
	if err != nil {
		return err
	}

	t := Task{
		ID:          d.newID(),
		DB:          v.DB,
		Variant:     v.Name,
		DBConfig:    dbCfg,
		IndexConfig: idxCfg,
		Common:      common,
		Concurrency: levels,
	}
	slog.Debug("Dispatching task", "task", t.ID, "variant", v.Name, "index", idxCfg.IndexType())
	return d.runner.Run(ctx, t)
}

// Command binds v to a registry command dispatched through d.
func (d *Dispatcher) Command(v Variant) cli.Command {
	return cli.Command{
		Name:     v.Name,
		Short:    v.Short,
		Fields:   v.Fields(),
		Validate: v.Validate,
		Run: func(ctx context.Context, vals field.Values) error {
			return d.Dispatch(ctx, v, vals)
		},
	}
}

// Register adds every variant to reg. Definition errors are joined.
func (d *Dispatcher) Register(reg *cli.Registry, variants ...Variant) error {
	var errs []error
	for _, v := range variants {
		if err := reg.Register(d.Command(v)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func buildError(part string, err error) error {
	var ce *apperr.ConfigBuildError
	if isDefinition(err) || errors.As(err, &ce) {
		return fmt.Errorf("build %s config: %w", part, err)
	}
	return &apperr.ConfigBuildError{Message: "build " + part + " config", Err: err}
}
