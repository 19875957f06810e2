package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Caroline-an777/VectorDBBench-0208/internal/bench"
	"github.com/Caroline-an777/VectorDBBench-0208/internal/bench/engine"
	"github.com/Caroline-an777/VectorDBBench-0208/internal/bench/report"
)

// Runner prints the plan of each task and hands it to an engine. Without an
// engine tasks are planned only.
type Runner struct {
	config Config
	engine engine.Engine
}

func New(cfg Config, eng engine.Engine) *Runner {
	return &Runner{config: cfg, engine: eng}
}

func (r *Runner) Run(ctx context.Context, t bench.Task) error {
	slog.Info("Planning task",
		"task", t.ID,
		"db", t.DB,
		"variant", t.Variant,
		"index", t.IndexConfig.IndexType(),
		"connection", t.DBConfig,
		"case", t.Common.CaseType,
	)

	rep := report.Generate(r.config.Version, t)
	if r.config.Out != nil {
		report.WriteTable(rep, r.config.Out)
	}
	if r.config.JSONPath != "" {
		if err := report.WriteJSON(rep, r.config.JSONPath); err != nil {
			return err
		}
		slog.Info("Plan written", "path", r.config.JSONPath)
	}

	if t.Common.DryRun {
		slog.Info("Dry run, task not executed", "task", t.ID)
		return nil
	}
	if r.engine == nil {
		slog.Warn("No engine configured, task planned only", "task", t.ID)
		return nil
	}

	exec, err := r.engine.Execute(ctx, t)
	if err != nil {
		return fmt.Errorf("execute task %s on %s: %w", t.ID, r.engine.Name(), err)
	}
	slog.Info("Task finished", "task", t.ID, "engine", r.engine.Name(), "elapsed", exec.Elapsed)
	return nil
}

var _ bench.Runner = (*Runner)(nil)

func (r *Runner) Close() error {
	if r.engine == nil {
		return nil
	}
	return r.engine.Close()
}
