package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/Caroline-an777/VectorDBBench-0208/internal/apperr"
	"github.com/Caroline-an777/VectorDBBench-0208/internal/bench"
	"github.com/Caroline-an777/VectorDBBench-0208/internal/bench/engine"
	"github.com/Caroline-an777/VectorDBBench-0208/internal/bench/runner"
	"github.com/Caroline-an777/VectorDBBench-0208/internal/cli"
	"github.com/Caroline-an777/VectorDBBench-0208/internal/clients/milvus"
	"github.com/spf13/cobra"
)

const (
	envLogLevel = "LOG_LEVEL"
	envEngine   = "VDBBENCH_ENGINE"
)

type globalOptions struct {
	logLevel string
	engine   string
	planOut  string
}

type app struct {
	registry *cli.Registry
	runner   *runner.Runner
	opts     globalOptions
	stdout   io.Writer
	stderr   io.Writer
}

func newApp(stdout, stderr io.Writer) *app {
	a := &app{stdout: stdout, stderr: stderr}
	a.registry = cli.NewRegistry("vdbbench", "Plan and run vector database benchmarks",
		cli.WithConfigFile("config_file"),
		cli.WithStderr(stderr),
	)

	root := a.registry.Root()
	root.Version = version
	root.SetOut(stdout)

	pf := root.PersistentFlags()
	pf.StringVar(&a.opts.logLevel, "log-level", envOr(envLogLevel, "info"),
		"Log level [debug|info|warn|error] [env "+envLogLevel+"]")
	pf.StringVar(&a.opts.engine, "engine", os.Getenv(envEngine),
		"Engine executing tasks, exec:<command> or api:<url>; tasks are only planned when empty [env "+envEngine+"]")
	pf.StringVar(&a.opts.planOut, "plan-out", "", "Also write the task plan as JSON to this path")
	root.PersistentPreRunE = func(*cobra.Command, []string) error {
		return a.setup()
	}

	// Definition errors are kept by the registry and reported by Invoke.
	_ = bench.NewDispatcher(bench.RunnerFunc(a.run)).Register(a.registry, milvus.Variants()...)
	return a
}

func (a *app) Invoke(ctx context.Context, argv []string) int {
	code := a.registry.Invoke(ctx, argv)
	if a.runner != nil {
		if err := a.runner.Close(); err != nil {
			slog.Warn("Failed to close engine", "error", err)
		}
	}
	return code
}

func (a *app) setup() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.opts.logLevel)); err != nil {
		return apperr.NewInvalidOptionWrap("log-level", "invalid level", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level})))

	spec, err := engine.ParseSpec(a.opts.engine)
	if err != nil {
		return apperr.NewInvalidOptionWrap("engine", "invalid engine", err)
	}
	eng, err := engine.Create(spec)
	if err != nil {
		return apperr.NewInvalidOptionWrap("engine", "invalid engine", err)
	}

	cfg := runner.DefaultConfig()
	cfg.Out = a.stdout
	cfg.JSONPath = a.opts.planOut
	cfg.Version = version
	a.runner = runner.New(cfg, eng)
	return nil
}

func (a *app) run(ctx context.Context, t bench.Task) error {
	return a.runner.Run(ctx, t)
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
