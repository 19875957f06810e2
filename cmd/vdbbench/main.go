package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Caroline-an777/VectorDBBench-0208/internal/apperr"
	"github.com/Caroline-an777/VectorDBBench-0208/pkg/config/env"
)

var version = "dev"

func main() {
	if err := env.LoadDotEnv(".env"); err != nil {
		slog.Error("Failed to load environment", "error", err)
		os.Exit(apperr.ExitUsage)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := newApp(os.Stdout, os.Stderr).Invoke(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
