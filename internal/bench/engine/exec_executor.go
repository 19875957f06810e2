package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/Caroline-an777/VectorDBBench-0208/internal/bench"
)

// ExecExecutor runs an external program per task. The task is written as
// JSON to its stdin and credentials are passed through the environment. The
// program's exit status is kept on the returned error.
type ExecExecutor struct {
	name   string
	path   string
	args   []string
	stdout io.Writer
	stderr io.Writer
}

func NewExecExecutor(name, path string, args ...string) *ExecExecutor {
	return &ExecExecutor{
		name:   name,
		path:   path,
		args:   args,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

func (e *ExecExecutor) Execute(ctx context.Context, t bench.Task) (*Execution, error) {
	payload, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("exec encode task: %w", err)
	}

	cmd := exec.CommandContext(ctx, e.path, e.args...)
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr
	cmd.Env = os.Environ()
	for k, v := range credentials(t) {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	cmd.Stdin = bytes.NewReader(payload)

	start := time.Now()
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("exec %s: %w", e.path, err)
	}

	return &Execution{Elapsed: time.Since(start)}, nil
}

func (e *ExecExecutor) Name() string { return e.name }
func (e *ExecExecutor) Close() error { return nil }
