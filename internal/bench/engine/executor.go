package engine

import (
	"context"
	"time"

	"github.com/Caroline-an777/VectorDBBench-0208/internal/bench"
)

// Engine executes benchmark tasks outside this process.
type Engine interface {
	Execute(ctx context.Context, t bench.Task) (*Execution, error)
	Name() string
	Close() error
}

type Execution struct {
	Elapsed time.Duration
}

// credentialed configs expose the plaintext connection secrets an engine
// needs. They are never part of the task JSON.
type credentialed interface {
	Credentials() map[string]string
}

func credentials(t bench.Task) map[string]string {
	if c, ok := t.DBConfig.(credentialed); ok {
		return c.Credentials()
	}
	return nil
}
