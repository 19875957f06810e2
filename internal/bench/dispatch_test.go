package bench

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/Caroline-an777/VectorDBBench-0208/internal/apperr"
	"github.com/Caroline-an777/VectorDBBench-0208/internal/cli"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hnswArgs = map[string]any{
	"uri":             "http://localhost:19530",
	"m":               16,
	"ef_construction": 200,
	"ef_search":       64,
}

func TestDispatcher_Dispatch(t *testing.T) {
	rr := &recordingRunner{}
	d := NewDispatcher(rr)
	id := uuid.New()
	d.newID = func() uuid.UUID { return id }

	err := d.Dispatch(context.Background(), testVariant(), parsed(testVariant(), hnswArgs))
	require.NoError(t, err)
	require.Len(t, rr.tasks, 1)

	task := rr.tasks[0]
	assert.Equal(t, id, task.ID)
	assert.Equal(t, Milvus, task.DB)
	assert.Equal(t, "TestHNSW", task.Variant)

	conn := task.DBConfig.(*testConn)
	uri, ok := conn.URI.Reveal()
	assert.True(t, ok)
	assert.Equal(t, "http://localhost:19530", uri)
	assert.False(t, conn.Password.IsSet())
	assert.Equal(t, 1, conn.NumShards)

	assert.Equal(t, &testHNSW{M: 16, EFConstruction: 200, EF: 64}, task.IndexConfig)

	assert.Equal(t, DefaultK, task.Common.K)
	assert.Equal(t, DefaultCaseType, task.Common.CaseType)
	assert.Nil(t, task.Common.ConfigFile)
	assert.Equal(t, []int{1, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}, task.Concurrency)
}

func TestDispatcher_DispatchErrors(t *testing.T) {
	tests := []struct {
		name  string
		extra map[string]any
		check func(t *testing.T, err error)
	}{
		{
			name:  "connection rejected",
			extra: map[string]any{"num_shards": 0},
			check: func(t *testing.T, err error) {
				var ce *apperr.ConfigBuildError
				require.True(t, errors.As(err, &ce))
				assert.Equal(t, "num_shards", ce.Field)
				assert.Equal(t, apperr.ExitFailure, apperr.ExitCode(err))
			},
		},
		{
			name:  "untyped validation error is wrapped",
			extra: map[string]any{"num_shards": 65},
			check: func(t *testing.T, err error) {
				var ce *apperr.ConfigBuildError
				require.True(t, errors.As(err, &ce))
				assert.Contains(t, err.Error(), "too many shards")
			},
		},
		{
			name:  "index rejected",
			extra: map[string]any{"m": 1},
			check: func(t *testing.T, err error) {
				var ce *apperr.ConfigBuildError
				require.True(t, errors.As(err, &ce))
				assert.Equal(t, "m", ce.Field)
			},
		},
		{
			name:  "bad concurrency list",
			extra: map[string]any{"num_concurrency": "1,x"},
			check: func(t *testing.T, err error) {
				var ie *apperr.InvalidOptionError
				require.True(t, errors.As(err, &ie))
				assert.Equal(t, "num-concurrency", ie.Option)
			},
		},
		{
			name:  "unknown parameter",
			extra: map[string]any{"bogus": 1},
			check: func(t *testing.T, err error) {
				// parameters outside every partition never reach a constructor
				assert.NoError(t, err)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := &recordingRunner{}
			args := parsed(testVariant(), hnswArgs)
			merged := make(map[string]any)
			for _, n := range args.Names() {
				merged[n], _ = args.Get(n)
			}
			for k, v := range tt.extra {
				merged[k] = v
			}

			err := NewDispatcher(rr).Dispatch(context.Background(), testVariant(), parsed(testVariant(), merged))
			tt.check(t, err)
			if err != nil {
				assert.Empty(t, rr.tasks)
			}
		})
	}
}

func TestDispatcher_RunnerError(t *testing.T) {
	rr := &recordingRunner{err: errors.New("engine crashed")}

	err := NewDispatcher(rr).Dispatch(context.Background(), testVariant(), parsed(testVariant(), hnswArgs))
	assert.EqualError(t, err, "engine crashed")
	assert.Len(t, rr.tasks, 1)
}

func TestDispatcher_Register(t *testing.T) {
	rr := &recordingRunner{}
	d := NewDispatcher(rr)
	reg := cli.NewRegistry("vdbbench", "test", cli.WithStderr(&bytes.Buffer{}))

	require.NoError(t, d.Register(reg, testVariant()))
	assert.Equal(t, []string{"TestHNSW"}, reg.List())

	code := reg.Invoke(context.Background(), []string{"TestHNSW",
		"--uri", "http://localhost:19530", "--password", "secret",
		"--m", "16", "--ef-construction", "200", "--ef-search", "64",
		"--skip-drop-old=false", "--drop-old=false", "--k", "10", "--num-concurrency", "1,2",
	})
	require.Equal(t, apperr.ExitUsage, code, "unknown flag is rejected")
	assert.Empty(t, rr.tasks)

	code = reg.Invoke(context.Background(), []string{"TestHNSW",
		"--uri", "http://localhost:19530", "--password", "secret",
		"--m", "16", "--ef-construction", "200", "--ef-search", "64",
		"--drop-old=false", "--k", "10", "--num-concurrency", "1,2",
	})
	require.Equal(t, apperr.ExitOK, code)
	require.Len(t, rr.tasks, 1)

	task := rr.tasks[0]
	pw, ok := task.DBConfig.(*testConn).Password.Reveal()
	assert.True(t, ok)
	assert.Equal(t, "secret", pw)
	assert.False(t, task.Common.DropOld)
	assert.Equal(t, []string{"load", "search_serial", "search_concurrent"}, task.Common.Stages())
	assert.Equal(t, 10, task.Common.K)
	assert.Equal(t, []int{1, 2}, task.Concurrency)
}

func TestDispatcher_RegisterBrokenVariant(t *testing.T) {
	d := NewDispatcher(&recordingRunner{})
	reg := cli.NewRegistry("vdbbench", "test", cli.WithStderr(&bytes.Buffer{}))

	broken := testVariant()
	broken.Name = "Broken"
	broken.Algorithm = testConnection

	err := d.Register(reg, testVariant(), broken)
	var de *apperr.DefinitionError
	require.True(t, errors.As(err, &de))
	assert.Empty(t, reg.List())
	assert.Equal(t, apperr.ExitUsage, reg.Invoke(context.Background(), []string{"TestHNSW", "--help"}))
}
