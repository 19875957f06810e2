package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/Caroline-an777/VectorDBBench-0208/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hnswArgs = []string{
	"MilvusHNSW",
	"--uri", "http://localhost:19530",
	"--password", "hunter2",
	"--m", "16", "--ef-construction", "200", "--ef-search", "64",
}

func invoke(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv(envEngine, "")
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var stdout, stderr bytes.Buffer
	code := newApp(&stdout, &stderr).Invoke(context.Background(), args)
	return code, stdout.String(), stderr.String()
}

func TestApp_PlansTask(t *testing.T) {
	code, stdout, stderr := invoke(t, append(hnswArgs, "--dry-run")...)

	require.Equal(t, apperr.ExitOK, code, stderr)
	assert.Contains(t, stdout, "VectorDB Benchmark Plan")
	assert.Contains(t, stdout, "MilvusHNSW")
	assert.NotContains(t, stdout, "hunter2")
	assert.NotContains(t, stderr, "hunter2")
}

func TestApp_PlanOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans", "plan.json")

	code, _, stderr := invoke(t, append(hnswArgs, "--plan-out", path)...)
	require.Equal(t, apperr.ExitOK, code, stderr)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
	assert.Contains(t, string(data), `"HNSW"`)
	assert.NotContains(t, string(data), "hunter2")
}

func TestApp_ExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "no command", args: nil, want: apperr.ExitOK},
		{name: "help", args: []string{"MilvusHNSW", "--help"}, want: apperr.ExitOK},
		{name: "unknown command", args: []string{"MilvusNope"}, want: apperr.ExitUsage},
		{name: "missing required", args: hnswArgs[:len(hnswArgs)-2], want: apperr.ExitUsage},
		{name: "invalid log level", args: append([]string{"--log-level", "loud"}, hnswArgs...), want: apperr.ExitUsage},
		{name: "invalid engine", args: append([]string{"--engine", "carrier:pigeon"}, hnswArgs...), want: apperr.ExitUsage},
		{name: "invalid common option", args: append(hnswArgs, "--k", "0"), want: apperr.ExitUsage},
		{name: "config build", args: append(hnswArgs, "--num-shards", "0"), want: apperr.ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := invoke(t, tt.args...)
			assert.Equal(t, tt.want, code, stderr)
		})
	}
}

func TestApp_EngineStatus(t *testing.T) {
	path, err := exec.LookPath("false")
	if err != nil {
		t.Skip("false not available")
	}

	code, _, _ := invoke(t, append([]string{"--engine", "exec:" + path}, hnswArgs...)...)
	assert.Equal(t, 1, code)
}

func TestEnvOr(t *testing.T) {
	t.Setenv("VDB_TEST_LEVEL", "")
	assert.Equal(t, "info", envOr("VDB_TEST_LEVEL", "info"))

	t.Setenv("VDB_TEST_LEVEL", "debug")
	assert.Equal(t, "debug", envOr("VDB_TEST_LEVEL", "info"))
}
