package report

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Caroline-an777/VectorDBBench-0208/internal/bench/benchtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	task := benchtest.Task()
	r := Generate("v1", task)

	assert.Equal(t, "v1", r.Meta.Version)
	assert.False(t, r.Meta.Timestamp.IsZero())
	require.Len(t, r.Tasks, 1)

	tp := r.Tasks[0]
	assert.Equal(t, task.ID.String(), tp.ID)
	assert.Equal(t, "Milvus", tp.DB)
	assert.Equal(t, "HNSW", tp.IndexType)
	assert.Equal(t, []string{"drop_old", "load", "search_serial"}, tp.Stages)
	assert.Equal(t, map[string]any{"M": 16}, tp.IndexParams)
	assert.Equal(t, map[string]any{"ef": 64}, tp.SearchParams)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(Generate("v1", benchtest.Task()), &buf)
	out := buf.String()

	assert.Contains(t, out, "=== VectorDB Benchmark Plan ===")
	assert.Contains(t, out, "--- Task: MilvusHNSW (7d444840-9dc0-11d1-b245-5ffdce74fad2) ---")
	assert.Contains(t, out, "Concurrency")
	assert.Contains(t, out, "1, 10")
	assert.Contains(t, out, "30s")
	assert.Regexp(t, `build\s+M\s+16`, out)
	assert.Regexp(t, `search\s+ef\s+64`, out)
	assert.NotContains(t, out, "hunter2")
	assert.NotContains(t, out, "localhost")
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans", "plan.json")
	require.NoError(t, WriteJSON(Generate("v1", benchtest.Task()), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hunter2")

	var decoded struct {
		Tasks []struct {
			Variant  string         `json:"variant"`
			DBConfig map[string]any `json:"db_config"`
		} `json:"tasks"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Tasks, 1)
	assert.Equal(t, "MilvusHNSW", decoded.Tasks[0].Variant)
	assert.Equal(t, "**********", decoded.Tasks[0].DBConfig["password"])
}

func TestWriteJSON_EncodeFailureKeepsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte("previous"), 0o644))

	r := &Report{Tasks: []TaskPlan{{IndexParams: map[string]any{"refine_k": math.NaN()}}}}
	err := WriteJSON(r, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encode report")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
}
