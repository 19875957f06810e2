package bench

import (
	"context"
	"errors"
	"maps"

	"github.com/Caroline-an777/VectorDBBench-0208/internal/apperr"
	"github.com/Caroline-an777/VectorDBBench-0208/internal/field"
	"github.com/Caroline-an777/VectorDBBench-0208/pkg/secret"
)

var testConnection = field.MustSet("test-conn",
	field.Descriptor{Name: "uri", Kind: field.String, Required: true},
	field.Descriptor{Name: "password", Kind: field.String, Secret: true},
	field.Descriptor{Name: "num_shards", Kind: field.Int, Default: 1},
)

type testConn struct {
	URI       secret.Value `param:"uri"`
	Password  secret.Value `param:"password"`
	NumShards int          `param:"num_shards"`
}

func (c *testConn) Validate() error {
	if c.NumShards < 1 {
		return apperr.NewConfigBuild("num_shards", "must be at least 1")
	}
	if c.NumShards > 64 {
		return errors.New("too many shards")
	}
	return nil
}

type testHNSW struct {
	M              int `param:"m"`
	EFConstruction int `param:"ef_construction"`
	EF             int `param:"ef_search"`
}

func (c *testHNSW) IndexType() string { return "HNSW" }

func (c *testHNSW) IndexParams() map[string]any {
	return map[string]any{"M": c.M, "efConstruction": c.EFConstruction}
}

func (c *testHNSW) SearchParams() map[string]any { return map[string]any{"ef": c.EF} }

func (c *testHNSW) Validate() error {
	if c.M < 2 {
		return apperr.NewConfigBuild("m", "must be at least 2")
	}
	return nil
}

func newTestConn(vals field.Values) (DBConfig, error) {
	var c testConn
	if err := field.Decode(vals, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func newTestHNSW(vals field.Values) (IndexConfig, error) {
	var c testHNSW
	if err := field.Decode(vals, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func testVariant() Variant {
	return Variant{
		Name:           "TestHNSW",
		DB:             Milvus,
		Connection:     testConnection,
		Algorithm:      HNSWFlavor,
		NewDBConfig:    newTestConn,
		NewIndexConfig: newTestHNSW,
	}
}

type recordingRunner struct {
	tasks []Task
	err   error
}

func (r *recordingRunner) Run(_ context.Context, t Task) error {
	r.tasks = append(r.tasks, t)
	return r.err
}

// parsed returns the mapping the collector would produce for v with only
// declared defaults, overlaid with extra.
func parsed(v Variant, extra map[string]any) field.Values {
	m := make(map[string]any)
	for _, d := range v.Fields().Fields() {
		if d.Default != nil {
			m[d.Name] = d.Default
		}
	}
	maps.Copy(m, extra)
	return field.NewValues(m)
}
