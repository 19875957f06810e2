// Package benchtest provides task fixtures for engine and runner tests.
package benchtest

import (
	"github.com/Caroline-an777/VectorDBBench-0208/internal/bench"
	"github.com/Caroline-an777/VectorDBBench-0208/pkg/secret"
	"github.com/google/uuid"
)

type Conn struct {
	URI      secret.Value `json:"uri"`
	Password secret.Value `json:"password"`
}

func (c *Conn) Validate() error { return nil }

func (c *Conn) String() string { return "uri=" + c.URI.String() }

func (c *Conn) Credentials() map[string]string {
	creds := make(map[string]string)
	if uri, ok := c.URI.Reveal(); ok {
		creds["TEST_URI"] = uri
	}
	if pw, ok := c.Password.Reveal(); ok {
		creds["TEST_PASSWORD"] = pw
	}
	return creds
}

type Index struct {
	M  int `json:"M"`
	EF int `json:"ef"`
}

func (c *Index) IndexType() string            { return "HNSW" }
func (c *Index) IndexParams() map[string]any  { return map[string]any{"M": c.M} }
func (c *Index) SearchParams() map[string]any { return map[string]any{"ef": c.EF} }
func (c *Index) Validate() error              { return nil }

// Task returns a fully populated task whose password is "hunter2".
func Task() bench.Task {
	return bench.Task{
		ID:      uuid.MustParse("7d444840-9dc0-11d1-b245-5ffdce74fad2"),
		DB:      bench.Milvus,
		Variant: "MilvusHNSW",
		DBConfig: &Conn{
			URI:      secret.New("http://localhost:19530"),
			Password: secret.New("hunter2"),
		},
		IndexConfig: &Index{M: 16, EF: 64},
		Common: bench.CommonParams{
			DBLabel:             "label",
			DropOld:             true,
			Load:                true,
			SearchSerial:        true,
			K:                   100,
			ConcurrencyDuration: 30,
			NumConcurrency:      "1,10",
			CaseType:            bench.DefaultCaseType,
			TaskLabel:           "task",
		},
		Concurrency: []int{1, 10},
	}
}
