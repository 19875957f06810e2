package bench

type DB string

const Milvus DB = "Milvus"

func (d DB) String() string { return string(d) }

// DBConfig describes how to reach a database backend.
type DBConfig interface {
	Validate() error
}

// IndexConfig carries the build and search parameters of one index type.
type IndexConfig interface {
	IndexType() string
	IndexParams() map[string]any
	SearchParams() map[string]any
	Validate() error
}
