package milvus

import (
	"github.com/Caroline-an777/VectorDBBench-0208/internal/bench"
	"github.com/Caroline-an777/VectorDBBench-0208/internal/field"
)

var Connection = field.MustSet("milvus",
	field.Descriptor{Name: "uri", Kind: field.String, Required: true, Env: EnvURI, Help: "uri connection string"},
	field.Descriptor{Name: "user_name", Kind: field.String, Env: EnvUser, Help: "Db username"},
	field.Descriptor{Name: "password", Kind: field.String, Secret: true, Env: EnvPassword, Help: "Db password"},
	field.Descriptor{Name: "num_shards", Kind: field.Int, Default: 1, Help: "Number of shards"},
)

// Refine narrows the generic refine_type to the types Milvus supports.
var Refine = field.Compose("milvus-refine",
	bench.Refine,
	field.MustSet("milvus-refine-type",
		field.Descriptor{Name: "refine_type", Kind: field.String, Required: true, Choices: QuantTypes,
			Help: "The data type of the refine index to use."},
	),
)

var GPU = field.MustSet("milvus-gpu",
	field.Descriptor{Name: "cache_dataset_on_device", Kind: field.String, Required: true, Choices: []string{"true", "false"},
		Help: "Keep the raw dataset in GPU memory for refinement"},
	field.Descriptor{Name: "refine_ratio", Kind: field.Float, Help: "Refine ratio, forwarded only when given"},
)

var CAGRA = field.MustSet("milvus-cagra",
	field.Descriptor{Name: "intermediate_graph_degree", Kind: field.Int, Required: true},
	field.Descriptor{Name: "graph_degree", Kind: field.Int, Required: true},
	field.Descriptor{Name: "build_algo", Kind: field.String, Required: true, Choices: BuildAlgos},
	field.Descriptor{Name: "team_size", Kind: field.Int, Required: true},
	field.Descriptor{Name: "search_width", Kind: field.Int, Required: true},
	field.Descriptor{Name: "itopk_size", Kind: field.Int, Required: true},
	field.Descriptor{Name: "min_iterations", Kind: field.Int, Required: true},
	field.Descriptor{Name: "max_iterations", Kind: field.Int, Required: true},
)

var (
	nbits = field.MustSet("nbits", field.Descriptor{Name: "nbits", Kind: field.Int, Required: true, Help: "Bits per quantized code"})

	hnswPQ = field.Compose("milvus-hnsw-pq", bench.HNSWFlavor, Refine, nbits)

	hnswPRQ = field.Compose("milvus-hnsw-prq", hnswPQ,
		field.MustSet("prq", field.Descriptor{Name: "nrq", Kind: field.Int, Required: true, Help: "The number of residual subquantizers."}),
	)

	hnswSQ = field.Compose("milvus-hnsw-sq", bench.HNSWFlavor, Refine,
		field.MustSet("sq", field.Descriptor{Name: "sq_type", Kind: field.String, Required: true, Choices: QuantTypes,
			Help: "Scalar quantizer type."}),
	)

	ivfRabitQ = field.Compose("milvus-ivf-rabitq", bench.IVFFlat,
		field.MustSet("rabitq", field.Descriptor{Name: "rbq_bits_query", Kind: field.Int, Required: true,
			Help: "Bits used to quantize the query vector, 0 keeps it unquantized"}),
		Refine,
	)

	diskANN = field.MustSet("milvus-diskann",
		field.Descriptor{Name: "search_list", Kind: field.Int, Required: true, Help: "Size of the candidate list during search"},
	)

	gpuIVFFlat = field.Compose("milvus-gpu-ivf-flat", bench.IVFFlat, GPU)

	gpuBruteForce = field.MustSet("milvus-gpu-brute-force",
		field.Descriptor{Name: "metric_type", Kind: field.String, Required: true, Choices: []string{"L2", "IP", "COSINE"},
			Help: "Metric type for brute force search"},
		field.Descriptor{Name: "limit", Kind: field.Int, Required: true, Help: "Top-k limit for search"},
	)

	// m here counts PQ sub-vectors; HNSWFlavor is never composed in.
	gpuIVFPQ = field.Compose("milvus-gpu-ivf-pq", bench.IVFFlat, GPU,
		field.MustSet("gpu-pq", field.Descriptor{Name: "m", Kind: field.Int, Required: true, Help: "Number of PQ sub-vectors"}),
		nbits,
	)

	gpuCAGRA = field.Compose("milvus-gpu-cagra", GPU, CAGRA)
)
