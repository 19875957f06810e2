package milvus

import (
	"github.com/Caroline-an777/VectorDBBench-0208/internal/bench"
	"github.com/Caroline-an777/VectorDBBench-0208/internal/field"
)

func variant(name, short string, algo field.Set, newIndex func(field.Values) (bench.IndexConfig, error)) bench.Variant {
	return bench.Variant{
		Name:           name,
		Short:          short,
		DB:             bench.Milvus,
		Connection:     Connection,
		Algorithm:      algo,
		NewDBConfig:    NewConfig,
		NewIndexConfig: newIndex,
	}
}

// Variants returns one subcommand per supported Milvus index type.
func Variants() []bench.Variant {
	none := field.Compose("milvus-no-params")

	return []bench.Variant{
		variant("MilvusAutoIndex", "Benchmark Milvus with AUTOINDEX", none, build[AutoIndexConfig]),
		variant("MilvusFlat", "Benchmark Milvus with a FLAT index", none, build[FlatConfig]),
		variant("MilvusHNSW", "Benchmark Milvus with an HNSW index", bench.HNSWFlavor, build[HNSWConfig]),
		variant("MilvusHNSWPQ", "Benchmark Milvus with an HNSW_PQ index", hnswPQ, build[HNSWPQConfig]),
		variant("MilvusHNSWPRQ", "Benchmark Milvus with an HNSW_PRQ index", hnswPRQ, build[HNSWPRQConfig]),
		variant("MilvusHNSWSQ", "Benchmark Milvus with an HNSW_SQ index", hnswSQ, build[HNSWSQConfig]),
		variant("MilvusIVFFlat", "Benchmark Milvus with an IVF_FLAT index", bench.IVFFlat, build[IVFFlatConfig]),
		variant("MilvusIVFSQ8", "Benchmark Milvus with an IVF_SQ8 index", bench.IVFFlat, build[IVFSQ8Config]),
		variant("MilvusIVFRabitQ", "Benchmark Milvus with an IVF_RABITQ index", ivfRabitQ, build[IVFRabitQConfig]),
		variant("MilvusDISKANN", "Benchmark Milvus with a DISKANN index", diskANN, build[DiskANNConfig]),
		variant("MilvusGPUIVFFlat", "Benchmark Milvus with a GPU_IVF_FLAT index", gpuIVFFlat, build[GPUIVFFlatConfig]),
		variant("MilvusGPUBruteForce", "Benchmark Milvus with GPU_BRUTE_FORCE", gpuBruteForce, build[GPUBruteForceConfig]),
		variant("MilvusGPUIVFPQ", "Benchmark Milvus with a GPU_IVF_PQ index", gpuIVFPQ, build[GPUIVFPQConfig]),
		variant("MilvusGPUCAGRA", "Benchmark Milvus with a GPU_CAGRA index", gpuCAGRA, build[GPUCAGRAConfig]),
	}
}
