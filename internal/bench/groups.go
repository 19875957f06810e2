package bench

import "github.com/Caroline-an777/VectorDBBench-0208/internal/field"

// Parameter groups shared by backends. Client packages compose them into
// their variants and may override single descriptors.
var (
	HNSWFlavor = field.MustSet("hnsw",
		field.Descriptor{Name: "m", Kind: field.Int, Required: true, Help: "hnsw m"},
		field.Descriptor{Name: "ef_construction", Kind: field.Int, Required: true, Help: "hnsw ef-construction"},
		field.Descriptor{Name: "ef_search", Kind: field.Int, Required: true, Help: "hnsw ef-search"},
	)

	IVFFlat = field.MustSet("ivf-flat",
		field.Descriptor{Name: "nlist", Kind: field.Int, Required: true, Help: "Number of inverted lists"},
		field.Descriptor{Name: "nprobe", Kind: field.Int, Required: true, Help: "Number of probes"},
	)

	Refine = field.MustSet("refine",
		field.Descriptor{Name: "refine", Kind: field.Bool, Required: true, Help: "Whether refined data is reserved during index building."},
		field.Descriptor{Name: "refine_type", Kind: field.String, Required: true, Help: "The data type of the refine index to use."},
		field.Descriptor{Name: "refine_k", Kind: field.Float, Required: true, Help: "The magnification factor of refine compared to k."},
	)
)
