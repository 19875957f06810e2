package milvus

import (
	"fmt"
	"slices"

	"github.com/Caroline-an777/VectorDBBench-0208/internal/apperr"
	"github.com/Caroline-an777/VectorDBBench-0208/internal/bench"
	"github.com/Caroline-an777/VectorDBBench-0208/internal/field"
)

const (
	IndexAutoIndex     = "AUTOINDEX"
	IndexFlat          = "FLAT"
	IndexHNSW          = "HNSW"
	IndexHNSWPQ        = "HNSW_PQ"
	IndexHNSWPRQ       = "HNSW_PRQ"
	IndexHNSWSQ        = "HNSW_SQ"
	IndexIVFFlat       = "IVF_FLAT"
	IndexIVFSQ8        = "IVF_SQ8"
	IndexIVFRabitQ     = "IVF_RABITQ"
	IndexDiskANN       = "DISKANN"
	IndexGPUIVFFlat    = "GPU_IVF_FLAT"
	IndexGPUBruteForce = "GPU_BRUTE_FORCE"
	IndexGPUIVFPQ      = "GPU_IVF_PQ"
	IndexGPUCAGRA      = "GPU_CAGRA"
)

// build decodes vals into a fresh T.
func build[T any, P interface {
	*T
	bench.IndexConfig
}](vals field.Values) (bench.IndexConfig, error) {
	var cfg T
	if err := field.Decode(vals, &cfg); err != nil {
		return nil, err
	}
	return P(&cfg), nil
}

func atLeast(name string, v, lo int) error {
	if v < lo {
		return apperr.NewConfigBuild(name, fmt.Sprintf("must be at least %d, got %d", lo, v))
	}
	return nil
}

func within(name string, v, lo, hi int) error {
	if v < lo || v > hi {
		return apperr.NewConfigBuild(name, fmt.Sprintf("must be in [%d, %d], got %d", lo, hi, v))
	}
	return nil
}

type AutoIndexConfig struct{}

func (AutoIndexConfig) IndexType() string            { return IndexAutoIndex }
func (AutoIndexConfig) IndexParams() map[string]any  { return map[string]any{} }
func (AutoIndexConfig) SearchParams() map[string]any { return map[string]any{} }
func (AutoIndexConfig) Validate() error              { return nil }

type FlatConfig struct{}

func (FlatConfig) IndexType() string            { return IndexFlat }
func (FlatConfig) IndexParams() map[string]any  { return map[string]any{} }
func (FlatConfig) SearchParams() map[string]any { return map[string]any{} }
func (FlatConfig) Validate() error              { return nil }

type HNSWConfig struct {
	M              int `param:"m" json:"M"`
	EFConstruction int `param:"ef_construction" json:"efConstruction"`
	EF             int `param:"ef_search" json:"ef"`
}

func (c HNSWConfig) IndexType() string { return IndexHNSW }

func (c HNSWConfig) IndexParams() map[string]any {
	return map[string]any{"M": c.M, "efConstruction": c.EFConstruction}
}

func (c HNSWConfig) SearchParams() map[string]any {
	return map[string]any{"ef": c.EF}
}

func (c HNSWConfig) Validate() error {
	if err := within("m", c.M, 2, 2048); err != nil {
		return err
	}
	if err := atLeast("ef_construction", c.EFConstruction, 1); err != nil {
		return err
	}
	return atLeast("ef_search", c.EF, 1)
}

// QuantTypes are the scalar types accepted for refine and SQ data.
var QuantTypes = []string{"SQ6", "SQ8", "BF16", "FP16", "FP32"}

type RefineConfig struct {
	Refine     bool    `param:"refine" json:"refine"`
	RefineType string  `param:"refine_type" json:"refine_type"`
	RefineK    float64 `param:"refine_k" json:"refine_k"`
}

func (r RefineConfig) validateRefine() error {
	if !slices.Contains(QuantTypes, r.RefineType) {
		return apperr.NewConfigBuild("refine_type", fmt.Sprintf("unsupported type %q", r.RefineType))
	}
	if r.RefineK < 1 {
		return apperr.NewConfigBuild("refine_k", fmt.Sprintf("must be at least 1, got %g", r.RefineK))
	}
	return nil
}

func (r RefineConfig) addIndexParams(m map[string]any) {
	m["refine"] = r.Refine
	m["refine_type"] = r.RefineType
}

func (r RefineConfig) addSearchParams(m map[string]any) {
	m["refine_k"] = r.RefineK
}

type HNSWPQConfig struct {
	HNSWConfig
	RefineConfig
	NBits int `param:"nbits" json:"nbits"`
}

func (c HNSWPQConfig) IndexType() string { return IndexHNSWPQ }

func (c HNSWPQConfig) IndexParams() map[string]any {
	m := c.HNSWConfig.IndexParams()
	m["nbits"] = c.NBits
	c.addIndexParams(m)
	return m
}

func (c HNSWPQConfig) SearchParams() map[string]any {
	m := c.HNSWConfig.SearchParams()
	c.addSearchParams(m)
	return m
}

func (c HNSWPQConfig) Validate() error {
	if err := c.HNSWConfig.Validate(); err != nil {
		return err
	}
	if err := within("nbits", c.NBits, 1, 24); err != nil {
		return err
	}
	return c.validateRefine()
}

type HNSWPRQConfig struct {
	HNSWPQConfig
	NRQ int `param:"nrq" json:"nrq"`
}

func (c HNSWPRQConfig) IndexType() string { return IndexHNSWPRQ }

func (c HNSWPRQConfig) IndexParams() map[string]any {
	m := c.HNSWPQConfig.IndexParams()
	m["nrq"] = c.NRQ
	return m
}

func (c HNSWPRQConfig) SearchParams() map[string]any { return c.HNSWPQConfig.SearchParams() }

func (c HNSWPRQConfig) Validate() error {
	if err := c.HNSWPQConfig.Validate(); err != nil {
		return err
	}
	return atLeast("nrq", c.NRQ, 1)
}

type HNSWSQConfig struct {
	HNSWConfig
	RefineConfig
	SQType string `param:"sq_type" json:"sq_type"`
}

func (c HNSWSQConfig) IndexType() string { return IndexHNSWSQ }

func (c HNSWSQConfig) IndexParams() map[string]any {
	m := c.HNSWConfig.IndexParams()
	m["sq_type"] = c.SQType
	c.addIndexParams(m)
	return m
}

func (c HNSWSQConfig) SearchParams() map[string]any {
	m := c.HNSWConfig.SearchParams()
	c.addSearchParams(m)
	return m
}

func (c HNSWSQConfig) Validate() error {
	if err := c.HNSWConfig.Validate(); err != nil {
		return err
	}
	if !slices.Contains(QuantTypes, c.SQType) {
		return apperr.NewConfigBuild("sq_type", fmt.Sprintf("unsupported type %q", c.SQType))
	}
	return c.validateRefine()
}

type IVFFlatConfig struct {
	NList  int `param:"nlist" json:"nlist"`
	NProbe int `param:"nprobe" json:"nprobe"`
}

func (c IVFFlatConfig) IndexType() string { return IndexIVFFlat }

func (c IVFFlatConfig) IndexParams() map[string]any {
	return map[string]any{"nlist": c.NList}
}

func (c IVFFlatConfig) SearchParams() map[string]any {
	return map[string]any{"nprobe": c.NProbe}
}

func (c IVFFlatConfig) Validate() error {
	if err := within("nlist", c.NList, 1, 65536); err != nil {
		return err
	}
	return within("nprobe", c.NProbe, 1, c.NList)
}

type IVFSQ8Config struct {
	IVFFlatConfig
}

func (c IVFSQ8Config) IndexType() string { return IndexIVFSQ8 }

type IVFRabitQConfig struct {
	IVFFlatConfig
	RefineConfig
	RBQBitsQuery int `param:"rbq_bits_query" json:"rbq_bits_query"`
}

func (c IVFRabitQConfig) IndexType() string { return IndexIVFRabitQ }

func (c IVFRabitQConfig) IndexParams() map[string]any {
	m := c.IVFFlatConfig.IndexParams()
	c.addIndexParams(m)
	return m
}

func (c IVFRabitQConfig) SearchParams() map[string]any {
	m := c.IVFFlatConfig.SearchParams()
	m["rbq_bits_query"] = c.RBQBitsQuery
	c.addSearchParams(m)
	return m
}

func (c IVFRabitQConfig) Validate() error {
	if err := c.IVFFlatConfig.Validate(); err != nil {
		return err
	}
	if err := within("rbq_bits_query", c.RBQBitsQuery, 0, 8); err != nil {
		return err
	}
	return c.validateRefine()
}

type DiskANNConfig struct {
	SearchList int `param:"search_list" json:"search_list"`
}

func (c DiskANNConfig) IndexType() string           { return IndexDiskANN }
func (c DiskANNConfig) IndexParams() map[string]any { return map[string]any{} }

func (c DiskANNConfig) SearchParams() map[string]any {
	return map[string]any{"search_list": c.SearchList}
}

func (c DiskANNConfig) Validate() error { return atLeast("search_list", c.SearchList, 1) }

// GPUConfig holds the knobs shared by GPU indexes. RefineRatio is forwarded
// only when given.
type GPUConfig struct {
	CacheDatasetOnDevice string   `param:"cache_dataset_on_device" json:"cache_dataset_on_device"`
	RefineRatio          *float64 `param:"refine_ratio" json:"refine_ratio,omitempty"`
}

func (g GPUConfig) validateGPU() error {
	if g.RefineRatio != nil && *g.RefineRatio < 1 {
		return apperr.NewConfigBuild("refine_ratio", fmt.Sprintf("must be at least 1, got %g", *g.RefineRatio))
	}
	return nil
}

func (g GPUConfig) addIndexParams(m map[string]any) {
	m["cache_dataset_on_device"] = g.CacheDatasetOnDevice
}

func (g GPUConfig) addSearchParams(m map[string]any) {
	if g.RefineRatio != nil {
		m["refine_ratio"] = *g.RefineRatio
	}
}

type GPUIVFFlatConfig struct {
	IVFFlatConfig
	GPUConfig
}

func (c GPUIVFFlatConfig) IndexType() string { return IndexGPUIVFFlat }

func (c GPUIVFFlatConfig) IndexParams() map[string]any {
	m := c.IVFFlatConfig.IndexParams()
	c.GPUConfig.addIndexParams(m)
	return m
}

func (c GPUIVFFlatConfig) SearchParams() map[string]any {
	m := c.IVFFlatConfig.SearchParams()
	c.GPUConfig.addSearchParams(m)
	return m
}

func (c GPUIVFFlatConfig) Validate() error {
	if err := c.IVFFlatConfig.Validate(); err != nil {
		return err
	}
	return c.validateGPU()
}

type GPUBruteForceConfig struct {
	MetricType string `param:"metric_type" json:"metric_type"`
	Limit      int    `param:"limit" json:"limit"`
}

func (c GPUBruteForceConfig) IndexType() string { return IndexGPUBruteForce }

func (c GPUBruteForceConfig) IndexParams() map[string]any {
	return map[string]any{"metric_type": c.MetricType}
}

func (c GPUBruteForceConfig) SearchParams() map[string]any {
	return map[string]any{"metric_type": c.MetricType, "limit": c.Limit}
}

func (c GPUBruteForceConfig) Validate() error { return atLeast("limit", c.Limit, 1) }

// GPUIVFPQConfig.PQM is the number of PQ sub-vectors. It is unrelated to
// the HNSW graph degree that shares the parameter name m.
type GPUIVFPQConfig struct {
	IVFFlatConfig
	GPUConfig
	PQM   int `param:"m" json:"m"`
	NBits int `param:"nbits" json:"nbits"`
}

func (c GPUIVFPQConfig) IndexType() string { return IndexGPUIVFPQ }

func (c GPUIVFPQConfig) IndexParams() map[string]any {
	m := c.IVFFlatConfig.IndexParams()
	m["m"] = c.PQM
	m["nbits"] = c.NBits
	c.GPUConfig.addIndexParams(m)
	return m
}

func (c GPUIVFPQConfig) SearchParams() map[string]any {
	m := c.IVFFlatConfig.SearchParams()
	c.GPUConfig.addSearchParams(m)
	return m
}

func (c GPUIVFPQConfig) Validate() error {
	if err := c.IVFFlatConfig.Validate(); err != nil {
		return err
	}
	if err := atLeast("m", c.PQM, 1); err != nil {
		return err
	}
	if err := within("nbits", c.NBits, 1, 16); err != nil {
		return err
	}
	return c.validateGPU()
}

var (
	BuildAlgos = []string{"IVF_PQ", "NN_DESCENT"}
	teamSizes  = []int{0, 4, 8, 16, 32}
)

type GPUCAGRAConfig struct {
	GPUConfig
	IntermediateGraphDegree int    `param:"intermediate_graph_degree" json:"intermediate_graph_degree"`
	GraphDegree             int    `param:"graph_degree" json:"graph_degree"`
	BuildAlgo               string `param:"build_algo" json:"build_algo"`
	TeamSize                int    `param:"team_size" json:"team_size"`
	SearchWidth             int    `param:"search_width" json:"search_width"`
	ITopKSize               int    `param:"itopk_size" json:"itopk_size"`
	MinIterations           int    `param:"min_iterations" json:"min_iterations"`
	MaxIterations           int    `param:"max_iterations" json:"max_iterations"`
}

func (c GPUCAGRAConfig) IndexType() string { return IndexGPUCAGRA }

func (c GPUCAGRAConfig) IndexParams() map[string]any {
	m := map[string]any{
		"intermediate_graph_degree": c.IntermediateGraphDegree,
		"graph_degree":              c.GraphDegree,
		"build_algo":                c.BuildAlgo,
	}
	c.GPUConfig.addIndexParams(m)
	return m
}

func (c GPUCAGRAConfig) SearchParams() map[string]any {
	m := map[string]any{
		"team_size":      c.TeamSize,
		"search_width":   c.SearchWidth,
		"itopk_size":     c.ITopKSize,
		"min_iterations": c.MinIterations,
		"max_iterations": c.MaxIterations,
	}
	c.GPUConfig.addSearchParams(m)
	return m
}

func (c GPUCAGRAConfig) Validate() error {
	if err := atLeast("graph_degree", c.GraphDegree, 1); err != nil {
		return err
	}
	if c.IntermediateGraphDegree < c.GraphDegree {
		return apperr.NewConfigBuild("intermediate_graph_degree",
			fmt.Sprintf("must not be smaller than graph_degree %d, got %d", c.GraphDegree, c.IntermediateGraphDegree))
	}
	if !slices.Contains(teamSizes, c.TeamSize) {
		return apperr.NewConfigBuild("team_size", fmt.Sprintf("must be one of %v, got %d", teamSizes, c.TeamSize))
	}
	if err := atLeast("itopk_size", c.ITopKSize, 1); err != nil {
		return err
	}
	if err := atLeast("search_width", c.SearchWidth, 1); err != nil {
		return err
	}
	if c.MaxIterations != 0 && c.MinIterations > c.MaxIterations {
		return apperr.NewConfigBuild("min_iterations",
			fmt.Sprintf("must not exceed max_iterations %d, got %d", c.MaxIterations, c.MinIterations))
	}
	return c.validateGPU()
}
