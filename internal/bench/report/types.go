package report

import (
	"runtime"
	"time"

	"github.com/Caroline-an777/VectorDBBench-0208/internal/bench"
)

type Report struct {
	Meta  PlanMeta   `json:"meta"`
	Tasks []TaskPlan `json:"tasks"`
}

type PlanMeta struct {
	Version     string          `json:"version"`
	Timestamp   time.Time       `json:"timestamp"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

// TaskPlan is the printable view of one task. DBConfig keeps the original
// value so secrets go through their own redacting marshalers.
type TaskPlan struct {
	ID                  string         `json:"id"`
	DB                  string         `json:"db"`
	Variant             string         `json:"variant"`
	IndexType           string         `json:"index_type"`
	DBLabel             string         `json:"db_label"`
	TaskLabel           string         `json:"task_label"`
	CaseType            string         `json:"case_type"`
	K                   int            `json:"k"`
	ConcurrencyDuration int            `json:"concurrency_duration"`
	Concurrency         []int          `json:"concurrency"`
	Stages              []string       `json:"stages"`
	DryRun              bool           `json:"dry_run"`
	DBConfig            bench.DBConfig `json:"db_config"`
	IndexParams         map[string]any `json:"index_params"`
	SearchParams        map[string]any `json:"search_params"`
}
