package bench

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Caroline-an777/VectorDBBench-0208/internal/apperr"
	"github.com/Caroline-an777/VectorDBBench-0208/internal/field"
)

var CaseTypes = []string{
	"CapacityDim128",
	"CapacityDim960",
	"Performance768D100M",
	"Performance768D10M",
	"Performance768D1M",
	"Performance768D10M1P",
	"Performance768D1M1P",
	"Performance768D10M99P",
	"Performance768D1M99P",
	"Performance1536D500K",
	"Performance1536D5M",
	"Performance1536D500K1P",
	"Performance1536D5M1P",
	"Performance1536D500K99P",
	"Performance1536D5M99P",
	"Performance1536D50K",
}

const (
	DefaultK                   = 100
	DefaultConcurrencyDuration = 30
	DefaultNumConcurrency      = "1,10,20,30,40,50,60,70,80,90,100"
	DefaultCaseType            = "Performance1536D50K"
)

// Common holds the benchmark parameters every subcommand accepts. Labels
// default to the process start time.
var Common = NewCommon(time.Now())

func NewCommon(now time.Time) field.Set {
	stamp := now.Format(time.RFC3339)
	return field.MustSet("common",
		field.Descriptor{Name: "config_file", Kind: field.String, Help: "YAML file with per-command option defaults"},
		field.Descriptor{Name: "db_label", Kind: field.String, Default: stamp, Help: "Db label, default: date in ISO format"},
		field.Descriptor{Name: "drop_old", Kind: field.Bool, Flag: true, Default: true, Help: "Drop old or skip"},
		field.Descriptor{Name: "load", Kind: field.Bool, Flag: true, Default: true, Help: "Load or skip"},
		field.Descriptor{Name: "search_serial", Kind: field.Bool, Flag: true, Default: true, Help: "Search serial or skip"},
		field.Descriptor{Name: "search_concurrent", Kind: field.Bool, Flag: true, Default: true, Help: "Search concurrent or skip"},
		field.Descriptor{Name: "dry_run", Kind: field.Bool, Flag: true, Default: false, Help: "Print just the configuration and exit without running the tasks"},
		field.Descriptor{Name: "k", Kind: field.Int, Default: DefaultK, Help: "K value for number of nearest neighbors to search"},
		field.Descriptor{Name: "concurrency_duration", Kind: field.Int, Default: DefaultConcurrencyDuration, Help: "Adjusts the duration in seconds of each concurrency search"},
		field.Descriptor{Name: "num_concurrency", Kind: field.String, Default: DefaultNumConcurrency, Help: "Comma-separated list of concurrency values to test during concurrent search"},
		field.Descriptor{Name: "case_type", Kind: field.String, Default: DefaultCaseType, Choices: CaseTypes, Help: "Case type"},
		field.Descriptor{Name: "task_label", Kind: field.String, Default: stamp, Help: "Task label, default: date in ISO format"},
	)
}

type CommonParams struct {
	ConfigFile          *string `param:"config_file" json:"config_file,omitempty"`
	DBLabel             string  `param:"db_label" json:"db_label"`
	DropOld             bool    `param:"drop_old" json:"drop_old"`
	Load                bool    `param:"load" json:"load"`
	SearchSerial        bool    `param:"search_serial" json:"search_serial"`
	SearchConcurrent    bool    `param:"search_concurrent" json:"search_concurrent"`
	DryRun              bool    `param:"dry_run" json:"dry_run"`
	K                   int     `param:"k" json:"k"`
	ConcurrencyDuration int     `param:"concurrency_duration" json:"concurrency_duration"`
	NumConcurrency      string  `param:"num_concurrency" json:"num_concurrency"`
	CaseType            string  `param:"case_type" json:"case_type"`
	TaskLabel           string  `param:"task_label" json:"task_label"`
}

// Stages lists the enabled benchmark stages in execution order.
func (p CommonParams) Stages() []string {
	var stages []string
	if p.DropOld {
		stages = append(stages, "drop_old")
	}
	if p.Load {
		stages = append(stages, "load")
	}
	if p.SearchSerial {
		stages = append(stages, "search_serial")
	}
	if p.SearchConcurrent {
		stages = append(stages, "search_concurrent")
	}
	return stages
}

// Check rejects common values no benchmark can run with and returns the
// parsed concurrency levels.
func (p CommonParams) Check() ([]int, error) {
	if p.K < 1 {
		return nil, apperr.NewInvalidOption("k", "must be at least 1")
	}
	if p.ConcurrencyDuration < 1 {
		return nil, apperr.NewInvalidOption("concurrency-duration", "must be at least 1 second")
	}
	return ParseConcurrency(p.NumConcurrency)
}

// ParseConcurrency parses a comma-separated list of positive concurrency
// levels, e.g. "1,5,10".
func ParseConcurrency(s string) ([]int, error) {
	var levels []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			return nil, apperr.NewInvalidOption("num-concurrency", fmt.Sprintf("%q is not a positive integer", part))
		}
		levels = append(levels, n)
	}
	if len(levels) == 0 {
		return nil, apperr.NewInvalidOption("num-concurrency", "no concurrency levels given")
	}
	return levels, nil
}
