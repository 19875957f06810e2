package report

import (
	"time"

	"github.com/Caroline-an777/VectorDBBench-0208/internal/bench"
)

func Generate(version string, tasks ...bench.Task) *Report {
	r := &Report{
		Meta: PlanMeta{
			Version:     version,
			Timestamp:   time.Now().UTC(),
			Environment: NewEnvironmentInfo(),
		},
	}

	for _, t := range tasks {
		r.Tasks = append(r.Tasks, TaskPlan{
			ID:                  t.ID.String(),
			DB:                  t.DB.String(),
			Variant:             t.Variant,
			IndexType:           t.IndexConfig.IndexType(),
			DBLabel:             t.Common.DBLabel,
			TaskLabel:           t.Common.TaskLabel,
			CaseType:            t.Common.CaseType,
			K:                   t.Common.K,
			ConcurrencyDuration: t.Common.ConcurrencyDuration,
			Concurrency:         t.Concurrency,
			Stages:              t.Common.Stages(),
			DryRun:              t.Common.DryRun,
			DBConfig:            t.DBConfig,
			IndexParams:         t.IndexConfig.IndexParams(),
			SearchParams:        t.IndexConfig.SearchParams(),
		})
	}

	return r
}
