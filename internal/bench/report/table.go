package report

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== VectorDB Benchmark Plan ===\n")

	for i := range r.Tasks {
		tp := &r.Tasks[i]
		fmt.Fprintf(tw, "\n--- Task: %s (%s) ---\n\n", tp.Variant, tp.ID)
		writeOverviewTable(tw, tp)
		writeParamsTable(tw, tp)
	}

	tw.Flush()
}

func writeOverviewTable(tw *tabwriter.Writer, tp *TaskPlan) {
	rows := [][2]string{
		{"DB", tp.DB},
		{"Connection", fmt.Sprint(tp.DBConfig)},
		{"Index", tp.IndexType},
		{"DB label", tp.DBLabel},
		{"Task label", tp.TaskLabel},
		{"Case", tp.CaseType},
		{"K", strconv.Itoa(tp.K)},
		{"Stages", fmtList(tp.Stages)},
		{"Concurrency", fmtInts(tp.Concurrency)},
		{"Duration", fmt.Sprintf("%ds", tp.ConcurrencyDuration)},
		{"Dry run", strconv.FormatBool(tp.DryRun)},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1])
	}
	fmt.Fprintln(tw)
}

func writeParamsTable(tw *tabwriter.Writer, tp *TaskPlan) {
	fmt.Fprintf(tw, "Index Parameters\n\n")

	header := []string{"Phase", "Param", "Value"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	writeParams(tw, "build", tp.IndexParams)
	writeParams(tw, "search", tp.SearchParams)

	fmt.Fprintln(tw)
}

func writeParams(tw *tabwriter.Writer, phase string, params map[string]any) {
	if len(params) == 0 {
		fmt.Fprintf(tw, "%s\t-\t-\n", phase)
		return
	}
	for _, k := range slices.Sorted(maps.Keys(params)) {
		fmt.Fprintf(tw, "%s\t%s\t%v\n", phase, k, params[k])
	}
}

func fmtList(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}

func fmtInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return fmtList(parts)
}
