package trace

import (
	"fmt"
	"io"
	"sort"
)

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDecisions   int
	AdmittedCount    int
	RejectedCount    int
	UniqueLines      int
	LineDistribution map[int]int    // line index → customers admitted
	KindDistribution map[string]int // line kind → customers admitted
	Closures         int
	Displaced        int
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		LineDistribution: make(map[int]int),
		KindDistribution: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalDecisions = len(st.Admissions)
	for _, a := range st.Admissions {
		if !a.Admitted {
			summary.RejectedCount++
			continue
		}
		summary.AdmittedCount++
		summary.LineDistribution[a.Line]++
		summary.KindDistribution[a.LineKind]++
	}
	summary.UniqueLines = len(summary.LineDistribution)

	summary.Closures = len(st.Closures)
	for _, c := range st.Closures {
		summary.Displaced += len(c.Displaced)
	}
	return summary
}

// Print writes a human-readable summary to w, lines in index order.
func (s *TraceSummary) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Decision Trace ===")
	fmt.Fprintf(w, "Decisions            : %d\n", s.TotalDecisions)
	fmt.Fprintf(w, "Admitted             : %d\n", s.AdmittedCount)
	fmt.Fprintf(w, "Rejected             : %d\n", s.RejectedCount)
	lines := make([]int, 0, len(s.LineDistribution))
	for l := range s.LineDistribution {
		lines = append(lines, l)
	}
	sort.Ints(lines)
	for _, l := range lines {
		fmt.Fprintf(w, "  line %-3d           : %d\n", l, s.LineDistribution[l])
	}
	fmt.Fprintf(w, "Closures             : %d (displaced %d)\n", s.Closures, s.Displaced)
}
