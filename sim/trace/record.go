// Package trace provides decision-trace recording for line-selection analysis.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// AdmissionRecord captures a single line-selection decision.
type AdmissionRecord struct {
	Customer   string
	Clock      int64
	Admitted   bool
	Line       int    // index joined; -1 when Admitted is false
	LineKind   string // kind of the joined line; empty when rejected
	Reason     string
	Candidates []CandidateLine // every line that could accept the customer, in line order
}

// CandidateLine captures a line that passed admission when a decision was made.
type CandidateLine struct {
	Line     int
	LineKind string
	Len      int
}

// CloseRecord captures a line closure and the customers it displaced.
type CloseRecord struct {
	Clock     int64
	Line      int
	LineKind  string
	Displaced []string // customer names, in former line order
}
