// Tracks simulation-wide statistics: customers served, total time and the longest wait.

package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Stats aggregates statistics about the simulation for final reporting.
//
// A customer's wait runs from its first arrival to the end of its checkout, so
// time spent retrying or re-queueing after a closure counts toward it.
type Stats struct {
	NumCustomers int   `json:"num_customers"` // distinct customers that arrived
	Completed    int   `json:"completed"`     // customers that finished checking out
	Abandoned    int   `json:"abandoned"`     // customers no open line would ever admit
	TotalTime    int64 `json:"total_time"`    // clock at the last executed event
	MaxWait      int64 `json:"max_wait"`      // longest span from first arrival to checkout complete

	firstArrival map[*Customer]int64
}

// NewStats returns an empty Stats.
func NewStats() *Stats {
	return &Stats{firstArrival: make(map[*Customer]int64)}
}

// RecordArrival notes the first time c shows up; later arrivals of the same
// customer (retries, displacement) are ignored.
func (s *Stats) RecordArrival(c *Customer, t int64) {
	if _, seen := s.firstArrival[c]; seen {
		return
	}
	s.firstArrival[c] = t
	s.NumCustomers++
}

// RecordCompletion updates MaxWait for c finishing at t.
func (s *Stats) RecordCompletion(c *Customer, t int64) {
	s.Completed++
	first, ok := s.firstArrival[c]
	if !ok {
		first = c.ArrivalTime
	}
	if wait := t - first; wait > s.MaxWait {
		s.MaxWait = wait
	}
}

// RecordAbandoned counts a customer who left without checking out.
func (s *Stats) RecordAbandoned(_ *Customer) {
	s.Abandoned++
}

// Print writes the statistics in human-readable form.
func (s *Stats) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Simulation Stats ===")
	fmt.Fprintf(w, "Customers            : %d\n", s.NumCustomers)
	fmt.Fprintf(w, "Completed            : %d\n", s.Completed)
	fmt.Fprintf(w, "Abandoned            : %d\n", s.Abandoned)
	fmt.Fprintf(w, "Total Time           : %d ticks\n", s.TotalTime)
	fmt.Fprintf(w, "Max Wait             : %d ticks\n", s.MaxWait)
}

// SaveResults writes the statistics as JSON to path.
func (s *Stats) SaveResults(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding stats: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing stats: %w", err)
	}
	return nil
}
