package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulationTrace_RecordAdmission_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for decisions
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN an admission record is recorded
	st.RecordAdmission(AdmissionRecord{
		Customer: "Belinda",
		Clock:    12,
		Admitted: true,
		Line:     1,
		LineKind: "express",
		Reason:   "fewest-customers (len=0)",
	})

	// THEN the trace contains one admission record with correct data
	require.Len(t, st.Admissions, 1)
	assert.Equal(t, "Belinda", st.Admissions[0].Customer)
	assert.Equal(t, 1, st.Admissions[0].Line)
	assert.True(t, st.Admissions[0].Admitted)
}

func TestSimulationTrace_RecordClose_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for decisions
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN a closure is recorded
	st.RecordClose(CloseRecord{Clock: 40, Line: 2, LineKind: "regular", Displaced: []string{"B", "C"}})

	// THEN the closure is kept in order with its displaced customers
	require.Len(t, st.Closures, 1)
	assert.Equal(t, []string{"B", "C"}, st.Closures[0].Displaced)
}

func TestIsValidTraceLevel(t *testing.T) {
	tests := []struct {
		level string
		want  bool
	}{
		{"", true},
		{"none", true},
		{"decisions", true},
		{"verbose", false},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidTraceLevel(tt.level))
		})
	}
}

func TestTraceConfig_Enabled(t *testing.T) {
	assert.False(t, TraceConfig{}.Enabled())
	assert.False(t, TraceConfig{Level: TraceLevelNone}.Enabled())
	assert.True(t, TraceConfig{Level: TraceLevelDecisions}.Enabled())
}
