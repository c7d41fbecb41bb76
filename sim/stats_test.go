package sim

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats_MaxWait_FromFirstArrival(t *testing.T) {
	// GIVEN a customer that first arrived at 5 and re-arrived at 9
	s := NewStats()
	c := basket("A", 1)
	s.RecordArrival(c, 5)
	s.RecordArrival(c, 9)

	// WHEN it completes at 20
	s.RecordCompletion(c, 20)

	// THEN it is counted once and its wait spans from the first arrival
	assert.Equal(t, 1, s.NumCustomers)
	assert.Equal(t, 1, s.Completed)
	assert.Equal(t, int64(15), s.MaxWait)
}

func TestStats_Print(t *testing.T) {
	s := NewStats()
	s.NumCustomers = 3
	s.TotalTime = 42
	var buf bytes.Buffer
	s.Print(&buf)
	assert.Contains(t, buf.String(), "Simulation Stats")
	assert.Contains(t, buf.String(), "42 ticks")
}

func TestStats_SaveResults_JSON(t *testing.T) {
	s := NewStats()
	s.NumCustomers = 2
	s.Completed = 2
	s.TotalTime = 30
	s.MaxWait = 12
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, s.SaveResults(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got map[string]int64
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, int64(12), got["max_wait"])
	assert.Equal(t, int64(30), got["total_time"])
}
