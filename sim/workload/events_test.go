package workload

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/checkout-sim/sim"
)

func TestParseEvents_ArrivalsAndClosures(t *testing.T) {
	// GIVEN an event script with a comment, a blank line, two arrivals and a closure
	input := `# morning rush
0 Arrive Belinda bananas 7 cheese 3

5 Arrive Hamman chips 4
12 Close 1
`
	// WHEN parsed
	events, err := ParseEvents(strings.NewReader(input))
	require.NoError(t, err)

	// THEN events come back in file order with their data
	require.Len(t, events, 3)

	a, ok := events[0].(*sim.CustomerArrivalEvent)
	require.True(t, ok, "expected arrival, got %T", events[0])
	assert.Equal(t, int64(0), a.Timestamp())
	assert.Equal(t, "Belinda", a.Customer.Name)
	assert.Equal(t, 2, a.Customer.NumItems())
	assert.Equal(t, 10, a.Customer.ItemTime())
	assert.Equal(t, sim.NotArrived, a.Customer.ArrivalTime)

	c, ok := events[2].(*sim.LineClosedEvent)
	require.True(t, ok, "expected closure, got %T", events[2])
	assert.Equal(t, int64(12), c.Timestamp())
	assert.Equal(t, 1, c.Line)
}

func TestParseEvents_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"bad timestamp", "x Arrive A gum 1", "invalid timestamp"},
		{"negative timestamp", "-1 Arrive A gum 1", "invalid timestamp"},
		{"unknown action", "0 Leave A", "unknown action"},
		{"missing action", "0", "expected"},
		{"arrive without name", "0 Arrive", "customer name"},
		{"odd item fields", "0 Arrive A gum", "pairs"},
		{"bad duration", "0 Arrive A gum x", "invalid duration"},
		{"negative duration", "0 Arrive A gum -2", "non-negative"},
		{"close without line", "0 Close", "exactly one"},
		{"close bad line", "0 Close two", "invalid line index"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEvents(strings.NewReader("# header\n" + tt.input + "\n"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, err.Error(), "line 2")
		})
	}
}

func TestLoadEvents_MissingFile(t *testing.T) {
	_, err := LoadEvents(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorContains(t, err, "opening event file")
}

func TestLoadEvents_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.txt")
	require.NoError(t, os.WriteFile(path, []byte("3 Arrive Bo milk 2\n"), 0o644))

	events, err := LoadEvents(path)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, int64(3), events[0].Timestamp())
}

func TestWriteEvents_ParsesBack(t *testing.T) {
	// GIVEN an arrival and a closure
	events := []sim.Event{
		sim.NewCustomerArrivalEvent(2, sim.NewCustomer("Bo", []sim.Item{sim.MustItem("milk", 2), sim.MustItem("tea", 1)})),
		sim.NewLineClosedEvent(9, 0),
	}

	// WHEN written out
	var buf bytes.Buffer
	require.NoError(t, WriteEvents(&buf, events))

	// THEN the text is in event-file format
	assert.Equal(t, "2 Arrive Bo milk 2 tea 1\n9 Close 0\n", buf.String())
}

func TestWriteEvents_UnsupportedEvent_Error(t *testing.T) {
	var buf bytes.Buffer
	err := WriteEvents(&buf, []sim.Event{sim.NewCheckoutStartedEvent(0, 0)})
	assert.Error(t, err)
}
