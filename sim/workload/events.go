// Package workload reads and generates customer event scripts.
//
// An event file has one event per line:
//
//	<time> Arrive <name> <item> <duration> [<item> <duration> ...]
//	<time> Close <line>
//
// Blank lines and lines starting with '#' are ignored.
package workload

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/inference-sim/checkout-sim/sim"
)

const (
	actionArrive = "Arrive"
	actionClose  = "Close"
)

// LoadEvents reads an event file from path.
func LoadEvents(path string) ([]sim.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening event file: %w", err)
	}
	defer f.Close()
	return ParseEvents(f)
}

// ParseEvents parses events from r. Errors carry the 1-based line number.
func ParseEvents(r io.Reader) ([]sim.Event, error) {
	var events []sim.Event
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		ev, err := parseEvent(strings.Fields(text))
		if err != nil {
			return nil, fmt.Errorf("event file line %d: %w", lineNo, err)
		}
		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading event file: %w", err)
	}
	return events, nil
}

func parseEvent(fields []string) (sim.Event, error) {
	if len(fields) < 2 {
		return nil, fmt.Errorf("expected '<time> <action> ...', got %q", strings.Join(fields, " "))
	}
	t, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil || t < 0 {
		return nil, fmt.Errorf("invalid timestamp %q", fields[0])
	}

	switch fields[1] {
	case actionArrive:
		return parseArrival(t, fields[2:])
	case actionClose:
		if len(fields) != 3 {
			return nil, fmt.Errorf("close takes exactly one line index")
		}
		line, err := strconv.Atoi(fields[2])
		if err != nil || line < 0 {
			return nil, fmt.Errorf("invalid line index %q", fields[2])
		}
		return sim.NewLineClosedEvent(t, line), nil
	default:
		return nil, fmt.Errorf("unknown action %q", fields[1])
	}
}

func parseArrival(t int64, fields []string) (sim.Event, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("arrive needs a customer name")
	}
	name, rest := fields[0], fields[1:]
	if len(rest)%2 != 0 {
		return nil, fmt.Errorf("customer %s: items must be <name> <duration> pairs", name)
	}
	items := make([]sim.Item, 0, len(rest)/2)
	for i := 0; i < len(rest); i += 2 {
		d, err := strconv.Atoi(rest[i+1])
		if err != nil {
			return nil, fmt.Errorf("customer %s: invalid duration %q for item %s", name, rest[i+1], rest[i])
		}
		it, err := sim.NewItem(rest[i], d)
		if err != nil {
			return nil, fmt.Errorf("customer %s: %w", name, err)
		}
		items = append(items, it)
	}
	return sim.NewCustomerArrivalEvent(t, sim.NewCustomer(name, items)), nil
}

// WriteEvents writes events in the event-file format. Only arrivals and
// closures are representable; other events are rejected.
func WriteEvents(w io.Writer, events []sim.Event) error {
	bw := bufio.NewWriter(w)
	for _, ev := range events {
		switch e := ev.(type) {
		case *sim.CustomerArrivalEvent:
			fmt.Fprintf(bw, "%d %s %s", e.Timestamp(), actionArrive, e.Customer.Name)
			for _, it := range e.Customer.Items() {
				fmt.Fprintf(bw, " %s %d", it.Name, it.Duration())
			}
			fmt.Fprintln(bw)
		case *sim.LineClosedEvent:
			fmt.Fprintf(bw, "%d %s %d\n", e.Timestamp(), actionClose, e.Line)
		default:
			return fmt.Errorf("cannot write event of type %T", ev)
		}
	}
	return bw.Flush()
}
