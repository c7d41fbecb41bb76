// sim/simulator.go
package sim

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/checkout-sim/sim/metrics"
	"github.com/inference-sim/checkout-sim/sim/trace"
)

// eventEntry wraps an Event with a sequence ID for deterministic FIFO
// tie-breaking when timestamp and priority are equal.
type eventEntry struct {
	event Event
	seqID int64
}

// EventQueue is a min-heap ordered by (Timestamp, Priority, seqID).
// Implements heap.Interface.
type EventQueue []eventEntry

func (q EventQueue) Len() int { return len(q) }

func (q EventQueue) Less(i, j int) bool {
	if q[i].event.Timestamp() != q[j].event.Timestamp() {
		return q[i].event.Timestamp() < q[j].event.Timestamp()
	}
	if q[i].event.Priority() != q[j].event.Priority() {
		return q[i].event.Priority() < q[j].event.Priority()
	}
	return q[i].seqID < q[j].seqID
}

func (q EventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *EventQueue) Push(x any) {
	*q = append(*q, x.(eventEntry))
}

func (q *EventQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// SimConfig groups the parameters of a simulation run.
type SimConfig struct {
	Store   StoreConfig
	Horizon int64             // last tick to simulate; <= 0 means unbounded
	Trace   trace.TraceConfig // decision tracing; zero value disables it
}

// Simulator is the core object that holds simulation time, the store, and the event loop.
type Simulator struct {
	Clock   int64
	Horizon int64
	Store   *Store
	Stats   *Stats
	// Trace is nil unless decision tracing is enabled.
	Trace *trace.SimulationTrace

	events EventQueue
	seq    int64
	hasRun bool
}

// NewSimulator builds a store from cfg.Store and an empty event queue.
func NewSimulator(cfg SimConfig) (*Simulator, error) {
	store, err := NewStore(cfg.Store)
	if err != nil {
		return nil, err
	}
	horizon := cfg.Horizon
	if horizon <= 0 {
		horizon = math.MaxInt64
	}
	s := &Simulator{
		Horizon: horizon,
		Store:   store,
		Stats:   NewStats(),
		events:  make(EventQueue, 0),
	}
	if cfg.Trace.Enabled() {
		s.Trace = trace.NewSimulationTrace(cfg.Trace)
	}
	metrics.Register()
	return s, nil
}

// Schedule pushes an event into the simulator's event queue.
func (sim *Simulator) Schedule(ev Event) {
	sim.seq++
	heap.Push(&sim.events, eventEntry{event: ev, seqID: sim.seq})
}

// ScheduleAll validates and schedules externally supplied events.
// Closures must name an existing line and arrivals must carry a customer.
func (sim *Simulator) ScheduleAll(events []Event) error {
	for i, ev := range events {
		if ev.Timestamp() < 0 {
			return fmt.Errorf("event %d: negative timestamp %d", i, ev.Timestamp())
		}
		switch e := ev.(type) {
		case *LineClosedEvent:
			if e.Line < 0 || e.Line >= sim.Store.NumLines() {
				return fmt.Errorf("event %d: close line %d of %d: %w", i, e.Line, sim.Store.NumLines(), ErrLineOutOfRange)
			}
		case *CustomerArrivalEvent:
			if e.Customer == nil {
				return fmt.Errorf("event %d: arrival without a customer", i)
			}
		}
	}
	for _, ev := range events {
		sim.Schedule(ev)
	}
	return nil
}

// Pending returns the number of events not yet executed.
func (sim *Simulator) Pending() int {
	return len(sim.events)
}

// Run executes events in order until the queue drains or the horizon passes.
// Panics if called more than once.
func (sim *Simulator) Run() {
	if sim.hasRun {
		panic("Simulator.Run() called more than once")
	}
	sim.hasRun = true

	for len(sim.events) > 0 {
		next := sim.events[0].event
		if next.Timestamp() > sim.Horizon {
			logrus.Infof("[t=%07d] Horizon %d reached with %d events pending", sim.Clock, sim.Horizon, len(sim.events))
			break
		}
		ev := heap.Pop(&sim.events).(eventEntry).event
		sim.Clock = ev.Timestamp()
		logrus.Debugf("[t=%07d] Executing %T", sim.Clock, ev)
		ev.Execute(sim)
	}
	sim.Stats.TotalTime = sim.Clock
	logrus.Infof("[t=%07d] Simulation ended", sim.Clock)
}

func (sim *Simulator) inspect(i int) LineSnapshot {
	snap, err := sim.Store.Inspect(i)
	if err != nil {
		panic(err)
	}
	return snap
}

func (sim *Simulator) lineKind(i int) LineKind {
	return sim.inspect(i).Kind
}

func (sim *Simulator) recordQueueLength(i int) {
	snap := sim.inspect(i)
	metrics.SetQueueLength(i, string(snap.Kind), snap.Len)
}

// recordAdmission feeds metrics and, when enabled, the decision trace.
// idx is the result of Store.EnterLine for c; candidates are the lines that
// could accept c just before it was placed.
func (sim *Simulator) recordAdmission(c *Customer, idx int, candidates []LineSnapshot) {
	if idx == NoLine {
		metrics.RecordRejected()
	} else {
		metrics.RecordAdmitted(string(sim.lineKind(idx)))
		sim.recordQueueLength(idx)
	}
	if sim.Trace == nil {
		return
	}
	rec := trace.AdmissionRecord{
		Customer: c.Name,
		Clock:    sim.Clock,
		Admitted: idx != NoLine,
		Line:     idx,
		Reason:   "no line can accept",
	}
	for _, cand := range candidates {
		rec.Candidates = append(rec.Candidates, trace.CandidateLine{
			Line:     cand.Index,
			LineKind: string(cand.Kind),
			Len:      cand.Len,
		})
	}
	if idx != NoLine {
		snap := sim.inspect(idx)
		rec.LineKind = string(snap.Kind)
		// the customer is already queued, so the chosen line held Len-1 when selected
		rec.Reason = fmt.Sprintf("fewest-customers (len=%d)", snap.Len-1)
	}
	sim.Trace.RecordAdmission(rec)
}
