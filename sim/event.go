package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/checkout-sim/sim/metrics"
	"github.com/inference-sim/checkout-sim/sim/trace"
)

// Event defines the interface for all simulation events.
// Each event has a Timestamp (in ticks), a Priority that orders events sharing a
// timestamp (lower first), and an Execute method that advances simulation state.
type Event interface {
	Timestamp() int64
	Priority() int
	Execute(*Simulator)
}

// Event priorities at equal timestamps: a finished checkout frees its slot before
// a closure is applied, and both happen before new checkouts start or customers arrive.
const (
	PriorityCheckoutCompleted = iota
	PriorityLineClosed
	PriorityCheckoutStarted
	PriorityCustomerArrival
)

// CustomerArrivalEvent represents a customer reaching the checkout area.
// Displaced and rejected customers re-arrive through the same event.
type CustomerArrivalEvent struct {
	time     int64
	Customer *Customer
}

// NewCustomerArrivalEvent creates an arrival of c at time t.
func NewCustomerArrivalEvent(t int64, c *Customer) *CustomerArrivalEvent {
	return &CustomerArrivalEvent{time: t, Customer: c}
}

func (e *CustomerArrivalEvent) Timestamp() int64 { return e.time }
func (e *CustomerArrivalEvent) Priority() int    { return PriorityCustomerArrival }

// Execute sends the customer to a line. With no line available the customer
// tries again one tick later, unless no open line would ever take them, in
// which case they leave. A customer who lands in an empty line starts
// checking out immediately.
func (e *CustomerArrivalEvent) Execute(sim *Simulator) {
	c := e.Customer
	sim.Stats.RecordArrival(c, e.time)

	var candidates []LineSnapshot
	if sim.Trace != nil {
		candidates = sim.Store.Candidates(c)
	}
	idx := sim.Store.EnterLine(c)
	sim.recordAdmission(c, idx, candidates)
	if idx == NoLine && !sim.Store.CouldEverAccept(c) {
		logrus.Warnf("[t=%07d] %s (%d items) leaves: no open line admits them", e.time, c.Name, c.NumItems())
		sim.Stats.RecordAbandoned(c)
		return
	}
	if idx == NoLine {
		logrus.Warnf("[t=%07d] No line for %s (%d items), retrying at %d", e.time, c.Name, c.NumItems(), e.time+1)
		sim.Schedule(NewCustomerArrivalEvent(e.time+1, c))
		return
	}
	c.ArrivalTime = e.time
	logrus.Infof("<< Arrival: %s joined line %d at %d ticks", c.Name, idx, e.time)

	ready, err := sim.Store.LineIsReady(idx)
	if err != nil {
		panic(err)
	}
	if ready {
		sim.Schedule(NewCheckoutStartedEvent(e.time, idx))
	}
}

// CheckoutStartedEvent represents the head customer of a line starting to check out.
type CheckoutStartedEvent struct {
	time int64
	Line int
}

// NewCheckoutStartedEvent creates a checkout start on line at time t.
func NewCheckoutStartedEvent(t int64, line int) *CheckoutStartedEvent {
	return &CheckoutStartedEvent{time: t, Line: line}
}

func (e *CheckoutStartedEvent) Timestamp() int64 { return e.time }
func (e *CheckoutStartedEvent) Priority() int    { return PriorityCheckoutStarted }

// Execute schedules the matching CheckoutCompletedEvent.
func (e *CheckoutStartedEvent) Execute(sim *Simulator) {
	head, err := sim.Store.FirstInLine(e.Line)
	if err != nil {
		panic(err)
	}
	d, err := sim.Store.StartCheckout(e.Line)
	if err != nil {
		panic(err)
	}
	logrus.Infof("<< CheckoutStarted: %s on line %d at %d ticks (%d ticks)", head.Name, e.Line, e.time, d)
	metrics.RecordCheckoutDuration(string(sim.lineKind(e.Line)), d)
	sim.Schedule(NewCheckoutCompletedEvent(e.time+int64(d), e.Line, head))
}

// CheckoutCompletedEvent represents the head customer of a line finishing checkout.
type CheckoutCompletedEvent struct {
	time     int64
	Line     int
	Customer *Customer
}

// NewCheckoutCompletedEvent creates a checkout completion for c on line at time t.
func NewCheckoutCompletedEvent(t int64, line int, c *Customer) *CheckoutCompletedEvent {
	return &CheckoutCompletedEvent{time: t, Line: line, Customer: c}
}

func (e *CheckoutCompletedEvent) Timestamp() int64 { return e.time }
func (e *CheckoutCompletedEvent) Priority() int    { return PriorityCheckoutCompleted }

// Execute removes the customer and starts the next checkout if anyone is waiting.
func (e *CheckoutCompletedEvent) Execute(sim *Simulator) {
	remaining, err := sim.Store.CompleteCheckout(e.Line)
	if err != nil {
		panic(err)
	}
	sim.Stats.RecordCompletion(e.Customer, e.time)
	logrus.Infof("<< CheckoutCompleted: %s on line %d at %d ticks", e.Customer.Name, e.Line, e.time)
	sim.recordQueueLength(e.Line)
	if remaining {
		sim.Schedule(NewCheckoutStartedEvent(e.time, e.Line))
	}
}

// LineClosedEvent represents a line being closed to new customers.
type LineClosedEvent struct {
	time int64
	Line int
}

// NewLineClosedEvent creates a closure of line at time t.
func NewLineClosedEvent(t int64, line int) *LineClosedEvent {
	return &LineClosedEvent{time: t, Line: line}
}

func (e *LineClosedEvent) Timestamp() int64 { return e.time }
func (e *LineClosedEvent) Priority() int    { return PriorityLineClosed }

// Execute closes the line. Displaced customers re-arrive one tick apart,
// in their former line order, starting at the closure time.
func (e *LineClosedEvent) Execute(sim *Simulator) {
	displaced, err := sim.Store.CloseLine(e.Line)
	if err != nil {
		panic(err)
	}
	kind := sim.lineKind(e.Line)
	logrus.Infof("<< LineClosed: line %d at %d ticks, %d displaced", e.Line, e.time, len(displaced))
	metrics.RecordDisplaced(string(kind), len(displaced))
	sim.recordQueueLength(e.Line)

	names := make([]string, len(displaced))
	for i, c := range displaced {
		names[i] = c.Name
		sim.Schedule(NewCustomerArrivalEvent(e.time+int64(i), c))
	}
	if sim.Trace != nil {
		sim.Trace.RecordClose(trace.CloseRecord{
			Clock:     e.time,
			Line:      e.Line,
			LineKind:  string(kind),
			Displaced: names,
		})
	}
}
