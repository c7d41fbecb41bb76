// Package sim provides the checkout-line dispatcher and the discrete-event
// simulation that drives it.
//
// # Reading Guide
//
// Start with these three files to understand the dispatcher:
//   - line.go: CheckoutLine and its variants (regular, express, self-serve)
//   - store.go: Store, which places customers on the shortest eligible line
//   - event.go: Event types that drive the simulation (Arrival, Started, Completed, Closed)
//
// simulator.go holds the event loop; stats.go the end-of-run summary.
//
// # Architecture
//
// The Store owns every CheckoutLine and is the only thing that mutates them.
// Events call into the Store; they never touch a line directly. Sub-packages:
//   - sim/workload/: event-file parsing and seeded workload generation
//   - sim/trace/: admission and closure trace recording
//   - sim/metrics/: Prometheus collectors fed by the event loop
//
// # Key Interfaces
//
//   - LinePolicy: admission predicate and service-time formula for a line kind
//   - Event: a timestamped action executed by the Simulator
package sim
