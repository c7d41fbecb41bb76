package sim

import "fmt"

// ExpressLimit is the largest basket an express line admits.
const ExpressLimit = 7

// LineKind names a checkout line variant.
type LineKind string

const (
	KindRegular   LineKind = "regular"
	KindExpress   LineKind = "express"
	KindSelfServe LineKind = "self-serve"
)

// LinePolicy is the per-variant behaviour of a checkout line.
// Admits is checked in addition to the shared open/capacity rule;
// ServiceTime is the checkout duration for the customer at the head.
type LinePolicy interface {
	Kind() LineKind
	Admits(c *Customer) bool
	ServiceTime(c *Customer) int
}

// RegularLine admits any basket and charges the summed item time.
type RegularLine struct{}

func (RegularLine) Kind() LineKind              { return KindRegular }
func (RegularLine) Admits(_ *Customer) bool     { return true }
func (RegularLine) ServiceTime(c *Customer) int { return c.ItemTime() }

// ExpressLine only admits baskets of at most ExpressLimit items.
type ExpressLine struct{}

func (ExpressLine) Kind() LineKind              { return KindExpress }
func (ExpressLine) Admits(c *Customer) bool     { return c.NumItems() <= ExpressLimit }
func (ExpressLine) ServiceTime(c *Customer) int { return c.ItemTime() }

// SelfServeLine admits any basket but customers scan at half speed.
type SelfServeLine struct{}

func (SelfServeLine) Kind() LineKind              { return KindSelfServe }
func (SelfServeLine) Admits(_ *Customer) bool     { return true }
func (SelfServeLine) ServiceTime(c *Customer) int { return c.ItemTime() * 2 }

// ValidLineKinds is the set of recognized line kinds.
var ValidLineKinds = map[LineKind]bool{KindRegular: true, KindExpress: true, KindSelfServe: true}

// NewLinePolicy returns the policy for kind. Panics on unrecognized kinds.
func NewLinePolicy(kind LineKind) LinePolicy {
	switch kind {
	case KindRegular:
		return RegularLine{}
	case KindExpress:
		return ExpressLine{}
	case KindSelfServe:
		return SelfServeLine{}
	default:
		panic(fmt.Sprintf("unknown line kind %q", kind))
	}
}

// CheckoutLine is a FIFO of customers with a fixed capacity.
//
// Invariants:
//   - Len() <= Capacity()
//   - once closed, a line admits nobody
//   - the head of the queue is the customer being (or about to be) checked out
type CheckoutLine struct {
	policy   LinePolicy
	capacity int
	open     bool
	queue    CustomerQueue
}

// NewCheckoutLine creates an open, empty line of the given kind.
// Panics on a non-positive capacity or unknown kind.
func NewCheckoutLine(kind LineKind, capacity int) *CheckoutLine {
	if capacity <= 0 {
		panic(fmt.Sprintf("NewCheckoutLine: capacity must be > 0, got %d", capacity))
	}
	return &CheckoutLine{
		policy:   NewLinePolicy(kind),
		capacity: capacity,
		open:     true,
	}
}

// Kind returns the line's variant.
func (l *CheckoutLine) Kind() LineKind { return l.policy.Kind() }

// Capacity returns the maximum number of customers the line holds.
func (l *CheckoutLine) Capacity() int { return l.capacity }

// IsOpen reports whether the line still admits customers.
func (l *CheckoutLine) IsOpen() bool { return l.open }

// Len returns the number of customers in line, including the one being served.
func (l *CheckoutLine) Len() int { return l.queue.Len() }

// Peek returns the head of the line, or nil if the line is empty.
func (l *CheckoutLine) Peek() *Customer { return l.queue.Peek() }

// Customers returns the queued customers in FIFO order. The slice is a copy.
func (l *CheckoutLine) Customers() []*Customer {
	return append([]*Customer(nil), l.queue.Items()...)
}

// CanAccept reports whether c may join this line right now.
func (l *CheckoutLine) CanAccept(c *Customer) bool {
	return l.open && l.queue.Len() < l.capacity && l.policy.Admits(c)
}

// Accept appends c to the tail of the line if CanAccept(c) holds.
// Returns false, leaving the line untouched, otherwise.
func (l *CheckoutLine) Accept(c *Customer) bool {
	if !l.CanAccept(c) {
		return false
	}
	l.queue.Enqueue(c)
	return true
}

// StartCheckout returns how long the head customer takes to check out.
// The customer stays in line until CompleteCheckout.
func (l *CheckoutLine) StartCheckout() (int, error) {
	head := l.queue.Peek()
	if head == nil {
		return 0, ErrEmptyLine
	}
	return l.policy.ServiceTime(head), nil
}

// CompleteCheckout removes the head customer and reports whether anyone is left.
func (l *CheckoutLine) CompleteCheckout() (bool, error) {
	if l.queue.Dequeue() == nil {
		return false, ErrEmptyLine
	}
	return l.queue.Len() > 0, nil
}

// Close stops the line from admitting customers. The head stays to finish
// checking out; everyone behind it is removed and returned in line order.
func (l *CheckoutLine) Close() []*Customer {
	l.open = false
	return l.queue.TruncateAfterHead()
}

func (l *CheckoutLine) String() string {
	state := "open"
	if !l.open {
		state = "closed"
	}
	return fmt.Sprintf("%s(%d/%d, %s) %s", l.Kind(), l.Len(), l.capacity, state, l.queue.String())
}
