package sim

import (
	"fmt"
	"sync"
)

// NoLine is returned by EnterLine when no line can take the customer.
const NoLine = -1

// Store owns the checkout lines and decides which line each customer joins.
// Lines are addressed by their index, which is stable for the life of the Store.
//
// Every operation holds a single store-wide lock: line selection reads all lines,
// so the check-then-accept in EnterLine must not interleave with other calls.
type Store struct {
	mu    sync.Mutex
	lines []*CheckoutLine
}

// NewStore builds RegularCount regular lines, then ExpressCount express lines,
// then SelfServeCount self-serve lines, each with LineCapacity.
func NewStore(cfg StoreConfig) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("NewStore: %w", err)
	}
	lines := make([]*CheckoutLine, 0, cfg.NumLines())
	for _, group := range []struct {
		kind  LineKind
		count int
	}{
		{KindRegular, cfg.RegularCount},
		{KindExpress, cfg.ExpressCount},
		{KindSelfServe, cfg.SelfServeCount},
	} {
		for i := 0; i < group.count; i++ {
			lines = append(lines, NewCheckoutLine(group.kind, cfg.LineCapacity))
		}
	}
	return &Store{lines: lines}, nil
}

// NumLines returns the number of lines in the store.
func (s *Store) NumLines() int {
	return len(s.lines)
}

// EnterLine places c in the line with the fewest customers among those that can
// accept c. Ties are broken by first occurrence in line order (lowest index).
// Returns the index joined, or NoLine with no line modified.
func (s *Store) EnterLine(c *Customer) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	best := NoLine
	minLen := 0
	for i, l := range s.lines {
		if !l.CanAccept(c) {
			continue
		}
		// strict < keeps the earliest line on ties
		if best == NoLine || l.Len() < minLen {
			best = i
			minLen = l.Len()
		}
	}
	if best == NoLine {
		return NoLine
	}
	if !s.lines[best].Accept(c) {
		panic(fmt.Sprintf("EnterLine: line %d passed CanAccept but rejected %s", best, c.Name))
	}
	return best
}

// LineIsReady reports whether line i holds exactly one customer, i.e. the
// customer who just joined can start checking out immediately.
func (s *Store) LineIsReady(i int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.line(i)
	if err != nil {
		return false, err
	}
	return l.Len() == 1, nil
}

// StartCheckout returns how long the head customer of line i takes to check out.
func (s *Store) StartCheckout(i int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.line(i)
	if err != nil {
		return 0, err
	}
	d, err := l.StartCheckout()
	if err != nil {
		return 0, fmt.Errorf("start checkout on line %d: %w", i, err)
	}
	return d, nil
}

// CompleteCheckout removes the head customer of line i and reports whether
// anyone is still waiting in that line.
func (s *Store) CompleteCheckout(i int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.line(i)
	if err != nil {
		return false, err
	}
	remaining, err := l.CompleteCheckout()
	if err != nil {
		return false, fmt.Errorf("complete checkout on line %d: %w", i, err)
	}
	return remaining, nil
}

// CloseLine closes line i and returns the customers who must find another line.
// The customer at the head stays to finish checking out.
// The store does not re-admit them; that is up to the caller.
func (s *Store) CloseLine(i int) ([]*Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.line(i)
	if err != nil {
		return nil, err
	}
	return l.Close(), nil
}

// FirstInLine returns the head customer of line i, or nil if the line is empty.
func (s *Store) FirstInLine(i int) (*Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.line(i)
	if err != nil {
		return nil, err
	}
	return l.Peek(), nil
}

// CouldEverAccept reports whether some open line would admit c once it had room.
// A false result means c can never be placed without reopening lines, which the
// store does not support.
func (s *Store) CouldEverAccept(c *Customer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.lines {
		if l.IsOpen() && l.policy.Admits(c) {
			return true
		}
	}
	return false
}

// Candidates returns the lines that can currently accept c, in line order.
func (s *Store) Candidates(c *Customer) []LineSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	var snaps []LineSnapshot
	for i, l := range s.lines {
		if l.CanAccept(c) {
			snaps = append(snaps, snapshotOf(i, l))
		}
	}
	return snaps
}

// Inspect returns a read-only view of line i.
func (s *Store) Inspect(i int) (LineSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.line(i)
	if err != nil {
		return LineSnapshot{}, err
	}
	return snapshotOf(i, l), nil
}

// Snapshot returns a read-only view of every line, in line order.
func (s *Store) Snapshot() []LineSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snaps := make([]LineSnapshot, len(s.lines))
	for i, l := range s.lines {
		snaps[i] = snapshotOf(i, l)
	}
	return snaps
}

func (s *Store) line(i int) (*CheckoutLine, error) {
	if i < 0 || i >= len(s.lines) {
		return nil, fmt.Errorf("line %d of %d: %w", i, len(s.lines), ErrLineOutOfRange)
	}
	return s.lines[i], nil
}

func snapshotOf(i int, l *CheckoutLine) LineSnapshot {
	return LineSnapshot{
		Index:    i,
		Kind:     l.Kind(),
		Len:      l.Len(),
		Capacity: l.Capacity(),
		Open:     l.IsOpen(),
	}
}

// LineSnapshot is a point-in-time view of a line for logging, tracing and metrics.
type LineSnapshot struct {
	Index    int
	Kind     LineKind
	Len      int
	Capacity int
	Open     bool
}
