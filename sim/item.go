package sim

import "fmt"

// Item is a single good in a customer's basket together with the number of
// ticks it takes to scan it. Items are immutable once constructed.
type Item struct {
	Name     string
	duration int
}

// NewItem creates an Item. Duration must be non-negative.
func NewItem(name string, duration int) (Item, error) {
	if duration < 0 {
		return Item{}, fmt.Errorf("item %q: duration must be non-negative, got %d", name, duration)
	}
	return Item{Name: name, duration: duration}, nil
}

// MustItem is NewItem for literals in tests and generators; panics on a negative duration.
func MustItem(name string, duration int) Item {
	it, err := NewItem(name, duration)
	if err != nil {
		panic(err)
	}
	return it
}

// Duration returns how many ticks it takes to check out this item.
func (it Item) Duration() int {
	return it.duration
}

func (it Item) String() string {
	return fmt.Sprintf("%s(%d)", it.Name, it.duration)
}
