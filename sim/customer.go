// Defines the Customer struct that models a shopper moving through the store.
// Tracks the basket and the tick at which the customer joined a line.

package sim

import "fmt"

// NotArrived is the ArrivalTime of a customer that has not yet joined a line.
const NotArrived int64 = -1

// Customer carries an ordered basket of items.
//
// ArrivalTime is NotArrived until the customer joins a line and >= 0 afterwards.
// The Store never stamps it; the driver does (see CustomerArrivalEvent).
type Customer struct {
	Name        string // identifier; uniqueness is not enforced
	ArrivalTime int64  // tick the customer joined a line, or NotArrived
	items       []Item
}

// NewCustomer creates a customer holding a copy of items.
func NewCustomer(name string, items []Item) *Customer {
	return &Customer{
		Name:        name,
		ArrivalTime: NotArrived,
		items:       append([]Item(nil), items...),
	}
}

// NumItems returns the number of items in the basket.
func (c *Customer) NumItems() int {
	return len(c.items)
}

// ItemTime returns the summed checkout duration of every item in the basket.
func (c *Customer) ItemTime() int {
	total := 0
	for _, it := range c.items {
		total += it.Duration()
	}
	return total
}

// Items returns a copy of the basket.
func (c *Customer) Items() []Item {
	return append([]Item(nil), c.items...)
}

func (c Customer) String() string {
	return fmt.Sprintf("Customer: (Name: %s, Items: %d, ItemTime: %d, ArrivalTime: %d)", c.Name, len(c.items), c.ItemTime(), c.ArrivalTime)
}
