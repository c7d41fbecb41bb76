// Implements the CustomerQueue, the FIFO backing every checkout line.
// Customers are enqueued on admission and dequeued when their checkout completes.

package sim

import "strings"

// CustomerQueue is a FIFO queue of customers waiting at (or being served by) a line.
// The head is the customer currently being checked out.
type CustomerQueue struct {
	queue []*Customer
}

// Enqueue adds a customer to the back of the queue.
func (cq *CustomerQueue) Enqueue(c *Customer) {
	if c == nil {
		panic("Enqueue: customer must not be nil")
	}
	cq.queue = append(cq.queue, c)
}

func (cq *CustomerQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, c := range cq.queue {
		sb.WriteString(c.Name)
		if i < len(cq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of customers in the queue.
func (cq *CustomerQueue) Len() int {
	return len(cq.queue)
}

// Peek returns the customer at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (cq *CustomerQueue) Peek() *Customer {
	if len(cq.queue) == 0 {
		return nil
	}
	return cq.queue[0]
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage; callers MUST NOT append to or reslice it.
func (cq *CustomerQueue) Items() []*Customer {
	return cq.queue
}

// Dequeue removes and returns the customer at the front of the queue.
// Returns nil if the queue is empty.
func (cq *CustomerQueue) Dequeue() *Customer {
	if len(cq.queue) == 0 {
		return nil
	}
	head := cq.queue[0]
	cq.queue[0] = nil
	cq.queue = cq.queue[1:]
	return head
}

// TruncateAfterHead keeps only the head and returns everyone behind it in order.
// Returns an empty slice when fewer than two customers are queued.
func (cq *CustomerQueue) TruncateAfterHead() []*Customer {
	if len(cq.queue) < 2 {
		return []*Customer{}
	}
	rest := make([]*Customer, len(cq.queue)-1)
	copy(rest, cq.queue[1:])
	cq.queue = []*Customer{cq.queue[0]}
	return rest
}
