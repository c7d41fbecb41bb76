package sim

import "errors"

var (
	// ErrLineOutOfRange is returned when a line index does not name a line in the store.
	ErrLineOutOfRange = errors.New("line index out of range")
	// ErrEmptyLine is returned when a checkout operation needs a customer but the line is empty.
	ErrEmptyLine = errors.New("line is empty")
)
