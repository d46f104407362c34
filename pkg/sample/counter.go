package sample

import "math"

// Counter holds a single integer that only this package can advance.
//
// A Counter is not safe for concurrent use.
type Counter struct {
	value int
}

// NewCounter returns a Counter starting at zero.
func NewCounter() *Counter {
	return &Counter{value: 0}
}

// Value returns the current count.
func (c *Counter) Value() int {
	return c.value
}

// increment adds one to the count, saturating at math.MaxInt.
func (c *Counter) increment() {
	if c.value == math.MaxInt {
		return
	}

	c.value++
}
