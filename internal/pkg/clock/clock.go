// Package clock provides an injectable time source.
package clock

import "time"

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed is a Clock pinned to a single instant, for deterministic tests.
type Fixed struct {
	t time.Time
}

// NewFixed returns a clock that always reports t
func NewFixed(t time.Time) *Fixed {
	return &Fixed{t: t}
}

// Now returns the pinned instant
func (c *Fixed) Now() time.Time {
	return c.t
}

// Advance moves the pinned instant forward by d
func (c *Fixed) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}
