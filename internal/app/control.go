package app

import "sync/atomic"

// Control receives termination requests from the input state. Requests
// are counted; the frame loop stops at the end of the frame in which the
// first one arrived.
type Control struct {
	requests atomic.Uint64
}

// RequestTermination records a termination request.
func (c *Control) RequestTermination() {
	c.requests.Add(1)
}

// Requested reports whether termination has been requested.
func (c *Control) Requested() bool {
	return c.requests.Load() > 0
}

// Requests returns the number of termination requests received.
func (c *Control) Requests() uint64 {
	return c.requests.Load()
}
