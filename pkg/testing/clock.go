// Package testing provides deterministic test helpers for the elastic
// list engine.
//
// FakeClock replaces the animation package's wall clock so tests can
// advance time explicitly and step springback animations frame by
// frame.
package testing

import (
	"sync"
	"time"
)

// FakeClock is a Clock whose time only moves when told to.
//
// The zero value is not usable; create one with NewFakeClock. Install
// it with animation.SetClock and restore the previous clock when the
// test ends.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{
		now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the fake time forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set jumps the fake time to t.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}
