package clock

import (
	"sync"
	"time"
)

// Manual is a virtual Clock that only moves when Advance is called.
//
// Timers fire on the goroutine calling Advance, in order of their due time
// and, for equal due times, in the order they were scheduled. Post runs the
// callback immediately on the calling goroutine.
type Manual struct {
	mu        sync.Mutex
	now       time.Time
	pending   []*manualTimer
	seq       int
	scheduled int
}

func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (c *Manual) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Manual) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	if d < 0 {
		d = 0
	}
	c.seq++
	c.scheduled++
	timer := &manualTimer{clock: c, at: c.now.Add(d), seq: c.seq, f: f}
	c.pending = append(c.pending, timer)
	return timer
}

func (c *Manual) Post(f func()) {
	if f != nil {
		f()
	}
}

// Advance moves the clock forward by d, firing every timer that falls due
// on the way, including timers scheduled by callbacks fired along the way.
func (c *Manual) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		next := c.popDueLocked(target)
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.now = next.at
		c.mu.Unlock()

		next.f()
	}
}

// Pending returns the number of timers that have neither fired nor been
// stopped.
func (c *Manual) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// Scheduled returns the number of timers ever created on this clock.
func (c *Manual) Scheduled() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scheduled
}

func (c *Manual) popDueLocked(target time.Time) *manualTimer {
	index := -1
	for i, timer := range c.pending {
		if timer.at.After(target) {
			continue
		}
		if index < 0 || timer.at.Before(c.pending[index].at) ||
			(timer.at.Equal(c.pending[index].at) && timer.seq < c.pending[index].seq) {
			index = i
		}
	}
	if index < 0 {
		return nil
	}

	timer := c.pending[index]
	c.pending = append(c.pending[:index], c.pending[index+1:]...)
	return timer
}

func (c *Manual) removeLocked(timer *manualTimer) bool {
	for i, pending := range c.pending {
		if pending == timer {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			return true
		}
	}
	return false
}

type manualTimer struct {
	clock *Manual
	at    time.Time
	seq   int
	f     func()
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	return t.clock.removeLocked(t)
}
