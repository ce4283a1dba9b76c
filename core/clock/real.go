package clock

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Real is a wall-clock Clock that delivers every callback on a single loop
// goroutine.
type Real struct {
	mu    sync.Mutex
	queue []func()

	updateSignal chan struct{}
	closeCh      chan struct{}
	done         chan struct{}

	endOnce sync.Once

	logger *slog.Logger
}

// NewReal starts the loop goroutine. Call Stop to end it.
func NewReal() *Real {
	c := &Real{
		updateSignal: make(chan struct{}, 1),
		closeCh:      make(chan struct{}),
		done:         make(chan struct{}),
		logger:       logger,
	}
	go c.loop()
	return c
}

func (c *Real) Now() time.Time { return time.Now() }

func (c *Real) AfterFunc(d time.Duration, f func()) Timer {
	timer := &realTimer{}
	timer.t = time.AfterFunc(d, func() {
		c.Post(func() {
			if timer.state.CompareAndSwap(timerPending, timerFired) {
				f()
			}
		})
	})
	return timer
}

func (c *Real) Post(f func()) {
	if c == nil || f == nil || !c.running() {
		return
	}

	c.mu.Lock()
	c.queue = append(c.queue, f)
	c.mu.Unlock()
	c.signalUpdate()
}

// Stop ends the loop. Callbacks still queued are dropped. Stop does not
// wait for the loop; use AwaitDone for that, but never from a callback.
func (c *Real) Stop() {
	if c == nil {
		return
	}

	c.endOnce.Do(func() { close(c.closeCh) })
}

func (c *Real) AwaitDone() {
	if c == nil {
		return
	}

	<-c.done
}

func (c *Real) running() bool {
	select {
	case <-c.closeCh:
		return false
	default:
		return true
	}
}

func (c *Real) loop() {
	defer close(c.done)

	for {
		for {
			f, ok := c.next()
			if !ok {
				break
			}
			if !c.running() {
				return
			}
			if err := runSafely(f); err != nil {
				c.logger.Error("clock callback failed", "error", err)
			}
		}

		select {
		case <-c.closeCh:
			return
		case <-c.updateSignal:
		}
	}
}

func (c *Real) next() (func(), bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.queue) == 0 {
		return nil, false
	}

	f := c.queue[0]
	c.queue[0] = nil
	c.queue = c.queue[1:]
	return f, true
}

func (c *Real) signalUpdate() {
	select {
	case c.updateSignal <- struct{}{}:
	default:
	}
}

// runSafely keeps one panicking callback from taking the loop down with it.
func runSafely(f func()) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("callback panicked: %v", recovered)
		}
	}()

	f()
	return nil
}

const (
	timerPending int32 = iota
	timerFired
	timerStopped
)

type realTimer struct {
	t     *time.Timer
	state atomic.Int32
}

func (t *realTimer) Stop() bool {
	if !t.state.CompareAndSwap(timerPending, timerStopped) {
		return false
	}
	t.t.Stop()
	return true
}
