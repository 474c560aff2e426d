package reservation

import (
	"sync"
	"time"
)

// Countdown is the post-submission confirmation timer: it ticks once per
// second from its starting value and triggers auto-navigation at zero.
// A view owns at most one at a time; Stop cancels it when the view unmounts
// or the user decides explicitly.
type Countdown struct {
	mu        sync.Mutex
	remaining int
	done      chan struct{}
	stopOnce  sync.Once
}

// NewCountdown creates a countdown starting at the given number of seconds.
func NewCountdown(seconds int) *Countdown {
	return &Countdown{remaining: seconds, done: make(chan struct{})}
}

// Remaining returns the seconds left.
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Tick decrements the counter by one second, never below zero, and returns
// the new value. Exposed so tests drive the countdown without a clock.
func (c *Countdown) Tick() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.remaining > 0 {
		c.remaining--
	}
	return c.remaining
}

// Expired reports whether the countdown reached zero.
func (c *Countdown) Expired() bool {
	return c.Remaining() == 0
}

// Stop cancels the countdown. Safe to call more than once.
func (c *Countdown) Stop() {
	c.stopOnce.Do(func() { close(c.done) })
}

// Run ticks once per second until the countdown expires or is stopped.
// onTick is called after every decrement; onExpire exactly once when zero is
// reached (not when stopped early). Run blocks, so callers usually run it in
// a goroutine.
func (c *Countdown) Run(onTick func(remaining int), onExpire func()) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			remaining := c.Tick()
			if onTick != nil {
				onTick(remaining)
			}
			if remaining == 0 {
				c.Stop()
				if onExpire != nil {
					onExpire()
				}
				return
			}
		}
	}
}
