package sched

import (
	"sync/atomic"
	"time"
)

// TickClock drives a registry from real time: each tick it emits the
// measured elapsed seconds since the previous one, and counts ticks
// atomically. The registry has no clock of its own, so some loop like
// this must feed Advance.
type TickClock struct {
	Ch    chan float64
	count atomic.Int64
	stop  chan struct{}
}

// NewTickClock creates a clock but does not start it.
func NewTickClock(buffer int) *TickClock {
	return &TickClock{
		Ch:   make(chan float64, buffer),
		stop: make(chan struct{}),
	}
}

// Start begins emitting ticks at the given interval.
func (c *TickClock) Start(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		last := time.Now()
		for {
			select {
			case now := <-ticker.C:
				c.count.Add(1)
				c.Ch <- now.Sub(last).Seconds()
				last = now
			case <-c.stop:
				close(c.Ch)
				return
			}
		}
	}()
}

// Stop signals the clock to stop emitting ticks.
func (c *TickClock) Stop() {
	close(c.stop)
}

// Count returns the current tick count atomically.
func (c *TickClock) Count() int64 {
	return c.count.Load()
}
