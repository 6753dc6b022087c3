// Package chain supplies the block height operations are stamped with.
package chain

import (
	"sync"
	"time"
)

// Clock derives block heights from wall time at a fixed block interval.
// Heights never go backwards, even if the wall clock does.
type Clock struct {
	mu       sync.Mutex
	genesis  time.Time
	interval time.Duration
	last     uint64
	now      func() time.Time
}

func NewClock(genesis time.Time, interval time.Duration) *Clock {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Clock{genesis: genesis, interval: interval, now: time.Now}
}

func (c *Clock) Height() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	elapsed := c.now().Sub(c.genesis)
	if elapsed > 0 {
		if h := uint64(elapsed / c.interval); h > c.last {
			c.last = h
		}
	}
	return c.last
}
