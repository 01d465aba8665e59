package view

import (
	"context"
	"math/rand/v2"
	"sync/atomic"
	"time"
)

// VisitorCounter is a cosmetic counter that grows by one to ten on every
// tick. It is not backed by real traffic.
type VisitorCounter struct {
	count    atomic.Int64
	interval time.Duration
	step     func() int64
}

func NewVisitorCounter(start int64, interval time.Duration) *VisitorCounter {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	v := &VisitorCounter{
		interval: interval,
		step:     func() int64 { return rand.Int64N(10) + 1 },
	}
	v.count.Store(start)
	return v
}

func (v *VisitorCounter) Count() int64 {
	return v.count.Load()
}

func (v *VisitorCounter) Interval() time.Duration {
	return v.interval
}

// Tick applies one increment and returns the new value.
func (v *VisitorCounter) Tick() int64 {
	return v.count.Add(v.step())
}

// Run ticks until ctx is done.
func (v *VisitorCounter) Run(ctx context.Context) {
	ticker := time.NewTicker(v.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			v.Tick()
		}
	}
}
