package helper

import (
	"sync"
	"time"
)

// Debouncer defers fn until wait has elapsed since the last Call. Only the
// trailing edge fires, with the arguments of the final call.
type Debouncer[T any] struct {
	mu      sync.Mutex
	fn      func(T)
	wait    time.Duration
	timer   *time.Timer
	last    T
	gen     uint64
	pending bool
}

func Debounce[T any](fn func(T), wait time.Duration) *Debouncer[T] {
	return &Debouncer[T]{fn: fn, wait: wait}
}

func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.last = arg
	d.pending = true
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
	}
	gen := d.gen
	d.timer = time.AfterFunc(d.wait, func() { d.fire(gen) })
}

func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	if !d.pending || gen != d.gen {
		d.mu.Unlock()
		return
	}
	arg := d.last
	d.pending = false
	d.mu.Unlock()

	d.fn(arg)
}

// Flush runs a pending invocation immediately.
func (d *Debouncer[T]) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	gen := d.gen
	d.mu.Unlock()
	d.fire(gen)
}

// Stop drops a pending invocation.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = false
}
