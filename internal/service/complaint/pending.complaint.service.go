package complaint

import "context"

// Pending is an in-flight call, resolved or rejected once.
type Pending[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Async runs fn on its own goroutine.
func Async[T any](ctx context.Context, fn func(context.Context) (T, error)) *Pending[T] {
	p := &Pending[T]{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		p.value, p.err = fn(ctx)
	}()
	return p
}

func (p *Pending[T]) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the call settles or ctx is done.
func (p *Pending[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
