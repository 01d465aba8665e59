package complaint

import (
	"context"
	"sync"
	"time"

	"complaint-portal/internal/pkg/logger"
	"complaint-portal/internal/service/eventbus"
)

const (
	DefaultPublishTimeout = 5 * time.Second
	DefaultEventBuffer    = 128
)

// dispatcher publishes lifecycle events off the request path, one at a time
// and in submission order. A full queue drops the event.
type dispatcher struct {
	bus     eventbus.Bus
	timeout time.Duration

	mu     sync.Mutex
	closed bool
	queue  chan eventbus.Event
	done   chan struct{}
}

func newDispatcher(bus eventbus.Bus, buffer int, timeout time.Duration) *dispatcher {
	if buffer <= 0 {
		buffer = DefaultEventBuffer
	}
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}
	d := &dispatcher{
		bus:     bus,
		timeout: timeout,
		queue:   make(chan eventbus.Event, buffer),
		done:    make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *dispatcher) run() {
	defer close(d.done)
	for event := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		if err := d.bus.Publish(ctx, event); err != nil {
			logger.Warning.Println("publish", event.Type, "event for", event.ComplaintID, "failed:", err)
		}
		cancel()
	}
}

func (d *dispatcher) enqueue(event eventbus.Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		logger.Warning.Println("event dispatcher closed, dropping", event.Type, event.ID)
		return
	}
	select {
	case d.queue <- event:
	default:
		logger.Warning.Println("event queue is full, dropping", event.Type, event.ID)
	}
}

// close stops accepting events and waits until the queue is drained or ctx
// is done.
func (d *dispatcher) close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
