package eventbus

import (
	"context"
	"errors"
	"sync"
	"time"

	"complaint-portal/internal/common/enum"
	"complaint-portal/internal/pkg/logger"

	"github.com/google/uuid"
)

type Event struct {
	ID          uuid.UUID               `json:"id"`
	Type        enum.LifecycleEventEnum `json:"type"`
	ComplaintID string                  `json:"complaint_id,omitempty"`
	RequestID   string                  `json:"request_id,omitempty"`
	At          time.Time               `json:"at"`
}

func NewEvent(eventType enum.LifecycleEventEnum, complaintID, requestID string) Event {
	return Event{
		ID:          uuid.New(),
		Type:        eventType,
		ComplaintID: complaintID,
		RequestID:   requestID,
		At:          time.Now().UTC(),
	}
}

type Bus interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

type noop struct{}

// Noop discards every event.
func Noop() Bus { return noop{} }

func (noop) Publish(context.Context, Event) error { return nil }
func (noop) Close() error                         { return nil }

// DefaultHistory is how many events a Memory bus keeps.
const DefaultHistory = 256

// Memory keeps the most recent events and fans them out to subscribers.
// Slow subscribers miss events rather than block publishers.
type Memory struct {
	mu          sync.Mutex
	events      []Event
	history     int
	subscribers []chan Event
	closed      bool
}

func NewMemory() *Memory {
	return NewMemoryWithHistory(DefaultHistory)
}

// NewMemoryWithHistory keeps at most history events; 0 keeps none.
func NewMemoryWithHistory(history int) *Memory {
	if history < 0 {
		history = 0
	}
	return &Memory{history: history}
}

func (m *Memory) Publish(_ context.Context, event Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	if m.history > 0 {
		if len(m.events) == m.history {
			copy(m.events, m.events[1:])
			m.events = m.events[:len(m.events)-1]
		}
		m.events = append(m.events, event)
	}
	for _, ch := range m.subscribers {
		select {
		case ch <- event:
		default:
			logger.Warning.Println("event subscriber is full, dropping", event.Type, event.ID)
		}
	}
	return nil
}

func (m *Memory) Subscribe(buffer int) <-chan Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	ch := make(chan Event, buffer)
	if m.closed {
		close(ch)
		return ch
	}
	m.subscribers = append(m.subscribers, ch)
	return ch
}

// Events returns a copy of the retained history, oldest first.
func (m *Memory) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Event(nil), m.events...)
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	m.closed = true
	for _, ch := range m.subscribers {
		close(ch)
	}
	m.subscribers = nil
	return nil
}

var ErrClosed = errors.New("event bus is closed")

type multi []Bus

// Multi publishes to every bus and joins their errors.
func Multi(buses ...Bus) Bus {
	return multi(buses)
}

func (m multi) Publish(ctx context.Context, event Event) error {
	var errs []error
	for _, b := range m {
		if err := b.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m multi) Close() error {
	var errs []error
	for _, b := range m {
		if err := b.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
