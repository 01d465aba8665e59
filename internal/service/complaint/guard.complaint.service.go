package complaint

import (
	"errors"
	"sync"
)

var ErrSubmitInFlight = errors.New("a submission for this form is already in progress")

// Guard admits one in-flight operation per key.
type Guard struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewGuard() *Guard {
	return &Guard{inFlight: make(map[string]struct{})}
}

// Acquire returns a release func, or ErrSubmitInFlight when key is busy.
func (g *Guard) Acquire(key string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inFlight[key]; busy {
		return nil, ErrSubmitInFlight
	}
	g.inFlight[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.inFlight, key)
			g.mu.Unlock()
		})
	}, nil
}
