package attachment

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"complaint-portal/internal/pkg/logger"
	"complaint-portal/internal/pkg/redis"
	"complaint-portal/internal/service/attachment/model"
)

// Store persists form sessions between requests. Load never fails for an
// unknown id: it returns an empty session.
type Store interface {
	Load(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, id string, session *Session) error
	Delete(ctx context.Context, id string) error
}

type memoryEntry struct {
	session   *Session
	expiresAt time.Time
}

// MemoryStore keeps live sessions in process, so concurrent requests of the
// same form share one Session.
type MemoryStore struct {
	mu      sync.Mutex
	limits  model.Limits
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

func NewMemoryStore(limits model.Limits, ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		limits:  limits,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (m *MemoryStore) Load(_ context.Context, id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[id]
	if !ok || m.now().After(entry.expiresAt) {
		entry = memoryEntry{session: NewSession(m.limits)}
	}
	entry.expiresAt = m.now().Add(m.ttl)
	m.entries[id] = entry
	return entry.session, nil
}

func (m *MemoryStore) Save(_ context.Context, id string, session *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[id] = memoryEntry{session: session, expiresAt: m.now().Add(m.ttl)}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
	return nil
}

// Sweep drops expired sessions and reports how many were removed.
func (m *MemoryStore) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	now := m.now()
	for id, entry := range m.entries {
		if now.After(entry.expiresAt) {
			delete(m.entries, id)
			removed++
		}
	}
	return removed
}

// RunJanitor sweeps every interval until ctx is done.
func (m *MemoryStore) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				logger.Debug.Println("attachment sessions expired:", n)
			}
		}
	}
}

const redisKeyPrefix = "attachment:session:"

// RedisStore serialises the selection as JSON under a per-session key.
type RedisStore struct {
	client redis.IRedis
	limits model.Limits
	ttl    time.Duration
}

func NewRedisStore(client redis.IRedis, limits model.Limits, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, limits: limits, ttl: ttl}
}

func (r *RedisStore) Load(ctx context.Context, id string) (*Session, error) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+id)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return NewSession(r.limits), nil
	}

	var files []model.SelectedFile
	if err := json.Unmarshal([]byte(raw), &files); err != nil {
		return nil, err
	}
	return NewSession(r.limits, files...), nil
}

func (r *RedisStore) Save(ctx context.Context, id string, session *Session) error {
	raw, err := json.Marshal(session.Files())
	if err != nil {
		return err
	}
	return r.client.Set(ctx, redisKeyPrefix+id, string(raw), r.ttl)
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, redisKeyPrefix+id)
}
