package attachment

import (
	"context"
	"errors"
	"testing"
	"time"

	"complaint-portal/internal/common/enum"
	_type "complaint-portal/internal/common/type"

	"github.com/nalgeon/be"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore(DefaultLimits(), time.Minute)
	store.now = func() time.Time { return now }

	s, err := store.Load(ctx, "sess")
	be.Err(t, err, nil)
	s.Add([]_type.BufferedFile{candidate("a.pdf", enum.MimePDF, 1)})
	be.Err(t, store.Save(ctx, "sess", s), nil)

	again, err := store.Load(ctx, "sess")
	be.Err(t, err, nil)
	be.Equal(t, len(again.Files()), 1)

	now = now.Add(2 * time.Minute)
	be.Equal(t, store.Sweep(), 1)

	expired, err := store.Load(ctx, "sess")
	be.Err(t, err, nil)
	be.Equal(t, len(expired.Files()), 0)

	be.Err(t, store.Delete(ctx, "sess"), nil)
	be.Equal(t, store.Sweep(), 0)
}

type fakeRedis struct {
	data map[string]string
	ttl  map[string]time.Duration
	err  error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (f *fakeRedis) Close() error { return nil }

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, exp time.Duration) error {
	f.data[key] = value.(string)
	f.ttl[key] = exp
	return f.err
}

func (f *fakeRedis) Get(_ context.Context, key string) (string, error) {
	return f.data[key], f.err
}

func (f *fakeRedis) Del(_ context.Context, key string) error {
	delete(f.data, key)
	return f.err
}

func (f *fakeRedis) Expire(_ context.Context, key string, exp time.Duration) error {
	f.ttl[key] = exp
	return f.err
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	store := NewRedisStore(client, DefaultLimits(), time.Hour)

	s, err := store.Load(ctx, "sess")
	be.Err(t, err, nil)
	be.Equal(t, len(s.Files()), 0)

	res := s.Add([]_type.BufferedFile{candidate("a.pdf", enum.MimePDF, 3)})
	be.Err(t, store.Save(ctx, "sess", s), nil)
	be.Equal(t, client.ttl[redisKeyPrefix+"sess"], time.Hour)

	loaded, err := store.Load(ctx, "sess")
	be.Err(t, err, nil)
	files := loaded.Files()
	be.Equal(t, len(files), 1)
	be.Equal(t, files[0].ID, res.Accepted[0].ID)
	be.Equal(t, string(files[0].Content), "a.pdf")

	be.Err(t, store.Delete(ctx, "sess"), nil)
	_, ok := client.data[redisKeyPrefix+"sess"]
	be.True(t, !ok)
}

func TestRedisStoreError(t *testing.T) {
	client := newFakeRedis()
	client.err = errors.New("connection refused")
	store := NewRedisStore(client, DefaultLimits(), time.Hour)

	_, err := store.Load(context.Background(), "sess")
	be.Err(t, err, "connection refused")
}
