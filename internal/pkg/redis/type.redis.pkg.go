package redis

import (
	"context"
	"time"

	_redis "github.com/redis/go-redis/v9"
)

type Config struct {
	Host     string
	Port     int
	Password string
	PoolSize int
}

type Client struct {
	client *_redis.Client
	config *Config
	cancel context.CancelFunc
	ctx    context.Context
}

type IRedis interface {
	Close() error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key string) error
	Expire(ctx context.Context, key string, expiration time.Duration) error
}

const NilType = _redis.Nil
