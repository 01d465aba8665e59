package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"complaint-portal/internal/pkg/logger"

	_redis "github.com/redis/go-redis/v9"
)

const reconnectAttempts = 10

func Setup(ctx context.Context, config *Config) (IRedis, error) {
	clientCtx, cancel := context.WithCancel(ctx)

	r := &Client{
		cancel: cancel,
		ctx:    clientCtx,
		config: config,
	}

	if err := r.connect(); err != nil {
		cancel()
		logger.Error.Println(err)
		return nil, err
	}

	go r.reconnectHandler()

	return r, nil
}

func (r *Client) connect() error {
	r.client = _redis.NewClient(&_redis.Options{
		Addr:     fmt.Sprintf("%s:%d", r.config.Host, r.config.Port),
		Password: r.config.Password,
		PoolSize: r.config.PoolSize,
	})

	if err := r.client.Ping(r.ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	return nil
}

func (r *Client) reconnect() error {
	if err := r.client.Ping(r.ctx).Err(); err != nil {
		return r.connect()
	}
	return nil
}

func (r *Client) reconnectHandler() {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-r.ctx.Done():
			logger.Info.Println("Redis reconnect handler shutting down")
			return
		case <-ticker.C:
			if err := r.client.Ping(r.ctx).Err(); err == nil {
				continue
			}
			if !r.reconnectWithBackoff() {
				logger.Warning.Println("All redis reconnection attempts failed, closing client")
				r.cancel()
				return
			}
		}
	}
}

func (r *Client) reconnectWithBackoff() bool {
	for attempt := 1; attempt <= reconnectAttempts; attempt++ {
		select {
		case <-r.ctx.Done():
			return false
		case <-time.After(time.Duration(attempt) * time.Second):
		}
		logger.Warning.Printf("Redis reconnect attempt #%d", attempt)
		err := r.reconnect()
		if err == nil {
			logger.Info.Println("Reconnected to redis")
			return true
		}
		logger.Warning.Printf("Redis reconnect attempt failed: %v", err)
	}
	return false
}

// Close gracefully shuts down the connection.
func (r *Client) Close() error {
	r.cancel()
	return r.client.Close()
}

// Set stores value JSON encoded with an expiration time.
func (r *Client) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, data, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

// Get retrieves the raw value of a key. A missing key yields "" and no error.
func (r *Client) Get(ctx context.Context, key string) (string, error) {
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, NilType) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return result, nil
}

// Del deletes a key.
func (r *Client) Del(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// Expire sets a timeout on a key.
func (r *Client) Expire(ctx context.Context, key string, expiration time.Duration) error {
	if err := r.client.Expire(ctx, key, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set expiration on key %s: %w", key, err)
	}
	return nil
}
