package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"complaint-portal/internal/pkg/logger"
)

var ErrNack = errors.New("broker rejected message")

type Publisher struct {
	channelManager *ChannelManager
	mu             sync.Mutex
	declared       map[string]bool
	maxRetries     int
	retryInterval  time.Duration
	ctx            context.Context
	cancel         context.CancelFunc
}

type PublishOptions struct {
	QueueOpts    *QueueConfig
	QueueName    string
	Exchange     string
	Mandatory    bool
	MaxRetries   int
	RetryBackoff time.Duration
}

func DefaultPublishOptions(queueName string) *PublishOptions {
	return &PublishOptions{
		QueueName:    queueName,
		MaxRetries:   3,
		RetryBackoff: time.Second * 2,
	}
}

func NewPublisher(ctx context.Context, connManager *ConnectionManager) (*Publisher, error) {
	ctx, cancel := context.WithCancel(ctx)

	return &Publisher{
		channelManager: NewChannelManager(ctx, connManager),
		declared:       map[string]bool{},
		maxRetries:     3,
		retryInterval:  time.Second * 2,
		ctx:            ctx,
		cancel:         cancel,
	}, nil
}

func (p *Publisher) declareQueue(name string, config *QueueConfig) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.declared[name] {
		return nil
	}

	ch, err := p.channelManager.GetChannel()
	if err != nil {
		return fmt.Errorf("failed to get channel: %w", err)
	}

	cfg := config
	if cfg == nil {
		cfg = DefaultQueueConfig()
	}

	if _, err := ch.QueueDeclare(name, cfg.Durable, cfg.AutoDelete, cfg.Exclusive, cfg.NoWait, cfg.Args); err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}
	p.declared[name] = true
	return nil
}

// PublishWithContext publishes msg and waits for the broker confirm,
// retrying with linear backoff.
func (p *Publisher) PublishWithContext(ctx context.Context, msg *Message, opts *PublishOptions) error {
	maxRetries := opts.MaxRetries
	if maxRetries == 0 {
		maxRetries = p.maxRetries
	}
	backoff := opts.RetryBackoff
	if backoff == 0 {
		backoff = p.retryInterval
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("context canceled during retry: %w", ctx.Err())
			case <-time.After(backoff * time.Duration(attempt)):
			}
		}

		if opts.QueueName != "" && opts.Exchange == "" {
			if err := p.declareQueue(opts.QueueName, opts.QueueOpts); err != nil {
				lastErr = err
				logger.Warning.Printf("Failed to declare queue on attempt %d: %v\n", attempt, err)
				continue
			}
		}

		if err := p.publishMessage(ctx, opts, msg); err != nil {
			lastErr = err
			p.channelManager.Invalidate()
			logger.Warning.Printf("Failed to publish message on attempt %d: %v\n", attempt, err)
			continue
		}
		return nil
	}

	return fmt.Errorf("failed to publish message after %d attempts: %w", maxRetries, lastErr)
}

func (p *Publisher) publishMessage(ctx context.Context, opts *PublishOptions, msg *Message) error {
	ch, err := p.channelManager.GetChannel()
	if err != nil {
		return fmt.Errorf("failed to get channel: %w", err)
	}

	confirm, err := ch.PublishWithDeferredConfirmWithContext(
		ctx,
		opts.Exchange,
		opts.QueueName,
		opts.Mandatory,
		false,
		msg.GeneratePayload(),
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	ack, err := confirm.WaitContext(ctx)
	if err != nil {
		return err
	}
	if !ack {
		return ErrNack
	}
	return nil
}

func (p *Publisher) Close() error {
	p.cancel()
	if err := p.channelManager.Close(); err != nil {
		return fmt.Errorf("failed to close channel: %w", err)
	}
	return nil
}
