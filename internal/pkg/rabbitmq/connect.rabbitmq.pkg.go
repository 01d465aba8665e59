package rabbitmq

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"complaint-portal/internal/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

type ConnectionManager struct {
	conn          *amqp.Connection
	mu            sync.Mutex
	url           string
	isConnected   bool
	retryInterval time.Duration
	ctx           context.Context
	cancel        context.CancelFunc
}

type QueueConfig struct {
	Durable    bool
	AutoDelete bool
	Exclusive  bool
	NoWait     bool
	Args       amqp.Table
}

func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{Durable: true}
}

type Config struct {
	Username string
	Password string
	Host     string
	Port     int
	Vhost    string
}

// URL renders the AMQP URI with escaped credentials.
func (c *Config) URL() string {
	u := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(c.Username, c.Password),
		Host:   c.Host + ":" + strconv.Itoa(c.Port),
		Path:   "/" + c.Vhost,
	}
	return u.String()
}

func NewConnectionManager(ctx context.Context, config *Config) (*ConnectionManager, error) {
	ctx, cancel := context.WithCancel(ctx)

	cm := &ConnectionManager{
		url:           config.URL(),
		retryInterval: time.Second * 2,
		ctx:           ctx,
		cancel:        cancel,
	}

	if err := cm.connect(); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create connection: %w", err)
	}

	return cm, nil
}

func (cm *ConnectionManager) connect() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.isConnected {
		return nil
	}

	if err := cm.ctx.Err(); err != nil {
		return fmt.Errorf("context canceled: %w", err)
	}

	conn, err := amqp.Dial(cm.url)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	cm.conn = conn
	cm.isConnected = true

	go cm.connectionMonitor(conn)

	return nil
}

func (cm *ConnectionManager) connectionMonitor(conn *amqp.Connection) {
	connErr := conn.NotifyClose(make(chan *amqp.Error, 1))

	select {
	case <-cm.ctx.Done():
		return
	case err := <-connErr:
		if err == nil {
			return
		}
		cm.mu.Lock()
		cm.isConnected = false
		cm.mu.Unlock()
		logger.Warning.Printf("RabbitMQ connection lost: %v. Attempting to reconnect...\n", err)
	}

	for {
		err := cm.connect()
		if err == nil {
			logger.Info.Println("RabbitMQ reconnected")
			return
		}
		logger.Warning.Printf("RabbitMQ reconnect failed: %v. Retrying in %v...\n", err, cm.retryInterval)
		select {
		case <-cm.ctx.Done():
			return
		case <-time.After(cm.retryInterval):
		}
	}
}

func (cm *ConnectionManager) GetConnection() *amqp.Connection {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.ctx.Err() != nil || !cm.isConnected {
		return nil
	}

	return cm.conn
}

func (cm *ConnectionManager) Close() error {
	cm.cancel()

	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.conn != nil {
		if err := cm.conn.Close(); err != nil {
			return fmt.Errorf("failed to close connection: %w", err)
		}
		cm.conn = nil
	}

	cm.isConnected = false
	return nil
}

func (cm *ConnectionManager) IsClosed() bool {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	return cm.ctx.Err() != nil || !cm.isConnected
}
