package eventbus

import (
	"context"

	"complaint-portal/internal/pkg/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
)

type publisher interface {
	PublishWithContext(ctx context.Context, msg *rabbitmq.Message, opts *rabbitmq.PublishOptions) error
	Close() error
}

// RabbitMQ publishes events as persistent JSON messages on a durable queue.
type RabbitMQ struct {
	publisher publisher
	opts      *rabbitmq.PublishOptions
}

func NewRabbitMQ(p publisher, queue string) *RabbitMQ {
	return &RabbitMQ{publisher: p, opts: rabbitmq.DefaultPublishOptions(queue)}
}

func (r *RabbitMQ) Publish(ctx context.Context, event Event) error {
	msg, err := rabbitmq.NewMessage(event.Type.ToString(), event, amqp.Table{
		"complaint_id": event.ComplaintID,
		"request_id":   event.RequestID,
	})
	if err != nil {
		return err
	}
	return r.publisher.PublishWithContext(ctx, msg, r.opts)
}

func (r *RabbitMQ) Close() error {
	return r.publisher.Close()
}
