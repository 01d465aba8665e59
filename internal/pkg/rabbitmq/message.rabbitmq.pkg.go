package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	amqp "github.com/rabbitmq/amqp091-go"
)

type Message struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Body        []byte     `json:"content"`
	Headers     amqp.Table `json:"headers,omitempty"`
	Timestamp   time.Time  `json:"timestamp"`
	ContentType string     `json:"content_type"`
}

// NewMessage encodes payload by its dynamic type: strings as text, byte
// slices as octet streams, anything else as JSON.
func NewMessage(msgType string, payload interface{}, headers amqp.Table) (*Message, error) {
	gid, err := gonanoid.New()
	if err != nil {
		return nil, err
	}
	now := time.Now()

	var body []byte
	var contentType string
	switch v := payload.(type) {
	case string:
		body = []byte(v)
		contentType = "text/plain"
	case []byte:
		body = v
		contentType = "application/octet-stream"
	default:
		body, err = json.Marshal(v)
		if err != nil {
			return nil, err
		}
		contentType = "application/json"
	}

	if headers == nil {
		headers = amqp.Table{}
	}

	return &Message{
		ID:          fmt.Sprintf("msg_%s_%d", gid, now.Unix()),
		Type:        msgType,
		Body:        body,
		Headers:     headers,
		Timestamp:   now,
		ContentType: contentType,
	}, nil
}

func (m *Message) GeneratePayload() amqp.Publishing {
	m.Headers["id"] = m.ID

	return amqp.Publishing{
		ContentType:  m.ContentType,
		Body:         m.Body,
		MessageId:    m.ID,
		Type:         m.Type,
		Timestamp:    m.Timestamp,
		DeliveryMode: amqp.Persistent,
		Headers:      m.Headers,
	}
}
