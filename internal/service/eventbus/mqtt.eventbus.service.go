package eventbus

import (
	"context"
	"strings"

	"complaint-portal/internal/pkg/mqtt"
)

// MQTT publishes each event to <topic>/<type> at QoS 1.
type MQTT struct {
	client mqtt.IMqtt
	topic  string
}

func NewMQTT(client mqtt.IMqtt, topic string) *MQTT {
	return &MQTT{client: client, topic: strings.TrimSuffix(topic, "/")}
}

func (m *MQTT) Publish(ctx context.Context, event Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return m.client.Publish(m.topic+"/"+event.Type.ToString(), 1, false, event)
}

func (m *MQTT) Close() error {
	m.client.Close()
	return nil
}
