package mqtt

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"complaint-portal/internal/pkg/logger"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

var ErrTimeout = errors.New("mqtt operation timed out")

func Setup(config *Config) (IMqtt, error) {
	timeout := config.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(config.URL)
	opts.SetClientID(config.ClientID)
	opts.SetUsername(config.Username)
	opts.SetPassword(config.Password)
	opts.SetAutoReconnect(true)
	opts.OnConnect = func(client mqtt.Client) {
		logger.Info.Println("Connected to MQTT broker", config.URL)
	}
	opts.OnConnectionLost = func(client mqtt.Client, err error) {
		logger.Error.Printf("MQTT connection lost: %v\n", err)
	}

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(timeout) {
		return nil, fmt.Errorf("connect to %s: %w", config.URL, ErrTimeout)
	}
	if err := token.Error(); err != nil {
		logger.Error.Printf("Failed to connect to broker: %v\n", err)
		return nil, err
	}

	return &Client{client: client, timeout: timeout}, nil
}

// Publish JSON encodes payload and waits for the broker acknowledgement.
func (m *Client) Publish(topic string, qos byte, retained bool, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	token := m.client.Publish(topic, qos, retained, data)
	if !token.WaitTimeout(m.timeout) {
		return fmt.Errorf("publish to %s: %w", topic, ErrTimeout)
	}
	return token.Error()
}

func (m *Client) Disconnect(timeout uint) {
	m.client.Disconnect(timeout)
}

func (m *Client) Close() {
	m.client.Disconnect(250)
}
