package mqtt

import (
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

type Client struct {
	client  mqtt.Client
	timeout time.Duration
}

type Config struct {
	URL      string
	ClientID string
	Username string
	Password string
	// ConnectTimeout bounds the initial connect and each publish wait.
	ConnectTimeout time.Duration
}

type IMqtt interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) error
	Disconnect(timeout uint)
	Close()
}
