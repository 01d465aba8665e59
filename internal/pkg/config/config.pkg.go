package config

import (
	"errors"
	"strings"
	"time"

	"complaint-portal/internal/common/enum"
	"complaint-portal/internal/pkg/helper"
	"complaint-portal/internal/pkg/validation"
)

const (
	DefaultAPIBasePath    = "/api/v1"
	DefaultMaxFileSize    = 10 * 1024 * 1024
	DefaultMaxAttachments = 10

	devSessionSecret = "development-session-secret"
)

type Server struct {
	Addr string `json:"addr" validate:"required"`
}

type API struct {
	Origin   string        `json:"origin" validate:"required,url"`
	BasePath string        `json:"basePath" validate:"required,startswith=/"`
	Timeout  time.Duration `json:"timeout" validate:"gt=0"`
	// TokenPageURL is scraped for a csrf token when the browser sent none.
	TokenPageURL string `json:"tokenPageUrl" validate:"omitempty,url"`
	CSRFToken    string `json:"-"`
}

type Attachments struct {
	MaxFileSize  int64    `json:"maxFileSize" validate:"gt=0"`
	MaxFiles     int      `json:"maxFiles" validate:"gt=0"`
	AllowedTypes []string `json:"allowedTypes" validate:"min=1,dive,required"`
}

type Session struct {
	Secret     string        `json:"-" validate:"min=16"`
	TTL        time.Duration `json:"ttl" validate:"gt=0"`
	CookieName string        `json:"cookieName" validate:"required"`
	Store      string        `json:"store" validate:"oneof=memory redis"`
}

type Redis struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Password string `json:"-"`
	PoolSize int    `json:"poolSize"`
}

type MQTT struct {
	URL      string `json:"url"`
	ClientID string `json:"clientId"`
	Username string `json:"username"`
	Password string `json:"-"`
	Topic    string `json:"topic"`
}

type RabbitMQ struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"-"`
	Queue    string `json:"queue"`
}

type Events struct {
	Sink     string   `json:"sink" validate:"oneof=none memory mqtt rabbitmq"`
	MQTT     MQTT     `json:"mqtt"`
	RabbitMQ RabbitMQ `json:"rabbitmq"`
}

type UI struct {
	Locale          string        `json:"locale" validate:"required"`
	VisitorInterval time.Duration `json:"visitorInterval" validate:"gt=0"`
	VisitorStart    int64         `json:"visitorStart" validate:"gte=0"`
}

// Settings is built once at startup and passed by value.
type Settings struct {
	Env         enum.EnvEnum `json:"env" validate:"required,enum"`
	Server      Server       `json:"server"`
	API         API          `json:"api"`
	Attachments Attachments  `json:"attachments"`
	Session     Session      `json:"session"`
	Redis       Redis        `json:"redis"`
	Events      Events       `json:"events"`
	UI          UI           `json:"ui"`
}

var ErrMissingBroker = errors.New("event sink selected without broker address")

// Load reads settings from the environment. Call helper.LoadEnv first to
// pick up a .env file.
func Load() (Settings, error) {
	env := enum.EnvEnum(helper.GetEnvOrDefault("APP_ENV", enum.DEVELOPMENT.ToString()))

	secret := helper.GetEnv("SESSION_SECRET")
	if secret == "" && env != enum.PRODUCTION {
		secret = devSessionSecret
	}

	s := Settings{
		Env: env,
		Server: Server{
			Addr: helper.GetEnvOrDefault("SERVER_ADDR", ":8080"),
		},
		API: API{
			Origin:       strings.TrimRight(helper.GetEnvOrDefault("API_ORIGIN", "http://localhost:8000"), "/"),
			BasePath:     "/" + strings.Trim(helper.GetEnvOrDefault("API_BASE_PATH", DefaultAPIBasePath), "/"),
			Timeout:      helper.GetEnvAsDuration("API_TIMEOUT", time.Minute),
			TokenPageURL: helper.GetEnv("API_TOKEN_PAGE_URL"),
			CSRFToken:    helper.GetEnv("API_CSRF_TOKEN"),
		},
		Attachments: Attachments{
			MaxFileSize:  helper.GetEnvAsInt64("MAX_FILE_SIZE", DefaultMaxFileSize),
			MaxFiles:     helper.GetEnvAsInt("MAX_ATTACHMENTS", DefaultMaxAttachments),
			AllowedTypes: helper.GetEnvAsStrings("ALLOWED_FILE_TYPES", enum.AllowedAttachmentTypes),
		},
		Session: Session{
			Secret:     secret,
			TTL:        helper.GetEnvAsDuration("SESSION_TTL", 2*time.Hour),
			CookieName: helper.GetEnvOrDefault("SESSION_COOKIE", "complaint_form"),
			Store:      helper.GetEnvOrDefault("SESSION_STORE", "memory"),
		},
		Redis: Redis{
			Host:     helper.GetEnvOrDefault("REDIS_HOST", "localhost"),
			Port:     helper.GetEnvAsInt("REDIS_PORT", 6379),
			Password: helper.GetEnv("REDIS_PASSWORD"),
			PoolSize: helper.GetEnvAsInt("REDIS_POOL_SIZE", 10),
		},
		Events: Events{
			Sink: helper.GetEnvOrDefault("EVENT_SINK", "none"),
			MQTT: MQTT{
				URL:      helper.GetEnv("MQTT_URL"),
				ClientID: helper.GetEnvOrDefault("MQTT_CLIENT_ID", "complaint-portal"),
				Username: helper.GetEnv("MQTT_USERNAME"),
				Password: helper.GetEnv("MQTT_PASSWORD"),
				Topic:    helper.GetEnvOrDefault("MQTT_TOPIC", "complaints/events"),
			},
			RabbitMQ: RabbitMQ{
				Host:     helper.GetEnv("RABBITMQ_HOST"),
				Port:     helper.GetEnvAsInt("RABBITMQ_PORT", 5672),
				Username: helper.GetEnvOrDefault("RABBITMQ_USERNAME", "guest"),
				Password: helper.GetEnvOrDefault("RABBITMQ_PASSWORD", "guest"),
				Queue:    helper.GetEnvOrDefault("RABBITMQ_QUEUE", "complaint.events"),
			},
		},
		UI: UI{
			Locale:          helper.GetEnvOrDefault("UI_LOCALE", "ar-EG"),
			VisitorInterval: helper.GetEnvAsDuration("VISITOR_INTERVAL", 30*time.Second),
			VisitorStart:    helper.GetEnvAsInt64("VISITOR_START", 0),
		},
	}

	if err := validation.Validate(s); err != nil {
		return Settings{}, err
	}
	switch {
	case s.Events.Sink == "mqtt" && s.Events.MQTT.URL == "":
		return Settings{}, ErrMissingBroker
	case s.Events.Sink == "rabbitmq" && s.Events.RabbitMQ.Host == "":
		return Settings{}, ErrMissingBroker
	}
	return s, nil
}

// APIBaseURL is the origin joined with the versioned base path.
func (s Settings) APIBaseURL() string {
	return s.API.Origin + s.API.BasePath
}
