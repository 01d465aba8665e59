package config

import (
	"testing"
	"time"

	"complaint-portal/internal/common/enum"
	"complaint-portal/internal/pkg/validation"

	"github.com/nalgeon/be"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "SESSION_SECRET", "API_ORIGIN", "API_BASE_PATH", "API_TIMEOUT",
		"MAX_FILE_SIZE", "MAX_ATTACHMENTS", "ALLOWED_FILE_TYPES", "SESSION_STORE",
		"EVENT_SINK", "MQTT_URL", "RABBITMQ_HOST", "UI_LOCALE", "VISITOR_INTERVAL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	s, err := Load()
	be.Err(t, err, nil)
	be.Equal(t, s.Env, enum.DEVELOPMENT)
	be.Equal(t, s.APIBaseURL(), "http://localhost:8000/api/v1")
	be.Equal(t, s.API.Timeout, time.Minute)
	be.Equal(t, s.Attachments.MaxFiles, DefaultMaxAttachments)
	be.Equal(t, s.Attachments.MaxFileSize, int64(DefaultMaxFileSize))
	be.Equal(t, s.Attachments.AllowedTypes, enum.AllowedAttachmentTypes)
	be.Equal(t, s.Session.Secret, devSessionSecret)
	be.Equal(t, s.Session.Store, "memory")
	be.Equal(t, s.Events.Sink, "none")
	be.Equal(t, s.UI.VisitorInterval, 30*time.Second)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_ORIGIN", "https://complaints.example.org/")
	t.Setenv("API_BASE_PATH", "api/v2/")
	t.Setenv("MAX_ATTACHMENTS", "3")
	t.Setenv("ALLOWED_FILE_TYPES", "image/png,application/pdf")
	t.Setenv("EVENT_SINK", "mqtt")
	t.Setenv("MQTT_URL", "tcp://broker:1883")

	s, err := Load()
	be.Err(t, err, nil)
	be.Equal(t, s.APIBaseURL(), "https://complaints.example.org/api/v2")
	be.Equal(t, s.Attachments.MaxFiles, 3)
	be.Equal(t, s.Attachments.AllowedTypes, []string{"image/png", "application/pdf"})
	be.Equal(t, s.Events.MQTT.URL, "tcp://broker:1883")
}

func TestLoadRejects(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	_, err := Load()
	be.Err(t, err, validation.ErrValidation)

	clearEnv(t)
	t.Setenv("EVENT_SINK", "rabbitmq")
	_, err = Load()
	be.Err(t, err, ErrMissingBroker)

	clearEnv(t)
	t.Setenv("EVENT_SINK", "kafka")
	_, err = Load()
	be.Err(t, err, validation.ErrValidation)

	clearEnv(t)
	t.Setenv("API_ORIGIN", "not a url")
	_, err = Load()
	be.Err(t, err, validation.ErrValidation)
}
