package helper

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nalgeon/be"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("PORTAL_INT", "12")
	t.Setenv("PORTAL_BAD_INT", "twelve")
	t.Setenv("PORTAL_BOOL", "true")
	t.Setenv("PORTAL_DURATION", "1m30s")
	t.Setenv("PORTAL_LIST", "image/png, application/pdf video/mp4")
	t.Setenv("PORTAL_EMPTY", "")

	be.Equal(t, GetEnvAsInt("PORTAL_INT", 1), 12)
	be.Equal(t, GetEnvAsInt("PORTAL_BAD_INT", 1), 1)
	be.Equal(t, GetEnvAsInt64("PORTAL_INT", 1), int64(12))
	be.Equal(t, GetEnvAsBool("PORTAL_BOOL", false), true)
	be.Equal(t, GetEnvAsDuration("PORTAL_DURATION", time.Second), 90*time.Second)
	be.Equal(t, GetEnvAsStrings("PORTAL_LIST", nil), []string{"image/png", "application/pdf", "video/mp4"})
	be.Equal(t, GetEnvAsStrings("PORTAL_EMPTY", []string{"x"}), []string{"x"})
	be.Equal(t, GetEnvOrDefault("PORTAL_EMPTY", "fallback"), "fallback")
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	err := os.WriteFile(file, []byte("PORTAL_FROM_FILE=loaded\n"), 0o600)
	be.Err(t, err, nil)
	t.Setenv("PORTAL_FROM_FILE", "")
	os.Unsetenv("PORTAL_FROM_FILE")

	be.Err(t, LoadEnv(file, filepath.Join(dir, "missing.env")), nil)
	be.Equal(t, GetEnv("PORTAL_FROM_FILE"), "loaded")
}

func TestExtractCSRFToken(t *testing.T) {
	token, err := ExtractCSRFToken(strings.NewReader(
		`<form><input type="hidden" name="csrfmiddlewaretoken" value=" abc123 "></form>`))
	be.Err(t, err, nil)
	be.Equal(t, token, "abc123")

	token, err = ExtractCSRFToken(strings.NewReader(
		`<html><head><meta name="csrf-token" content="meta-token"></head></html>`))
	be.Err(t, err, nil)
	be.Equal(t, token, "meta-token")

	_, err = ExtractCSRFToken(strings.NewReader(`<p>nothing</p>`))
	be.Err(t, err, ErrCSRFTokenNotFound)
}
