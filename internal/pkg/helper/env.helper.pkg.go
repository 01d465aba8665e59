package helper

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnv reads .env style files into the process environment. Missing files
// are not an error; variables already set win over file values.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func GetEnvOrDefault(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func GetEnvAsInt(name string, fallback int) int {
	if val, ok := os.LookupEnv(name); ok {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return fallback
}

func GetEnvAsInt64(name string, fallback int64) int64 {
	if val, ok := os.LookupEnv(name); ok {
		if intVal, err := strconv.ParseInt(val, 10, 64); err == nil {
			return intVal
		}
	}
	return fallback
}

func GetEnvAsBool(name string, fallback bool) bool {
	if val, ok := os.LookupEnv(name); ok {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}

func GetEnvAsDuration(name string, fallback time.Duration) time.Duration {
	if val, ok := os.LookupEnv(name); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}

// GetEnvAsStrings splits a space or comma separated list.
func GetEnvAsStrings(name string, fallback []string) []string {
	val, ok := os.LookupEnv(name)
	if !ok || strings.TrimSpace(val) == "" {
		return fallback
	}
	return strings.FieldsFunc(val, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}
