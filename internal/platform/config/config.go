package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	StateDir       string
	LogLevel       string
}

func Load() Config {
	return Config{
		APIBaseURL:     getEnv("HRMS_API_BASE_URL", "http://localhost:8080/api"),
		RequestTimeout: getEnvDuration("HRMS_API_TIMEOUT", 10*time.Second),
		StateDir:       getEnv("HRMS_STATE_DIR", defaultStateDir()),
		LogLevel:       getEnv("HRMS_LOG_LEVEL", "info"),
	}
}

func defaultStateDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".hrmclient"
	}
	return filepath.Join(base, "hrmclient")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return fmt.Errorf("HRMS_API_BASE_URL is required")
	}
	if _, err := url.ParseRequestURI(c.APIBaseURL); err != nil {
		return fmt.Errorf("HRMS_API_BASE_URL is not a valid URL: %w", err)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("HRMS_API_TIMEOUT must be positive")
	}
	return nil
}
