package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIURL      string
	SessionFile string
	HTTPTimeout time.Duration
}

func Load() (*Config, error) {
	// A .env file in the working directory is optional.
	_ = godotenv.Load()

	apiURL := os.Getenv("CAFE_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	sessionFile := os.Getenv("CAFE_SESSION_FILE")
	if sessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("CAFE_SESSION_FILE not set and home directory unknown: %w", err)
		}
		sessionFile = filepath.Join(home, ".cafectl", "session.json")
	}

	timeout := 10 * time.Second
	if raw := os.Getenv("CAFE_HTTP_TIMEOUT"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid CAFE_HTTP_TIMEOUT %q: %w", raw, err)
		}
		timeout = parsed
	}

	return &Config{
		APIURL:      apiURL,
		SessionFile: sessionFile,
		HTTPTimeout: timeout,
	}, nil
}
