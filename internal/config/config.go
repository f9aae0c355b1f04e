package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort            = "8080"
	defaultBaseURL         = "https://wps-interview.azurewebsites.net"
	defaultUpstreamTimeout = 30 * time.Second
)

type Config struct {
	App struct {
		Port        string
		ArtifactDir string
	}
	Upstream struct {
		BaseURL string
		Timeout time.Duration
	}
}

// Load reads an optional .env file and the process environment. Every
// setting has a default, so an empty environment still yields a runnable
// config.
func Load(path string) (*Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	cfg := &Config{}

	cfg.App.Port = os.Getenv("PORT")
	if cfg.App.Port == "" {
		cfg.App.Port = defaultPort
	}

	cfg.App.ArtifactDir = os.Getenv("ARTIFACT_DIR")
	if cfg.App.ArtifactDir == "" {
		cfg.App.ArtifactDir = "."
	}

	cfg.Upstream.BaseURL = os.Getenv("EXTERNAL_API_BASE_URL")
	if cfg.Upstream.BaseURL == "" {
		cfg.Upstream.BaseURL = defaultBaseURL
	}

	cfg.Upstream.Timeout = defaultUpstreamTimeout
	if raw := os.Getenv("UPSTREAM_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT %q: %w", raw, err)
		}
		cfg.Upstream.Timeout = timeout
	}

	return cfg, nil
}
