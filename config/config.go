// Package config loads TTKIA client configuration from the environment.
// A .env file in the working directory is honored when present; real
// environment variables win over it.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config carries everything the client constructor needs. There is no
// process-global state: load it once and hand it to ttkia.FromConfig.
type Config struct {
	BaseURL  string        `env:"TTKIA_BASE_URL"`
	AppToken string        `env:"TTKIA_APP_TOKEN"`
	LogLevel string        `env:"TTKIA_LOG_LEVEL"`
	Timeout  time.Duration `env:"TTKIA_TIMEOUT"`
}

// Defaults returns the configuration used when the environment is silent.
func Defaults() *Config {
	return &Config{
		LogLevel: "INFO",
		Timeout:  30 * time.Second,
	}
}

// Load reads the environment (and an optional .env file) into a Config and
// validates the required fields.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required fields and normalizes the log level.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("TTKIA_BASE_URL is not set")
	}
	if strings.TrimSpace(c.AppToken) == "" {
		return fmt.Errorf("TTKIA_APP_TOKEN is not set")
	}
	c.LogLevel = strings.ToUpper(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "INFO"
	}
	switch c.LogLevel {
	case "DEBUG", "INFO", "WARNING", "WARN", "ERROR":
	default:
		return fmt.Errorf("TTKIA_LOG_LEVEL %q is not one of DEBUG, INFO, WARNING, ERROR", c.LogLevel)
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	return nil
}
