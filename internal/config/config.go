// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Addr            string        `yaml:"addr" env:"SERVER_ADDR"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
		CORSOrigins     []string      `yaml:"cors_origins"`
		// RateLimit is the sustained requests per second across all clients. Zero disables limiting.
		RateLimit float64 `yaml:"rate_limit" env:"RATE_LIMIT"`
		RateBurst int     `yaml:"rate_burst" env:"RATE_BURST"`
	} `yaml:"server"`

	Database struct {
		URL string `yaml:"url" env:"DATABASE_URL"`
	} `yaml:"database"`

	RabbitMQ struct {
		URL   string `yaml:"url" env:"RABBITMQ_URL"`
		Queue string `yaml:"queue" env:"RABBITMQ_QUEUE"`
	} `yaml:"rabbitmq"`

	Workers int `yaml:"workers" env:"AUDIT_WORKERS"`

	Auth struct {
		Enabled   bool   `yaml:"enabled" env:"AUTH_ENABLED"`
		JWTSecret string `yaml:"jwt_secret" env:"JWT_SECRET"`
	} `yaml:"auth"`

	Log struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"log"`
}

// LoadConfig reads the YAML file at path, then applies variables from .env
// and the environment on top. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to unmarshal config: %w", err)
			}
		}
	}

	if err := envdecode.Decode(cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("failed to decode environment: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 5 * time.Second
	}
	if c.Server.RateLimit > 0 && c.Server.RateBurst == 0 {
		c.Server.RateBurst = int(c.Server.RateLimit) + 1
	}
	if c.RabbitMQ.Queue == "" {
		c.RabbitMQ.Queue = "property_events"
	}
	if c.Workers <= 0 {
		c.Workers = 4
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate reports settings the server cannot run without.
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return errors.New("database url is required (database.url or DATABASE_URL)")
	}
	if c.Auth.Enabled && c.Auth.JWTSecret == "" {
		return errors.New("auth is enabled but no jwt secret is configured")
	}
	return nil
}
