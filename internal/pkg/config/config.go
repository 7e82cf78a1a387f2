// Package config loads service settings from RATES_* environment variables.
// Every setting has a default, so an empty environment yields a runnable service.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
)

const (
	BackendDapr     = "dapr"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

var (
	ErrUnknownBackend      = errors.New("unknown store backend")
	ErrMissingDatabaseURL  = errors.New("RATES_DATABASE_URL is required for the postgres backend")
	ErrInvalidMaxConns     = errors.New("RATES_MAX_CONNECTIONS must be positive")
	ErrInvalidStoreTimeout = errors.New("RATES_STORE_TIMEOUT must be positive")
)

type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8001"`
	StoreName       string        `env:"STORE_NAME" envDefault:"statestore"`
	StoreBackend    string        `env:"STORE_BACKEND" envDefault:"dapr"`
	StoreTimeout    time.Duration `env:"STORE_TIMEOUT" envDefault:"5s"`
	DaprHost        string        `env:"DAPR_HOST" envDefault:"localhost"`
	DaprHTTPPort    int           `env:"DAPR_HTTP_PORT" envDefault:"3501"`
	DatabaseURL     string        `env:"DATABASE_URL"`
	DatasetPath     string        `env:"DATASET_PATH"`
	DatasetHeader   bool          `env:"DATASET_HEADER" envDefault:"true"`
	LogLevel        zapcore.Level `env:"LOG_LEVEL" envDefault:"info"`
	MaxConnections  int           `env:"MAX_CONNECTIONS" envDefault:"1024"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load parses the process environment.
func Load() (*Config, error) {
	return parse(env.Options{Prefix: "RATES_"})
}

func parse(opts env.Options) (*Config, error) {
	c := &Config{}
	if err := env.ParseWithOptions(c, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) validate() error {
	switch c.StoreBackend {
	case BackendDapr, BackendMemory:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return ErrMissingDatabaseURL
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.StoreBackend)
	}
	if c.MaxConnections <= 0 {
		return ErrInvalidMaxConns
	}
	if c.StoreTimeout <= 0 {
		return ErrInvalidStoreTimeout
	}

	return nil
}

// DaprBaseURL is the sidecar's HTTP endpoint.
func (c *Config) DaprBaseURL() string {
	return "http://" + c.DaprHost + ":" + strconv.Itoa(c.DaprHTTPPort)
}
