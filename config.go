package restclient

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds client settings sourced from the environment. Variables are
// prefixed with RESTCLIENT_, e.g. RESTCLIENT_BASE_URL.
type Config struct {
	BaseURL     string        `envconfig:"BASE_URL" required:"true"`
	Timeout     time.Duration `envconfig:"TIMEOUT" default:"30s"`
	Debug       bool          `envconfig:"DEBUG"`
	BearerToken string        `envconfig:"BEARER_TOKEN"`
	Shards      int           `envconfig:"SHARDS" default:"4"`
	QueueSize   int           `envconfig:"QUEUE_SIZE" default:"1000"`
}

// FromEnv reads Config from the process environment.
func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("restclient", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromEnv constructs a Client from environment configuration. Explicit
// options are applied after the env-derived ones and may override them.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}
	base := []Option{
		WithHTTPTimeout(cfg.Timeout),
		WithAsyncWorkers(cfg.Shards, cfg.QueueSize),
	}
	if cfg.Debug {
		base = append(base, WithDebugLogging(true))
	}
	if cfg.BearerToken != "" {
		base = append(base, WithBearerToken(cfg.BearerToken))
	}
	return New(cfg.BaseURL, append(base, opts...)...)
}
