package restclient

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the authorization transport wrapper is
// installed, so transport-related options (like debug logging) will be
// placed underneath the bearer wrapper. Options must be deterministic and
// side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the client.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request (including connection, TLS handshake, redirects, and reading the
// response). The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client entirely. Useful for
// injecting custom transports or test round-trippers.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithBearerToken configures a static bearer token added to every request
// via an Authorization transport wrapper.
func WithBearerToken(token string) Option {
	return func(c *Client) error {
		if token == "" {
			return fmt.Errorf("bearer token must not be empty")
		}
		c.bearer = token
		return nil
	}
}

// WithDefaultHeader adds a client-level header sent with every request.
// Resource-level headers take precedence over defaults.
func WithDefaultHeader(key, value string) Option {
	return func(c *Client) error {
		if key == "" {
			return fmt.Errorf("header key must not be empty")
		}
		c.defaultHeader.Add(key, value)
		return nil
	}
}

// WithAsyncWorkers tunes the sharded executor backing FetchAsync: shards is
// the number of parallel workers, queueSize the buffered capacity per shard.
func WithAsyncWorkers(shards, queueSize int) Option {
	return func(c *Client) error {
		if shards <= 0 || queueSize <= 0 {
			return fmt.Errorf("async workers: shards and queue size must be > 0")
		}
		c.execCfg.Shards = shards
		c.execCfg.QueueSize = queueSize
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// The debug transport is installed beneath the bearer wrapper; logs are
// emitted before the request is forwarded to the next transport.
// Do not enable this option in production environments as it increases
// verbosity and may include headers and method/URL metadata in logs.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}
