// Package restclient is a typed client-side networking layer: resources
// declare what to request and how to parse the payload, the client issues
// the request, and every raw completion is classified into exactly one
// outcome (see the classify package).
package restclient

import (
	"context"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/harborline/restclient/internal/job"
	"github.com/harborline/restclient/internal/shardqueue"
)

// Client core. Typed fetch operations live in fetch.go; Go methods cannot
// be generic, so Fetch and FetchAsync are free functions taking a *Client.
type Client struct {
	baseURL       string
	http          *http.Client
	exec          executor
	bearer        string
	defaultHeader http.Header
	execCfg       shardqueue.Config

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client for the given base URL. Additional options can be
// provided via functional arguments.
func New(baseURL string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errEmptyBaseURL
	}

	c := &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		http:          &http.Client{Timeout: 30 * time.Second},
		defaultHeader: http.Header{},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.exec == nil {
		c.exec = newDefaultExecutor(c.execCfg)
	}

	// Wrap the transport to automatically add the Authorization header.
	if c.bearer != "" {
		c.wrapTransportWithBearer()
	}

	return c, nil
}

// wrapTransportWithBearer wraps the HTTP client's transport so every request
// carries the configured bearer token.
func (c *Client) wrapTransportWithBearer() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &bearerTransport{
		base:  baseTransport,
		token: c.bearer,
	}
}

// bearerTransport wraps an http.RoundTripper to add an Authorization header.
type bearerTransport struct {
	base  http.RoundTripper
	token string
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(cloned)
}

// Close stops the background executor (if any). Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.exec != nil {
		c.exec.Stop()
	}
	return nil
}

// Flush blocks until all previously submitted async fetches for the given
// key have been executed. It works by submitting a no-op job and waiting for
// it to run, thereby guaranteeing FIFO ordering has flushed.
func (c *Client) Flush(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	done := make(chan struct{})
	j := job.New(func(context.Context) error {
		close(done)
		return nil
	})
	if err := c.exec.Submit(ctx, key, j); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// newDefaultExecutor constructs the shardqueue executor with sane defaults.
func newDefaultExecutor(cfg shardqueue.Config) *shardqueue.ShardExecutor {
	if cfg.Shards <= 0 {
		cfg.Shards = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1000
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(err error) {
			log.Error().Err(err).Msg("async fetch failed")
		}
	}
	return shardqueue.NewShardExecutor(cfg)
}
