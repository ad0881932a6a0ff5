package restclient

import (
	"os"
	"testing"
	"time"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("RESTCLIENT_BASE_URL", "https://api.example.com")
	t.Setenv("RESTCLIENT_TIMEOUT", "5s")
	t.Setenv("RESTCLIENT_DEBUG", "false")
	t.Setenv("RESTCLIENT_SHARDS", "2")
	t.Setenv("RESTCLIENT_QUEUE_SIZE", "16")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.BaseURL != "https://api.example.com" || cfg.Timeout != 5*time.Second {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Shards != 2 || cfg.QueueSize != 16 {
		t.Fatalf("executor cfg = %+v", cfg)
	}
}

func TestFromEnv_RequiresBaseURL(t *testing.T) {
	// t.Setenv registers the restore; the variable must be absent, not empty.
	t.Setenv("RESTCLIENT_BASE_URL", "")
	_ = os.Unsetenv("RESTCLIENT_BASE_URL")
	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error when RESTCLIENT_BASE_URL is unset")
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("RESTCLIENT_BASE_URL", "https://api.example.com")
	t.Setenv("RESTCLIENT_BEARER_TOKEN", "tok-env")
	t.Setenv("RESTCLIENT_TIMEOUT", "3s")

	c, err := NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv: %v", err)
	}
	defer func() { _ = c.Close() }()

	if c.http.Timeout != 3*time.Second {
		t.Fatalf("timeout = %v", c.http.Timeout)
	}
	if c.bearer != "tok-env" {
		t.Fatalf("bearer = %q", c.bearer)
	}
	if _, ok := c.http.Transport.(*bearerTransport); !ok {
		t.Fatal("bearer transport not installed")
	}
}
