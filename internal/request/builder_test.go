package request

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/harborline/restclient/resource"
)

type item struct{}

func TestBuild_JoinsBaseURLAndQuery(t *testing.T) {
	t.Parallel()
	res := resource.Get("/items", resource.JSON[item]()).WithQuery("page", "2").WithQuery("q", "a b")
	req, err := Build(context.Background(), "https://api.example.com/", res.Spec, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if req.Method != http.MethodGet {
		t.Fatalf("method = %s", req.Method)
	}
	if got := req.URL.String(); got != "https://api.example.com/items?page=2&q=a+b" {
		t.Fatalf("url = %s", got)
	}
}

func TestBuild_AbsolutePathBypassesBase(t *testing.T) {
	t.Parallel()
	res := resource.Get("https://other.example.com/v2/things", resource.JSON[item]())
	req, err := Build(context.Background(), "https://api.example.com", res.Spec, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if req.URL.Host != "other.example.com" {
		t.Fatalf("host = %s", req.URL.Host)
	}
}

func TestBuild_HeaderPrecedenceAndRequestID(t *testing.T) {
	t.Parallel()
	defaults := http.Header{"Accept": {"*/*"}, "X-Env": {"test"}}
	res := resource.Get("/items", resource.JSON[item]()).WithHeader("Accept", "application/json")

	req, err := Build(context.Background(), "https://api.example.com", res.Spec, defaults)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := req.Header.Get("Accept"); got != "application/json" {
		t.Fatalf("resource header should win: %q", got)
	}
	if got := req.Header.Get("X-Env"); got != "test" {
		t.Fatalf("default header lost: %q", got)
	}
	if req.Header.Get(HeaderRequestID) == "" {
		t.Fatal("request id not attached")
	}

	// A caller-supplied request id is preserved.
	res2 := res.WithHeader(HeaderRequestID, "fixed-id")
	req2, err := Build(context.Background(), "https://api.example.com", res2.Spec, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := req2.Header.Get(HeaderRequestID); got != "fixed-id" {
		t.Fatalf("request id overridden: %q", got)
	}
}

func TestBuild_BodyAndContentType(t *testing.T) {
	t.Parallel()
	res := resource.Post("/items", []byte(`{"id":"i1"}`), "application/json", resource.JSON[item]())
	req, err := Build(context.Background(), "https://api.example.com", res.Spec, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := req.Header.Get("Content-Type"); got != "application/json" {
		t.Fatalf("content type = %q", got)
	}
	b, _ := io.ReadAll(req.Body)
	if string(b) != `{"id":"i1"}` {
		t.Fatalf("body = %s", b)
	}
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()
	res := resource.Get("", resource.JSON[item]())
	if _, err := Build(context.Background(), "https://api.example.com", res.Spec, nil); err == nil {
		t.Fatal("expected validation error for empty path")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ok := resource.Get("/items", resource.JSON[item]())
	if _, err := Build(ctx, "https://api.example.com", ok.Spec, nil); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
