// Package request builds outgoing HTTP requests from resource specs. It is
// the glue between a resource declaration and net/http; classification of
// what comes back lives in the classify package.
package request

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/harborline/restclient/resource"
)

// HeaderRequestID is attached to every built request unless the caller
// already set one, so individual attempts can be correlated in server logs.
const HeaderRequestID = "X-Request-Id"

// Build turns a resource spec into an *http.Request against baseURL.
// defaults are client-level headers; spec headers take precedence per
// resource.MergeHeaders.
func Build(ctx context.Context, baseURL string, spec resource.Spec, defaults http.Header) (*http.Request, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	target, err := resolveURL(baseURL, spec.Path)
	if err != nil {
		return nil, err
	}
	if len(spec.Query) > 0 {
		q := target.Query()
		for k, vs := range spec.Query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		target.RawQuery = q.Encode()
	}

	var body *bytes.Reader
	if spec.Body != nil {
		body = bytes.NewReader(spec.Body)
	}

	var req *http.Request
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, spec.Method, target.String(), body)
	} else {
		req, err = http.NewRequestWithContext(ctx, spec.Method, target.String(), nil)
	}
	if err != nil {
		return nil, err
	}

	req.Header = resource.MergeHeaders(defaults, spec.Header)
	if spec.Body != nil && spec.ContentType != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", spec.ContentType)
	}
	if req.Header.Get(HeaderRequestID) == "" {
		req.Header.Set(HeaderRequestID, uuid.NewString())
	}
	return req, nil
}

// resolveURL joins path to baseURL unless path is already absolute.
func resolveURL(baseURL, path string) (*url.URL, error) {
	if strings.Contains(path, "://") {
		u, err := url.Parse(path)
		if err != nil {
			return nil, fmt.Errorf("request: parse url %q: %w", path, err)
		}
		return u, nil
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("request: parse base url %q: %w", baseURL, err)
	}
	joined := strings.TrimRight(base.String(), "/") + "/" + strings.TrimLeft(path, "/")
	u, err := url.Parse(joined)
	if err != nil {
		return nil, fmt.Errorf("request: parse url %q: %w", joined, err)
	}
	return u, nil
}
