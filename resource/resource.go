// Package resource declares HTTP resources: what request to issue and how
// to decode the payload that comes back. A resource carries no connection
// state; the same value can be fetched any number of times.
package resource

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/harborline/restclient/classify"
)

// Spec is the transport-agnostic description of an outgoing request.
type Spec struct {
	// Method is the HTTP method. Empty defaults to GET during validation.
	Method string

	// Path is joined to the client's base URL. An absolute URL (with
	// scheme) bypasses the base URL entirely.
	Path string

	// Header holds resource-specific header fields. They take precedence
	// over the client's default headers.
	Header http.Header

	// Query items are appended to any query already present in Path.
	Query url.Values

	// Body is the raw request payload; nil means no body.
	Body []byte

	// ContentType is set as the Content-Type header when Body is present.
	ContentType string
}

// Resource pairs a request spec with the capability to decode its response
// payload into M.
type Resource[M any] struct {
	Spec

	// Parse decodes the response payload. Required.
	Parse classify.ParseFunc[M]
}

// New builds a resource with the given method, path and parser.
func New[M any](method, path string, parse classify.ParseFunc[M]) Resource[M] {
	return Resource[M]{Spec: Spec{Method: method, Path: path}, Parse: parse}
}

// Get declares a GET resource.
func Get[M any](path string, parse classify.ParseFunc[M]) Resource[M] {
	return New(http.MethodGet, path, parse)
}

// Post declares a POST resource with the given payload.
func Post[M any](path string, body []byte, contentType string, parse classify.ParseFunc[M]) Resource[M] {
	r := New(http.MethodPost, path, parse)
	r.Body = body
	r.ContentType = contentType
	return r
}

// Put declares a PUT resource with the given payload.
func Put[M any](path string, body []byte, contentType string, parse classify.ParseFunc[M]) Resource[M] {
	r := New(http.MethodPut, path, parse)
	r.Body = body
	r.ContentType = contentType
	return r
}

// Delete declares a DELETE resource.
func Delete[M any](path string, parse classify.ParseFunc[M]) Resource[M] {
	return New(http.MethodDelete, path, parse)
}

// WithHeader returns a copy of the resource with an extra header field.
func (r Resource[M]) WithHeader(key, value string) Resource[M] {
	r.Spec.Header = cloneHeader(r.Spec.Header)
	r.Spec.Header.Add(key, value)
	return r
}

// WithQuery returns a copy of the resource with an extra query item.
func (r Resource[M]) WithQuery(key, value string) Resource[M] {
	q := url.Values{}
	for k, vs := range r.Spec.Query {
		q[k] = append([]string(nil), vs...)
	}
	q.Add(key, value)
	r.Spec.Query = q
	return r
}

// Validate checks the spec and fills in defaults. It mutates the receiver,
// so callers pass a pointer to their own copy.
func (s *Spec) Validate() error {
	if strings.TrimSpace(s.Path) == "" {
		return fmt.Errorf("resource: path must not be empty")
	}
	if s.Method == "" {
		s.Method = http.MethodGet
	}
	return nil
}

func cloneHeader(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, vs := range h {
		out[k] = append([]string(nil), vs...)
	}
	return out
}
