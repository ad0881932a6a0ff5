package classify

import "net/http"

// HTTPResponse is a classify-owned interface that lets the classifier
// recognize an HTTP-shaped transport response without importing transport
// packages. A transport response that does not implement it (and is not an
// *http.Response) is treated as absent for classification purposes.
type HTTPResponse interface {
	HTTPStatusCode() int
	HTTPHeader() http.Header
	HTTPURL() string
}

// HTTPInfo is the transport-level descriptor of an HTTP exchange: present
// only when the attempt reached a server and got a recognizable HTTP
// response back, absent for connection-level failures.
type HTTPInfo struct {
	StatusCode int
	Header     http.Header
	URL        string
}

// Narrow extracts the HTTP-level descriptor from a raw transport response.
// It accepts *http.Response directly and anything implementing HTTPResponse;
// every other value, nil included, yields nil.
func Narrow(resp any) *HTTPInfo {
	switch r := resp.(type) {
	case *http.Response:
		if r == nil {
			return nil
		}
		info := &HTTPInfo{StatusCode: r.StatusCode, Header: r.Header}
		if r.Request != nil && r.Request.URL != nil {
			info.URL = r.Request.URL.String()
		}
		return info
	case HTTPResponse:
		return &HTTPInfo{StatusCode: r.HTTPStatusCode(), Header: r.HTTPHeader(), URL: r.HTTPURL()}
	default:
		return nil
	}
}

// ParseFunc decodes a raw payload into a model. Implementations must report
// malformed input through the error return only, never by panicking.
type ParseFunc[M any] func([]byte) (M, error)

// Result is the single classified outcome of one request attempt.
//
// Exactly one shape is populated per value: on success Err is nil and Model
// plus HTTP are set; on failure Err carries the cause, HTTP is set only when
// an HTTP-shaped response existed, and ParseErr preserves the raw parser
// error when parsing was attempted and failed. A Result is built once and
// never mutated.
type Result[M any] struct {
	// Model is the parsed payload. Meaningful only when Err is nil.
	Model M

	// HTTP describes the transport-level response when one existed.
	HTTP *HTTPInfo

	// ParseErr is the raw parser error, kept for inspection even when a
	// status code or transport error is surfaced as the cause instead.
	ParseErr error

	// Err is the classified cause. Nil means success.
	Err *NetworkError
}

// Success reports whether the attempt produced a parsed model.
func (r Result[M]) Success() bool { return r.Err == nil }
