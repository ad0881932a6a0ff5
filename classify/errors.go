// Package classify turns the raw completion signals of a single HTTP
// request attempt into exactly one classified result. The classifier is a
// pure function: no I/O, no logging, no shared state, safe to call from any
// goroutine.
package classify

import (
	"errors"
	"fmt"
)

// ErrNoData marks an attempt that completed without a payload. The
// classifier synthesizes it because a missing body is disqualifying on its
// own, no transport error required. Detect it with errors.Is.
var ErrNoData = errors.New("no data provided")

// Kind identifies the cause attached to a failed classification.
// The set is closed; every failure carries exactly one Kind.
type Kind int

const (
	// KindNoResponse: no HTTP-shaped response and no transport error.
	// The transport produced something unrecognizable, or nothing at all.
	KindNoResponse Kind = iota

	// KindTransportError: the transport reported an error (DNS, TLS,
	// timeout, canceled context). An HTTP response may or may not exist.
	KindTransportError

	// KindStatusCode: the server answered with a status in [400,600).
	KindStatusCode

	// KindCouldNotParseData: the payload was missing (ErrNoData) or the
	// resource parser rejected it.
	KindCouldNotParseData
)

// String returns the machine-friendly name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNoResponse:
		return "no_response"
	case KindTransportError:
		return "transport_error"
	case KindStatusCode:
		return "status_code"
	case KindCouldNotParseData:
		return "could_not_parse_data"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// NetworkError is the cause attached to every failed Result.
type NetworkError struct {
	Kind Kind

	// StatusCode is set only for KindStatusCode.
	StatusCode int

	// Err holds the underlying transport or parse error, or ErrNoData for
	// a missing payload. Nil for KindNoResponse and KindStatusCode.
	Err error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	switch e.Kind {
	case KindStatusCode:
		return fmt.Sprintf("%s: HTTP %d", e.Kind, e.StatusCode)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Kind, e.Err)
		}
		return e.Kind.String()
	}
}

// Unwrap exposes the underlying error for errors.Is / errors.As chains.
func (e *NetworkError) Unwrap() error { return e.Err }

// IsNoData reports whether err stems from a missing payload.
func IsNoData(err error) bool { return errors.Is(err, ErrNoData) }

// AsNetworkError unwraps err to a *NetworkError if one is in the chain.
func AsNetworkError(err error) (*NetworkError, bool) {
	var ne *NetworkError
	if errors.As(err, &ne) {
		return ne, true
	}
	return nil, false
}
