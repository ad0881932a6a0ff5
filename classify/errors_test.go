package classify

import (
	"errors"
	"fmt"
	"testing"
)

func TestNetworkError_Error(t *testing.T) {
	t.Parallel()
	e := &NetworkError{Kind: KindStatusCode, StatusCode: 503}
	if got := e.Error(); got != "status_code: HTTP 503" {
		t.Fatalf("Error() = %q", got)
	}
	e = &NetworkError{Kind: KindNoResponse}
	if got := e.Error(); got != "no_response" {
		t.Fatalf("Error() = %q", got)
	}
	cause := errors.New("dial tcp: i/o timeout")
	e = &NetworkError{Kind: KindTransportError, Err: cause}
	if got := e.Error(); got != "transport_error: dial tcp: i/o timeout" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestNetworkError_Unwrap(t *testing.T) {
	t.Parallel()
	cause := errors.New("root")
	wrapped := fmt.Errorf("fetch items: %w", &NetworkError{Kind: KindTransportError, Err: cause})
	if !errors.Is(wrapped, cause) {
		t.Fatal("expected root cause in chain")
	}
	ne, ok := AsNetworkError(wrapped)
	if !ok || ne.Kind != KindTransportError {
		t.Fatalf("AsNetworkError = %v, %v", ne, ok)
	}
	if _, ok := AsNetworkError(errors.New("plain")); ok {
		t.Fatal("plain error must not unwrap to NetworkError")
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()
	if Kind(42).String() != "unknown(42)" {
		t.Fatalf("unexpected: %s", Kind(42))
	}
	if KindCouldNotParseData.String() != "could_not_parse_data" {
		t.Fatalf("unexpected: %s", KindCouldNotParseData)
	}
}
