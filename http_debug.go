package restclient

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport provides detailed HTTP request/response logging for
// troubleshooting client issues: malformed requests, unexpected responses,
// auth problems, and the like.
//
// It is installed by WithDebugLogging(true), or at construction time when
// RESTCLIENT_DEBUG=true (or DEBUG=true) is set. Once installed it logs every
// exchange; the environment variables only decide installation. Logs include
// full request/response dumps, bodies and headers included, so keep it out
// of production.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}

	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled from
// the environment.
//
// RESTCLIENT_DEBUG=true targets this client specifically; DEBUG=true is the
// broader development flag. Both are matched case-sensitively.
func debugLoggingRequested() bool {
	return os.Getenv("RESTCLIENT_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
