package restclient

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/harborline/restclient/classify"
	"github.com/harborline/restclient/internal/job"
	"github.com/harborline/restclient/internal/request"
	"github.com/harborline/restclient/internal/shardqueue"
	"github.com/harborline/restclient/resource"
)

// errNilParser guards resources declared without a parse capability.
var errNilParser = errors.New("restclient: resource has no parser")

// errNilHandler guards async fetches without a completion handler.
var errNilHandler = errors.New("restclient: nil completion handler")

// Fetch issues one request attempt for res and classifies the outcome.
//
// The returned error covers only what happens before the attempt: an invalid
// resource spec or an already-canceled context. Everything that happens once
// the request is in flight (transport errors, bad status codes, unparseable
// payloads) is classified into the Result, never returned as a Go error.
func Fetch[M any](ctx context.Context, c *Client, res resource.Resource[M]) (classify.Result[M], error) {
	var zero classify.Result[M]
	if res.Parse == nil {
		return zero, errNilParser
	}
	req, err := request.Build(ctx, c.baseURL, res.Spec, c.defaultHeader)
	if err != nil {
		return zero, err
	}

	resp, transportErr := c.http.Do(req)
	var body []byte
	if resp != nil {
		b, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if readErr != nil {
			// Body unusable: classification proceeds with no payload.
			if transportErr == nil {
				transportErr = readErr
			}
		} else {
			body = b
		}
	}

	r := classify.Response(body, resp, transportErr, res.Parse)
	observeFetch(req.Method, r.Err)
	return r, nil
}

// FetchAsync enqueues one fetch for res on the shard derived from key and
// invokes handler exactly once with the classified result. Fetches sharing a
// key run in submission order; different keys may run in parallel.
//
// Enqueue problems are reported synchronously: ErrBackPressure when the
// shard queue is full, the executor-closed error after Close. A classified
// failure is additionally surfaced to the executor's error handler so async
// failures stay observable even when handler ignores them.
//
// A resource that fails to build (invalid spec, canceled context) never goes
// out on the wire; since the handler is still owed exactly one result, the
// build error is delivered as a KindTransportError failure — "the attempt
// could not reach the transport" — with the build error as its cause.
func FetchAsync[M any](ctx context.Context, c *Client, key string, res resource.Resource[M], handler func(classify.Result[M])) error {
	if handler == nil {
		return errNilHandler
	}
	if key == "" {
		key = res.Spec.Path
	}
	shard := job.ShardLabel(key)

	j := job.New(func(jobCtx context.Context) error {
		r, err := Fetch(jobCtx, c, res)
		if err != nil {
			r = classify.Result[M]{Err: &classify.NetworkError{Kind: classify.KindTransportError, Err: err}}
		}
		// Count before delivering so observers woken by the handler see
		// the updated series.
		if r.Err != nil {
			asyncFailuresTotal.WithLabelValues(shard).Inc()
		}
		handler(r)
		if r.Err != nil {
			return r.Err
		}
		return nil
	})

	if err := c.exec.Submit(ctx, key, j); err != nil {
		if errors.Is(err, shardqueue.ErrQueueFull) {
			return fmt.Errorf("%w: %v", ErrBackPressure, err)
		}
		return err
	}
	asyncEnqueuedTotal.WithLabelValues(shard).Inc()
	return nil
}
