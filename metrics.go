package restclient

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/harborline/restclient/classify"
)

var (
	fetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "restclient",
			Name:      "fetches_total",
			Help:      "Completed fetch attempts by method and classified outcome.",
		},
		[]string{"method", "outcome"},
	)

	asyncEnqueuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "restclient",
			Name:      "async_fetches_enqueued_total",
			Help:      "Async fetches accepted into the shard executor.",
		},
		[]string{"shard"},
	)

	asyncFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "restclient",
			Name:      "async_fetch_failures_total",
			Help:      "Async fetches whose classified result was a failure.",
		},
		[]string{"shard"},
	)
)

// observeFetch records one classified attempt.
func observeFetch(method string, cause *classify.NetworkError) {
	outcome := "success"
	if cause != nil {
		outcome = cause.Kind.String()
	}
	fetchesTotal.WithLabelValues(method, outcome).Inc()
}
