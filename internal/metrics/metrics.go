// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swapi_http_requests_total",
			Help: "HTTP requests by method, route template and status code",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "swapi_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route template",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	HTTPInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "swapi_http_requests_in_flight",
			Help: "Requests currently being served",
		},
	)

	FavoriteMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swapi_favorite_mutations_total",
			Help: "Favorite create/delete attempts by reference kind and outcome",
		},
		[]string{"kind", "op", "result"},
	)

	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "swapi_rate_limited_total",
			Help: "Requests rejected by the per-IP rate limiter",
		},
	)
)

// RecordRequest observes one finished request. route is the gin route
// template ("/people/:id"), never the raw path, to keep cardinality bounded.
func RecordRequest(method, route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// RecordFavorite counts a favorite mutation. op is create or delete.
func RecordFavorite(kind, op, result string) {
	FavoriteMutations.WithLabelValues(kind, op, result).Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
