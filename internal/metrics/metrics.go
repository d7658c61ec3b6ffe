// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequests counts served requests by method, route pattern and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_http_requests_total",
		Help: "Total number of HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	// HTTPDuration records request latency by method and route pattern.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "inkwell_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// PageCacheLookups counts listing cache lookups by result (hit or miss).
	PageCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_page_cache_lookups_total",
		Help: "Listing cache lookups by result",
	}, []string{"result"})

	// ValkeyErrors counts Valkey failures by operation.
	ValkeyErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_valkey_errors_total",
		Help: "Total number of Valkey errors by operation",
	}, []string{"operation"})

	// PostViews counts recorded post views; unique is "true" for a first
	// visit by that visitor.
	PostViews = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_post_views_total",
		Help: "Recorded post page views",
	}, []string{"unique"})
)

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
