package web

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus metrics of the web server.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	sortSelections  *prometheus.CounterVec
	showMoreTotal   *prometheus.CounterVec
	activeSessions  prometheus.Gauge
	poolsServed     prometheus.Gauge
	poolReplacement prometheus.Counter
}

// NewMetrics creates and registers the metrics for the web server.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "poolboard_http_requests_total",
			Help: "Total number of HTTP requests, labeled by route, method and status code.",
		}, []string{"route", "method", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "poolboard_http_request_duration_seconds",
			Help:    "Time taken to serve an HTTP request.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		sortSelections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "poolboard_sort_selections_total",
			Help: "Total number of sort column selections, labeled by field and resulting direction.",
		}, []string{"field", "direction"}),
		showMoreTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "poolboard_show_more_total",
			Help: "Total number of show more requests, labeled by whether the window grew.",
		}, []string{"result"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "poolboard_active_sessions",
			Help: "Number of live view sessions.",
		}),
		poolsServed: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "poolboard_pools",
			Help: "Number of entries in the pool set being served.",
		}),
		poolReplacement: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "poolboard_pool_set_replacements_total",
			Help: "Total number of times the pool set was replaced.",
		}),
	}
	reg.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.sortSelections,
		m.showMoreTotal,
		m.activeSessions,
		m.poolsServed,
		m.poolReplacement,
	)
	return m
}
