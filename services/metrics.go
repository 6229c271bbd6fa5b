package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup outcomes
const (
	OutcomeOK                = "ok"
	OutcomeMissingCredential = "missing_credential"
	OutcomeUnresolved        = "unresolved"
	OutcomeUpstreamError     = "upstream_error"
	OutcomeError             = "error"
)

var (
	// LookupsTotal counts pricing lookups by outcome
	LookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pricing",
			Name:      "lookups_total",
			Help:      "Total number of pricing lookups",
		},
		[]string{"outcome"},
	)

	// UpstreamDuration tracks eBay Finding API latency
	UpstreamDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "pricing",
			Name:      "upstream_duration_seconds",
			Help:      "eBay Finding API call duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
	)

	// HTTPRequestsTotal counts handled HTTP requests
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pricing",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
)
