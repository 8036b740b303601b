package proxy

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Request outcomes.
const (
	outcomeForwarded       = "forwarded"
	outcomeUnauthenticated = "unauthenticated"
	outcomeRedirected      = "redirected"
	outcomeUpstreamError   = "upstream_error"
	outcomeBodyTooLarge    = "body_too_large"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sync_hub_proxy_requests_total",
		Help: "Requests handled by the gateway, by backend and outcome.",
	}, []string{"backend", "outcome"})

	upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sync_hub_proxy_upstream_duration_seconds",
		Help:    "Time until the upstream response headers arrived.",
		Buckets: prometheus.DefBuckets,
	}, []string{"backend"})
)
