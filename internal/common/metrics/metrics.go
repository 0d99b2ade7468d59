// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProxyRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coach_proxy_requests_total",
			Help: "Total proxy requests by provider, action and status code",
		},
		[]string{"provider", "action", "status"},
	)

	ProviderCallsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coach_provider_calls_failed_total",
			Help: "Total failed vendor API calls by provider and error code",
		},
		[]string{"provider", "error_code"},
	)

	ProviderCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "coach_provider_call_duration_seconds",
			Help:    "Duration of vendor API calls in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
		},
		[]string{"provider", "action"},
	)

	ProviderAvailable = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "coach_provider_available",
			Help: "Whether a provider has complete configuration (1) or not (0)",
		},
		[]string{"provider"},
	)
)
