package infrastructure

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetricsAdapter implements the MetricsCollector port with
// Prometheus collectors and keeps a small in-process summary for the JSON
// metrics endpoint.
type PrometheusMetricsAdapter struct {
	UpstreamRequests *prometheus.CounterVec
	UpstreamLatency  *prometheus.HistogramVec
	ScenesResolved   *prometheus.CounterVec

	mu       sync.Mutex
	upstream map[string]map[string]int64
	scenes   map[string]int64
}

// NewPrometheusMetricsAdapter registers the collectors with reg. Pass
// prometheus.DefaultRegisterer to expose them on the default /metrics handler.
func NewPrometheusMetricsAdapter(reg prometheus.Registerer) *PrometheusMetricsAdapter {
	factory := promauto.With(reg)

	return &PrometheusMetricsAdapter{
		UpstreamRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skycast_upstream_requests_total",
				Help: "The total number of upstream requests by provider, operation and outcome",
			},
			[]string{"provider", "operation", "outcome"},
		),
		UpstreamLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "skycast_upstream_request_duration_seconds",
				Help:    "Upstream request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider", "operation"},
		),
		ScenesResolved: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skycast_scenes_resolved_total",
				Help: "The total number of resolved scenes by day period and condition",
			},
			[]string{"period", "condition"},
		),
		upstream: make(map[string]map[string]int64),
		scenes:   make(map[string]int64),
	}
}

// RecordUpstreamCall records one upstream request
func (m *PrometheusMetricsAdapter) RecordUpstreamCall(provider, operation, outcome string, duration time.Duration) {
	m.UpstreamRequests.WithLabelValues(provider, operation, outcome).Inc()
	m.UpstreamLatency.WithLabelValues(provider, operation).Observe(duration.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()
	outcomes, ok := m.upstream[provider]
	if !ok {
		outcomes = make(map[string]int64)
		m.upstream[provider] = outcomes
	}
	outcomes[outcome]++
}

// RecordScene records one resolved scene
func (m *PrometheusMetricsAdapter) RecordScene(period, condition string) {
	m.ScenesResolved.WithLabelValues(period, condition).Inc()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.scenes[period]++
}

// GetMetrics returns upstream outcome counts per provider and scene counts per period
func (m *PrometheusMetricsAdapter) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	upstream := make(map[string]interface{}, len(m.upstream))
	for provider, outcomes := range m.upstream {
		copied := make(map[string]int64, len(outcomes))
		for outcome, count := range outcomes {
			copied[outcome] = count
		}
		upstream[provider] = copied
	}

	scenes := make(map[string]int64, len(m.scenes))
	for period, count := range m.scenes {
		scenes[period] = count
	}

	return map[string]interface{}{
		"upstream": upstream,
		"scenes":   scenes,
	}, nil
}
