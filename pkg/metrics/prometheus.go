// Package metrics provides Prometheus metrics for the skillstub
// simulated backend.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager holds all Prometheus metrics for the stub.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         *prometheus.Registry

	// Simulated traffic metrics.
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	passthroughs    prometheus.Counter

	// Store health metrics.
	storeSkills       prometheus.Gauge
	storeDecodeFailed prometheus.Counter

	// Badge metrics.
	badgeAwards *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Initialize global metrics on a private registry so the default Go
// collectors of a host application are never disturbed.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager()
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "skillstub",
		subsystem:        "api",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	factory := promauto.With(m.registry)

	m.requests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "requests_total",
		Help:      "Simulated requests handled, by route, method and status code.",
	}, []string{"route", "method", "code"})

	m.requestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "request_duration_seconds",
		Help:      "End-to-end duration of simulated requests, including artificial latency.",
		Buckets:   m.histogramBuckets,
	}, []string{"route", "method", "code"})

	m.passthroughs = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "passthrough_total",
		Help:      "Requests outside the API prefix handed to the real transport.",
	})

	m.storeSkills = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "store",
		Name:      "skills",
		Help:      "Number of skills in the persisted collection after the last save.",
	})

	m.storeDecodeFailed = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "store",
		Name:      "decode_failures_total",
		Help:      "Times the persisted payload was unreadable and reset to empty.",
	})

	m.badgeAwards = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "badges",
		Name:      "awards_total",
		Help:      "Badge occurrences in badge reads, by badge id.",
	}, []string{"badge"})
}

// Handler returns an HTTP handler exposing the manager's registry.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordRequest records one simulated request outcome.
func (m *Manager) RecordRequest(route, method, code string) {
	if !m.enabled {
		return
	}
	m.requests.WithLabelValues(route, method, code).Inc()
}

// RecordRequestDuration records the duration of one simulated request.
func (m *Manager) RecordRequestDuration(route, method, code string, seconds float64) {
	if !m.enabled {
		return
	}
	m.requestDuration.WithLabelValues(route, method, code).Observe(seconds)
}

// RecordPassthrough counts a request handed to the real transport.
func (m *Manager) RecordPassthrough() {
	if !m.enabled {
		return
	}
	m.passthroughs.Inc()
}

// UpdateStoreSkills sets the persisted collection size gauge.
func (m *Manager) UpdateStoreSkills(n int) {
	if !m.enabled {
		return
	}
	m.storeSkills.Set(float64(n))
}

// RecordStoreDecodeFailure counts a corrupt-slot reset.
func (m *Manager) RecordStoreDecodeFailure() {
	if !m.enabled {
		return
	}
	m.storeDecodeFailed.Inc()
}

// RecordBadgeAward counts a badge appearing in a badge read.
func (m *Manager) RecordBadgeAward(badgeID string) {
	if !m.enabled {
		return
	}
	m.badgeAwards.WithLabelValues(badgeID).Inc()
}

// Package-level helpers operating on the global manager.

// Default returns the global metrics manager.
func Default() *Manager { return globalManager }

// Handler exposes the global registry over HTTP.
func Handler() http.Handler { return globalManager.Handler() }

// RecordRequest records one simulated request on the global manager.
func RecordRequest(route, method, code string) {
	globalManager.RecordRequest(route, method, code)
}

// RecordRequestDuration records a simulated request duration on the global manager.
func RecordRequestDuration(route, method, code string, seconds float64) {
	globalManager.RecordRequestDuration(route, method, code, seconds)
}

// RecordPassthrough counts a passthrough on the global manager.
func RecordPassthrough() { globalManager.RecordPassthrough() }

// UpdateStoreSkills sets the collection size gauge on the global manager.
func UpdateStoreSkills(n int) { globalManager.UpdateStoreSkills(n) }

// RecordStoreDecodeFailure counts a corrupt-slot reset on the global manager.
func RecordStoreDecodeFailure() { globalManager.RecordStoreDecodeFailure() }

// RecordBadgeAward counts a badge award on the global manager.
func RecordBadgeAward(badgeID string) { globalManager.RecordBadgeAward(badgeID) }
