package stub

import (
	"net/http"
	"strings"
	"time"

	"github.com/skillstub/skillstub/pkg/logger"
)

// Option applies a configuration option to the Transport.
type Option func(*Transport)

// WithPrefix sets the API prefix gated by the transport.
func WithPrefix(prefix string) Option {
	return func(t *Transport) {
		prefix = strings.TrimSuffix(prefix, "/")
		if prefix != "" && strings.HasPrefix(prefix, "/") {
			t.prefix = prefix
		}
	}
}

// WithFallback sets the transport used for requests outside the prefix.
func WithFallback(rt http.RoundTripper) Option {
	return func(t *Transport) {
		if rt != nil {
			t.fallback = rt
		}
	}
}

// WithLatency sets a fixed artificial delay for simulated responses.
func WithLatency(d time.Duration) Option {
	return func(t *Transport) {
		if d >= 0 {
			t.sim.minLatency = d
			t.sim.maxLatency = d
		}
	}
}

// WithLatencyRange sets the simulated latency range.
func WithLatencyRange(minLatency, maxLatency time.Duration) Option {
	return func(t *Transport) {
		if minLatency >= 0 && maxLatency >= minLatency {
			t.sim.minLatency = minLatency
			t.sim.maxLatency = maxLatency
		}
	}
}

// WithLogger sets a custom logger for the transport.
func WithLogger(log logger.Logger) Option {
	return func(t *Transport) {
		if log != nil {
			t.log = log
		}
	}
}
