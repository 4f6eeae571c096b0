package eventfft

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Option configures an Engine at construction time.
type Option func(*engineConfig)

type engineConfig struct {
	reference bool
	registry  prometheus.Registerer
}

// WithReference enables the dense reference adaptor (InitializeReference,
// UpdateReference, UpdateReferenceBatch, ReferenceFFT, Check). Calling any
// of those methods on an Engine built without this option returns
// ErrFeatureDisabled.
func WithReference() Option {
	return func(c *engineConfig) {
		c.reference = true
	}
}

// WithMetrics attaches Prometheus instrumentation, registered against reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *engineConfig) {
		c.registry = reg
	}
}

// WithDefaultMetrics is a shorthand for WithMetrics(prometheus.DefaultRegisterer).
func WithDefaultMetrics() Option {
	return WithMetrics(prometheus.DefaultRegisterer)
}
