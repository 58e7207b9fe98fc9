package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	ValidationsAccepted    prometheus.Counter
	ValidationsRejected    prometheus.Counter
	NormalizationsAccepted prometheus.Counter
	NormalizationsRejected prometheus.Counter
	TokensIssued           prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		ValidationsAccepted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "personnummer_validations_accepted_total",
			Help: "Total number of personal numbers accepted by validation",
		}),
		ValidationsRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "personnummer_validations_rejected_total",
			Help: "Total number of personal numbers rejected by validation",
		}),
		NormalizationsAccepted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "personnummer_normalizations_accepted_total",
			Help: "Total number of personal numbers normalized to the canonical form",
		}),
		NormalizationsRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "personnummer_normalizations_rejected_total",
			Help: "Total number of personal numbers rejected during normalization",
		}),
		TokensIssued: promauto.NewCounter(prometheus.CounterOpts{
			Name: "personnummer_auth_tokens_issued_total",
			Help: "Total number of API auth tokens issued",
		}),
	}
}

// IncrementValidationAccepted records a personal number accepted by validation.
func (m *Metrics) IncrementValidationAccepted() {
	if m != nil {
		m.ValidationsAccepted.Inc()
	}
}

// IncrementValidationRejected records a personal number rejected by validation.
func (m *Metrics) IncrementValidationRejected() {
	if m != nil {
		m.ValidationsRejected.Inc()
	}
}

// IncrementNormalizationAccepted records a successful normalization.
func (m *Metrics) IncrementNormalizationAccepted() {
	if m != nil {
		m.NormalizationsAccepted.Inc()
	}
}

// IncrementNormalizationRejected records a failed normalization.
func (m *Metrics) IncrementNormalizationRejected() {
	if m != nil {
		m.NormalizationsRejected.Inc()
	}
}

// IncrementTokensIssued records an issued auth token.
func (m *Metrics) IncrementTokensIssued() {
	if m != nil {
		m.TokensIssued.Inc()
	}
}
