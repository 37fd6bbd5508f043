package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Submission outcomes
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Metrics holds the Prometheus metrics for the contact form
type Metrics struct {
	Submissions *prometheus.CounterVec
	FieldErrors *prometheus.CounterVec
}

// New creates and registers all metrics on reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "contact_form_submissions_total",
			Help: "Total contact form submissions by outcome",
		}, []string{"outcome"}), // outcome: "accepted", "rejected", "failed"

		FieldErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "contact_form_field_errors_total",
			Help: "Total rejected contact form fields",
		}, []string{"field"}),
	}
}

// IncrementSubmission records a submission outcome.
func (m *Metrics) IncrementSubmission(outcome string) {
	if m != nil {
		m.Submissions.WithLabelValues(outcome).Inc()
	}
}

// IncrementFieldError records a rejected field.
func (m *Metrics) IncrementFieldError(field string) {
	if m != nil {
		m.FieldErrors.WithLabelValues(field).Inc()
	}
}
