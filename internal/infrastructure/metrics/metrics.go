package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomePartial = "partial"
)

// Metrics provides observability for moderation actions and the access gate.
type Metrics struct {
	ModerationActions  *prometheus.CounterVec
	ModerationDuration *prometheus.HistogramVec
	GateDecisions      *prometheus.CounterVec
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ModerationActions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "truedoc_admin_moderation_actions_total",
			Help: "Total number of moderation writes by action and outcome",
		}, []string{"action", "outcome"}),
		ModerationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "truedoc_admin_moderation_duration_seconds",
			Help:    "Duration of moderation writes including the post-write re-read",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"action"}),
		GateDecisions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "truedoc_admin_access_gate_decisions_total",
			Help: "Total number of access gate decisions by outcome",
		}, []string{"outcome"}),
	}
}

// ObserveModeration records one moderation action.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveModeration(action, outcome string, start time.Time) {
	m.ModerationActions.WithLabelValues(action, outcome).Inc()
	m.ModerationDuration.WithLabelValues(action).Observe(time.Since(start).Seconds())
}

// IncrementGateDecision records a gate outcome: authorized or a denial reason.
func (m *Metrics) IncrementGateDecision(outcome string) {
	m.GateDecisions.WithLabelValues(outcome).Inc()
}
