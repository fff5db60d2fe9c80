package pipelined

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the control plane's Prometheus collectors. A nil *Metrics
// is valid and records nothing, so tests can skip it.
type Metrics struct {
	Activations      *prometheus.CounterVec
	Deactivations    *prometheus.CounterVec
	DataplaneErrors  prometheus.Counter
	ActiveRules      prometheus.Gauge
	QuotaTransitions *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		Activations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pipelined_rule_activations_total",
			Help: "Rule activation attempts by origin and outcome",
		}, []string{"origin", "result"}),
		Deactivations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pipelined_rule_deactivations_total",
			Help: "Rules removed from the store by origin",
		}, []string{"origin"}),
		DataplaneErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pipelined_dataplane_errors_total",
			Help: "Dataplane calls that failed",
		}),
		ActiveRules: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pipelined_active_rules",
			Help: "Rule records currently installed",
		}),
		QuotaTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pipelined_quota_transitions_total",
			Help: "Subscriber quota state transitions by target state",
		}, []string{"state"}),
	}
}

// Register adds all collectors to reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.Activations,
		m.Deactivations,
		m.DataplaneErrors,
		m.ActiveRules,
		m.QuotaTransitions,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) recordActivation(origin Origin, outcome OutcomeCode) {
	if m == nil {
		return
	}
	m.Activations.WithLabelValues(origin.String(), outcome.String()).Inc()
}

func (m *Metrics) recordDeactivation(origin Origin, removed int) {
	if m == nil {
		return
	}
	m.Deactivations.WithLabelValues(origin.String()).Add(float64(removed))
}

func (m *Metrics) recordDataplaneError() {
	if m == nil {
		return
	}
	m.DataplaneErrors.Inc()
}

func (m *Metrics) setActiveRules(n int) {
	if m == nil {
		return
	}
	m.ActiveRules.Set(float64(n))
}

func (m *Metrics) recordQuotaTransition(state QuotaState) {
	if m == nil {
		return
	}
	m.QuotaTransitions.WithLabelValues(state.String()).Inc()
}
