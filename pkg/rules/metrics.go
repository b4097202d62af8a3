package rules

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds Prometheus counters for rule evaluation. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	evaluatedTotal prometheus.Counter
	matchesTotal   *prometheus.CounterVec
	overridesTotal *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them on reg when it is not
// nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		evaluatedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "notifyrules",
				Name:      "rules_evaluated_total",
				Help:      "Total number of rule evaluations against notifications",
			},
		),
		matchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "notifyrules",
				Name:      "rule_matches_total",
				Help:      "Total number of notifications matched, per rule",
			},
			[]string{"rule"},
		),
		overridesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "notifyrules",
				Name:      "overrides_total",
				Help:      "Total number of notification fields overridden, per rule field",
			},
			[]string{"field"},
		),
	}
	if reg != nil {
		reg.MustRegister(m)
	}
	return m
}

// Describe implements prometheus.Collector
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.evaluatedTotal.Describe(ch)
	m.matchesTotal.Describe(ch)
	m.overridesTotal.Describe(ch)
}

// Collect implements prometheus.Collector
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.evaluatedTotal.Collect(ch)
	m.matchesTotal.Collect(ch)
	m.overridesTotal.Collect(ch)
}

func (m *Metrics) evaluated() {
	if m != nil {
		m.evaluatedTotal.Inc()
	}
}

func (m *Metrics) matched(rule string) {
	if m != nil {
		m.matchesTotal.WithLabelValues(rule).Inc()
	}
}

func (m *Metrics) overridden(f *Field) {
	if m != nil {
		m.overridesTotal.WithLabelValues(f.Name).Inc()
	}
}
