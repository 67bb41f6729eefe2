// Package metrics exposes Prometheus collectors for the navigation engine.
// The arbor Engine feeds them directly when built WithMetrics; the debug
// server serves them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector bundles the engine's metrics.
type Collector struct {
	navigations  *prometheus.CounterVec
	errors       *prometheus.CounterVec
	stateChanges prometheus.Counter
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		navigations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arbor",
			Name:      "navigations_total",
			Help:      "Top-level navigation requests by outcome.",
		}, []string{"result"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arbor",
			Name:      "navigation_errors_total",
			Help:      "Errors dispatched through the central reporter, by code.",
		}, []string{"code"}),
		stateChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "arbor",
			Name:      "state_changes_total",
			Help:      "Published state changes of the tree root's router.",
		}),
	}
	reg.MustRegister(c.navigations, c.errors, c.stateChanges)
	return c
}

// Navigations exposes the navigation counter for tests and dashboards.
func (c *Collector) Navigations() *prometheus.CounterVec { return c.navigations }

// Errors exposes the error counter for tests and dashboards.
func (c *Collector) Errors() *prometheus.CounterVec { return c.errors }

// ObserveNavigation counts a top-level navigation outcome.
func (c *Collector) ObserveNavigation(ok bool) {
	result := "success"
	if !ok {
		result = "failure"
	}
	c.navigations.WithLabelValues(result).Inc()
}

// ObserveError counts a reported error by code.
func (c *Collector) ObserveError(code string) {
	c.errors.WithLabelValues(code).Inc()
}

// ObserveStateChange counts one published state change.
func (c *Collector) ObserveStateChange() {
	c.stateChanges.Inc()
}
