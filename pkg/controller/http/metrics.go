package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the Prometheus instrumentation of the engine. Each server
// owns its registry so tests can build servers independently.
type metrics struct {
	registry *prometheus.Registry

	evaluations          prometheus.Counter
	notificationsDerived *prometheus.CounterVec
	decisions            *prometheus.CounterVec
	incidentsResolved    prometheus.Counter
	checklistsGenerated  prometheus.Counter
}

func newMetrics() *metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &metrics{
		registry: registry,
		evaluations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "doorap",
			Name:      "rule_evaluations_total",
			Help:      "Rule evaluation runs triggered over HTTP",
		}),
		notificationsDerived: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "doorap",
			Name:      "notifications_derived_total",
			Help:      "Notifications derived by the alert rules",
		}, []string{"type"}),
		decisions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "doorap",
			Name:      "action_decisions_total",
			Help:      "Human decisions recorded on suggested actions",
		}, []string{"outcome"}),
		incidentsResolved: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "doorap",
			Name:      "incidents_resolved_total",
			Help:      "Emergency incidents resolved",
		}),
		checklistsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "doorap",
			Name:      "checklists_generated_total",
			Help:      "Emergency checklists generated",
		}),
	}
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
