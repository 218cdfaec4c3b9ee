// Package metrics exposes Prometheus instrumentation for the live
// synchronization pipeline and the commitment workflow.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/livesync"
)

type Metrics struct {
	feedEvents       *prometheus.CounterVec
	reconcileTotal   prometheus.Counter
	reconcileFailed  prometheus.Counter
	commitsTotal     prometheus.Counter
	cancelsTotal     prometheus.Counter
	connectionStatus prometheus.Gauge

	registry *prometheus.Registry
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGoCollector())

	factory := promauto.With(reg)

	return &Metrics{
		feedEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "orn_feed_events_total",
			Help: "Change feed notifications received, by source table.",
		}, []string{"table"}),
		reconcileTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "orn_reconcile_total",
			Help: "Completed full-state reconciliations.",
		}),
		reconcileFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "orn_reconcile_failures_total",
			Help: "Reconciliations that exhausted retries.",
		}),
		commitsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "orn_commitments_total",
			Help: "Responder commitments recorded.",
		}),
		cancelsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "orn_commitment_cancellations_total",
			Help: "Responder commitment cancellations recorded.",
		}),
		connectionStatus: factory.NewGauge(prometheus.GaugeOpts{
			Name: "orn_connection_status",
			Help: "Live sync connection status: 0 disconnected, 1 reconnecting, 2 connected.",
		}),
		registry: reg,
	}
}

// Handler serves the scrape endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) FeedEvent(table string) {
	m.feedEvents.WithLabelValues(table).Inc()
}

func (m *Metrics) ReconcileOK() {
	m.reconcileTotal.Inc()
}

func (m *Metrics) ReconcileFail() {
	m.reconcileFailed.Inc()
}

func (m *Metrics) StatusChanged(st livesync.Status) {
	m.connectionStatus.Set(float64(st))
}

func (m *Metrics) CommitRecorded() {
	m.commitsTotal.Inc()
}

func (m *Metrics) CancelRecorded() {
	m.cancelsTotal.Inc()
}
