// Package metrics exposes the gateway's Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/DanielPopoola/payment-forwarding-gateway/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gateway"

type Metrics struct {
	registry *prometheus.Registry

	paymentsTotal   *prometheus.CounterVec
	bankOutcomes    *prometheus.CounterVec
	bankLatency     prometheus.Histogram
	storeErrors     *prometheus.CounterVec
	eventsDropped   prometheus.Counter
	eventsPublished *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpLatency     *prometheus.HistogramVec
}

// New registers every collector on a fresh registry, alongside the Go and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		paymentsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payments",
			Name:      "total",
			Help:      "Payments recorded, by final status",
		}, []string{"status"}),
		bankOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bank",
			Name:      "outcomes_total",
			Help:      "Acquiring bank calls, by outcome",
		}, []string{"outcome"}),
		bankLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "bank",
			Name:      "request_seconds",
			Help:      "Latency of acquiring bank calls",
			Buckets:   prometheus.DefBuckets,
		}),
		storeErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "errors_total",
			Help:      "Payment store failures, by operation",
		}, []string{"op"}),
		eventsDropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "dropped_total",
			Help:      "Events dropped because the dispatch buffer was full",
		}),
		eventsPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "published_total",
			Help:      "Event publish attempts, by result",
		}, []string{"result"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests, by route and status code",
		}, []string{"method", "route", "code"}),
		httpLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_seconds",
			Help:      "HTTP request latency, by route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) PaymentRecorded(status domain.PaymentStatus) {
	m.paymentsTotal.WithLabelValues(string(status)).Inc()
}

func (m *Metrics) BankCall(outcome domain.BankOutcome, took time.Duration) {
	m.bankOutcomes.WithLabelValues(outcome.String()).Inc()
	m.bankLatency.Observe(took.Seconds())
}

func (m *Metrics) StoreError(op string) {
	m.storeErrors.WithLabelValues(op).Inc()
}

func (m *Metrics) EventDropped() {
	m.eventsDropped.Inc()
}

func (m *Metrics) EventPublished(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.eventsPublished.WithLabelValues(result).Inc()
}

func (m *Metrics) HTTPRequest(method, route string, code int, took time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(took.Seconds())
}
