// Package metrics holds the Prometheus collectors of the service.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels of backend calls
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Metrics коллекторы сервиса
type Metrics struct {
	service  string
	registry *prometheus.Registry

	HTTPRequestsTotal      *prometheus.CounterVec
	HTTPRequestDuration    *prometheus.HistogramVec
	BackendRequestsTotal   *prometheus.CounterVec
	BackendRequestDuration *prometheus.HistogramVec
	PayloadBuildFailures   *prometheus.CounterVec
}

// New создает и регистрирует коллекторы в собственном реестре
func New(serviceName string) *Metrics {
	m := &Metrics{
		service:  serviceName,
		registry: prometheus.NewRegistry(),

		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),

		BackendRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "backend_requests_total",
			Help: "Total number of movie booking backend calls",
		}, []string{"service", "endpoint", "outcome"}),

		BackendRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "backend_request_duration_seconds",
			Help:    "Movie booking backend call duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "endpoint"}),

		PayloadBuildFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "payload_build_failures_total",
			Help: "Outbound payloads rejected before sending, by failure kind",
		}, []string{"service", "kind"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BackendRequestsTotal,
		m.BackendRequestDuration,
		m.PayloadBuildFailures,
	)

	return m
}

// Handler отдает метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry возвращает реестр коллекторов
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTP записывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(m.service, method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.service, method, route).Observe(duration.Seconds())
}

// ObserveBackend записывает вызов бэкенда
func (m *Metrics) ObserveBackend(endpoint, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.BackendRequestsTotal.WithLabelValues(m.service, endpoint, outcome).Inc()
	m.BackendRequestDuration.WithLabelValues(m.service, endpoint).Observe(duration.Seconds())
}

// PayloadBuildFailed записывает отклоненный payload
func (m *Metrics) PayloadBuildFailed(kind string) {
	if m == nil {
		return
	}
	m.PayloadBuildFailures.WithLabelValues(m.service, kind).Inc()
}
