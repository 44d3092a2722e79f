package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics содержит все Prometheus-коллекторы сервиса
type Metrics struct {
	// HTTP метрики
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Метрики диалогового движка
	TurnsTotal             *prometheus.CounterVec
	ParseMissesTotal       *prometheus.CounterVec
	BookingsConfirmedTotal prometheus.Counter
	ActiveSessions         prometheus.Gauge
}

// New регистрирует и возвращает коллекторы метрик
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		TurnsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "assistant_turns_total",
			Help:        "Total number of processed dialogue turns by step",
			ConstLabels: constLabels,
		}, []string{"step"}),

		ParseMissesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "assistant_parse_misses_total",
			Help:        "Total number of turns that failed field parsing by step",
			ConstLabels: constLabels,
		}, []string{"step"}),

		BookingsConfirmedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "assistant_bookings_confirmed_total",
			Help:        "Total number of confirmed appointments",
			ConstLabels: constLabels,
		}),

		ActiveSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "assistant_active_sessions",
			Help:        "Number of chat sessions currently held in memory",
			ConstLabels: constLabels,
		}),
	}
}
