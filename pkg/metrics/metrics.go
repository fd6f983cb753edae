package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration     *prometheus.HistogramVec
	DBQueryErrors       *prometheus.CounterVec
	DBTransactionsTotal *prometheus.CounterVec
	DBConnections       *prometheus.GaugeVec

	// Бизнес-метрики
	BookingAdmissions *prometheus.CounterVec
	BookingUpdates    *prometheus.CounterVec
}

// New регистрирует метрики в глобальном регистре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в указанном регистре (используется в тестах)
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   "http",
				Name:        "requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   "http",
				Name:        "request_duration_seconds",
				Help:        "HTTP request latency",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: constLabels,
			},
			[]string{"method", "route"},
		),
		DBQueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   "db",
				Name:        "query_duration_seconds",
				Help:        "Database query latency",
				Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
				ConstLabels: constLabels,
			},
			[]string{"operation"},
		),
		DBQueryErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   "db",
				Name:        "query_errors_total",
				Help:        "Total number of failed database queries",
				ConstLabels: constLabels,
			},
			[]string{"operation"},
		),
		DBTransactionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   "db",
				Name:        "transactions_total",
				Help:        "Total number of finished transactions by result",
				ConstLabels: constLabels,
			},
			[]string{"result"},
		),
		DBConnections: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   "db",
				Name:        "connections",
				Help:        "Connection pool state",
				ConstLabels: constLabels,
			},
			[]string{"state"},
		),
		BookingAdmissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   "booking",
				Name:        "admissions_total",
				Help:        "Booking admission attempts by outcome",
				ConstLabels: constLabels,
			},
			[]string{"result"},
		),
		BookingUpdates: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   "booking",
				Name:        "updates_total",
				Help:        "Booking updates by outcome",
				ConstLabels: constLabels,
			},
			[]string{"result"},
		),
	}
}

// ObserveAdmission увеличивает счётчик попыток бронирования
// Безопасен для nil получателя (метрики отключены)
func (m *Metrics) ObserveAdmission(result string) {
	if m == nil {
		return
	}
	m.BookingAdmissions.WithLabelValues(result).Inc()
}

// ObserveUpdate увеличивает счётчик обновлений бронирований
func (m *Metrics) ObserveUpdate(result string) {
	if m == nil {
		return
	}
	m.BookingUpdates.WithLabelValues(result).Inc()
}
