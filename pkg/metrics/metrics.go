package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics содержит все prometheus-коллекторы сервиса
type Metrics struct {
	// HTTP метрики
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Доменные метрики бронирования
	SessionsBookedTotal    prometheus.Counter
	SessionsCancelledTotal prometheus.Counter
	SessionsCompletedTotal prometheus.Counter
	SlotFullRejections     prometheus.Counter
}

// IncBooked увеличивает счетчик успешных бронирований
// Методы-инкременты безопасны для nil-получателя: если метрики выключены,
// обработчикам передается nil вместо no-op реализации
func (m *Metrics) IncBooked() {
	if m == nil {
		return
	}
	m.SessionsBookedTotal.Inc()
}

// IncCancelled увеличивает счетчик отмен
func (m *Metrics) IncCancelled() {
	if m == nil {
		return
	}
	m.SessionsCancelledTotal.Inc()
}

// IncCompleted увеличивает счетчик завершенных сессий
func (m *Metrics) IncCompleted() {
	if m == nil {
		return
	}
	m.SessionsCompletedTotal.Inc()
}

// IncSlotFullRejection увеличивает счетчик отказов из-за заполненного слота
func (m *Metrics) IncSlotFullRejection() {
	if m == nil {
		return
	}
	m.SlotFullRejections.Inc()
}

// New создает и регистрирует коллекторы метрик
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

		SessionsBookedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "sessions_booked_total",
			Help:        "Total number of successfully booked sessions",
			ConstLabels: constLabels,
		}),

		SessionsCancelledTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "sessions_cancelled_total",
			Help:        "Total number of cancelled sessions",
			ConstLabels: constLabels,
		}),

		SessionsCompletedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "sessions_completed_total",
			Help:        "Total number of completed sessions",
			ConstLabels: constLabels,
		}),

		SlotFullRejections: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "slot_full_rejections_total",
			Help:        "Total number of bookings rejected because the slot was full",
			ConstLabels: constLabels,
		}),
	}
}
