package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "petcare"

// Metrics коллекторы prometheus для сервиса
// Все методы безопасны для nil receiver (метрики выключены)
type Metrics struct {
	service string

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	estimates         *prometheus.CounterVec
	bookingSubmits    *prometheus.CounterVec
	mediaAttachErrors *prometheus.CounterVec
	flowsSwept        *prometheus.CounterVec
	cacheLookups      *prometheus.CounterVec
}

// New создает и регистрирует коллекторы
// Если reg == nil, используется prometheus.DefaultRegisterer
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		service: serviceName,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests by route and status",
		}, []string{"service", "method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),
		estimates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "estimates_total",
			Help:      "Price estimates computed by booking mode and category",
		}, []string{"service", "mode", "category"}),
		bookingSubmits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "submissions_total",
			Help:      "Booking submissions to the marketplace by outcome",
		}, []string{"service", "outcome"}),
		mediaAttachErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "provider",
			Name:      "media_attach_failures_total",
			Help:      "Media attach calls that failed and were skipped",
		}, []string{"service"}),
		flowsSwept: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "flows_swept_total",
			Help:      "Abandoned booking flows discarded by the sweeper",
		}, []string{"service"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Marketplace cache lookups by kind and result",
		}, []string{"service", "kind", "result"}),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.estimates,
		m.bookingSubmits,
		m.mediaAttachErrors,
		m.flowsSwept,
		m.cacheLookups,
	)
	return m
}

// ObserveHTTP учитывает завершенный HTTP запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(m.service, method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(m.service, method, route).Observe(duration.Seconds())
}

// ObserveEstimate учитывает рассчитанную оценку стоимости
func (m *Metrics) ObserveEstimate(mode, category string) {
	if m == nil {
		return
	}
	if category == "" {
		category = "unknown"
	}
	m.estimates.WithLabelValues(m.service, mode, category).Inc()
}

// ObserveBookingSubmit учитывает результат отправки бронирования
// outcome: created, rejected, failed, conflict
func (m *Metrics) ObserveBookingSubmit(outcome string) {
	if m == nil {
		return
	}
	m.bookingSubmits.WithLabelValues(m.service, outcome).Inc()
}

// ObserveMediaAttachFailure учитывает пропущенную ошибку прикрепления медиа
func (m *Metrics) ObserveMediaAttachFailure() {
	if m == nil {
		return
	}
	m.mediaAttachErrors.WithLabelValues(m.service).Inc()
}

// ObserveFlowsSwept учитывает удаленные брошенные сценарии бронирования
func (m *Metrics) ObserveFlowsSwept(count int64) {
	if m == nil || count <= 0 {
		return
	}
	m.flowsSwept.WithLabelValues(m.service).Add(float64(count))
}

// ObserveCacheLookup учитывает обращение к кэшу: result = hit, miss, error
func (m *Metrics) ObserveCacheLookup(kind, result string) {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues(m.service, kind, result).Inc()
}
