package metrics

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	SlotsListedTotal     *prometheus.CounterVec
	SelectionTransitions *prometheus.CounterVec
	BookingSubmissions   *prometheus.CounterVec
	MalformedRecords     *prometheus.CounterVec
	DBQueryDuration      *prometheus.HistogramVec
}

// New создает и регистрирует метрики в собственном реестре
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		SlotsListedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "court_slots_listed_total",
			Help:        "Slots offered to customers after the past-slot filter",
			ConstLabels: labels,
		}, []string{"source"}),
		SelectionTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "slot_selection_transitions_total",
			Help:        "Slot selection transitions by operation and outcome",
			ConstLabels: labels,
		}, []string{"operation", "outcome"}),
		BookingSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_submissions_total",
			Help:        "Booking payloads submitted to the booking API by result",
			ConstLabels: labels,
		}, []string{"mode", "result"}),
		MalformedRecords: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_malformed_records_total",
			Help:        "Availability records dropped or zero-priced because of malformed data",
			ConstLabels: labels,
		}, []string{"source"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.SlotsListedTotal,
		m.SelectionTransitions,
		m.BookingSubmissions,
		m.MalformedRecords,
		m.DBQueryDuration,
	)

	return m
}

// RegisterDB регистрирует сборщик статистики пула соединений
func (m *Metrics) RegisterDB(db *sql.DB, dbName string) error {
	return m.registry.Register(collectors.NewDBStatsCollector(db, dbName))
}

// Handler возвращает http.Handler для эндпоинта /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry возвращает реестр (используется в тестах)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Recorder узкий интерфейс записи доменных метрик
// Реализуется *Metrics и NopRecorder
type Recorder interface {
	SlotsListed(source string, count int)
	SelectionTransition(operation, outcome string)
	BookingSubmitted(mode, result string)
	MalformedRecord(source string)
}

func (m *Metrics) SlotsListed(source string, count int) {
	m.SlotsListedTotal.WithLabelValues(source).Add(float64(count))
}

func (m *Metrics) SelectionTransition(operation, outcome string) {
	m.SelectionTransitions.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) BookingSubmitted(mode, result string) {
	m.BookingSubmissions.WithLabelValues(mode, result).Inc()
}

func (m *Metrics) MalformedRecord(source string) {
	m.MalformedRecords.WithLabelValues(source).Inc()
}

// NopRecorder ничего не записывает (метрики выключены)
type NopRecorder struct{}

func (NopRecorder) SlotsListed(string, int)            {}
func (NopRecorder) SelectionTransition(string, string) {}
func (NopRecorder) BookingSubmitted(string, string)    {}
func (NopRecorder) MalformedRecord(string)             {}
