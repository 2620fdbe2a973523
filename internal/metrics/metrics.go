// Package metrics регистрирует prometheus-метрики HTTP-слоя.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// RequestsTotal счётчик HTTP-запросов по маршруту, методу и статусу.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests"},
		[]string{"route", "method", "status"},
	)
	// ReqDuration гистограмма длительности запросов.
	ReqDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Request duration seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	// InFlight число запросов в обработке.
	InFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "http_in_flight_requests", Help: "In-flight HTTP requests"},
	)
)

// MustRegister регистрирует метрики в глобальном регистраторе prometheus.
func MustRegister() {
	prometheus.MustRegister(RequestsTotal, ReqDuration, InFlight)
}
