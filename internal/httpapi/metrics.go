package httpapi

import (
	"net/http"
	"strconv"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type metrics struct {
	derivations      *prometheus.CounterVec
	deriveDuration   prometheus.Histogram
	httpRequests     *prometheus.CounterVec
	httpRequestTimes *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		derivations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "minibook",
				Name:      "derivations_total",
				Help:      "Derivations by result (ok or error kind)",
			},
			[]string{"result"},
		),
		deriveDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "minibook",
				Name:      "derive_duration_seconds",
				Help:      "Time spent deriving a book",
				Buckets:   prometheus.DefBuckets,
			},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "minibook",
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "status"},
		),
		httpRequestTimes: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "minibook",
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "status"},
		),
	}
	reg.MustRegister(m.derivations, m.deriveDuration, m.httpRequests, m.httpRequestTimes)
	return m
}

func (m *metrics) observeDerive(result string, elapsed time.Duration) {
	m.derivations.WithLabelValues(result).Inc()
	m.deriveDuration.Observe(elapsed.Seconds())
}

func (m *metrics) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		status := strconv.Itoa(ww.Status())
		m.httpRequests.WithLabelValues(r.Method, status).Inc()
		m.httpRequestTimes.WithLabelValues(r.Method, status).Observe(time.Since(start).Seconds())
	})
}

func metricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
