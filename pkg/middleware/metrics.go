package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for named page routes.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	denied   *prometheus.CounterVec
}

// NewMetrics registers route collectors under namespace with reg.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "route_requests_total",
			Help:      "Total number of requests served per named route",
		}, []string{"route", "status"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "route_request_duration_seconds",
			Help:      "Request duration in seconds per named route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),

		denied: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "route_auth_redirects_total",
			Help:      "Unauthenticated requests turned away from guarded routes",
		}, []string{"route"}),
	}
}

// Route returns middleware recording request count and latency under name.
func (m *Metrics) Route(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			m.requests.WithLabelValues(name, strconv.Itoa(rec.status)).Inc()
			m.duration.WithLabelValues(name).Observe(time.Since(start).Seconds())
		})
	}
}

// Denied records an unauthenticated request turned away from name.
func (m *Metrics) Denied(name string) {
	m.denied.WithLabelValues(name).Inc()
}
