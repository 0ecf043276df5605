package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "clubhub_http_in_flight_requests",
		Help: "In-flight HTTP requests.",
	})

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubhub_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "clubhub_http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	statusTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clubhub_status_transitions_total",
			Help: "Accepted status transitions per entity.",
		},
		[]string{"entity", "from", "to"},
	)

	registerOnce sync.Once
)

// Init registers the collectors in the default registry. Safe to call repeatedly.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpInFlight, httpRequestsTotal, httpRequestDuration, statusTransitions)
	})
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records RPS, latency and in-flight requests per route template.
func Middleware() gin.HandlerFunc {
	Init()
	return func(c *gin.Context) {
		httpInFlight.Inc()
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		httpRequestDuration.WithLabelValues(c.Request.Method, route, status).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		httpInFlight.Dec()
	}
}

// ObserveTransition counts one accepted status change.
func ObserveTransition(entity, from, to string) {
	Init()
	statusTransitions.WithLabelValues(entity, from, to).Inc()
}

// TransitionCounter returns the counter behind one transition label set.
func TransitionCounter(entity, from, to string) prometheus.Counter {
	Init()
	return statusTransitions.WithLabelValues(entity, from, to)
}
