package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "onboarding"

type Metrics struct {
	registry    *prometheus.Registry
	httpReqCnt  *prometheus.CounterVec
	httpDur     *prometheus.HistogramVec
	httpInfl    *prometheus.GaugeVec
	assignments prometheus.Counter
	reviews     *prometheus.CounterVec
	overdue     prometheus.Counter
}

func New() *Metrics {
	r := prometheus.NewRegistry()
	r.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	r.MustRegister(collectors.NewGoCollector())

	httpReqCnt := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total"}, []string{"method", "route", "status"})
	httpDur := prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: namespace, Name: "http_request_duration_seconds", Buckets: prometheus.DefBuckets}, []string{"method", "route", "status"})
	httpInfl := prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: namespace, Name: "http_requests_inflight"}, []string{"route"})
	r.MustRegister(httpReqCnt, httpDur, httpInfl)

	assignments := prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "task_assignments_total", Help: "Employee task rows created by template assignment."})
	reviews := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "document_reviews_total", Help: "Document review decisions."}, []string{"status"})
	overdue := prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "tasks_marked_overdue_total", Help: "Employee tasks moved to overdue by the sweep."})
	r.MustRegister(assignments, reviews, overdue)

	return &Metrics{
		registry:    r,
		httpReqCnt:  httpReqCnt,
		httpDur:     httpDur,
		httpInfl:    httpInfl,
		assignments: assignments,
		reviews:     reviews,
		overdue:     overdue,
	}
}

// Nil receivers are allowed so services can run without metrics in tests.

func (m *Metrics) TasksAssigned(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.assignments.Add(float64(n))
}

func (m *Metrics) DocumentReviewed(status string) {
	if m == nil {
		return
	}
	m.reviews.WithLabelValues(status).Inc()
}

func (m *Metrics) TasksMarkedOverdue(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.overdue.Add(float64(n))
}

func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpInfl.WithLabelValues(route).Inc()
		start := time.Now()
		c.Next()
		status := strconv.Itoa(c.Writer.Status())
		m.httpReqCnt.WithLabelValues(c.Request.Method, route, status).Inc()
		m.httpDur.WithLabelValues(c.Request.Method, route, status).Observe(time.Since(start).Seconds())
		m.httpInfl.WithLabelValues(route).Dec()
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
