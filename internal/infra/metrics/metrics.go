// Package metrics exposes Prometheus collectors for HTTP traffic and business events.
package metrics

import (
	"strconv"
	"time"

	"beautymarket/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "beautymarket"

// Recorder implements service.MetricsRecorder and the HTTP metrics used by middleware.
type Recorder struct {
	requests      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	ordersPlaced  prometheus.Counter
	orderRevenue  prometheus.Counter
	signups       *prometheus.CounterVec
	logins        prometheus.Counter
	cacheLookups  *prometheus.CounterVec
	rateLimited   prometheus.Counter
	analyticsSeen *prometheus.CounterVec
}

// NewRecorder registers every collector on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ordersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_placed_total",
			Help:      "Orders created at checkout.",
		}),
		orderRevenue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_revenue_total",
			Help:      "Sum of order totals at checkout.",
		}),
		signups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "user_signups_total",
			Help:      "Registrations by user type.",
		}, []string{"user_type"}),
		logins: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "user_logins_total",
			Help:      "Successful logins.",
		}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Product cache lookups by cache and result.",
		}, []string{"cache", "result"}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_requests_total",
			Help:      "Requests rejected by the rate limiter.",
		}),
		analyticsSeen: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analytics_events_total",
			Help:      "Analytics events recorded by type and outcome.",
		}, []string{"type", "outcome"}),
	}

	reg.MustRegister(
		r.requests,
		r.duration,
		r.ordersPlaced,
		r.orderRevenue,
		r.signups,
		r.logins,
		r.cacheLookups,
		r.rateLimited,
		r.analyticsSeen,
	)

	return r
}

// ObserveRequest records one finished HTTP request.
func (r *Recorder) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	r.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (r *Recorder) OrderPlaced(amount float64) {
	r.ordersPlaced.Inc()
	if amount > 0 {
		r.orderRevenue.Add(amount)
	}
}

func (r *Recorder) UserSignedUp(role string) {
	r.signups.WithLabelValues(role).Inc()
}

func (r *Recorder) UserLoggedIn() {
	r.logins.Inc()
}

func (r *Recorder) CacheLookup(cache string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheLookups.WithLabelValues(cache, result).Inc()
}

func (r *Recorder) RateLimited() {
	r.rateLimited.Inc()
}

// AnalyticsEvent counts an event handled by the recorder.
func (r *Recorder) AnalyticsEvent(eventType string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.analyticsSeen.WithLabelValues(eventType, outcome).Inc()
}

var _ service.MetricsRecorder = (*Recorder)(nil)

// Nop discards business metrics.
type Nop struct{}

func (Nop) OrderPlaced(float64)      {}
func (Nop) UserSignedUp(string)      {}
func (Nop) UserLoggedIn()            {}
func (Nop) CacheLookup(string, bool) {}
func (Nop) RateLimited()             {}
