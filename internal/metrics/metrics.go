package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the client's collectors.
	Registry = prometheus.NewRegistry()

	apiRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marketplace",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of backend API calls.",
		},
		[]string{"method", "resource", "status"},
	)

	apiDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "marketplace",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "Duration of backend API calls.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
		},
		[]string{"method", "resource"},
	)

	tokenEvictions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "marketplace",
			Subsystem: "session",
			Name:      "token_evictions_total",
			Help:      "Number of times the stored token was dropped after a 401 or expiry.",
		},
	)

	cartItems = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "marketplace",
			Subsystem: "cart",
			Name:      "items",
			Help:      "Units currently held in the local cart.",
		},
	)
)

func init() {
	Registry.MustRegister(apiRequests, apiDuration, tokenEvictions, cartItems)
}

// Handler returns an HTTP handler exposing the registered collectors.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one API call. status 0 means the call never got a response.
func ObserveRequest(method, path string, status int, d time.Duration) {
	resource := Resource(path)
	code := "error"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	apiRequests.WithLabelValues(method, resource, code).Inc()
	apiDuration.WithLabelValues(method, resource).Observe(d.Seconds())
}

func TokenEvicted() {
	tokenEvictions.Inc()
}

func SetCartItems(n int) {
	cartItems.Set(float64(n))
}

// Resource reduces a request path to its first segment so ids don't blow up
// label cardinality: "/orders/42/approve" -> "orders".
func Resource(path string) string {
	path = strings.Trim(path, "/")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if i := strings.IndexByte(path, '/'); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "root"
	}
	return path
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}
