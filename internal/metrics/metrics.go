package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the service collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "xoso",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "xoso",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "route"},
	)

	settlements = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "xoso",
			Subsystem: "settlement",
			Name:      "tickets_settled_total",
			Help:      "Tickets moved to SETTLED, by result.",
		},
		[]string{"result"},
	)

	payouts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "xoso",
			Subsystem: "settlement",
			Name:      "payout_vnd_total",
			Help:      "Sum of prize amounts awarded.",
		},
	)

	fetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "xoso",
			Subsystem: "fetcher",
			Name:      "fetches_total",
			Help:      "Upstream result fetch attempts, by status.",
		},
		[]string{"status"},
	)

	fetchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "xoso",
			Subsystem: "fetcher",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of upstream result fetches.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
		},
	)

	batchRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "xoso",
			Subsystem: "batch",
			Name:      "runs_total",
			Help:      "Batch settlement passes, by success.",
		},
		[]string{"success"},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		settlements,
		payouts,
		fetches,
		fetchDuration,
		batchRuns,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler exposes the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency labelled by chi route pattern.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		method := strings.ToUpper(r.Method)
		httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	})
}

func RecordSettlement(isWinner bool, amount int64, reason string) {
	result := "loss"
	switch {
	case isWinner:
		result = "win"
		payouts.Add(float64(amount))
	case reason != "":
		result = reason
	}
	settlements.WithLabelValues(result).Inc()
}

func RecordFetch(status string, duration time.Duration) {
	if duration <= 0 {
		duration = time.Millisecond
	}
	fetches.WithLabelValues(status).Inc()
	fetchDuration.Observe(duration.Seconds())
}

func RecordBatch(success bool) {
	batchRuns.WithLabelValues(strconv.FormatBool(success)).Inc()
}
