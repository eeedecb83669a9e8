package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPMetrics tracks request counts and latencies per route
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge
}

// NewHTTPMetrics registers HTTP metrics under namespace
func NewHTTPMetrics(namespace string, reg prometheus.Registerer) *HTTPMetrics {
	factory := promauto.With(reg)
	return &HTTPMetrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "HTTP requests currently being served.",
		}),
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

// Middleware records every request passing through next. The route label is
// the matched ServeMux pattern, which keeps label cardinality bounded.
func (m *HTTPMetrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		m.inFlight.Inc()
		defer m.inFlight.Dec()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		m.duration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// EngineMetrics tracks scoring and rephrasing outcomes
type EngineMetrics struct {
	Analyses         *prometheus.CounterVec
	Scores           prometheus.Histogram
	Rephrases        *prometheus.CounterVec
	WordsChanged     prometheus.Histogram
	ValidationErrors *prometheus.CounterVec
}

// NewEngineMetrics registers engine metrics under namespace
func NewEngineMetrics(namespace string, reg prometheus.Registerer) *EngineMetrics {
	factory := promauto.With(reg)
	return &EngineMetrics{
		Analyses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Texts scored, by resulting risk level.",
		}, []string{"level"}),
		Scores: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "plagiarism_score",
			Help:      "Distribution of plagiarism risk scores.",
			Buckets:   prometheus.LinearBuckets(0, 10, 11),
		}),
		Rephrases: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rephrases_total",
			Help:      "Texts rephrased, by style and creativity.",
		}, []string{"style", "creativity"}),
		WordsChanged: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rephrase_words_changed",
			Help:      "Words substituted per rephrase request.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		ValidationErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_errors_total",
			Help:      "Requests rejected before reaching the engine, by endpoint.",
		}, []string{"endpoint"}),
	}
}
