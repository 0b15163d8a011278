package tracking

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/config"
	"github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/slog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Image optimization outcomes.
const (
	OutcomeOK               = "ok"
	OutcomeMissingParameter = "missing_parameter"
	OutcomeFetchFailed      = "fetch_failed"
	OutcomeTransformFailed  = "transform_failed"
	OutcomeCacheHit         = "cache_hit"
)

// Registry holds every storefront metric.
var Registry = prometheus.NewRegistry()

var (
	ImageOptimizations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_image_optimizations_total",
		Help: "Number of image optimization requests by outcome.",
	}, []string{"outcome"})

	ImageOptimizationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "storefront_image_optimization_duration_seconds",
		Help:    "Time spent fetching and transforming images.",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	})

	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_http_requests_total",
		Help: "Number of http requests by method and status code.",
	}, []string{"method", "code"})
)

func init() {
	Registry.MustRegister(
		ImageOptimizations,
		ImageOptimizationDuration,
		HTTPRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// ImageOptimization records the outcome and duration of an optimization.
func ImageOptimization(outcome string, since time.Time) {
	ImageOptimizations.WithLabelValues(outcome).Inc()

	if outcome != OutcomeMissingParameter {
		ImageOptimizationDuration.Observe(time.Since(since).Seconds())
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// WithRequestCount counts every request by method and status.
func WithRequestCount(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		h.ServeHTTP(rec, r)
		HTTPRequests.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Inc()
	})
}

// PrometheusOpts configures the metrics server.
type PrometheusOpts struct {
	// Port defaults to the configured prometheus port.
	Port string
}

// Handler serves the registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Prometheus starts the metrics server on a separate port.
func Prometheus(opts PrometheusOpts) {
	port := opts.Port

	if port == "" {
		port = config.Get().Tracking.PrometheusPort
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())

	go func() {
		slog.Infof("prometheus metrics listening on :%s", port)

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%s", port),
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		}

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Errorf("prometheus server stopped: %s", err.Error())
		}
	}()
}
