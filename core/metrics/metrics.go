package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Provider records server and page-cache metrics.
type Provider interface {
	IncRequestsTotal(route string, status int)
	ObserveRequestDuration(route string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObserveRenderDuration(duration time.Duration)
	SetReadingDays(count int)
	// Middleware instruments every request passing through it.
	Middleware() fiber.Handler
	// Handler serves the metrics in the Prometheus text format.
	Handler() fiber.Handler
}

// PrometheusProvider is a Provider backed by its own Prometheus registry.
type PrometheusProvider struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	renderDuration  prometheus.Histogram
	readingDays     prometheus.Gauge
}

// New returns a Prometheus provider, or a no-op provider when disabled.
func New(enabled bool) Provider {
	if !enabled {
		return &noopProvider{}
	}

	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &PrometheusProvider{
		registry: reg,
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "reading_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"route", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "reading_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),

		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "reading_page_cache_hits_total",
			Help: "Total number of rendered page cache hits",
		}),

		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "reading_page_cache_misses_total",
			Help: "Total number of rendered page cache misses",
		}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "reading_page_render_duration_seconds",
			Help:    "Duration of page renders in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		readingDays: factory.NewGauge(prometheus.GaugeOpts{
			Name: "reading_days_total",
			Help: "Number of read days in the last loaded record",
		}),
	}
}

func (m *PrometheusProvider) IncRequestsTotal(route string, status int) {
	m.requestsTotal.WithLabelValues(route, statusBucket(status)).Inc()
}

func (m *PrometheusProvider) ObserveRequestDuration(route string, duration time.Duration) {
	m.requestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

func (m *PrometheusProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *PrometheusProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *PrometheusProvider) ObserveRenderDuration(duration time.Duration) {
	m.renderDuration.Observe(duration.Seconds())
}

func (m *PrometheusProvider) SetReadingDays(count int) {
	m.readingDays.Set(float64(count))
}

// Middleware labels requests with the matched route pattern, not the raw path.
func (m *PrometheusProvider) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		route := c.Route().Path
		m.IncRequestsTotal(route, status)
		m.ObserveRequestDuration(route, time.Since(start))
		return err
	}
}

func (m *PrometheusProvider) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

func statusBucket(code int) string {
	if code < 100 || code > 599 {
		return strconv.Itoa(code)
	}
	return strconv.Itoa(code/100) + "xx"
}

// noopProvider is used when metrics are disabled.
type noopProvider struct{}

func (n *noopProvider) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopProvider) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopProvider) IncCacheHits()                                    {}
func (n *noopProvider) IncCacheMisses()                                  {}
func (n *noopProvider) ObserveRenderDuration(_ time.Duration)            {}
func (n *noopProvider) SetReadingDays(_ int)                             {}

func (n *noopProvider) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error { return c.Next() }
}

func (n *noopProvider) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error { return fiber.ErrNotFound }
}
