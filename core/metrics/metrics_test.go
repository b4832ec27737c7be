package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusProvider(t *testing.T) {
	p := New(true).(*PrometheusProvider)

	p.IncCacheHits()
	p.IncCacheHits()
	p.IncCacheMisses()
	p.SetReadingDays(42)
	p.ObserveRenderDuration(10 * time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(p.cacheHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.cacheMisses))
	assert.Equal(t, 42.0, testutil.ToFloat64(p.readingDays))
}

func TestPrometheusProvider_Middleware(t *testing.T) {
	p := New(true).(*PrometheusProvider)

	app := fiber.New()
	app.Use(p.Middleware())
	app.Get("/api/reading/stats", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/boom", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusBadGateway, "boom") })
	app.Get("/metrics", p.Handler())

	_, err := app.Test(httptest.NewRequest("GET", "/api/reading/stats", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(p.requestsTotal.WithLabelValues("/api/reading/stats", "2xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.requestsTotal.WithLabelValues("/boom", "5xx")))

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "reading_requests_total")
}

func TestNoopProvider(t *testing.T) {
	p := New(false)
	p.IncCacheHits()
	p.SetReadingDays(1)

	app := fiber.New()
	app.Use(p.Middleware())
	app.Get("/metrics", p.Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestStatusBucket(t *testing.T) {
	assert.Equal(t, "2xx", statusBucket(204))
	assert.Equal(t, "4xx", statusBucket(404))
	assert.Equal(t, "5xx", statusBucket(503))
	assert.Equal(t, "0", statusBucket(0))
}
