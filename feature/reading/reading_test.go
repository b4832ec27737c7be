package reading

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"reading-tracker/core/metrics"
	"reading-tracker/core/reconcile"
	"reading-tracker/feature/record"
	"reading-tracker/feature/report"
	"reading-tracker/feature/stats"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)

func setupService(t *testing.T, ttl time.Duration, days reconcile.ReadingDays) (*Service, *record.Store) {
	t.Helper()
	store := record.NewStore(record.Config{
		Dir:        filepath.Join(t.TempDir(), "data"),
		RecordFile: "reading_data.json",
		RawFile:    "kindle_data.json",
	}, zap.NewNop())
	if days != nil {
		require.NoError(t, store.Save(record.New(days, fixedNow)))
	}

	renderer, err := report.NewRenderer(report.Config{WindowDays: 30}, zap.NewNop())
	require.NoError(t, err)

	svc := NewService(store, renderer, 30, ttl, nil, zap.NewNop())
	svc.now = func() time.Time { return fixedNow }
	return svc, store
}

func setupApp(svc *Service) *fiber.App {
	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)
	return app
}

func TestHandleGetStats(t *testing.T) {
	svc, _ := setupService(t, 0, reconcile.ReadingDays{"2024-01-01": 1, "2024-01-02": 1, "2024-01-03": 1})
	app := setupApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/reading/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var st stats.Stats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&st))
	assert.Equal(t, stats.Stats{TotalDays: 3, ThisYearDays: 3, ThisMonthDays: 3, CurrentStreak: 3, LongestStreak: 3}, st)
}

func TestHandleGetStats_NoRecord(t *testing.T) {
	svc, _ := setupService(t, 0, nil)
	app := setupApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/reading/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var st stats.Stats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&st))
	assert.Equal(t, stats.Stats{}, st)
}

func TestHandleGetHeatmap(t *testing.T) {
	svc, _ := setupService(t, 0, reconcile.ReadingDays{"2024-01-02": 1, "2023-10-01": 1})
	app := setupApp(svc)

	t.Run("Default window", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/reading/heatmap", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var hm HeatmapResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&hm))
		assert.Equal(t, 30, hm.WindowDays)
		assert.Equal(t, 1, hm.ReadDays)
		for _, week := range hm.Weeks {
			assert.Len(t, week, 7)
		}
	})

	t.Run("Custom window", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/reading/heatmap?window=120", nil))
		require.NoError(t, err)

		var hm HeatmapResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&hm))
		assert.Equal(t, 120, hm.WindowDays)
		assert.Equal(t, 2, hm.ReadDays)
		assert.NotEmpty(t, hm.Months)
	})

	t.Run("Invalid window", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/reading/heatmap?window=99999", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandleGetRecord(t *testing.T) {
	svc, _ := setupService(t, 0, reconcile.ReadingDays{"2024-01-02": 1})
	app := setupApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/reading/record", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"reading_days":{"2024-01-02":1},"total_days":1,"last_updated":"2024-01-03 12:00:00"}`, string(body))
}

func TestHandlePage(t *testing.T) {
	svc, _ := setupService(t, 0, reconcile.ReadingDays{"2024-01-03": 1})
	app := setupApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), "text/html"))

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `data-date="2024-01-03"`)
}

func TestHandlePage_CorruptRecord(t *testing.T) {
	svc, store := setupService(t, 0, reconcile.ReadingDays{"2024-01-03": 1})
	require.NoError(t, os.WriteFile(store.Path(), []byte("{broken"), 0o644))
	app := setupApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestService_PageCache(t *testing.T) {
	svc, store := setupService(t, time.Minute, reconcile.ReadingDays{"2024-01-03": 1})

	first, err := svc.Page()
	require.NoError(t, err)

	// A newer record is not visible until the cache expires or is invalidated.
	require.NoError(t, store.Save(record.New(reconcile.ReadingDays{"2024-01-02": 1, "2024-01-03": 1}, fixedNow)))

	cached, err := svc.Page()
	require.NoError(t, err)
	assert.Equal(t, first, cached)

	svc.Invalidate()
	fresh, err := svc.Page()
	require.NoError(t, err)
	assert.NotEqual(t, first, fresh)

	svc.now = func() time.Time { return fixedNow.Add(2 * time.Minute) }
	require.NoError(t, store.Save(record.New(reconcile.ReadingDays{}, fixedNow)))
	expired, err := svc.Page()
	require.NoError(t, err)
	assert.NotEqual(t, fresh, expired)
}

func TestService_PageConcurrent(t *testing.T) {
	svc, _ := setupService(t, time.Minute, reconcile.ReadingDays{"2024-01-03": 1})

	var wg sync.WaitGroup
	results := make([][]byte, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			body, err := svc.Page()
			assert.NoError(t, err)
			results[i] = body
		}(i)
	}
	wg.Wait()

	for _, body := range results[1:] {
		assert.Equal(t, results[0], body)
	}
}

func TestFeature(t *testing.T) {
	svc, store := setupService(t, 0, nil)
	f := NewFeature(store, svc.renderer, 30, 0, metrics.New(true), zap.NewNop())

	assert.Equal(t, "reading", f.Name())
	assert.True(t, f.IsEnabled())
	assert.NotNil(t, f.Service())

	app := fiber.New()
	require.NoError(t, f.Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/reading/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
