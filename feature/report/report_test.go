package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"reading-tracker/core/reconcile"
	"reading-tracker/feature/record"
	"reading-tracker/feature/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRenderer(t *testing.T, cfg Config) *Renderer {
	t.Helper()
	r, err := NewRenderer(cfg, zap.NewNop())
	require.NoError(t, err)
	return r
}

func TestRenderer_Build(t *testing.T) {
	r := newTestRenderer(t, Config{WindowDays: 30, Title: "My Reading"})
	now := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)
	rec := &record.Record{
		ReadingDays: reconcile.ReadingDays{"2024-01-01": 1, "2024-01-02": 1, "2024-01-03": 1},
		TotalDays:   3,
		LastUpdated: "2024-01-03 08:30:00",
	}

	page := r.Build(rec, now)

	assert.Equal(t, "My Reading", page.Title)
	assert.Equal(t, 2024, page.Year)
	assert.Equal(t, "2024-01-03", page.LastUpdated)
	assert.Equal(t, 3, page.Stats.TotalDays)
	assert.Equal(t, 3, page.Stats.CurrentStreak)
	assert.Equal(t, 3, page.Stats.LongestStreak)
	assert.NotEmpty(t, page.Weeks)
	assert.NotEmpty(t, page.Months)
}

func TestRenderer_Defaults(t *testing.T) {
	r := newTestRenderer(t, Config{})
	page := r.Build(nil, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "Reading Log", page.Title)
	assert.Equal(t, 360, page.WindowDays)
	assert.Equal(t, 0, page.Stats.TotalDays)
	assert.Equal(t, "", page.LastUpdated)
}

func TestRenderer_Render(t *testing.T) {
	r := newTestRenderer(t, Config{WindowDays: 30, Title: "Reading <Log>"})
	now := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)
	rec := record.New(reconcile.ReadingDays{"2024-01-02": 1, "2024-01-03": 1}, now)

	out, err := r.RenderBytes(rec, now)
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "<title>Reading &lt;Log&gt;</title>")
	assert.Contains(t, html, `<div class="day-cell read" title="2024-01-03 · read" data-date="2024-01-03"></div>`)
	assert.Contains(t, html, `data-date="2024-01-01"`)
	assert.Contains(t, html, `<div class="day-cell future" title="2024-01-07" data-date="2024-01-07"></div>`)
	assert.Contains(t, html, `id="current-streak">2<span`)
	assert.Contains(t, html, `<span id="last-updated">2024-01-03</span>`)
	assert.Contains(t, html, "days read in 2024")
	assert.Equal(t, 2, strings.Count(html, `class="day-cell read"`))
}

func TestRenderer_RenderEmpty(t *testing.T) {
	r := newTestRenderer(t, Config{WindowDays: 30})

	out, err := r.RenderBytes(record.Empty(), time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.NotContains(t, string(out), `class="day-cell read"`)
	assert.NotContains(t, string(out), "Last updated")
}

func TestRenderer_RenderFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "site", "index.html")
	r := newTestRenderer(t, Config{Output: output, WindowDays: 30})
	now := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	path, err := r.RenderFile(record.New(reconcile.ReadingDays{"2024-01-03": 1}, now), now)
	require.NoError(t, err)
	assert.Equal(t, output, path)
	assert.Equal(t, output, r.Output())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<!DOCTYPE html>"))
}

func TestCellClass(t *testing.T) {
	assert.Equal(t, "day-cell", cellClass(stats.Cell{}))
	assert.Equal(t, "day-cell read", cellClass(stats.Cell{HasReading: true}))
	assert.Equal(t, "day-cell future", cellClass(stats.Cell{HasReading: true, IsFuture: true}))
}
