package reading

import (
	"sync"
	"time"

	"reading-tracker/core/metrics"
	"reading-tracker/feature/record"
	"reading-tracker/feature/report"
	"reading-tracker/feature/stats"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const pageKey = "page"

// HeatmapResponse is the heatmap payload served by the API.
type HeatmapResponse struct {
	WindowDays int                `json:"window_days"`
	Weeks      []stats.Week       `json:"weeks"`
	Months     []stats.MonthLabel `json:"months"`
	ReadDays   int                `json:"read_days"`
}

// cachedPage is a rendered page and the time it was built.
type cachedPage struct {
	body  []byte
	built time.Time
}

// Service serves the saved record, its statistics and the rendered page.
type Service struct {
	store      *record.Store
	renderer   *report.Renderer
	windowDays int
	logger     *zap.Logger
	metrics    metrics.Provider
	ttl        time.Duration
	now        func() time.Time

	mu   sync.RWMutex
	page *cachedPage
	sf   singleflight.Group
}

// NewService creates a new reading service. A zero ttl renders on every request.
// m may be nil.
func NewService(store *record.Store, renderer *report.Renderer, windowDays int, ttl time.Duration, m metrics.Provider, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if m == nil {
		m = metrics.New(false)
	}
	if windowDays <= 0 {
		windowDays = stats.DefaultWindowDays
	}
	return &Service{
		store:      store,
		renderer:   renderer,
		windowDays: windowDays,
		logger:     logger,
		metrics:    m,
		ttl:        ttl,
		now:        time.Now,
	}
}

// Record loads the saved record.
func (s *Service) Record() (*record.Record, error) {
	rec, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	s.metrics.SetReadingDays(len(rec.ReadingDays))
	return rec, nil
}

// Stats computes the statistics of the saved record as of now.
func (s *Service) Stats() (stats.Stats, error) {
	rec, err := s.Record()
	if err != nil {
		return stats.Stats{}, err
	}
	return stats.Compute(rec.ReadingDays, s.now()), nil
}

// Heatmap builds the heatmap over windowDays, or the configured window when zero.
func (s *Service) Heatmap(windowDays int) (*HeatmapResponse, error) {
	if windowDays <= 0 {
		windowDays = s.windowDays
	}
	rec, err := s.Record()
	if err != nil {
		return nil, err
	}
	weeks := stats.Heatmap(rec.ReadingDays, windowDays, s.now())
	return &HeatmapResponse{
		WindowDays: windowDays,
		Weeks:      weeks,
		Months:     stats.MonthLabels(weeks),
		ReadDays:   stats.ReadingCells(weeks),
	}, nil
}

// Page returns the rendered HTML page, reusing a fresh cached copy.
// Concurrent misses render once.
func (s *Service) Page() ([]byte, error) {
	s.mu.RLock()
	page := s.page
	s.mu.RUnlock()

	if s.fresh(page) {
		s.metrics.IncCacheHits()
		return page.body, nil
	}
	s.metrics.IncCacheMisses()

	result, err, _ := s.sf.Do(pageKey, func() (interface{}, error) {
		s.mu.RLock()
		page := s.page
		s.mu.RUnlock()
		if s.fresh(page) {
			return page.body, nil
		}

		rec, err := s.Record()
		if err != nil {
			return nil, err
		}
		start := time.Now()
		now := s.now()
		body, err := s.renderer.RenderBytes(rec, now)
		if err != nil {
			return nil, err
		}
		s.metrics.ObserveRenderDuration(time.Since(start))

		s.mu.Lock()
		s.page = &cachedPage{body: body, built: now}
		s.mu.Unlock()

		s.logger.Debug("Page rendered", zap.Int("bytes", len(body)))
		return body, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]byte), nil
}

// Invalidate drops the cached page.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.page = nil
	s.mu.Unlock()
}

func (s *Service) fresh(p *cachedPage) bool {
	if p == nil || s.ttl == 0 {
		return false
	}
	return s.now().Sub(p.built) <= s.ttl
}
