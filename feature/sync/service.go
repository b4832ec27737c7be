package sync

import (
	"context"
	"fmt"
	"strings"
	"time"

	"reading-tracker/core/reconcile"
	"reading-tracker/feature/kindle"
	"reading-tracker/feature/record"

	"go.uber.org/zap"
)

// ErrCredential is returned when no usable cookie was supplied.
var ErrCredential = kindle.ErrCredential

// Fetcher retrieves the raw activity payload for a cookie.
type Fetcher interface {
	Fetch(ctx context.Context, cookie string) (reconcile.Payload, error)
}

// Mirror receives a copy of the reconciled days after each successful save.
type Mirror interface {
	Replace(ctx context.Context, days reconcile.ReadingDays, syncedAt time.Time) error
}

// Result describes a completed run.
type Result struct {
	Record *record.Record
	Report *reconcile.Report
	// MirrorErr is set when the optional history mirror failed.
	MirrorErr error
}

// Service runs the fetch, reconcile and persist pipeline.
type Service struct {
	fetcher    Fetcher
	reconciler *reconcile.Reconciler
	store      *record.Store
	mirror     Mirror
	logger     *zap.Logger
	now        func() time.Time
}

// NewService creates a new sync service. mirror may be nil.
func NewService(fetcher Fetcher, reconciler *reconcile.Reconciler, store *record.Store, mirror Mirror, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		fetcher:    fetcher,
		reconciler: reconciler,
		store:      store,
		mirror:     mirror,
		logger:     logger,
		now:        time.Now,
	}
}

// Run fetches the payload for cookie, archives it and replaces the record.
// Any failure before the record is written leaves the previous record untouched.
func (s *Service) Run(ctx context.Context, cookie string) (*Result, error) {
	if strings.TrimSpace(cookie) == "" {
		return nil, fmt.Errorf("%w: provide it as an argument or set KINDLE_COOKIE", ErrCredential)
	}

	payload, err := s.fetcher.Fetch(ctx, cookie)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reading data: %w", err)
	}

	if err := s.store.SaveRaw(payload); err != nil {
		return nil, fmt.Errorf("failed to archive raw payload: %w", err)
	}

	return s.apply(ctx, payload)
}

// Rebuild re-reconciles the archived raw payload without touching the network.
func (s *Service) Rebuild(ctx context.Context) (*Result, error) {
	payload, err := s.store.LoadRaw()
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, payload)
}

func (s *Service) apply(ctx context.Context, payload reconcile.Payload) (*Result, error) {
	days, report := s.reconciler.Reconcile(payload)
	if report.Empty() {
		s.logger.Warn("No reading days found in the data",
			zap.Strings("hints", []string{
				"the account has no reading history yet",
				"the upstream data format has changed",
				"the cookie belongs to a different account",
			}),
		)
	}

	now := s.now()
	rec := record.New(days, now)
	if err := s.store.Save(rec); err != nil {
		return nil, fmt.Errorf("failed to save record: %w", err)
	}

	result := &Result{Record: rec, Report: report}

	if s.mirror != nil {
		if err := s.mirror.Replace(ctx, days, now); err != nil {
			s.logger.Warn("Failed to mirror reading history", zap.Error(err))
			result.MirrorErr = err
		}
	}

	s.logger.Info("Sync completed",
		zap.String("source", report.Source),
		zap.Int("total_days", rec.TotalDays),
		zap.Int("warnings", len(report.Warnings)),
	)
	return result, nil
}
