package reading

import (
	"time"

	"reading-tracker/core/metrics"
	"reading-tracker/feature/record"
	"reading-tracker/feature/report"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new reading feature.
func NewFeature(store *record.Store, renderer *report.Renderer, windowDays int, ttl time.Duration, m metrics.Provider, logger *zap.Logger) *Feature {
	svc := NewService(store, renderer, windowDays, ttl, m, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "reading"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the feature's service.
func (f *Feature) Service() *Service {
	return f.service
}
