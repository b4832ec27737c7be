package history

import (
	"context"
	"fmt"
	"time"

	"reading-tracker/core/reconcile"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const batchSize = 500

// Repository mirrors the reconciled days into a relational table.
type Repository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewRepository creates a new history repository.
func NewRepository(db *gorm.DB, logger *zap.Logger) *Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repository{db: db, logger: logger}
}

// Migrate creates or updates the reading_days table.
func (r *Repository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&ReadingDay{}); err != nil {
		return fmt.Errorf("failed to migrate reading_days: %w", err)
	}
	return nil
}

// Replace swaps the table contents for days in a single transaction.
func (r *Repository) Replace(ctx context.Context, days reconcile.ReadingDays, syncedAt time.Time) error {
	rows := make([]ReadingDay, 0, len(days))
	for _, key := range days.Keys() {
		rows = append(rows, ReadingDay{Date: key, SyncedAt: syncedAt})
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&ReadingDay{}).Error; err != nil {
			return fmt.Errorf("failed to clear reading_days: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, batchSize).Error; err != nil {
			return fmt.Errorf("failed to insert reading_days: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Reading history mirrored", zap.Int("days", len(rows)))
	return nil
}

// Dates returns the mirrored days in ascending order.
func (r *Repository) Dates(ctx context.Context) ([]string, error) {
	var out []string
	if err := r.db.WithContext(ctx).Model(&ReadingDay{}).Order("date").Pluck("date", &out).Error; err != nil {
		return nil, fmt.Errorf("failed to list reading_days: %w", err)
	}
	return out, nil
}
