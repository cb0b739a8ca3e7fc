package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/radar-match/internal/db"
)

// QuotaRepository is the durable QuotaStore, so restarts never reset usage.
type QuotaRepository struct {
	db *gorm.DB
}

func NewQuotaRepository(database *gorm.DB) *QuotaRepository {
	return &QuotaRepository{db: database}
}

func (r *QuotaRepository) Get(ctx context.Context, userID, operation string) (db.QuotaState, bool, error) {
	var state db.QuotaState
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND operation = ?", userID, operation).
		First(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.QuotaState{}, false, nil
	}
	if err != nil {
		return db.QuotaState{}, false, err
	}
	return state, true, nil
}

// Increment performs reset-or-increment in one upsert statement.
//
// Behavior:
//   - No row yet → inserted with count 1 and the window starting now.
//   - Window elapsed (window_started_at < now - window) → count 1, window restarts.
//   - Otherwise → count + 1 in place.
//
// Assignments are applied in key order (used_count before
// window_started_at), so the count CASE always sees the old window start,
// including on MySQL where later assignments observe earlier ones.
func (r *QuotaRepository) Increment(
	ctx context.Context,
	userID, operation string,
	now time.Time,
	window time.Duration,
) (db.QuotaState, error) {
	threshold := now.Add(-window)
	state := db.QuotaState{
		UserID:          userID,
		Operation:       operation,
		Count:           1,
		WindowStartedAt: now,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "operation"}},
			DoUpdates: clause.Assignments(map[string]any{
				"used_count": gorm.Expr(
					"CASE WHEN window_started_at < ? THEN 1 ELSE used_count + 1 END", threshold),
				"window_started_at": gorm.Expr(
					"CASE WHEN window_started_at < ? THEN ? ELSE window_started_at END", threshold, now),
			}),
		}).
		Create(&state).Error
	if err != nil {
		return db.QuotaState{}, fmt.Errorf("increment quota: %w", err)
	}

	stored, _, err := r.Get(ctx, userID, operation)
	if err != nil {
		return db.QuotaState{}, fmt.Errorf("reload quota: %w", err)
	}
	return stored, nil
}

func (r *QuotaRepository) List(ctx context.Context, userID string) ([]db.QuotaState, error) {
	var rows []db.QuotaState
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("operation ASC").
		Find(&rows).Error
	return rows, err
}
