package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/oggyb/radar-match/internal/db"
	"github.com/oggyb/radar-match/internal/geo"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(database *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: database}
}

// FindUpcomingInBox returns activities inside box starting at or after from,
// soonest first.
func (r *ActivityRepository) FindUpcomingInBox(ctx context.Context, box geo.Box, from time.Time) ([]db.Activity, error) {
	var rows []db.Activity
	err := r.db.WithContext(ctx).
		Scopes(inBox(box)).
		Where("starts_at >= ?", from).
		Order("starts_at ASC, id ASC").
		Find(&rows).Error
	return rows, err
}
