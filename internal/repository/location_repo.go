package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/radar-match/internal/db"
	"github.com/oggyb/radar-match/internal/geo"
)

// LocationRepository is the gorm LocationStore.
type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(database *gorm.DB) *LocationRepository {
	return &LocationRepository{db: database}
}

// Upsert overwrites the caller's last known coordinate.
func (r *LocationRepository) Upsert(ctx context.Context, loc db.UserLocation) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"lat", "lng", "updated_at"}),
		}).
		Create(&loc).Error
}

// FindInBox returns other users' locations inside box, updated at or after since.
//
// Behavior:
//   - This is only the rectangular prefilter; callers apply exact distance.
//   - excludeUserID (the scanning user) is never returned.
//   - Ordered by updated_at DESC so fresher rows come first.
func (r *LocationRepository) FindInBox(
	ctx context.Context,
	box geo.Box,
	excludeUserID string,
	since time.Time,
) ([]db.UserLocation, error) {
	var rows []db.UserLocation
	err := r.db.WithContext(ctx).
		Scopes(inBox(box)).
		Where("user_id <> ?", excludeUserID).
		Where("updated_at >= ?", since).
		Order("updated_at DESC").
		Find(&rows).Error
	return rows, err
}

// inBox restricts a query on lat/lng columns to the bounding box.
func inBox(box geo.Box) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		conds := make([]string, 0, len(box.Lng))
		args := make([]any, 0, 2*len(box.Lng))
		for _, rng := range box.Lng {
			conds = append(conds, "lng BETWEEN ? AND ?")
			args = append(args, rng.Min, rng.Max)
		}
		return tx.
			Where("lat BETWEEN ? AND ?", box.Lat.Min, box.Lat.Max).
			Where("("+strings.Join(conds, " OR ")+")", args...)
	}
}
