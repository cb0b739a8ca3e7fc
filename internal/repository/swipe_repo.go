package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/radar-match/internal/db"
)

// SwipeRepository provides data access methods for the Swipe model.
type SwipeRepository struct {
	db *gorm.DB
}

// NewSwipeRepository creates a new repository bound to the given DB connection.
func NewSwipeRepository(database *gorm.DB) *SwipeRepository {
	return &SwipeRepository{db: database}
}

// Upsert inserts or overwrites the swipe made by swiper -> swiped.
//
// Behavior:
//   - If (swiper_id, swiped_id) exists → direction and created_at are overwritten.
//   - If it doesn’t exist → a new row is inserted.
//   - Composite PK ensures one row per ordered pair, so repeats are idempotent.
//
// Example:
//
//	repo.Upsert(ctx, db.Swipe{SwiperID: "a", SwipedID: "b", Direction: db.SwipeRight, CreatedAt: now})
func (r *SwipeRepository) Upsert(ctx context.Context, swipe db.Swipe) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "swiper_id"}, {Name: "swiped_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"direction", "created_at"}),
		}).
		Create(&swipe).Error
}

// HasSwiped checks whether swiper currently holds the given direction on swiped.
// Used for the reverse-swipe lookup on every right swipe.
func (r *SwipeRepository) HasSwiped(ctx context.Context, swiperID, swipedID, direction string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Swipe{}).
		Where("swiper_id = ? AND swiped_id = ? AND direction = ?", swiperID, swipedID, direction).
		Count(&count).Error
	return count > 0, err
}
