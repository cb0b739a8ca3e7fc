package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/radar-match/internal/db"
	"github.com/oggyb/radar-match/internal/utils/pagination"
)

// MatchRepository provides data access methods for the Match model.
type MatchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(database *gorm.DB) *MatchRepository {
	return &MatchRepository{db: database}
}

// CreateIfAbsent inserts m and no-ops when its canonical pair already exists.
//
// Behavior:
//   - m.UserAID/m.UserBID must already be sorted; the unique index
//     idx_match_pair decides which concurrent insert wins.
//   - On conflict nothing is written and the stored row is returned
//     with created = false.
func (r *MatchRepository) CreateIfAbsent(ctx context.Context, m db.Match) (db.Match, bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&m)
	if res.Error != nil {
		return db.Match{}, false, fmt.Errorf("insert match: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		return m, true, nil
	}

	var existing db.Match
	err := r.db.WithContext(ctx).
		Where("user_a_id = ? AND user_b_id = ?", m.UserAID, m.UserBID).
		First(&existing).Error
	if err != nil {
		return db.Match{}, false, fmt.Errorf("load existing match: %w", err)
	}
	return existing, false, nil
}

// ListForUser returns matches the user takes part in, newest first.
// Supports cursor-based pagination via pageToken.
func (r *MatchRepository) ListForUser(
	ctx context.Context,
	userID string,
	pageToken *string,
	limit int,
) ([]db.Match, *string, error) {
	cursor, err := pagination.Decode(getString(pageToken))
	if err != nil {
		return nil, nil, ErrInvalidPageToken
	}

	query := r.db.WithContext(ctx).
		Where("user_a_id = ? OR user_b_id = ?", userID, userID).
		Order("created_at DESC, id DESC").
		Limit(limit + 1)

	if !cursor.IsZero() {
		ts := cursor.CreatedAt()
		query = query.Where(
			"(created_at < ? OR (created_at = ? AND id < ?))",
			ts, ts, cursor.ID,
		)
	}

	var matches []db.Match
	if err := query.Find(&matches).Error; err != nil {
		return nil, nil, err
	}

	var nextToken *string
	if len(matches) > limit {
		last := matches[limit-1]
		token, _ := pagination.Encode(pagination.At(last.ID, last.CreatedAt))
		nextToken = &token
		matches = matches[:limit]
	}

	return matches, nextToken, nil
}

// getString safely dereferences a string pointer for pagination tokens.
func getString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
