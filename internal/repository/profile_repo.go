package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/oggyb/radar-match/internal/db"
)

// ProfileRepository reads profile summaries from the local profiles table.
type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: database}
}

func (r *ProfileRepository) Summary(ctx context.Context, userID string) (ProfileSummary, error) {
	var p db.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		return ProfileSummary{}, err
	}
	return toSummary(p), nil
}

func (r *ProfileRepository) Summaries(ctx context.Context, userIDs []string) (map[string]ProfileSummary, error) {
	out := make(map[string]ProfileSummary, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	var rows []db.Profile
	if err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, p := range rows {
		out[p.UserID] = toSummary(p)
	}
	return out, nil
}

// Hidden returns the subset of userIDs whose profile is currently hidden.
func (r *ProfileRepository) Hidden(ctx context.Context, userIDs []string) (map[string]bool, error) {
	out := make(map[string]bool)
	if len(userIDs) == 0 {
		return out, nil
	}

	var hidden []string
	if err := r.db.WithContext(ctx).
		Model(&db.Profile{}).
		Where("user_id IN ? AND hidden = ?", userIDs, true).
		Pluck("user_id", &hidden).Error; err != nil {
		return nil, err
	}
	for _, id := range hidden {
		out[id] = true
	}
	return out, nil
}

func toSummary(p db.Profile) ProfileSummary {
	return ProfileSummary{
		UserID:    p.UserID,
		Name:      p.Name,
		Age:       p.Age,
		Bio:       p.Bio,
		Photos:    []string(p.Photos),
		Interests: []string(p.Interests),
		Location:  p.City,
		Verified:  p.Verified,
		Badge:     p.Badge,
		Hidden:    p.Hidden,
	}
}
