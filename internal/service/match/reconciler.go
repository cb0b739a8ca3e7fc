// Package match owns the canonical-pair match primitive. Every path that
// can connect two users goes through Reconciler.Ensure.
package match

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oggyb/radar-match/internal/db"
	svcErr "github.com/oggyb/radar-match/internal/errors"
	"github.com/oggyb/radar-match/internal/events"
	"github.com/oggyb/radar-match/internal/repository"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// View is a match as seen by one of its members.
type View struct {
	ID          string
	UserAID     string
	UserBID     string
	CreatedAt   time.Time
	MatchedUser *repository.ProfileSummary
}

type Dependencies struct {
	Matches  repository.MatchStore
	Profiles repository.ProfileDirectory
	Events   events.Publisher
	Logger   *slog.Logger
	Now      func() time.Time
}

type Reconciler struct {
	matches  repository.MatchStore
	profiles repository.ProfileDirectory
	events   events.Publisher
	logger   *slog.Logger
	now      func() time.Time
}

func NewReconciler(deps Dependencies) *Reconciler {
	r := &Reconciler{
		matches:  deps.Matches,
		profiles: deps.Profiles,
		events:   deps.Events,
		logger:   deps.Logger,
		now:      deps.Now,
	}
	if r.events == nil {
		r.events = events.Noop{}
	}
	if r.now == nil {
		r.now = time.Now
	}
	return r
}

// CanonicalPair orders two user ids lexicographically.
func CanonicalPair(a, b string) (string, string) {
	if a > b {
		return b, a
	}
	return a, b
}

// Ensure creates the match for the unordered pair {a, b} unless it exists.
//
// Behavior:
//   - The storage unique index on the sorted pair decides concurrent races;
//     losing a race is reported as created = false, never as an error.
//   - A match.created event is published only by the call that created it.
func (r *Reconciler) Ensure(ctx context.Context, a, b, source string) (db.Match, bool, error) {
	userA, userB := CanonicalPair(a, b)
	m, created, err := r.matches.CreateIfAbsent(ctx, db.Match{
		ID:        uuid.NewString(),
		UserAID:   userA,
		UserBID:   userB,
		CreatedAt: r.now().UTC(),
	})
	if err != nil {
		r.logger.Error("match creation failed", "user_a", userA, "user_b", userB, "err", err)
		return db.Match{}, false, svcErr.Unavailable("create match", err)
	}

	if created {
		r.logger.Info("match created", "match_id", m.ID, "user_a", userA, "user_b", userB, "source", source)
		ev := events.MatchCreated{
			MatchID:   m.ID,
			UserAID:   m.UserAID,
			UserBID:   m.UserBID,
			Source:    source,
			CreatedAt: m.CreatedAt,
		}
		if err := r.events.PublishMatchCreated(ctx, ev); err != nil {
			r.logger.Warn("match event publish failed", "match_id", m.ID, "err", err)
		}
	}
	return m, created, nil
}

// Describe embeds the counterpart's profile summary from viewerID's side.
// A failed lookup leaves MatchedUser nil; the match itself is already durable.
func (r *Reconciler) Describe(ctx context.Context, m db.Match, viewerID string) View {
	v := View{ID: m.ID, UserAID: m.UserAID, UserBID: m.UserBID, CreatedAt: m.CreatedAt}

	other := m.UserAID
	if other == viewerID {
		other = m.UserBID
	}
	summary, err := r.profiles.Summary(ctx, other)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("matched profile lookup failed", "match_id", m.ID, "user_id", other, "err", err)
		}
		return v
	}
	v.MatchedUser = &summary
	return v
}

// List returns the user's matches, newest first, with counterpart summaries.
func (r *Reconciler) List(ctx context.Context, userID string, pageToken *string, limit int) ([]View, *string, error) {
	if userID == "" {
		return nil, nil, svcErr.InvalidInput("user_id is required")
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	matches, next, err := r.matches.ListForUser(ctx, userID, pageToken, limit)
	if errors.Is(err, repository.ErrInvalidPageToken) {
		return nil, nil, svcErr.InvalidInput("invalid pagination token")
	}
	if err != nil {
		return nil, nil, svcErr.Unavailable("list matches", err)
	}

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, counterpart(m, userID))
	}
	profiles, err := r.profiles.Summaries(ctx, ids)
	if err != nil {
		return nil, nil, svcErr.Unavailable("load matched profiles", err)
	}

	views := make([]View, 0, len(matches))
	for _, m := range matches {
		v := View{ID: m.ID, UserAID: m.UserAID, UserBID: m.UserBID, CreatedAt: m.CreatedAt}
		if p, ok := profiles[counterpart(m, userID)]; ok {
			v.MatchedUser = &p
		}
		views = append(views, v)
	}
	return views, next, nil
}

func counterpart(m db.Match, userID string) string {
	if m.UserAID == userID {
		return m.UserBID
	}
	return m.UserAID
}
