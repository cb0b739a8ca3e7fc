// Package repository defines the storage contracts of the discovery core
// and their gorm-backed implementations (MySQL in production, SQLite in
// development and tests). The backend is chosen once at startup.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/oggyb/radar-match/internal/db"
	"github.com/oggyb/radar-match/internal/geo"
)

// ErrInvalidPageToken is returned for malformed pagination tokens.
var ErrInvalidPageToken = errors.New("invalid pagination token")

// LocationStore keeps the last known coordinate per user.
type LocationStore interface {
	Upsert(ctx context.Context, loc db.UserLocation) error
	FindInBox(ctx context.Context, box geo.Box, excludeUserID string, since time.Time) ([]db.UserLocation, error)
}

// ActivityStore reads upcoming activities for the radar.
type ActivityStore interface {
	FindUpcomingInBox(ctx context.Context, box geo.Box, from time.Time) ([]db.Activity, error)
}

// SwipeStore records directional swipe intents, one row per ordered pair.
type SwipeStore interface {
	Upsert(ctx context.Context, swipe db.Swipe) error
	HasSwiped(ctx context.Context, swiperID, swipedID, direction string) (bool, error)
}

// MatchStore persists canonical matches.
type MatchStore interface {
	// CreateIfAbsent inserts m unless its pair already exists and returns
	// the stored match plus whether this call created it.
	CreateIfAbsent(ctx context.Context, m db.Match) (db.Match, bool, error)
	ListForUser(ctx context.Context, userID string, pageToken *string, limit int) ([]db.Match, *string, error)
}

// ChatRequestStore persists chat-request handshakes.
type ChatRequestStore interface {
	FindActiveBetween(ctx context.Context, userA, userB string) ([]db.ChatRequest, error)
	Create(ctx context.Context, req db.ChatRequest) error
	Get(ctx context.Context, id string) (db.ChatRequest, error)
	// Transition moves a request from one status to another and reports
	// false when the request was not in the expected status.
	Transition(ctx context.Context, id, from, to string, at time.Time) (bool, error)
	ListIncoming(ctx context.Context, receiverID string, limit int) ([]db.ChatRequest, error)
}

// QuotaStore persists rolling-window usage counters.
type QuotaStore interface {
	Get(ctx context.Context, userID, operation string) (db.QuotaState, bool, error)
	// Increment resets the window when now - windowStartedAt > window and
	// then adds one, as a single atomic step.
	Increment(ctx context.Context, userID, operation string, now time.Time, window time.Duration) (db.QuotaState, error)
	List(ctx context.Context, userID string) ([]db.QuotaState, error)
}

// ProfileSummary is what discovery results embed about a user.
type ProfileSummary struct {
	UserID    string   `json:"user_id"`
	Name      string   `json:"name"`
	Age       int      `json:"age"`
	Bio       string   `json:"bio,omitempty"`
	Photos    []string `json:"photos,omitempty"`
	Interests []string `json:"interests,omitempty"`
	Location  string   `json:"location,omitempty"`
	Verified  bool     `json:"verified"`
	Badge     string   `json:"badge,omitempty"`
	// Hidden is never serialized so cached copies cannot go stale on it.
	Hidden bool `json:"-"`
}

// VisibilityChecker reports which of userIDs have opted out of discovery.
// Implementations must read the source of truth, not a cache.
type VisibilityChecker interface {
	Hidden(ctx context.Context, userIDs []string) (map[string]bool, error)
}

// ProfileDirectory is the profile-lookup collaborator.
type ProfileDirectory interface {
	// Summary fails with gorm.ErrRecordNotFound for unknown users.
	Summary(ctx context.Context, userID string) (ProfileSummary, error)
	// Summaries silently omits unknown users.
	Summaries(ctx context.Context, userIDs []string) (map[string]ProfileSummary, error)
}
