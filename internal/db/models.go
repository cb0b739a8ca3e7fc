package db

import (
	"time"

	"gorm.io/datatypes"
)

// Chat request lifecycle states.
const (
	ChatRequestPending  = "pending"
	ChatRequestAccepted = "accepted"
	ChatRequestDeclined = "declined"
)

// Swipe directions.
const (
	SwipeLeft  = "left"
	SwipeRight = "right"
)

// Profile is the local read model of the profile collaborator.
// Rows are written by the profile service; this module only reads them.
type Profile struct {
	UserID    string                      `gorm:"primaryKey;size:64"`
	Name      string                      `gorm:"size:128;not null"`
	Age       int                         `gorm:"not null;default:0"`
	Bio       string                      `gorm:"size:1024"`
	Photos    datatypes.JSONSlice[string] `gorm:"type:json"`
	Interests datatypes.JSONSlice[string] `gorm:"type:json"`
	City      string                      `gorm:"size:128"`
	Verified  bool                        `gorm:"not null;default:false"`
	Badge     string                      `gorm:"size:32"`
	// Hidden opts the user out of radar discovery.
	Hidden    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// UserLocation is the last known coordinate of a user, one row per user.
//
// Indexes:
//   - idx_location_lat_lng(lat, lng) serves the bounding-box prefilter.
//   - idx_location_updated(updated_at) serves the recency cut-off.
type UserLocation struct {
	UserID    string    `gorm:"primaryKey;size:64"`
	Lat       float64   `gorm:"not null;index:idx_location_lat_lng,priority:1"`
	Lng       float64   `gorm:"not null;index:idx_location_lat_lng,priority:2"`
	UpdatedAt time.Time `gorm:"not null;index:idx_location_updated"`
}

// Activity is an upcoming event with a fixed venue coordinate.
type Activity struct {
	ID        string    `gorm:"primaryKey;size:36"`
	HostID    string    `gorm:"size:64;not null;index"`
	Title     string    `gorm:"size:200;not null"`
	Category  string    `gorm:"size:64"`
	Lat       float64   `gorm:"not null;index:idx_activity_lat_lng,priority:1"`
	Lng       float64   `gorm:"not null;index:idx_activity_lat_lng,priority:2"`
	StartsAt  time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Swipe represents a swiper's directional intent toward another user.
//
// Composite PK: (SwiperID, SwipedID)
//   - Ensures a single row per ordered pair; re-swiping overwrites.
//
// Indexes:
//   - idx_swipe_reverse(swiped_id, swiper_id, direction) serves the
//     reverse-swipe lookup done on every right swipe.
type Swipe struct {
	SwiperID  string    `gorm:"primaryKey;size:64;index:idx_swipe_reverse,priority:2"`
	SwipedID  string    `gorm:"primaryKey;size:64;index:idx_swipe_reverse,priority:1"`
	Direction string    `gorm:"size:8;not null;index:idx_swipe_reverse,priority:3"`
	CreatedAt time.Time `gorm:"not null"`
}

// Match is a mutual connection between two users.
//
// (UserAID, UserBID) is the lexicographically sorted pair. The unique
// index idx_match_pair is the authority on "one match per pair": inserts
// race against it, never against an application-level check.
type Match struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UserAID   string    `gorm:"size:64;not null;uniqueIndex:idx_match_pair,priority:1"`
	UserBID   string    `gorm:"size:64;not null;uniqueIndex:idx_match_pair,priority:2;index:idx_match_user_b"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// ChatRequest is an explicit request to connect, answered by the receiver.
type ChatRequest struct {
	ID         string    `gorm:"primaryKey;size:36"`
	SenderID   string    `gorm:"size:64;not null;index:idx_chat_request_pair,priority:1"`
	ReceiverID string    `gorm:"size:64;not null;index:idx_chat_request_pair,priority:2;index:idx_chat_request_inbox,priority:1"`
	Message    string    `gorm:"size:500"`
	Status     string    `gorm:"size:16;not null;index:idx_chat_request_inbox,priority:2"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// QuotaState is the rolling-window usage counter for one user and operation.
type QuotaState struct {
	UserID          string    `gorm:"primaryKey;size:64"`
	Operation       string    `gorm:"primaryKey;size:32"`
	Count           int       `gorm:"column:used_count;not null;default:0"`
	WindowStartedAt time.Time `gorm:"not null"`
}

// TableName keeps the table name stable across pluralization rules.
func (QuotaState) TableName() string {
	return "quota_states"
}

// All returns every model managed by this module, in migration order.
func All() []any {
	return []any{
		&Profile{},
		&UserLocation{},
		&Activity{},
		&Swipe{},
		&Match{},
		&ChatRequest{},
		&QuotaState{},
	}
}
