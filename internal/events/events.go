// Package events publishes domain events for downstream consumers
// (analytics, notification fan-out). Delivery to clients is not done here.
package events

import (
	"context"
	"time"
)

// MatchCreated is published once per canonical pair, by whichever
// trigger created the match.
type MatchCreated struct {
	MatchID   string    `json:"match_id"`
	UserAID   string    `json:"user_a_id"`
	UserBID   string    `json:"user_b_id"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// Match creation triggers.
const (
	SourceSwipe       = "swipe"
	SourceChatRequest = "chat_request"
)

type Publisher interface {
	PublishMatchCreated(ctx context.Context, ev MatchCreated) error
}

// Noop drops every event. Used when no broker is configured.
type Noop struct{}

func (Noop) PublishMatchCreated(context.Context, MatchCreated) error { return nil }
