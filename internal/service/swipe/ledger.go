// Package swipe records directional swipes and turns mutual right swipes
// into matches.
package swipe

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/oggyb/radar-match/internal/db"
	svcErr "github.com/oggyb/radar-match/internal/errors"
	"github.com/oggyb/radar-match/internal/events"
	"github.com/oggyb/radar-match/internal/identity"
	"github.com/oggyb/radar-match/internal/repository"
	"github.com/oggyb/radar-match/internal/service/match"
)

// Result is the outcome of one swipe.
type Result struct {
	Matched bool
	Match   *match.View
}

type Dependencies struct {
	Swipes     repository.SwipeStore
	Reconciler *match.Reconciler
	Guard      *identity.Guard
	Logger     *slog.Logger
	Now        func() time.Time
}

type Ledger struct {
	swipes     repository.SwipeStore
	reconciler *match.Reconciler
	guard      *identity.Guard
	logger     *slog.Logger
	now        func() time.Time
}

func NewLedger(deps Dependencies) *Ledger {
	l := &Ledger{
		swipes:     deps.Swipes,
		reconciler: deps.Reconciler,
		guard:      deps.Guard,
		logger:     deps.Logger,
		now:        deps.Now,
	}
	if l.now == nil {
		l.now = time.Now
	}
	return l
}

// Record stores swiperID's intent toward swipedID and reconciles a match.
//
// Behavior:
//   - Re-swiping the same target overwrites the previous direction.
//   - A right swipe whose reverse right swipe already exists ensures the
//     canonical match; it is reported as matched whether or not this call
//     created it.
//   - Each call commits its swipe before reading the reverse one, so when
//     both users swipe right concurrently the later reader always sees the
//     other row. Both may see it; the unique pair index keeps that to one match.
func (l *Ledger) Record(ctx context.Context, swiperID, swipedID, direction string) (Result, error) {
	swiperID = strings.TrimSpace(swiperID)
	swipedID = strings.TrimSpace(swipedID)
	direction = strings.ToLower(strings.TrimSpace(direction))

	if swiperID == "" || swipedID == "" {
		return Result{}, svcErr.InvalidInput("swiper and swiped user ids are required")
	}
	if swiperID == swipedID {
		return Result{}, svcErr.InvalidInput("cannot swipe on yourself")
	}
	if l.guard.IsPlaceholder(swipedID) {
		return Result{}, svcErr.InvalidInput("swiped user id is not a real user")
	}
	if direction != db.SwipeLeft && direction != db.SwipeRight {
		return Result{}, svcErr.InvalidInput("direction must be left or right")
	}

	err := l.swipes.Upsert(ctx, db.Swipe{
		SwiperID:  swiperID,
		SwipedID:  swipedID,
		Direction: direction,
		CreatedAt: l.now().UTC(),
	})
	if err != nil {
		l.logger.Error("swipe upsert failed", "swiper", swiperID, "swiped", swipedID, "err", err)
		return Result{}, svcErr.Unavailable("record swipe", err)
	}

	if direction == db.SwipeLeft {
		return Result{}, nil
	}

	reciprocal, err := l.swipes.HasSwiped(ctx, swipedID, swiperID, db.SwipeRight)
	if err != nil {
		l.logger.Error("reverse swipe lookup failed", "swiper", swiperID, "swiped", swipedID, "err", err)
		return Result{}, svcErr.Unavailable("check reverse swipe", err)
	}
	if !reciprocal {
		return Result{}, nil
	}

	m, _, err := l.reconciler.Ensure(ctx, swiperID, swipedID, events.SourceSwipe)
	if err != nil {
		return Result{}, err
	}
	view := l.reconciler.Describe(ctx, m, swiperID)
	return Result{Matched: true, Match: &view}, nil
}
