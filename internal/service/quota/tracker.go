// Package quota implements the rolling-window usage tracker shared by
// radar scans and compatibility checks.
//
// Check and Increment are separate calls. Two concurrent requests for the
// same user can both pass Check before either increments, so a user may
// overrun a limit by one per concurrent pair. Callers run
// check → work → increment so a failed operation never consumes quota.
package quota

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/oggyb/radar-match/internal/config"
	svcErr "github.com/oggyb/radar-match/internal/errors"
	"github.com/oggyb/radar-match/internal/repository"
)

// Usage is one operation's counter as seen at a point in time.
type Usage struct {
	Operation       string
	Tier            string
	Used            int
	Limit           int
	WindowStartedAt time.Time
	ResetsAt        time.Time
}

// Unlimited reports whether the tier has no cap on the operation.
func (u Usage) Unlimited() bool { return u.Limit == config.Unlimited }

type Config struct {
	Window      time.Duration
	DefaultTier string
	Limits      config.TierLimits
}

type Tracker struct {
	store  repository.QuotaStore
	cfg    Config
	logger *slog.Logger
	now    func() time.Time
}

func NewTracker(store repository.QuotaStore, cfg Config, logger *slog.Logger, now func() time.Time) *Tracker {
	if cfg.Window <= 0 {
		cfg.Window = 24 * time.Hour
	}
	if cfg.Limits == nil {
		cfg.Limits = config.DefaultTierLimits()
	}
	if strings.TrimSpace(cfg.DefaultTier) == "" {
		cfg.DefaultTier = "starter"
	}
	if now == nil {
		now = time.Now
	}
	return &Tracker{store: store, cfg: cfg, logger: logger, now: now}
}

// Limit resolves the limit for operation under tier. Unknown tiers fall
// back to the default tier; the returned tier is the one applied.
func (t *Tracker) Limit(operation, tier string) (int, string, error) {
	tiers, ok := t.cfg.Limits[operation]
	if !ok {
		return 0, "", svcErr.InvalidInput(fmt.Sprintf("unknown operation %q", operation))
	}
	tier = strings.ToLower(strings.TrimSpace(tier))
	if limit, ok := tiers[tier]; ok {
		return limit, tier, nil
	}
	if limit, ok := tiers[t.cfg.DefaultTier]; ok {
		return limit, t.cfg.DefaultTier, nil
	}
	return 0, "", svcErr.InvalidInput(fmt.Sprintf("no limit configured for %s/%s", operation, tier))
}

// Check fails with QuotaExceededError when the user has no budget left.
// An elapsed window counts as zero; the reset itself is persisted by the
// next Increment.
func (t *Tracker) Check(ctx context.Context, userID, tier, operation string) (Usage, error) {
	limit, tier, err := t.Limit(operation, tier)
	if err != nil {
		return Usage{}, err
	}

	state, found, err := t.store.Get(ctx, userID, operation)
	if err != nil {
		t.logger.Error("quota lookup failed", "user_id", userID, "operation", operation, "err", err)
		return Usage{}, svcErr.Unavailable("load quota", err)
	}

	usage := Usage{Operation: operation, Tier: tier, Limit: limit}
	if found && !t.elapsed(state.WindowStartedAt) {
		usage.Used = state.Count
		usage.WindowStartedAt = state.WindowStartedAt
		usage.ResetsAt = state.WindowStartedAt.Add(t.cfg.Window)
	}

	if !usage.Unlimited() && usage.Used >= limit {
		return usage, &svcErr.QuotaExceededError{
			Operation: operation,
			Tier:      tier,
			Limit:     limit,
			Used:      usage.Used,
			ResetAt:   usage.ResetsAt,
		}
	}
	return usage, nil
}

// Increment records one successful use, restarting the window if it elapsed.
func (t *Tracker) Increment(ctx context.Context, userID, operation string) (int, error) {
	state, err := t.store.Increment(ctx, userID, operation, t.now().UTC(), t.cfg.Window)
	if err != nil {
		t.logger.Error("quota increment failed", "user_id", userID, "operation", operation, "err", err)
		return 0, svcErr.Unavailable("increment quota", err)
	}
	return state.Count, nil
}

// Usage reports every configured operation for the user under tier.
func (t *Tracker) Usage(ctx context.Context, userID, tier string) ([]Usage, error) {
	states, err := t.store.List(ctx, userID)
	if err != nil {
		return nil, svcErr.Unavailable("list quota", err)
	}
	byOp := make(map[string]int, len(states))
	for i, s := range states {
		byOp[s.Operation] = i
	}

	ops := make([]string, 0, len(t.cfg.Limits))
	for op := range t.cfg.Limits {
		ops = append(ops, op)
	}
	sort.Strings(ops)

	out := make([]Usage, 0, len(ops))
	for _, op := range ops {
		limit, applied, err := t.Limit(op, tier)
		if err != nil {
			return nil, err
		}
		u := Usage{Operation: op, Tier: applied, Limit: limit}
		if i, ok := byOp[op]; ok && !t.elapsed(states[i].WindowStartedAt) {
			u.Used = states[i].Count
			u.WindowStartedAt = states[i].WindowStartedAt
			u.ResetsAt = states[i].WindowStartedAt.Add(t.cfg.Window)
		}
		out = append(out, u)
	}
	return out, nil
}

func (t *Tracker) elapsed(windowStartedAt time.Time) bool {
	return t.now().Sub(windowStartedAt) > t.cfg.Window
}
