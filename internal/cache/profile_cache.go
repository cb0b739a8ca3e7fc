package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/oggyb/radar-match/internal/repository"
)

// ProfileCache is a cache-first ProfileDirectory.
//
// Behavior:
//  1. Reads profile:summary:<id> from Redis.
//  2. On miss or decode error, falls back to the wrapped directory.
//  3. On fallback, writes the summary back with the configured TTL.
//
// Redis failures degrade to the wrapped directory; they never fail a lookup.
// Summaries never carry Hidden, so visibility has to come from a
// repository.VisibilityChecker that reads the database.
type ProfileCache struct {
	cache  *RedisCache
	next   repository.ProfileDirectory
	ttl    time.Duration
	logger *slog.Logger
}

func NewProfileCache(c *RedisCache, next repository.ProfileDirectory, ttl time.Duration, logger *slog.Logger) *ProfileCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &ProfileCache{cache: c, next: next, ttl: ttl, logger: logger}
}

func (p *ProfileCache) Summary(ctx context.Context, userID string) (repository.ProfileSummary, error) {
	if s, ok := p.lookup(ctx, userID); ok {
		return s, nil
	}

	s, err := p.next.Summary(ctx, userID)
	if err != nil {
		return repository.ProfileSummary{}, err
	}
	p.store(ctx, s)
	return s, nil
}

func (p *ProfileCache) Summaries(ctx context.Context, userIDs []string) (map[string]repository.ProfileSummary, error) {
	out := make(map[string]repository.ProfileSummary, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	keys := make([]string, len(userIDs))
	for i, id := range userIDs {
		keys[i] = p.cache.KeyForProfile(id)
	}

	var missing []string
	vals, err := p.cache.Client.MGet(ctx, keys...).Result()
	if err != nil {
		p.logger.Warn("profile cache mget failed", "err", err)
		missing = userIDs
	} else {
		for i, v := range vals {
			raw, ok := v.(string)
			var s repository.ProfileSummary
			if !ok || json.Unmarshal([]byte(raw), &s) != nil {
				missing = append(missing, userIDs[i])
				continue
			}
			out[userIDs[i]] = s
		}
	}

	if len(missing) == 0 {
		return out, nil
	}

	fetched, err := p.next.Summaries(ctx, missing)
	if err != nil {
		return nil, err
	}
	for id, s := range fetched {
		out[id] = s
		p.store(ctx, s)
	}
	return out, nil
}

func (p *ProfileCache) lookup(ctx context.Context, userID string) (repository.ProfileSummary, bool) {
	raw, err := p.cache.Get(ctx, p.cache.KeyForProfile(userID))
	if err != nil {
		p.logger.Warn("profile cache get failed", "user_id", userID, "err", err)
		return repository.ProfileSummary{}, false
	}
	if raw == "" {
		return repository.ProfileSummary{}, false
	}
	var s repository.ProfileSummary
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return repository.ProfileSummary{}, false
	}
	return s, true
}

func (p *ProfileCache) store(ctx context.Context, s repository.ProfileSummary) {
	b, err := json.Marshal(s)
	if err != nil {
		return
	}
	if err := p.cache.Set(ctx, p.cache.KeyForProfile(s.UserID), b, p.ttl); err != nil {
		p.logger.Warn("profile cache set failed", "user_id", s.UserID, "err", err)
	}
}
