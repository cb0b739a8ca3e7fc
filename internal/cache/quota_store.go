package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oggyb/radar-match/internal/db"
)

// incrementScript resets or increments a quota hash atomically.
// KEYS[1] quota hash, KEYS[2] operation index set
// ARGV[1] now (unix ms), ARGV[2] window (ms), ARGV[3] operation, ARGV[4] ttl (ms)
var incrementScript = redis.NewScript(`
local started = tonumber(redis.call('HGET', KEYS[1], 'started'))
local now = tonumber(ARGV[1])
if started == nil or now - started > tonumber(ARGV[2]) then
	redis.call('HSET', KEYS[1], 'count', 1, 'started', ARGV[1])
else
	redis.call('HINCRBY', KEYS[1], 'count', 1)
end
redis.call('PEXPIRE', KEYS[1], ARGV[4])
redis.call('SADD', KEYS[2], ARGV[3])
redis.call('PEXPIRE', KEYS[2], ARGV[4])
return redis.call('HMGET', KEYS[1], 'count', 'started')
`)

// QuotaStore keeps rolling-window counters in Redis hashes.
//
// Keys expire after twice the window. An evicted key can only belong to a
// window that has already elapsed, so eviction is indistinguishable from
// the reset the next increment would have done anyway.
type QuotaStore struct {
	cache *RedisCache
}

func NewQuotaStore(c *RedisCache) *QuotaStore {
	return &QuotaStore{cache: c}
}

func (s *QuotaStore) Get(ctx context.Context, userID, operation string) (db.QuotaState, bool, error) {
	vals, err := s.cache.Client.HMGet(ctx, s.cache.KeyForQuota(userID, operation), "count", "started").Result()
	if err != nil {
		return db.QuotaState{}, false, fmt.Errorf("read quota: %w", err)
	}
	return parseQuota(userID, operation, vals)
}

func (s *QuotaStore) Increment(
	ctx context.Context,
	userID, operation string,
	now time.Time,
	window time.Duration,
) (db.QuotaState, error) {
	ttl := 2 * window
	keys := []string{s.cache.KeyForQuota(userID, operation), s.cache.KeyForQuotaIndex(userID)}
	vals, err := incrementScript.Run(ctx, s.cache.Client, keys,
		now.UnixMilli(), window.Milliseconds(), operation, ttl.Milliseconds(),
	).Slice()
	if err != nil {
		return db.QuotaState{}, fmt.Errorf("increment quota: %w", err)
	}
	state, _, err := parseQuota(userID, operation, vals)
	return state, err
}

func (s *QuotaStore) List(ctx context.Context, userID string) ([]db.QuotaState, error) {
	ops, err := s.cache.Client.SMembers(ctx, s.cache.KeyForQuotaIndex(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("list quota operations: %w", err)
	}

	out := make([]db.QuotaState, 0, len(ops))
	for _, op := range ops {
		state, found, err := s.Get(ctx, userID, op)
		if err != nil {
			return nil, err
		}
		if found {
			out = append(out, state)
		}
	}
	return out, nil
}

func parseQuota(userID, operation string, vals []interface{}) (db.QuotaState, bool, error) {
	if len(vals) != 2 || vals[0] == nil || vals[1] == nil {
		return db.QuotaState{}, false, nil
	}
	count, err := strconv.Atoi(fmt.Sprint(vals[0]))
	if err != nil {
		return db.QuotaState{}, false, fmt.Errorf("parse quota count: %w", err)
	}
	startedMs, err := strconv.ParseInt(fmt.Sprint(vals[1]), 10, 64)
	if err != nil {
		return db.QuotaState{}, false, fmt.Errorf("parse quota window: %w", err)
	}
	return db.QuotaState{
		UserID:          userID,
		Operation:       operation,
		Count:           count,
		WindowStartedAt: time.UnixMilli(startedMs).UTC(),
	}, true, nil
}
