package cache_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/radar-match/internal/cache"
	"github.com/oggyb/radar-match/internal/config"
	"github.com/oggyb/radar-match/internal/repository"
)

func setupRedis(t *testing.T) (*cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cfg := &config.Config{}
	cfg.Redis.Addr = mr.Addr()
	rc := cache.NewRedisCache(cfg)
	t.Cleanup(func() { _ = rc.Close() })
	return rc, mr
}

// countingDirectory records how often the backing store is hit.
type countingDirectory struct {
	profiles map[string]repository.ProfileSummary
	calls    int
}

func (d *countingDirectory) Summary(_ context.Context, id string) (repository.ProfileSummary, error) {
	d.calls++
	return d.profiles[id], nil
}

func (d *countingDirectory) Summaries(_ context.Context, ids []string) (map[string]repository.ProfileSummary, error) {
	d.calls++
	out := map[string]repository.ProfileSummary{}
	for _, id := range ids {
		if p, ok := d.profiles[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func TestProfileCacheReadThrough(t *testing.T) {
	ctx := context.Background()
	rc, mr := setupRedis(t)
	next := &countingDirectory{profiles: map[string]repository.ProfileSummary{
		"a": {UserID: "a", Name: "Ada", Age: 31},
		"b": {UserID: "b", Name: "Bo", Age: 29, Hidden: true},
	}}
	pc := cache.NewProfileCache(rc, next, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))

	// First call → backing store
	got, err := pc.Summaries(ctx, []string{"a", "b", "ghost"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 1, next.calls)
	assert.True(t, mr.Exists("profile:summary:a"))

	// Second call → cache only
	got, err = pc.Summaries(ctx, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "Bo", got["b"].Name)
	assert.Equal(t, 1, next.calls)

	s, err := pc.Summary(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Ada", s.Name)
	assert.Equal(t, 1, next.calls)

	// visibility is never served from the cache
	raw, err := mr.Get("profile:summary:b")
	require.NoError(t, err)
	assert.NotContains(t, raw, "hidden")
	assert.False(t, got["b"].Hidden)

	mr.FastForward(2 * time.Minute)
	assert.False(t, mr.Exists("profile:summary:b"))
}

func TestRedisQuotaStoreRollingWindow(t *testing.T) {
	ctx := context.Background()
	rc, mr := setupRedis(t)
	store := cache.NewQuotaStore(rc)
	window := 24 * time.Hour
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	_, found, err := store.Get(ctx, "u1", "radarScan")
	require.NoError(t, err)
	assert.False(t, found)

	s, err := store.Increment(ctx, "u1", "radarScan", start, window)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Count)
	assert.True(t, s.WindowStartedAt.Equal(start))

	s, err = store.Increment(ctx, "u1", "radarScan", start.Add(24*time.Hour), window)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Count)

	later := start.Add(24*time.Hour + time.Second)
	s, err = store.Increment(ctx, "u1", "radarScan", later, window)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Count)
	assert.True(t, s.WindowStartedAt.Equal(later))

	_, err = store.Increment(ctx, "u1", "compatibilityCheck", later, window)
	require.NoError(t, err)

	all, err := store.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	assert.Greater(t, mr.TTL("quota:{u1}:radarScan"), 24*time.Hour)
}
