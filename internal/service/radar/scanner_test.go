package radar_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/oggyb/radar-match/internal/cache"
	"github.com/oggyb/radar-match/internal/config"
	"github.com/oggyb/radar-match/internal/db"
	svcErr "github.com/oggyb/radar-match/internal/errors"
	"github.com/oggyb/radar-match/internal/geo"
	"github.com/oggyb/radar-match/internal/identity"
	"github.com/oggyb/radar-match/internal/repository"
	"github.com/oggyb/radar-match/internal/service/quota"
	"github.com/oggyb/radar-match/internal/service/radar"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

type env struct {
	db      *gorm.DB
	clock   *clock
	tracker *quota.Tracker
	deps    radar.Dependencies
	cfg     radar.Config
}

func (e *env) scanner() *radar.Scanner { return radar.NewScanner(e.deps, e.cfg) }

func setupEnv(t *testing.T) *env {
	t.Helper()
	dbase, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, _ := dbase.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.Migrate(dbase))

	c := &clock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracker := quota.NewTracker(repository.NewQuotaRepository(dbase), quota.Config{
		Window:      24 * time.Hour,
		DefaultTier: "starter",
		Limits: config.TierLimits{
			config.OpRadarScan: {"starter": 2, "lifetime": config.Unlimited},
		},
	}, logger, c.now)

	return &env{
		db:      dbase,
		clock:   c,
		tracker: tracker,
		deps: radar.Dependencies{
			Locations:  repository.NewLocationRepository(dbase),
			Activities: repository.NewActivityRepository(dbase),
			Profiles:   repository.NewProfileRepository(dbase),
			Visibility: repository.NewProfileRepository(dbase),
			Quota:      tracker,
			Guard:      identity.NewGuard([]string{"me"}, []string{"demo-"}),
			Logger:     logger,
			Now:        c.now,
		},
		cfg: radar.Config{
			DefaultRadiusKm: 75,
			MaxRadiusKm:     500,
			MaxUsers:        25,
			MaxActivities:   2,
			Recency:         7 * 24 * time.Hour,
			EarthRadiusKm:   geo.EarthRadiusKm,
		},
	}
}

func (e *env) place(t *testing.T, userID string, lat, lng float64, seen time.Time, hidden bool) {
	t.Helper()
	require.NoError(t, e.db.Create(&db.Profile{UserID: userID, Name: userID, Age: 30, Hidden: hidden}).Error)
	require.NoError(t, e.db.Create(&db.UserLocation{UserID: userID, Lat: lat, Lng: lng, UpdatedAt: seen}).Error)
}

func f(v float64) *float64 { return &v }

func ids(users []radar.Nearby) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.Profile.UserID)
	}
	return out
}

func TestScanFiltersCandidates(t *testing.T) {
	e := setupEnv(t)
	now := e.clock.now()

	e.place(t, "near", 40.05, -74.0, now.Add(-time.Hour), false)       // ~5.6 km
	e.place(t, "far", 40.20, -74.0, now.Add(-time.Hour), false)        // ~22 km
	e.place(t, "hidden", 40.01, -74.0, now.Add(-time.Hour), true)      // opted out
	e.place(t, "demo-bot", 40.02, -74.0, now.Add(-time.Hour), false)   // synthetic
	e.place(t, "stale", 40.03, -74.0, now.Add(-8*24*time.Hour), false) // outside recency
	require.NoError(t, e.db.Create(&db.UserLocation{UserID: "ghost", Lat: 40.04, Lng: -74.0, UpdatedAt: now}).Error)

	res, err := e.scanner().Scan(context.Background(), radar.Request{
		UserID: "alice", Lat: f(40.0), Lng: f(-74.0), RadiusKm: 10, Tier: "starter",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"near"}, ids(res.Users))
	assert.InDelta(t, 5.56, res.Users[0].DistanceKm, 0.05)
	for _, u := range res.Users {
		assert.LessOrEqual(t, u.DistanceKm, 10.0)
	}
	assert.Equal(t, 1, res.ScansUsed)
	assert.Equal(t, 2, res.ScansLimit)

	var loc db.UserLocation
	require.NoError(t, e.db.First(&loc, "user_id = ?", "alice").Error)
	assert.InDelta(t, 40.0, loc.Lat, 1e-9)
}

func TestScanOrdersByDistanceThenRecency(t *testing.T) {
	e := setupEnv(t)
	now := e.clock.now()

	e.place(t, "b-older", 40.05, -74.0, now.Add(-2*time.Hour), false)
	e.place(t, "a-newer", 40.05, -74.0, now.Add(-time.Hour), false)
	e.place(t, "closest", 40.01, -74.0, now.Add(-3*time.Hour), false)

	res, err := e.scanner().Scan(context.Background(), radar.Request{
		UserID: "alice", Lat: f(40.0), Lng: f(-74.0), RadiusKm: 10, Tier: "lifetime",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"closest", "a-newer", "b-older"}, ids(res.Users))
	assert.Equal(t, config.Unlimited, res.ScansLimit)
}

func TestScanCapsUsers(t *testing.T) {
	e := setupEnv(t)
	e.cfg.MaxUsers = 3
	now := e.clock.now()
	for i := 0; i < 5; i++ {
		e.place(t, fmt.Sprintf("u%d", i), 40.0+float64(i+1)*0.001, -74.0, now, false)
	}

	res, err := e.scanner().Scan(context.Background(), radar.Request{
		UserID: "alice", Lat: f(40.0), Lng: f(-74.0), Tier: "lifetime",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"u0", "u1", "u2"}, ids(res.Users))
	assert.Equal(t, 75.0, res.RadiusKm)
}

func TestScanActivitiesSortedByStart(t *testing.T) {
	e := setupEnv(t)
	now := e.clock.now()

	require.NoError(t, e.db.Create(&[]db.Activity{
		{ID: "later", HostID: "h", Title: "Later", Lat: 40.001, Lng: -74.0, StartsAt: now.Add(72 * time.Hour)},
		{ID: "soon", HostID: "h", Title: "Soon", Lat: 40.09, Lng: -74.0, StartsAt: now.Add(2 * time.Hour)},
		{ID: "mid", HostID: "h", Title: "Mid", Lat: 40.02, Lng: -74.0, StartsAt: now.Add(24 * time.Hour)},
		{ID: "past", HostID: "h", Title: "Past", Lat: 40.0, Lng: -74.0, StartsAt: now.Add(-time.Hour)},
		{ID: "remote", HostID: "h", Title: "Remote", Lat: 41.0, Lng: -74.0, StartsAt: now.Add(time.Hour)},
	}).Error)

	res, err := e.scanner().Scan(context.Background(), radar.Request{
		UserID: "alice", Lat: f(40.0), Lng: f(-74.0), RadiusKm: 20, Tier: "lifetime",
	})
	require.NoError(t, err)
	require.Len(t, res.Activities, 2)
	assert.Equal(t, "soon", res.Activities[0].Activity.ID)
	assert.Equal(t, "mid", res.Activities[1].Activity.ID)
}

func TestScanInvalidInput(t *testing.T) {
	e := setupEnv(t)
	s := e.scanner()
	ctx := context.Background()

	cases := []radar.Request{
		{UserID: "alice", Lng: f(-74.0)},
		{UserID: "alice", Lat: f(40.0)},
		{UserID: "alice", Lat: f(91), Lng: f(0)},
		{UserID: "", Lat: f(0), Lng: f(0)},
	}
	for _, req := range cases {
		_, err := s.Scan(ctx, req)
		assert.True(t, svcErr.IsCode(err, svcErr.CodeInvalidInput), "req %+v: %v", req, err)
	}
}

func TestScanQuotaExhaustedThenReset(t *testing.T) {
	e := setupEnv(t)
	s := e.scanner()
	ctx := context.Background()
	req := radar.Request{UserID: "alice", Lat: f(40.0), Lng: f(-74.0), Tier: "starter"}

	for i := 1; i <= 2; i++ {
		res, err := s.Scan(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, i, res.ScansUsed)
		e.clock.advance(time.Minute)
	}

	moved := req
	moved.Lat = f(41.0)
	_, err := s.Scan(ctx, moved)
	var qe *svcErr.QuotaExceededError
	require.True(t, errors.As(err, &qe))
	assert.Equal(t, 2, qe.Limit)
	assert.Equal(t, 2, qe.Used)
	assert.Equal(t, "starter", qe.Tier)

	// rejected scans leave the stored location alone
	var loc db.UserLocation
	require.NoError(t, e.db.First(&loc, "user_id = ?", "alice").Error)
	assert.InDelta(t, 40.0, loc.Lat, 1e-9)

	e.clock.advance(24 * time.Hour)
	res, err := s.Scan(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 1, res.ScansUsed)
}

type failingActivities struct{}

func (failingActivities) FindUpcomingInBox(context.Context, geo.Box, time.Time) ([]db.Activity, error) {
	return nil, errors.New("db gone")
}

func TestScanStorageFailureDoesNotConsumeQuota(t *testing.T) {
	e := setupEnv(t)
	e.deps.Activities = failingActivities{}
	ctx := context.Background()

	_, err := e.scanner().Scan(ctx, radar.Request{UserID: "alice", Lat: f(40.0), Lng: f(-74.0), Tier: "starter"})
	assert.True(t, svcErr.IsCode(err, svcErr.CodeUnavailable))

	usage, err := e.tracker.Check(ctx, "alice", "starter", config.OpRadarScan)
	require.NoError(t, err)
	assert.Equal(t, 0, usage.Used)
}

func TestScanDropsUserHiddenAfterCacheWarmed(t *testing.T) {
	e := setupEnv(t)
	e.cfg.Recency = 30 * 24 * time.Hour
	ctx := context.Background()
	now := e.clock.now()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	cfg := &config.Config{}
	cfg.Redis.Addr = mr.Addr()
	rc := cache.NewRedisCache(cfg)
	t.Cleanup(func() { _ = rc.Close() })
	e.deps.Profiles = cache.NewProfileCache(rc, repository.NewProfileRepository(e.db), time.Hour, e.deps.Logger)

	e.place(t, "bob", 40.01, -74.0, now.Add(-time.Hour), false)
	req := radar.Request{UserID: "alice", Lat: f(40.0), Lng: f(-74.0), Tier: "lifetime"}

	res, err := e.scanner().Scan(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, ids(res.Users))
	assert.True(t, mr.Exists("profile:summary:bob"))

	require.NoError(t, e.db.Model(&db.Profile{}).Where("user_id = ?", "bob").Update("hidden", true).Error)

	res, err = e.scanner().Scan(ctx, req)
	require.NoError(t, err)
	assert.Empty(t, res.Users)
	assert.True(t, mr.Exists("profile:summary:bob"))
}
