package repository_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/oggyb/radar-match/internal/db"
	"github.com/oggyb/radar-match/internal/geo"
	"github.com/oggyb/radar-match/internal/repository"
)

var base = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// setup in-memory DB; a single connection serializes statements so
// goroutine races are decided by the schema, not by sqlite locking.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NowFunc:                func() time.Time { return base },
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(database))
	return database
}

func TestSwipeUpsertOverwrites(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewSwipeRepository(dbase)

	require.NoError(t, repo.Upsert(ctx, db.Swipe{SwiperID: "a", SwipedID: "b", Direction: db.SwipeRight, CreatedAt: base}))
	require.NoError(t, repo.Upsert(ctx, db.Swipe{SwiperID: "a", SwipedID: "b", Direction: db.SwipeLeft, CreatedAt: base.Add(time.Minute)}))

	var rows []db.Swipe
	require.NoError(t, dbase.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, db.SwipeLeft, rows[0].Direction)
	assert.True(t, rows[0].CreatedAt.Equal(base.Add(time.Minute)))

	liked, err := repo.HasSwiped(ctx, "a", "b", db.SwipeRight)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestMatchCreateIfAbsent(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMatchRepository(setupTestDB(t))

	first, created, err := repo.CreateIfAbsent(ctx, db.Match{ID: "m1", UserAID: "a", UserBID: "b", CreatedAt: base})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "m1", first.ID)

	second, created, err := repo.CreateIfAbsent(ctx, db.Match{ID: "m2", UserAID: "a", UserBID: "b", CreatedAt: base.Add(time.Hour)})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "m1", second.ID)
}

func TestMatchCreateIfAbsentConcurrent(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewMatchRepository(dbase)

	var wg sync.WaitGroup
	createdCount := make(chan bool, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, created, err := repo.CreateIfAbsent(ctx, db.Match{ID: fmt.Sprintf("m%d", i), UserAID: "a", UserBID: "b", CreatedAt: base})
			assert.NoError(t, err)
			createdCount <- created
		}(i)
	}
	wg.Wait()
	close(createdCount)

	wins := 0
	for c := range createdCount {
		if c {
			wins++
		}
	}
	assert.Equal(t, 1, wins)

	var n int64
	require.NoError(t, dbase.Model(&db.Match{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestMatchListForUserPagination(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMatchRepository(setupTestDB(t))

	for i, other := range []string{"b", "c", "d"} {
		_, _, err := repo.CreateIfAbsent(ctx, db.Match{
			ID: "m-" + other, UserAID: "a", UserBID: other, CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}
	_, _, err := repo.CreateIfAbsent(ctx, db.Match{ID: "m-x", UserAID: "x", UserBID: "y", CreatedAt: base})
	require.NoError(t, err)

	page1, next, err := repo.ListForUser(ctx, "a", nil, 2)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	assert.Equal(t, "m-d", page1[0].ID)
	assert.Equal(t, "m-c", page1[1].ID)
	require.NotNil(t, next)

	page2, next, err := repo.ListForUser(ctx, "a", next, 2)
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "m-b", page2[0].ID)
	assert.Nil(t, next)

	bad := "%%%"
	_, _, err = repo.ListForUser(ctx, "a", &bad, 2)
	assert.ErrorIs(t, err, repository.ErrInvalidPageToken)
}

func TestQuotaIncrementRollingWindow(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewQuotaRepository(setupTestDB(t))
	window := 24 * time.Hour

	_, found, err := repo.Get(ctx, "u1", "radarScan")
	require.NoError(t, err)
	assert.False(t, found)

	s, err := repo.Increment(ctx, "u1", "radarScan", base, window)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Count)

	s, err = repo.Increment(ctx, "u1", "radarScan", base.Add(23*time.Hour), window)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Count)
	assert.True(t, s.WindowStartedAt.Equal(base))

	// exactly 24h is not "elapsed"
	s, err = repo.Increment(ctx, "u1", "radarScan", base.Add(24*time.Hour), window)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Count)

	later := base.Add(25 * time.Hour)
	s, err = repo.Increment(ctx, "u1", "radarScan", later, window)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Count)
	assert.True(t, s.WindowStartedAt.Equal(later))

	_, err = repo.Increment(ctx, "u1", "compatibilityCheck", later, window)
	require.NoError(t, err)
	all, err := repo.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestLocationFindInBox(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewLocationRepository(setupTestDB(t))

	rows := []db.UserLocation{
		{UserID: "me", Lat: 40, Lng: -74, UpdatedAt: base},
		{UserID: "near", Lat: 40.05, Lng: -74, UpdatedAt: base},
		{UserID: "stale", Lat: 40.01, Lng: -74, UpdatedAt: base.Add(-8 * 24 * time.Hour)},
		{UserID: "far", Lat: 41, Lng: -74, UpdatedAt: base},
	}
	for _, r := range rows {
		require.NoError(t, repo.Upsert(ctx, r))
	}
	// overwrite keeps one row per user
	require.NoError(t, repo.Upsert(ctx, db.UserLocation{UserID: "near", Lat: 40.04, Lng: -74, UpdatedAt: base.Add(time.Minute)}))

	box := geo.BoundingBox(geo.Point{Lat: 40, Lng: -74}, 10)
	found, err := repo.FindInBox(ctx, box, "me", base.Add(-7*24*time.Hour))
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "near", found[0].UserID)
	assert.Equal(t, 40.04, found[0].Lat)
}

func TestActivityFindUpcomingInBox(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewActivityRepository(dbase)

	acts := []db.Activity{
		{ID: "late", HostID: "h", Title: "Late", Lat: 40.01, Lng: -74, StartsAt: base.Add(48 * time.Hour)},
		{ID: "soon", HostID: "h", Title: "Soon", Lat: 40.02, Lng: -74, StartsAt: base.Add(2 * time.Hour)},
		{ID: "past", HostID: "h", Title: "Past", Lat: 40.02, Lng: -74, StartsAt: base.Add(-2 * time.Hour)},
	}
	require.NoError(t, dbase.Create(&acts).Error)

	found, err := repo.FindUpcomingInBox(ctx, geo.BoundingBox(geo.Point{Lat: 40, Lng: -74}, 10), base)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "soon", found[0].ID)
	assert.Equal(t, "late", found[1].ID)
}

func TestChatRequestTransitionIsCompareAndSet(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewChatRequestRepository(setupTestDB(t))

	require.NoError(t, repo.Create(ctx, db.ChatRequest{
		ID: "r1", SenderID: "a", ReceiverID: "b", Status: db.ChatRequestPending, CreatedAt: base, UpdatedAt: base,
	}))

	active, err := repo.FindActiveBetween(ctx, "b", "a")
	require.NoError(t, err)
	assert.Len(t, active, 1)

	ok, err := repo.Transition(ctx, "r1", db.ChatRequestPending, db.ChatRequestDeclined, base.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Transition(ctx, "r1", db.ChatRequestPending, db.ChatRequestAccepted, base.Add(2*time.Minute))
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, db.ChatRequestDeclined, got.Status)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProfileSummaries(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewProfileRepository(dbase)

	require.NoError(t, dbase.Create(&db.Profile{
		UserID: "a", Name: "Ada", Age: 31, Photos: []string{"p1.jpg"}, Interests: []string{"hiking"}, City: "Hoboken",
	}).Error)

	got, err := repo.Summaries(ctx, []string{"a", "ghost"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"p1.jpg"}, got["a"].Photos)
	assert.Equal(t, "Hoboken", got["a"].Location)

	_, err = repo.Summary(ctx, "ghost")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
