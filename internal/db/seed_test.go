package db

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestSeedDemoData(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open("file:seedtest?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, _ := gdb.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, Migrate(gdb))

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	opts := SeedOptions{
		CenterLat:  40.0,
		CenterLng:  -74.0,
		Users:      14,
		Activities: 5,
		Now:        time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Rand:       rand.New(rand.NewSource(1)),
	}

	// seeding twice must not trip over existing rows
	require.NoError(t, SeedDemoData(gdb, log, opts))
	require.NoError(t, SeedDemoData(gdb, log, opts))

	var profiles, locations, activities, matches, hidden int64
	require.NoError(t, gdb.Model(&Profile{}).Count(&profiles).Error)
	require.NoError(t, gdb.Model(&UserLocation{}).Count(&locations).Error)
	require.NoError(t, gdb.Model(&Activity{}).Count(&activities).Error)
	require.NoError(t, gdb.Model(&Match{}).Count(&matches).Error)
	require.NoError(t, gdb.Model(&Profile{}).Where("hidden = ?", true).Count(&hidden).Error)

	assert.EqualValues(t, 14, profiles)
	assert.EqualValues(t, 14, locations)
	assert.EqualValues(t, 5, activities)
	assert.EqualValues(t, 1, matches)
	assert.EqualValues(t, 2, hidden)

	var locs []UserLocation
	require.NoError(t, gdb.Find(&locs).Error)
	for _, l := range locs {
		assert.InDelta(t, 40.0, l.Lat, 0.25)
	}
}
