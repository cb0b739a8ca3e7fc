package db

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedOptions controls the demo dataset.
type SeedOptions struct {
	CenterLat  float64
	CenterLng  float64
	Users      int
	Activities int
	Now        time.Time
	// Rand defaults to a time-seeded source.
	Rand *rand.Rand
}

var (
	seedNames     = []string{"Ava", "Liam", "Mia", "Noah", "Zoe", "Ezra", "Ines", "Omar", "Lena", "Kai", "Rosa", "Theo"}
	seedInterests = []string{"hiking", "coffee", "jazz", "climbing", "board games", "running", "photography", "cooking", "surf", "museums"}
	seedCities    = []string{"Downtown", "Riverside", "Old Town", "Harbor"}
	seedTitles    = []string{"Sunset run", "Board game night", "Gallery walk", "Coffee crawl", "Open mic", "Beach cleanup"}
)

// SeedDemoData resets the discovery tables and fills them with demo users
// and activities scattered within ~25 km of the configured centre.
//
// Behavior:
//  1. Clears swipes, matches, chat requests, quotas, activities, locations and profiles.
//  2. Creates opts.Users profiles with a location each; every 7th is hidden.
//  3. Creates opts.Activities upcoming activities hosted by seeded users.
//  4. Adds a mutual right swipe plus its match for the first pair.
//
// Compatible with both MySQL and SQLite.
func SeedDemoData(db *gorm.DB, log *slog.Logger, opts SeedOptions) error {
	r := opts.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	// --- Fresh start ---
	for _, table := range []string{"swipes", "matches", "chat_requests", "quota_states", "activities", "user_locations", "profiles"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	log.Info("cleared existing data")

	// --- Profiles + locations ---
	ids := make([]string, 0, opts.Users)
	for i := 1; i <= opts.Users; i++ {
		id := fmt.Sprintf("user-%03d", i)
		ids = append(ids, id)

		interests := make([]string, 0, 3)
		for _, j := range r.Perm(len(seedInterests))[:3] {
			interests = append(interests, seedInterests[j])
		}

		profile := Profile{
			UserID:    id,
			Name:      seedNames[(i-1)%len(seedNames)],
			Age:       21 + r.Intn(20),
			Bio:       "Here for new people and good plans.",
			Interests: interests,
			City:      seedCities[r.Intn(len(seedCities))],
			Verified:  r.Intn(100) < 40,
			Hidden:    i%7 == 0,
		}
		if err := db.Create(&profile).Error; err != nil {
			return fmt.Errorf("failed to seed profile: %w", err)
		}

		lat, lng := scatter(r, opts.CenterLat, opts.CenterLng, 25)
		loc := UserLocation{
			UserID:    id,
			Lat:       lat,
			Lng:       lng,
			UpdatedAt: now.Add(-time.Duration(r.Intn(6*24)) * time.Hour),
		}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"lat", "lng", "updated_at"}),
		}).Create(&loc).Error; err != nil {
			return fmt.Errorf("failed to seed location: %w", err)
		}
	}
	log.Info("seeded users", "count", len(ids))

	// --- Activities ---
	if len(ids) > 0 {
		for i := 0; i < opts.Activities; i++ {
			lat, lng := scatter(r, opts.CenterLat, opts.CenterLng, 25)
			act := Activity{
				ID:       uuid.NewString(),
				HostID:   ids[r.Intn(len(ids))],
				Title:    seedTitles[i%len(seedTitles)],
				Category: "social",
				Lat:      lat,
				Lng:      lng,
				StartsAt: now.Add(time.Duration(2+r.Intn(14*24)) * time.Hour),
			}
			if err := db.Create(&act).Error; err != nil {
				return fmt.Errorf("failed to seed activity: %w", err)
			}
		}
		log.Info("seeded activities", "count", opts.Activities)
	}

	// --- One existing match ---
	if len(ids) >= 2 {
		a, b := ids[0], ids[1]
		swipes := []Swipe{
			{SwiperID: a, SwipedID: b, Direction: SwipeRight, CreatedAt: now},
			{SwiperID: b, SwipedID: a, Direction: SwipeRight, CreatedAt: now},
		}
		if err := db.Create(&swipes).Error; err != nil {
			return fmt.Errorf("failed to seed swipes: %w", err)
		}
		m := Match{ID: uuid.NewString(), UserAID: a, UserBID: b, CreatedAt: now}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&m).Error; err != nil {
			return fmt.Errorf("failed to seed match: %w", err)
		}
	}

	return nil
}

// scatter returns a random point within maxKm of the centre.
func scatter(r *rand.Rand, lat, lng, maxKm float64) (float64, float64) {
	dist := maxKm * math.Sqrt(r.Float64())
	bearing := r.Float64() * 2 * math.Pi
	dLat := dist * math.Cos(bearing) / 111.0
	dLng := dist * math.Sin(bearing) / (111.0 * math.Max(math.Cos(lat*math.Pi/180), 0.01))
	return lat + dLat, lng + dLng
}
