package app

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/oggyb/radar-match/internal/ai"
	"github.com/oggyb/radar-match/internal/cache"
	"github.com/oggyb/radar-match/internal/config"
	"github.com/oggyb/radar-match/internal/events"
	"github.com/oggyb/radar-match/internal/identity"
	"github.com/oggyb/radar-match/internal/repository"
)

// Stores is the storage backend chosen at startup.
type Stores struct {
	Locations    repository.LocationStore
	Activities   repository.ActivityStore
	Swipes       repository.SwipeStore
	Matches      repository.MatchStore
	ChatRequests repository.ChatRequestStore
	Quota        repository.QuotaStore
	Profiles     repository.ProfileDirectory
	// Visibility always reads the database, even when Profiles is cached.
	Visibility repository.VisibilityChecker
}

// AppContext holds shared dependencies (DB, Redis, Logger, etc.)
type AppContext struct {
	Config     *config.Config
	DB         *gorm.DB
	RedisCache *cache.RedisCache
	Logger     *slog.Logger
	Stores     Stores
	Guard      *identity.Guard
	Events     events.Publisher
	AI         ai.TextGenerator
	Now        func() time.Time
}

// New creates a new AppContext.
//
// Backend selection:
//   - Every store is gorm-backed (MySQL or SQLite, per the opened db).
//   - With Redis, profile summaries are read through a Redis cache.
//   - With Redis and QUOTA_STORE=redis, quota counters live in Redis.
//
// Events and AI start disabled; callers swap in real clients.
func New(cfg *config.Config, db *gorm.DB, rdb *cache.RedisCache, logger *slog.Logger) *AppContext {
	profileRepo := repository.NewProfileRepository(db)
	profiles := repository.ProfileDirectory(profileRepo)
	quota := repository.QuotaStore(repository.NewQuotaRepository(db))

	if rdb != nil {
		profiles = cache.NewProfileCache(rdb, profiles, cfg.Redis.ProfileTTL, logger)
		if cfg.Quota.Store == "redis" {
			quota = cache.NewQuotaStore(rdb)
		}
	}

	return &AppContext{
		Config:     cfg,
		DB:         db,
		RedisCache: rdb,
		Logger:     logger,
		Stores: Stores{
			Locations:    repository.NewLocationRepository(db),
			Activities:   repository.NewActivityRepository(db),
			Swipes:       repository.NewSwipeRepository(db),
			Matches:      repository.NewMatchRepository(db),
			ChatRequests: repository.NewChatRequestRepository(db),
			Quota:        quota,
			Profiles:     profiles,
			Visibility:   profileRepo,
		},
		Guard:  identity.NewGuard(cfg.Placeholder.IDs, cfg.Placeholder.Prefixes),
		Events: events.Noop{},
		AI:     ai.Disabled{},
		Now:    time.Now,
	}
}
