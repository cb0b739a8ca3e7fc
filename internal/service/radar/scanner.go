// Package radar finds nearby users and upcoming activities around a caller.
package radar

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/oggyb/radar-match/internal/config"
	"github.com/oggyb/radar-match/internal/db"
	svcErr "github.com/oggyb/radar-match/internal/errors"
	"github.com/oggyb/radar-match/internal/geo"
	"github.com/oggyb/radar-match/internal/identity"
	"github.com/oggyb/radar-match/internal/repository"
	"github.com/oggyb/radar-match/internal/service/quota"
)

// Request is one radar scan. Lat and Lng are pointers so a missing
// coordinate is distinguishable from zero.
type Request struct {
	UserID   string
	Lat      *float64
	Lng      *float64
	RadiusKm float64
	Tier     string
}

// Nearby is a discovered user.
type Nearby struct {
	Profile    repository.ProfileSummary
	DistanceKm float64
	LastSeenAt time.Time
}

// NearbyActivity is a discovered upcoming activity.
type NearbyActivity struct {
	Activity   db.Activity
	DistanceKm float64
}

type Result struct {
	Users      []Nearby
	Activities []NearbyActivity
	RadiusKm   float64
	ScansUsed  int
	// ScansLimit is config.Unlimited for uncapped tiers.
	ScansLimit int
}

type Config struct {
	DefaultRadiusKm float64
	MaxRadiusKm     float64
	MaxUsers        int
	MaxActivities   int
	Recency         time.Duration
	EarthRadiusKm   float64
}

type Dependencies struct {
	Locations  repository.LocationStore
	Activities repository.ActivityStore
	Profiles   repository.ProfileDirectory
	// Visibility is consulted on every scan; Profiles may be cached.
	Visibility repository.VisibilityChecker
	Quota      *quota.Tracker
	Guard      *identity.Guard
	Logger     *slog.Logger
	Now        func() time.Time
}

type Scanner struct {
	locations  repository.LocationStore
	activities repository.ActivityStore
	profiles   repository.ProfileDirectory
	visibility repository.VisibilityChecker
	quota      *quota.Tracker
	guard      *identity.Guard
	cfg        Config
	logger     *slog.Logger
	now        func() time.Time
}

func NewScanner(deps Dependencies, cfg Config) *Scanner {
	if cfg.DefaultRadiusKm <= 0 {
		cfg.DefaultRadiusKm = 75
	}
	if cfg.MaxUsers <= 0 {
		cfg.MaxUsers = 25
	}
	if cfg.MaxActivities <= 0 {
		cfg.MaxActivities = 10
	}
	if cfg.Recency <= 0 {
		cfg.Recency = 7 * 24 * time.Hour
	}
	if cfg.EarthRadiusKm <= 0 {
		cfg.EarthRadiusKm = geo.EarthRadiusKm
	}
	s := &Scanner{
		locations:  deps.Locations,
		activities: deps.Activities,
		profiles:   deps.Profiles,
		visibility: deps.Visibility,
		quota:      deps.Quota,
		guard:      deps.Guard,
		cfg:        cfg,
		logger:     deps.Logger,
		now:        deps.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Scan runs one radar query for req.UserID.
//
// Order of effects:
//  1. quota check (fails before anything is written)
//  2. caller location upsert
//  3. user and activity queries
//  4. quota increment, only once the queries succeeded
func (s *Scanner) Scan(ctx context.Context, req Request) (Result, error) {
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		return Result{}, svcErr.InvalidInput("user_id is required")
	}
	if req.Lat == nil || req.Lng == nil {
		return Result{}, svcErr.InvalidInput("lat and lng are required")
	}
	origin := geo.Point{Lat: *req.Lat, Lng: *req.Lng}
	if err := origin.Validate(); err != nil {
		return Result{}, svcErr.Wrap(svcErr.CodeInvalidInput, "lat and lng must be valid coordinates", err)
	}
	radius := s.radius(req.RadiusKm)

	usage, err := s.quota.Check(ctx, userID, req.Tier, config.OpRadarScan)
	if err != nil {
		if svcErr.IsCode(err, svcErr.CodeQuotaExceeded) {
			s.logger.Info("radar scan quota exhausted", "user_id", userID, "tier", req.Tier)
		}
		return Result{}, err
	}

	now := s.now().UTC()
	if err := s.locations.Upsert(ctx, db.UserLocation{
		UserID:    userID,
		Lat:       origin.Lat,
		Lng:       origin.Lng,
		UpdatedAt: now,
	}); err != nil {
		s.logger.Error("location upsert failed", "user_id", userID, "err", err)
		return Result{}, svcErr.Unavailable("save location", err)
	}

	box := geo.BoundingBox(origin, radius)

	users, err := s.nearbyUsers(ctx, userID, origin, radius, box, now)
	if err != nil {
		return Result{}, err
	}
	activities, err := s.nearbyActivities(ctx, origin, radius, box, now)
	if err != nil {
		return Result{}, err
	}

	used, err := s.quota.Increment(ctx, userID, config.OpRadarScan)
	if err != nil {
		return Result{}, err
	}

	s.logger.Debug("radar scan",
		"user_id", userID,
		"radius_km", radius,
		"users", len(users),
		"activities", len(activities),
		"scans_used", used,
	)

	return Result{
		Users:      users,
		Activities: activities,
		RadiusKm:   radius,
		ScansUsed:  used,
		ScansLimit: usage.Limit,
	}, nil
}

// radius applies the default to absent or non-positive values and clamps
// to the configured maximum.
func (s *Scanner) radius(r float64) float64 {
	if math.IsNaN(r) || r <= 0 {
		r = s.cfg.DefaultRadiusKm
	}
	if s.cfg.MaxRadiusKm > 0 && r > s.cfg.MaxRadiusKm {
		r = s.cfg.MaxRadiusKm
	}
	return r
}

func (s *Scanner) nearbyUsers(
	ctx context.Context,
	userID string,
	origin geo.Point,
	radius float64,
	box geo.Box,
	now time.Time,
) ([]Nearby, error) {
	rows, err := s.locations.FindInBox(ctx, box, userID, now.Add(-s.cfg.Recency))
	if err != nil {
		s.logger.Error("location query failed", "user_id", userID, "err", err)
		return nil, svcErr.Unavailable("query nearby users", err)
	}

	type candidate struct {
		loc      db.UserLocation
		distance float64
	}
	candidates := make([]candidate, 0, len(rows))
	ids := make([]string, 0, len(rows))
	for _, loc := range rows {
		if loc.UserID == userID || s.guard.IsPlaceholder(loc.UserID) {
			continue
		}
		d := geo.Haversine(origin, geo.Point{Lat: loc.Lat, Lng: loc.Lng}, s.cfg.EarthRadiusKm)
		if d > radius {
			continue
		}
		candidates = append(candidates, candidate{loc: loc, distance: d})
		ids = append(ids, loc.UserID)
	}

	profiles, err := s.profiles.Summaries(ctx, ids)
	if err != nil {
		s.logger.Error("profile lookup failed", "user_id", userID, "err", err)
		return nil, svcErr.Unavailable("load profiles", err)
	}

	hidden := map[string]bool{}
	if s.visibility != nil && len(ids) > 0 {
		hidden, err = s.visibility.Hidden(ctx, ids)
		if err != nil {
			s.logger.Error("visibility lookup failed", "user_id", userID, "err", err)
			return nil, svcErr.Unavailable("load visibility", err)
		}
	}

	out := make([]Nearby, 0, len(candidates))
	for _, c := range candidates {
		p, ok := profiles[c.loc.UserID]
		// users without a profile or who opted out are not discoverable
		if !ok || p.Hidden || hidden[c.loc.UserID] {
			continue
		}
		out = append(out, Nearby{Profile: p, DistanceKm: c.distance, LastSeenAt: c.loc.UpdatedAt})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DistanceKm != out[j].DistanceKm {
			return out[i].DistanceKm < out[j].DistanceKm
		}
		if !out[i].LastSeenAt.Equal(out[j].LastSeenAt) {
			return out[i].LastSeenAt.After(out[j].LastSeenAt)
		}
		return out[i].Profile.UserID < out[j].Profile.UserID
	})
	if len(out) > s.cfg.MaxUsers {
		out = out[:s.cfg.MaxUsers]
	}
	return out, nil
}

func (s *Scanner) nearbyActivities(
	ctx context.Context,
	origin geo.Point,
	radius float64,
	box geo.Box,
	now time.Time,
) ([]NearbyActivity, error) {
	rows, err := s.activities.FindUpcomingInBox(ctx, box, now)
	if err != nil {
		s.logger.Error("activity query failed", "err", err)
		return nil, svcErr.Unavailable("query nearby activities", err)
	}

	out := make([]NearbyActivity, 0, len(rows))
	for _, a := range rows {
		d := geo.Haversine(origin, geo.Point{Lat: a.Lat, Lng: a.Lng}, s.cfg.EarthRadiusKm)
		if d > radius {
			continue
		}
		out = append(out, NearbyActivity{Activity: a, DistanceKm: d})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Activity.StartsAt.Before(out[j].Activity.StartsAt)
	})
	if len(out) > s.cfg.MaxActivities {
		out = out[:s.cfg.MaxActivities]
	}
	return out, nil
}
