package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Operation names tracked by the quota tracker.
const (
	OpRadarScan          = "radarScan"
	OpCompatibilityCheck = "compatibilityCheck"
)

// Unlimited marks a tier limit without an upper bound.
const Unlimited = -1

// TierLimits maps operation -> tier -> limit.
type TierLimits map[string]map[string]int

type Config struct {
	App struct {
		ENV string
	}

	Log struct {
		Level     string
		Format    string
		Component string
		Source    bool
	}

	DB struct {
		Driver   string
		DSN      string
		Host     string
		Port     string
		User     string
		Password string
		Name     string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
		// ProfileTTL bounds how long a cached profile summary is served.
		ProfileTTL time.Duration
	}

	GRPC struct {
		Host string
		Port string
	}

	Auth struct {
		JWTSecret string
		Issuer    string
	}

	AMQP struct {
		URL   string
		Queue string
	}

	AI struct {
		BaseURL string
		APIKey  string
		Model   string
		Timeout time.Duration
	}

	Radar struct {
		DefaultRadiusKm float64
		MaxRadiusKm     float64
		MaxUsers        int
		MaxActivities   int
		Recency         time.Duration
		EarthRadiusKm   float64
	}

	Quota struct {
		Store       string
		Window      time.Duration
		DefaultTier string
		Limits      TierLimits
	}

	Placeholder struct {
		IDs      []string
		Prefixes []string
	}

	Seed struct {
		// OnBoot wipes and reseeds the discovery tables at server start.
		OnBoot     bool
		CenterLat  float64
		CenterLng  float64
		Users      int
		Activities int
	}
}

func New() *Config {
	// .env is optional; real environment wins.
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.App.ENV = getEnvDefault("APP_ENV", "production")

	// Logger
	cfg.Log.Level = getEnvDefault("LOG_LEVEL", "info")
	cfg.Log.Format = getEnvDefault("LOG_FORMAT", "text")
	cfg.Log.Component = getEnvDefault("LOG_COMPONENT", "grpc_server")
	cfg.Log.Source = isTruthy(os.Getenv("LOG_SOURCE"))

	// Database
	cfg.DB.Driver = strings.ToLower(getEnvDefault("DB_DRIVER", "mysql"))
	cfg.DB.DSN = os.Getenv("DB_DSN")
	if cfg.DB.DSN == "" {
		cfg.DB.DSN = os.Getenv("MYSQL_DSN")
	}
	if cfg.DB.DSN == "" {
		cfg.DB.Host = getEnvDefault("DB_HOST", "localhost")
		cfg.DB.Port = getEnvDefault("DB_PORT", "3306")
		cfg.DB.User = getEnvDefault("DB_USER", "root")
		cfg.DB.Password = getEnvDefault("DB_PASSWORD", "root")
		cfg.DB.Name = getEnvDefault("DB_NAME", "radar")

		if cfg.DB.Driver == "sqlite" {
			cfg.DB.DSN = cfg.DB.Name + ".db"
		} else {
			cfg.DB.DSN = fmt.Sprintf(
				"%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
				cfg.DB.User, cfg.DB.Password, cfg.DB.Host, cfg.DB.Port, cfg.DB.Name,
			)
		}
	}

	// Redis
	cfg.Redis.Addr = getEnvDefault("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnvDefault("REDIS_PASSWORD", "")
	if dbStr := getEnvDefault("REDIS_DB", "0"); dbStr != "" {
		if dbInt, err := strconv.Atoi(dbStr); err == nil {
			cfg.Redis.DB = dbInt
		}
	}
	cfg.Redis.ProfileTTL = getEnvDuration("REDIS_PROFILE_TTL", 10*time.Minute)

	// gRPC
	cfg.GRPC.Host = getEnvDefault("GRPC_HOST", "127.0.0.1")
	cfg.GRPC.Port = getEnvDefault("GRPC_PORT", "50051")

	// Auth (empty secret disables token verification)
	cfg.Auth.JWTSecret = os.Getenv("AUTH_JWT_SECRET")
	cfg.Auth.Issuer = getEnvDefault("AUTH_JWT_ISSUER", "")

	// AMQP (empty url disables match events)
	cfg.AMQP.URL = os.Getenv("AMQP_URL")
	cfg.AMQP.Queue = getEnvDefault("AMQP_MATCH_QUEUE", "match.created")

	// AI text capability
	cfg.AI.BaseURL = getEnvDefault("AI_BASE_URL", "")
	cfg.AI.APIKey = os.Getenv("AI_API_KEY")
	cfg.AI.Model = getEnvDefault("AI_MODEL", "gpt-4o-mini")
	cfg.AI.Timeout = getEnvDuration("AI_TIMEOUT", 20*time.Second)

	// Radar
	cfg.Radar.DefaultRadiusKm = getEnvFloat("RADAR_DEFAULT_RADIUS_KM", 75)
	cfg.Radar.MaxRadiusKm = getEnvFloat("RADAR_MAX_RADIUS_KM", 500)
	cfg.Radar.MaxUsers = getEnvInt("RADAR_MAX_USERS", 25)
	cfg.Radar.MaxActivities = getEnvInt("RADAR_MAX_ACTIVITIES", 10)
	cfg.Radar.Recency = getEnvDuration("RADAR_RECENCY", 7*24*time.Hour)
	cfg.Radar.EarthRadiusKm = getEnvFloat("RADAR_EARTH_RADIUS_KM", 6371)

	// Quota
	cfg.Quota.Store = strings.ToLower(getEnvDefault("QUOTA_STORE", "db"))
	cfg.Quota.Window = getEnvDuration("QUOTA_WINDOW", 24*time.Hour)
	cfg.Quota.DefaultTier = getEnvDefault("QUOTA_DEFAULT_TIER", "starter")
	cfg.Quota.Limits = DefaultTierLimits()
	if raw := strings.TrimSpace(os.Getenv("TIER_LIMITS")); raw != "" {
		var override TierLimits
		if err := json.Unmarshal([]byte(raw), &override); err == nil {
			cfg.Quota.Limits.Merge(override)
		}
	}

	// Placeholder / synthetic identities
	cfg.Placeholder.IDs = splitList(getEnvDefault("PLACEHOLDER_IDS", "me,null,undefined,placeholder,test-user"))
	cfg.Placeholder.Prefixes = splitList(getEnvDefault("PLACEHOLDER_PREFIXES", "demo-,test-,seed-bot-"))

	// Development seeding, opt-in only
	cfg.Seed.OnBoot = isTruthy(os.Getenv("SEED_ON_BOOT"))
	cfg.Seed.CenterLat = getEnvFloat("SEED_CENTER_LAT", 40.7128)
	cfg.Seed.CenterLng = getEnvFloat("SEED_CENTER_LNG", -74.0060)
	cfg.Seed.Users = getEnvInt("SEED_USERS", 30)
	cfg.Seed.Activities = getEnvInt("SEED_ACTIVITIES", 12)

	return cfg
}

// DefaultTierLimits returns the built-in tier table.
func DefaultTierLimits() TierLimits {
	return TierLimits{
		OpRadarScan: {
			"starter":  2,
			"explorer": 15,
			"lifetime": Unlimited,
		},
		OpCompatibilityCheck: {
			"starter":  1,
			"explorer": 10,
			"lifetime": Unlimited,
		},
	}
}

// Merge overlays other onto t, operation by operation.
func (t TierLimits) Merge(other TierLimits) {
	for op, tiers := range other {
		if t[op] == nil {
			t[op] = map[string]int{}
		}
		for tier, limit := range tiers {
			t[op][tier] = limit
		}
	}
}

func getEnvDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if n, err := strconv.Atoi(getEnvDefault(k, "")); err == nil {
		return n
	}
	return def
}

func getEnvFloat(k string, def float64) float64 {
	if f, err := strconv.ParseFloat(getEnvDefault(k, ""), 64); err == nil {
		return f
	}
	return def
}

func getEnvDuration(k string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(getEnvDefault(k, "")); err == nil && d > 0 {
		return d
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}
