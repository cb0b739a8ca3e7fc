package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/oggyb/radar-match/internal/ai"
	"github.com/oggyb/radar-match/internal/app"
	"github.com/oggyb/radar-match/internal/auth"
	"github.com/oggyb/radar-match/internal/cache"
	"github.com/oggyb/radar-match/internal/config"
	"github.com/oggyb/radar-match/internal/db"
	"github.com/oggyb/radar-match/internal/events"
	"github.com/oggyb/radar-match/internal/logger"
	"github.com/oggyb/radar-match/internal/server"
	"github.com/oggyb/radar-match/internal/service/discovery"
)

func main() {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L() // slog.Logger pointer

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		os.Exit(1)
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(ctx); err != nil {
		log.Error("failed to connect to redis", "err", err)
		os.Exit(1)
	}
	defer func() { _ = redisCache.Close() }()

	// Inject logger into app context
	appCtx := app.New(cfg, database, redisCache, log)

	if cfg.AMQP.URL != "" {
		publisher, err := events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Queue)
		if err != nil {
			log.Error("failed to connect to amqp", "err", err)
			os.Exit(1)
		}
		defer func() { _ = publisher.Close() }()
		appCtx.Events = publisher
	} else {
		log.Warn("AMQP_URL not set, match events are dropped")
	}

	if cfg.AI.BaseURL != "" {
		client, err := ai.NewClient(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model, cfg.AI.Timeout)
		if err != nil {
			log.Error("invalid ai config", "err", err)
			os.Exit(1)
		}
		appCtx.AI = client
	} else {
		log.Warn("AI_BASE_URL not set, compatibility checks are unavailable")
	}

	var parser server.TokenParser
	if cfg.Auth.JWTSecret != "" {
		parser = auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	} else {
		log.Warn("AUTH_JWT_SECRET not set, requests are not authenticated")
	}

	if cfg.Seed.OnBoot {
		log.Warn("SEED_ON_BOOT set, replacing discovery data with demo rows", "env", cfg.App.ENV)
		err := db.SeedDemoData(database, log, db.SeedOptions{
			CenterLat:  cfg.Seed.CenterLat,
			CenterLng:  cfg.Seed.CenterLng,
			Users:      cfg.Seed.Users,
			Activities: cfg.Seed.Activities,
		})
		if err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	grpcServer := server.NewGRPCServer(log, parser, discovery.NewRegistrar(appCtx))

	addr := cfg.GRPC.Host + ":" + cfg.GRPC.Port
	log.Info("starting gRPC server", "addr", addr, "db", cfg.DB.Driver, "quota_store", cfg.Quota.Store)

	if err := server.Serve(ctx, cfg, grpcServer); err != nil {
		log.Error("failed to start gRPC server", "err", err)
		os.Exit(1)
	}
}
