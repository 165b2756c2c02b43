package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/logger"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"
	infra "resume-builder/pkg/infrastructure"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.String("config", "config.yaml", "path to the YAML config file")
	pflag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("failed to load .env")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Init(cfg.Logger)

	if cfg.Auth.JWTSecret == "" {
		logger.Fatal().Msg("JWT_SECRET is required")
	}

	ctx := context.Background()

	store, pool := openStore(ctx, cfg)
	if pool != nil {
		defer pool.Close()
	}

	gen := newGenerator(ctx, cfg)

	var renderer usecase.Renderer
	if cfg.Renderer.Enabled {
		renderer = infra.NewChromedpRenderer(cfg.Renderer.ChromePath,
			config.GetDuration(cfg.Renderer.Timeout, 60*time.Second),
			cfg.Renderer.PaperWidth, cfg.Renderer.PaperHeight)
	} else {
		logger.Warn().Msg("PDF renderer disabled, exports use the plain-text layout")
	}

	var objects usecase.ObjectStore
	if cfg.MinIO.Endpoint != "" {
		s, err := infra.NewMinIOStore(ctx, cfg.MinIO.Endpoint, cfg.MinIO.AccessKeyID,
			cfg.MinIO.SecretAccessKey, cfg.MinIO.Bucket, cfg.MinIO.Location, cfg.MinIO.UseSSL)
		if err != nil {
			logger.Warn().Err(err).Msg("object store unavailable, exports will not be archived")
		} else {
			objects = s
		}
	}

	exporter := usecase.NewExporter(renderer, objects, store, config.GetDuration(cfg.MinIO.URLExpiry, 24*time.Hour))
	svc := usecase.NewService(store, exporter, ai.NewGateway(gen))

	app := httpadapter.NewApp(httpadapter.NewHandler(svc), httpadapter.AppConfig{
		JWTSecret:    cfg.Auth.JWTSecret,
		Issuer:       cfg.Auth.Issuer,
		BodyLimit:    cfg.Server.BodyLimitMB * 1024 * 1024,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout, 15*time.Second),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout, 60*time.Second),
	})

	go func() {
		logger.Info().Str("addr", cfg.Server.Address).Str("ai_provider", cfg.AI.Provider).Msg("starting server")
		if err := app.Listen(cfg.Server.Address); err != nil {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	if err := app.ShutdownWithTimeout(config.GetDuration(cfg.Server.ShutdownTimeout, 10*time.Second)); err != nil {
		logger.Error().Err(err).Msg("shutdown failed")
	}
}

// openStore returns the Postgres store, or the in-memory store when no
// database is configured and that is allowed.
func openStore(ctx context.Context, cfg *config.Config) (usecase.Store, *pgxpool.Pool) {
	if cfg.Database.URL == "" {
		if !cfg.Database.AllowInMemory {
			logger.Fatal().Msg("DATABASE_URL is required (set ALLOW_IN_MEMORY=true for a throwaway store)")
		}
		logger.Warn().Msg("no database configured, using in-memory store")
		return repo.NewMemoryStore(), nil
	}

	pool, err := infra.NewPool(ctx, cfg.Database.URL, cfg.Database.MaxConns,
		config.GetDuration(cfg.Database.ConnectTimeout, 5*time.Second))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	if cfg.Database.RunMigrations {
		if err := migration.RunMigrations(ctx, pool); err != nil {
			logger.Fatal().Err(err).Msg("failed to run migrations")
		}
	}
	return repo.NewStore(pool), pool
}

func newGenerator(ctx context.Context, cfg *config.Config) ai.TextGenerator {
	provider := strings.ToLower(cfg.AI.Provider)
	if provider != "offline" && cfg.AI.APIKey == "" {
		logger.Warn().Str("provider", provider).Msg("no AI API key configured, using the offline model")
		provider = "offline"
	}

	var gen ai.TextGenerator
	switch provider {
	case "gemini":
		g, err := ai.NewGeminiGenerator(ctx, cfg.AI.APIKey, cfg.AI.Model, cfg.AI.Temperature)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create gemini client")
		}
		gen = g
	case "offline":
		gen = ai.NewEinoGenerator(ai.NewOfflineChatModel(), cfg.AI.Temperature)
	default:
		gen = ai.NewClient(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model, cfg.AI.Temperature,
			config.GetDuration(cfg.AI.Timeout, 30*time.Second), cfg.AI.MaxAttempts)
	}
	gen = ai.NewRateLimited(gen, cfg.AI.QPM)

	if cfg.Redis.Address == "" {
		return gen
	}
	client, err := infra.NewRedisClient(ctx, cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.PoolSize)
	if err != nil {
		logger.Warn().Err(err).Msg("redis unavailable, AI responses will not be cached")
		return gen
	}
	return ai.NewCached(gen, ai.NewRedisCache(client), provider+":"+cfg.AI.Model,
		config.GetDuration(cfg.AI.CacheTTL, 24*time.Hour))
}
