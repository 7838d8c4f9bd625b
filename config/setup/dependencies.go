package setup

import (
	"context"
	"fmt"
	"log/slog"
	"ocai-hub/app"
	"ocai-hub/bucketing"
	"ocai-hub/cache"
	"ocai-hub/config"
	"ocai-hub/database"
	"ocai-hub/lifecycle"
	"ocai-hub/security"
	"time"
)

// InitDatabase initializes the SQLite database and runs migrations
func InitDatabase(dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath)
	return db, nil
}

// InitCache connects to Redis when REDIS_ADDR is set and falls back to an
// in-process cache otherwise
func InitCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) (cache.Cacher, error) {
	if cfg.RedisAddr == "" {
		logger.Info("aggregate cache using process memory")
		return cache.NewMemory(), nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	c, err := cache.NewRedis(ctx,
		cache.WithAddress(cfg.RedisAddr),
		cache.WithPassword(cfg.RedisPassword),
		cache.WithDB(cfg.RedisDB),
	)
	if err != nil {
		return nil, err
	}

	logger.Info("aggregate cache using redis", "addr", cfg.RedisAddr, "db", cfg.RedisDB)
	return c, nil
}

// InitBucketer loads custom bucket rules when configured
func InitBucketer(cfg *config.Config, logger *slog.Logger) (*bucketing.Bucketer, error) {
	if cfg.BucketRulesPath == "" {
		return bucketing.New(), nil
	}

	b, err := bucketing.Load(cfg.BucketRulesPath)
	if err != nil {
		return nil, err
	}

	logger.Info("bucket rules loaded", "path", cfg.BucketRulesPath)
	return b, nil
}

// InitApp initializes the application with all dependencies
func InitApp(ctx context.Context, db *database.DB, cfg *config.Config, logger *slog.Logger) (*app.App, error) {
	repo := database.NewRepository(db)

	c, err := InitCache(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	bucketer, err := InitBucketer(cfg, logger)
	if err != nil {
		c.Close()
		return nil, err
	}

	application := app.New(repo, c, app.Options{
		Bucketer:   bucketer,
		Hasher:     security.NewIPHasher(cfg.IPHashCost),
		KThreshold: cfg.KThreshold,
		CacheTTL:   cfg.AggregateCacheTTL,
	}, logger)

	worker, err := lifecycle.NewWorker(repo, application.Cache, logger, cfg.LifecycleSchedule)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to create lifecycle worker: %w", err)
	}
	application.Lifecycle = worker

	logger.Info("application initialized with dependency injection",
		"k_anonymity_threshold", application.Reports.Threshold())
	return application, nil
}

// Shutdown performs graceful shutdown of all services
func Shutdown(application *app.App, db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if application != nil {
		if application.Lifecycle != nil {
			application.Lifecycle.Stop()
		}
		if application.Cache != nil {
			if err := application.Cache.Close(); err != nil {
				logger.Warn("failed to close cache", "error", err)
			}
		}
	}

	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
