package app

import (
	"context"
	"fmt"
	"time"

	"jobboard/internal/config"
	"jobboard/internal/database"
	"jobboard/internal/database/migration"
	dbpostgres "jobboard/internal/database/postgres"
	"jobboard/internal/database/seeder"
	"jobboard/internal/domain/job"
	"jobboard/internal/domain/profile"
	"jobboard/internal/infrastructure/cache"
	"jobboard/internal/infrastructure/identity"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/pkg/logging"
	"jobboard/internal/repository"
	"jobboard/internal/usecase"
)

type Container struct {
	Config   config.Config
	Logger   *logging.Logger
	DB       database.DB
	Cache    *cache.Redis
	Profiles *usecase.ProfileEnricher
	Jobs     usecase.JobUsecase
	Tokens   jwt.Service
}

func newContainer(cfg config.Config, logger *logging.Logger, db database.DB, redis *cache.Redis, profiles *usecase.ProfileEnricher, jobs usecase.JobUsecase, tokens jwt.Service) *Container {
	return &Container{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Cache:    redis,
		Profiles: profiles,
		Jobs:     jobs,
		Tokens:   tokens,
	}
}

func provideLogger(cfg config.Config) (*logging.Logger, func()) {
	logger := logging.New(cfg.App.LogLevel).With("app", cfg.App.AppName, "env", cfg.App.Environment)
	return logger, func() { _ = logger.Sync() }
}

// provideDatabase connects to Postgres and applies pending migrations. The
// memory driver has no database and yields a nil DB.
func provideDatabase(cfg config.Config, logger *logging.Logger) (database.DB, func(), error) {
	if cfg.App.StorageDriver == config.StorageDriverMemory {
		logger.Warn("using in-memory job storage, data is lost on restart")
		return nil, func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	if cfg.Database.Migrate {
		if err := (migration.Runner{}).Run(ctx, db.SQLDB()); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	logger.Info("database connected", "host", cfg.Database.DBHost, "name", cfg.Database.DBName)
	return db, func() {
		if err := db.Close(); err != nil {
			logger.Warn("close database", "err", err)
		}
	}, nil
}

// provideJobRepository picks the storage backend and, when enabled, seeds the
// demo postings.
func provideJobRepository(cfg config.Config, db database.DB, logger *logging.Logger) (job.Repository, error) {
	var repo job.Repository
	if db == nil {
		repo = repository.NewMemoryJobRepository()
	} else {
		repo = repository.NewPostgresJobRepository(db, cfg.Database.QueryTimeout)
	}

	if cfg.App.SeedDemoJobs {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(ctx, repo); err != nil {
			return nil, fmt.Errorf("seed demo jobs: %w", err)
		}
		logger.Info("demo jobs seeded", "owner", seeder.DemoOwner)
	}
	return repo, nil
}

func provideCache(cfg config.Config, logger *logging.Logger) (*cache.Redis, func()) {
	redis := cache.NewRedis(cfg.Redis, logger)
	return redis, func() { _ = redis.Close() }
}

// provideDirectory returns nil when no identity provider is configured; every
// owner then renders as the placeholder profile.
func provideDirectory(cfg config.Config) profile.Directory {
	if cfg.Identity.BaseURL == "" {
		return nil
	}
	return identity.NewClient(cfg.Identity)
}

func provideEnricher(cfg config.Config, dir profile.Directory, redis *cache.Redis, logger *logging.Logger) *usecase.ProfileEnricher {
	return usecase.NewProfileEnricher(dir, redis, cfg.Cache.ProfileTTL, logger,
		usecase.WithLookupTimeout(cfg.Identity.Timeout))
}

func provideJobUsecase(cfg config.Config, repo job.Repository, enricher *usecase.ProfileEnricher, redis *cache.Redis, logger *logging.Logger) usecase.JobUsecase {
	return usecase.NewJobUsecase(repo, enricher, logger, usecase.WithSearchCache(redis, cfg.Cache.SearchTTL))
}

func provideTokenService(cfg config.Config) jwt.Service {
	return jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.Issuer, time.Hour)
}
