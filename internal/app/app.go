package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/recipex/backend/config"
	"github.com/recipex/backend/internal/database"
	"github.com/recipex/backend/internal/repository"
	"github.com/recipex/backend/internal/service"
)

// App holds the store connections and the services built on top of them
type App struct {
	cfg   *config.Config
	log   zerolog.Logger
	db    *gorm.DB
	redis *redis.Client

	Recipes service.IRecipeService
	Users   service.IUserService
}

// New opens the store selected by cfg and wires the services to it. SQLite
// databases are migrated on open; postgres needs an explicit Migrate. The
// redis recipe cache is only enabled when redis is configured.
func New(cfg *config.Config, log zerolog.Logger) (*App, error) {
	a := &App{cfg: cfg, log: log}

	var (
		recipes repository.RecipeRepository
		users   repository.UserRepository
	)

	switch cfg.StoreDriver {
	case config.DriverFile:
		store, err := repository.NewFileStore(cfg.FilePath)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", cfg.FilePath).Msg("using file store")
		recipes, users = store.Recipes(), store.Users()
	default:
		db, err := database.Open(cfg, log)
		if err != nil {
			return nil, err
		}
		a.db = db
		if cfg.StoreDriver == config.DriverSQLite {
			// Local databases are created on first use
			if err := database.RunMigrations(db); err != nil {
				_ = a.Close()
				return nil, err
			}
		}
		recipes = repository.NewGormRecipeRepository(db)
		users = repository.NewGormUserRepository(db)
	}

	if cfg.CacheEnabled() {
		client, err := database.NewRedisClient(cfg, log)
		if err != nil {
			_ = a.Close()
			return nil, err
		}
		a.redis = client
		recipes = repository.NewCachedRecipeRepository(recipes, client, cfg.CacheTTL, log)
	}

	a.Recipes = service.NewRecipeService(recipes, log, cfg.BatchConcurrency)
	a.Users = service.NewUserService(users, recipes, log)
	return a, nil
}

// Migrate brings the database schema up to date. File stores need no
// migration.
func (a *App) Migrate() error {
	if a.db == nil {
		a.log.Info().Str("driver", a.cfg.StoreDriver).Msg("store has no schema to migrate")
		return nil
	}
	if err := database.RunMigrations(a.db); err != nil {
		return err
	}
	a.log.Info().Msg("migrations applied")
	return nil
}

// HealthCheck verifies that every configured backend is reachable
func (a *App) HealthCheck(ctx context.Context) error {
	if a.db != nil {
		if err := database.HealthCheck(ctx, a.db); err != nil {
			return fmt.Errorf("database: %w", err)
		}
	}
	if a.redis != nil {
		if err := a.redis.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	}
	return nil
}

// Close releases the store connections
func (a *App) Close() error {
	var errs []error
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	if a.db != nil {
		errs = append(errs, database.Close(a.db))
	}
	return errors.Join(errs...)
}
