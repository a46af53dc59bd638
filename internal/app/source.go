package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/maxviazov/customers-service/internal/config"
	"github.com/maxviazov/customers-service/internal/repository"
	"github.com/maxviazov/customers-service/internal/repository/memory"
	"github.com/maxviazov/customers-service/internal/repository/postgres"
	"github.com/maxviazov/customers-service/internal/repository/sqlite"
)

// Reloader is implemented by sources that can refresh their snapshot in place.
type Reloader interface {
	Reload(ctx context.Context) (int, error)
}

// OpenSource connects the customer source selected by cfg.Source.Driver.
func OpenSource(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (repository.Source, error) {
	log := logger.With().Str("module", "source").Str("driver", cfg.Source.Driver).Logger()

	switch cfg.Source.Driver {
	case config.DriverMemory, "":
		if cfg.Source.MemoryPath == "" {
			log.Info().Msg("serving bundled dataset")
			return memory.NewBundled()
		}
		log.Info().Str("path", cfg.Source.MemoryPath).Msg("serving dataset file")
		return memory.Open(cfg.Source.MemoryPath)

	case config.DriverPostgres:
		pool, err := repository.NewPostgresPool(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, err
		}
		return postgres.NewSource(pool), nil

	case config.DriverSQLite:
		repo, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		if cfg.SQLite.SeedIfEmpty {
			if err := seedSQLite(ctx, repo, log); err != nil {
				repo.Close()
				return nil, err
			}
		}
		log.Info().Str("path", cfg.SQLite.Path).Msg("sqlite source opened")
		return repo, nil

	default:
		return nil, fmt.Errorf("unknown source driver %q", cfg.Source.Driver)
	}
}

func seedSQLite(ctx context.Context, repo *sqlite.Repository, log zerolog.Logger) error {
	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	bundled, err := memory.NewBundled()
	if err != nil {
		return err
	}
	customers, err := bundled.ListAll(ctx)
	if err != nil {
		return err
	}
	if err := repo.Import(ctx, customers); err != nil {
		return fmt.Errorf("seed sqlite: %w", err)
	}
	log.Info().Int("customers", len(customers)).Msg("sqlite seeded with bundled dataset")
	return nil
}
