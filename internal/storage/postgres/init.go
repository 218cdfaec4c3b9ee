package postgres

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/config"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/pkg/e"
)

type Postgres struct {
	Pool      *pgxpool.Pool
	Alerts    *AlertRepo
	Responses *ResponseRepo
	Sessions  *SessionRepo
	Profiles  *ProfileRepo
	Stat      *StatsRepo
	Feed      *ChangeFeed
}

func NewPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Postgres, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.SSLMode,
	)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("Failed to parse pgx config", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.ParseConfig", err)
	}
	poolCfg.MaxConns = cfg.Postgres.MaxConns
	poolCfg.MinConns = cfg.Postgres.MinConns
	poolCfg.MaxConnLifetime = cfg.Postgres.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error("Failed to create pgx pool", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.NewWithConfig", err)
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Error("Failed to ping Postgres database", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Ping", err)
	}
	logger.Info("Connected to Postgres successfully")

	if err := Migrate(ctx, pool); err != nil {
		logger.Error("Failed to apply schema", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Migrate", err)
	}

	pg := &Postgres{
		Pool:      pool,
		Alerts:    NewAlertRepo(pool, logger),
		Responses: NewResponseRepo(pool, logger),
		Sessions:  NewSessionRepo(pool, logger),
		Profiles:  NewProfileRepo(pool, logger),
		Stat:      NewStatsRepo(pool, logger),
		Feed:      NewChangeFeed(pool, logger),
	}

	logger.Info("Postgres repositories created")
	return pg, nil
}
