package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/api"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/api/handlers/http/admin"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/api/handlers/http/live"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/api/handlers/http/requester"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/api/handlers/http/responder"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/api/handlers/http/system"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/config"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/domain"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/livesync"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/metrics"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/redis"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/service"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/storage/postgres"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/workers"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/pkg/logger"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/pkg/retry"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Syncer     *livesync.Syncer
	Notifier   *service.AlertNotifier
	StatsWork  *workers.StatsRefreshWorker
	Metrics    *metrics.Metrics
}

// storeFetcher is the pull channel of the live view: authoritative reads
// straight from the repositories, stats via the cached service.
type storeFetcher struct {
	pg    *postgres.Postgres
	stats service.StatsService
}

func (f *storeFetcher) ActiveAlerts(ctx context.Context) ([]domain.Alert, error) {
	return f.pg.Alerts.ListActive(ctx)
}

func (f *storeFetcher) LiveResponses(ctx context.Context) ([]domain.Response, error) {
	return f.pg.Responses.ListLive(ctx)
}

func (f *storeFetcher) AlertStats(ctx context.Context) (*domain.AlertStats, error) {
	return f.stats.GetStats(ctx)
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	notifyQueue := redis.NewNotifyQueue(redisClient.Client, "alerts:notify")
	statsCache := redis.NewStatsCache(redisClient)

	policy := retry.Default()

	svc := service.NewService(
		service.NewLifecycleService(storage.Alerts, storage.Sessions, notifyQueue, logger, policy),
		service.NewCommitmentService(storage.Alerts, storage.Responses, logger),
		service.NewStatsService(storage.Stat, statsCache, logger, cfg.Sync.StatsCacheTTL),
		service.NewProfileService(storage.Profiles),
	)

	m := metrics.New()

	syncer := livesync.New(
		storage.Feed,
		&storeFetcher{pg: storage, stats: svc.Stats},
		livesync.Config{
			StaggerDelays:    cfg.Sync.StaggerDelays,
			FallbackInterval: cfg.Sync.FallbackInterval,
			SubscribeGrace:   cfg.Sync.SubscribeGrace,
			ReconnectDelay:   cfg.Sync.ReconnectDelay,
		},
		policy,
		logger,
		m,
	)

	notifier := service.NewAlertNotifier(logger, cfg.Notify, notifyQueue, policy)
	statsWorker := workers.NewStatsRefreshWorker(svc.Stats, logger, cfg.Sync.StatsCacheTTL)

	handlers := api.Handlers{
		Requester: requester.NewHandler(logger, svc.Lifecycle),
		Responder: responder.NewHandler(logger, svc.Commitment, svc.Profiles, m),
		Live:      live.NewHandler(logger, syncer),
		Admin:     admin.NewHandler(logger, svc.Profiles, svc.Stats),
		System:    system.NewHandler(logger, storage.Pool),
		Metrics:   m.Handler(),
	}

	httpServer := api.NewServer(cfg, logger, handlers)
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		Syncer:     syncer,
		Notifier:   notifier,
		StatsWork:  statsWorker,
		Metrics:    m,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
