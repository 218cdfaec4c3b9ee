package workers

import (
	"context"
	"log/slog"
	"time"
)

type StatsRefresher interface {
	Refresh(ctx context.Context) error
}

// StatsRefreshWorker keeps the cached network aggregate warm so the admin
// surface and the live view never pay the recount on a cold read.
type StatsRefreshWorker struct {
	stats    StatsRefresher
	logger   *slog.Logger
	interval time.Duration
}

func NewStatsRefreshWorker(stats StatsRefresher, logger *slog.Logger, interval time.Duration) *StatsRefreshWorker {
	return &StatsRefreshWorker{
		stats:    stats,
		logger:   logger,
		interval: interval,
	}
}

func (w *StatsRefreshWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.stats.Refresh(ctx); err != nil && ctx.Err() == nil {
				w.logger.Warn("stats refresh failed", slog.Any("error", err))
			}
		}
	}
}
