package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/domain"
)

type statsService struct {
	repo   StatsRepository
	cache  StatsCache
	logger *slog.Logger
	ttl    time.Duration
}

func NewStatsService(repo StatsRepository, cache StatsCache, logger *slog.Logger, ttl time.Duration) StatsService {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &statsService{repo: repo, cache: cache, logger: logger, ttl: ttl}
}

func (s *statsService) GetStats(ctx context.Context) (*domain.AlertStats, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn("stats cache read failed", slog.Any("error", err))
		} else if cached != nil {
			return cached, nil
		}
	}

	stats, err := s.repo.AlertStats(ctx)
	if err != nil {
		return nil, err
	}
	s.storeCache(ctx, stats)
	return stats, nil
}

// Refresh recomputes the snapshot and repopulates the cache, used by the
// background refresher.
func (s *statsService) Refresh(ctx context.Context) error {
	stats, err := s.repo.AlertStats(ctx)
	if err != nil {
		return err
	}
	s.storeCache(ctx, stats)
	return nil
}

func (s *statsService) storeCache(ctx context.Context, stats *domain.AlertStats) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, stats, s.ttl); err != nil {
		s.logger.Warn("stats cache write failed", slog.Any("error", err))
	}
}
