// Package livesync keeps every consumer's view of alerts, commitments and
// stats eventually consistent despite a best-effort push channel. It pairs
// the store's change feed with authoritative full refetches: every push
// event triggers an immediate refetch plus staggered follow-ups to converge
// past read-after-write lag, and fallback polling covers the feed whenever
// it is unconfirmed or broken.
package livesync

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/domain"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/pkg/retry"
)

// FeedSource is the push channel. Listen blocks until failure, invoking
// ready once the subscription is confirmed.
type FeedSource interface {
	Listen(ctx context.Context, ready func(), handle func(domain.ChangeEvent)) error
}

// Fetcher is the pull channel: authoritative reads replacing local state.
type Fetcher interface {
	ActiveAlerts(ctx context.Context) ([]domain.Alert, error)
	LiveResponses(ctx context.Context) ([]domain.Response, error)
	AlertStats(ctx context.Context) (*domain.AlertStats, error)
}

// Observer receives synchronization telemetry. Implemented by the metrics
// package; nil-safe here.
type Observer interface {
	FeedEvent(table string)
	ReconcileOK()
	ReconcileFail()
	StatusChanged(st Status)
}

type Config struct {
	StaggerDelays    []time.Duration
	FallbackInterval time.Duration
	SubscribeGrace   time.Duration
	ReconnectDelay   time.Duration
}

type Syncer struct {
	feed   FeedSource
	fetch  Fetcher
	cfg    Config
	policy retry.Policy
	logger *slog.Logger
	obs    Observer

	runCtx context.Context

	mu          sync.Mutex
	alerts      []domain.Alert
	commitments map[uuid.UUID][]domain.Response
	stats       *domain.AlertStats
	fetchedAt   time.Time
	feedHealthy bool
	refreshing  int
	status      Status
	pending     []*time.Timer
	subs        map[int]chan Snapshot
	nextSub     int
	closed      bool
}

func New(feed FeedSource, fetch Fetcher, cfg Config, policy retry.Policy, logger *slog.Logger, obs Observer) *Syncer {
	return &Syncer{
		feed:        feed,
		fetch:       fetch,
		cfg:         cfg,
		policy:      policy,
		logger:      logger,
		obs:         obs,
		commitments: make(map[uuid.UUID][]domain.Response),
		status:      StatusDisconnected,
		subs:        make(map[int]chan Snapshot),
	}
}

// Run drives both channels until ctx is cancelled, then tears down every
// timer and subscriber synchronously; a leaked timer or subscription is a
// correctness bug, not cosmetic.
func (s *Syncer) Run(ctx context.Context) {
	s.runCtx = ctx

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.feedLoop(ctx)
	}()
	go func() {
		defer wg.Done()
		s.fallbackLoop(ctx)
	}()

	// authoritative baseline before any event arrives
	_ = s.refresh(ctx)

	<-ctx.Done()
	s.teardown()
	wg.Wait()
}

func (s *Syncer) feedLoop(ctx context.Context) {
	for ctx.Err() == nil {
		err := s.feed.Listen(ctx, s.markFeedHealthy, s.onEvent)
		if ctx.Err() != nil {
			return
		}
		s.markFeedBroken(err)
		select {
		case <-ctx.Done():
			return
		case <-time.After(s.cfg.ReconnectDelay):
		}
	}
}

// fallbackLoop polls the pull channel while the push channel is not
// confirmed healthy. Once the feed confirms, polling is suppressed to
// avoid needless load; it resumes automatically on degradation.
func (s *Syncer) fallbackLoop(ctx context.Context) {
	grace := time.NewTimer(s.cfg.SubscribeGrace)
	defer grace.Stop()
	select {
	case <-ctx.Done():
		return
	case <-grace.C:
	}

	if !s.healthy() {
		s.logger.Warn("push channel unconfirmed after grace period, fallback polling active",
			slog.Duration("grace", s.cfg.SubscribeGrace))
		_ = s.refresh(ctx)
	}

	ticker := time.NewTicker(s.cfg.FallbackInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.healthy() {
				_ = s.refresh(ctx)
			}
		}
	}
}

func (s *Syncer) markFeedHealthy() {
	s.mu.Lock()
	s.feedHealthy = true
	s.recomputeStatusLocked()
	s.mu.Unlock()
}

func (s *Syncer) markFeedBroken(err error) {
	s.mu.Lock()
	s.feedHealthy = false
	s.recomputeStatusLocked()
	s.mu.Unlock()
	if err != nil {
		s.logger.Warn("change feed degraded, polling resumes", slog.Any("error", err))
	}
}

// onEvent handles one push notification. The payload is a hint, not a
// trustworthy snapshot: schedule a refetch now and again after the
// configured stagger delays, because the first read may still see
// pre-write state. A new event within a burst resets the schedule.
func (s *Syncer) onEvent(ev domain.ChangeEvent) {
	if s.obs != nil {
		s.obs.FeedEvent(ev.Table)
	}
	s.logger.Debug("change event",
		slog.String("table", ev.Table),
		slog.String("op", string(ev.Op)),
		slog.String("row_id", ev.RowID.String()))

	ctx := s.runCtx
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	for _, t := range s.pending {
		t.Stop()
	}
	s.pending = s.pending[:0]
	for _, d := range s.cfg.StaggerDelays {
		s.pending = append(s.pending, time.AfterFunc(d, func() {
			_ = s.refresh(ctx)
		}))
	}
	s.mu.Unlock()

	go func() { _ = s.refresh(ctx) }()
}

// refresh is the pull channel: fetch everything, then replace the visible
// state wholesale. Transient store errors are retried under the shared
// policy; exhaustion degrades connection status instead of interrupting
// anyone's current action.
func (s *Syncer) refresh(ctx context.Context) error {
	if ctx == nil || ctx.Err() != nil {
		return context.Canceled
	}

	s.beginRefresh()
	defer s.endRefresh()

	var (
		alerts    []domain.Alert
		responses []domain.Response
		stats     *domain.AlertStats
	)
	err := s.policy.Do(ctx, func(ctx context.Context) error {
		var err error
		if alerts, err = s.fetch.ActiveAlerts(ctx); err != nil {
			return err
		}
		if responses, err = s.fetch.LiveResponses(ctx); err != nil {
			return err
		}
		stats, err = s.fetch.AlertStats(ctx)
		return err
	})
	if err != nil {
		if s.obs != nil {
			s.obs.ReconcileFail()
		}
		if ctx.Err() == nil {
			s.logger.Error("reconciliation failed", slog.Any("error", err))
		}
		return err
	}

	s.mu.Lock()
	s.alerts = alerts
	s.commitments = groupByResponder(responses)
	s.stats = stats
	s.fetchedAt = time.Now().UTC()
	s.publishLocked()
	s.mu.Unlock()

	if s.obs != nil {
		s.obs.ReconcileOK()
	}
	return nil
}

// Refresh is the explicit user-initiated resync.
func (s *Syncer) Refresh(ctx context.Context) error {
	return s.refresh(ctx)
}

func (s *Syncer) beginRefresh() {
	s.mu.Lock()
	s.refreshing++
	s.recomputeStatusLocked()
	s.mu.Unlock()
}

func (s *Syncer) endRefresh() {
	s.mu.Lock()
	s.refreshing--
	s.recomputeStatusLocked()
	s.mu.Unlock()
}

// connected while the feed is confirmed; otherwise reconnecting only while
// a refresh is actually in flight, disconnected the rest of the time.
func (s *Syncer) recomputeStatusLocked() {
	prev := s.status
	switch {
	case s.feedHealthy:
		s.status = StatusConnected
	case s.refreshing > 0:
		s.status = StatusReconnecting
	default:
		s.status = StatusDisconnected
	}
	if s.status != prev {
		if s.obs != nil {
			s.obs.StatusChanged(s.status)
		}
		s.publishLocked()
	}
}

func (s *Syncer) healthy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feedHealthy
}

func (s *Syncer) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Snapshot returns the current consumer-visible view.
func (s *Syncer) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Syncer) snapshotLocked() Snapshot {
	alerts := make([]domain.Alert, len(s.alerts))
	copy(alerts, s.alerts)
	commitments := make(map[uuid.UUID][]domain.Response, len(s.commitments))
	for k, v := range s.commitments {
		vv := make([]domain.Response, len(v))
		copy(vv, v)
		commitments[k] = vv
	}
	return Snapshot{
		Alerts:      alerts,
		Commitments: commitments,
		Stats:       s.stats,
		Status:      s.status,
		FetchedAt:   s.fetchedAt,
	}
}

// Subscribe registers a consumer for snapshot pushes. The returned cancel
// func must be called on consumer teardown; each subscriber channel holds
// only the latest snapshot, stale intermediates are dropped.
func (s *Syncer) Subscribe() (<-chan Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan Snapshot, 1)
	if s.closed {
		close(ch)
		return ch, func() {}
	}
	s.subs[id] = ch

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
	}
}

func (s *Syncer) publishLocked() {
	if len(s.subs) == 0 {
		return
	}
	snap := s.snapshotLocked()
	for _, ch := range s.subs {
		select {
		case ch <- snap:
		default:
			// replace the stale pending snapshot with the fresh one
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}

func (s *Syncer) teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for _, t := range s.pending {
		t.Stop()
	}
	s.pending = nil
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
	s.feedHealthy = false
	s.status = StatusDisconnected
}
