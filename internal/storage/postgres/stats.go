package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/domain"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/pkg/e"
)

type StatsRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStatsRepo(pool *pgxpool.Pool, logger *slog.Logger) *StatsRepo {
	return &StatsRepo{pool: pool, logger: logger}
}

// AlertStats prefers the single server-side aggregation: computed at the
// store it is a point-in-time snapshot, immune to the race of combining
// three separate queries. The multi-query path only covers a missing
// procedure.
func (p *StatsRepo) AlertStats(ctx context.Context) (*domain.AlertStats, error) {
	const op = "postgres.Stats.AlertStats"

	stats, err := p.alertStatsRPC(ctx)
	if err == nil {
		return stats, nil
	}
	if !errors.Is(err, e.ErrRPCUnavailable) {
		return nil, err
	}

	p.logger.Warn("get_alert_stats unavailable, using multi-query fallback", slog.String("op", op))
	return p.alertStatsFallback(ctx)
}

func (p *StatsRepo) alertStatsRPC(ctx context.Context) (*domain.AlertStats, error) {
	const op = "postgres.Stats.alertStatsRPC"

	var raw []byte
	if err := p.pool.QueryRow(ctx, `SELECT get_alert_stats()`).Scan(&raw); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	var decoded struct {
		ActiveResponders    int64            `json:"active_responders"`
		CommittedResponders int64            `json:"committed_responders"`
		AlertCommitments    map[string]int64 `json:"alert_commitments"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		p.logger.Error("stats payload decode failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.Wrap(op, err)
	}

	stats := &domain.AlertStats{
		ActiveResponders:    decoded.ActiveResponders,
		CommittedResponders: decoded.CommittedResponders,
		AlertCommitments:    make(map[uuid.UUID]int64, len(decoded.AlertCommitments)),
	}
	for k, n := range decoded.AlertCommitments {
		id, err := uuid.Parse(k)
		if err != nil {
			continue
		}
		stats.AlertCommitments[id] = n
	}
	return stats, nil
}

func (p *StatsRepo) alertStatsFallback(ctx context.Context) (*domain.AlertStats, error) {
	const op = "postgres.Stats.alertStatsFallback"

	stats := &domain.AlertStats{AlertCommitments: make(map[uuid.UUID]int64)}

	const activeQuery = `
		SELECT count(*) FROM responder_profiles
		WHERE is_responder AND last_seen_at >= now() - interval '5 minutes'
	`
	if err := p.pool.QueryRow(ctx, activeQuery).Scan(&stats.ActiveResponders); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	const committedQuery = `
		SELECT count(DISTINCT r.responder_id)
		FROM responses r JOIN alerts a ON a.id = r.alert_id
		WHERE r.status IN ('committed','en_route','arrived')
		  AND a.status IN ('active','responded')
	`
	if err := p.pool.QueryRow(ctx, committedQuery).Scan(&stats.CommittedResponders); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	const perAlertQuery = `
		SELECT alert_id, count(*) FROM responses
		WHERE status IN ('committed','en_route','arrived')
		GROUP BY alert_id
	`
	rows, err := p.pool.Query(ctx, perAlertQuery)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var n int64
		if err := rows.Scan(&id, &n); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		stats.AlertCommitments[id] = n
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return stats, nil
}
