package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/domain"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/pkg/e"
)

type SessionRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewSessionRepo(pool *pgxpool.Pool, logger *slog.Logger) *SessionRepo {
	return &SessionRepo{pool: pool, logger: logger}
}

const sessionColumns = `id, user_id, anonymous_id, status, general_location,
	precise_location, check_in_count, started_at, ended_at`

func scanSession(row pgx.Row, s *domain.MonitoringSession) error {
	return row.Scan(
		&s.ID,
		&s.Origin.UserID,
		&s.Origin.AnonymousID,
		&s.Status,
		&s.GeneralLocation,
		&s.PreciseLocation,
		&s.CheckInCount,
		&s.StartedAt,
		&s.EndedAt,
	)
}

func (p *SessionRepo) Create(ctx context.Context, s *domain.MonitoringSession) error {
	const op = "postgres.Session.Create"

	const query = `
		INSERT INTO monitoring_sessions (id, user_id, anonymous_id, status, general_location, precise_location)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Status == "" {
		s.Status = domain.SessionActive
	}
	if s.StartedAt.IsZero() {
		s.StartedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		s.ID,
		s.Origin.UserID,
		s.Origin.AnonymousID,
		s.Status,
		s.GeneralLocation,
		s.PreciseLocation,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

// CloseActiveFor completes any still-active session of the origin, making
// room before inserting a new one.
func (p *SessionRepo) CloseActiveFor(ctx context.Context, origin domain.Origin) error {
	const op = "postgres.Session.CloseActiveFor"

	const query = `
		UPDATE monitoring_sessions
		SET status = 'completed', ended_at = now()
		WHERE status = 'active'
		  AND COALESCE(user_id::text, anonymous_id) = $1
	`

	if _, err := p.pool.Exec(ctx, query, origin.Key()); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *SessionRepo) Get(ctx context.Context, id uuid.UUID) (*domain.MonitoringSession, error) {
	const op = "postgres.Session.Get"

	query := fmt.Sprintf(`SELECT %s FROM monitoring_sessions WHERE id = $1`, sessionColumns)

	var s domain.MonitoringSession
	if err := scanSession(p.pool.QueryRow(ctx, query, id), &s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &s, nil
}

// IncrementCheckIn bumps the check-in counter on a still-active session and
// returns the new value.
func (p *SessionRepo) IncrementCheckIn(ctx context.Context, id uuid.UUID) (int, error) {
	const op = "postgres.Session.IncrementCheckIn"

	const query = `
		UPDATE monitoring_sessions
		SET check_in_count = check_in_count + 1
		WHERE id = $1 AND status = 'active'
		RETURNING check_in_count
	`

	var count int
	if err := p.pool.QueryRow(ctx, query, id).Scan(&count); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return 0, e.WrapError(ctx, op, err)
	}
	return count, nil
}

func (p *SessionRepo) UpdateLocation(ctx context.Context, id uuid.UUID, general, precise string) error {
	const op = "postgres.Session.UpdateLocation"

	const query = `
		UPDATE monitoring_sessions
		SET general_location = $2, precise_location = $3
		WHERE id = $1 AND status = 'active'
	`

	cmd, err := p.pool.Exec(ctx, query, id, general, precise)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

// EndSafe terminates a session via the idempotent stored procedure: a late
// duplicate call is a no-op, not an error.
func (p *SessionRepo) EndSafe(ctx context.Context, id uuid.UUID, status domain.SessionStatus) error {
	const op = "postgres.Session.EndSafe"

	if _, err := p.pool.Exec(ctx, `SELECT end_monitoring_session_safe($1, $2)`, id, status); err != nil {
		p.logger.Error("db rpc failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	return nil
}
