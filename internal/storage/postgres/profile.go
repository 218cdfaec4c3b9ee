package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/domain"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/pkg/e"
)

type ProfileRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewProfileRepo(pool *pgxpool.Pool, logger *slog.Logger) *ProfileRepo {
	return &ProfileRepo{pool: pool, logger: logger}
}

// Heartbeat upserts the profile and refreshes last_seen_at, which feeds the
// online-responder count.
func (p *ProfileRepo) Heartbeat(ctx context.Context, userID uuid.UUID) error {
	const op = "postgres.Profile.Heartbeat"

	const query = `
		INSERT INTO responder_profiles (user_id, last_seen_at)
		VALUES ($1, now())
		ON CONFLICT (user_id) DO UPDATE SET last_seen_at = now()
	`

	if _, err := p.pool.Exec(ctx, query, userID); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("user_id", userID.String()))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *ProfileRepo) Get(ctx context.Context, userID uuid.UUID) (*domain.ResponderProfile, error) {
	const op = "postgres.Profile.Get"

	const query = `
		SELECT user_id, is_responder, is_admin, last_seen_at
		FROM responder_profiles
		WHERE user_id = $1
	`

	var prof domain.ResponderProfile
	err := p.pool.QueryRow(ctx, query, userID).Scan(
		&prof.UserID,
		&prof.IsResponder,
		&prof.IsAdmin,
		&prof.LastSeenAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return &prof, nil
}

// SetRoles is the administrative mutation of the responder/admin flags.
func (p *ProfileRepo) SetRoles(ctx context.Context, userID uuid.UUID, isResponder, isAdmin bool) error {
	const op = "postgres.Profile.SetRoles"

	const query = `
		INSERT INTO responder_profiles (user_id, is_responder, is_admin)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET is_responder = $2, is_admin = $3
	`

	if _, err := p.pool.Exec(ctx, query, userID, isResponder, isAdmin); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("user_id", userID.String()))
		return e.WrapError(ctx, op, err)
	}
	return nil
}
