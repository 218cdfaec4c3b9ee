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

type ResponseRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewResponseRepo(pool *pgxpool.Pool, logger *slog.Logger) *ResponseRepo {
	return &ResponseRepo{pool: pool, logger: logger}
}

const responseColumns = `id, alert_id, responder_id, status,
	called_ambulance, person_okay, naloxone_used, notes, created_at, updated_at`

func scanResponse(row pgx.Row, r *domain.Response) error {
	var calledAmbulance, personOkay, naloxoneUsed *bool
	var notes string
	if err := row.Scan(
		&r.ID,
		&r.AlertID,
		&r.ResponderID,
		&r.Status,
		&calledAmbulance,
		&personOkay,
		&naloxoneUsed,
		&notes,
		&r.CreatedAt,
		&r.UpdatedAt,
	); err != nil {
		return err
	}
	if r.Status == domain.ResponseCompleted {
		r.Outcome = &domain.Outcome{
			CalledAmbulance: calledAmbulance != nil && *calledAmbulance,
			PersonOkay:      personOkay != nil && *personOkay,
			NaloxoneUsed:    naloxoneUsed != nil && *naloxoneUsed,
			Notes:           notes,
		}
	}
	return nil
}

// CreateSafe inserts a committed response via the idempotent stored
// procedure. Re-committing returns the existing row's id with
// created=false, so callers can skip the count increment.
func (p *ResponseRepo) CreateSafe(ctx context.Context, alertID, responderID uuid.UUID, status domain.ResponseStatus) (uuid.UUID, bool, error) {
	const op = "postgres.Response.CreateSafe"

	var id uuid.UUID
	var created bool
	err := p.pool.QueryRow(ctx, `SELECT id, created FROM create_response_safe($1, $2, $3)`,
		alertID, responderID, status).Scan(&id, &created)
	if err != nil {
		p.logger.Error("db rpc failed", slog.String("op", op), slog.Any("error", err))
		return uuid.Nil, false, e.WrapError(ctx, op, err)
	}
	return id, created, nil
}

// Create is the plain-insert fallback; the uniqueness constraint is the
// backstop against a race producing two rows.
func (p *ResponseRepo) Create(ctx context.Context, r *domain.Response) error {
	const op = "postgres.Response.Create"

	const query = `
		INSERT INTO responses (id, alert_id, responder_id, status)
		VALUES ($1, $2, $3, $4)
	`

	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Status == "" {
		r.Status = domain.ResponseCommitted
	}

	_, err := p.pool.Exec(ctx, query, r.ID, r.AlertID, r.ResponderID, r.Status)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *ResponseRepo) Get(ctx context.Context, alertID, responderID uuid.UUID) (*domain.Response, error) {
	const op = "postgres.Response.Get"

	query := fmt.Sprintf(`SELECT %s FROM responses WHERE alert_id = $1 AND responder_id = $2`, responseColumns)

	var r domain.Response
	if err := scanResponse(p.pool.QueryRow(ctx, query, alertID, responderID), &r); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return &r, nil
}

// ListLive returns all responses still counting against non-terminal
// alerts, for the sync layer's commitment map.
func (p *ResponseRepo) ListLive(ctx context.Context) ([]domain.Response, error) {
	const op = "postgres.Response.ListLive"

	query := fmt.Sprintf(`
		SELECT %s FROM responses
		WHERE status IN ('committed','en_route','arrived')
		ORDER BY created_at
	`, responseColumns)

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var responses []domain.Response
	for rows.Next() {
		var r domain.Response
		if err := scanResponse(rows, &r); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		responses = append(responses, r)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return responses, nil
}

// CancelSafe runs the composite delete+audit+recount+transition procedure.
// Returns false when no live response existed: benign, the caller may have
// already succeeded via a retried request.
func (p *ResponseRepo) CancelSafe(ctx context.Context, alertID, responderID uuid.UUID, reason, detail string) (bool, error) {
	const op = "postgres.Response.CancelSafe"

	var removed bool
	err := p.pool.QueryRow(ctx, `SELECT cancel_response_safe($1, $2, $3, $4)`,
		alertID, responderID, reason, detail).Scan(&removed)
	if err != nil {
		p.logger.Error("db rpc failed", slog.String("op", op), slog.Any("error", err))
		return false, e.WrapError(ctx, op, err)
	}
	return removed, nil
}

// Delete removes a non-completed response, part of the non-atomic cancel
// fallback sequence.
func (p *ResponseRepo) Delete(ctx context.Context, alertID, responderID uuid.UUID) (bool, error) {
	const op = "postgres.Response.Delete"

	const query = `
		DELETE FROM responses
		WHERE alert_id = $1 AND responder_id = $2 AND status <> 'completed'
	`

	cmd, err := p.pool.Exec(ctx, query, alertID, responderID)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return false, e.WrapError(ctx, op, err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (p *ResponseRepo) RecordCancellation(ctx context.Context, c *domain.Cancellation) error {
	const op = "postgres.Response.RecordCancellation"

	const query = `
		INSERT INTO response_cancellations (alert_id, responder_id, reason, detail)
		VALUES ($1, $2, $3, $4)
	`

	_, err := p.pool.Exec(ctx, query, c.AlertID, c.ResponderID, c.Reason, c.Detail)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// CountCommitted is the live count of responses still holding the alert,
// used by the cancel fallback to recompute responder_count.
func (p *ResponseRepo) CountCommitted(ctx context.Context, alertID uuid.UUID) (int, error) {
	const op = "postgres.Response.CountCommitted"

	const query = `
		SELECT count(*) FROM responses
		WHERE alert_id = $1 AND status IN ('committed','en_route','arrived')
	`

	var n int
	if err := p.pool.QueryRow(ctx, query, alertID).Scan(&n); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return n, nil
}

func (p *ResponseRepo) SetCount(ctx context.Context, alertID uuid.UUID, count int) error {
	const op = "postgres.Response.SetCount"

	const query = `
		UPDATE alerts SET responder_count = $2, updated_at = now() WHERE id = $1
	`

	if _, err := p.pool.Exec(ctx, query, alertID, count); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// UpdateStatus moves a response along committed -> en_route -> arrived.
func (p *ResponseRepo) UpdateStatus(ctx context.Context, alertID, responderID uuid.UUID, status domain.ResponseStatus) error {
	const op = "postgres.Response.UpdateStatus"

	const query = `
		UPDATE responses
		SET status = $3, updated_at = now()
		WHERE alert_id = $1 AND responder_id = $2 AND status <> 'completed'
	`

	cmd, err := p.pool.Exec(ctx, query, alertID, responderID, status)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

// Complete marks the response finished and stores the outcome payload.
func (p *ResponseRepo) Complete(ctx context.Context, alertID, responderID uuid.UUID, outcome domain.Outcome) error {
	const op = "postgres.Response.Complete"

	const query = `
		UPDATE responses
		SET status = 'completed',
			called_ambulance = $3,
			person_okay = $4,
			naloxone_used = $5,
			notes = $6,
			updated_at = now()
		WHERE alert_id = $1 AND responder_id = $2 AND status <> 'completed'
	`

	cmd, err := p.pool.Exec(ctx, query,
		alertID, responderID,
		outcome.CalledAmbulance, outcome.PersonOkay, outcome.NaloxoneUsed, outcome.Notes,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}
