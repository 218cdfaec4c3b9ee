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

type AlertRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAlertRepo(pool *pgxpool.Pool, logger *slog.Logger) *AlertRepo {
	return &AlertRepo{pool: pool, logger: logger}
}

const alertColumns = `id, user_id, anonymous_id, general_location, precise_location,
	status, responder_count, created_at, updated_at`

func scanAlert(row pgx.Row, a *domain.Alert) error {
	return row.Scan(
		&a.ID,
		&a.Origin.UserID,
		&a.Origin.AnonymousID,
		&a.GeneralLocation,
		&a.PreciseLocation,
		&a.Status,
		&a.ResponderCount,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
}

// CreateWithNotification is the preferred creation path: the stored
// procedure inserts the row and the feed trigger emits the creation
// notification inside the same transaction.
func (p *AlertRepo) CreateWithNotification(ctx context.Context, alert *domain.Alert) error {
	const op = "postgres.Alert.CreateWithNotification"

	const query = `SELECT create_alert_with_notification($1, $2, $3, $4)`

	err := p.pool.QueryRow(ctx, query,
		alert.Origin.UserID,
		alert.Origin.AnonymousID,
		alert.GeneralLocation,
		alert.PreciseLocation,
	).Scan(&alert.ID)
	if err != nil {
		p.logger.Error("db rpc failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	alert.Status = domain.AlertActive
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now().UTC()
	}
	return nil
}

// Create is the plain-insert fallback used when the stored procedure is
// unavailable.
func (p *AlertRepo) Create(ctx context.Context, alert *domain.Alert) error {
	const op = "postgres.Alert.Create"

	const query = `
		INSERT INTO alerts (id, user_id, anonymous_id, general_location, precise_location, status)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if alert.ID == uuid.Nil {
		alert.ID = uuid.New()
	}
	if alert.Status == "" {
		alert.Status = domain.AlertActive
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		alert.ID,
		alert.Origin.UserID,
		alert.Origin.AnonymousID,
		alert.GeneralLocation,
		alert.PreciseLocation,
		alert.Status,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *AlertRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Alert, error) {
	const op = "postgres.Alert.Get"

	query := fmt.Sprintf(`SELECT %s FROM alerts WHERE id = $1`, alertColumns)

	var a domain.Alert
	if err := scanAlert(p.pool.QueryRow(ctx, query, id), &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &a, nil
}

// ListActive returns every non-terminal alert, newest first. The live sync
// layer replaces its snapshot wholesale with this result.
func (p *AlertRepo) ListActive(ctx context.Context) ([]domain.Alert, error) {
	const op = "postgres.Alert.ListActive"

	query := fmt.Sprintf(`
		SELECT %s FROM alerts
		WHERE status IN ('active','responded')
		ORDER BY created_at DESC
	`, alertColumns)

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var alerts []domain.Alert
	for rows.Next() {
		var a domain.Alert
		if err := scanAlert(rows, &a); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return alerts, nil
}

// UpdateStatus transitions an alert, refusing to touch terminal rows.
func (p *AlertRepo) UpdateStatus(ctx context.Context, id uuid.UUID, to domain.AlertStatus) error {
	const op = "postgres.Alert.UpdateStatus"

	const query = `
		UPDATE alerts
		SET status = $2, updated_at = now()
		WHERE id = $1 AND status IN ('active','responded')
	`

	cmd, err := p.pool.Exec(ctx, query, id, to)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		existing, err := p.Get(ctx, id)
		if err != nil {
			return err
		}
		if existing.Status.Terminal() {
			return fmt.Errorf("%s: %w", op, e.ErrTerminalState)
		}
		return fmt.Errorf("%s: %w", op, e.ErrConflict)
	}

	return nil
}

// UpdateLocation bumps updated_at so polling consumers can detect the
// change even without a push notification.
func (p *AlertRepo) UpdateLocation(ctx context.Context, id uuid.UUID, general, precise string) error {
	const op = "postgres.Alert.UpdateLocation"

	const query = `
		UPDATE alerts
		SET general_location = $2, precise_location = $3, updated_at = now()
		WHERE id = $1
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

// IncrementResponderCount bumps the denormalized count and performs the
// active->responded transition in one stored-procedure call.
func (p *AlertRepo) IncrementResponderCount(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Alert.IncrementResponderCount"

	if _, err := p.pool.Exec(ctx, `SELECT increment_responder_count($1)`, id); err != nil {
		p.logger.Error("db rpc failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// DecrementResponderCount recounts live responses and applies the
// responded->active correction when none remain.
func (p *AlertRepo) DecrementResponderCount(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Alert.DecrementResponderCount"

	if _, err := p.pool.Exec(ctx, `SELECT decrement_responder_count($1)`, id); err != nil {
		p.logger.Error("db rpc failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	return nil
}
