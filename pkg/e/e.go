package e

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func Wrap(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}

var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInternal        = errors.New("internal error")
	ErrDeadline        = errors.New("deadline exceeded")
	ErrCanceled        = errors.New("context canceled")
	ErrUniqueViolation = errors.New("unique violation")
	ErrUnauthenticated = errors.New("must be authenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrTerminalState   = errors.New("alert is in a terminal state")
	ErrInvalidOrigin   = errors.New("exactly one of user_id or anonymous_id must be set")
	ErrQueueEmpty      = errors.New("notification queue is empty")
	ErrRPCUnavailable  = errors.New("stored procedure unavailable")
)

// WrapError maps store-level failures onto the package sentinels so callers
// can branch with errors.Is instead of inspecting pg error codes.
func WrapError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrDeadline)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, ErrCanceled)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%s: %w", op, ErrUniqueViolation)
		case "23503", "23514":
			return fmt.Errorf("%s: %w", op, ErrInvalidInput)
		case "42883":
			// undefined_function: the stored procedure is missing, callers
			// fall back to the plain query path.
			return fmt.Errorf("%s: %w", op, ErrRPCUnavailable)
		default:
			return fmt.Errorf("%s: pg error %s: %w", op, pgErr.Code, ErrInternal)
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, ErrInternal)
}

// Transient reports whether an error is worth retrying. Constraint
// violations, authorization failures and not-found are expected outcomes,
// not blips.
func Transient(err error) bool {
	if err == nil {
		return false
	}
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrConflict),
		errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrUniqueViolation),
		errors.Is(err, ErrUnauthenticated),
		errors.Is(err, ErrForbidden),
		errors.Is(err, ErrTerminalState),
		errors.Is(err, ErrInvalidOrigin),
		errors.Is(err, ErrRPCUnavailable),
		errors.Is(err, ErrCanceled),
		errors.Is(err, context.Canceled):
		return false
	}
	return true
}
