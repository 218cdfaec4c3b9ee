package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/domain"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/pkg/e"
)

// Abandonment policy, applied uniformly here and in the store-side
// cancel_response_safe procedure: when the last committed responder
// cancels, the alert reverts to active, because the originator never
// cancelled it and help may still be needed. Only the originator's own
// cancellation moves an alert to cancelled.

type commitmentService struct {
	alerts    AlertRepository
	responses ResponseRepository
	logger    *slog.Logger
}

func NewCommitmentService(alerts AlertRepository, responses ResponseRepository, logger *slog.Logger) CommitmentService {
	return &commitmentService{alerts: alerts, responses: responses, logger: logger}
}

// Commit records the responder's commitment. Idempotent: an existing
// (alert, responder) row is returned as success with no second increment.
// The increment never rolls back the insert: an under-counted alert is a
// valid state that the next full resync heals.
func (s *commitmentService) Commit(ctx context.Context, alertID, responderID uuid.UUID) (*domain.Response, error) {
	const op = "service.Commitment.Commit"

	if responderID == uuid.Nil {
		return nil, e.Wrap(op, e.ErrUnauthenticated)
	}

	existing, err := s.responses.Get(ctx, alertID, responderID)
	if err == nil {
		s.logger.Debug("re-commit treated as success",
			slog.String("alert_id", alertID.String()),
			slog.String("responder_id", responderID.String()))
		return existing, nil
	}
	if !errors.Is(err, e.ErrNotFound) {
		return nil, err
	}

	alert, err := s.alerts.Get(ctx, alertID)
	if err != nil {
		return nil, err
	}
	if alert.Status.Terminal() {
		return nil, e.Wrap(op, e.ErrTerminalState)
	}

	id, created, err := s.responses.CreateSafe(ctx, alertID, responderID, domain.ResponseCommitted)
	if err != nil {
		if !errors.Is(err, e.ErrRPCUnavailable) {
			return nil, err
		}
		created, err = s.createFallback(ctx, alertID, responderID)
		if err != nil {
			return nil, err
		}
		id = uuid.Nil // fetched below
	}
	if !created {
		// lost the race to ourselves: the row and its increment already
		// happened on the winning request
		return s.responses.Get(ctx, alertID, responderID)
	}

	if err := s.alerts.IncrementResponderCount(ctx, alertID); err != nil {
		// response row stays: under-counted but valid, heals on resync
		s.logger.Error("responder count increment failed after commit",
			slog.String("alert_id", alertID.String()),
			slog.Any("error", err))
		return nil, err
	}

	s.logger.Info("responder committed",
		slog.String("alert_id", alertID.String()),
		slog.String("responder_id", responderID.String()))

	if id != uuid.Nil {
		return &domain.Response{
			ID:          id,
			AlertID:     alertID,
			ResponderID: responderID,
			Status:      domain.ResponseCommitted,
		}, nil
	}
	return s.responses.Get(ctx, alertID, responderID)
}

// createFallback is the plain-insert path; the uniqueness constraint turns
// a concurrent duplicate into success. Returns whether this call created
// the row.
func (s *commitmentService) createFallback(ctx context.Context, alertID, responderID uuid.UUID) (bool, error) {
	err := s.responses.Create(ctx, &domain.Response{
		AlertID:     alertID,
		ResponderID: responderID,
		Status:      domain.ResponseCommitted,
	})
	if err == nil {
		return true, nil
	}
	if errors.Is(err, e.ErrUniqueViolation) {
		return false, nil
	}
	return false, err
}

func (s *commitmentService) UpdateProgress(ctx context.Context, alertID, responderID uuid.UUID, status domain.ResponseStatus) error {
	const op = "service.Commitment.UpdateProgress"

	if !status.Committed() {
		return e.Wrap(op, e.ErrInvalidInput)
	}
	return s.responses.UpdateStatus(ctx, alertID, responderID, status)
}

// Cancel removes the responder's commitment. The atomic procedure deletes
// the row, records the reason, recounts and applies the abandonment policy
// in one transaction; its absence degrades to the sequential fallback,
// whose transient inconsistency is an accepted trade-off healed by resync.
// Cancelling an already-gone response returns (false, nil), never an error.
func (s *commitmentService) Cancel(ctx context.Context, alertID, responderID uuid.UUID, reason, detail string) (bool, error) {
	if responderID == uuid.Nil {
		return false, e.ErrUnauthenticated
	}

	removed, err := s.responses.CancelSafe(ctx, alertID, responderID, reason, detail)
	if err == nil {
		if removed {
			s.logger.Info("response cancelled",
				slog.String("alert_id", alertID.String()),
				slog.String("responder_id", responderID.String()),
				slog.String("reason", reason))
		}
		return removed, nil
	}
	if !errors.Is(err, e.ErrRPCUnavailable) {
		return false, err
	}

	return s.cancelFallback(ctx, alertID, responderID, reason, detail)
}

func (s *commitmentService) cancelFallback(ctx context.Context, alertID, responderID uuid.UUID, reason, detail string) (bool, error) {
	removed, err := s.responses.Delete(ctx, alertID, responderID)
	if err != nil {
		return false, err
	}
	if !removed {
		return false, nil
	}

	// the reason is recorded on both paths; analytics loss is not worth
	// failing the cancellation over
	if err := s.responses.RecordCancellation(ctx, &domain.Cancellation{
		AlertID:     alertID,
		ResponderID: responderID,
		Reason:      reason,
		Detail:      detail,
	}); err != nil {
		s.logger.Error("cancellation audit record failed", slog.Any("error", err))
	}

	live, err := s.responses.CountCommitted(ctx, alertID)
	if err != nil {
		return true, err
	}
	if err := s.responses.SetCount(ctx, alertID, live); err != nil {
		return true, err
	}

	if live == 0 {
		alert, err := s.alerts.Get(ctx, alertID)
		if err != nil {
			return true, err
		}
		if alert.Status == domain.AlertResponded {
			if err := s.alerts.UpdateStatus(ctx, alertID, domain.AlertActive); err != nil {
				return true, err
			}
		}
	}
	return true, nil
}

// EndResponse completes the responder's involvement with the outcome
// payload and resolves the alert, regardless of other responders.
func (s *commitmentService) EndResponse(ctx context.Context, alertID, responderID uuid.UUID, outcome domain.Outcome) error {
	if responderID == uuid.Nil {
		return e.ErrUnauthenticated
	}

	if err := s.responses.Complete(ctx, alertID, responderID, outcome); err != nil {
		return err
	}

	// a completed response no longer counts as live
	if err := s.alerts.DecrementResponderCount(ctx, alertID); err != nil {
		s.logger.Warn("responder recount failed after completion",
			slog.String("alert_id", alertID.String()),
			slog.Any("error", err))
	}

	if err := s.alerts.UpdateStatus(ctx, alertID, domain.AlertResolved); err != nil {
		// already terminal is fine: someone else resolved or the
		// originator cancelled while we were completing
		if errors.Is(err, e.ErrTerminalState) {
			return nil
		}
		return err
	}

	s.logger.Info("response completed, alert resolved",
		slog.String("alert_id", alertID.String()),
		slog.String("responder_id", responderID.String()),
		slog.Bool("naloxone_used", outcome.NaloxoneUsed))
	return nil
}
