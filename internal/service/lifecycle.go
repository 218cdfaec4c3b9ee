package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/domain"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/pkg/e"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/pkg/retry"
)

type lifecycleService struct {
	alerts   AlertRepository
	sessions SessionRepository
	notify   NotifyQueue
	logger   *slog.Logger
	policy   retry.Policy

	// pause before the single close-then-insert retry when session
	// creation races another instance of the same origin
	uniqueRetryDelay time.Duration
}

func NewLifecycleService(
	alerts AlertRepository,
	sessions SessionRepository,
	notify NotifyQueue,
	logger *slog.Logger,
	policy retry.Policy,
) LifecycleService {
	return &lifecycleService{
		alerts:           alerts,
		sessions:         sessions,
		notify:           notify,
		logger:           logger,
		policy:           policy,
		uniqueRetryDelay: 250 * time.Millisecond,
	}
}

// StartSession proactively completes any active session of the origin, then
// inserts the new one. Close-then-insert is a race-prone two-step, so a
// uniqueness violation gets one more close+insert attempt after a short
// delay before surfacing as fatal.
func (s *lifecycleService) StartSession(ctx context.Context, origin domain.Origin, req domain.StartSessionRequest) (*domain.MonitoringSession, error) {
	const op = "service.Lifecycle.StartSession"

	if err := origin.Validate(); err != nil {
		return nil, e.Wrap(op, err)
	}

	session := &domain.MonitoringSession{
		ID:              uuid.New(),
		Origin:          origin,
		Status:          domain.SessionActive,
		GeneralLocation: req.GeneralLocation,
		PreciseLocation: req.PreciseLocation,
	}

	for attempt := 1; ; attempt++ {
		if err := s.sessions.CloseActiveFor(ctx, origin); err != nil {
			return nil, err
		}
		err := s.sessions.Create(ctx, session)
		if err == nil {
			s.logger.Info("monitoring session started",
				slog.String("session_id", session.ID.String()),
				slog.String("origin", origin.Key()))
			return session, nil
		}
		if !errors.Is(err, e.ErrUniqueViolation) || attempt >= 2 {
			s.logger.Error("session create failed", slog.String("op", op), slog.Any("error", err))
			return nil, err
		}

		s.logger.Warn("active session raced, retrying close+insert",
			slog.String("origin", origin.Key()))
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.uniqueRetryDelay):
		}
	}
}

// ownedSession loads the session and enforces the originator-only policy,
// the same check alerts apply in UpdateAlertLocation and CancelAlert.
func (s *lifecycleService) ownedSession(ctx context.Context, op string, sessionID uuid.UUID, origin domain.Origin) error {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if !session.Origin.Equal(origin) {
		return e.Wrap(op, e.ErrForbidden)
	}
	return nil
}

func (s *lifecycleService) CheckIn(ctx context.Context, sessionID uuid.UUID, origin domain.Origin) (int, error) {
	const op = "service.Lifecycle.CheckIn"

	if err := s.ownedSession(ctx, op, sessionID, origin); err != nil {
		return 0, err
	}
	return s.sessions.IncrementCheckIn(ctx, sessionID)
}

func (s *lifecycleService) UpdateSessionLocation(ctx context.Context, sessionID uuid.UUID, origin domain.Origin, req domain.UpdateLocationRequest) error {
	const op = "service.Lifecycle.UpdateSessionLocation"

	if err := s.ownedSession(ctx, op, sessionID, origin); err != nil {
		return err
	}
	return s.sessions.UpdateLocation(ctx, sessionID, req.GeneralLocation, req.PreciseLocation)
}

// EndSession is idempotent: the stored procedure only touches sessions whose
// ended_at is still null, so a late duplicate call is a no-op.
func (s *lifecycleService) EndSession(ctx context.Context, sessionID uuid.UUID, origin domain.Origin) error {
	const op = "service.Lifecycle.EndSession"

	if err := s.ownedSession(ctx, op, sessionID, origin); err != nil {
		return err
	}
	return s.sessions.EndSafe(ctx, sessionID, domain.SessionCompleted)
}

// CreateAlert prefers the atomic insert+notify stored procedure; when it is
// unavailable or errors it falls back to a plain insert under the bounded
// retry policy. An originating session is escalated to emergency as part of
// the same logical operation, tolerating a not-yet-updated session since
// its terminal state is not read for correctness elsewhere.
func (s *lifecycleService) CreateAlert(ctx context.Context, origin domain.Origin, req domain.CreateAlertRequest) (*domain.Alert, error) {
	const op = "service.Lifecycle.CreateAlert"

	if err := origin.Validate(); err != nil {
		return nil, e.Wrap(op, err)
	}

	alert := &domain.Alert{
		Origin:          origin,
		GeneralLocation: req.GeneralLocation,
		PreciseLocation: req.PreciseLocation,
		Status:          domain.AlertActive,
	}

	if err := s.alerts.CreateWithNotification(ctx, alert); err != nil {
		s.logger.Warn("create_alert_with_notification failed, falling back to plain insert",
			slog.String("op", op), slog.Any("error", err))
		alert.ID = uuid.Nil
		createErr := s.policy.Do(ctx, func(ctx context.Context) error {
			return s.alerts.Create(ctx, alert)
		})
		if createErr != nil {
			return nil, createErr
		}
	}

	if req.SessionID != nil {
		if err := s.sessions.EndSafe(ctx, *req.SessionID, domain.SessionEmergency); err != nil {
			// alert exists either way; the session self-corrects on resync
			s.logger.Warn("session escalation lagging behind alert",
				slog.String("session_id", req.SessionID.String()),
				slog.Any("error", err))
		}
	}

	if s.notify != nil {
		payload := domain.AlertNotification{
			AlertID:         alert.ID,
			GeneralLocation: alert.GeneralLocation,
			CreatedAt:       time.Now().UTC(),
		}
		if err := s.notify.Enqueue(ctx, payload); err != nil {
			s.logger.Error("enqueue alert notification failed", slog.Any("error", err))
		}
	}

	s.logger.Info("alert created",
		slog.String("alert_id", alert.ID.String()),
		slog.Bool("escalated", req.SessionID != nil))
	return alert, nil
}

func (s *lifecycleService) UpdateAlertLocation(ctx context.Context, alertID uuid.UUID, origin domain.Origin, req domain.UpdateLocationRequest) error {
	const op = "service.Lifecycle.UpdateAlertLocation"

	alert, err := s.alerts.Get(ctx, alertID)
	if err != nil {
		return err
	}
	if !alert.Origin.Equal(origin) {
		return e.Wrap(op, e.ErrForbidden)
	}
	return s.alerts.UpdateLocation(ctx, alertID, req.GeneralLocation, req.PreciseLocation)
}

// CancelAlert is authorized only for the alert's own originator. Responses
// are left untouched: a responder may still be en route when the requester
// self-cancels, which the presentation layer handles.
func (s *lifecycleService) CancelAlert(ctx context.Context, alertID uuid.UUID, origin domain.Origin) error {
	const op = "service.Lifecycle.CancelAlert"

	alert, err := s.alerts.Get(ctx, alertID)
	if err != nil {
		return err
	}
	if !alert.Origin.Equal(origin) {
		return e.Wrap(op, e.ErrForbidden)
	}
	return s.alerts.UpdateStatus(ctx, alertID, domain.AlertCancelled)
}
