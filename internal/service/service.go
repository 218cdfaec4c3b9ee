package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// Store-side dependencies of the services. The atomic stored-procedure
// calls and their plain-query fallbacks are both part of the contract.

type AlertRepository interface {
	CreateWithNotification(ctx context.Context, alert *domain.Alert) error
	Create(ctx context.Context, alert *domain.Alert) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Alert, error)
	ListActive(ctx context.Context) ([]domain.Alert, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, to domain.AlertStatus) error
	UpdateLocation(ctx context.Context, id uuid.UUID, general, precise string) error
	IncrementResponderCount(ctx context.Context, id uuid.UUID) error
	DecrementResponderCount(ctx context.Context, id uuid.UUID) error
}

type ResponseRepository interface {
	CreateSafe(ctx context.Context, alertID, responderID uuid.UUID, status domain.ResponseStatus) (uuid.UUID, bool, error)
	Create(ctx context.Context, r *domain.Response) error
	Get(ctx context.Context, alertID, responderID uuid.UUID) (*domain.Response, error)
	ListLive(ctx context.Context) ([]domain.Response, error)
	CancelSafe(ctx context.Context, alertID, responderID uuid.UUID, reason, detail string) (bool, error)
	Delete(ctx context.Context, alertID, responderID uuid.UUID) (bool, error)
	RecordCancellation(ctx context.Context, c *domain.Cancellation) error
	CountCommitted(ctx context.Context, alertID uuid.UUID) (int, error)
	SetCount(ctx context.Context, alertID uuid.UUID, count int) error
	UpdateStatus(ctx context.Context, alertID, responderID uuid.UUID, status domain.ResponseStatus) error
	Complete(ctx context.Context, alertID, responderID uuid.UUID, outcome domain.Outcome) error
}

type SessionRepository interface {
	Create(ctx context.Context, s *domain.MonitoringSession) error
	CloseActiveFor(ctx context.Context, origin domain.Origin) error
	Get(ctx context.Context, id uuid.UUID) (*domain.MonitoringSession, error)
	IncrementCheckIn(ctx context.Context, id uuid.UUID) (int, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, general, precise string) error
	EndSafe(ctx context.Context, id uuid.UUID, status domain.SessionStatus) error
}

type ProfileRepository interface {
	Heartbeat(ctx context.Context, userID uuid.UUID) error
	Get(ctx context.Context, userID uuid.UUID) (*domain.ResponderProfile, error)
	SetRoles(ctx context.Context, userID uuid.UUID, isResponder, isAdmin bool) error
}

type StatsRepository interface {
	AlertStats(ctx context.Context) (*domain.AlertStats, error)
}

type NotifyQueue interface {
	Enqueue(ctx context.Context, payload domain.AlertNotification) error
}

type StatsCache interface {
	Get(ctx context.Context) (*domain.AlertStats, error)
	Set(ctx context.Context, stats *domain.AlertStats, ttl time.Duration) error
}

// Use-case surfaces exposed to the API layer.

type LifecycleService interface {
	StartSession(ctx context.Context, origin domain.Origin, req domain.StartSessionRequest) (*domain.MonitoringSession, error)
	CheckIn(ctx context.Context, sessionID uuid.UUID, origin domain.Origin) (int, error)
	UpdateSessionLocation(ctx context.Context, sessionID uuid.UUID, origin domain.Origin, req domain.UpdateLocationRequest) error
	EndSession(ctx context.Context, sessionID uuid.UUID, origin domain.Origin) error
	CreateAlert(ctx context.Context, origin domain.Origin, req domain.CreateAlertRequest) (*domain.Alert, error)
	UpdateAlertLocation(ctx context.Context, alertID uuid.UUID, origin domain.Origin, req domain.UpdateLocationRequest) error
	CancelAlert(ctx context.Context, alertID uuid.UUID, origin domain.Origin) error
}

type CommitmentService interface {
	Commit(ctx context.Context, alertID, responderID uuid.UUID) (*domain.Response, error)
	UpdateProgress(ctx context.Context, alertID, responderID uuid.UUID, status domain.ResponseStatus) error
	Cancel(ctx context.Context, alertID, responderID uuid.UUID, reason, detail string) (bool, error)
	EndResponse(ctx context.Context, alertID, responderID uuid.UUID, outcome domain.Outcome) error
}

type StatsService interface {
	GetStats(ctx context.Context) (*domain.AlertStats, error)
	Refresh(ctx context.Context) error
}

type ProfileService interface {
	Heartbeat(ctx context.Context, userID uuid.UUID) error
	SetRoles(ctx context.Context, userID uuid.UUID, req domain.SetRolesRequest) error
}

type Service struct {
	Lifecycle  LifecycleService
	Commitment CommitmentService
	Stats      StatsService
	Profiles   ProfileService
}

func NewService(
	lifecycle LifecycleService,
	commitment CommitmentService,
	stats StatsService,
	profiles ProfileService,
) *Service {
	return &Service{
		Lifecycle:  lifecycle,
		Commitment: commitment,
		Stats:      stats,
		Profiles:   profiles,
	}
}
