package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/domain"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/pkg/e"
)

type profileService struct {
	profiles ProfileRepository
}

func NewProfileService(profiles ProfileRepository) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Heartbeat(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return e.ErrUnauthenticated
	}
	return s.profiles.Heartbeat(ctx, userID)
}

func (s *profileService) SetRoles(ctx context.Context, userID uuid.UUID, req domain.SetRolesRequest) error {
	if userID == uuid.Nil {
		return e.ErrInvalidInput
	}
	return s.profiles.SetRoles(ctx, userID, req.IsResponder, req.IsAdmin)
}
