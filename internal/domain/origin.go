package domain

import (
	"github.com/google/uuid"

	"github.com/lolrip/Drewbert-Overdose-Response-Network/pkg/e"
)

// Origin identifies who created a session or alert without requiring
// authentication: exactly one of UserID or AnonymousID is set.
type Origin struct {
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	AnonymousID *string    `json:"anonymous_id,omitempty"`
}

func UserOrigin(id uuid.UUID) Origin {
	return Origin{UserID: &id}
}

func AnonymousOrigin(id string) Origin {
	return Origin{AnonymousID: &id}
}

func (o Origin) Validate() error {
	hasUser := o.UserID != nil && *o.UserID != uuid.Nil
	hasAnon := o.AnonymousID != nil && *o.AnonymousID != ""
	if hasUser == hasAnon {
		return e.ErrInvalidOrigin
	}
	return nil
}

func (o Origin) Authenticated() bool {
	return o.UserID != nil && *o.UserID != uuid.Nil
}

func (o Origin) Equal(other Origin) bool {
	if o.UserID != nil && other.UserID != nil {
		return *o.UserID == *other.UserID
	}
	if o.AnonymousID != nil && other.AnonymousID != nil {
		return *o.AnonymousID == *other.AnonymousID
	}
	return false
}

// Key returns a stable string for the origin, used for the one-active-session
// uniqueness scope.
func (o Origin) Key() string {
	if o.UserID != nil {
		return o.UserID.String()
	}
	if o.AnonymousID != nil {
		return *o.AnonymousID
	}
	return ""
}
