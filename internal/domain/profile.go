package domain

import (
	"time"

	"github.com/google/uuid"
)

// ResponderProfile extends an identity with responder/admin flags and a
// last-seen heartbeat used for the online-responder count.
type ResponderProfile struct {
	UserID      uuid.UUID `json:"user_id"`
	IsResponder bool      `json:"is_responder"`
	IsAdmin     bool      `json:"is_admin"`
	LastSeenAt  time.Time `json:"last_seen_at"`
}
