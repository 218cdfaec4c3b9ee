package domain

import (
	"time"

	"github.com/google/uuid"
)

type ResponseStatus string

const (
	ResponseCommitted ResponseStatus = "committed"
	ResponseEnRoute   ResponseStatus = "en_route"
	ResponseArrived   ResponseStatus = "arrived"
	ResponseCompleted ResponseStatus = "completed"
)

// Committed reports whether the response still counts towards
// alert.responder_count.
func (s ResponseStatus) Committed() bool {
	switch s {
	case ResponseCommitted, ResponseEnRoute, ResponseArrived:
		return true
	}
	return false
}

// Response is one responder's commitment to one alert. At most one row
// exists per (alert, responder) pair, enforced by a uniqueness constraint.
type Response struct {
	ID          uuid.UUID      `json:"id"`
	AlertID     uuid.UUID      `json:"alert_id"`
	ResponderID uuid.UUID      `json:"responder_id"`
	Status      ResponseStatus `json:"status"`
	Outcome     *Outcome       `json:"outcome,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Outcome captures what happened when a responder completed their response.
type Outcome struct {
	CalledAmbulance bool   `json:"called_ambulance"`
	PersonOkay      bool   `json:"person_okay"`
	NaloxoneUsed    bool   `json:"naloxone_used"`
	Notes           string `json:"notes,omitempty"`
}

// Cancellation is the analytics side-record kept when a response is removed.
type Cancellation struct {
	ID          uuid.UUID `json:"id"`
	AlertID     uuid.UUID `json:"alert_id"`
	ResponderID uuid.UUID `json:"responder_id"`
	Reason      string    `json:"reason"`
	Detail      string    `json:"detail,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
