package domain

import (
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
	SessionEmergency SessionStatus = "emergency"
)

func (s SessionStatus) Terminal() bool {
	return s == SessionCompleted || s == SessionEmergency
}

// MonitoringSession is a fixed-cadence safety check-in session for one
// person. At most one active session exists per origin.
type MonitoringSession struct {
	ID              uuid.UUID     `json:"id"`
	Origin          Origin        `json:"origin"`
	Status          SessionStatus `json:"status"`
	GeneralLocation string        `json:"general_location"`
	PreciseLocation string        `json:"precise_location,omitempty"`
	CheckInCount    int           `json:"check_in_count"`
	StartedAt       time.Time     `json:"started_at"`
	EndedAt         *time.Time    `json:"ended_at,omitempty"`
}
