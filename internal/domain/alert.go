package domain

import (
	"time"

	"github.com/google/uuid"
)

type AlertStatus string

const (
	AlertActive    AlertStatus = "active"
	AlertResponded AlertStatus = "responded"
	AlertResolved  AlertStatus = "resolved"
	AlertCancelled AlertStatus = "cancelled"

	// AlertFalseAlarm is a legacy terminal state still present in old rows.
	// It is never written by new code and reads as equivalent to cancelled.
	AlertFalseAlarm AlertStatus = "false_alarm"
)

func (s AlertStatus) Terminal() bool {
	switch s {
	case AlertResolved, AlertCancelled, AlertFalseAlarm:
		return true
	}
	return false
}

// CanTransition encodes the alert state machine. Terminal states never
// regress; false_alarm behaves like cancelled.
func (s AlertStatus) CanTransition(to AlertStatus) bool {
	if s.Terminal() {
		return false
	}
	switch s {
	case AlertActive:
		return to == AlertResponded || to == AlertResolved || to == AlertCancelled
	case AlertResponded:
		return to == AlertActive || to == AlertResolved || to == AlertCancelled
	}
	return false
}

// Alert is a live request for help. GeneralLocation is always visible;
// PreciseLocation only to committed responders.
type Alert struct {
	ID              uuid.UUID   `json:"id"`
	Origin          Origin      `json:"origin"`
	GeneralLocation string      `json:"general_location"`
	PreciseLocation string      `json:"precise_location,omitempty"`
	Status          AlertStatus `json:"status"`
	ResponderCount  int         `json:"responder_count"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// Redacted returns a copy safe for viewers who have not committed to the
// alert: the precise location is stripped.
func (a Alert) Redacted() Alert {
	a.PreciseLocation = ""
	return a
}
