package domain

import (
	"time"

	"github.com/google/uuid"
)

type ChangeOp string

const (
	OpInsert ChangeOp = "INSERT"
	OpUpdate ChangeOp = "UPDATE"
	OpDelete ChangeOp = "DELETE"
)

// ChangeEvent is one row-level notification from the store's change feed.
// The payload is a hint, not a snapshot: consumers refetch on receipt.
type ChangeEvent struct {
	Table   string    `json:"table"`
	Op      ChangeOp  `json:"op"`
	RowID   uuid.UUID `json:"id"`
	Changed []string  `json:"changed,omitempty"`
	At      time.Time `json:"at"`
}

// AlertNotification is the payload queued for the outbound on-call webhook
// when a new alert is created.
type AlertNotification struct {
	AlertID         uuid.UUID `json:"alert_id"`
	GeneralLocation string    `json:"general_location"`
	CreatedAt       time.Time `json:"created_at"`
}
