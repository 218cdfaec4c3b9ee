package domain

import "github.com/google/uuid"

// AlertStats is a point-in-time aggregation computed at the store, immune
// to the client-side race of combining independent queries.
type AlertStats struct {
	ActiveResponders    int64               `json:"active_responders"`
	CommittedResponders int64               `json:"committed_responders"`
	AlertCommitments    map[uuid.UUID]int64 `json:"alert_commitments"`
}
