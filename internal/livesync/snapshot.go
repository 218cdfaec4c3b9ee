package livesync

import (
	"time"

	"github.com/google/uuid"

	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/domain"
)

// Snapshot is the consumer-visible view: the full current set of
// non-terminal alerts, live commitments grouped by responder, and the
// latest stats. Each reconciliation replaces it wholesale, no incremental
// patching, no merge conflicts.
type Snapshot struct {
	Alerts      []domain.Alert                  `json:"alerts"`
	Commitments map[uuid.UUID][]domain.Response `json:"commitments"`
	Stats       *domain.AlertStats              `json:"stats,omitempty"`
	Status      Status                          `json:"status"`
	FetchedAt   time.Time                       `json:"fetched_at"`
}

// CommitmentsFor returns the viewer's own live responses.
func (s Snapshot) CommitmentsFor(responderID uuid.UUID) []domain.Response {
	return s.Commitments[responderID]
}

// AlertsFor redacts precise locations the viewer is not entitled to see:
// committed responders get the full row, everyone else the general
// location only.
func (s Snapshot) AlertsFor(responderID uuid.UUID) []domain.Alert {
	committed := make(map[uuid.UUID]bool)
	for _, r := range s.Commitments[responderID] {
		committed[r.AlertID] = true
	}

	out := make([]domain.Alert, 0, len(s.Alerts))
	for _, a := range s.Alerts {
		if committed[a.ID] || (a.Origin.UserID != nil && *a.Origin.UserID == responderID) {
			out = append(out, a)
			continue
		}
		out = append(out, a.Redacted())
	}
	return out
}

func groupByResponder(responses []domain.Response) map[uuid.UUID][]domain.Response {
	grouped := make(map[uuid.UUID][]domain.Response)
	for _, r := range responses {
		grouped[r.ResponderID] = append(grouped[r.ResponderID], r)
	}
	return grouped
}
