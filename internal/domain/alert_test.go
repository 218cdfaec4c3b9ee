package domain_test

import (
	"testing"

	"github.com/google/uuid"

	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/domain"
)

func TestAlertStatus_Terminal(t *testing.T) {
	t.Parallel()

	terminal := []domain.AlertStatus{domain.AlertResolved, domain.AlertCancelled, domain.AlertFalseAlarm}
	for _, s := range terminal {
		if !s.Terminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range []domain.AlertStatus{domain.AlertActive, domain.AlertResponded} {
		if s.Terminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}

func TestAlertStatus_CanTransition(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from, to domain.AlertStatus
		want     bool
	}{
		{domain.AlertActive, domain.AlertResponded, true},
		{domain.AlertActive, domain.AlertResolved, true},
		{domain.AlertActive, domain.AlertCancelled, true},
		{domain.AlertResponded, domain.AlertActive, true}, // last responder abandoned
		{domain.AlertResponded, domain.AlertResolved, true},
		{domain.AlertResponded, domain.AlertCancelled, true},
		{domain.AlertResolved, domain.AlertActive, false},
		{domain.AlertCancelled, domain.AlertResponded, false},
		{domain.AlertFalseAlarm, domain.AlertActive, false},
		{domain.AlertActive, domain.AlertActive, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransition(tc.to); got != tc.want {
			t.Errorf("CanTransition(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestAlert_RedactedStripsPreciseLocation(t *testing.T) {
	t.Parallel()

	a := domain.Alert{
		ID:              uuid.New(),
		GeneralLocation: "Near the park",
		PreciseLocation: "Blue house, back entrance",
	}

	r := a.Redacted()
	if r.PreciseLocation != "" {
		t.Fatalf("precise location leaked: %q", r.PreciseLocation)
	}
	if r.GeneralLocation != a.GeneralLocation || r.ID != a.ID {
		t.Fatalf("redaction altered unrelated fields: %+v", r)
	}
	if a.PreciseLocation == "" {
		t.Fatal("Redacted must not mutate the receiver")
	}
}

func TestResponseStatus_Committed(t *testing.T) {
	t.Parallel()

	for _, s := range []domain.ResponseStatus{domain.ResponseCommitted, domain.ResponseEnRoute, domain.ResponseArrived} {
		if !s.Committed() {
			t.Errorf("%s should count as committed", s)
		}
	}
	if domain.ResponseCompleted.Committed() {
		t.Error("completed must not count as committed")
	}
}
