package domain_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/domain"
	"github.com/lolrip/Drewbert-Overdose-Response-Network/pkg/e"
)

func TestOrigin_Validate(t *testing.T) {
	t.Parallel()

	if err := domain.UserOrigin(uuid.New()).Validate(); err != nil {
		t.Fatalf("user origin should be valid: %v", err)
	}
	if err := domain.AnonymousOrigin("device-9").Validate(); err != nil {
		t.Fatalf("anonymous origin should be valid: %v", err)
	}

	if err := (domain.Origin{}).Validate(); !errors.Is(err, e.ErrInvalidOrigin) {
		t.Fatalf("empty origin must be invalid, got %v", err)
	}

	id := uuid.New()
	anon := "device-9"
	both := domain.Origin{UserID: &id, AnonymousID: &anon}
	if err := both.Validate(); !errors.Is(err, e.ErrInvalidOrigin) {
		t.Fatalf("origin with both identities must be invalid, got %v", err)
	}
}

func TestOrigin_Equal(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	if !domain.UserOrigin(id).Equal(domain.UserOrigin(id)) {
		t.Fatal("same user must be equal")
	}
	if domain.UserOrigin(id).Equal(domain.UserOrigin(uuid.New())) {
		t.Fatal("different users must not be equal")
	}
	if !domain.AnonymousOrigin("a").Equal(domain.AnonymousOrigin("a")) {
		t.Fatal("same device must be equal")
	}
	if domain.UserOrigin(id).Equal(domain.AnonymousOrigin("a")) {
		t.Fatal("user and anonymous origins must not be equal")
	}
}

func TestOrigin_Key(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	if got := domain.UserOrigin(id).Key(); got != id.String() {
		t.Fatalf("user key = %q, want %q", got, id.String())
	}
	if got := domain.AnonymousOrigin("device-1").Key(); got != "device-1" {
		t.Fatalf("anonymous key = %q", got)
	}
}
