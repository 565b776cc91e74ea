package application

import (
	"errors"
	"testing"

	domainerrors "foodtrace/contexts/identity-access/authorization-service/domain/errors"
	"foodtrace/contexts/identity-access/authorization-service/domain/services"
)

func TestCheckAllowsGrantedRole(t *testing.T) {
	decision, err := Service{}.Check("Farmer", "my-items")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !decision.Allowed {
		t.Fatalf("farmer must be allowed my-items")
	}
	if decision.Capability != services.CapabilityMyItems {
		t.Fatalf("unexpected capability %q", decision.Capability)
	}
}

func TestCheckDeniesAnonymousCallerWithoutError(t *testing.T) {
	decision, err := Service{}.Check("", "profile")
	if err != nil {
		t.Fatalf("anonymous check must not error, got %v", err)
	}
	if decision.Allowed {
		t.Fatalf("the anonymous caller must be denied")
	}
}

func TestCheckRejectsUnknownInputs(t *testing.T) {
	if _, err := (Service{}).Check("farmer", "teleport"); !errors.Is(err, domainerrors.ErrUnknownCapability) {
		t.Fatalf("expected ErrUnknownCapability, got %v", err)
	}
	if _, err := (Service{}).Check("auditor", "profile"); !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for a role outside the closed set, got %v", err)
	}
}
