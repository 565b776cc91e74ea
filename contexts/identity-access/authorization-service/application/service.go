package application

import (
	"log/slog"
	"strings"

	domainerrors "foodtrace/contexts/identity-access/authorization-service/domain/errors"
	"foodtrace/contexts/identity-access/authorization-service/domain/services"
	"foodtrace/internal/shared/roles"
)

// Decision is the outcome of a single access check.
type Decision struct {
	Role       roles.Role
	Capability services.Capability
	Allowed    bool
}

type Service struct {
	Logger *slog.Logger
}

// Check evaluates a capability for a caller. An empty role is the anonymous
// caller and is always denied; a non-empty role must parse.
func (s Service) Check(rawRole, rawCapability string) (Decision, error) {
	capability, known := services.ParseCapability(rawCapability)
	if !known {
		return Decision{}, domainerrors.ErrUnknownCapability
	}

	if strings.TrimSpace(rawRole) == "" {
		return Decision{Capability: capability, Allowed: false}, nil
	}

	role, ok := roles.Parse(rawRole)
	if !ok {
		return Decision{}, domainerrors.ErrInvalidRequest
	}

	decision := Decision{
		Role:       role,
		Capability: capability,
		Allowed:    services.CanAccess(role, capability),
	}
	ResolveLogger(s.Logger).Debug("access check evaluated",
		"event", "access_check_evaluated",
		"module", "identity-access/authorization-service",
		"layer", "application",
		"role", role.String(),
		"capability", string(capability),
		"allowed", decision.Allowed,
	)
	return decision, nil
}

// Capabilities lists every capability the role may use.
func (s Service) Capabilities(role roles.Role) []services.Capability {
	return services.Capabilities(role)
}
