package ports

import (
	"context"
	"time"

	"foodtrace/contexts/identity-access/session-service/domain/entities"
	"foodtrace/internal/shared/roles"
)

// RegisteredParticipant is a directory record projected into this service's
// boundary for wallet login.
type RegisteredParticipant struct {
	WalletAddress string
	Role          roles.Role
	Name          string
	Email         string
	BusinessName  string
	RegisteredAt  time.Time
}

// ParticipantDirectory looks up registered identities by wallet address.
// The boolean is false when the address has no record.
type ParticipantDirectory interface {
	Lookup(ctx context.Context, address string) (RegisteredParticipant, bool, error)
}

// SessionStore persists the active session across process restarts.
// Load reports a malformed or missing persisted session as absent, never as
// an error.
type SessionStore interface {
	Load(ctx context.Context) (entities.Session, bool)
	Save(ctx context.Context, session entities.Session) error
	Clear(ctx context.Context) error
}

// Credential is one entry of the fixed demo credential set.
type Credential struct {
	Email    string
	Password string
	Role     roles.Role
	Name     string
}

type Clock interface {
	Now() time.Time
}
