package ports

import (
	"context"
	"time"

	"foodtrace/contexts/identity-access/directory-service/domain/entities"
)

// Repository persists participant records keyed by normalized wallet
// address. Upsert must be atomic per address: two concurrent registrations
// for one address resolve to one of them, never a torn record.
type Repository interface {
	Upsert(ctx context.Context, record entities.ParticipantRecord) error
	Lookup(ctx context.Context, address string) (entities.ParticipantRecord, error)
	List(ctx context.Context) ([]entities.ParticipantRecord, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// ParticipantRegisteredEvent announces directory changes so item timelines
// can be re-enriched.
type ParticipantRegisteredEvent struct {
	EventID       string
	WalletAddress string
	Role          string
	Registered    int
	OccurredAt    time.Time
}

type EventPublisher interface {
	PublishParticipantRegistered(ctx context.Context, event ParticipantRegisteredEvent) error
}
