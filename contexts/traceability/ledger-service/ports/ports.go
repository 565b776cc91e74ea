package ports

import (
	"context"
	"time"

	"foodtrace/contexts/traceability/ledger-service/domain/entities"
)

// LedgerConnector is the consumed boundary to the external ledger. The
// contract's state-mutating operations are out of scope; this client only
// reads resulting state.
type LedgerConnector interface {
	// NetworkID identifies the connected chain.
	NetworkID(ctx context.Context) (uint64, error)
	// CodeExistsAt reports whether deployed code exists at the ledger address.
	CodeExistsAt(ctx context.Context, address string) (bool, error)
	// ItemCount returns the highest assigned SKU index.
	ItemCount(ctx context.Context) (uint64, error)
	// FetchItem returns the raw record at a 1-based index, failing for
	// invalid or out-of-range indices.
	FetchItem(ctx context.Context, index uint64) (entities.RawItem, error)
}

// IdentityResolver enriches timeline events with off-ledger identities.
// A miss is reported through the boolean, never as an error.
type IdentityResolver interface {
	Resolve(ctx context.Context, address string) (entities.Identity, bool)
}

type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
