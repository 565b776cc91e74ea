package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"foodtrace/contexts/traceability/ledger-service/domain/entities"
	domainerrors "foodtrace/contexts/traceability/ledger-service/domain/errors"
	"foodtrace/contexts/traceability/ledger-service/domain/services"
	"foodtrace/contexts/traceability/ledger-service/ports"
)

// Service runs refresh cycles against the ledger connector.
type Service struct {
	Ledger            ports.LedgerConnector
	Identities        ports.IdentityResolver
	Clock             ports.Clock
	ExpectedNetworkID uint64
	LedgerAddress     string

	// FetchTimeout bounds every connector call. A timeout during the
	// precondition checks is fatal for the cycle; during an item fetch it is
	// that index's recoverable failure.
	FetchTimeout time.Duration

	Logger *slog.Logger
}

// RefreshResult is one completed refresh cycle. FailedIndices lists indices
// dropped by per-item fault isolation; they are retried only by a later
// cycle.
type RefreshResult struct {
	Items         []entities.TrackedItem
	FailedIndices []uint64
	ItemCount     uint64
	RefreshedAt   time.Time
}

// Refresh scans indices 1..N sequentially and synthesizes enriched items.
// A precondition violation (wrong network, no deployed code) aborts the whole
// cycle before any index is attempted; a single index's failure is logged and
// skipped.
func (s Service) Refresh(ctx context.Context) (RefreshResult, error) {
	logger := ResolveLogger(s.Logger)

	if err := s.checkPreconditions(ctx); err != nil {
		return RefreshResult{}, err
	}

	count, err := s.itemCount(ctx)
	if err != nil {
		return RefreshResult{}, fmt.Errorf("%w: read item count: %v", domainerrors.ErrLedgerUnavailable, err)
	}

	now := s.now()
	result := RefreshResult{ItemCount: count, RefreshedAt: now}
	if count == 0 {
		return result, nil
	}

	resolve := func(address string) (entities.Identity, bool) {
		if s.Identities == nil {
			return entities.Identity{}, false
		}
		return s.Identities.Resolve(ctx, address)
	}

	for index := uint64(1); index <= count; index++ {
		raw, err := s.fetchItem(ctx, index)
		if err != nil {
			if ctx.Err() != nil {
				return RefreshResult{}, ctx.Err()
			}
			logger.Warn("item fetch failed, skipping index",
				"event", "ledger_item_fetch_failed",
				"module", "traceability/ledger-service",
				"layer", "application",
				"index", index,
				"error", err.Error(),
			)
			result.FailedIndices = append(result.FailedIndices, index)
			continue
		}

		item := services.Synthesize(raw, index, count, now, resolve)
		result.Items = append(result.Items, item)
	}

	logger.Info("refresh cycle completed",
		"event", "ledger_refresh_completed",
		"module", "traceability/ledger-service",
		"layer", "application",
		"item_count", count,
		"fetched", len(result.Items),
		"failed", len(result.FailedIndices),
	)
	return result, nil
}

func (s Service) checkPreconditions(ctx context.Context) error {
	callCtx, cancel := s.callContext(ctx)
	networkID, err := s.Ledger.NetworkID(callCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("%w: read network id: %v", domainerrors.ErrLedgerUnavailable, err)
	}
	if networkID != s.ExpectedNetworkID {
		return fmt.Errorf("%w: connected to chain %d, expected %d",
			domainerrors.ErrNetworkMismatch, networkID, s.ExpectedNetworkID)
	}

	callCtx, cancel = s.callContext(ctx)
	exists, err := s.Ledger.CodeExistsAt(callCtx, s.LedgerAddress)
	cancel()
	if err != nil {
		return fmt.Errorf("%w: read ledger code: %v", domainerrors.ErrLedgerUnavailable, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", domainerrors.ErrNoLedgerCode, s.LedgerAddress)
	}
	return nil
}

func (s Service) itemCount(ctx context.Context) (uint64, error) {
	callCtx, cancel := s.callContext(ctx)
	defer cancel()
	return s.Ledger.ItemCount(callCtx)
}

func (s Service) fetchItem(ctx context.Context, index uint64) (entities.RawItem, error) {
	callCtx, cancel := s.callContext(ctx)
	defer cancel()
	return s.Ledger.FetchItem(callCtx, index)
}

func (s Service) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := s.FetchTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
