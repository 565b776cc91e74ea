package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodtrace/contexts/traceability/ledger-service/adapters/memory"
	"foodtrace/contexts/traceability/ledger-service/domain/entities"
	domainerrors "foodtrace/contexts/traceability/ledger-service/domain/errors"
)

const testLedgerAddr = "0x00000000000000000000000000000000000000ff"

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func newTestService(ledger *memory.Ledger) Service {
	return Service{
		Ledger:            ledger,
		Clock:             fixedClock{now: time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)},
		ExpectedNetworkID: 1337,
		LedgerAddress:     testLedgerAddr,
		FetchTimeout:      time.Second,
	}
}

func seedItem(ledger *memory.Ledger, name string) uint64 {
	return ledger.Seed(entities.RawItem{
		Name:         name,
		State:        entities.StateHarvested,
		OriginFarmer: "0x00000000000000000000000000000000000000a1",
	})
}

func TestRefreshSkipsFailedIndexAndKeepsRest(t *testing.T) {
	ledger := memory.NewLedger(1337)
	seedItem(ledger, "first")
	seedItem(ledger, "second")
	seedItem(ledger, "third")
	ledger.FailIndex(2)

	result, err := newTestService(ledger).Refresh(context.Background())
	if err != nil {
		t.Fatalf("refresh must survive a single failing index, got %v", err)
	}

	if result.ItemCount != 3 {
		t.Fatalf("expected item count 3, got %d", result.ItemCount)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 fetched items, got %d", len(result.Items))
	}
	if result.Items[0].Name != "first" || result.Items[1].Name != "third" {
		t.Fatalf("surviving items out of order: %q, %q", result.Items[0].Name, result.Items[1].Name)
	}
	if len(result.FailedIndices) != 1 || result.FailedIndices[0] != 2 {
		t.Fatalf("expected failed indices [2], got %v", result.FailedIndices)
	}
}

func TestRefreshAbortsOnNetworkMismatchBeforeAnyFetch(t *testing.T) {
	ledger := memory.NewLedger(1)
	seedItem(ledger, "unreachable")

	_, err := newTestService(ledger).Refresh(context.Background())
	if !errors.Is(err, domainerrors.ErrNetworkMismatch) {
		t.Fatalf("expected ErrNetworkMismatch, got %v", err)
	}
	if attempts := ledger.FetchAttempts(); len(attempts) != 0 {
		t.Fatalf("precondition failure must abort before any item fetch, got attempts %v", attempts)
	}
}

func TestRefreshAbortsWhenNoCodeDeployed(t *testing.T) {
	ledger := memory.NewLedger(1337)
	seedItem(ledger, "orphan")
	ledger.DeployedCode = false

	_, err := newTestService(ledger).Refresh(context.Background())
	if !errors.Is(err, domainerrors.ErrNoLedgerCode) {
		t.Fatalf("expected ErrNoLedgerCode, got %v", err)
	}
	if attempts := ledger.FetchAttempts(); len(attempts) != 0 {
		t.Fatalf("precondition failure must abort before any item fetch, got attempts %v", attempts)
	}
}

func TestRefreshEmptyLedgerYieldsEmptyResult(t *testing.T) {
	ledger := memory.NewLedger(1337)

	result, err := newTestService(ledger).Refresh(context.Background())
	if err != nil {
		t.Fatalf("empty ledger must refresh cleanly, got %v", err)
	}
	if result.ItemCount != 0 || len(result.Items) != 0 || len(result.FailedIndices) != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
}

func TestRefreshScansSequentiallyFromOne(t *testing.T) {
	ledger := memory.NewLedger(1337)
	for i := 0; i < 4; i++ {
		seedItem(ledger, "item")
	}

	if _, err := newTestService(ledger).Refresh(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	attempts := ledger.FetchAttempts()
	want := []uint64{1, 2, 3, 4}
	if len(attempts) != len(want) {
		t.Fatalf("expected %d fetches, got %v", len(want), attempts)
	}
	for i, index := range want {
		if attempts[i] != index {
			t.Fatalf("fetch order wrong at position %d: got %v", i, attempts)
		}
	}
}

func TestSnapshotStoreServesLatestCycle(t *testing.T) {
	store := NewSnapshotStore()

	if _, err := store.Current(); !errors.Is(err, domainerrors.ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot before first cycle, got %v", err)
	}

	store.Set(RefreshResult{Items: []entities.TrackedItem{{SKU: 1}}, ItemCount: 1})
	store.Set(RefreshResult{Items: []entities.TrackedItem{{SKU: 1}, {SKU: 2}}, ItemCount: 2})

	current, err := store.Current()
	if err != nil {
		t.Fatalf("expected snapshot after Set, got %v", err)
	}
	if current.ItemCount != 2 || len(current.Items) != 2 {
		t.Fatalf("latest cycle must supersede the previous one, got %+v", current)
	}

	if _, err := store.Item(3); !errors.Is(err, domainerrors.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound for absent SKU, got %v", err)
	}
	item, err := store.Item(2)
	if err != nil || item.SKU != 2 {
		t.Fatalf("expected item 2 from snapshot, got %+v err %v", item, err)
	}
}
