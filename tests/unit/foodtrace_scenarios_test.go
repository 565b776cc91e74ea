package unit

import (
	"context"
	"errors"
	"math/big"
	"testing"

	authorization "foodtrace/contexts/identity-access/authorization-service"
	authzhttp "foodtrace/contexts/identity-access/authorization-service/transport/http"
	directory "foodtrace/contexts/identity-access/directory-service"
	directoryapp "foodtrace/contexts/identity-access/directory-service/application"
	directoryentities "foodtrace/contexts/identity-access/directory-service/domain/entities"
	session "foodtrace/contexts/identity-access/session-service"
	sessionerrors "foodtrace/contexts/identity-access/session-service/domain/errors"
	sessionports "foodtrace/contexts/identity-access/session-service/ports"
	ledgerservice "foodtrace/contexts/traceability/ledger-service"
	ledgerentities "foodtrace/contexts/traceability/ledger-service/domain/entities"
	ledgererrors "foodtrace/contexts/traceability/ledger-service/domain/errors"
	"foodtrace/internal/shared/roles"
)

// directoryResolver and directoryLookup bridge the directory module into the
// traceability and session contexts the same way runtime wiring does.
type directoryResolver struct {
	directory directoryapp.Service
}

func (r directoryResolver) Resolve(ctx context.Context, address string) (ledgerentities.Identity, bool) {
	record, err := r.directory.Lookup(ctx, address)
	if err != nil {
		return ledgerentities.Identity{}, false
	}
	return ledgerentities.Identity{Name: record.Name, Role: record.Role.Title()}, true
}

type directoryLookup struct {
	directory directoryapp.Service
}

func (l directoryLookup) Lookup(ctx context.Context, address string) (sessionports.RegisteredParticipant, bool, error) {
	record, err := l.directory.Lookup(ctx, address)
	if err != nil {
		return sessionports.RegisteredParticipant{}, false, nil
	}
	return sessionports.RegisteredParticipant{
		WalletAddress: record.WalletAddress,
		Role:          record.Role,
		Name:          record.Name,
		Email:         record.Email,
		BusinessName:  record.BusinessName,
		RegisteredAt:  record.RegisteredAt,
	}, true, nil
}

func TestRefreshEnrichesTimelineFromDirectory(t *testing.T) {
	ctx := context.Background()
	directoryModule := directory.NewInMemoryModule(nil)

	farmer := "0x00000000000000000000000000000000000000a1"
	if _, err := directoryModule.Handler.LoadSampleHandler(ctx); err != nil {
		t.Fatalf("sample load failed: %v", err)
	}
	if _, err := directoryModule.Service.Register(ctx, farmerParticipant(farmer, "John Smith")); err != nil {
		t.Fatalf("farmer registration failed: %v", err)
	}

	traceModule, ledger := ledgerservice.NewInMemoryModule(1337, directoryResolver{directory: directoryModule.Service}, nil)
	ledger.Seed(ledgerentities.RawItem{
		Name:         "Highland Strawberries",
		State:        ledgerentities.StateProcessed,
		OriginFarmer: farmer,
		Processor:    "0x00000000000000000000000000000000000000b2",
		Price:        big.NewInt(0),
	})

	resp, err := traceModule.Handler.RefreshHandler(ctx)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if resp.Data.Fetched != 1 {
		t.Fatalf("expected 1 fetched item, got %d", resp.Data.Fetched)
	}

	item, err := traceModule.Handler.GetItemHandler(ctx, "1")
	if err != nil {
		t.Fatalf("get item failed: %v", err)
	}
	timeline := item.Data.Timeline
	if len(timeline) != 2 {
		t.Fatalf("expected 2 timeline events, got %d", len(timeline))
	}
	if timeline[0].Name != "John Smith" || timeline[0].Role != "Farmer" {
		t.Fatalf("registered farmer must resolve, got %+v", timeline[0])
	}
	if timeline[1].Role != "Unknown" || timeline[1].Name != "0x0000...00b2" {
		t.Fatalf("unregistered processor must fall back to a pseudonym, got %+v", timeline[1])
	}
	if !item.Data.TimelineSynthetic {
		t.Fatalf("timeline must carry the synthetic label")
	}
}

func TestDirectoryChangeVisibleAfterNextRefresh(t *testing.T) {
	ctx := context.Background()
	directoryModule := directory.NewInMemoryModule(nil)
	farmer := "0x00000000000000000000000000000000000000a1"

	traceModule, ledger := ledgerservice.NewInMemoryModule(1337, directoryResolver{directory: directoryModule.Service}, nil)
	ledger.Seed(ledgerentities.RawItem{
		Name:         "Kampung Eggs",
		State:        ledgerentities.StateHarvested,
		OriginFarmer: farmer,
	})

	if _, err := traceModule.Handler.RefreshHandler(ctx); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	before, err := traceModule.Snapshot.Item(1)
	if err != nil {
		t.Fatalf("snapshot item failed: %v", err)
	}
	if before.Timeline[0].Role != "Unknown" {
		t.Fatalf("expected pseudonymous timeline before registration, got %+v", before.Timeline[0])
	}

	if _, err := directoryModule.Service.Register(ctx, farmerParticipant(farmer, "Late Registrant")); err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	if _, err := traceModule.Handler.RefreshHandler(ctx); err != nil {
		t.Fatalf("second refresh failed: %v", err)
	}
	after, err := traceModule.Snapshot.Item(1)
	if err != nil {
		t.Fatalf("snapshot item failed: %v", err)
	}
	if after.Timeline[0].Name != "Late Registrant" {
		t.Fatalf("next refresh must pick up the new registration, got %+v", after.Timeline[0])
	}
}

func TestWalletLoginFlowAgainstDirectory(t *testing.T) {
	ctx := context.Background()
	directoryModule := directory.NewInMemoryModule(nil)
	sessionModule := session.NewInMemoryModule(directoryLookup{directory: directoryModule.Service}, nil)

	farmer := "0x00000000000000000000000000000000000000a1"
	if _, err := sessionModule.Service.LoginByWallet(ctx, farmer); !errors.Is(err, sessionerrors.ErrNotRegistered) {
		t.Fatalf("expected ErrNotRegistered before registration, got %v", err)
	}

	if _, err := directoryModule.Service.Register(ctx, farmerParticipant(farmer, "John Smith")); err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	active, err := sessionModule.Service.LoginByWallet(ctx, farmer)
	if err != nil {
		t.Fatalf("wallet login failed: %v", err)
	}
	if active.Role != roles.Farmer || active.Name != "John Smith" {
		t.Fatalf("unexpected session %+v", active)
	}
}

func TestAccessCheckEndToEnd(t *testing.T) {
	authzModule := authorization.NewModule(nil)

	resp, err := authzModule.Handler.CheckHandler(authzhttp.CheckRequest{Role: "consumer", Capability: "consumer-tracker"})
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !resp.Data.Allowed {
		t.Fatalf("consumer must access the consumer tracker")
	}

	resp, err = authzModule.Handler.CheckHandler(authzhttp.CheckRequest{Role: "consumer", Capability: "manage-items"})
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if resp.Data.Allowed {
		t.Fatalf("consumer must not manage items")
	}
}

func TestSnapshotUnavailableBeforeFirstRefresh(t *testing.T) {
	directoryModule := directory.NewInMemoryModule(nil)
	traceModule, _ := ledgerservice.NewInMemoryModule(1337, directoryResolver{directory: directoryModule.Service}, nil)

	if _, err := traceModule.Snapshot.Current(); !errors.Is(err, ledgererrors.ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot before the first cycle, got %v", err)
	}
}

func farmerParticipant(address, name string) directoryentities.ParticipantRecord {
	return directoryentities.ParticipantRecord{
		WalletAddress: address,
		Role:          roles.Farmer,
		Name:          name,
	}
}
