package blob

import (
	"context"
	"errors"
	"testing"

	"foodtrace/contexts/identity-access/directory-service/domain/entities"
	domainerrors "foodtrace/contexts/identity-access/directory-service/domain/errors"
	"foodtrace/internal/platform/storage/memorystore"
	"foodtrace/internal/shared/roles"
)

func record(address, name string) entities.ParticipantRecord {
	return entities.ParticipantRecord{
		WalletAddress: address,
		Role:          roles.Farmer,
		Name:          name,
	}
}

func TestUpsertReplacesInPlacePreservingOrder(t *testing.T) {
	store := NewStore(memorystore.New(), nil)
	ctx := context.Background()

	for _, r := range []entities.ParticipantRecord{
		record("0xa1", "First"),
		record("0xa2", "Second"),
		record("0xa3", "Third"),
	} {
		if err := store.Upsert(ctx, r); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}
	}
	if err := store.Upsert(ctx, record("0xA2", "Second Replaced")); err != nil {
		t.Fatalf("replacement upsert failed: %v", err)
	}

	records, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("replacement must not grow the list, got %d records", len(records))
	}
	if records[1].Name != "Second Replaced" {
		t.Fatalf("replacement must keep its original position, got %q at index 1", records[1].Name)
	}
}

func TestCorruptBlobReadsAsEmptyDirectory(t *testing.T) {
	blobs := memorystore.New()
	ctx := context.Background()
	if err := blobs.Set(ctx, "directory/participants", "{not json"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	store := NewStore(blobs, nil)
	records, err := store.List(ctx)
	if err != nil {
		t.Fatalf("corrupt blob must not error a list, got %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("corrupt blob must read as empty, got %d records", len(records))
	}
	if _, err := store.Lookup(ctx, "0xa1"); !errors.Is(err, domainerrors.ErrParticipantNotFound) {
		t.Fatalf("expected ErrParticipantNotFound over a corrupt blob, got %v", err)
	}

	// A write over the corrupt blob recovers the store.
	if err := store.Upsert(ctx, record("0xa1", "Recovered")); err != nil {
		t.Fatalf("upsert over corrupt blob failed: %v", err)
	}
	got, err := store.Lookup(ctx, "0xa1")
	if err != nil || got.Name != "Recovered" {
		t.Fatalf("expected recovered record, got %+v err %v", got, err)
	}
}

func TestRecordSurvivesRoundTrip(t *testing.T) {
	store := NewStore(memorystore.New(), nil)
	ctx := context.Background()

	full := entities.ParticipantRecord{
		RegistrationID: "reg-1",
		WalletAddress:  "0x00000000000000000000000000000000000000a9",
		Role:           roles.Processor,
		Name:           "Sarah Johnson",
		BusinessName:   "Food Processing Plant 1",
		BusinessType:   "food-processing",
		LicenseNumber:  "PROC-2024-001",
		Email:          "processor1@processing.com",
		Phone:          "+1-555-2001",
		Location: entities.Location{
			Country: "Malaysia",
			State:   "Johor",
			City:    "Processing City 1",
			ZipCode: "80001",
		},
	}
	if err := store.Upsert(ctx, full); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	got, err := store.Lookup(ctx, full.WalletAddress)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got.Role != roles.Processor || got.BusinessName != full.BusinessName || got.Location.State != "Johor" {
		t.Fatalf("record lost fields in persistence: %+v", got)
	}
}
