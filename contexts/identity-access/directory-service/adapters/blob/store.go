// Package blob persists the participant directory as one serialized list
// in the durable blob store, mirroring how the dashboard's browser
// predecessor kept registrations in local storage.
package blob

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"foodtrace/contexts/identity-access/directory-service/domain/entities"
	domainerrors "foodtrace/contexts/identity-access/directory-service/domain/errors"
	"foodtrace/internal/platform/storage"
	"foodtrace/internal/shared/roles"
)

const directoryKey = "directory/participants"

// Store is a blob-backed repository. All writes are serialized behind a
// mutex because the underlying blob store offers no per-address atomicity.
type Store struct {
	mu     sync.Mutex
	blobs  storage.BlobStore
	logger *slog.Logger
}

func NewStore(blobs storage.BlobStore, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{blobs: blobs, logger: logger}
}

type locationRow struct {
	Country string `json:"country"`
	State   string `json:"state"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

type participantRow struct {
	RegistrationID string      `json:"registrationId"`
	WalletAddress  string      `json:"walletAddress"`
	Role           string      `json:"role"`
	Name           string      `json:"name"`
	BusinessName   string      `json:"businessName,omitempty"`
	BusinessType   string      `json:"businessType,omitempty"`
	LicenseNumber  string      `json:"licenseNumber,omitempty"`
	Email          string      `json:"email,omitempty"`
	Phone          string      `json:"phone,omitempty"`
	Location       locationRow `json:"location"`
	RegisteredAt   time.Time   `json:"registeredAt"`
}

func (s *Store) Upsert(ctx context.Context, record entities.ParticipantRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.load(ctx)
	key := entities.NormalizeAddress(record.WalletAddress)
	replaced := false
	for i, row := range rows {
		if entities.NormalizeAddress(row.WalletAddress) == key {
			rows[i] = rowFromRecord(record)
			replaced = true
			break
		}
	}
	if !replaced {
		rows = append(rows, rowFromRecord(record))
	}
	return s.save(ctx, rows)
}

func (s *Store) Lookup(ctx context.Context, address string) (entities.ParticipantRecord, error) {
	key := entities.NormalizeAddress(address)
	for _, row := range s.load(ctx) {
		if entities.NormalizeAddress(row.WalletAddress) == key {
			return recordFromRow(row), nil
		}
	}
	return entities.ParticipantRecord{}, domainerrors.ErrParticipantNotFound
}

func (s *Store) List(ctx context.Context) ([]entities.ParticipantRecord, error) {
	rows := s.load(ctx)
	records := make([]entities.ParticipantRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, recordFromRow(row))
	}
	return records, nil
}

// load reads the persisted list. Missing or malformed content yields an
// empty directory rather than an error.
func (s *Store) load(ctx context.Context) []participantRow {
	raw, err := s.blobs.Get(ctx, directoryKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("directory blob unreadable, starting empty",
				"event", "directory_blob_unreadable",
				"module", "identity-access/directory-service",
				"layer", "adapter",
				"error", err.Error(),
			)
		}
		return nil
	}

	var rows []participantRow
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		s.logger.Warn("directory blob malformed, starting empty",
			"event", "directory_blob_malformed",
			"module", "identity-access/directory-service",
			"layer", "adapter",
			"error", err.Error(),
		)
		return nil
	}
	return rows
}

func (s *Store) save(ctx context.Context, rows []participantRow) error {
	payload, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	return s.blobs.Set(ctx, directoryKey, string(payload))
}

func rowFromRecord(record entities.ParticipantRecord) participantRow {
	return participantRow{
		RegistrationID: record.RegistrationID,
		WalletAddress:  entities.NormalizeAddress(record.WalletAddress),
		Role:           record.Role.String(),
		Name:           record.Name,
		BusinessName:   record.BusinessName,
		BusinessType:   record.BusinessType,
		LicenseNumber:  record.LicenseNumber,
		Email:          record.Email,
		Phone:          record.Phone,
		Location: locationRow{
			Country: record.Location.Country,
			State:   record.Location.State,
			City:    record.Location.City,
			ZipCode: record.Location.ZipCode,
		},
		RegisteredAt: record.RegisteredAt,
	}
}

func recordFromRow(row participantRow) entities.ParticipantRecord {
	role, _ := roles.Parse(row.Role)
	return entities.ParticipantRecord{
		RegistrationID: row.RegistrationID,
		WalletAddress:  entities.NormalizeAddress(row.WalletAddress),
		Role:           role,
		Name:           row.Name,
		BusinessName:   row.BusinessName,
		BusinessType:   row.BusinessType,
		LicenseNumber:  row.LicenseNumber,
		Email:          row.Email,
		Phone:          row.Phone,
		Location: entities.Location{
			Country: row.Location.Country,
			State:   row.Location.State,
			City:    row.Location.City,
			ZipCode: row.Location.ZipCode,
		},
		RegisteredAt: row.RegisteredAt,
	}
}
