package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"foodtrace/contexts/identity-access/directory-service/domain/entities"
	domainerrors "foodtrace/contexts/identity-access/directory-service/domain/errors"
	"foodtrace/contexts/identity-access/directory-service/ports"
	"foodtrace/internal/shared/roles"
)

type Service struct {
	Repo      ports.Repository
	Clock     ports.Clock
	IDs       ports.IDGenerator
	Publisher ports.EventPublisher
	Logger    *slog.Logger
}

// Register inserts or replaces the record for its wallet address.
func (s Service) Register(ctx context.Context, record entities.ParticipantRecord) (entities.ParticipantRecord, error) {
	prepared, err := s.prepare(ctx, record)
	if err != nil {
		return entities.ParticipantRecord{}, err
	}
	if err := s.Repo.Upsert(ctx, prepared); err != nil {
		return entities.ParticipantRecord{}, err
	}
	s.publish(ctx, prepared, 1)
	return prepared, nil
}

// BulkRegister applies Register semantics to each record in order, so a
// later record with a repeated address wins over an earlier one in the same
// batch. The whole batch fails on the first invalid record.
func (s Service) BulkRegister(ctx context.Context, records []entities.ParticipantRecord) (int, error) {
	if len(records) == 0 {
		return 0, domainerrors.ErrInvalidRequest
	}

	prepared := make([]entities.ParticipantRecord, 0, len(records))
	for _, record := range records {
		item, err := s.prepare(ctx, record)
		if err != nil {
			return 0, err
		}
		prepared = append(prepared, item)
	}

	for _, record := range prepared {
		if err := s.Repo.Upsert(ctx, record); err != nil {
			return 0, err
		}
	}

	s.publish(ctx, prepared[len(prepared)-1], len(prepared))
	ResolveLogger(s.Logger).Info("bulk registration applied",
		"event", "directory_bulk_registered",
		"module", "identity-access/directory-service",
		"layer", "application",
		"count", len(prepared),
	)
	return len(prepared), nil
}

// Lookup matches a wallet address case-insensitively.
func (s Service) Lookup(ctx context.Context, address string) (entities.ParticipantRecord, error) {
	normalized := entities.NormalizeAddress(address)
	if normalized == "" {
		return entities.ParticipantRecord{}, domainerrors.ErrMissingWallet
	}
	return s.Repo.Lookup(ctx, normalized)
}

// List returns all records in insertion/replacement order.
func (s Service) List(ctx context.Context) ([]entities.ParticipantRecord, error) {
	return s.Repo.List(ctx)
}

// Counts returns the total participant count and the supplier count
// (everyone but consumers), used by dashboard analytics.
func (s Service) Counts(ctx context.Context) (total int, suppliers int, err error) {
	records, err := s.Repo.List(ctx)
	if err != nil {
		return 0, 0, err
	}
	for _, record := range records {
		if record.Role != roles.Consumer {
			suppliers++
		}
	}
	return len(records), suppliers, nil
}

func (s Service) prepare(ctx context.Context, record entities.ParticipantRecord) (entities.ParticipantRecord, error) {
	record.WalletAddress = entities.NormalizeAddress(record.WalletAddress)
	if record.WalletAddress == "" {
		return entities.ParticipantRecord{}, domainerrors.ErrMissingWallet
	}

	role, ok := roles.Parse(string(record.Role))
	if !ok {
		return entities.ParticipantRecord{}, domainerrors.ErrUnknownRole
	}
	record.Role = role

	record.Name = strings.TrimSpace(record.Name)
	if record.Name == "" {
		return entities.ParticipantRecord{}, domainerrors.ErrInvalidRequest
	}

	if record.RegisteredAt.IsZero() {
		record.RegisteredAt = s.now()
	}
	if record.RegistrationID == "" && s.IDs != nil {
		id, err := s.IDs.NewID(ctx)
		if err != nil {
			return entities.ParticipantRecord{}, err
		}
		record.RegistrationID = id
	}
	return record, nil
}

func (s Service) publish(ctx context.Context, record entities.ParticipantRecord, count int) {
	if s.Publisher == nil {
		return
	}
	event := ports.ParticipantRegisteredEvent{
		EventID:       record.RegistrationID,
		WalletAddress: record.WalletAddress,
		Role:          record.Role.String(),
		Registered:    count,
		OccurredAt:    s.now(),
	}
	if err := s.Publisher.PublishParticipantRegistered(ctx, event); err != nil {
		ResolveLogger(s.Logger).Warn("participant registered event dropped",
			"event", "directory_event_publish_failed",
			"module", "identity-access/directory-service",
			"layer", "application",
			"error", err.Error(),
		)
	}
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
