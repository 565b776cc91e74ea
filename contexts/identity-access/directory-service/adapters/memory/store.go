package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"foodtrace/contexts/identity-access/directory-service/domain/entities"
	domainerrors "foodtrace/contexts/identity-access/directory-service/domain/errors"
)

// Store is an in-memory adapter implementing the repository, clock, and ID
// generator ports. It is intended for tests and local development wiring.
type Store struct {
	mu      sync.RWMutex
	records map[string]entities.ParticipantRecord
	order   []string
}

func NewStore() *Store {
	return &Store{records: make(map[string]entities.ParticipantRecord)}
}

func (s *Store) Upsert(ctx context.Context, record entities.ParticipantRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	key := entities.NormalizeAddress(record.WalletAddress)
	if _, exists := s.records[key]; !exists {
		s.order = append(s.order, key)
	}
	s.records[key] = record
	return nil
}

func (s *Store) Lookup(ctx context.Context, address string) (entities.ParticipantRecord, error) {
	if err := ctx.Err(); err != nil {
		return entities.ParticipantRecord{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[entities.NormalizeAddress(address)]
	if !ok {
		return entities.ParticipantRecord{}, domainerrors.ErrParticipantNotFound
	}
	return record, nil
}

func (s *Store) List(ctx context.Context) ([]entities.ParticipantRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]entities.ParticipantRecord, 0, len(s.order))
	for _, key := range s.order {
		records = append(records, s.records[key])
	}
	return records, nil
}

func (s *Store) Now() time.Time { return time.Now().UTC() }

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
