package application

import (
	"sync"

	"foodtrace/contexts/traceability/ledger-service/domain/entities"
	domainerrors "foodtrace/contexts/traceability/ledger-service/domain/errors"
)

// SnapshotStore holds the latest completed refresh cycle. A new cycle's
// result supersedes the previous one atomically; readers never observe a
// partially written cycle.
type SnapshotStore struct {
	mu       sync.RWMutex
	current  RefreshResult
	hasValue bool
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

func (s *SnapshotStore) Set(result RefreshResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = result
	s.hasValue = true
}

// Current returns the latest refresh result, or ErrNoSnapshot before the
// first successful cycle.
func (s *SnapshotStore) Current() (RefreshResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasValue {
		return RefreshResult{}, domainerrors.ErrNoSnapshot
	}
	return s.current, nil
}

// Item returns one item from the latest snapshot by SKU.
func (s *SnapshotStore) Item(sku uint64) (entities.TrackedItem, error) {
	result, err := s.Current()
	if err != nil {
		return entities.TrackedItem{}, err
	}
	for _, item := range result.Items {
		if item.SKU == sku {
			return item, nil
		}
	}
	return entities.TrackedItem{}, domainerrors.ErrItemNotFound
}
