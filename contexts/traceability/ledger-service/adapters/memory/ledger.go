// Package memory provides a scriptable in-memory ledger connector for tests
// and local development wiring.
package memory

import (
	"context"
	"fmt"
	"sync"

	"foodtrace/contexts/traceability/ledger-service/domain/entities"
)

// Ledger is a fake connector. Records are keyed by 1-based index; indices
// listed in FailIndices fail their fetch to exercise per-item fault
// isolation.
type Ledger struct {
	mu sync.RWMutex

	ChainID       uint64
	DeployedCode  bool
	records       map[uint64]entities.RawItem
	failIndices   map[uint64]bool
	highestIndex  uint64
	fetchAttempts []uint64
}

func NewLedger(chainID uint64) *Ledger {
	return &Ledger{
		ChainID:      chainID,
		DeployedCode: true,
		records:      make(map[uint64]entities.RawItem),
		failIndices:  make(map[uint64]bool),
	}
}

// Seed stores a record at the next index and returns that index.
func (l *Ledger) Seed(record entities.RawItem) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.highestIndex++
	if record.SKU == 0 {
		record.SKU = l.highestIndex
	}
	l.records[l.highestIndex] = record
	return l.highestIndex
}

// FailIndex makes fetches of the given index fail.
func (l *Ledger) FailIndex(index uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failIndices[index] = true
	if index > l.highestIndex {
		l.highestIndex = index
	}
}

// FetchAttempts returns the indices fetched, in call order.
func (l *Ledger) FetchAttempts() []uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]uint64(nil), l.fetchAttempts...)
}

func (l *Ledger) NetworkID(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return l.ChainID, nil
}

func (l *Ledger) CodeExistsAt(ctx context.Context, _ string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.DeployedCode, nil
}

func (l *Ledger) ItemCount(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.highestIndex, nil
}

func (l *Ledger) FetchItem(ctx context.Context, index uint64) (entities.RawItem, error) {
	if err := ctx.Err(); err != nil {
		return entities.RawItem{}, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fetchAttempts = append(l.fetchAttempts, index)
	if l.failIndices[index] {
		return entities.RawItem{}, fmt.Errorf("call reverted for index %d", index)
	}
	record, ok := l.records[index]
	if !ok {
		return entities.RawItem{}, fmt.Errorf("no record at index %d", index)
	}
	return record, nil
}
