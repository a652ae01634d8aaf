// Package ledger provides in-memory order ledgers.
package ledger

import (
	"context"
	"sync"

	"github.com/hammamikhairi/pizzaco/internal/domain"
	"github.com/hammamikhairi/pizzaco/internal/logger"
)

// Compile-time interface check.
var _ domain.OrderLedger = (*Memory)(nil)

// Memory is an append-only list of orders that can be wiped in one go.
// Safe for concurrent access.
type Memory struct {
	mu      sync.RWMutex
	entries []domain.OrderEntry
	log     *logger.Logger
}

// NewMemory creates an empty ledger.
func NewMemory(log *logger.Logger) *Memory {
	return &Memory{log: log.With("ledger")}
}

// Append adds an entry at the end. Existing entries are left untouched.
func (m *Memory) Append(ctx context.Context, entry domain.OrderEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, entry)
	m.log.Debug("appended %q, count=%d", entry.Name, len(m.entries))
	return nil
}

// Clear removes every entry. Clearing an empty ledger is fine.
func (m *Memory) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.log.Debug("cleared %d entries", len(m.entries))
	m.entries = nil
	return nil
}

// List returns a copy of the entries in insertion order. The result is
// never nil.
func (m *Memory) List(ctx context.Context) ([]domain.OrderEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.OrderEntry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

// Len returns the number of entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
