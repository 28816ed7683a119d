package ledger

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
)

// Memory is an in-memory Ledger.
type Memory struct {
	mu       sync.RWMutex
	balances map[Key]uint64
}

// NewMemory creates an empty in-memory ledger.
func NewMemory() *Memory {
	return &Memory{balances: make(map[Key]uint64)}
}

func (m *Memory) Balance(_ context.Context, asset types.Asset, owner types.Address) (uint64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.balances[Key{Asset: asset, Owner: owner}], nil
}

func (m *Memory) Transfer(_ context.Context, asset types.Asset, from, to types.Address, amount uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if amount == 0 {
		return ErrInvalidAmount
	}
	fromKey, toKey := Key{Asset: asset, Owner: from}, Key{Asset: asset, Owner: to}
	if m.balances[fromKey] < amount {
		return fmt.Errorf("%w: %s has %d %s, needs %d", ErrInsufficientFunds, from.Short(), m.balances[fromKey], asset, amount)
	}
	if from == to {
		return nil
	}
	credited, err := types.CheckedAdd(m.balances[toKey], amount)
	if err != nil {
		return err
	}
	m.balances[fromKey] -= amount
	m.balances[toKey] = credited
	return nil
}

func (m *Memory) Mint(_ context.Context, asset types.Asset, to types.Address, amount uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if amount == 0 {
		return ErrInvalidAmount
	}
	key := Key{Asset: asset, Owner: to}
	credited, err := types.CheckedAdd(m.balances[key], amount)
	if err != nil {
		return err
	}
	m.balances[key] = credited
	return nil
}

func (m *Memory) Burn(_ context.Context, asset types.Asset, from types.Address, amount uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if amount == 0 {
		return ErrInvalidAmount
	}
	key := Key{Asset: asset, Owner: from}
	if m.balances[key] < amount {
		return fmt.Errorf("%w: %s has %d %s, needs %d", ErrInsufficientFunds, from.Short(), m.balances[key], asset, amount)
	}
	m.balances[key] -= amount
	return nil
}

// Snapshot returns a copy of every balance.
func (m *Memory) Snapshot() map[Key]uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.balances)
}

// Restore replaces all balances with snap.
func (m *Memory) Restore(snap map[Key]uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances = maps.Clone(snap)
	if m.balances == nil {
		m.balances = make(map[Key]uint64)
	}
}
