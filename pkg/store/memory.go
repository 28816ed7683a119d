package store

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"sync"

	"github.com/chainsafe/aa-bridge-middleware/pkg/bridge"
	"github.com/chainsafe/aa-bridge-middleware/pkg/entrypoint"
	"github.com/chainsafe/aa-bridge-middleware/pkg/ledger"
	"github.com/chainsafe/aa-bridge-middleware/pkg/paymaster"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
	"github.com/chainsafe/aa-bridge-middleware/pkg/wallet"
)

// Memory is an in-memory Store. Transactions are serialized by a single
// mutex and roll back to a snapshot when the callback fails.
type Memory struct {
	mu    sync.Mutex
	state *memState
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{state: newMemState()}
}

type memState struct {
	ledger      *ledger.Memory
	entryPoints map[types.Address]entrypoint.EntryPoint
	wallets     map[types.Address]*wallet.Wallet
	paymasters  map[types.Address]*paymaster.Paymaster
	stakes      map[types.Address]entrypoint.PaymasterStake // by paymaster
	bridges     map[types.Address]*bridge.Bridge
	locks       map[types.Address]bridge.LockRecord
	mints       map[types.Address]bridge.MintRecord
	burns       map[types.Address]bridge.BurnRecord
	events      []OperationEventRecord
}

func newMemState() *memState {
	return &memState{
		ledger:      ledger.NewMemory(),
		entryPoints: make(map[types.Address]entrypoint.EntryPoint),
		wallets:     make(map[types.Address]*wallet.Wallet),
		paymasters:  make(map[types.Address]*paymaster.Paymaster),
		stakes:      make(map[types.Address]entrypoint.PaymasterStake),
		bridges:     make(map[types.Address]*bridge.Bridge),
		locks:       make(map[types.Address]bridge.LockRecord),
		mints:       make(map[types.Address]bridge.MintRecord),
		burns:       make(map[types.Address]bridge.BurnRecord),
	}
}

// snapshot copies the state deeply enough that mutating the copy through the
// Tx methods never reaches s.
func (s *memState) snapshot() *memState {
	cp := &memState{
		ledger:      ledger.NewMemory(),
		entryPoints: maps.Clone(s.entryPoints),
		wallets:     make(map[types.Address]*wallet.Wallet, len(s.wallets)),
		paymasters:  make(map[types.Address]*paymaster.Paymaster, len(s.paymasters)),
		stakes:      maps.Clone(s.stakes),
		bridges:     make(map[types.Address]*bridge.Bridge, len(s.bridges)),
		locks:       maps.Clone(s.locks),
		mints:       maps.Clone(s.mints),
		burns:       maps.Clone(s.burns),
		events:      append([]OperationEventRecord(nil), s.events...),
	}
	cp.ledger.Restore(s.ledger.Snapshot())
	for k, v := range s.wallets {
		cp.wallets[k] = v.Clone()
	}
	for k, v := range s.paymasters {
		cp.paymasters[k] = v.Clone()
	}
	for k, v := range s.bridges {
		cp.bridges[k] = v.Clone()
	}
	return cp
}

func (m *Memory) RunInTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	work := m.state.snapshot()
	if err := fn(ctx, work); err != nil {
		return err
	}
	m.state = work
	return nil
}

func (m *Memory) view() *memState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Reads outside a transaction copy the record so callers cannot mutate the store.

func (m *Memory) EntryPoint(ctx context.Context, addr types.Address) (*entrypoint.EntryPoint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.EntryPoint(ctx, addr)
}

func (m *Memory) Wallet(ctx context.Context, addr types.Address) (*wallet.Wallet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, err := m.state.Wallet(ctx, addr)
	if err != nil {
		return nil, err
	}
	return w.Clone(), nil
}

func (m *Memory) Paymaster(ctx context.Context, addr types.Address) (*paymaster.Paymaster, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pm, err := m.state.Paymaster(ctx, addr)
	if err != nil {
		return nil, err
	}
	return pm.Clone(), nil
}

func (m *Memory) Stake(ctx context.Context, pm types.Address) (*entrypoint.PaymasterStake, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Stake(ctx, pm)
}

func (m *Memory) Bridge(ctx context.Context, addr types.Address) (*bridge.Bridge, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, err := m.state.Bridge(ctx, addr)
	if err != nil {
		return nil, err
	}
	return b.Clone(), nil
}

func (m *Memory) LockRecord(ctx context.Context, addr types.Address) (*bridge.LockRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.LockRecord(ctx, addr)
}

func (m *Memory) MintRecord(ctx context.Context, addr types.Address) (*bridge.MintRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.MintRecord(ctx, addr)
}

func (m *Memory) BurnRecord(ctx context.Context, addr types.Address) (*bridge.BurnRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.BurnRecord(ctx, addr)
}

func (m *Memory) ListUnclaimedLocks(ctx context.Context, b types.Address, fromID uint64, limit int) ([]*bridge.LockRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.ListUnclaimedLocks(ctx, b, fromID, limit)
}

func (m *Memory) ListUnclaimedBurns(ctx context.Context, b types.Address, fromID uint64, limit int) ([]*bridge.BurnRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.ListUnclaimedBurns(ctx, b, fromID, limit)
}

func (m *Memory) OperationEvents(ctx context.Context, batchID string) ([]*OperationEventRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.OperationEvents(ctx, batchID)
}

func (m *Memory) Balance(ctx context.Context, asset types.Asset, owner types.Address) (uint64, error) {
	return m.view().ledger.Balance(ctx, asset, owner)
}

// memState implements Tx. It is only touched with Memory.mu held.

func (s *memState) EntryPoint(_ context.Context, addr types.Address) (*entrypoint.EntryPoint, error) {
	ep, ok := s.entryPoints[addr]
	if !ok {
		return nil, fmt.Errorf("%w: entry point %s", ErrNotFound, addr)
	}
	return &ep, nil
}

func (s *memState) CreateEntryPoint(_ context.Context, ep *entrypoint.EntryPoint) error {
	if _, ok := s.entryPoints[ep.Address]; ok {
		return fmt.Errorf("%w: entry point %s", ErrAlreadyExists, ep.Address)
	}
	s.entryPoints[ep.Address] = *ep
	return nil
}

func (s *memState) UpdateEntryPoint(_ context.Context, ep *entrypoint.EntryPoint) error {
	if _, ok := s.entryPoints[ep.Address]; !ok {
		return fmt.Errorf("%w: entry point %s", ErrNotFound, ep.Address)
	}
	s.entryPoints[ep.Address] = *ep
	return nil
}

func (s *memState) Wallet(_ context.Context, addr types.Address) (*wallet.Wallet, error) {
	w, ok := s.wallets[addr]
	if !ok {
		return nil, fmt.Errorf("%w: wallet %s", ErrNotFound, addr)
	}
	return w.Clone(), nil
}

func (s *memState) CreateWallet(_ context.Context, w *wallet.Wallet) error {
	if _, ok := s.wallets[w.Address]; ok {
		return fmt.Errorf("%w: wallet %s", ErrAlreadyExists, w.Address)
	}
	s.wallets[w.Address] = w.Clone()
	return nil
}

func (s *memState) UpdateWallet(_ context.Context, w *wallet.Wallet) error {
	if _, ok := s.wallets[w.Address]; !ok {
		return fmt.Errorf("%w: wallet %s", ErrNotFound, w.Address)
	}
	s.wallets[w.Address] = w.Clone()
	return nil
}

func (s *memState) Paymaster(_ context.Context, addr types.Address) (*paymaster.Paymaster, error) {
	pm, ok := s.paymasters[addr]
	if !ok {
		return nil, fmt.Errorf("%w: paymaster %s", ErrNotFound, addr)
	}
	return pm.Clone(), nil
}

func (s *memState) CreatePaymaster(_ context.Context, pm *paymaster.Paymaster) error {
	if _, ok := s.paymasters[pm.Address]; ok {
		return fmt.Errorf("%w: paymaster %s", ErrAlreadyExists, pm.Address)
	}
	s.paymasters[pm.Address] = pm.Clone()
	return nil
}

func (s *memState) UpdatePaymaster(_ context.Context, pm *paymaster.Paymaster) error {
	if _, ok := s.paymasters[pm.Address]; !ok {
		return fmt.Errorf("%w: paymaster %s", ErrNotFound, pm.Address)
	}
	s.paymasters[pm.Address] = pm.Clone()
	return nil
}

func (s *memState) Stake(_ context.Context, pm types.Address) (*entrypoint.PaymasterStake, error) {
	st, ok := s.stakes[pm]
	if !ok {
		return nil, fmt.Errorf("%w: stake of paymaster %s", ErrNotFound, pm)
	}
	return &st, nil
}

func (s *memState) SaveStake(_ context.Context, st *entrypoint.PaymasterStake) error {
	s.stakes[st.Paymaster] = *st
	return nil
}

func (s *memState) Bridge(_ context.Context, addr types.Address) (*bridge.Bridge, error) {
	b, ok := s.bridges[addr]
	if !ok {
		return nil, fmt.Errorf("%w: bridge %s", ErrNotFound, addr)
	}
	return b.Clone(), nil
}

func (s *memState) CreateBridge(_ context.Context, b *bridge.Bridge) error {
	if _, ok := s.bridges[b.Address]; ok {
		return fmt.Errorf("%w: bridge %s", ErrAlreadyExists, b.Address)
	}
	s.bridges[b.Address] = b.Clone()
	return nil
}

func (s *memState) UpdateBridge(_ context.Context, b *bridge.Bridge) error {
	if _, ok := s.bridges[b.Address]; !ok {
		return fmt.Errorf("%w: bridge %s", ErrNotFound, b.Address)
	}
	s.bridges[b.Address] = b.Clone()
	return nil
}

func (s *memState) LockRecord(_ context.Context, addr types.Address) (*bridge.LockRecord, error) {
	r, ok := s.locks[addr]
	if !ok {
		return nil, fmt.Errorf("%w: lock record %s", ErrNotFound, addr)
	}
	return &r, nil
}

func (s *memState) CreateLockRecord(_ context.Context, r *bridge.LockRecord) error {
	if _, ok := s.locks[r.Address]; ok {
		return fmt.Errorf("%w: lock record %s", ErrAlreadyExists, r.Address)
	}
	s.locks[r.Address] = *r
	return nil
}

func (s *memState) UpdateLockRecord(_ context.Context, r *bridge.LockRecord) error {
	s.locks[r.Address] = *r
	return nil
}

func (s *memState) MintRecord(_ context.Context, addr types.Address) (*bridge.MintRecord, error) {
	r, ok := s.mints[addr]
	if !ok {
		return nil, fmt.Errorf("%w: mint record %s", ErrNotFound, addr)
	}
	return &r, nil
}

func (s *memState) CreateMintRecord(_ context.Context, r *bridge.MintRecord) error {
	if _, ok := s.mints[r.Address]; ok {
		return fmt.Errorf("%w: mint record %s", ErrAlreadyExists, r.Address)
	}
	s.mints[r.Address] = *r
	return nil
}

func (s *memState) BurnRecord(_ context.Context, addr types.Address) (*bridge.BurnRecord, error) {
	r, ok := s.burns[addr]
	if !ok {
		return nil, fmt.Errorf("%w: burn record %s", ErrNotFound, addr)
	}
	return &r, nil
}

func (s *memState) CreateBurnRecord(_ context.Context, r *bridge.BurnRecord) error {
	if _, ok := s.burns[r.Address]; ok {
		return fmt.Errorf("%w: burn record %s", ErrAlreadyExists, r.Address)
	}
	s.burns[r.Address] = *r
	return nil
}

func (s *memState) UpdateBurnRecord(_ context.Context, r *bridge.BurnRecord) error {
	s.burns[r.Address] = *r
	return nil
}

func (s *memState) ListUnclaimedLocks(_ context.Context, b types.Address, fromID uint64, limit int) ([]*bridge.LockRecord, error) {
	var out []*bridge.LockRecord
	for _, r := range s.locks {
		if r.Bridge == b && !r.IsClaimed && r.ID >= fromID {
			out = append(out, &r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memState) ListUnclaimedBurns(_ context.Context, b types.Address, fromID uint64, limit int) ([]*bridge.BurnRecord, error) {
	var out []*bridge.BurnRecord
	for _, r := range s.burns {
		if r.Bridge == b && !r.IsClaimed && r.ID >= fromID {
			out = append(out, &r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memState) InsertOperationEvents(_ context.Context, records []*OperationEventRecord) error {
	for _, r := range records {
		s.events = append(s.events, *r)
	}
	return nil
}

func (s *memState) OperationEvents(_ context.Context, batchID string) ([]*OperationEventRecord, error) {
	var out []*OperationEventRecord
	for i := range s.events {
		if s.events[i].BatchID == batchID {
			r := s.events[i]
			out = append(out, &r)
		}
	}
	return out, nil
}

func (s *memState) Balance(ctx context.Context, asset types.Asset, owner types.Address) (uint64, error) {
	return s.ledger.Balance(ctx, asset, owner)
}

func (s *memState) Transfer(ctx context.Context, asset types.Asset, from, to types.Address, amount uint64) error {
	return s.ledger.Transfer(ctx, asset, from, to, amount)
}

func (s *memState) Mint(ctx context.Context, asset types.Asset, to types.Address, amount uint64) error {
	return s.ledger.Mint(ctx, asset, to, amount)
}

func (s *memState) Burn(ctx context.Context, asset types.Asset, from types.Address, amount uint64) error {
	return s.ledger.Burn(ctx, asset, from, amount)
}
