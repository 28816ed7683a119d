package entrypoint

import (
	"context"

	"github.com/chainsafe/aa-bridge-middleware/pkg/paymaster"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
	"github.com/chainsafe/aa-bridge-middleware/pkg/wallet"
)

// readOnly hands out copies so simulated validation cannot touch real records.
type readOnly struct {
	Accounts
}

func (r readOnly) Wallet(ctx context.Context, addr types.Address) (*wallet.Wallet, error) {
	w, err := r.Accounts.Wallet(ctx, addr)
	if err != nil {
		return nil, err
	}
	return w.Clone(), nil
}

func (r readOnly) Paymaster(ctx context.Context, addr types.Address) (*paymaster.Paymaster, error) {
	pm, err := r.Accounts.Paymaster(ctx, addr)
	if err != nil {
		return nil, err
	}
	return pm.Clone(), nil
}

func (r readOnly) Stake(ctx context.Context, addr types.Address) (*PaymasterStake, error) {
	s, err := r.Accounts.Stake(ctx, addr)
	if err != nil || s == nil {
		return nil, err
	}
	c := *s
	return &c, nil
}

// AccountMap is an in-memory Accounts keyed by address.
type AccountMap struct {
	Wallets    map[types.Address]*wallet.Wallet
	Paymasters map[types.Address]*paymaster.Paymaster
	Stakes     map[types.Address]*PaymasterStake
}

func NewAccountMap() *AccountMap {
	return &AccountMap{
		Wallets:    make(map[types.Address]*wallet.Wallet),
		Paymasters: make(map[types.Address]*paymaster.Paymaster),
		Stakes:     make(map[types.Address]*PaymasterStake),
	}
}

func (m *AccountMap) Wallet(_ context.Context, addr types.Address) (*wallet.Wallet, error) {
	w, ok := m.Wallets[addr]
	if !ok {
		return nil, ErrUnknownAccount
	}
	return w, nil
}

func (m *AccountMap) Paymaster(_ context.Context, addr types.Address) (*paymaster.Paymaster, error) {
	pm, ok := m.Paymasters[addr]
	if !ok {
		return nil, ErrUnknownAccount
	}
	return pm, nil
}

func (m *AccountMap) Stake(_ context.Context, addr types.Address) (*PaymasterStake, error) {
	return m.Stakes[addr], nil
}
