package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainsafe/aa-bridge-middleware/pkg/entrypoint"
	"github.com/chainsafe/aa-bridge-middleware/pkg/paymaster"
	"github.com/chainsafe/aa-bridge-middleware/pkg/store"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
	"github.com/chainsafe/aa-bridge-middleware/pkg/wallet"
)

// txAccounts resolves batch records from a store transaction. Each record is
// loaded once so every operation of a batch sees the previous ones' effects;
// flush writes the touched records back.
type txAccounts struct {
	tx         store.Tx
	wallets    map[types.Address]*wallet.Wallet
	paymasters map[types.Address]*paymaster.Paymaster
	stakes     map[types.Address]*entrypoint.PaymasterStake
	order      []types.Address
}

func newTxAccounts(tx store.Tx) *txAccounts {
	return &txAccounts{
		tx:         tx,
		wallets:    make(map[types.Address]*wallet.Wallet),
		paymasters: make(map[types.Address]*paymaster.Paymaster),
		stakes:     make(map[types.Address]*entrypoint.PaymasterStake),
	}
}

func (a *txAccounts) Wallet(ctx context.Context, addr types.Address) (*wallet.Wallet, error) {
	if w, ok := a.wallets[addr]; ok {
		return w, nil
	}
	w, err := a.tx.Wallet(ctx, addr)
	if err != nil {
		return nil, err
	}
	a.wallets[addr] = w
	a.order = append(a.order, addr)
	return w, nil
}

func (a *txAccounts) Paymaster(ctx context.Context, addr types.Address) (*paymaster.Paymaster, error) {
	if pm, ok := a.paymasters[addr]; ok {
		return pm, nil
	}
	pm, err := a.tx.Paymaster(ctx, addr)
	if err != nil {
		return nil, err
	}
	a.paymasters[addr] = pm
	a.order = append(a.order, addr)
	return pm, nil
}

func (a *txAccounts) Stake(ctx context.Context, pm types.Address) (*entrypoint.PaymasterStake, error) {
	if s, ok := a.stakes[pm]; ok {
		return s, nil
	}
	s, err := a.tx.Stake(ctx, pm)
	if errors.Is(err, store.ErrNotFound) {
		a.stakes[pm] = nil
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	a.stakes[pm] = s
	return s, nil
}

// flush persists wallets and paymasters in first-touch order.
func (a *txAccounts) flush(ctx context.Context) error {
	for _, addr := range a.order {
		if w, ok := a.wallets[addr]; ok {
			if err := a.tx.UpdateWallet(ctx, w); err != nil {
				return fmt.Errorf("persist wallet: %w", err)
			}
		}
		if pm, ok := a.paymasters[addr]; ok {
			if err := a.tx.UpdatePaymaster(ctx, pm); err != nil {
				return fmt.Errorf("persist paymaster: %w", err)
			}
		}
	}
	return nil
}
