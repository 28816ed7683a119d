package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/aa-bridge-middleware/pkg/store"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
	"github.com/chainsafe/aa-bridge-middleware/pkg/wallet"
)

func (s *ledgerService) CreateWallet(ctx context.Context, owner types.Address, recoveryHash common.Hash, dailyLimit uint64) (*wallet.Wallet, error) {
	w := wallet.New(owner, recoveryHash, dailyLimit, s.now())
	err := s.store.RunInTx(ctx, func(ctx context.Context, tx store.Tx) error {
		return tx.CreateWallet(ctx, w)
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (s *ledgerService) GetWallet(ctx context.Context, addr types.Address) (*wallet.Wallet, error) {
	rec, err := s.store.Wallet(ctx, addr)
	if err != nil {
		return nil, notFound(err, "wallet")
	}
	return rec, nil
}

// mutateWallet loads the wallet under lock, applies fn and persists the result.
func (s *ledgerService) mutateWallet(ctx context.Context, addr types.Address, fn func(w *wallet.Wallet) error) (*wallet.Wallet, error) {
	var out *wallet.Wallet
	err := s.store.RunInTx(ctx, func(ctx context.Context, tx store.Tx) error {
		w, err := tx.Wallet(ctx, addr)
		if err != nil {
			return err
		}
		if err := fn(w); err != nil {
			return err
		}
		out = w
		return tx.UpdateWallet(ctx, w)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ledgerService) Freeze(ctx context.Context, caller, addr types.Address) (*wallet.Wallet, error) {
	return s.mutateWallet(ctx, addr, func(w *wallet.Wallet) error {
		return w.Freeze(caller)
	})
}

func (s *ledgerService) Unfreeze(ctx context.Context, caller, addr types.Address) (*wallet.Wallet, error) {
	return s.mutateWallet(ctx, addr, func(w *wallet.Wallet) error {
		return w.Unfreeze(caller)
	})
}

func (s *ledgerService) AddGuardian(ctx context.Context, caller, addr, guardian types.Address) (*wallet.Wallet, error) {
	return s.mutateWallet(ctx, addr, func(w *wallet.Wallet) error {
		return w.AddGuardian(caller, guardian)
	})
}

func (s *ledgerService) RemoveGuardian(ctx context.Context, caller, addr, guardian types.Address) (*wallet.Wallet, error) {
	return s.mutateWallet(ctx, addr, func(w *wallet.Wallet) error {
		return w.RemoveGuardian(caller, guardian)
	})
}

func (s *ledgerService) SetDailyLimit(ctx context.Context, caller, addr types.Address, limit uint64) (*wallet.Wallet, error) {
	return s.mutateWallet(ctx, addr, func(w *wallet.Wallet) error {
		return w.SetDailyLimit(caller, limit)
	})
}

func (s *ledgerService) InitiateRecovery(ctx context.Context, caller, addr, newOwner types.Address) (*wallet.RecoveryProgress, error) {
	var progress *wallet.RecoveryProgress
	_, err := s.mutateWallet(ctx, addr, func(w *wallet.Wallet) error {
		var err error
		progress, err = w.InitiateRecovery(caller, newOwner, s.now())
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logRecovery(addr, progress)
	return progress, nil
}

func (s *ledgerService) ApproveRecovery(ctx context.Context, caller, addr types.Address) (*wallet.RecoveryProgress, error) {
	var progress *wallet.RecoveryProgress
	_, err := s.mutateWallet(ctx, addr, func(w *wallet.Wallet) error {
		var err error
		progress, err = w.ApproveRecovery(caller)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logRecovery(addr, progress)
	return progress, nil
}

func (s *ledgerService) CancelRecovery(ctx context.Context, caller, addr types.Address) error {
	_, err := s.mutateWallet(ctx, addr, func(w *wallet.Wallet) error {
		return w.CancelRecovery(caller)
	})
	return err
}

func (s *ledgerService) logRecovery(addr types.Address, p *wallet.RecoveryProgress) {
	if p == nil || !p.Completed {
		return
	}
	s.logger.Info("Wallet ownership recovered",
		zap.String("wallet", addr.String()),
		zap.String("new_owner", p.NewOwner.String()),
		zap.Int("approvals", p.Approvals),
	)
}
