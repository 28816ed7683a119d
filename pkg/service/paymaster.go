package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/chainsafe/aa-bridge-middleware/pkg/paymaster"
	"github.com/chainsafe/aa-bridge-middleware/pkg/store"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
)

var validate = validator.New()

func validateConfig(cfg paymaster.Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (s *ledgerService) CreatePaymaster(ctx context.Context, owner types.Address, cfg paymaster.Config) (*paymaster.Paymaster, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	pm := paymaster.New(owner, s.entryPoint, cfg, s.now())
	err := s.store.RunInTx(ctx, func(ctx context.Context, tx store.Tx) error {
		if _, err := tx.EntryPoint(ctx, s.entryPoint); err != nil {
			return err
		}
		return tx.CreatePaymaster(ctx, pm)
	})
	if err != nil {
		return nil, err
	}
	return pm, nil
}

func (s *ledgerService) GetPaymaster(ctx context.Context, addr types.Address) (*paymaster.Paymaster, error) {
	rec, err := s.store.Paymaster(ctx, addr)
	if err != nil {
		return nil, notFound(err, "paymaster")
	}
	return rec, nil
}

func (s *ledgerService) mutatePaymaster(ctx context.Context, addr types.Address,
	fn func(ctx context.Context, tx store.Tx, pm *paymaster.Paymaster) error) (*paymaster.Paymaster, error) {
	var out *paymaster.Paymaster
	err := s.store.RunInTx(ctx, func(ctx context.Context, tx store.Tx) error {
		pm, err := tx.Paymaster(ctx, addr)
		if err != nil {
			return err
		}
		if err := fn(ctx, tx, pm); err != nil {
			return err
		}
		out = pm
		return tx.UpdatePaymaster(ctx, pm)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ledgerService) AddSupportedToken(ctx context.Context, caller, pm, mint types.Address, rate uint64,
	oracle *types.Address) (*paymaster.Paymaster, error) {
	return s.mutatePaymaster(ctx, pm, func(_ context.Context, _ store.Tx, p *paymaster.Paymaster) error {
		return p.AddSupportedToken(caller, mint, rate, oracle)
	})
}

func (s *ledgerService) SetTokenActive(ctx context.Context, caller, pm, mint types.Address, active bool) (*paymaster.Paymaster, error) {
	return s.mutatePaymaster(ctx, pm, func(_ context.Context, _ store.Tx, p *paymaster.Paymaster) error {
		return p.SetTokenActive(caller, mint, active)
	})
}

func (s *ledgerService) UpdatePaymasterConfig(ctx context.Context, caller, pm types.Address, cfg paymaster.Config) (*paymaster.Paymaster, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return s.mutatePaymaster(ctx, pm, func(_ context.Context, _ store.Tx, p *paymaster.Paymaster) error {
		return p.UpdateConfig(caller, cfg)
	})
}

func (s *ledgerService) SetPaymasterActive(ctx context.Context, caller, pm types.Address, active bool) (*paymaster.Paymaster, error) {
	return s.mutatePaymaster(ctx, pm, func(_ context.Context, _ store.Tx, p *paymaster.Paymaster) error {
		return p.SetActive(caller, active)
	})
}

func (s *ledgerService) WithdrawPaymaster(ctx context.Context, caller, pm types.Address, asset types.Asset, amount uint64,
	destination types.Address) error {
	_, err := s.mutatePaymaster(ctx, pm, func(ctx context.Context, tx store.Tx, p *paymaster.Paymaster) error {
		return p.Withdraw(ctx, caller, asset, amount, destination, tx)
	})
	return err
}
