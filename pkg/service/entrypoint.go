package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainsafe/aa-bridge-middleware/internal/metrics"
	"github.com/chainsafe/aa-bridge-middleware/pkg/entrypoint"
	"github.com/chainsafe/aa-bridge-middleware/pkg/store"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
	"github.com/chainsafe/aa-bridge-middleware/pkg/userop"
)

func (s *ledgerService) InitializeEntryPoint(ctx context.Context, caller types.Address) (*entrypoint.EntryPoint, error) {
	if caller != s.authority {
		return nil, ErrNotAuthority
	}
	ep := entrypoint.New(caller, s.now())
	err := s.store.RunInTx(ctx, func(ctx context.Context, tx store.Tx) error {
		return tx.CreateEntryPoint(ctx, ep)
	})
	if err != nil {
		return nil, err
	}
	return ep, nil
}

func (s *ledgerService) GetEntryPoint(ctx context.Context) (*entrypoint.EntryPoint, error) {
	return s.store.EntryPoint(ctx, s.entryPoint)
}

func (s *ledgerService) HandleOps(ctx context.Context, ops []*userop.UserOperation, beneficiary types.Address) (*BatchResponse, error) {
	if len(ops) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(ops) > s.maxBatchSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, len(ops), s.maxBatchSize)
	}

	start := time.Now()
	batchID := uuid.NewString()
	now := s.now()

	var result *entrypoint.BatchResult
	err := s.store.RunInTx(ctx, func(ctx context.Context, tx store.Tx) error {
		ep, err := tx.EntryPoint(ctx, s.entryPoint)
		if err != nil {
			return err
		}
		accounts := newTxAccounts(tx)
		result, err = ep.HandleOps(ctx, ops, beneficiary, accounts, entrypoint.LedgerDispatcher{Ledger: tx}, tx, now)
		if err != nil {
			return err
		}
		if err := accounts.flush(ctx); err != nil {
			return err
		}
		if err := tx.UpdateEntryPoint(ctx, ep); err != nil {
			return err
		}

		records := make([]*store.OperationEventRecord, 0, len(result.Events))
		for i, ev := range result.Events {
			records = append(records, &store.OperationEventRecord{BatchID: batchID, Index: i, Event: ev, CreatedAt: now})
		}
		return tx.InsertOperationEvents(ctx, records)
	})
	if err != nil {
		return nil, err
	}

	metrics.BatchSize.Observe(float64(len(ops)))
	metrics.BatchDuration.Observe(time.Since(start).Seconds())
	for _, ev := range result.Events {
		metrics.OperationsTotal.WithLabelValues(eventLabel(ev)).Inc()
		if ev.ActualGasUsed > 0 {
			sponsorship := "self"
			if ev.Paymaster != nil {
				sponsorship = "paymaster"
			}
			metrics.GasUsed.WithLabelValues(sponsorship).Observe(float64(ev.ActualGasUsed))
		}
	}

	s.logger.Info("Batch handled",
		zap.String("batch_id", batchID),
		zap.Uint64("operations", result.TotalOperations),
		zap.Uint64("successful", result.SuccessfulOperations),
		zap.Uint64("gas_used", result.TotalGasUsed),
	)
	return &BatchResponse{BatchID: batchID, BatchResult: result}, nil
}

func eventLabel(ev entrypoint.OperationEvent) string {
	switch {
	case ev.Success:
		return "success"
	case ev.Code == entrypoint.Valid:
		return "reverted"
	default:
		return ev.Code.String()
	}
}

// simulationAccounts reads outside a transaction; missing stakes resolve to nil.
type simulationAccounts struct {
	store.Reader
}

func (a simulationAccounts) Stake(ctx context.Context, pm types.Address) (*entrypoint.PaymasterStake, error) {
	st, err := a.Reader.Stake(ctx, pm)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	return st, err
}

func (s *ledgerService) SimulateValidation(ctx context.Context, op *userop.UserOperation) (*entrypoint.SimulationResult, error) {
	ep, err := s.store.EntryPoint(ctx, s.entryPoint)
	if err != nil {
		return nil, err
	}
	return ep.SimulateValidation(ctx, op, simulationAccounts{Reader: s.store}, s.now()), nil
}

// loadStake returns the stake of pm, or a fresh one when it never staked.
func loadStake(ctx context.Context, tx store.Tx, pm types.Address) (*entrypoint.PaymasterStake, error) {
	st, err := tx.Stake(ctx, pm)
	if err == nil {
		return st, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	p, err := tx.Paymaster(ctx, pm)
	if err != nil {
		return nil, err
	}
	return entrypoint.NewStake(p), nil
}

func (s *ledgerService) AddStake(ctx context.Context, caller, pm types.Address, deposit, unstakeDelay uint64) (*entrypoint.PaymasterStake, error) {
	var stake *entrypoint.PaymasterStake
	err := s.store.RunInTx(ctx, func(ctx context.Context, tx store.Tx) error {
		ep, err := tx.EntryPoint(ctx, s.entryPoint)
		if err != nil {
			return err
		}
		stake, err = loadStake(ctx, tx, pm)
		if err != nil {
			return err
		}
		if err := ep.AddStake(ctx, stake, caller, deposit, unstakeDelay, tx); err != nil {
			return err
		}
		if err := tx.SaveStake(ctx, stake); err != nil {
			return err
		}
		return tx.UpdateEntryPoint(ctx, ep)
	})
	if err != nil {
		return nil, err
	}
	return stake, nil
}

func (s *ledgerService) UnlockStake(ctx context.Context, caller, pm types.Address) (*entrypoint.PaymasterStake, error) {
	var stake *entrypoint.PaymasterStake
	err := s.store.RunInTx(ctx, func(ctx context.Context, tx store.Tx) error {
		ep, err := tx.EntryPoint(ctx, s.entryPoint)
		if err != nil {
			return err
		}
		stake, err = tx.Stake(ctx, pm)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return entrypoint.ErrNoStake
			}
			return err
		}
		if err := ep.UnlockStake(stake, caller, s.now()); err != nil {
			return err
		}
		return tx.SaveStake(ctx, stake)
	})
	if err != nil {
		return nil, err
	}
	return stake, nil
}

func (s *ledgerService) WithdrawStake(ctx context.Context, caller, pm, destination types.Address) (uint64, error) {
	var amount uint64
	err := s.store.RunInTx(ctx, func(ctx context.Context, tx store.Tx) error {
		ep, err := tx.EntryPoint(ctx, s.entryPoint)
		if err != nil {
			return err
		}
		stake, err := tx.Stake(ctx, pm)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return entrypoint.ErrNoStake
			}
			return err
		}
		amount, err = ep.WithdrawStake(ctx, stake, caller, destination, s.now(), tx)
		if err != nil {
			return err
		}
		if err := tx.SaveStake(ctx, stake); err != nil {
			return err
		}
		return tx.UpdateEntryPoint(ctx, ep)
	})
	if err != nil {
		return 0, err
	}
	return amount, nil
}

func (s *ledgerService) GetDepositInfo(ctx context.Context, pm types.Address) (*entrypoint.DepositInfo, error) {
	ep, err := s.store.EntryPoint(ctx, s.entryPoint)
	if err != nil {
		return nil, err
	}
	if _, err := s.store.Paymaster(ctx, pm); err != nil {
		return nil, err
	}
	balance, err := s.store.Balance(ctx, types.Native(), pm)
	if err != nil {
		return nil, err
	}
	stake, err := s.store.Stake(ctx, pm)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	info := ep.NewDepositInfo(pm, balance, stake)
	return &info, nil
}
