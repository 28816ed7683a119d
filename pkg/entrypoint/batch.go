package entrypoint

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/aa-bridge-middleware/pkg/ledger"
	"github.com/chainsafe/aa-bridge-middleware/pkg/paymaster"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
	"github.com/chainsafe/aa-bridge-middleware/pkg/userop"
	"github.com/chainsafe/aa-bridge-middleware/pkg/wallet"
)

// Accounts resolves the records a batch touches. Records returned are mutated
// in place; the caller persists them after HandleOps returns.
type Accounts interface {
	Wallet(ctx context.Context, addr types.Address) (*wallet.Wallet, error)
	Paymaster(ctx context.Context, addr types.Address) (*paymaster.Paymaster, error)
	// Stake returns nil, nil when the paymaster never staked.
	Stake(ctx context.Context, paymaster types.Address) (*PaymasterStake, error)
}

// CallDispatcher executes the target call of an authorized operation.
type CallDispatcher interface {
	Dispatch(ctx context.Context, op *userop.UserOperation) error
}

// OperationEvent is the per-operation outcome of a batch.
type OperationEvent struct {
	OpHash        common.Hash    `json:"op_hash"`
	Sender        types.Address  `json:"sender"`
	Paymaster     *types.Address `json:"paymaster,omitempty"`
	Nonce         uint64         `json:"nonce"`
	Success       bool           `json:"success"`
	Code          ValidationCode `json:"code"`
	ActualGasCost uint64         `json:"actual_gas_cost"`
	ActualGasUsed uint64         `json:"actual_gas_used"`
	Reason        string         `json:"reason,omitempty"`
}

// BatchResult aggregates a HandleOps call.
type BatchResult struct {
	Beneficiary          types.Address    `json:"beneficiary"`
	TotalOperations      uint64           `json:"total_operations"`
	SuccessfulOperations uint64           `json:"successful_operations"`
	TotalGasUsed         uint64           `json:"total_gas_used"`
	Events               []OperationEvent `json:"events"`
}

// HandleOps runs every operation of the batch. A failing operation is recorded
// in its event and never aborts the batch. TotalOperations grows by len(ops).
func (e *EntryPoint) HandleOps(
	ctx context.Context,
	ops []*userop.UserOperation,
	beneficiary types.Address,
	accounts Accounts,
	dispatcher CallDispatcher,
	transfers ledger.Ledger,
	now int64,
) (*BatchResult, error) {
	total, err := types.CheckedAdd(e.TotalOperations, uint64(len(ops)))
	if err != nil {
		return nil, err
	}

	result := &BatchResult{
		Beneficiary:     beneficiary,
		TotalOperations: uint64(len(ops)),
		Events:          make([]OperationEvent, 0, len(ops)),
	}
	for _, op := range ops {
		ev := e.handleOp(ctx, op, accounts, dispatcher, transfers, now)
		if ev.Success {
			result.SuccessfulOperations++
		}
		// gas is consumed by every executed operation, reverted or not
		if result.TotalGasUsed, err = types.CheckedAdd(result.TotalGasUsed, ev.ActualGasUsed); err != nil {
			return nil, err
		}
		result.Events = append(result.Events, ev)
	}

	e.TotalOperations = total
	return result, nil
}

func (e *EntryPoint) handleOp(
	ctx context.Context,
	op *userop.UserOperation,
	accounts Accounts,
	dispatcher CallDispatcher,
	transfers ledger.Ledger,
	now int64,
) OperationEvent {
	ev := OperationEvent{OpHash: op.Hash(), Sender: op.Sender, Nonce: op.Nonce}
	fail := func(code ValidationCode, err error) OperationEvent {
		ev.Code = code
		ev.Reason = err.Error()
		return ev
	}

	if code := e.ValidateUserOperation(op); code != Valid {
		return fail(code, fmt.Errorf("%w: %s", ErrPrefilterRejected, code))
	}
	cost, err := op.Cost()
	if err != nil {
		return fail(GasLimitExceeded, err)
	}
	pmAddr, pmData, hasPaymaster, err := op.SplitPaymaster()
	if err != nil {
		return fail(PaymasterRejected, err)
	}
	if hasPaymaster {
		ev.Paymaster = &pmAddr
	}

	w, err := accounts.Wallet(ctx, op.Sender)
	if err != nil {
		return fail(codeFor(err), err)
	}
	if _, err := w.ExecuteUserOperation(op, now); err != nil {
		return fail(codeFor(err), err)
	}

	var (
		pm         *paymaster.Paymaster
		validation *paymaster.ValidationResult
	)
	if hasPaymaster {
		pm, validation, err = e.validatePaymaster(ctx, op, pmAddr, pmData, cost.MaxCost, accounts, now)
		if err != nil {
			return fail(PaymasterRejected, err)
		}
		if !validation.Method.IsSponsored() {
			escrow := types.Token(validation.Method.TokenMint)
			if err := transfers.Transfer(ctx, escrow, op.Sender, pm.Address, validation.PreCharge); err != nil {
				pm.ReleaseRateSlot(op.Sender)
				return fail(InsufficientFunds, fmt.Errorf("token pre-charge: %w", err))
			}
		}
	}

	ev.ActualGasUsed = cost.GasUsed
	ev.ActualGasCost = cost.ActualGasCost

	mode := paymaster.OpSucceeded
	callErr := dispatcher.Dispatch(ctx, op)
	if callErr != nil {
		mode = paymaster.OpReverted
	}

	if pm != nil {
		if _, err := pm.PostOp(ctx, mode, validation.Context, cost.ActualGasCost, transfers); err != nil {
			_, revertErr := pm.PostOp(ctx, paymaster.PostOpReverted, validation.Context, cost.ActualGasCost, transfers)
			return fail(PaymasterRejected, errors.Join(err, revertErr))
		}
	}

	if callErr != nil {
		return fail(Valid, fmt.Errorf("%w: %v", ErrCallReverted, callErr))
	}
	ev.Success = true
	return ev
}

func (e *EntryPoint) validatePaymaster(
	ctx context.Context,
	op *userop.UserOperation,
	pmAddr types.Address,
	data []byte,
	maxCost uint64,
	accounts Accounts,
	now int64,
) (*paymaster.Paymaster, *paymaster.ValidationResult, error) {
	pm, err := accounts.Paymaster(ctx, pmAddr)
	if err != nil {
		return nil, nil, err
	}
	if pm.EntryPoint != e.Address {
		return nil, nil, ErrWrongEntryPoint
	}
	if pm.Config.RequirePreDeposit {
		stake, err := accounts.Stake(ctx, pmAddr)
		if err != nil {
			return nil, nil, err
		}
		if err := e.checkPreDeposit(stake); err != nil {
			return nil, nil, err
		}
	}
	res, err := pm.Validate(op.Sender, data, maxCost, now)
	if err != nil {
		return nil, nil, err
	}
	return pm, res, nil
}

func codeFor(err error) ValidationCode {
	switch {
	case errors.Is(err, wallet.ErrInvalidSignature):
		return InvalidSignature
	case errors.Is(err, wallet.ErrInvalidNonce):
		return InvalidNonce
	case errors.Is(err, wallet.ErrDailyLimitExceeded), errors.Is(err, ledger.ErrInsufficientFunds):
		return InsufficientFunds
	default:
		return InvalidSignature
	}
}
