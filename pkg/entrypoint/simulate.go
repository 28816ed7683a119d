package entrypoint

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
	"github.com/chainsafe/aa-bridge-middleware/pkg/userop"
)

// SimulationResult is the outcome of a dry-run validation.
type SimulationResult struct {
	OpHash    common.Hash    `json:"op_hash"`
	Sender    types.Address  `json:"sender"`
	Code      ValidationCode `json:"code"`
	Reason    string         `json:"reason,omitempty"`
	MaxCost   uint64         `json:"max_cost"`
	PreCharge uint64         `json:"pre_charge"`
}

// SimulateValidation runs the prefilter, wallet and paymaster checks on copies
// of the records. Nothing passed in is mutated.
func (e *EntryPoint) SimulateValidation(ctx context.Context, op *userop.UserOperation, accounts Accounts,
	now int64) *SimulationResult {
	res := &SimulationResult{OpHash: op.Hash(), Sender: op.Sender}
	reject := func(code ValidationCode, err error) *SimulationResult {
		res.Code = code
		res.Reason = err.Error()
		return res
	}

	if code := e.ValidateUserOperation(op); code != Valid {
		res.Code = code
		return res
	}
	cost, err := op.Cost()
	if err != nil {
		return reject(GasLimitExceeded, err)
	}
	res.MaxCost = cost.MaxCost

	pmAddr, pmData, hasPaymaster, err := op.SplitPaymaster()
	if err != nil {
		return reject(PaymasterRejected, err)
	}

	w, err := accounts.Wallet(ctx, op.Sender)
	if err != nil {
		return reject(codeFor(err), err)
	}
	if err := w.CheckExecution(op, now); err != nil {
		return reject(codeFor(err), err)
	}

	if hasPaymaster {
		_, vr, err := e.validatePaymaster(ctx, op, pmAddr, pmData, cost.MaxCost, readOnly{accounts}, now)
		if err != nil {
			return reject(PaymasterRejected, err)
		}
		res.PreCharge = vr.PreCharge
	} else {
		res.PreCharge = cost.MaxCost
	}
	return res
}
