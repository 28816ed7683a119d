// Package userop defines the sender-authorized operation, its canonical hash
// and the paymaster data encoding.
package userop

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	apperrors "github.com/chainsafe/aa-bridge-middleware/pkg/app/errors"
	"github.com/chainsafe/aa-bridge-middleware/pkg/auth"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
)

// ErrInvalidPaymasterData is returned for any malformed paymaster_and_data buffer.
var ErrInvalidPaymasterData = apperrors.New(apperrors.CategoryMalformedInput, "invalid paymaster data")

// UserOperation is an intent signed by the wallet owner.
type UserOperation struct {
	Sender               types.Address   `json:"sender"`
	Nonce                uint64          `json:"nonce"`
	InitCode             hexutil.Bytes   `json:"init_code,omitzero"`
	CallData             hexutil.Bytes   `json:"call_data"`
	CallGasLimit         uint64          `json:"call_gas_limit"`
	VerificationGasLimit uint64          `json:"verification_gas_limit"`
	PreVerificationGas   uint64          `json:"pre_verification_gas"`
	MaxFeePerGas         uint64          `json:"max_fee_per_gas"`
	MaxPriorityFeePerGas uint64          `json:"max_priority_fee_per_gas"`
	PaymasterAndData     hexutil.Bytes   `json:"paymaster_and_data,omitzero"`
	Signature            types.Signature `json:"signature"`
}

// Hash is the canonical operation hash:
// H(sender ‖ le64(nonce) ‖ call_data ‖ le64(call_gas_limit) ‖ le64(max_fee_per_gas)).
// Gas fields other than the call gas limit and the paymaster data are not covered.
func (op *UserOperation) Hash() common.Hash {
	return auth.Hash(
		op.Sender[:],
		auth.LE64(op.Nonce),
		op.CallData,
		auth.LE64(op.CallGasLimit),
		auth.LE64(op.MaxFeePerGas),
	)
}

// HasPaymaster reports whether any paymaster data was supplied.
func (op *UserOperation) HasPaymaster() bool {
	return len(op.PaymasterAndData) > 0
}

// ExtractPaymaster returns the paymaster address prefix when present.
func (op *UserOperation) ExtractPaymaster() (types.Address, bool) {
	if len(op.PaymasterAndData) < types.AddressLength {
		return types.Address{}, false
	}
	var pm types.Address
	copy(pm[:], op.PaymasterAndData[:types.AddressLength])
	return pm, true
}

// SplitPaymaster splits paymaster_and_data into the paymaster address and its
// method data. present is false for an empty buffer.
func (op *UserOperation) SplitPaymaster() (paymaster types.Address, data []byte, present bool, err error) {
	if len(op.PaymasterAndData) == 0 {
		return types.Address{}, nil, false, nil
	}
	pm, ok := op.ExtractPaymaster()
	if !ok {
		return types.Address{}, nil, true, fmt.Errorf("%w: %d bytes is shorter than a paymaster address",
			ErrInvalidPaymasterData, len(op.PaymasterAndData))
	}
	return pm, op.PaymasterAndData[types.AddressLength:], true, nil
}

// SetPaymaster fills PaymasterAndData from a paymaster address and method.
func (op *UserOperation) SetPaymaster(paymaster types.Address, method PaymentMethod) {
	buf := make([]byte, 0, types.AddressLength+tokenPaymentLength)
	buf = append(buf, paymaster[:]...)
	op.PaymasterAndData = append(buf, method.Encode()...)
}

// Cost returns the gas used and the maximum and actual costs of the operation.
//
//	gas_used        = call_gas_limit
//	max_cost        = (call_gas_limit + verification_gas_limit + pre_verification_gas) * max_fee_per_gas
//	actual_gas_cost = (gas_used + pre_verification_gas) * max_fee_per_gas
func (op *UserOperation) Cost() (Cost, error) {
	totalGas, err := types.CheckedAdd(op.CallGasLimit, op.VerificationGasLimit)
	if err != nil {
		return Cost{}, err
	}
	if totalGas, err = types.CheckedAdd(totalGas, op.PreVerificationGas); err != nil {
		return Cost{}, err
	}
	maxCost, err := types.CheckedMul(totalGas, op.MaxFeePerGas)
	if err != nil {
		return Cost{}, err
	}

	usedGas, err := types.CheckedAdd(op.CallGasLimit, op.PreVerificationGas)
	if err != nil {
		return Cost{}, err
	}
	actual, err := types.CheckedMul(usedGas, op.MaxFeePerGas)
	if err != nil {
		return Cost{}, err
	}

	return Cost{GasUsed: op.CallGasLimit, MaxCost: maxCost, ActualGasCost: actual}, nil
}

// Cost is the gas accounting for one operation.
type Cost struct {
	GasUsed       uint64
	MaxCost       uint64
	ActualGasCost uint64
}
