// Package entrypoint dispatches batches of user operations through wallet
// authorization, paymaster validation, target execution and settlement, and
// holds paymaster stake.
package entrypoint

import (
	"fmt"
	"math"

	"github.com/chainsafe/aa-bridge-middleware/pkg/keying"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
	"github.com/chainsafe/aa-bridge-middleware/pkg/userop"
)

const (
	DefaultMinStake     uint64 = 1_000_000_000
	DefaultUnstakeDelay uint64 = 86400
	// MaxUnstakeDelay keeps now+delay representable as Unix seconds.
	MaxUnstakeDelay uint64 = math.MaxInt64
)

// EntryPoint is the global operation counter and paymaster stake policy.
type EntryPoint struct {
	Address         types.Address `json:"address"`
	Authority       types.Address `json:"authority"`
	TotalOperations uint64        `json:"total_operations"`
	TotalPaymasters uint64        `json:"total_paymasters"`
	MinStake        uint64        `json:"min_stake"`
	UnstakeDelay    uint64        `json:"unstake_delay"`
	CreatedAt       int64         `json:"created_at"`
}

// New creates an entry point with the default stake policy.
func New(authority types.Address, now int64) *EntryPoint {
	return &EntryPoint{
		Address:      keying.EntryPoint(authority),
		Authority:    authority,
		MinStake:     DefaultMinStake,
		UnstakeDelay: DefaultUnstakeDelay,
		CreatedAt:    now,
	}
}

// ValidationCode is the coarse outcome of operation validation.
type ValidationCode int

const (
	Valid ValidationCode = iota
	InvalidSignature
	InvalidNonce
	InsufficientFunds
	PaymasterRejected
	GasLimitExceeded
)

func (c ValidationCode) String() string {
	switch c {
	case Valid:
		return "valid"
	case InvalidSignature:
		return "invalid_signature"
	case InvalidNonce:
		return "invalid_nonce"
	case InsufficientFunds:
		return "insufficient_funds"
	case PaymasterRejected:
		return "paymaster_rejected"
	case GasLimitExceeded:
		return "gas_limit_exceeded"
	default:
		return "unknown"
	}
}

func (c ValidationCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ValidationCode) UnmarshalText(text []byte) error {
	for code := Valid; code <= GasLimitExceeded; code++ {
		if code.String() == string(text) {
			*c = code
			return nil
		}
	}
	return fmt.Errorf("unknown validation code %q", text)
}

// ValidateUserOperation is a cheap prefilter independent of the wallet.
func (e *EntryPoint) ValidateUserOperation(op *userop.UserOperation) ValidationCode {
	if op.CallGasLimit == 0 {
		return GasLimitExceeded
	}
	if op.MaxFeePerGas == 0 {
		return InsufficientFunds
	}
	return Valid
}
