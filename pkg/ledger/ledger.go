// Package ledger is the asset transfer primitive used by the paymaster, entry
// point and bridge to move native balances and tokens between accounts.
package ledger

import (
	"context"

	apperrors "github.com/chainsafe/aa-bridge-middleware/pkg/app/errors"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
)

var (
	ErrInsufficientFunds = apperrors.New(apperrors.CategoryResourceExhausted, "insufficient funds")
	ErrInvalidAmount     = apperrors.New(apperrors.CategoryMalformedInput, "amount must be greater than zero")
)

// Ledger moves assets between accounts. Implementations must apply each call
// atomically: a failed call leaves every balance unchanged.
type Ledger interface {
	Balance(ctx context.Context, asset types.Asset, owner types.Address) (uint64, error)
	Transfer(ctx context.Context, asset types.Asset, from, to types.Address, amount uint64) error
	Mint(ctx context.Context, asset types.Asset, to types.Address, amount uint64) error
	Burn(ctx context.Context, asset types.Asset, from types.Address, amount uint64) error
}

// Key identifies one balance row.
type Key struct {
	Asset types.Asset
	Owner types.Address
}
