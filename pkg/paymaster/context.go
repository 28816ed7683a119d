package paymaster

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
	"github.com/chainsafe/aa-bridge-middleware/pkg/userop"
)

// PaymentContext carries validation state to settlement.
type PaymentContext struct {
	Method       userop.PaymentMethod `msgpack:"method"`
	User         types.Address        `msgpack:"user"`
	PreCharge    uint64               `msgpack:"pre_charge"`
	TokenAccount *types.Address       `msgpack:"token_account"`
}

// Encode serializes the context.
func (c *PaymentContext) Encode() ([]byte, error) {
	b, err := msgpack.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode payment context: %w", err)
	}
	return b, nil
}

// DecodeContext parses a context produced by Encode.
func DecodeContext(b []byte) (*PaymentContext, error) {
	var c PaymentContext
	if err := msgpack.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContext, err)
	}
	return &c, nil
}
