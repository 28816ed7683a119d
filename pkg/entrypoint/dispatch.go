package entrypoint

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/chainsafe/aa-bridge-middleware/pkg/ledger"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
	"github.com/chainsafe/aa-bridge-middleware/pkg/userop"
)

// Call data selectors understood by LedgerDispatcher.
const (
	CallNativeTransfer byte = 0
	CallTokenTransfer  byte = 1
)

// LedgerDispatcher executes asset transfers on behalf of the sender wallet.
//
//	native: 0x00 ‖ to[32] ‖ le64(amount)
//	token:  0x01 ‖ mint[32] ‖ to[32] ‖ le64(amount)
//
// Empty call data is a no-op.
type LedgerDispatcher struct {
	Ledger ledger.Ledger
}

func (d LedgerDispatcher) Dispatch(ctx context.Context, op *userop.UserOperation) error {
	data := op.CallData
	if len(data) == 0 {
		return nil
	}

	var (
		asset types.Asset
		rest  []byte
	)
	switch {
	case data[0] == CallNativeTransfer && len(data) == 1+32+8:
		asset, rest = types.Native(), data[1:]
	case data[0] == CallTokenTransfer && len(data) == 1+32+32+8:
		var mint types.Address
		copy(mint[:], data[1:33])
		asset, rest = types.Token(mint), data[33:]
	default:
		return fmt.Errorf("unsupported call data (%d bytes, selector %d)", len(data), data[0])
	}

	var to types.Address
	copy(to[:], rest[:32])
	amount := binary.LittleEndian.Uint64(rest[32:])
	return d.Ledger.Transfer(ctx, asset, op.Sender, to, amount)
}

// EncodeTransferCall builds call data for LedgerDispatcher.
func EncodeTransferCall(asset types.Asset, to types.Address, amount uint64) []byte {
	buf := make([]byte, 0, 1+32+32+8)
	if asset.IsNative() {
		buf = append(buf, CallNativeTransfer)
	} else {
		buf = append(buf, CallTokenTransfer)
		buf = append(buf, asset.Mint[:]...)
	}
	buf = append(buf, to[:]...)
	return binary.LittleEndian.AppendUint64(buf, amount)
}

// DispatcherFunc adapts a function to CallDispatcher.
type DispatcherFunc func(ctx context.Context, op *userop.UserOperation) error

func (f DispatcherFunc) Dispatch(ctx context.Context, op *userop.UserOperation) error {
	return f(ctx, op)
}
