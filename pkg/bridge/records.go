package bridge

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
)

// LockRecord proves an asset was escrowed for an outbound transfer.
type LockRecord struct {
	Address            types.Address `json:"address"`
	Bridge             types.Address `json:"bridge"`
	ID                 uint64        `json:"id"`
	User               types.Address `json:"user"`
	Asset              types.Asset   `json:"asset"`
	Amount             uint64        `json:"amount"`
	DestinationChain   uint64        `json:"destination_chain"`
	DestinationAddress types.Address `json:"destination_address"`
	Timestamp          int64         `json:"timestamp"`
	IsClaimed          bool          `json:"is_claimed"`
	ClaimTxHash        common.Hash   `json:"claim_tx_hash"`
}

// BurnRecord proves an asset was destroyed for an outbound transfer.
type BurnRecord struct {
	Address            types.Address `json:"address"`
	Bridge             types.Address `json:"bridge"`
	ID                 uint64        `json:"id"`
	User               types.Address `json:"user"`
	Asset              types.Asset   `json:"asset"`
	Amount             uint64        `json:"amount"`
	DestinationChain   uint64        `json:"destination_chain"`
	DestinationAddress types.Address `json:"destination_address"`
	Timestamp          int64         `json:"timestamp"`
	IsClaimed          bool          `json:"is_claimed"`
	ClaimTxHash        common.Hash   `json:"claim_tx_hash"`
}

// MintRecord proves an inbound transfer was settled. IsMinted is never unset.
type MintRecord struct {
	Address      types.Address `json:"address"`
	LockID       uint64        `json:"lock_id"`
	SourceChain  uint64        `json:"source_chain"`
	SourceTxHash common.Hash   `json:"source_tx_hash"`
	Recipient    types.Address `json:"recipient"`
	Asset        types.Asset   `json:"asset"`
	Amount       uint64        `json:"amount"`
	Timestamp    int64         `json:"timestamp"`
	IsMinted     bool          `json:"is_minted"`
}

// MarkClaimed records the destination transaction that settled the lock.
func (r *LockRecord) MarkClaimed(txHash common.Hash) error {
	if r.IsClaimed {
		return ErrAlreadyClaimed
	}
	r.IsClaimed = true
	r.ClaimTxHash = txHash
	return nil
}

// MarkClaimed records the destination transaction that settled the burn.
func (r *BurnRecord) MarkClaimed(txHash common.Hash) error {
	if r.IsClaimed {
		return ErrAlreadyClaimed
	}
	r.IsClaimed = true
	r.ClaimTxHash = txHash
	return nil
}
