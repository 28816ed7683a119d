package bridge

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/aa-bridge-middleware/pkg/auth"
	"github.com/chainsafe/aa-bridge-middleware/pkg/keying"
	"github.com/chainsafe/aa-bridge-middleware/pkg/ledger"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
)

// LockRequest escrows Amount of Asset for DestinationChain.
type LockRequest struct {
	Amount             uint64        `json:"amount"`
	DestinationChain   uint64        `json:"destination_chain"`
	DestinationAddress types.Address `json:"destination_address"`
	Asset              types.Asset   `json:"asset"`
}

// BurnRequest destroys Amount of a token for DestinationChain.
type BurnRequest struct {
	Amount             uint64        `json:"amount"`
	DestinationChain   uint64        `json:"destination_chain"`
	DestinationAddress types.Address `json:"destination_address"`
	Mint               types.Address `json:"mint"`
}

// MintRequest settles an inbound transfer. Signatures are index aligned with
// the bridge's validator list.
type MintRequest struct {
	LockID       uint64            `json:"lock_id"`
	SourceChain  uint64            `json:"source_chain"`
	SourceTxHash common.Hash       `json:"source_tx_hash"`
	Recipient    types.Address     `json:"recipient"`
	Asset        types.Asset       `json:"asset"`
	Amount       uint64            `json:"amount"`
	Signatures   []types.Signature `json:"signatures"`
}

// SettlementMessage is the digest each validator signs:
// H(le64(lock_id) ‖ le64(source_chain) ‖ source_tx_hash ‖ recipient ‖ mint or zero ‖ le64(amount)).
func SettlementMessage(lockID, sourceChain uint64, sourceTxHash common.Hash, recipient types.Address,
	asset types.Asset, amount uint64) common.Hash {
	return auth.Hash(
		auth.LE64(lockID),
		auth.LE64(sourceChain),
		sourceTxHash[:],
		recipient[:],
		asset.MintBytes(),
		auth.LE64(amount),
	)
}

// Message returns the settlement message of the request.
func (r *MintRequest) Message() common.Hash {
	return SettlementMessage(r.LockID, r.SourceChain, r.SourceTxHash, r.Recipient, r.Asset, r.Amount)
}

// LockTokens escrows the asset in the bridge vault and creates a lock record.
func (b *Bridge) LockTokens(ctx context.Context, user types.Address, req LockRequest, now int64,
	transfers ledger.Ledger) (*LockRecord, error) {
	if b.IsPaused {
		return nil, ErrBridgePaused
	}
	chain, err := b.activeChain(req.DestinationChain)
	if err != nil {
		return nil, err
	}
	if req.Amount == 0 {
		return nil, ErrInvalidAmount
	}
	if req.DestinationAddress.IsZero() {
		return nil, ErrInvalidDestination
	}
	locked, err := types.CheckedAdd(b.TotalLocked, req.Amount)
	if err != nil {
		return nil, err
	}

	if err := transfers.Transfer(ctx, req.Asset, user, b.Address, req.Amount); err != nil {
		return nil, fmt.Errorf("escrow %d %s: %w", req.Amount, req.Asset, err)
	}
	if err := addVolume(chain, req.Amount); err != nil {
		return nil, err
	}
	id, err := b.nextID()
	if err != nil {
		return nil, err
	}
	b.TotalLocked = locked

	return &LockRecord{
		Address:            keying.Lock(b.Address, id),
		Bridge:             b.Address,
		ID:                 id,
		User:               user,
		Asset:              req.Asset,
		Amount:             req.Amount,
		DestinationChain:   req.DestinationChain,
		DestinationAddress: req.DestinationAddress,
		Timestamp:          now,
	}, nil
}

// BurnTokens destroys the token and creates a burn record. Burns draw their id
// from the same nonce as locks.
func (b *Bridge) BurnTokens(ctx context.Context, user types.Address, req BurnRequest, now int64,
	transfers ledger.Ledger) (*BurnRecord, error) {
	if b.IsPaused {
		return nil, ErrBridgePaused
	}
	chain, err := b.activeChain(req.DestinationChain)
	if err != nil {
		return nil, err
	}
	if req.Amount == 0 {
		return nil, ErrInvalidAmount
	}
	if req.Mint.IsZero() {
		return nil, ErrTokenRequired
	}
	if req.DestinationAddress.IsZero() {
		return nil, ErrInvalidDestination
	}

	asset := types.Token(req.Mint)
	if err := transfers.Burn(ctx, asset, user, req.Amount); err != nil {
		return nil, fmt.Errorf("burn %d %s: %w", req.Amount, asset, err)
	}
	if err := addVolume(chain, req.Amount); err != nil {
		return nil, err
	}
	id, err := b.nextID()
	if err != nil {
		return nil, err
	}

	return &BurnRecord{
		Address:            keying.Burn(b.Address, id),
		Bridge:             b.Address,
		ID:                 id,
		User:               user,
		Asset:              asset,
		Amount:             req.Amount,
		DestinationChain:   req.DestinationChain,
		DestinationAddress: req.DestinationAddress,
		Timestamp:          now,
	}, nil
}

// CountValidSignatures checks sigs[i] against validators[i]. Signatures beyond
// the validator list are ignored.
func (b *Bridge) CountValidSignatures(msg common.Hash, sigs []types.Signature) int {
	valid := 0
	for i, sig := range sigs {
		if i >= len(b.Validators) {
			break
		}
		if auth.VerifySignature(b.Validators[i], msg.Bytes(), sig) {
			valid++
		}
	}
	return valid
}

// MintTokens releases an inbound transfer once a quorum of validators signed it.
// existing is the stored record for (lock id, source chain), or nil.
func (b *Bridge) MintTokens(ctx context.Context, req MintRequest, existing *MintRecord, now int64,
	transfers ledger.Ledger) (*MintRecord, error) {
	if b.IsPaused {
		return nil, ErrBridgePaused
	}
	if len(req.Signatures) < int(b.Threshold) {
		return nil, fmt.Errorf("%w: got %d, threshold %d", ErrInsufficientSignatures, len(req.Signatures), b.Threshold)
	}
	chain, err := b.activeChain(req.SourceChain)
	if err != nil {
		return nil, err
	}
	if req.Amount == 0 {
		return nil, ErrInvalidAmount
	}

	valid := b.CountValidSignatures(req.Message(), req.Signatures)
	if valid < int(b.Threshold) {
		return nil, fmt.Errorf("%w: %d valid, threshold %d", ErrInsufficientValidSignatures, valid, b.Threshold)
	}

	addr := keying.Mint(req.LockID, req.SourceChain)
	if existing != nil {
		if existing.Address != addr {
			return nil, ErrMintRecordMismatch
		}
		if existing.IsMinted {
			return nil, fmt.Errorf("%w: lock %d from chain %d", ErrAlreadyMinted, req.LockID, req.SourceChain)
		}
	}

	minted, err := types.CheckedAdd(b.TotalMinted, req.Amount)
	if err != nil {
		return nil, err
	}
	if req.Asset.IsNative() {
		err = transfers.Transfer(ctx, req.Asset, b.Address, req.Recipient, req.Amount)
	} else {
		err = transfers.Mint(ctx, req.Asset, req.Recipient, req.Amount)
	}
	if err != nil {
		return nil, fmt.Errorf("release %d %s: %w", req.Amount, req.Asset, err)
	}
	if err := addVolume(chain, req.Amount); err != nil {
		return nil, err
	}
	b.TotalMinted = minted

	return &MintRecord{
		Address:      addr,
		LockID:       req.LockID,
		SourceChain:  req.SourceChain,
		SourceTxHash: req.SourceTxHash,
		Recipient:    req.Recipient,
		Asset:        req.Asset,
		Amount:       req.Amount,
		Timestamp:    now,
		IsMinted:     true,
	}, nil
}
