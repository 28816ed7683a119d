package relayer

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/aa-bridge-middleware/pkg/bridge"
	"github.com/chainsafe/aa-bridge-middleware/pkg/keys"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
)

const (
	DirectionLock = "lock_to_mint"
	DirectionBurn = "burn_to_mint"
)

// Ledger is the part of the ledger service the relayer reads and claims through.
type Ledger interface {
	GetBridge(ctx context.Context, addr types.Address) (*bridge.Bridge, error)
	GetMintRecord(ctx context.Context, addr types.Address) (*bridge.MintRecord, error)
	MintTokens(ctx context.Context, bridgeAddr types.Address, req bridge.MintRequest) (*bridge.MintRecord, error)
	ListUnclaimedLocks(ctx context.Context, bridgeAddr types.Address, fromID uint64, limit int) ([]*bridge.LockRecord, error)
	ListUnclaimedBurns(ctx context.Context, bridgeAddr types.Address, fromID uint64, limit int) ([]*bridge.BurnRecord, error)
	MarkLockClaimed(ctx context.Context, caller, lockAddr types.Address, txHash common.Hash) (*bridge.LockRecord, error)
	MarkBurnClaimed(ctx context.Context, caller, burnAddr types.Address, txHash common.Hash) (*bridge.BurnRecord, error)
}

// Settlement submits mints to a remote api-server. grpcapi.Client implements it.
type Settlement interface {
	SubmitMint(ctx context.Context, bridgeAddr types.Address, req bridge.MintRequest) (*bridge.MintRecord, error)
	GetMintRecord(ctx context.Context, addr types.Address) (*bridge.MintRecord, error)
	GetValidators(ctx context.Context, bridgeAddr types.Address) ([]types.Address, uint32, error)
}

// LockSource implements Source over the lock records of a bridge.
type LockSource struct {
	ledger Ledger
	bridge types.Address
	caller types.Address
}

func NewLockSource(ledger Ledger, bridgeAddr, caller types.Address) *LockSource {
	return &LockSource{ledger: ledger, bridge: bridgeAddr, caller: caller}
}

func (s *LockSource) Direction() string { return DirectionLock }

func (s *LockSource) Pending(ctx context.Context, fromID uint64, limit int) ([]*Transfer, error) {
	locks, err := s.ledger.ListUnclaimedLocks(ctx, s.bridge, fromID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*Transfer, 0, len(locks))
	for _, l := range locks {
		out = append(out, &Transfer{
			ID:        l.ID,
			Record:    l.Address,
			Asset:     l.Asset,
			Amount:    l.Amount,
			Recipient: l.DestinationAddress,
		})
	}
	return out, nil
}

func (s *LockSource) MarkClaimed(ctx context.Context, t *Transfer, txHash common.Hash) error {
	_, err := s.ledger.MarkLockClaimed(ctx, s.caller, t.Record, txHash)
	return err
}

// BurnSource implements Source over the burn records of a bridge.
type BurnSource struct {
	ledger Ledger
	bridge types.Address
	caller types.Address
}

func NewBurnSource(ledger Ledger, bridgeAddr, caller types.Address) *BurnSource {
	return &BurnSource{ledger: ledger, bridge: bridgeAddr, caller: caller}
}

func (s *BurnSource) Direction() string { return DirectionBurn }

func (s *BurnSource) Pending(ctx context.Context, fromID uint64, limit int) ([]*Transfer, error) {
	burns, err := s.ledger.ListUnclaimedBurns(ctx, s.bridge, fromID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*Transfer, 0, len(burns))
	for _, b := range burns {
		out = append(out, &Transfer{
			ID:        b.ID,
			Record:    b.Address,
			Asset:     b.Asset,
			Amount:    b.Amount,
			Recipient: b.DestinationAddress,
		})
	}
	return out, nil
}

func (s *BurnSource) MarkClaimed(ctx context.Context, t *Transfer, txHash common.Hash) error {
	_, err := s.ledger.MarkBurnClaimed(ctx, s.caller, t.Record, txHash)
	return err
}

// KeyringSigner signs with every validator key held in the keyring.
type KeyringSigner struct {
	keyring *keys.Keyring
}

func NewKeyringSigner(kr *keys.Keyring) *KeyringSigner {
	return &KeyringSigner{keyring: kr}
}

func (s *KeyringSigner) Sign(validators []types.Address, msg common.Hash) ([]types.Signature, int) {
	sigs := make([]types.Signature, len(validators))
	signed := 0
	for i, v := range validators {
		kp, ok := s.keyring.Lookup(v)
		if !ok {
			continue
		}
		sigs[i] = kp.SignHash(msg)
		signed++
	}
	return sigs, signed
}

// BridgeDestination settles mints on a bridge of the ledger. When settle is
// set, mints, mint lookups and the validator set all come from it instead of
// the local ledger service.
type BridgeDestination struct {
	ledger Ledger
	settle Settlement
	bridge types.Address
}

func NewBridgeDestination(ledger Ledger, settle Settlement, bridgeAddr types.Address) *BridgeDestination {
	return &BridgeDestination{ledger: ledger, settle: settle, bridge: bridgeAddr}
}

func (d *BridgeDestination) Validators(ctx context.Context) ([]types.Address, uint32, error) {
	if d.settle != nil {
		return d.settle.GetValidators(ctx, d.bridge)
	}
	b, err := d.ledger.GetBridge(ctx, d.bridge)
	if err != nil {
		return nil, 0, err
	}
	return b.Validators, b.Threshold, nil
}

func (d *BridgeDestination) MintRecord(ctx context.Context, addr types.Address) (*bridge.MintRecord, error) {
	var (
		rec *bridge.MintRecord
		err error
	)
	if d.settle != nil {
		rec, err = d.settle.GetMintRecord(ctx, addr)
	} else {
		rec, err = d.ledger.GetMintRecord(ctx, addr)
	}
	if isNotFound(err) {
		return nil, nil
	}
	return rec, err
}

func (d *BridgeDestination) SubmitMint(ctx context.Context, req bridge.MintRequest) (*bridge.MintRecord, error) {
	if d.settle != nil {
		return d.settle.SubmitMint(ctx, d.bridge, req)
	}
	return d.ledger.MintTokens(ctx, d.bridge, req)
}
