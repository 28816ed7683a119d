package relayer

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/aa-bridge-middleware/pkg/bridge"
	"github.com/chainsafe/aa-bridge-middleware/pkg/store"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
)

// MockSource is a mock implementation of Source
type MockSource struct {
	DirectionFunc   func() string
	PendingFunc     func(ctx context.Context, fromID uint64, limit int) ([]*Transfer, error)
	MarkClaimedFunc func(ctx context.Context, t *Transfer, txHash common.Hash) error
}

func (m *MockSource) Direction() string {
	if m.DirectionFunc != nil {
		return m.DirectionFunc()
	}
	return "test"
}

func (m *MockSource) Pending(ctx context.Context, fromID uint64, limit int) ([]*Transfer, error) {
	if m.PendingFunc != nil {
		return m.PendingFunc(ctx, fromID, limit)
	}
	return nil, nil
}

func (m *MockSource) MarkClaimed(ctx context.Context, t *Transfer, txHash common.Hash) error {
	if m.MarkClaimedFunc != nil {
		return m.MarkClaimedFunc(ctx, t, txHash)
	}
	return nil
}

// MockSigner is a mock implementation of Signer
type MockSigner struct {
	SignFunc func(validators []types.Address, msg common.Hash) ([]types.Signature, int)
}

func (m *MockSigner) Sign(validators []types.Address, msg common.Hash) ([]types.Signature, int) {
	if m.SignFunc != nil {
		return m.SignFunc(validators, msg)
	}
	return make([]types.Signature, len(validators)), len(validators)
}

// MockDestination is a mock implementation of Destination
type MockDestination struct {
	ValidatorsFunc func(ctx context.Context) ([]types.Address, uint32, error)
	MintRecordFunc func(ctx context.Context, addr types.Address) (*bridge.MintRecord, error)
	SubmitMintFunc func(ctx context.Context, req bridge.MintRequest) (*bridge.MintRecord, error)
}

func (m *MockDestination) Validators(ctx context.Context) ([]types.Address, uint32, error) {
	if m.ValidatorsFunc != nil {
		return m.ValidatorsFunc(ctx)
	}
	return []types.Address{{1}, {2}}, 2, nil
}

func (m *MockDestination) MintRecord(ctx context.Context, addr types.Address) (*bridge.MintRecord, error) {
	if m.MintRecordFunc != nil {
		return m.MintRecordFunc(ctx, addr)
	}
	return nil, nil
}

func (m *MockDestination) SubmitMint(ctx context.Context, req bridge.MintRequest) (*bridge.MintRecord, error) {
	if m.SubmitMintFunc != nil {
		return m.SubmitMintFunc(ctx, req)
	}
	return &bridge.MintRecord{LockID: req.LockID, SourceChain: req.SourceChain, IsMinted: true}, nil
}

// MockSettlement is a mock implementation of Settlement
type MockSettlement struct {
	SubmitMintFunc    func(ctx context.Context, bridgeAddr types.Address, req bridge.MintRequest) (*bridge.MintRecord, error)
	GetMintRecordFunc func(ctx context.Context, addr types.Address) (*bridge.MintRecord, error)
	GetValidatorsFunc func(ctx context.Context, bridgeAddr types.Address) ([]types.Address, uint32, error)
}

func (m *MockSettlement) SubmitMint(ctx context.Context, bridgeAddr types.Address, req bridge.MintRequest) (*bridge.MintRecord, error) {
	if m.SubmitMintFunc != nil {
		return m.SubmitMintFunc(ctx, bridgeAddr, req)
	}
	return &bridge.MintRecord{IsMinted: true}, nil
}

func (m *MockSettlement) GetMintRecord(ctx context.Context, addr types.Address) (*bridge.MintRecord, error) {
	if m.GetMintRecordFunc != nil {
		return m.GetMintRecordFunc(ctx, addr)
	}
	return nil, store.ErrNotFound
}

func (m *MockSettlement) GetValidators(ctx context.Context, bridgeAddr types.Address) ([]types.Address, uint32, error) {
	if m.GetValidatorsFunc != nil {
		return m.GetValidatorsFunc(ctx, bridgeAddr)
	}
	return nil, 0, nil
}
