package relayer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/chainsafe/aa-bridge-middleware/pkg/bridge"
	"github.com/chainsafe/aa-bridge-middleware/pkg/keying"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
)

func pendingOnce(transfers ...*Transfer) func(context.Context, uint64, int) ([]*Transfer, error) {
	return func(_ context.Context, fromID uint64, _ int) ([]*Transfer, error) {
		var out []*Transfer
		for _, t := range transfers {
			if t.ID >= fromID {
				out = append(out, t)
			}
		}
		return out, nil
	}
}

func TestProcessor_PollSubmitsAndClaims(t *testing.T) {
	transfer := &Transfer{ID: 4, Record: types.Address{0x44}, Asset: types.Native(), Amount: 100, Recipient: types.Address{0x99}}

	var claimedHash common.Hash
	source := &MockSource{
		PendingFunc: pendingOnce(transfer),
		MarkClaimedFunc: func(_ context.Context, got *Transfer, txHash common.Hash) error {
			if got.ID != 4 {
				t.Errorf("expected transfer 4 to be claimed, got %d", got.ID)
			}
			claimedHash = txHash
			return nil
		},
	}
	dest := &MockDestination{
		SubmitMintFunc: func(_ context.Context, req bridge.MintRequest) (*bridge.MintRecord, error) {
			if req.LockID != 4 || req.SourceChain != 7 || req.Amount != 100 {
				t.Errorf("unexpected mint request %+v", req)
			}
			if req.SourceTxHash != common.Hash(transfer.Record) {
				t.Errorf("expected source tx hash to be the record address")
			}
			return &bridge.MintRecord{Address: keying.Mint(req.LockID, req.SourceChain), IsMinted: true}, nil
		},
	}

	p := NewProcessor(source, &MockSigner{}, dest, ProcessorConfig{SourceChainID: 7}, 0, zap.NewNop())
	n, err := p.Poll(context.Background())
	if err != nil {
		t.Fatalf("Poll failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 relayed transfer, got %d", n)
	}
	if claimedHash != common.Hash(keying.Mint(4, 7)) {
		t.Errorf("expected claim hash to be the mint record address")
	}
	if p.Offset() != 5 {
		t.Errorf("expected offset 5, got %d", p.Offset())
	}
}

func TestProcessor_ExistingMintOnlyClaims(t *testing.T) {
	transfer := &Transfer{ID: 1, Asset: types.Native(), Amount: 1}
	claimed := false
	source := &MockSource{
		PendingFunc: pendingOnce(transfer),
		MarkClaimedFunc: func(context.Context, *Transfer, common.Hash) error {
			claimed = true
			return nil
		},
	}
	dest := &MockDestination{
		MintRecordFunc: func(_ context.Context, addr types.Address) (*bridge.MintRecord, error) {
			return &bridge.MintRecord{Address: addr, IsMinted: true}, nil
		},
		SubmitMintFunc: func(context.Context, bridge.MintRequest) (*bridge.MintRecord, error) {
			t.Error("SubmitMint must not be called for a settled transfer")
			return nil, nil
		},
	}

	p := NewProcessor(source, &MockSigner{}, dest, ProcessorConfig{SourceChainID: 1}, 0, zap.NewNop())
	if _, err := p.Poll(context.Background()); err != nil {
		t.Fatalf("Poll failed: %v", err)
	}
	if !claimed {
		t.Error("expected source record to be claimed")
	}
}

func TestProcessor_AlreadyMintedStatusClaims(t *testing.T) {
	transfer := &Transfer{ID: 2, Asset: types.Native(), Amount: 1}
	claimed := false
	source := &MockSource{
		PendingFunc: pendingOnce(transfer),
		MarkClaimedFunc: func(_ context.Context, _ *Transfer, txHash common.Hash) error {
			claimed = txHash == common.Hash(keying.Mint(2, 3))
			return nil
		},
	}
	dest := &MockDestination{
		SubmitMintFunc: func(context.Context, bridge.MintRequest) (*bridge.MintRecord, error) {
			return nil, status.Error(codes.AlreadyExists, "transfer already minted")
		},
	}

	p := NewProcessor(source, &MockSigner{}, dest, ProcessorConfig{SourceChainID: 3}, 0, zap.NewNop())
	if _, err := p.Poll(context.Background()); err != nil {
		t.Fatalf("Poll failed: %v", err)
	}
	if !claimed {
		t.Error("expected source record to be claimed with the mint address")
	}
}

func TestProcessor_NoQuorumIsNotRetried(t *testing.T) {
	transfer := &Transfer{ID: 9, Asset: types.Native(), Amount: 1}
	lookups := 0
	dest := &MockDestination{
		ValidatorsFunc: func(context.Context) ([]types.Address, uint32, error) {
			lookups++
			return []types.Address{{1}, {2}, {3}}, 2, nil
		},
		SubmitMintFunc: func(context.Context, bridge.MintRequest) (*bridge.MintRecord, error) {
			t.Error("SubmitMint must not be called without quorum")
			return nil, nil
		},
	}
	signer := &MockSigner{
		SignFunc: func(validators []types.Address, _ common.Hash) ([]types.Signature, int) {
			return make([]types.Signature, len(validators)), 1
		},
	}

	p := NewProcessor(&MockSource{PendingFunc: pendingOnce(transfer)}, signer, dest,
		ProcessorConfig{SourceChainID: 1, MaxRetries: 3, RetryDelay: time.Millisecond}, 0, zap.NewNop())
	n, err := p.Poll(context.Background())
	if !errors.Is(err, errNoQuorum) {
		t.Fatalf("expected errNoQuorum, got %v", err)
	}
	if n != 0 || lookups != 1 {
		t.Errorf("expected a single attempt, got relayed=%d lookups=%d", n, lookups)
	}
	if p.Offset() != 0 {
		t.Errorf("offset must not advance past a failed transfer, got %d", p.Offset())
	}
}

func TestProcessor_RetriesTransientFailure(t *testing.T) {
	transfer := &Transfer{ID: 1, Asset: types.Native(), Amount: 1}
	calls := 0
	dest := &MockDestination{
		SubmitMintFunc: func(_ context.Context, req bridge.MintRequest) (*bridge.MintRecord, error) {
			calls++
			if calls == 1 {
				return nil, status.Error(codes.Unavailable, "connection reset")
			}
			return &bridge.MintRecord{Address: keying.Mint(req.LockID, req.SourceChain), IsMinted: true}, nil
		},
	}

	p := NewProcessor(&MockSource{PendingFunc: pendingOnce(transfer)}, &MockSigner{}, dest,
		ProcessorConfig{SourceChainID: 1, MaxRetries: 2, RetryDelay: time.Millisecond}, 0, zap.NewNop())
	n, err := p.Poll(context.Background())
	if err != nil {
		t.Fatalf("Poll failed: %v", err)
	}
	if n != 1 || calls != 2 {
		t.Errorf("expected success on second attempt, got relayed=%d calls=%d", n, calls)
	}
}

func TestProcessor_StopsAtFirstPermanentFailure(t *testing.T) {
	first := &Transfer{ID: 1, Asset: types.Native(), Amount: 1}
	second := &Transfer{ID: 2, Asset: types.Native(), Amount: 1}
	var submitted []uint64
	dest := &MockDestination{
		SubmitMintFunc: func(_ context.Context, req bridge.MintRequest) (*bridge.MintRecord, error) {
			submitted = append(submitted, req.LockID)
			return nil, status.Error(codes.FailedPrecondition, "bridge is paused")
		},
	}

	p := NewProcessor(&MockSource{PendingFunc: pendingOnce(first, second)}, &MockSigner{}, dest,
		ProcessorConfig{SourceChainID: 1, MaxRetries: 5, RetryDelay: time.Millisecond}, 1, zap.NewNop())
	n, err := p.Poll(context.Background())
	if err == nil {
		t.Fatal("expected Poll to fail")
	}
	if n != 0 || len(submitted) != 1 || submitted[0] != 1 {
		t.Errorf("expected only transfer 1 to be attempted once, got relayed=%d submitted=%v", n, submitted)
	}
	if p.Offset() != 1 {
		t.Errorf("expected offset to stay at 1, got %d", p.Offset())
	}
}

func TestProcessor_SourceError(t *testing.T) {
	source := &MockSource{
		PendingFunc: func(context.Context, uint64, int) ([]*Transfer, error) {
			return nil, errors.New("db down")
		},
	}
	p := NewProcessor(source, &MockSigner{}, &MockDestination{}, ProcessorConfig{}, 0, zap.NewNop())
	if _, err := p.Poll(context.Background()); err == nil {
		t.Fatal("expected source error")
	}
}
