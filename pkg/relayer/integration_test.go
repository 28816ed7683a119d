package relayer

import (
	"context"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/aa-bridge-middleware/pkg/bridge"
	"github.com/chainsafe/aa-bridge-middleware/pkg/keying"
	"github.com/chainsafe/aa-bridge-middleware/pkg/keys"
	"github.com/chainsafe/aa-bridge-middleware/pkg/service"
	"github.com/chainsafe/aa-bridge-middleware/pkg/store"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
)

const (
	sourceChain      = 1
	destinationChain = 2
)

type relayFixture struct {
	svc        service.Service
	store      store.Store
	validators []*keys.KeyPair
	source     *bridge.Bridge
	dest       *bridge.Bridge
	mint       types.Address
	user       types.Address
	recipient  types.Address
}

func newRelayFixture(t *testing.T) *relayFixture {
	t.Helper()
	ctx := context.Background()

	st := store.NewMemory()
	srcAuthority, err := keys.GenerateKeyPair()
	require.NoError(t, err)
	dstAuthority, err := keys.GenerateKeyPair()
	require.NoError(t, err)

	f := &relayFixture{
		svc:       service.NewService(st, srcAuthority.PublicKey, zap.NewNop()),
		store:     st,
		mint:      types.Address{0x70},
		user:      types.Address{0x01},
		recipient: types.Address{0x02},
	}
	var addrs []types.Address
	for i := 0; i < 3; i++ {
		kp, err := keys.GenerateKeyPair()
		require.NoError(t, err)
		f.validators = append(f.validators, kp)
		addrs = append(addrs, kp.PublicKey)
	}

	f.source, err = f.svc.InitializeBridge(ctx, srcAuthority.PublicKey, addrs, 2)
	require.NoError(t, err)
	_, err = f.svc.AddSupportedChain(ctx, srcAuthority.PublicKey, f.source.Address, bridge.SupportedChain{
		ChainID: destinationChain, ChainType: bridge.ChainTypeEvm, IsActive: true,
	})
	require.NoError(t, err)

	f.dest, err = f.svc.InitializeBridge(ctx, dstAuthority.PublicKey, addrs, 2)
	require.NoError(t, err)
	_, err = f.svc.AddSupportedChain(ctx, dstAuthority.PublicKey, f.dest.Address, bridge.SupportedChain{
		ChainID: sourceChain, ChainType: bridge.ChainTypeEvm, IsActive: true,
	})
	require.NoError(t, err)

	err = st.RunInTx(ctx, func(ctx context.Context, tx store.Tx) error {
		return tx.Mint(ctx, types.Token(f.mint), f.user, 1_000)
	})
	require.NoError(t, err)
	return f
}

func (f *relayFixture) lock(t *testing.T, amount uint64) *bridge.LockRecord {
	t.Helper()
	rec, err := f.svc.LockTokens(context.Background(), f.user, f.source.Address, bridge.LockRequest{
		Amount:             amount,
		DestinationChain:   destinationChain,
		DestinationAddress: f.recipient,
		Asset:              types.Token(f.mint),
	})
	require.NoError(t, err)
	return rec
}

// processor signs with validators 0 and 2 only.
func (f *relayFixture) processor() *Processor {
	kr := keys.NewKeyring(f.validators[0], f.validators[2])
	return NewProcessor(
		NewLockSource(f.svc, f.source.Address, f.validators[0].PublicKey),
		NewKeyringSigner(kr),
		NewBridgeDestination(f.svc, nil, f.dest.Address),
		ProcessorConfig{SourceChainID: sourceChain, BatchSize: 10},
		0,
		zap.NewNop(),
	)
}

func TestRelay_LockToMint(t *testing.T) {
	f := newRelayFixture(t)
	ctx := context.Background()
	first := f.lock(t, 300)
	second := f.lock(t, 200)

	p := f.processor()
	n, err := p.Poll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, second.ID+1, p.Offset())

	bal, err := f.svc.Balance(ctx, types.Token(f.mint), f.recipient)
	require.NoError(t, err)
	assert.Equal(t, uint64(500), bal)

	stored, err := f.svc.GetLockRecord(ctx, first.Address)
	require.NoError(t, err)
	assert.True(t, stored.IsClaimed)
	assert.Equal(t, common.Hash(keying.Mint(first.ID, sourceChain)), stored.ClaimTxHash)

	mint, err := f.svc.GetMintRecord(ctx, keying.Mint(second.ID, sourceChain))
	require.NoError(t, err)
	assert.True(t, mint.IsMinted)
	assert.Equal(t, uint64(200), mint.Amount)

	n, err = p.Poll(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRelay_SettledElsewhereIsOnlyClaimed(t *testing.T) {
	f := newRelayFixture(t)
	ctx := context.Background()
	rec := f.lock(t, 300)

	req := bridge.MintRequest{
		LockID:       rec.ID,
		SourceChain:  sourceChain,
		SourceTxHash: common.Hash(rec.Address),
		Recipient:    f.recipient,
		Asset:        rec.Asset,
		Amount:       rec.Amount,
		Signatures:   make([]types.Signature, 3),
	}
	req.Signatures[0] = f.validators[0].SignHash(req.Message())
	req.Signatures[1] = f.validators[1].SignHash(req.Message())
	_, err := f.svc.MintTokens(ctx, f.dest.Address, req)
	require.NoError(t, err)

	n, err := f.processor().Poll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	bal, err := f.svc.Balance(ctx, types.Token(f.mint), f.recipient)
	require.NoError(t, err)
	assert.Equal(t, uint64(300), bal, "a settled transfer must not mint twice")

	stored, err := f.svc.GetLockRecord(ctx, rec.Address)
	require.NoError(t, err)
	assert.True(t, stored.IsClaimed)
}

func TestRelay_RemoteSettlementUsesRemoteValidatorSet(t *testing.T) {
	f := newRelayFixture(t)
	ctx := context.Background()
	locked := f.lock(t, 300)

	// the remote bridge orders the same keys differently than the local copy
	remoteSet := []types.Address{f.validators[2].PublicKey, f.validators[0].PublicKey, f.validators[1].PublicKey}
	remote := &bridge.Bridge{Address: f.dest.Address, Validators: remoteSet, Threshold: 2}

	var submitted []bridge.MintRequest
	settle := &MockSettlement{
		GetValidatorsFunc: func(_ context.Context, bridgeAddr types.Address) ([]types.Address, uint32, error) {
			assert.Equal(t, f.dest.Address, bridgeAddr)
			return remote.Validators, remote.Threshold, nil
		},
		SubmitMintFunc: func(_ context.Context, _ types.Address, req bridge.MintRequest) (*bridge.MintRecord, error) {
			submitted = append(submitted, req)
			return &bridge.MintRecord{Address: keying.Mint(req.LockID, req.SourceChain), IsMinted: true}, nil
		},
	}

	p := NewProcessor(
		NewLockSource(f.svc, f.source.Address, f.validators[0].PublicKey),
		NewKeyringSigner(keys.NewKeyring(f.validators[0], f.validators[2])),
		NewBridgeDestination(f.svc, settle, f.dest.Address),
		ProcessorConfig{SourceChainID: sourceChain, BatchSize: 10},
		0,
		zap.NewNop(),
	)
	n, err := p.Poll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.Len(t, submitted, 1)
	req := submitted[0]
	assert.Equal(t, 2, remote.CountValidSignatures(req.Message(), req.Signatures))

	stored, err := f.svc.GetLockRecord(ctx, locked.Address)
	require.NoError(t, err)
	assert.True(t, stored.IsClaimed)

	// nothing was minted on the local copy of the destination
	_, err = f.svc.GetMintRecord(ctx, keying.Mint(locked.ID, sourceChain))
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestKeyringSigner_IndexAligned(t *testing.T) {
	f := newRelayFixture(t)
	validators := []types.Address{f.validators[0].PublicKey, f.validators[1].PublicKey, f.validators[2].PublicKey}
	msg := common.Hash{0x01}

	sigs, signed := NewKeyringSigner(keys.NewKeyring(f.validators[2])).Sign(validators, msg)
	require.Len(t, sigs, 3)
	assert.Equal(t, 1, signed)
	assert.Equal(t, types.Signature{}, sigs[0])
	assert.Equal(t, types.Signature{}, sigs[1])
	assert.True(t, f.validators[2].Verify(msg.Bytes(), sigs[2]))
}

func TestEngine_StartStop(t *testing.T) {
	f := newRelayFixture(t)
	f.lock(t, 100)

	e := NewEngine(EngineConfig{PollingInterval: 10 * time.Millisecond}, zap.NewNop(), f.processor())
	require.False(t, e.IsReady())
	require.NoError(t, e.Start(context.Background()))
	assert.True(t, e.IsReady())

	require.Eventually(t, func() bool {
		bal, err := f.svc.Balance(context.Background(), types.Token(f.mint), f.recipient)
		return err == nil && bal == 100
	}, 2*time.Second, 10*time.Millisecond)

	e.Stop()
	assert.False(t, e.IsReady())
	assert.Contains(t, e.Offsets(), DirectionLock)
}
