package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/aa-bridge-middleware/pkg/app/errors"
	"github.com/chainsafe/aa-bridge-middleware/pkg/bridge"
	"github.com/chainsafe/aa-bridge-middleware/pkg/entrypoint"
	"github.com/chainsafe/aa-bridge-middleware/pkg/keys"
	"github.com/chainsafe/aa-bridge-middleware/pkg/keying"
	"github.com/chainsafe/aa-bridge-middleware/pkg/ledger"
	"github.com/chainsafe/aa-bridge-middleware/pkg/paymaster"
	"github.com/chainsafe/aa-bridge-middleware/pkg/store"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
	"github.com/chainsafe/aa-bridge-middleware/pkg/userop"
)

var fixedNow = time.Unix(1_700_000_000, 0)

type harness struct {
	svc       Service
	store     store.Store
	authority *keys.KeyPair
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	authority, err := keys.GenerateKeyPair()
	require.NoError(t, err)
	st := store.NewMemory()
	opts = append([]Option{WithClock(ClockFunc(func() time.Time { return fixedNow }))}, opts...)
	return &harness{
		svc:       NewService(st, authority.PublicKey, zap.NewNop(), opts...),
		store:     st,
		authority: authority,
	}
}

func (h *harness) fund(t *testing.T, asset types.Asset, owner types.Address, amount uint64) {
	t.Helper()
	err := h.store.RunInTx(context.Background(), func(ctx context.Context, tx store.Tx) error {
		return tx.Mint(ctx, asset, owner, amount)
	})
	require.NoError(t, err)
}

func addr(b byte) types.Address {
	var a types.Address
	a[0] = b
	return a
}

func TestInitializeEntryPoint_RequiresAuthority(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.svc.InitializeEntryPoint(ctx, addr(1))
	require.ErrorIs(t, err, ErrNotAuthority)

	ep, err := h.svc.InitializeEntryPoint(ctx, h.authority.PublicKey)
	require.NoError(t, err)
	assert.Equal(t, keying.EntryPoint(h.authority.PublicKey), ep.Address)

	_, err = h.svc.InitializeEntryPoint(ctx, h.authority.PublicKey)
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestHandleOps_PersistsWalletLedgerAndEvents(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_, err := h.svc.InitializeEntryPoint(ctx, h.authority.PublicKey)
	require.NoError(t, err)

	owner, err := keys.GenerateKeyPair()
	require.NoError(t, err)
	w, err := h.svc.CreateWallet(ctx, owner.PublicKey, common.Hash{}, 1_000_000)
	require.NoError(t, err)
	h.fund(t, types.Native(), w.Address, 1_000)

	dest := addr(9)
	good := &userop.UserOperation{
		Sender:       w.Address,
		Nonce:        0,
		CallData:     entrypoint.EncodeTransferCall(types.Native(), dest, 250),
		CallGasLimit: 10,
		MaxFeePerGas: 1,
	}
	good.Signature = owner.SignHash(good.Hash())
	stale := &userop.UserOperation{Sender: w.Address, Nonce: 7, CallGasLimit: 10, MaxFeePerGas: 1}
	stale.Signature = owner.SignHash(stale.Hash())

	resp, err := h.svc.HandleOps(ctx, []*userop.UserOperation{good, stale}, addr(2))
	require.NoError(t, err)
	require.NotEmpty(t, resp.BatchID)
	assert.Equal(t, uint64(2), resp.TotalOperations)
	assert.Equal(t, uint64(1), resp.SuccessfulOperations)
	assert.Equal(t, entrypoint.InvalidNonce, resp.Events[1].Code)

	stored, err := h.svc.GetWallet(ctx, w.Address)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), stored.Nonce)

	bal, err := h.svc.Balance(ctx, types.Native(), dest)
	require.NoError(t, err)
	assert.Equal(t, uint64(250), bal)

	ep, err := h.svc.GetEntryPoint(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), ep.TotalOperations)

	events, err := h.store.OperationEvents(ctx, resp.BatchID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.True(t, events[0].Event.Success)
	assert.Equal(t, 1, events[1].Index)
}

func TestHandleOps_BatchBounds(t *testing.T) {
	h := newHarness(t, WithMaxBatchSize(1))
	ctx := context.Background()

	_, err := h.svc.HandleOps(ctx, nil, addr(1))
	require.ErrorIs(t, err, ErrEmptyBatch)

	ops := []*userop.UserOperation{{Sender: addr(1)}, {Sender: addr(2)}}
	_, err = h.svc.HandleOps(ctx, ops, addr(1))
	require.ErrorIs(t, err, ErrBatchTooLarge)
}

func TestHandleOps_MissingEntryPoint(t *testing.T) {
	h := newHarness(t)
	_, err := h.svc.HandleOps(context.Background(), []*userop.UserOperation{{Sender: addr(1)}}, addr(1))
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetters_NameMissingRecord(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.svc.GetWallet(ctx, addr(1))
	require.ErrorIs(t, err, store.ErrNotFound)
	assert.True(t, apperrors.Is(err, apperrors.CategoryResourceNotFound))
	var svcErr *apperrors.ServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, "wallet not found", svcErr.Message)

	_, err = h.svc.GetMintRecord(ctx, keying.Mint(1, 1))
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, "mint record not found", svcErr.Message)
	assert.Equal(t, 404, svcErr.StatusCode())
}

func TestWalletRecovery(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	owner, g1, g2, g3, newOwner := addr(1), addr(11), addr(12), addr(13), addr(20)

	w, err := h.svc.CreateWallet(ctx, owner, common.Hash{1}, 100)
	require.NoError(t, err)
	for _, g := range []types.Address{g1, g2, g3} {
		_, err = h.svc.AddGuardian(ctx, owner, w.Address, g)
		require.NoError(t, err)
	}

	progress, err := h.svc.InitiateRecovery(ctx, g1, w.Address, newOwner)
	require.NoError(t, err)
	assert.Equal(t, 1, progress.Approvals)
	assert.Equal(t, 2, progress.Required)
	assert.False(t, progress.Completed)

	progress, err = h.svc.ApproveRecovery(ctx, g2, w.Address)
	require.NoError(t, err)
	assert.True(t, progress.Completed)

	stored, err := h.svc.GetWallet(ctx, w.Address)
	require.NoError(t, err)
	assert.Equal(t, newOwner, stored.Owner)
	assert.Nil(t, stored.PendingRecovery)
	assert.Equal(t, w.Address, stored.Address)

	_, err = h.svc.Freeze(ctx, owner, w.Address)
	require.Error(t, err, "previous owner lost control")
}

func TestWalletMutationRollsBackOnError(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	owner := addr(1)
	w, err := h.svc.CreateWallet(ctx, owner, common.Hash{}, 100)
	require.NoError(t, err)

	_, err = h.svc.AddGuardian(ctx, owner, w.Address, addr(5))
	require.NoError(t, err)
	_, err = h.svc.AddGuardian(ctx, owner, w.Address, addr(5))
	require.Error(t, err)

	stored, err := h.svc.GetWallet(ctx, w.Address)
	require.NoError(t, err)
	assert.Len(t, stored.Guardians, 1)
}

func TestPaymasterLifecycle(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	pmOwner, mint := addr(7), addr(8)

	_, err := h.svc.CreatePaymaster(ctx, pmOwner, paymaster.Config{MaxCostPerOperation: 100})
	require.ErrorIs(t, err, store.ErrNotFound, "entry point must exist")

	_, err = h.svc.InitializeEntryPoint(ctx, h.authority.PublicKey)
	require.NoError(t, err)

	_, err = h.svc.CreatePaymaster(ctx, pmOwner, paymaster.Config{})
	require.ErrorIs(t, err, ErrInvalidConfig)

	pm, err := h.svc.CreatePaymaster(ctx, pmOwner, paymaster.Config{MaxCostPerOperation: 100})
	require.NoError(t, err)

	_, err = h.svc.AddSupportedToken(ctx, addr(99), pm.Address, mint, 5, nil)
	require.ErrorIs(t, err, paymaster.ErrUnauthorized)

	pm, err = h.svc.AddSupportedToken(ctx, pmOwner, pm.Address, mint, 5, nil)
	require.NoError(t, err)
	require.Len(t, pm.SupportedTokens, 1)

	pm, err = h.svc.SetPaymasterActive(ctx, pmOwner, pm.Address, false)
	require.NoError(t, err)
	assert.False(t, pm.IsActive)

	h.fund(t, types.Token(mint), pm.Address, 40)
	require.NoError(t, h.svc.WithdrawPaymaster(ctx, pmOwner, pm.Address, types.Token(mint), 30, addr(3)))
	bal, err := h.svc.Balance(ctx, types.Token(mint), addr(3))
	require.NoError(t, err)
	assert.Equal(t, uint64(30), bal)
}

func TestStakeLifecycle(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	pmOwner := addr(7)
	_, err := h.svc.InitializeEntryPoint(ctx, h.authority.PublicKey)
	require.NoError(t, err)
	pm, err := h.svc.CreatePaymaster(ctx, pmOwner, paymaster.Config{MaxCostPerOperation: 100})
	require.NoError(t, err)

	_, err = h.svc.UnlockStake(ctx, pmOwner, pm.Address)
	require.ErrorIs(t, err, entrypoint.ErrNoStake)

	h.fund(t, types.Native(), pmOwner, entrypoint.DefaultMinStake)
	st, err := h.svc.AddStake(ctx, pmOwner, pm.Address, entrypoint.DefaultMinStake, entrypoint.DefaultUnstakeDelay)
	require.NoError(t, err)
	assert.Equal(t, entrypoint.DefaultMinStake, st.Stake)

	info, err := h.svc.GetDepositInfo(ctx, pm.Address)
	require.NoError(t, err)
	assert.True(t, info.Staked)

	_, err = h.svc.UnlockStake(ctx, pmOwner, pm.Address)
	require.NoError(t, err)
	_, err = h.svc.WithdrawStake(ctx, pmOwner, pm.Address, pmOwner)
	require.ErrorIs(t, err, entrypoint.ErrWithdrawTimeNotReached)
}

type bridgeFixture struct {
	*harness
	bridge     *bridge.Bridge
	validators []*keys.KeyPair
}

func newBridgeFixture(t *testing.T) *bridgeFixture {
	t.Helper()
	h := newHarness(t)
	ctx := context.Background()

	f := &bridgeFixture{harness: h}
	var addrs []types.Address
	for i := 0; i < 3; i++ {
		kp, err := keys.GenerateKeyPair()
		require.NoError(t, err)
		f.validators = append(f.validators, kp)
		addrs = append(addrs, kp.PublicKey)
	}
	b, err := h.svc.InitializeBridge(ctx, h.authority.PublicKey, addrs, 2)
	require.NoError(t, err)
	b, err = h.svc.AddSupportedChain(ctx, h.authority.PublicKey, b.Address, bridge.SupportedChain{
		ChainID:   1,
		ChainType: bridge.ChainTypeEvm,
		IsActive:  true,
	})
	require.NoError(t, err)
	f.bridge = b
	return f
}

func (f *bridgeFixture) mintRequest(mint, recipient types.Address, signers ...int) bridge.MintRequest {
	req := bridge.MintRequest{
		LockID:       42,
		SourceChain:  1,
		SourceTxHash: common.Hash{0xaa},
		Recipient:    recipient,
		Asset:        types.Token(mint),
		Amount:       500,
		Signatures:   make([]types.Signature, len(f.validators)),
	}
	for _, i := range signers {
		req.Signatures[i] = f.validators[i].SignHash(req.Message())
	}
	return req
}

func TestMintTokens_QuorumAndReplay(t *testing.T) {
	f := newBridgeFixture(t)
	ctx := context.Background()
	mint, recipient := addr(0x55), addr(0x66)

	_, err := f.svc.MintTokens(ctx, f.bridge.Address, f.mintRequest(mint, recipient, 0))
	require.ErrorIs(t, err, bridge.ErrInsufficientValidSignatures)
	_, err = f.svc.GetMintRecord(ctx, keying.Mint(42, 1))
	require.ErrorIs(t, err, store.ErrNotFound)

	rec, err := f.svc.MintTokens(ctx, f.bridge.Address, f.mintRequest(mint, recipient, 0, 2))
	require.NoError(t, err)
	assert.True(t, rec.IsMinted)
	assert.Equal(t, keying.Mint(42, 1), rec.Address)

	bal, err := f.svc.Balance(ctx, types.Token(mint), recipient)
	require.NoError(t, err)
	assert.Equal(t, uint64(500), bal)

	_, err = f.svc.MintTokens(ctx, f.bridge.Address, f.mintRequest(mint, recipient, 0, 1, 2))
	require.ErrorIs(t, err, bridge.ErrAlreadyMinted)

	b, err := f.svc.GetBridge(ctx, f.bridge.Address)
	require.NoError(t, err)
	assert.Equal(t, uint64(500), b.TotalMinted)
}

func TestLockTokens_ListAndClaim(t *testing.T) {
	f := newBridgeFixture(t)
	ctx := context.Background()
	user := addr(0x31)
	f.fund(t, types.Native(), user, 1_000)

	req := bridge.LockRequest{Amount: 300, DestinationChain: 1, DestinationAddress: addr(0x32), Asset: types.Native()}
	first, err := f.svc.LockTokens(ctx, user, f.bridge.Address, req)
	require.NoError(t, err)
	second, err := f.svc.LockTokens(ctx, user, f.bridge.Address, req)
	require.NoError(t, err)
	assert.Equal(t, first.ID+1, second.ID)

	_, err = f.svc.LockTokens(ctx, user, f.bridge.Address, req)
	require.ErrorIs(t, err, ledger.ErrInsufficientFunds)

	vault, err := f.svc.Balance(ctx, types.Native(), f.bridge.Address)
	require.NoError(t, err)
	assert.Equal(t, uint64(600), vault)

	pending, err := f.svc.ListUnclaimedLocks(ctx, f.bridge.Address, 0, 10)
	require.NoError(t, err)
	require.Len(t, pending, 2)

	_, err = f.svc.MarkLockClaimed(ctx, addr(0x99), first.Address, common.Hash{1})
	require.ErrorIs(t, err, ErrNotBridgeValidator)

	claimed, err := f.svc.MarkLockClaimed(ctx, f.validators[1].PublicKey, first.Address, common.Hash{1})
	require.NoError(t, err)
	assert.True(t, claimed.IsClaimed)

	_, err = f.svc.MarkLockClaimed(ctx, f.authority.PublicKey, first.Address, common.Hash{2})
	require.ErrorIs(t, err, bridge.ErrAlreadyClaimed)

	pending, err = f.svc.ListUnclaimedLocks(ctx, f.bridge.Address, 0, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)
}

func TestBurnTokens(t *testing.T) {
	f := newBridgeFixture(t)
	ctx := context.Background()
	user, mint := addr(0x41), addr(0x42)
	f.fund(t, types.Token(mint), user, 100)

	rec, err := f.svc.BurnTokens(ctx, user, f.bridge.Address, bridge.BurnRequest{
		Amount: 60, DestinationChain: 1, DestinationAddress: addr(0x43), Mint: mint,
	})
	require.NoError(t, err)
	assert.Equal(t, types.Token(mint), rec.Asset)

	bal, err := f.svc.Balance(ctx, types.Token(mint), user)
	require.NoError(t, err)
	assert.Equal(t, uint64(40), bal)

	_, err = f.svc.SetPaused(ctx, f.authority.PublicKey, f.bridge.Address, true)
	require.NoError(t, err)
	_, err = f.svc.BurnTokens(ctx, user, f.bridge.Address, bridge.BurnRequest{
		Amount: 10, DestinationChain: 1, DestinationAddress: addr(0x43), Mint: mint,
	})
	require.ErrorIs(t, err, bridge.ErrBridgePaused)
}

func TestUpdateValidators_AppliesToPendingMints(t *testing.T) {
	f := newBridgeFixture(t)
	ctx := context.Background()
	mint, recipient := addr(0x55), addr(0x66)
	req := f.mintRequest(mint, recipient, 0, 1)

	replacement, err := keys.GenerateKeyPair()
	require.NoError(t, err)
	_, err = f.svc.UpdateValidators(ctx, f.authority.PublicKey, f.bridge.Address,
		[]types.Address{replacement.PublicKey, f.validators[2].PublicKey}, 2)
	require.NoError(t, err)

	_, err = f.svc.MintTokens(ctx, f.bridge.Address, req)
	require.True(t, errors.Is(err, bridge.ErrInsufficientValidSignatures))
}
