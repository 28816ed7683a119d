package entrypoint

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainsafe/aa-bridge-middleware/pkg/keys"
	"github.com/chainsafe/aa-bridge-middleware/pkg/ledger"
	"github.com/chainsafe/aa-bridge-middleware/pkg/paymaster"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
	"github.com/chainsafe/aa-bridge-middleware/pkg/userop"
	"github.com/chainsafe/aa-bridge-middleware/pkg/wallet"
)

const now int64 = 1_700_000_000

type fixture struct {
	ep       *EntryPoint
	accounts *AccountMap
	ledger   *ledger.Memory
	owner    *keys.KeyPair
	wallet   *wallet.Wallet
	pm       *paymaster.Paymaster
	pmOwner  types.Address
	mint     types.Address
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	authority, err := keys.GenerateKeyPair()
	require.NoError(t, err)
	owner, err := keys.GenerateKeyPair()
	require.NoError(t, err)

	f := &fixture{
		ep:       New(authority.PublicKey, now),
		accounts: NewAccountMap(),
		ledger:   ledger.NewMemory(),
		owner:    owner,
	}
	f.wallet = wallet.New(owner.PublicKey, common.Hash{}, 1_000_000, now)
	f.accounts.Wallets[f.wallet.Address] = f.wallet

	f.pmOwner[0] = 0x77
	f.mint[0] = 0x55
	f.pm = paymaster.New(f.pmOwner, f.ep.Address, paymaster.Config{MaxCostPerOperation: 10_000}, now)
	require.NoError(t, f.pm.AddSupportedToken(f.pmOwner, f.mint, 5, nil))
	f.accounts.Paymasters[f.pm.Address] = f.pm
	return f
}

func (f *fixture) op(nonce, callGas uint64) *userop.UserOperation {
	op := &userop.UserOperation{
		Sender:       f.wallet.Address,
		Nonce:        nonce,
		CallGasLimit: callGas,
		MaxFeePerGas: 1,
	}
	op.Signature = f.owner.SignHash(op.Hash())
	return op
}

func (f *fixture) sign(op *userop.UserOperation) *userop.UserOperation {
	op.Signature = f.owner.SignHash(op.Hash())
	return op
}

var noop = DispatcherFunc(func(context.Context, *userop.UserOperation) error { return nil })

func TestValidateUserOperation(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, Valid, f.ep.ValidateUserOperation(f.op(0, 10)))
	assert.Equal(t, GasLimitExceeded, f.ep.ValidateUserOperation(f.op(0, 0)))

	op := f.op(0, 10)
	op.MaxFeePerGas = 0
	assert.Equal(t, InsufficientFunds, f.ep.ValidateUserOperation(op))
}

func TestBatchIsolation(t *testing.T) {
	f := newFixture(t)
	f.ep.TotalOperations = 10

	ops := []*userop.UserOperation{f.op(0, 10), f.op(1, 0), f.op(1, 10)}
	res, err := f.ep.HandleOps(context.Background(), ops, types.Address{}, f.accounts, noop, f.ledger, now)
	require.NoError(t, err)

	assert.Equal(t, uint64(3), res.TotalOperations)
	assert.Equal(t, uint64(2), res.SuccessfulOperations)
	assert.Equal(t, uint64(20), res.TotalGasUsed)
	require.Len(t, res.Events, 3)
	assert.True(t, res.Events[0].Success)
	assert.False(t, res.Events[1].Success)
	assert.Equal(t, GasLimitExceeded, res.Events[1].Code)
	assert.NotEmpty(t, res.Events[1].Reason)
	assert.True(t, res.Events[2].Success)

	assert.Equal(t, uint64(13), f.ep.TotalOperations)
	assert.Equal(t, uint64(2), f.wallet.Nonce)
}

func TestBatchRecordsWalletFailures(t *testing.T) {
	f := newFixture(t)

	bad := f.op(0, 10)
	bad.Signature[0] ^= 0xff
	unknown := f.op(0, 10)
	unknown.Sender[0] ^= 0xff

	res, err := f.ep.HandleOps(context.Background(), []*userop.UserOperation{bad, f.op(0, 10), unknown},
		types.Address{}, f.accounts, noop, f.ledger, now)
	require.NoError(t, err)

	assert.Equal(t, InvalidSignature, res.Events[0].Code)
	// the failed signature still consumed nonce 0
	assert.Equal(t, InvalidNonce, res.Events[1].Code)
	assert.False(t, res.Events[2].Success)
	assert.Equal(t, uint64(0), res.SuccessfulOperations)
	assert.Equal(t, uint64(3), f.ep.TotalOperations)
}

func TestTokenPaymasterSettlement(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	token := types.Token(f.mint)
	require.NoError(t, f.ledger.Mint(ctx, token, f.wallet.Address, 1_000))

	// max cost 100, actual cost 60
	op := &userop.UserOperation{
		Sender:               f.wallet.Address,
		CallGasLimit:         50,
		VerificationGasLimit: 40,
		PreVerificationGas:   10,
		MaxFeePerGas:         1,
	}
	op.SetPaymaster(f.pm.Address, userop.TokenPayment(f.mint, 500))
	f.sign(op)

	res, err := f.ep.HandleOps(ctx, []*userop.UserOperation{op}, types.Address{}, f.accounts, noop, f.ledger, now)
	require.NoError(t, err)
	require.True(t, res.Events[0].Success, res.Events[0].Reason)
	assert.Equal(t, uint64(60), res.Events[0].ActualGasCost)
	assert.Equal(t, &f.pm.Address, res.Events[0].Paymaster)

	bal, _ := f.ledger.Balance(ctx, token, f.wallet.Address)
	assert.Equal(t, uint64(700), bal)
	bal, _ = f.ledger.Balance(ctx, token, f.pm.Address)
	assert.Equal(t, uint64(300), bal)

	tok, _ := f.pm.Token(f.mint)
	assert.Equal(t, uint64(300), tok.TotalCollected)
	// paymaster operations bypass the daily window
	assert.Equal(t, uint64(0), f.wallet.DailySpent)
}

type refundRejectingLedger struct {
	*ledger.Memory
	custody types.Address
}

func (l refundRejectingLedger) Transfer(ctx context.Context, asset types.Asset, from, to types.Address, amount uint64) error {
	if from == l.custody && !asset.IsNative() {
		return errors.New("refund rejected")
	}
	return l.Memory.Transfer(ctx, asset, from, to, amount)
}

func TestPostOpFailureFailsOnlyThatOperation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	token := types.Token(f.mint)
	require.NoError(t, f.ledger.Mint(ctx, token, f.wallet.Address, 1_000))
	transfers := refundRejectingLedger{Memory: f.ledger, custody: f.pm.Address}

	// pre-charge 500, refund 200 cannot be paid back
	tokenOp := &userop.UserOperation{
		Sender:               f.wallet.Address,
		CallGasLimit:         50,
		VerificationGasLimit: 40,
		PreVerificationGas:   10,
		MaxFeePerGas:         1,
	}
	tokenOp.SetPaymaster(f.pm.Address, userop.TokenPayment(f.mint, 500))
	f.sign(tokenOp)

	sponsoredOp := f.op(1, 10)
	sponsoredOp.SetPaymaster(f.pm.Address, userop.Sponsored())
	f.sign(sponsoredOp)

	res, err := f.ep.HandleOps(ctx, []*userop.UserOperation{tokenOp, sponsoredOp}, types.Address{}, f.accounts, noop, transfers, now)
	require.NoError(t, err)
	require.Len(t, res.Events, 2)

	assert.False(t, res.Events[0].Success)
	assert.Equal(t, PaymasterRejected, res.Events[0].Code)
	assert.Contains(t, res.Events[0].Reason, "refund rejected")
	assert.True(t, res.Events[1].Success, res.Events[1].Reason)
	assert.Equal(t, uint64(1), res.SuccessfulOperations)
	assert.Equal(t, uint64(2), f.ep.TotalOperations)

	tok, _ := f.pm.Token(f.mint)
	assert.Equal(t, uint64(0), tok.TotalCollected)
	assert.Equal(t, uint64(10), f.pm.TotalSponsored)
	assert.Equal(t, uint64(2), f.pm.TotalOperations)

	bal, _ := f.ledger.Balance(ctx, token, f.pm.Address)
	assert.Equal(t, uint64(500), bal)
}

func TestFailedPreChargeKeepsRateQuota(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.pm.Config.MaxOperationsPerHour = 1
	f.pm.Config.RateLimitPerUser = 1

	// the wallet holds no tokens, so the pre-charge escrow fails
	tokenOp := f.op(0, 10)
	tokenOp.SetPaymaster(f.pm.Address, userop.TokenPayment(f.mint, 1_000))
	f.sign(tokenOp)

	sponsoredOp := f.op(1, 10)
	sponsoredOp.SetPaymaster(f.pm.Address, userop.Sponsored())
	f.sign(sponsoredOp)

	res, err := f.ep.HandleOps(ctx, []*userop.UserOperation{tokenOp, sponsoredOp}, types.Address{}, f.accounts, noop, f.ledger, now)
	require.NoError(t, err)

	assert.Equal(t, InsufficientFunds, res.Events[0].Code)
	assert.True(t, res.Events[1].Success, res.Events[1].Reason)
	assert.Equal(t, uint64(1), f.pm.RateWindow.Operations)
}

func TestRevertedCallStillCharged(t *testing.T) {
	f := newFixture(t)
	op := f.op(0, 10)
	op.SetPaymaster(f.pm.Address, userop.Sponsored())
	f.sign(op)

	revert := DispatcherFunc(func(context.Context, *userop.UserOperation) error { return errors.New("boom") })
	res, err := f.ep.HandleOps(context.Background(), []*userop.UserOperation{op}, types.Address{}, f.accounts, revert, f.ledger, now)
	require.NoError(t, err)

	assert.False(t, res.Events[0].Success)
	assert.Contains(t, res.Events[0].Reason, "reverted")
	assert.Equal(t, uint64(10), f.pm.TotalSponsored)
	assert.Equal(t, uint64(10), res.TotalGasUsed)
}

func TestPreDepositRequiresStake(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.pm.Config.RequirePreDeposit = true

	op := f.op(0, 10)
	op.SetPaymaster(f.pm.Address, userop.Sponsored())
	f.sign(op)

	res, err := f.ep.HandleOps(ctx, []*userop.UserOperation{op}, types.Address{}, f.accounts, noop, f.ledger, now)
	require.NoError(t, err)
	assert.Equal(t, PaymasterRejected, res.Events[0].Code)

	stake := NewStake(f.pm)
	require.NoError(t, f.ledger.Mint(ctx, types.Native(), f.pmOwner, DefaultMinStake))
	require.NoError(t, f.ep.AddStake(ctx, stake, f.pmOwner, DefaultMinStake, DefaultUnstakeDelay, f.ledger))
	f.accounts.Stakes[f.pm.Address] = stake

	op = f.sign(f.op(1, 10))
	op.SetPaymaster(f.pm.Address, userop.Sponsored())
	f.sign(op)
	res, err = f.ep.HandleOps(ctx, []*userop.UserOperation{op}, types.Address{}, f.accounts, noop, f.ledger, now)
	require.NoError(t, err)
	assert.True(t, res.Events[0].Success, res.Events[0].Reason)
}

func TestStakeLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	stake := NewStake(f.pm)
	require.NoError(t, f.ledger.Mint(ctx, types.Native(), f.pmOwner, 2*DefaultMinStake))

	err := f.ep.AddStake(ctx, stake, f.pmOwner, DefaultMinStake, DefaultUnstakeDelay-1, f.ledger)
	assert.True(t, errors.Is(err, ErrInvalidUnstakeDelay))
	err = f.ep.AddStake(ctx, stake, f.pmOwner, DefaultMinStake-1, DefaultUnstakeDelay, f.ledger)
	assert.True(t, errors.Is(err, ErrInsufficientStake))
	err = f.ep.AddStake(ctx, stake, types.Address{}, DefaultMinStake, DefaultUnstakeDelay, f.ledger)
	assert.True(t, errors.Is(err, ErrUnauthorized))

	require.NoError(t, f.ep.AddStake(ctx, stake, f.pmOwner, DefaultMinStake, DefaultUnstakeDelay, f.ledger))
	assert.Equal(t, uint64(1), f.ep.TotalPaymasters)

	_, err = f.ep.WithdrawStake(ctx, stake, f.pmOwner, f.pmOwner, now, f.ledger)
	assert.True(t, errors.Is(err, ErrWithdrawTimeNotReached))

	require.NoError(t, f.ep.UnlockStake(stake, f.pmOwner, now))
	assert.Equal(t, now+int64(DefaultUnstakeDelay), stake.WithdrawTime)
	info := f.ep.NewDepositInfo(f.pm.Address, 0, stake)
	assert.False(t, info.Staked)

	_, err = f.ep.WithdrawStake(ctx, stake, f.pmOwner, f.pmOwner, now+int64(DefaultUnstakeDelay)-1, f.ledger)
	assert.True(t, errors.Is(err, ErrWithdrawTimeNotReached))

	amount, err := f.ep.WithdrawStake(ctx, stake, f.pmOwner, f.pmOwner, now+int64(DefaultUnstakeDelay), f.ledger)
	require.NoError(t, err)
	assert.Equal(t, DefaultMinStake, amount)
	assert.Equal(t, uint64(0), stake.Stake)

	bal, _ := f.ledger.Balance(ctx, types.Native(), f.pmOwner)
	assert.Equal(t, 2*DefaultMinStake, bal)
}

func TestStakeUnstakeDelayBounds(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	stake := NewStake(f.pm)
	require.NoError(t, f.ledger.Mint(ctx, types.Native(), f.pmOwner, DefaultMinStake))

	err := f.ep.AddStake(ctx, stake, f.pmOwner, DefaultMinStake, math.MaxUint64, f.ledger)
	assert.True(t, errors.Is(err, ErrInvalidUnstakeDelay))
	err = f.ep.AddStake(ctx, stake, f.pmOwner, DefaultMinStake, MaxUnstakeDelay+1, f.ledger)
	assert.True(t, errors.Is(err, ErrInvalidUnstakeDelay))
	assert.Equal(t, uint64(0), stake.Stake)

	// the largest accepted delay cannot be unlocked into the past
	require.NoError(t, f.ep.AddStake(ctx, stake, f.pmOwner, DefaultMinStake, MaxUnstakeDelay, f.ledger))
	err = f.ep.UnlockStake(stake, f.pmOwner, now)
	assert.True(t, errors.Is(err, types.ErrArithmeticOverflow))
	assert.Equal(t, int64(0), stake.WithdrawTime)

	_, err = f.ep.WithdrawStake(ctx, stake, f.pmOwner, f.pmOwner, now, f.ledger)
	assert.True(t, errors.Is(err, ErrWithdrawTimeNotReached))

	// records persisted before the bound are rejected too
	stake.UnstakeDelay = math.MaxUint64
	err = f.ep.UnlockStake(stake, f.pmOwner, now)
	assert.True(t, errors.Is(err, ErrInvalidUnstakeDelay))

	stake.WithdrawTime = -1
	_, err = f.ep.WithdrawStake(ctx, stake, f.pmOwner, f.pmOwner, now, f.ledger)
	assert.True(t, errors.Is(err, ErrWithdrawTimeNotReached))
	assert.Equal(t, DefaultMinStake, stake.Stake)
}

func TestSimulateValidationIsReadOnly(t *testing.T) {
	f := newFixture(t)
	op := f.op(0, 10)
	op.SetPaymaster(f.pm.Address, userop.Sponsored())
	f.sign(op)

	res := f.ep.SimulateValidation(context.Background(), op, f.accounts, now)
	assert.Equal(t, Valid, res.Code, res.Reason)
	assert.Equal(t, op.Hash(), res.OpHash)
	assert.Equal(t, uint64(0), f.wallet.Nonce)
	assert.Equal(t, uint64(0), f.pm.RateWindow.Operations)

	bad := f.op(3, 10)
	res = f.ep.SimulateValidation(context.Background(), bad, f.accounts, now)
	assert.Equal(t, InvalidNonce, res.Code)
}

func TestLedgerDispatcher(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	var to types.Address
	to[0] = 0x42
	require.NoError(t, f.ledger.Mint(ctx, types.Native(), f.wallet.Address, 100))

	op := f.op(0, 10)
	op.CallData = EncodeTransferCall(types.Native(), to, 30)
	f.sign(op)

	res, err := f.ep.HandleOps(ctx, []*userop.UserOperation{op}, types.Address{}, f.accounts,
		LedgerDispatcher{Ledger: f.ledger}, f.ledger, now)
	require.NoError(t, err)
	assert.True(t, res.Events[0].Success, res.Events[0].Reason)

	bal, _ := f.ledger.Balance(ctx, types.Native(), to)
	assert.Equal(t, uint64(30), bal)
}
