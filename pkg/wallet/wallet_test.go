package wallet

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainsafe/aa-bridge-middleware/pkg/keys"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
	"github.com/chainsafe/aa-bridge-middleware/pkg/userop"
)

const t0 int64 = 1_700_000_000

func newKey(t *testing.T) *keys.KeyPair {
	t.Helper()
	kp, err := keys.GenerateKeyPair()
	require.NoError(t, err)
	return kp
}

func newWallet(t *testing.T, limit uint64) (*Wallet, *keys.KeyPair) {
	t.Helper()
	owner := newKey(t)
	return New(owner.PublicKey, common.HexToHash("0x01"), limit, t0), owner
}

func signedOp(w *Wallet, signer *keys.KeyPair, nonce, fee uint64) *userop.UserOperation {
	op := &userop.UserOperation{
		Sender:       w.Address,
		Nonce:        nonce,
		CallData:     []byte{0x01},
		CallGasLimit: 10,
		MaxFeePerGas: fee,
	}
	op.Signature = signer.SignHash(op.Hash())
	return op
}

func TestNonceMonotonicity(t *testing.T) {
	w, owner := newWallet(t, 1_000)

	for i := uint64(0); i < 3; i++ {
		exec, err := w.ExecuteUserOperation(signedOp(w, owner, i, 1), t0)
		require.NoError(t, err)
		assert.Equal(t, i, exec.Nonce)
		assert.Equal(t, i+1, w.Nonce)
	}

	_, err := w.ExecuteUserOperation(signedOp(w, owner, 1, 1), t0)
	assert.True(t, errors.Is(err, ErrInvalidNonce))
	_, err = w.ExecuteUserOperation(signedOp(w, owner, 7, 1), t0)
	assert.True(t, errors.Is(err, ErrInvalidNonce))
	assert.Equal(t, uint64(3), w.Nonce)
}

func TestNonceCommitsBeforeSignatureCheck(t *testing.T) {
	w, _ := newWallet(t, 1_000)
	stranger := newKey(t)

	_, err := w.ExecuteUserOperation(signedOp(w, stranger, 0, 1), t0)
	assert.True(t, errors.Is(err, ErrInvalidSignature))
	assert.Equal(t, uint64(1), w.Nonce)
}

func TestDailyLimitReset(t *testing.T) {
	w, owner := newWallet(t, 100)
	w.DailySpent = 90

	_, err := w.ExecuteUserOperation(signedOp(w, owner, 0, 20), t0+1)
	assert.True(t, errors.Is(err, ErrDailyLimitExceeded))
	assert.Equal(t, uint64(90), w.DailySpent)

	_, err = w.ExecuteUserOperation(signedOp(w, owner, 1, 20), t0+DailyWindow)
	require.NoError(t, err)
	assert.Equal(t, uint64(20), w.DailySpent)
	assert.Equal(t, t0+DailyWindow, w.LastReset)
}

func TestPaymasterOpsSkipDailyLimit(t *testing.T) {
	w, owner := newWallet(t, 0)

	op := signedOp(w, owner, 0, 50)
	op.PaymasterAndData = append(make([]byte, 32), 0)
	_, err := w.ExecuteUserOperation(op, t0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), w.DailySpent)
}

func TestFreeze(t *testing.T) {
	w, owner := newWallet(t, 100)
	guardian := newKey(t).PublicKey
	require.NoError(t, w.AddGuardian(owner.PublicKey, guardian))

	assert.True(t, errors.Is(w.Freeze(owner.PublicKey), ErrUnauthorizedGuardian))
	require.NoError(t, w.Freeze(guardian))
	assert.Equal(t, StateFrozen, w.State())

	_, err := w.ExecuteUserOperation(signedOp(w, owner, 0, 1), t0)
	assert.True(t, errors.Is(err, ErrWalletFrozen))
	assert.Equal(t, uint64(0), w.Nonce)

	assert.True(t, errors.Is(w.Unfreeze(guardian), ErrUnauthorized))
	require.NoError(t, w.Unfreeze(owner.PublicKey))
	assert.Equal(t, StateActive, w.State())
}

func TestGuardianManagement(t *testing.T) {
	w, owner := newWallet(t, 100)

	for i := 0; i < MaxGuardians; i++ {
		require.NoError(t, w.AddGuardian(owner.PublicKey, newKey(t).PublicKey))
	}
	assert.True(t, errors.Is(w.AddGuardian(owner.PublicKey, newKey(t).PublicKey), ErrTooManyGuardians))

	g := w.Guardians[0]
	require.NoError(t, w.RemoveGuardian(owner.PublicKey, g))
	assert.True(t, errors.Is(w.RemoveGuardian(owner.PublicKey, g), ErrGuardianNotFound))
	assert.True(t, errors.Is(w.AddGuardian(owner.PublicKey, w.Guardians[0]), ErrGuardianAlreadyExists))
	assert.True(t, errors.Is(w.AddGuardian(g, g), ErrUnauthorized))
}

func TestRecoveryQuorum(t *testing.T) {
	w, owner := newWallet(t, 100)
	guardians := make([]types.Address, 4)
	for i := range guardians {
		guardians[i] = newKey(t).PublicKey
		require.NoError(t, w.AddGuardian(owner.PublicKey, guardians[i]))
	}
	newOwner := newKey(t).PublicKey
	assert.Equal(t, 3, w.RequiredApprovals())

	progress, err := w.InitiateRecovery(guardians[0], newOwner, t0)
	require.NoError(t, err)
	assert.False(t, progress.Completed)

	_, err = w.InitiateRecovery(guardians[1], newOwner, t0)
	assert.True(t, errors.Is(err, ErrRecoveryInProgress))

	_, err = w.ApproveRecovery(guardians[0])
	assert.True(t, errors.Is(err, ErrAlreadyApproved))

	progress, err = w.ApproveRecovery(guardians[1])
	require.NoError(t, err)
	assert.Equal(t, 2, progress.Approvals)
	assert.False(t, progress.Completed)
	assert.Equal(t, owner.PublicKey, w.Owner)

	nonceBefore := w.Nonce
	addr := w.Address
	progress, err = w.ApproveRecovery(guardians[2])
	require.NoError(t, err)
	assert.True(t, progress.Completed)
	assert.Equal(t, newOwner, w.Owner)
	assert.Nil(t, w.PendingRecovery)
	assert.Equal(t, nonceBefore+1, w.Nonce)
	assert.Equal(t, addr, w.Address)

	_, err = w.ApproveRecovery(guardians[3])
	assert.True(t, errors.Is(err, ErrNoRecoveryInProgress))
}

func TestSingleGuardianRecoversImmediately(t *testing.T) {
	w, owner := newWallet(t, 100)
	g := newKey(t).PublicKey
	require.NoError(t, w.AddGuardian(owner.PublicKey, g))

	newOwner := newKey(t).PublicKey
	progress, err := w.InitiateRecovery(g, newOwner, t0)
	require.NoError(t, err)
	assert.True(t, progress.Completed)
	assert.Equal(t, newOwner, w.Owner)
}

func TestRemoveGuardianDropsApproval(t *testing.T) {
	w, owner := newWallet(t, 100)
	guardians := make([]types.Address, 3)
	for i := range guardians {
		guardians[i] = newKey(t).PublicKey
		require.NoError(t, w.AddGuardian(owner.PublicKey, guardians[i]))
	}

	_, err := w.InitiateRecovery(guardians[0], newKey(t).PublicKey, t0)
	require.NoError(t, err)
	require.NoError(t, w.RemoveGuardian(owner.PublicKey, guardians[0]))
	assert.Empty(t, w.PendingRecovery.GuardianApprovals)

	require.NoError(t, w.CancelRecovery(owner.PublicKey))
	assert.Nil(t, w.PendingRecovery)
	assert.True(t, errors.Is(w.CancelRecovery(owner.PublicKey), ErrNoRecoveryInProgress))
}

func TestCheckExecutionDoesNotMutate(t *testing.T) {
	w, owner := newWallet(t, 100)
	require.NoError(t, w.CheckExecution(signedOp(w, owner, 0, 10), t0))
	assert.Equal(t, uint64(0), w.Nonce)
	assert.Equal(t, uint64(0), w.DailySpent)
}
