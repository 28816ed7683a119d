package store

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/chainsafe/aa-bridge-middleware/pkg/bridge"
	"github.com/chainsafe/aa-bridge-middleware/pkg/entrypoint"
	"github.com/chainsafe/aa-bridge-middleware/pkg/ledger"
	"github.com/chainsafe/aa-bridge-middleware/pkg/paymaster"
	"github.com/chainsafe/aa-bridge-middleware/pkg/pgutil"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
	"github.com/chainsafe/aa-bridge-middleware/pkg/wallet"
)

const now int64 = 1_700_000_000

var errBoom = errors.New("boom")

func addr(b byte) types.Address {
	var a types.Address
	a[0] = b
	return a
}

func TestMemoryStore(t *testing.T) {
	runStoreSuite(t, NewMemory())
}

func TestPgStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres store test in short mode")
	}
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	createTables(t, db)

	runStoreSuite(t, NewStore(db))
}

func createTables(t *testing.T, db *bun.DB) {
	t.Helper()
	for _, model := range Models() {
		_, err := db.NewCreateTable().Model(model).IfNotExists().Exec(context.Background())
		require.NoError(t, err)
	}
}

func runStoreSuite(t *testing.T, s Store) {
	t.Run("wallet round trip", func(t *testing.T) { testWalletRoundTrip(t, s) })
	t.Run("rollback on error", func(t *testing.T) { testRollback(t, s) })
	t.Run("paymaster and stake", func(t *testing.T) { testPaymasterAndStake(t, s) })
	t.Run("bridge records", func(t *testing.T) { testBridgeRecords(t, s) })
	t.Run("balances", func(t *testing.T) { testBalances(t, s) })
	t.Run("operation events", func(t *testing.T) { testOperationEvents(t, s) })
}

func testWalletRoundTrip(t *testing.T, s Store) {
	ctx := context.Background()
	w := wallet.New(addr(1), common.HexToHash("0x01"), 100, now)
	require.NoError(t, w.AddGuardian(addr(1), addr(2)))

	require.NoError(t, s.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		return tx.CreateWallet(ctx, w)
	}))

	err := s.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		return tx.CreateWallet(ctx, w)
	})
	assert.True(t, errors.Is(err, ErrAlreadyExists))

	got, err := s.Wallet(ctx, w.Address)
	require.NoError(t, err)
	assert.Equal(t, w.Owner, got.Owner)
	assert.Equal(t, []types.Address{addr(2)}, got.Guardians)
	assert.Equal(t, uint64(100), got.DailyLimit)

	// reads return copies
	got.Guardians[0] = addr(9)
	again, err := s.Wallet(ctx, w.Address)
	require.NoError(t, err)
	assert.Equal(t, addr(2), again.Guardians[0])

	_, err = s.Wallet(ctx, addr(0x77))
	assert.True(t, errors.Is(err, ErrNotFound))
}

func testRollback(t *testing.T, s Store) {
	ctx := context.Background()
	w := wallet.New(addr(3), common.Hash{}, 0, now)
	require.NoError(t, s.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		return tx.CreateWallet(ctx, w)
	}))

	err := s.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		loaded, err := tx.Wallet(ctx, w.Address)
		if err != nil {
			return err
		}
		loaded.Nonce = 42
		loaded.IsFrozen = true
		if err := tx.UpdateWallet(ctx, loaded); err != nil {
			return err
		}
		if err := tx.Mint(ctx, types.Native(), w.Address, 500); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	got, err := s.Wallet(ctx, w.Address)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), got.Nonce)
	assert.False(t, got.IsFrozen)

	bal, err := s.Balance(ctx, types.Native(), w.Address)
	require.NoError(t, err)
	assert.Zero(t, bal)
}

func testPaymasterAndStake(t *testing.T, s Store) {
	ctx := context.Background()
	ep := entrypoint.New(addr(0x10), now)
	pm := paymaster.New(addr(0x11), ep.Address, paymaster.Config{MaxCostPerOperation: 1000}, now)
	require.NoError(t, pm.AddSupportedToken(pm.Owner, addr(0x12), 5, nil))

	require.NoError(t, s.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		if err := tx.CreateEntryPoint(ctx, ep); err != nil {
			return err
		}
		if err := tx.CreatePaymaster(ctx, pm); err != nil {
			return err
		}
		st := entrypoint.NewStake(pm)
		st.Stake = 2_000_000_000
		return tx.SaveStake(ctx, st)
	}))

	gotPM, err := s.Paymaster(ctx, pm.Address)
	require.NoError(t, err)
	require.Len(t, gotPM.SupportedTokens, 1)
	assert.Equal(t, uint64(5), gotPM.SupportedTokens[0].RatePerLamport)

	st, err := s.Stake(ctx, pm.Address)
	require.NoError(t, err)
	assert.Equal(t, uint64(2_000_000_000), st.Stake)

	require.NoError(t, s.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		st, err := tx.Stake(ctx, pm.Address)
		if err != nil {
			return err
		}
		st.WithdrawTime = now + 100
		return tx.SaveStake(ctx, st)
	}))
	st, err = s.Stake(ctx, pm.Address)
	require.NoError(t, err)
	assert.Equal(t, now+100, st.WithdrawTime)

	_, err = s.Stake(ctx, addr(0x13))
	assert.True(t, errors.Is(err, ErrNotFound))

	gotEP, err := s.EntryPoint(ctx, ep.Address)
	require.NoError(t, err)
	assert.Equal(t, ep.MinStake, gotEP.MinStake)
}

func testBridgeRecords(t *testing.T, s Store) {
	ctx := context.Background()
	b, err := bridge.New(addr(0x20), []types.Address{addr(0x21), addr(0x22)}, 2, now)
	require.NoError(t, err)

	locks := []*bridge.LockRecord{
		{Address: addr(0x30), Bridge: b.Address, ID: 0, User: addr(0x40), Asset: types.Native(), Amount: 10},
		{Address: addr(0x31), Bridge: b.Address, ID: 2, User: addr(0x40), Asset: types.Token(addr(0x50)), Amount: 20},
		{Address: addr(0x32), Bridge: b.Address, ID: 3, User: addr(0x41), Asset: types.Native(), Amount: 30},
	}
	burn := &bridge.BurnRecord{Address: addr(0x33), Bridge: b.Address, ID: 1, User: addr(0x40), Asset: types.Token(addr(0x50)), Amount: 5}
	mint := &bridge.MintRecord{Address: addr(0x34), LockID: 7, SourceChain: 1, Recipient: addr(0x42), Asset: types.Native(), Amount: 9, IsMinted: true}

	require.NoError(t, s.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		if err := tx.CreateBridge(ctx, b); err != nil {
			return err
		}
		for _, r := range locks {
			if err := tx.CreateLockRecord(ctx, r); err != nil {
				return err
			}
		}
		if err := tx.CreateBurnRecord(ctx, burn); err != nil {
			return err
		}
		return tx.CreateMintRecord(ctx, mint)
	}))

	err = s.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		return tx.CreateMintRecord(ctx, mint)
	})
	assert.True(t, errors.Is(err, ErrAlreadyExists))

	require.NoError(t, s.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		r, err := tx.LockRecord(ctx, locks[0].Address)
		if err != nil {
			return err
		}
		if err := r.MarkClaimed(common.HexToHash("0xfeed")); err != nil {
			return err
		}
		return tx.UpdateLockRecord(ctx, r)
	}))

	unclaimed, err := s.ListUnclaimedLocks(ctx, b.Address, 0, 10)
	require.NoError(t, err)
	require.Len(t, unclaimed, 2)
	assert.Equal(t, uint64(2), unclaimed[0].ID)
	assert.Equal(t, uint64(3), unclaimed[1].ID)
	assert.Equal(t, types.Token(addr(0x50)), unclaimed[0].Asset)

	page, err := s.ListUnclaimedLocks(ctx, b.Address, 3, 10)
	require.NoError(t, err)
	require.Len(t, page, 1)

	burns, err := s.ListUnclaimedBurns(ctx, b.Address, 0, 10)
	require.NoError(t, err)
	require.Len(t, burns, 1)
	assert.Equal(t, uint64(5), burns[0].Amount)

	claimed, err := s.LockRecord(ctx, locks[0].Address)
	require.NoError(t, err)
	assert.True(t, claimed.IsClaimed)
	assert.Equal(t, common.HexToHash("0xfeed"), claimed.ClaimTxHash)

	gotMint, err := s.MintRecord(ctx, mint.Address)
	require.NoError(t, err)
	assert.True(t, gotMint.IsMinted)

	gotBridge, err := s.Bridge(ctx, b.Address)
	require.NoError(t, err)
	assert.Equal(t, b.Validators, gotBridge.Validators)
	assert.Equal(t, uint32(2), gotBridge.Threshold)
}

func testBalances(t *testing.T, s Store) {
	ctx := context.Background()
	token := types.Token(addr(0x60))
	alice, bob := addr(0x61), addr(0x62)

	require.NoError(t, s.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		if err := tx.Mint(ctx, token, alice, 1000); err != nil {
			return err
		}
		return tx.Transfer(ctx, token, alice, bob, 300)
	}))

	err := s.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		return tx.Burn(ctx, token, bob, 301)
	})
	assert.True(t, errors.Is(err, ledger.ErrInsufficientFunds))

	err = s.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		return tx.Transfer(ctx, token, alice, bob, 0)
	})
	assert.True(t, errors.Is(err, ledger.ErrInvalidAmount))

	a, err := s.Balance(ctx, token, alice)
	require.NoError(t, err)
	b, err := s.Balance(ctx, token, bob)
	require.NoError(t, err)
	assert.Equal(t, uint64(700), a)
	assert.Equal(t, uint64(300), b)

	native, err := s.Balance(ctx, types.Native(), alice)
	require.NoError(t, err)
	assert.Zero(t, native)
}

func testOperationEvents(t *testing.T, s Store) {
	ctx := context.Background()
	records := []*OperationEventRecord{
		{BatchID: "b1", Index: 0, Event: entrypoint.OperationEvent{Sender: addr(0x70), Success: true}, CreatedAt: now},
		{BatchID: "b1", Index: 1, Event: entrypoint.OperationEvent{Sender: addr(0x71), Code: entrypoint.InvalidNonce, Reason: "invalid nonce"}, CreatedAt: now},
	}
	require.NoError(t, s.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		return tx.InsertOperationEvents(ctx, records)
	}))

	got, err := s.OperationEvents(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Event.Success)
	assert.Equal(t, entrypoint.InvalidNonce, got[1].Event.Code)

	none, err := s.OperationEvents(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, none)
}
