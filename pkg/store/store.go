// Package store persists the keyed records of the entry point, wallets,
// paymasters, stakes and the bridge, together with asset balances.
//
// Every mutation happens inside RunInTx. Reads made through the Tx lock the
// returned rows until the transaction ends, which gives each call exclusive
// access to the records it mutates.
package store

import (
	"context"

	apperrors "github.com/chainsafe/aa-bridge-middleware/pkg/app/errors"
	"github.com/chainsafe/aa-bridge-middleware/pkg/bridge"
	"github.com/chainsafe/aa-bridge-middleware/pkg/entrypoint"
	"github.com/chainsafe/aa-bridge-middleware/pkg/ledger"
	"github.com/chainsafe/aa-bridge-middleware/pkg/paymaster"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
	"github.com/chainsafe/aa-bridge-middleware/pkg/wallet"
)

var (
	ErrNotFound      = apperrors.New(apperrors.CategoryResourceNotFound, "record not found")
	ErrAlreadyExists = apperrors.New(apperrors.CategoryReplayViolation, "record already exists")
)

// OperationEventRecord is a persisted per-operation batch outcome.
type OperationEventRecord struct {
	BatchID   string                    `json:"batch_id"`
	Index     int                       `json:"index"`
	Event     entrypoint.OperationEvent `json:"event"`
	CreatedAt int64                     `json:"created_at"`
}

// Reader loads records by address.
type Reader interface {
	EntryPoint(ctx context.Context, addr types.Address) (*entrypoint.EntryPoint, error)
	Wallet(ctx context.Context, addr types.Address) (*wallet.Wallet, error)
	Paymaster(ctx context.Context, addr types.Address) (*paymaster.Paymaster, error)
	// Stake looks a stake up by its paymaster address.
	Stake(ctx context.Context, paymaster types.Address) (*entrypoint.PaymasterStake, error)
	Bridge(ctx context.Context, addr types.Address) (*bridge.Bridge, error)
	LockRecord(ctx context.Context, addr types.Address) (*bridge.LockRecord, error)
	MintRecord(ctx context.Context, addr types.Address) (*bridge.MintRecord, error)
	BurnRecord(ctx context.Context, addr types.Address) (*bridge.BurnRecord, error)
	// ListUnclaimedLocks returns unclaimed locks of a bridge with ID >= fromID, oldest first.
	ListUnclaimedLocks(ctx context.Context, bridgeAddr types.Address, fromID uint64, limit int) ([]*bridge.LockRecord, error)
	ListUnclaimedBurns(ctx context.Context, bridgeAddr types.Address, fromID uint64, limit int) ([]*bridge.BurnRecord, error)
	OperationEvents(ctx context.Context, batchID string) ([]*OperationEventRecord, error)
	Balance(ctx context.Context, asset types.Asset, owner types.Address) (uint64, error)
}

// Tx is a unit of work. It is only valid inside the RunInTx callback.
type Tx interface {
	Reader
	ledger.Ledger

	CreateEntryPoint(ctx context.Context, ep *entrypoint.EntryPoint) error
	UpdateEntryPoint(ctx context.Context, ep *entrypoint.EntryPoint) error
	CreateWallet(ctx context.Context, w *wallet.Wallet) error
	UpdateWallet(ctx context.Context, w *wallet.Wallet) error
	CreatePaymaster(ctx context.Context, pm *paymaster.Paymaster) error
	UpdatePaymaster(ctx context.Context, pm *paymaster.Paymaster) error
	SaveStake(ctx context.Context, s *entrypoint.PaymasterStake) error
	CreateBridge(ctx context.Context, b *bridge.Bridge) error
	UpdateBridge(ctx context.Context, b *bridge.Bridge) error
	CreateLockRecord(ctx context.Context, r *bridge.LockRecord) error
	UpdateLockRecord(ctx context.Context, r *bridge.LockRecord) error
	CreateMintRecord(ctx context.Context, r *bridge.MintRecord) error
	CreateBurnRecord(ctx context.Context, r *bridge.BurnRecord) error
	UpdateBurnRecord(ctx context.Context, r *bridge.BurnRecord) error
	InsertOperationEvents(ctx context.Context, records []*OperationEventRecord) error
}

// Store is the durable record store.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	Reader
	// RunInTx runs fn in a transaction, committing when it returns nil.
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}
