// Package service orchestrates the wallet, paymaster, entry point and bridge
// state machines over the durable store.
//
// Every mutating call runs in one store transaction: records are loaded (and
// locked), the state machine runs with the injected clock, and the records are
// written back. A failed call leaves the store unchanged.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/aa-bridge-middleware/pkg/app/errors"
	"github.com/chainsafe/aa-bridge-middleware/pkg/bridge"
	"github.com/chainsafe/aa-bridge-middleware/pkg/entrypoint"
	"github.com/chainsafe/aa-bridge-middleware/pkg/keying"
	"github.com/chainsafe/aa-bridge-middleware/pkg/paymaster"
	"github.com/chainsafe/aa-bridge-middleware/pkg/store"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
	"github.com/chainsafe/aa-bridge-middleware/pkg/userop"
	"github.com/chainsafe/aa-bridge-middleware/pkg/wallet"
)

// DefaultMaxBatchSize bounds HandleOps when no limit is configured.
const DefaultMaxBatchSize = 64

var (
	ErrBatchTooLarge      = apperrors.New(apperrors.CategoryPolicyViolation, "batch exceeds maximum size")
	ErrEmptyBatch         = apperrors.New(apperrors.CategoryMalformedInput, "batch contains no operations")
	ErrNotAuthority       = apperrors.New(apperrors.CategoryAuthorizationFailure, "caller is not the configured authority")
	ErrNotBridgeValidator = apperrors.New(apperrors.CategoryAuthorizationFailure, "caller is not a bridge validator")
	ErrInvalidConfig      = apperrors.New(apperrors.CategoryMalformedInput, "invalid paymaster config")
)

// notFound names the missing record for callers; store.ErrNotFound stays in the chain.
func notFound(err error, record string) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperrors.ResourceNotFoundError(err, record+" not found")
	}
	return err
}

// Clock supplies the current time to the state machines.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock is the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// BatchResponse is the outcome of HandleOps.
type BatchResponse struct {
	BatchID string `json:"batch_id"`
	*entrypoint.BatchResult
}

// Service defines the interface for the ledger business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	// Entry point
	InitializeEntryPoint(ctx context.Context, caller types.Address) (*entrypoint.EntryPoint, error)
	GetEntryPoint(ctx context.Context) (*entrypoint.EntryPoint, error)
	HandleOps(ctx context.Context, ops []*userop.UserOperation, beneficiary types.Address) (*BatchResponse, error)
	SimulateValidation(ctx context.Context, op *userop.UserOperation) (*entrypoint.SimulationResult, error)
	AddStake(ctx context.Context, caller, pm types.Address, deposit, unstakeDelay uint64) (*entrypoint.PaymasterStake, error)
	UnlockStake(ctx context.Context, caller, pm types.Address) (*entrypoint.PaymasterStake, error)
	WithdrawStake(ctx context.Context, caller, pm, destination types.Address) (uint64, error)
	GetDepositInfo(ctx context.Context, pm types.Address) (*entrypoint.DepositInfo, error)

	// Wallets
	CreateWallet(ctx context.Context, owner types.Address, recoveryHash common.Hash, dailyLimit uint64) (*wallet.Wallet, error)
	GetWallet(ctx context.Context, addr types.Address) (*wallet.Wallet, error)
	Freeze(ctx context.Context, caller, addr types.Address) (*wallet.Wallet, error)
	Unfreeze(ctx context.Context, caller, addr types.Address) (*wallet.Wallet, error)
	AddGuardian(ctx context.Context, caller, addr, guardian types.Address) (*wallet.Wallet, error)
	RemoveGuardian(ctx context.Context, caller, addr, guardian types.Address) (*wallet.Wallet, error)
	SetDailyLimit(ctx context.Context, caller, addr types.Address, limit uint64) (*wallet.Wallet, error)
	InitiateRecovery(ctx context.Context, caller, addr, newOwner types.Address) (*wallet.RecoveryProgress, error)
	ApproveRecovery(ctx context.Context, caller, addr types.Address) (*wallet.RecoveryProgress, error)
	CancelRecovery(ctx context.Context, caller, addr types.Address) error

	// Paymasters
	CreatePaymaster(ctx context.Context, owner types.Address, cfg paymaster.Config) (*paymaster.Paymaster, error)
	GetPaymaster(ctx context.Context, addr types.Address) (*paymaster.Paymaster, error)
	AddSupportedToken(ctx context.Context, caller, pm, mint types.Address, rate uint64, oracle *types.Address) (*paymaster.Paymaster, error)
	SetTokenActive(ctx context.Context, caller, pm, mint types.Address, active bool) (*paymaster.Paymaster, error)
	UpdatePaymasterConfig(ctx context.Context, caller, pm types.Address, cfg paymaster.Config) (*paymaster.Paymaster, error)
	SetPaymasterActive(ctx context.Context, caller, pm types.Address, active bool) (*paymaster.Paymaster, error)
	WithdrawPaymaster(ctx context.Context, caller, pm types.Address, asset types.Asset, amount uint64, destination types.Address) error

	// Bridge
	InitializeBridge(ctx context.Context, caller types.Address, validators []types.Address, threshold uint32) (*bridge.Bridge, error)
	GetBridge(ctx context.Context, addr types.Address) (*bridge.Bridge, error)
	AddSupportedChain(ctx context.Context, caller, bridgeAddr types.Address, chain bridge.SupportedChain) (*bridge.Bridge, error)
	SetChainActive(ctx context.Context, caller, bridgeAddr types.Address, chainID uint64, active bool) (*bridge.Bridge, error)
	SetPaused(ctx context.Context, caller, bridgeAddr types.Address, paused bool) (*bridge.Bridge, error)
	UpdateValidators(ctx context.Context, caller, bridgeAddr types.Address, validators []types.Address, threshold uint32) (*bridge.Bridge, error)
	LockTokens(ctx context.Context, user, bridgeAddr types.Address, req bridge.LockRequest) (*bridge.LockRecord, error)
	BurnTokens(ctx context.Context, user, bridgeAddr types.Address, req bridge.BurnRequest) (*bridge.BurnRecord, error)
	MintTokens(ctx context.Context, bridgeAddr types.Address, req bridge.MintRequest) (*bridge.MintRecord, error)
	GetLockRecord(ctx context.Context, addr types.Address) (*bridge.LockRecord, error)
	GetMintRecord(ctx context.Context, addr types.Address) (*bridge.MintRecord, error)
	GetBurnRecord(ctx context.Context, addr types.Address) (*bridge.BurnRecord, error)
	ListUnclaimedLocks(ctx context.Context, bridgeAddr types.Address, fromID uint64, limit int) ([]*bridge.LockRecord, error)
	ListUnclaimedBurns(ctx context.Context, bridgeAddr types.Address, fromID uint64, limit int) ([]*bridge.BurnRecord, error)
	MarkLockClaimed(ctx context.Context, caller, lockAddr types.Address, txHash common.Hash) (*bridge.LockRecord, error)
	MarkBurnClaimed(ctx context.Context, caller, burnAddr types.Address, txHash common.Hash) (*bridge.BurnRecord, error)

	// Balances
	Balance(ctx context.Context, asset types.Asset, owner types.Address) (uint64, error)
}

// Option configures the ledger service.
type Option func(*ledgerService)

// WithClock overrides the wall clock.
func WithClock(c Clock) Option {
	return func(s *ledgerService) { s.clock = c }
}

// WithMaxBatchSize bounds the number of operations per HandleOps call.
func WithMaxBatchSize(n int) Option {
	return func(s *ledgerService) {
		if n > 0 {
			s.maxBatchSize = n
		}
	}
}

type ledgerService struct {
	store        store.Store
	authority    types.Address
	entryPoint   types.Address
	clock        Clock
	maxBatchSize int
	logger       *zap.Logger
}

// NewService creates a new ledger service. authority owns the entry point.
func NewService(st store.Store, authority types.Address, logger *zap.Logger, opts ...Option) Service {
	s := &ledgerService{
		store:        st,
		authority:    authority,
		entryPoint:   keying.EntryPoint(authority),
		clock:        SystemClock,
		maxBatchSize: DefaultMaxBatchSize,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ledgerService) now() int64 {
	return s.clock.Now().Unix()
}

func (s *ledgerService) Balance(ctx context.Context, asset types.Asset, owner types.Address) (uint64, error) {
	return s.store.Balance(ctx, asset, owner)
}
