package service

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/aa-bridge-middleware/pkg/bridge"
	"github.com/chainsafe/aa-bridge-middleware/pkg/entrypoint"
	"github.com/chainsafe/aa-bridge-middleware/pkg/paymaster"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
	"github.com/chainsafe/aa-bridge-middleware/pkg/userop"
	"github.com/chainsafe/aa-bridge-middleware/pkg/wallet"
)

const serviceName = "LedgerService"

// logService wraps Service with automatic logging of all mutating calls.
// Reads pass through unlogged.
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the ledger Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// observe logs method entry and returns the exit hook; call it deferred with
// the address of the named error result.
func (ls *logService) observe(method string, err *error, fields ...zap.Field) func() {
	start := time.Now()
	base := []zap.Field{zap.String("service", serviceName), zap.String("method", method)}
	ls.logger.Debug(method+" started", append(base, fields...)...)

	return func() {
		out := append(base, zap.Duration("duration", time.Since(start)))
		if *err != nil {
			ls.logger.Error(method+" failed", append(append(out, fields...), zap.Error(*err))...)
			return
		}
		ls.logger.Info(method+" completed", append(out, fields...)...)
	}
}

func addrField(key string, a types.Address) zap.Field { return zap.String(key, a.String()) }

func (ls *logService) InitializeEntryPoint(ctx context.Context, caller types.Address) (_ *entrypoint.EntryPoint, err error) {
	defer ls.observe("InitializeEntryPoint", &err, addrField("caller", caller))()
	return ls.svc.InitializeEntryPoint(ctx, caller)
}

func (ls *logService) GetEntryPoint(ctx context.Context) (*entrypoint.EntryPoint, error) {
	return ls.svc.GetEntryPoint(ctx)
}

func (ls *logService) HandleOps(ctx context.Context, ops []*userop.UserOperation, beneficiary types.Address) (_ *BatchResponse, err error) {
	defer ls.observe("HandleOps", &err, zap.Int("operations", len(ops)), addrField("beneficiary", beneficiary))()
	return ls.svc.HandleOps(ctx, ops, beneficiary)
}

func (ls *logService) SimulateValidation(ctx context.Context, op *userop.UserOperation) (*entrypoint.SimulationResult, error) {
	return ls.svc.SimulateValidation(ctx, op)
}

func (ls *logService) AddStake(ctx context.Context, caller, pm types.Address, deposit, unstakeDelay uint64) (_ *entrypoint.PaymasterStake, err error) {
	defer ls.observe("AddStake", &err, addrField("paymaster", pm), zap.Uint64("deposit", deposit), zap.Uint64("unstake_delay", unstakeDelay))()
	return ls.svc.AddStake(ctx, caller, pm, deposit, unstakeDelay)
}

func (ls *logService) UnlockStake(ctx context.Context, caller, pm types.Address) (_ *entrypoint.PaymasterStake, err error) {
	defer ls.observe("UnlockStake", &err, addrField("paymaster", pm))()
	return ls.svc.UnlockStake(ctx, caller, pm)
}

func (ls *logService) WithdrawStake(ctx context.Context, caller, pm, destination types.Address) (_ uint64, err error) {
	defer ls.observe("WithdrawStake", &err, addrField("paymaster", pm), addrField("destination", destination))()
	return ls.svc.WithdrawStake(ctx, caller, pm, destination)
}

func (ls *logService) GetDepositInfo(ctx context.Context, pm types.Address) (*entrypoint.DepositInfo, error) {
	return ls.svc.GetDepositInfo(ctx, pm)
}

func (ls *logService) CreateWallet(ctx context.Context, owner types.Address, recoveryHash common.Hash, dailyLimit uint64) (_ *wallet.Wallet, err error) {
	defer ls.observe("CreateWallet", &err, addrField("owner", owner), zap.Uint64("daily_limit", dailyLimit))()
	return ls.svc.CreateWallet(ctx, owner, recoveryHash, dailyLimit)
}

func (ls *logService) GetWallet(ctx context.Context, a types.Address) (*wallet.Wallet, error) {
	return ls.svc.GetWallet(ctx, a)
}

func (ls *logService) Freeze(ctx context.Context, caller, a types.Address) (_ *wallet.Wallet, err error) {
	defer ls.observe("Freeze", &err, addrField("wallet", a))()
	return ls.svc.Freeze(ctx, caller, a)
}

func (ls *logService) Unfreeze(ctx context.Context, caller, a types.Address) (_ *wallet.Wallet, err error) {
	defer ls.observe("Unfreeze", &err, addrField("wallet", a))()
	return ls.svc.Unfreeze(ctx, caller, a)
}

func (ls *logService) AddGuardian(ctx context.Context, caller, a, guardian types.Address) (_ *wallet.Wallet, err error) {
	defer ls.observe("AddGuardian", &err, addrField("wallet", a), addrField("guardian", guardian))()
	return ls.svc.AddGuardian(ctx, caller, a, guardian)
}

func (ls *logService) RemoveGuardian(ctx context.Context, caller, a, guardian types.Address) (_ *wallet.Wallet, err error) {
	defer ls.observe("RemoveGuardian", &err, addrField("wallet", a), addrField("guardian", guardian))()
	return ls.svc.RemoveGuardian(ctx, caller, a, guardian)
}

func (ls *logService) SetDailyLimit(ctx context.Context, caller, a types.Address, limit uint64) (_ *wallet.Wallet, err error) {
	defer ls.observe("SetDailyLimit", &err, addrField("wallet", a), zap.Uint64("limit", limit))()
	return ls.svc.SetDailyLimit(ctx, caller, a, limit)
}

func (ls *logService) InitiateRecovery(ctx context.Context, caller, a, newOwner types.Address) (_ *wallet.RecoveryProgress, err error) {
	defer ls.observe("InitiateRecovery", &err, addrField("wallet", a), addrField("guardian", caller), addrField("new_owner", newOwner))()
	return ls.svc.InitiateRecovery(ctx, caller, a, newOwner)
}

func (ls *logService) ApproveRecovery(ctx context.Context, caller, a types.Address) (_ *wallet.RecoveryProgress, err error) {
	defer ls.observe("ApproveRecovery", &err, addrField("wallet", a), addrField("guardian", caller))()
	return ls.svc.ApproveRecovery(ctx, caller, a)
}

func (ls *logService) CancelRecovery(ctx context.Context, caller, a types.Address) (err error) {
	defer ls.observe("CancelRecovery", &err, addrField("wallet", a))()
	return ls.svc.CancelRecovery(ctx, caller, a)
}

func (ls *logService) CreatePaymaster(ctx context.Context, owner types.Address, cfg paymaster.Config) (_ *paymaster.Paymaster, err error) {
	defer ls.observe("CreatePaymaster", &err, addrField("owner", owner), zap.Uint64("max_cost_per_operation", cfg.MaxCostPerOperation))()
	return ls.svc.CreatePaymaster(ctx, owner, cfg)
}

func (ls *logService) GetPaymaster(ctx context.Context, a types.Address) (*paymaster.Paymaster, error) {
	return ls.svc.GetPaymaster(ctx, a)
}

func (ls *logService) AddSupportedToken(ctx context.Context, caller, pm, mint types.Address, rate uint64,
	oracle *types.Address) (_ *paymaster.Paymaster, err error) {
	defer ls.observe("AddSupportedToken", &err, addrField("paymaster", pm), addrField("mint", mint), zap.Uint64("rate", rate))()
	return ls.svc.AddSupportedToken(ctx, caller, pm, mint, rate, oracle)
}

func (ls *logService) SetTokenActive(ctx context.Context, caller, pm, mint types.Address, active bool) (_ *paymaster.Paymaster, err error) {
	defer ls.observe("SetTokenActive", &err, addrField("paymaster", pm), addrField("mint", mint), zap.Bool("active", active))()
	return ls.svc.SetTokenActive(ctx, caller, pm, mint, active)
}

func (ls *logService) UpdatePaymasterConfig(ctx context.Context, caller, pm types.Address, cfg paymaster.Config) (_ *paymaster.Paymaster, err error) {
	defer ls.observe("UpdatePaymasterConfig", &err, addrField("paymaster", pm), zap.Uint64("max_cost_per_operation", cfg.MaxCostPerOperation))()
	return ls.svc.UpdatePaymasterConfig(ctx, caller, pm, cfg)
}

func (ls *logService) SetPaymasterActive(ctx context.Context, caller, pm types.Address, active bool) (_ *paymaster.Paymaster, err error) {
	defer ls.observe("SetPaymasterActive", &err, addrField("paymaster", pm), zap.Bool("active", active))()
	return ls.svc.SetPaymasterActive(ctx, caller, pm, active)
}

func (ls *logService) WithdrawPaymaster(ctx context.Context, caller, pm types.Address, asset types.Asset, amount uint64,
	destination types.Address) (err error) {
	defer ls.observe("WithdrawPaymaster", &err, addrField("paymaster", pm), zap.Stringer("asset", asset),
		zap.Uint64("amount", amount), addrField("destination", destination))()
	return ls.svc.WithdrawPaymaster(ctx, caller, pm, asset, amount, destination)
}

func (ls *logService) InitializeBridge(ctx context.Context, caller types.Address, validators []types.Address,
	threshold uint32) (_ *bridge.Bridge, err error) {
	defer ls.observe("InitializeBridge", &err, addrField("authority", caller), zap.Int("validators", len(validators)),
		zap.Uint32("threshold", threshold))()
	return ls.svc.InitializeBridge(ctx, caller, validators, threshold)
}

func (ls *logService) GetBridge(ctx context.Context, a types.Address) (*bridge.Bridge, error) {
	return ls.svc.GetBridge(ctx, a)
}

func (ls *logService) AddSupportedChain(ctx context.Context, caller, bridgeAddr types.Address,
	chain bridge.SupportedChain) (_ *bridge.Bridge, err error) {
	defer ls.observe("AddSupportedChain", &err, addrField("bridge", bridgeAddr), zap.Uint64("chain_id", chain.ChainID))()
	return ls.svc.AddSupportedChain(ctx, caller, bridgeAddr, chain)
}

func (ls *logService) SetChainActive(ctx context.Context, caller, bridgeAddr types.Address, chainID uint64,
	active bool) (_ *bridge.Bridge, err error) {
	defer ls.observe("SetChainActive", &err, addrField("bridge", bridgeAddr), zap.Uint64("chain_id", chainID), zap.Bool("active", active))()
	return ls.svc.SetChainActive(ctx, caller, bridgeAddr, chainID, active)
}

func (ls *logService) SetPaused(ctx context.Context, caller, bridgeAddr types.Address, paused bool) (_ *bridge.Bridge, err error) {
	defer ls.observe("SetPaused", &err, addrField("bridge", bridgeAddr), zap.Bool("paused", paused))()
	return ls.svc.SetPaused(ctx, caller, bridgeAddr, paused)
}

func (ls *logService) UpdateValidators(ctx context.Context, caller, bridgeAddr types.Address, validators []types.Address,
	threshold uint32) (_ *bridge.Bridge, err error) {
	defer ls.observe("UpdateValidators", &err, addrField("bridge", bridgeAddr), zap.Int("validators", len(validators)),
		zap.Uint32("threshold", threshold))()
	return ls.svc.UpdateValidators(ctx, caller, bridgeAddr, validators, threshold)
}

func (ls *logService) LockTokens(ctx context.Context, user, bridgeAddr types.Address, req bridge.LockRequest) (_ *bridge.LockRecord, err error) {
	defer ls.observe("LockTokens", &err, addrField("bridge", bridgeAddr), addrField("user", user), zap.Stringer("asset", req.Asset),
		zap.Uint64("amount", req.Amount), zap.Uint64("destination_chain", req.DestinationChain))()
	return ls.svc.LockTokens(ctx, user, bridgeAddr, req)
}

func (ls *logService) BurnTokens(ctx context.Context, user, bridgeAddr types.Address, req bridge.BurnRequest) (_ *bridge.BurnRecord, err error) {
	defer ls.observe("BurnTokens", &err, addrField("bridge", bridgeAddr), addrField("user", user), addrField("mint", req.Mint),
		zap.Uint64("amount", req.Amount), zap.Uint64("destination_chain", req.DestinationChain))()
	return ls.svc.BurnTokens(ctx, user, bridgeAddr, req)
}

func (ls *logService) MintTokens(ctx context.Context, bridgeAddr types.Address, req bridge.MintRequest) (_ *bridge.MintRecord, err error) {
	defer ls.observe("MintTokens", &err, addrField("bridge", bridgeAddr), zap.Uint64("lock_id", req.LockID),
		zap.Uint64("source_chain", req.SourceChain), zap.Int("signatures", len(req.Signatures)))()
	return ls.svc.MintTokens(ctx, bridgeAddr, req)
}

func (ls *logService) GetLockRecord(ctx context.Context, a types.Address) (*bridge.LockRecord, error) {
	return ls.svc.GetLockRecord(ctx, a)
}

func (ls *logService) GetMintRecord(ctx context.Context, a types.Address) (*bridge.MintRecord, error) {
	return ls.svc.GetMintRecord(ctx, a)
}

func (ls *logService) GetBurnRecord(ctx context.Context, a types.Address) (*bridge.BurnRecord, error) {
	return ls.svc.GetBurnRecord(ctx, a)
}

func (ls *logService) ListUnclaimedLocks(ctx context.Context, bridgeAddr types.Address, fromID uint64, limit int) ([]*bridge.LockRecord, error) {
	return ls.svc.ListUnclaimedLocks(ctx, bridgeAddr, fromID, limit)
}

func (ls *logService) ListUnclaimedBurns(ctx context.Context, bridgeAddr types.Address, fromID uint64, limit int) ([]*bridge.BurnRecord, error) {
	return ls.svc.ListUnclaimedBurns(ctx, bridgeAddr, fromID, limit)
}

func (ls *logService) MarkLockClaimed(ctx context.Context, caller, lockAddr types.Address, txHash common.Hash) (_ *bridge.LockRecord, err error) {
	defer ls.observe("MarkLockClaimed", &err, addrField("lock", lockAddr), zap.String("tx_hash", txHash.Hex()))()
	return ls.svc.MarkLockClaimed(ctx, caller, lockAddr, txHash)
}

func (ls *logService) MarkBurnClaimed(ctx context.Context, caller, burnAddr types.Address, txHash common.Hash) (_ *bridge.BurnRecord, err error) {
	defer ls.observe("MarkBurnClaimed", &err, addrField("burn", burnAddr), zap.String("tx_hash", txHash.Hex()))()
	return ls.svc.MarkBurnClaimed(ctx, caller, burnAddr, txHash)
}

func (ls *logService) Balance(ctx context.Context, asset types.Asset, owner types.Address) (uint64, error) {
	return ls.svc.Balance(ctx, asset, owner)
}
