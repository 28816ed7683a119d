package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/aa-bridge-middleware/internal/metrics"
	"github.com/chainsafe/aa-bridge-middleware/pkg/bridge"
	"github.com/chainsafe/aa-bridge-middleware/pkg/keying"
	"github.com/chainsafe/aa-bridge-middleware/pkg/store"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
)

func (s *ledgerService) InitializeBridge(ctx context.Context, caller types.Address, validators []types.Address,
	threshold uint32) (*bridge.Bridge, error) {
	b, err := bridge.New(caller, validators, threshold, s.now())
	if err != nil {
		return nil, err
	}
	err = s.store.RunInTx(ctx, func(ctx context.Context, tx store.Tx) error {
		return tx.CreateBridge(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *ledgerService) GetBridge(ctx context.Context, addr types.Address) (*bridge.Bridge, error) {
	rec, err := s.store.Bridge(ctx, addr)
	if err != nil {
		return nil, notFound(err, "bridge")
	}
	return rec, nil
}

func (s *ledgerService) mutateBridge(ctx context.Context, addr types.Address,
	fn func(ctx context.Context, tx store.Tx, b *bridge.Bridge) error) (*bridge.Bridge, error) {
	var out *bridge.Bridge
	err := s.store.RunInTx(ctx, func(ctx context.Context, tx store.Tx) error {
		b, err := tx.Bridge(ctx, addr)
		if err != nil {
			return err
		}
		if err := fn(ctx, tx, b); err != nil {
			return err
		}
		out = b
		return tx.UpdateBridge(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ledgerService) AddSupportedChain(ctx context.Context, caller, bridgeAddr types.Address,
	chain bridge.SupportedChain) (*bridge.Bridge, error) {
	return s.mutateBridge(ctx, bridgeAddr, func(_ context.Context, _ store.Tx, b *bridge.Bridge) error {
		return b.AddSupportedChain(caller, chain)
	})
}

func (s *ledgerService) SetChainActive(ctx context.Context, caller, bridgeAddr types.Address, chainID uint64,
	active bool) (*bridge.Bridge, error) {
	return s.mutateBridge(ctx, bridgeAddr, func(_ context.Context, _ store.Tx, b *bridge.Bridge) error {
		return b.SetChainActive(caller, chainID, active)
	})
}

func (s *ledgerService) SetPaused(ctx context.Context, caller, bridgeAddr types.Address, paused bool) (*bridge.Bridge, error) {
	return s.mutateBridge(ctx, bridgeAddr, func(_ context.Context, _ store.Tx, b *bridge.Bridge) error {
		return b.SetPaused(caller, paused)
	})
}

func (s *ledgerService) UpdateValidators(ctx context.Context, caller, bridgeAddr types.Address, validators []types.Address,
	threshold uint32) (*bridge.Bridge, error) {
	b, err := s.mutateBridge(ctx, bridgeAddr, func(_ context.Context, _ store.Tx, b *bridge.Bridge) error {
		return b.UpdateValidators(caller, validators, threshold)
	})
	if err != nil {
		return nil, err
	}
	// takes effect immediately, including for signatures collected under the old set
	s.logger.Warn("Bridge validator set replaced",
		zap.String("bridge", bridgeAddr.String()),
		zap.Int("validators", len(b.Validators)),
		zap.Uint32("threshold", b.Threshold),
	)
	return b, nil
}

func (s *ledgerService) LockTokens(ctx context.Context, user, bridgeAddr types.Address, req bridge.LockRequest) (*bridge.LockRecord, error) {
	var rec *bridge.LockRecord
	_, err := s.mutateBridge(ctx, bridgeAddr, func(ctx context.Context, tx store.Tx, b *bridge.Bridge) error {
		var err error
		rec, err = b.LockTokens(ctx, user, req, s.now(), tx)
		if err != nil {
			return err
		}
		return tx.CreateLockRecord(ctx, rec)
	})
	if err != nil {
		metrics.BridgeTransfersTotal.WithLabelValues("lock", req.Asset.ID(), "failed").Inc()
		return nil, err
	}
	metrics.BridgeTransfersTotal.WithLabelValues("lock", req.Asset.ID(), "success").Inc()
	metrics.BridgeVolume.WithLabelValues(fmt.Sprint(req.DestinationChain), req.Asset.ID()).Add(float64(req.Amount))
	return rec, nil
}

func (s *ledgerService) BurnTokens(ctx context.Context, user, bridgeAddr types.Address, req bridge.BurnRequest) (*bridge.BurnRecord, error) {
	asset := types.Token(req.Mint)
	var rec *bridge.BurnRecord
	_, err := s.mutateBridge(ctx, bridgeAddr, func(ctx context.Context, tx store.Tx, b *bridge.Bridge) error {
		var err error
		rec, err = b.BurnTokens(ctx, user, req, s.now(), tx)
		if err != nil {
			return err
		}
		return tx.CreateBurnRecord(ctx, rec)
	})
	if err != nil {
		metrics.BridgeTransfersTotal.WithLabelValues("burn", asset.ID(), "failed").Inc()
		return nil, err
	}
	metrics.BridgeTransfersTotal.WithLabelValues("burn", asset.ID(), "success").Inc()
	metrics.BridgeVolume.WithLabelValues(fmt.Sprint(req.DestinationChain), asset.ID()).Add(float64(req.Amount))
	return rec, nil
}

func (s *ledgerService) MintTokens(ctx context.Context, bridgeAddr types.Address, req bridge.MintRequest) (*bridge.MintRecord, error) {
	var rec *bridge.MintRecord
	_, err := s.mutateBridge(ctx, bridgeAddr, func(ctx context.Context, tx store.Tx, b *bridge.Bridge) error {
		existing, err := tx.MintRecord(ctx, keying.Mint(req.LockID, req.SourceChain))
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
		rec, err = b.MintTokens(ctx, req, existing, s.now(), tx)
		if err != nil {
			return err
		}
		return tx.CreateMintRecord(ctx, rec)
	})
	if err != nil {
		if errors.Is(err, bridge.ErrInsufficientValidSignatures) {
			metrics.SignatureFailures.Inc()
		}
		metrics.BridgeTransfersTotal.WithLabelValues("mint", req.Asset.ID(), "failed").Inc()
		return nil, err
	}
	metrics.BridgeTransfersTotal.WithLabelValues("mint", req.Asset.ID(), "success").Inc()
	metrics.BridgeVolume.WithLabelValues(fmt.Sprint(req.SourceChain), req.Asset.ID()).Add(float64(req.Amount))
	s.logger.Info("Inbound transfer minted",
		zap.String("bridge", bridgeAddr.String()),
		zap.Uint64("lock_id", req.LockID),
		zap.Uint64("source_chain", req.SourceChain),
		zap.String("recipient", req.Recipient.String()),
		zap.Uint64("amount", req.Amount),
	)
	return rec, nil
}

func (s *ledgerService) GetLockRecord(ctx context.Context, addr types.Address) (*bridge.LockRecord, error) {
	rec, err := s.store.LockRecord(ctx, addr)
	if err != nil {
		return nil, notFound(err, "lock record")
	}
	return rec, nil
}

func (s *ledgerService) GetMintRecord(ctx context.Context, addr types.Address) (*bridge.MintRecord, error) {
	rec, err := s.store.MintRecord(ctx, addr)
	if err != nil {
		return nil, notFound(err, "mint record")
	}
	return rec, nil
}

func (s *ledgerService) GetBurnRecord(ctx context.Context, addr types.Address) (*bridge.BurnRecord, error) {
	rec, err := s.store.BurnRecord(ctx, addr)
	if err != nil {
		return nil, notFound(err, "burn record")
	}
	return rec, nil
}

func (s *ledgerService) ListUnclaimedLocks(ctx context.Context, bridgeAddr types.Address, fromID uint64,
	limit int) ([]*bridge.LockRecord, error) {
	return s.store.ListUnclaimedLocks(ctx, bridgeAddr, fromID, limit)
}

func (s *ledgerService) ListUnclaimedBurns(ctx context.Context, bridgeAddr types.Address, fromID uint64,
	limit int) ([]*bridge.BurnRecord, error) {
	return s.store.ListUnclaimedBurns(ctx, bridgeAddr, fromID, limit)
}

// requireRelayer accepts the bridge authority and its validators.
func requireRelayer(b *bridge.Bridge, caller types.Address) error {
	if caller == b.Authority || types.ContainsAddress(b.Validators, caller) {
		return nil
	}
	return ErrNotBridgeValidator
}

func (s *ledgerService) MarkLockClaimed(ctx context.Context, caller, lockAddr types.Address, txHash common.Hash) (*bridge.LockRecord, error) {
	var rec *bridge.LockRecord
	err := s.store.RunInTx(ctx, func(ctx context.Context, tx store.Tx) error {
		var err error
		rec, err = tx.LockRecord(ctx, lockAddr)
		if err != nil {
			return err
		}
		b, err := tx.Bridge(ctx, rec.Bridge)
		if err != nil {
			return err
		}
		if err := requireRelayer(b, caller); err != nil {
			return err
		}
		if err := rec.MarkClaimed(txHash); err != nil {
			return err
		}
		return tx.UpdateLockRecord(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *ledgerService) MarkBurnClaimed(ctx context.Context, caller, burnAddr types.Address, txHash common.Hash) (*bridge.BurnRecord, error) {
	var rec *bridge.BurnRecord
	err := s.store.RunInTx(ctx, func(ctx context.Context, tx store.Tx) error {
		var err error
		rec, err = tx.BurnRecord(ctx, burnAddr)
		if err != nil {
			return err
		}
		b, err := tx.Bridge(ctx, rec.Bridge)
		if err != nil {
			return err
		}
		if err := requireRelayer(b, caller); err != nil {
			return err
		}
		if err := rec.MarkClaimed(txHash); err != nil {
			return err
		}
		return tx.UpdateBurnRecord(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}
