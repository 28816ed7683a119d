package relayer

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/chainsafe/aa-bridge-middleware/internal/metrics"
	"github.com/chainsafe/aa-bridge-middleware/pkg/bridge"
	"github.com/chainsafe/aa-bridge-middleware/pkg/keying"
	"github.com/chainsafe/aa-bridge-middleware/pkg/store"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
)

// Transfer is an unclaimed outbound record waiting to be settled on the
// destination bridge.
type Transfer struct {
	ID        uint64
	Record    types.Address
	Asset     types.Asset
	Amount    uint64
	Recipient types.Address
}

// Source yields unclaimed records of one kind in id order.
type Source interface {
	// Direction labels metrics and logs.
	Direction() string
	// Pending returns up to limit unclaimed records with id >= fromID.
	Pending(ctx context.Context, fromID uint64, limit int) ([]*Transfer, error)
	// MarkClaimed records the settling mint against the source record.
	MarkClaimed(ctx context.Context, t *Transfer, txHash common.Hash) error
}

// Signer produces signatures index aligned with validators. Positions it has
// no key for are left zero.
type Signer interface {
	Sign(validators []types.Address, msg common.Hash) ([]types.Signature, int)
}

// Destination settles mints on the destination bridge.
type Destination interface {
	// Validators returns the current validator list and threshold.
	Validators(ctx context.Context) ([]types.Address, uint32, error)
	// MintRecord returns the mint record at addr, or nil when none exists.
	MintRecord(ctx context.Context, addr types.Address) (*bridge.MintRecord, error)
	SubmitMint(ctx context.Context, req bridge.MintRequest) (*bridge.MintRecord, error)
}

// ProcessorConfig tunes a Processor.
type ProcessorConfig struct {
	SourceChainID uint64
	BatchSize     int
	MaxRetries    int
	RetryDelay    time.Duration
}

// Processor relays records from a Source to a Destination.
type Processor struct {
	source      Source
	signer      Signer
	destination Destination
	cfg         ProcessorConfig
	logger      *zap.Logger

	offset atomic.Uint64
}

// NewProcessor creates a new transfer processor starting at startID.
func NewProcessor(source Source, signer Signer, destination Destination, cfg ProcessorConfig,
	startID uint64, logger *zap.Logger) *Processor {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	p := &Processor{
		source:      source,
		signer:      signer,
		destination: destination,
		cfg:         cfg,
		logger:      logger.With(zap.String("direction", source.Direction())),
	}
	p.offset.Store(startID)
	return p
}

// Offset returns the lowest record id not yet relayed.
func (p *Processor) Offset() uint64 {
	return p.offset.Load()
}

// Poll relays one batch. Records are handled in id order and the batch stops
// at the first record that still fails after retries, so the offset never
// skips an unsettled record.
func (p *Processor) Poll(ctx context.Context) (int, error) {
	direction := p.source.Direction()

	pending, err := p.source.Pending(ctx, p.offset.Load(), p.cfg.BatchSize)
	if err != nil {
		metrics.ErrorsTotal.WithLabelValues("relayer", "source").Inc()
		return 0, fmt.Errorf("fetch pending %s: %w", direction, err)
	}
	metrics.RelayPending.WithLabelValues(direction).Set(float64(len(pending)))

	processed := 0
	for _, t := range pending {
		start := time.Now()
		err := p.processWithRetry(ctx, t)
		metrics.RelayDuration.WithLabelValues(direction).Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.RelayProcessed.WithLabelValues(direction, "failed").Inc()
			return processed, fmt.Errorf("relay %s %d: %w", direction, t.ID, err)
		}
		metrics.RelayProcessed.WithLabelValues(direction, "completed").Inc()
		processed++
		p.offset.Store(t.ID + 1)
		metrics.RelayLastProcessedID.WithLabelValues(direction).Set(float64(t.ID))
	}
	return processed, nil
}

func (p *Processor) processWithRetry(ctx context.Context, t *Transfer) error {
	var err error
	for attempt := 0; attempt <= p.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			p.logger.Warn("Retrying transfer",
				zap.Uint64("id", t.ID),
				zap.Int("attempt", attempt),
				zap.Error(err))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(p.cfg.RetryDelay):
			}
		}
		if err = p.process(ctx, t); err == nil || !retryable(err) {
			return err
		}
	}
	return err
}

// process settles one transfer. An existing mint for the same (id, chain)
// only marks the source record claimed.
func (p *Processor) process(ctx context.Context, t *Transfer) error {
	mintAddr := keying.Mint(t.ID, p.cfg.SourceChainID)

	existing, err := p.destination.MintRecord(ctx, mintAddr)
	if err != nil {
		return fmt.Errorf("lookup mint record: %w", err)
	}
	if existing != nil && existing.IsMinted {
		p.logger.Debug("Transfer already minted", zap.Uint64("id", t.ID))
		return p.source.MarkClaimed(ctx, t, common.Hash(mintAddr))
	}

	validators, threshold, err := p.destination.Validators(ctx)
	if err != nil {
		return fmt.Errorf("load validators: %w", err)
	}

	req := bridge.MintRequest{
		LockID:       t.ID,
		SourceChain:  p.cfg.SourceChainID,
		SourceTxHash: common.Hash(t.Record),
		Recipient:    t.Recipient,
		Asset:        t.Asset,
		Amount:       t.Amount,
	}
	sigs, signed := p.signer.Sign(validators, req.Message())
	if signed < int(threshold) {
		return fmt.Errorf("%w: hold %d of %d required keys", errNoQuorum, signed, threshold)
	}
	req.Signatures = sigs

	p.logger.Info("Submitting mint",
		zap.Uint64("id", t.ID),
		zap.String("asset", t.Asset.String()),
		zap.Uint64("amount", t.Amount),
		zap.String("recipient", t.Recipient.String()))

	record, err := p.destination.SubmitMint(ctx, req)
	switch {
	case err == nil:
		mintAddr = record.Address
	case isAlreadyMinted(err):
		p.logger.Info("Mint settled concurrently", zap.Uint64("id", t.ID))
	default:
		return fmt.Errorf("submit mint: %w", err)
	}

	if err := p.source.MarkClaimed(ctx, t, common.Hash(mintAddr)); err != nil && !errors.Is(err, bridge.ErrAlreadyClaimed) {
		return fmt.Errorf("mark claimed: %w", err)
	}
	p.logger.Info("Transfer relayed", zap.Uint64("id", t.ID), zap.String("mint", mintAddr.String()))
	return nil
}

var errNoQuorum = errors.New("relayer cannot reach signing threshold")

// retryable reports whether err may succeed on a later attempt. Validation
// failures are permanent until an operator intervenes.
func retryable(err error) bool {
	if errors.Is(err, errNoQuorum) {
		return false
	}
	switch status.Code(err) {
	case codes.InvalidArgument, codes.PermissionDenied, codes.FailedPrecondition:
		return false
	}
	return true
}

func isAlreadyMinted(err error) bool {
	return errors.Is(err, bridge.ErrAlreadyMinted) || status.Code(err) == codes.AlreadyExists
}

func isNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound) || status.Code(err) == codes.NotFound
}
