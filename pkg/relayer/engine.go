// Package relayer settles outbound lock and burn records as mints on the
// destination bridge.
package relayer

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// EngineConfig holds the polling cadence of the engine.
type EngineConfig struct {
	PollingInterval time.Duration
}

// Engine runs one Processor per direction on a fixed polling interval.
type Engine struct {
	cfg        EngineConfig
	processors []*Processor
	logger     *zap.Logger

	ready  atomic.Bool
	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewEngine creates a new relayer engine
func NewEngine(cfg EngineConfig, logger *zap.Logger, processors ...*Processor) *Engine {
	if cfg.PollingInterval <= 0 {
		cfg.PollingInterval = 10 * time.Second
	}
	return &Engine{
		cfg:        cfg,
		processors: processors,
		logger:     logger,
	}
}

// Start launches the processors. They run until ctx is canceled or Stop is called.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.logger.Info("Starting relayer engine",
		zap.Int("processors", len(e.processors)),
		zap.Duration("polling_interval", e.cfg.PollingInterval))

	ctx, e.cancel = context.WithCancel(ctx)
	for _, p := range e.processors {
		e.wg.Add(1)
		go e.run(ctx, p)
	}
	e.ready.Store(true)

	e.logger.Info("Relayer engine started")
	return nil
}

// Stop stops the relayer engine and waits for in-flight batches.
func (e *Engine) Stop() {
	e.mu.Lock()
	cancel := e.cancel
	e.mu.Unlock()
	if cancel == nil {
		return
	}

	e.logger.Info("Stopping relayer engine")
	e.ready.Store(false)
	cancel()
	e.wg.Wait()
	e.logger.Info("Relayer engine stopped")
}

// IsReady reports whether the processors are running.
func (e *Engine) IsReady() bool {
	return e.ready.Load()
}

// Offsets returns the next record id of each direction.
func (e *Engine) Offsets() map[string]uint64 {
	out := make(map[string]uint64, len(e.processors))
	for _, p := range e.processors {
		out[p.source.Direction()] = p.Offset()
	}
	return out
}

func (e *Engine) run(ctx context.Context, p *Processor) {
	defer e.wg.Done()

	ticker := time.NewTicker(e.cfg.PollingInterval)
	defer ticker.Stop()

	for {
		if n, err := p.Poll(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			p.logger.Error("Relay batch failed", zap.Int("relayed", n), zap.Error(err))
		} else if n > 0 {
			p.logger.Info("Relay batch completed", zap.Int("relayed", n), zap.Uint64("offset", p.Offset()))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
