// Package relayer implements app.Runner for the relayer process.
package relayer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/chainsafe/aa-bridge-middleware/pkg/app/grpcapi"
	"github.com/chainsafe/aa-bridge-middleware/pkg/app/httpserver"
	"github.com/chainsafe/aa-bridge-middleware/pkg/config"
	"github.com/chainsafe/aa-bridge-middleware/pkg/keys"
	"github.com/chainsafe/aa-bridge-middleware/pkg/pgutil"
	"github.com/chainsafe/aa-bridge-middleware/pkg/relayer"
	"github.com/chainsafe/aa-bridge-middleware/pkg/service"
	"github.com/chainsafe/aa-bridge-middleware/pkg/store"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
)

const (
	defaultHTTPMiddlewareTimeout = 60 * time.Second
	defaultHTTPReadTimeout       = 15 * time.Second
	defaultHTTPWriteTimeout      = 15 * time.Second
	defaultHTTPIdleTimeout       = 60 * time.Second
)

// Server holds configuration for the relayer process.
type Server struct {
	cfg *config.RelayerConfig
}

// NewServer initializes a new relayer Server.
func NewServer(cfg *config.RelayerConfig) *Server {
	return &Server{cfg: cfg}
}

// Run starts the relayer engine and the operational HTTP server.
// It blocks until an OS shutdown signal is received or a fatal server error occurs.
func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("nil config")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting bridge relayer",
		zap.String("source_bridge", cfg.Relay.SourceBridge),
		zap.String("destination_bridge", cfg.Relay.DestinationBridge),
		zap.Uint64("source_chain_id", cfg.Relay.SourceChainID))

	sourceBridge, err := types.HexToAddress(cfg.Relay.SourceBridge)
	if err != nil {
		return fmt.Errorf("invalid source bridge: %w", err)
	}
	destBridge, err := types.HexToAddress(cfg.Relay.DestinationBridge)
	if err != nil {
		return fmt.Errorf("invalid destination bridge: %w", err)
	}

	keyring, err := s.loadKeyring()
	if err != nil {
		return err
	}
	caller := keyring.Addresses()[0]
	logger.Info("Validator keys loaded", zap.Int("count", keyring.Len()), zap.String("caller", caller.String()))

	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	logger.Info("Database connection established")

	// The authority only scopes the entry point, which the relayer never uses.
	ledgerSvc := service.NewLog(service.NewService(store.NewStore(db), caller, logger), logger)

	var settle relayer.Settlement
	if cfg.Relay.SettlementAddr != "" {
		conn, err := grpc.NewClient(cfg.Relay.SettlementAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fmt.Errorf("dial settlement service: %w", err)
		}
		defer func() { _ = conn.Close() }()
		settle = grpcapi.NewClient(conn)
		logger.Info("Submitting mints over gRPC", zap.String("target", cfg.Relay.SettlementAddr))
	}

	engine := s.newEngine(ledgerSvc, settle, keyring, caller, sourceBridge, destBridge, logger)
	if err := engine.Start(ctx); err != nil {
		return fmt.Errorf("start relayer engine: %w", err)
	}
	defer engine.Stop()

	httpServer := &http.Server{
		Addr:         cfg.Monitoring.Addr(),
		Handler:      s.newRouter(engine, logger),
		ReadTimeout:  defaultHTTPReadTimeout,
		WriteTimeout: defaultHTTPWriteTimeout,
		IdleTimeout:  defaultHTTPIdleTimeout,
	}
	return httpserver.ServeAndWait(ctx, logger, httpServer, cfg.Shutdown.Timeout)
}

func (s *Server) loadKeyring() (*keys.Keyring, error) {
	env := s.cfg.Relay.MasterKeyEnv
	encoded := os.Getenv(env)
	if encoded == "" {
		return nil, fmt.Errorf("relayer master key not set: env=%s (hint: keygen -master)", env)
	}
	masterKey, err := keys.MasterKeyFromBase64(encoded)
	if err != nil {
		return nil, fmt.Errorf("invalid relayer master key: %w", err)
	}
	kr, err := keys.LoadKeyring(s.cfg.Relay.ValidatorKeys, masterKey)
	if err != nil {
		return nil, fmt.Errorf("load validator keys: %w", err)
	}
	return kr, nil
}

func (s *Server) newEngine(ledgerSvc relayer.Ledger, settle relayer.Settlement, kr *keys.Keyring,
	caller, sourceBridge, destBridge types.Address, logger *zap.Logger) *relayer.Engine {
	relay := s.cfg.Relay
	pcfg := relayer.ProcessorConfig{
		SourceChainID: relay.SourceChainID,
		BatchSize:     relay.BatchSize,
		MaxRetries:    relay.MaxRetries,
		RetryDelay:    relay.RetryDelay,
	}
	signer := relayer.NewKeyringSigner(kr)
	dest := relayer.NewBridgeDestination(ledgerSvc, settle, destBridge)

	processors := []*relayer.Processor{
		relayer.NewProcessor(relayer.NewLockSource(ledgerSvc, sourceBridge, caller), signer, dest, pcfg, relay.StartID, logger),
	}
	if relay.RelayBurns {
		processors = append(processors,
			relayer.NewProcessor(relayer.NewBurnSource(ledgerSvc, sourceBridge, caller), signer, dest, pcfg, relay.StartID, logger))
	}
	return relayer.NewEngine(relayer.EngineConfig{PollingInterval: relay.PollingInterval}, logger, processors...)
}

func (s *Server) newRouter(engine *relayer.Engine, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(defaultHTTPMiddlewareTimeout))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Get("/ready", func(w http.ResponseWriter, _ *http.Request) {
		if !engine.IsReady() {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("NOT_READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	})

	if s.cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
		logger.Info("Metrics enabled", zap.String("path", "/metrics"))
	}

	r.Get("/api/v1/status", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"ready":   engine.IsReady(),
			"offsets": engine.Offsets(),
		}); err != nil {
			logger.Error("Failed to encode response", zap.Error(err))
		}
	})

	return r
}
