// Package api implements app.Runner for the API server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/chainsafe/aa-bridge-middleware/pkg/app/grpcapi"
	apphttp "github.com/chainsafe/aa-bridge-middleware/pkg/app/http"
	"github.com/chainsafe/aa-bridge-middleware/pkg/auth"
	"github.com/chainsafe/aa-bridge-middleware/pkg/config"
	"github.com/chainsafe/aa-bridge-middleware/pkg/pgutil"
	"github.com/chainsafe/aa-bridge-middleware/pkg/service"
	"github.com/chainsafe/aa-bridge-middleware/pkg/store"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
)

const defaultRequestTimeout = 60 * time.Second

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.APIServerConfig
}

// NewServer initializes new api server.
func NewServer(cfg *config.APIServerConfig) *Server {
	return &Server{cfg: cfg}
}

// Run serves the HTTP API and, when enabled, the gRPC settlement service until
// an OS shutdown signal is received or either server fails.
func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	authority, err := types.HexToAddress(cfg.Ledger.Authority)
	if err != nil {
		return fmt.Errorf("invalid ledger authority: %w", err)
	}

	logger.Info("Starting API server",
		zap.String("address", cfg.Server.Addr()),
		zap.String("authority", authority.String()),
	)

	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	logger.Info("Connected to database",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Database),
	)

	svc := service.NewLog(
		service.NewService(store.NewStore(db), authority, logger,
			service.WithMaxBatchSize(cfg.Ledger.MaxBatchSize)),
		logger,
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 2)
	running := 1
	go func() {
		errCh <- apphttp.ServeAndWait(ctx, s.setupRouter(db, svc, logger), logger, &cfg.Server, cfg.Shutdown.Timeout)
	}()

	if cfg.GRPC.Enabled {
		running++
		grpcSrv, health := grpcapi.NewServer(svc, logger)
		go func() {
			errCh <- grpcapi.ServeAndWait(ctx, logger, grpcSrv, health, cfg.GRPC.Addr(), cfg.Shutdown.Timeout)
		}()
	}

	// The first server to return stops the other.
	var firstErr error
	for ; running > 0; running-- {
		if err := <-errCh; err != nil && firstErr == nil {
			firstErr = err
		}
		cancel()
	}
	return firstErr
}

func (s *Server) setupRouter(db *bun.DB, svc service.Service, logger *zap.Logger) chi.Router {
	cfg := s.cfg
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(defaultRequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("NOT_READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	})

	if cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
		logger.Info("Metrics enabled", zap.String("path", "/metrics"))
	}

	service.RegisterRoutes(r, svc, service.RouteConfig{
		Tokens:         auth.NewJWTValidator([]byte(cfg.Auth.JWTSecret), cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL),
		LoginWindow:    cfg.Auth.ChallengeTTL,
		AllowSignature: cfg.Auth.AllowSignature,
		NativeDecimals: cfg.Ledger.NativeDecimals,
	}, logger)

	return r
}
