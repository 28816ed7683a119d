// Package grpcapi exposes mint settlement to relays over gRPC.
//
// The Settlement service is registered by hand with structpb messages so relays
// can call it without generated stubs:
//
//	bridge.v1.Settlement/SubmitMint    (Struct) -> Struct  mint record
//	bridge.v1.Settlement/GetMintRecord (Struct{address}) -> Struct
//	bridge.v1.Settlement/GetValidators (Struct{bridge}) -> Struct{validators, threshold}
package grpcapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/protobuf/types/known/structpb"

	apperrors "github.com/chainsafe/aa-bridge-middleware/pkg/app/errors"
	"github.com/chainsafe/aa-bridge-middleware/pkg/service"
)

const ServiceName = "bridge.v1.Settlement"

// SettlementServer is the server API for the Settlement service.
type SettlementServer interface {
	SubmitMint(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetMintRecord(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetValidators(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// Settlement serves mint submissions from the ledger service.
type Settlement struct {
	svc    service.Service
	logger *zap.Logger
}

// NewSettlement creates the Settlement service implementation.
func NewSettlement(svc service.Service, logger *zap.Logger) *Settlement {
	return &Settlement{svc: svc, logger: logger}
}

func (s *Settlement) SubmitMint(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	bridgeAddr, mintReq, err := MintRequestFromStruct(req)
	if err != nil {
		return nil, apperrors.ToStatus(err).Err()
	}
	rec, err := s.svc.MintTokens(ctx, bridgeAddr, mintReq)
	if err != nil {
		return nil, apperrors.ToStatus(err).Err()
	}
	out, err := MintRecordToStruct(rec)
	if err != nil {
		return nil, apperrors.ToStatus(apperrors.GeneralError(err)).Err()
	}
	return out, nil
}

func (s *Settlement) GetMintRecord(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	addr, err := fieldAddress(req, "address")
	if err != nil {
		return nil, apperrors.ToStatus(err).Err()
	}
	rec, err := s.svc.GetMintRecord(ctx, addr)
	if err != nil {
		return nil, apperrors.ToStatus(err).Err()
	}
	out, err := MintRecordToStruct(rec)
	if err != nil {
		return nil, apperrors.ToStatus(apperrors.GeneralError(err)).Err()
	}
	return out, nil
}

func (s *Settlement) GetValidators(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	addr, err := fieldAddress(req, "bridge")
	if err != nil {
		return nil, apperrors.ToStatus(err).Err()
	}
	b, err := s.svc.GetBridge(ctx, addr)
	if err != nil {
		return nil, apperrors.ToStatus(err).Err()
	}
	out, err := ValidatorSetToStruct(b.Address, b.Validators, b.Threshold)
	if err != nil {
		return nil, apperrors.ToStatus(apperrors.GeneralError(err)).Err()
	}
	return out, nil
}

func unaryHandler(method string, call func(SettlementServer, context.Context, *structpb.Struct) (*structpb.Struct, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(SettlementServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/" + method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(SettlementServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var settlementDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SettlementServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SubmitMint", Handler: unaryHandler("SubmitMint", SettlementServer.SubmitMint)},
		{MethodName: "GetMintRecord", Handler: unaryHandler("GetMintRecord", SettlementServer.GetMintRecord)},
		{MethodName: "GetValidators", Handler: unaryHandler("GetValidators", SettlementServer.GetValidators)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "bridge/v1/settlement.proto",
}

// RegisterSettlementServer registers srv on s.
func RegisterSettlementServer(s grpc.ServiceRegistrar, srv SettlementServer) {
	s.RegisterService(&settlementDesc, srv)
}

// loggingInterceptor logs every unary call with its duration and status.
func loggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		fields := []zap.Field{zap.String("method", info.FullMethod), zap.Duration("duration", time.Since(start))}
		if err != nil {
			logger.Warn("gRPC call failed", append(fields, zap.Error(err))...)
		} else {
			logger.Debug("gRPC call completed", fields...)
		}
		return resp, err
	}
}

// NewServer builds a gRPC server carrying the Settlement and health services.
func NewServer(svc service.Service, logger *zap.Logger) (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(loggingInterceptor(logger)))
	RegisterSettlementServer(srv, NewSettlement(svc, logger))

	hs := health.NewServer()
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)
	return srv, hs
}

// ServeAndWait serves srv on addr until ctx is canceled, then stops gracefully,
// forcing a stop after shutdownTimeout.
func ServeAndWait(ctx context.Context, logger *zap.Logger, srv *grpc.Server, hs *health.Server, addr string,
	shutdownTimeout time.Duration) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("gRPC server listening", zap.String("address", lis.Addr().String()))
		if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
	}

	if hs != nil {
		hs.Shutdown()
	}
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(shutdownTimeout):
		logger.Warn("gRPC graceful stop timed out, forcing")
		srv.Stop()
	}

	if runErr != nil {
		return fmt.Errorf("grpc server failed: %w", runErr)
	}
	logger.Info("gRPC server stopped")
	return nil
}
