package server

import (
	"fmt"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthService serves the standard gRPC health protocol. The overall
// service ("") starts NOT_SERVING until MarkServing is called.
type HealthService struct {
	addr     string
	logger   *zap.Logger
	grpcSrv  *grpc.Server
	health   *health.Server
	listener net.Listener
}

// NewHealthService creates a HealthService bound to addr on Start.
//
// Precondition: logger must be non-nil.
func NewHealthService(addr string, logger *zap.Logger) *HealthService {
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	srv := grpc.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	return &HealthService{addr: addr, logger: logger, grpcSrv: srv, health: hs}
}

// MarkServing reports the service as ready.
func (h *HealthService) MarkServing() {
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
}

// Listen binds the listener ahead of Start.
func (h *HealthService) Listen() (net.Addr, error) {
	lis, err := net.Listen("tcp", h.addr)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", h.addr, err)
	}
	h.listener = lis
	return lis.Addr(), nil
}

// Start serves until Stop is called.
func (h *HealthService) Start() error {
	if h.listener == nil {
		if _, err := h.Listen(); err != nil {
			return err
		}
	}
	h.logger.Info("grpc health listening", zap.String("addr", h.listener.Addr().String()))
	return h.grpcSrv.Serve(h.listener)
}

// Stop flips every status to NOT_SERVING and drains the server.
func (h *HealthService) Stop() {
	h.health.Shutdown()
	h.grpcSrv.GracefulStop()
}
