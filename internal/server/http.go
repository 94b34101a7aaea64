package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// HTTPService runs an *http.Server under a Lifecycle.
type HTTPService struct {
	srv             *http.Server
	shutdownTimeout time.Duration
	logger          *zap.Logger
	listener        net.Listener
}

// NewHTTPService wraps srv. Stop waits up to shutdownTimeout for in-flight
// requests before closing connections.
//
// Precondition: srv.Addr is set; logger is non-nil.
func NewHTTPService(srv *http.Server, shutdownTimeout time.Duration, logger *zap.Logger) *HTTPService {
	return &HTTPService{srv: srv, shutdownTimeout: shutdownTimeout, logger: logger}
}

// Listen binds the listener ahead of Start so callers can learn the address.
// Start binds on its own when Listen was not called.
func (h *HTTPService) Listen() (net.Addr, error) {
	lis, err := net.Listen("tcp", h.srv.Addr)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", h.srv.Addr, err)
	}
	h.listener = lis
	return lis.Addr(), nil
}

// Start serves until Stop is called.
//
// Postcondition: Returns nil after a graceful Stop, or the serve error.
func (h *HTTPService) Start() error {
	if h.listener == nil {
		if _, err := h.Listen(); err != nil {
			return err
		}
	}
	h.logger.Info("http server listening", zap.String("addr", h.listener.Addr().String()))
	if err := h.srv.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop shuts the server down gracefully, forcing it closed after the timeout.
func (h *HTTPService) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
	defer cancel()
	if err := h.srv.Shutdown(ctx); err != nil {
		h.logger.Warn("http graceful shutdown failed, closing", zap.Error(err))
		_ = h.srv.Close()
	}
}
