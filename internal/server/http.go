package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-sync-hub/internal/config"
	"github.com/MKhiriev/go-sync-hub/internal/logger"
)

const readHeaderTimeout = 10 * time.Second

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

// newHTTPServer sets no write timeout: proxied sync-engine and file-browser
// responses may stream for a long time.
func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}
}

// RunServer returns nil once Shutdown was called.
func (h *httpServer) RunServer() error {
	h.logger.Info().Str("address", h.server.Addr).Msg("HTTP server listening")
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server ListenAndServe: %w", err)
	}
	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) {
	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
	}
}
