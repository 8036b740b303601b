package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-sync-hub/internal/config"
	"github.com/MKhiriev/go-sync-hub/internal/handler"
	"github.com/MKhiriev/go-sync-hub/internal/logger"
)

type server struct {
	httpServer      *httpServer
	hooks           []Hook
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

// NewServer creates the HTTP server. hooks run after the listener has been
// drained, in the given order.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, hooks ...Hook) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNothingToServe
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		hooks:           hooks,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

// Shutdown drains the HTTP server and runs every hook, all within
// shutdownTimeout. A failing hook does not stop the following ones.
func (s *server) Shutdown() {
	ctx := context.Background()
	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()
	}

	s.httpServer.Shutdown(ctx)

	for _, hook := range s.hooks {
		start := time.Now()
		if err := hook.Run(ctx); err != nil {
			s.logger.Error().Err(err).
				Str("func", "*server.Shutdown").
				Str("hook", hook.Name).
				Msg("shutdown hook failed")
			continue
		}
		s.logger.Info().Str("hook", hook.Name).Dur("duration", time.Since(start)).Msg("shutdown hook done")
	}
}

// run serves until ctx is done or the listener fails, then shuts down.
func (s *server) run(ctx context.Context) {
	serveErr := make(chan error, 1)

	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case err := <-serveErr:
		if err != nil {
			s.logger.Error().Err(err).Str("func", "*server.run").Msg("HTTP server stopped")
		}
	}

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")
}
