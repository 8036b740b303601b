package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-sync-hub/internal/logger"
	"github.com/MKhiriev/go-sync-hub/internal/service"
)

type Workers struct {
	workers []Worker
	running sync.WaitGroup
	logger  *logger.Logger
}

// NewWorkers returns the server's background jobs: currently the boot sweep
// over all registered users.
func NewWorkers(services *service.Services, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{NewBootSweep(services.UserRegistry, logger)},
		logger:  logger,
	}
}

// Run starts every worker in its own goroutine and returns immediately.
// Failures are logged, never fatal.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.running.Go(func() {
			w.logger.Info().Str("worker", worker.Name()).Msg("worker started")
			if err := worker.Run(ctx); err != nil {
				w.logger.Error().Err(err).
					Str("func", "*Workers.Run").
					Str("worker", worker.Name()).
					Msg("worker finished with error")
				return
			}
			w.logger.Info().Str("worker", worker.Name()).Msg("worker finished")
		})
	}
}

// Wait blocks until all workers returned or ctx is done.
func (w *Workers) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		w.running.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
