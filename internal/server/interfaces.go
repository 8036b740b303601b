package server

import "context"

// Server defines the lifecycle of the application server.
//
// RunServer blocks until a stop signal arrives or the listener fails.
// Shutdown drains connections and then runs the shutdown hooks.
type Server interface {
	RunServer()
	Shutdown()
}

// Hook is a named step of the shutdown sequence.
type Hook struct {
	Name string
	Run  func(ctx context.Context) error
}

// WaitHook adapts a blocking wait function into a Hook that gives up when
// the shutdown deadline is reached.
func WaitHook(name string, wait func()) Hook {
	return Hook{
		Name: name,
		Run: func(ctx context.Context) error {
			done := make(chan struct{})
			go func() {
				wait()
				close(done)
			}()

			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	}
}
