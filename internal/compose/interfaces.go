package compose

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/compose_executor_mock.go -package=mock

// Executor starts and stops the containers described by the manifest in dir.
type Executor interface {
	// Up starts the containers detached.
	Up(ctx context.Context, dir string) error
	// Down stops and removes the containers.
	Down(ctx context.Context, dir string) error
}
