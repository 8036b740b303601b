// Package workers runs background jobs next to the HTTP server.
//
// A Worker does one job and returns; Workers starts them all in the
// background and lets shutdown wait for them.
package workers

import "context"

// Worker is a background job. Run blocks until the job is done or ctx is
// cancelled.
type Worker interface {
	Name() string
	Run(ctx context.Context) error
}

// InstanceBooter brings every registered user's instance up to date.
type InstanceBooter interface {
	StartAllInstances(ctx context.Context) error
}
