package instance

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// waitForFile returns once path exists. Between checks it sleeps for the
// next duration of schedule; when the schedule is exhausted it fails with
// ErrConfigNeverAppeared.
func waitForFile(ctx context.Context, path string, schedule []time.Duration) error {
	for attempt := 0; ; attempt++ {
		_, err := os.Stat(path)
		if err == nil {
			return nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}

		if attempt >= len(schedule) {
			return fmt.Errorf("%w after %d attempts", ErrConfigNeverAppeared, attempt+1)
		}

		timer := time.NewTimer(schedule[attempt])
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
