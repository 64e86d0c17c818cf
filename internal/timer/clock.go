package timer

import (
	"context"
	"time"

	"github.com/hammamikhairi/hiitcoach/internal/domain"
)

// Compile-time interface check.
var _ domain.Clock = RealClock{}

// RealClock waits on the wall clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time { return time.Now() }

// Sleep blocks for d or until ctx is done.
func (RealClock) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
