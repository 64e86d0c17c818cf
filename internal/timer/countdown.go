// Package timer implements the blocking MM:SS countdown used for the intro,
// active and rest intervals.
package timer

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hammamikhairi/hiitcoach/internal/domain"
	"github.com/hammamikhairi/hiitcoach/internal/logger"
)

// Compile-time interface check.
var _ domain.Countdown = (*Countdown)(nil)

// Option configures the countdown.
type Option func(*Countdown)

// WithClock replaces the wall clock, e.g. with a fake in tests.
func WithClock(c domain.Clock) Option {
	return func(cd *Countdown) {
		cd.clock = c
	}
}

// WithFinalSeconds calls hook with the remaining seconds on each of the
// last n ticks, before the wait. Used for the closing beeps.
func WithFinalSeconds(n int, hook func(remaining int)) Option {
	return func(cd *Countdown) {
		cd.finalSeconds = n
		cd.finalHook = hook
	}
}

// Countdown renders the remaining time on a single console line,
// overwriting it every tick.
type Countdown struct {
	out          io.Writer
	clock        domain.Clock
	log          *logger.Logger
	tick         time.Duration
	finalSeconds int
	finalHook    func(remaining int)
}

// New creates a countdown writing to out.
func New(out io.Writer, log *logger.Logger, opts ...Option) *Countdown {
	cd := &Countdown{
		out:   out,
		clock: RealClock{},
		log:   log,
		tick:  time.Second,
	}
	for _, opt := range opts {
		opt(cd)
	}
	return cd
}

// Run blocks for seconds ticks. Each tick writes "\rMM:SS" and waits; the
// line is finished with a newline once the count reaches zero.
func (cd *Countdown) Run(ctx context.Context, seconds int) error {
	cd.log.Debug("countdown: %ds", seconds)
	started := cd.clock.Now()

	for remaining := seconds; remaining > 0; remaining-- {
		fmt.Fprintf(cd.out, "\r%s", FormatClock(remaining))

		if cd.finalHook != nil && remaining <= cd.finalSeconds {
			cd.finalHook(remaining)
		}

		if err := cd.clock.Sleep(ctx, cd.tick); err != nil {
			fmt.Fprintln(cd.out)
			return err
		}
	}
	fmt.Fprintln(cd.out)

	cd.log.Debug("countdown: %ds done in %s", seconds, cd.clock.Now().Sub(started).Round(time.Millisecond))
	return nil
}

// FormatClock renders whole seconds as zero-padded MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
