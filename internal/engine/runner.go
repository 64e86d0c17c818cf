package engine

import (
	"context"
	"fmt"

	"github.com/hammamikhairi/hiitcoach/internal/domain"
	"github.com/hammamikhairi/hiitcoach/internal/logger"
	"github.com/hammamikhairi/hiitcoach/internal/timer"
)

// RunnerOption configures the runner.
type RunnerOption func(*Runner)

// WithObserver registers fn to be called on every phase change.
func WithObserver(fn func(*domain.Session)) RunnerOption {
	return func(r *Runner) {
		r.observers = append(r.observers, fn)
	}
}

// WithRunnerClock sets the clock used for session timestamps.
func WithRunnerClock(c domain.Clock) RunnerOption {
	return func(r *Runner) {
		r.clock = c
	}
}

// Runner walks a session through its phases:
//
//	awaiting-start -> intro -> (active -> resting) x exercises x sets -> complete
//
// Every step blocks: the start waits for the user, every interval waits
// for its countdown.
type Runner struct {
	confirm   domain.Confirmer
	notifier  domain.Notifier
	countdown domain.Countdown
	clock     domain.Clock
	log       *logger.Logger
	observers []func(*domain.Session)
}

// NewRunner creates a runner with the given dependencies and options.
func NewRunner(confirm domain.Confirmer, notifier domain.Notifier, countdown domain.Countdown, log *logger.Logger, opts ...RunnerOption) *Runner {
	r := &Runner{
		confirm:   confirm,
		notifier:  notifier,
		countdown: countdown,
		clock:     timer.RealClock{},
		log:       log,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run performs the whole session. It returns early only when the user's
// input closes or ctx is cancelled.
func (r *Runner) Run(ctx context.Context, s *domain.Session) error {
	if s.Phase == domain.PhaseComplete {
		return domain.ErrSessionComplete
	}

	r.enter(s, domain.PhaseAwaitingStart)
	if err := r.confirm.Confirm(ctx, LineReady()); err != nil {
		return fmt.Errorf("waiting for start: %w", err)
	}
	s.StartedAt = r.clock.Now()

	r.enter(s, domain.PhaseIntro)
	r.say(ctx, LineStartingIn(), false)
	if err := r.count(ctx, s, domain.IntroSeconds); err != nil {
		return err
	}

	for set := 1; set <= s.Plan.Sets; set++ {
		s.Set = set
		r.say(ctx, LineSet(set), false)

		for i, name := range s.Workout {
			s.ExerciseIndex = i

			r.enter(s, domain.PhaseActive)
			r.say(ctx, LineExercise(name), true)
			if err := r.count(ctx, s, s.Plan.ActiveSeconds); err != nil {
				return err
			}

			r.enter(s, domain.PhaseResting)
			r.say(ctx, LineRest(s.Plan.RestSeconds), false)
			if err := r.count(ctx, s, s.Plan.RestSeconds); err != nil {
				return err
			}
		}
		r.log.Debug("session %s: set %d/%d done", s.ID, set, s.Plan.Sets)
	}

	s.CompletedAt = r.clock.Now()
	r.enter(s, domain.PhaseComplete)
	r.say(ctx, LineComplete(), false)

	r.log.Info("session %s completed: %d countdown seconds", s.ID, s.CountedSeconds)
	return nil
}

func (r *Runner) enter(s *domain.Session, phase domain.Phase) {
	s.Phase = phase
	r.log.Debug("session %s: %s (set=%d exercise=%q)", s.ID, phase, s.Set, s.CurrentExercise())
	for _, fn := range r.observers {
		fn(s)
	}
}

func (r *Runner) count(ctx context.Context, s *domain.Session, seconds int) error {
	if err := r.countdown.Run(ctx, seconds); err != nil {
		return fmt.Errorf("%s countdown: %w", s.Phase, err)
	}
	s.CountedSeconds += seconds
	return nil
}

// say delivers a cue. A failing notifier never stops the workout.
func (r *Runner) say(ctx context.Context, msg string, urgent bool) {
	var err error
	if urgent {
		err = r.notifier.NotifyUrgent(ctx, msg)
	} else {
		err = r.notifier.Notify(ctx, msg)
	}
	if err != nil {
		r.log.Warn("delivering cue %q: %v", msg, err)
	}
}
