package domain

import "time"

// Session is one run of a workout, from the "press enter" prompt to the
// last rest of the last set. It lives in memory only.
type Session struct {
	ID             string
	Preferences    Preferences
	Workout        WorkoutSet
	Plan           SessionPlan
	Phase          Phase
	Set            int // 1-based, 0 before the first set
	ExerciseIndex  int // index into Workout for the current phase
	CountedSeconds int // countdown seconds executed so far
	StartedAt      time.Time
	CompletedAt    time.Time
}

// CurrentExercise returns the exercise for the current phase, or "" outside
// of a set.
func (s *Session) CurrentExercise() string {
	if s.Set == 0 || s.ExerciseIndex < 0 || s.ExerciseIndex >= len(s.Workout) {
		return ""
	}
	return s.Workout[s.ExerciseIndex]
}

// Phase tracks where the session runner is.
type Phase int

const (
	PhaseAwaitingStart Phase = iota
	PhaseIntro
	PhaseActive
	PhaseResting
	PhaseComplete
)

// String returns a human-readable phase.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingStart:
		return "awaiting-start"
	case PhaseIntro:
		return "intro"
	case PhaseActive:
		return "active"
	case PhaseResting:
		return "resting"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}
