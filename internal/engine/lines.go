package engine

import (
	"fmt"
	"strings"

	"github.com/hammamikhairi/hiitcoach/internal/domain"
)

// Every line the runner announces lives here so the console and the
// speech prefetch agree on the wording.

func LineReady() string {
	return "Press enter when you are ready to start!"
}

func LineStartingIn() string {
	return "Starting in..."
}

func LineSet(n int) string {
	return fmt.Sprintf("Set number %d!", n)
}

func LineExercise(name string) string {
	return strings.ToUpper(name)
}

func LineRest(seconds int) string {
	return fmt.Sprintf("Take a %d second break!", seconds)
}

func LineComplete() string {
	return "Workout complete. Great job!"
}

// LineChoice summarises the preferences before the workout is shown.
func LineChoice(p domain.Preferences) string {
	return fmt.Sprintf("You have chosen a %s minute %s workout, with extra focus on %s!", p.Length, p.Level, p.Focus)
}

// CueLines returns every distinct line Run will announce for s, in first
// use order.
func CueLines(s *domain.Session) []string {
	lines := []string{LineStartingIn()}
	for set := 1; set <= s.Plan.Sets; set++ {
		lines = append(lines, LineSet(set))
	}
	for _, name := range s.Workout {
		lines = append(lines, LineExercise(name))
	}
	lines = append(lines, LineRest(s.Plan.RestSeconds), LineComplete())

	seen := make(map[string]bool, len(lines))
	out := lines[:0]
	for _, l := range lines {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	return out
}
