package display

import (
	"strings"

	"github.com/hammamikhairi/hiitcoach/internal/domain"
)

// WorkoutHeader introduces the exercise list.
const WorkoutHeader = "Here's your workout for today..."

// RenderWorkout returns the header followed by every exercise upper-cased,
// one per line. It has no side effects.
func RenderWorkout(set domain.WorkoutSet) []string {
	lines := make([]string, 0, len(set)+1)
	lines = append(lines, WorkoutHeader)
	for _, name := range set {
		lines = append(lines, strings.ToUpper(name))
	}
	return lines
}
