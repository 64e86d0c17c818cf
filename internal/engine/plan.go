package engine

import "github.com/hammamikhairi/hiitcoach/internal/domain"

// NumberSets returns how many times the workout is repeated: 3 for a
// 15 minute session, 6 for 30.
func NumberSets(length domain.Length) int {
	if length == domain.LengthShort {
		return 3
	}
	return 6
}

// WorkoutTimes returns the active and rest seconds for level. Each pair
// adds up to one minute.
func WorkoutTimes(level domain.Level) (active, rest int) {
	switch level {
	case domain.LevelBeginner:
		return 30, 30
	case domain.LevelIntermediate:
		return 40, 20
	default:
		return 45, 15
	}
}

// PlanFor derives the session timing from prefs.
func PlanFor(prefs domain.Preferences) domain.SessionPlan {
	active, rest := WorkoutTimes(prefs.Level)
	return domain.SessionPlan{
		Sets:          NumberSets(prefs.Length),
		ActiveSeconds: active,
		RestSeconds:   rest,
	}
}
