// Package domain defines the core types and interfaces for the HIIT coach.
// All other packages depend on domain; domain depends on nothing.
package domain

import "fmt"

// Level is the user's fitness level. It selects the exercise pool and the
// active/rest split.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Levels returns every accepted level in prompt order.
func Levels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

// ParseLevel matches s exactly against the accepted levels.
func ParseLevel(s string) (Level, error) {
	for _, l := range Levels() {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("level %q: %w", s, ErrInvalidInput)
}

// Length is the session length in minutes. It stays a string so "15" and
// "30" are matched literally ("015" is not fifteen).
type Length string

const (
	LengthShort Length = "15"
	LengthLong  Length = "30"
)

// Lengths returns every accepted length in prompt order.
func Lengths() []Length {
	return []Length{LengthShort, LengthLong}
}

// ParseLength matches s exactly against the accepted lengths.
func ParseLength(s string) (Length, error) {
	for _, l := range Lengths() {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("length %q: %w", s, ErrInvalidInput)
}

// Category names a group of exercises in the catalog. The focus area is
// always one of the four built-in categories.
type Category string

const (
	CategoryCore      Category = "core"
	CategoryUpperBody Category = "upper body"
	CategoryLowerBody Category = "lower body"
	CategoryCardio    Category = "cardio"
)

// FocusAreas returns the categories a user can focus on, in prompt order.
func FocusAreas() []Category {
	return []Category{CategoryCore, CategoryUpperBody, CategoryLowerBody, CategoryCardio}
}

// ParseFocus matches s exactly against the focus areas.
func ParseFocus(s string) (Category, error) {
	for _, c := range FocusAreas() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("focus %q: %w", s, ErrInvalidInput)
}

// Preferences is what the user picked before the session.
type Preferences struct {
	Level  Level
	Length Length
	Focus  Category
}

// WorkoutSet is the ordered list of exercises performed in every set.
// One exercise per catalog category, then one for the focus area. No name
// appears twice.
type WorkoutSet []string

// Contains reports whether name is already in the set.
func (w WorkoutSet) Contains(name string) bool {
	for _, n := range w {
		if n == name {
			return true
		}
	}
	return false
}

// IntroSeconds is the fixed "starting in" countdown before set 1.
const IntroSeconds = 5

// CycleSeconds is the length of one active+rest pair regardless of level.
const CycleSeconds = 60

// SessionPlan holds the timing derived from Preferences.
type SessionPlan struct {
	Sets          int
	ActiveSeconds int
	RestSeconds   int
}

// TotalSeconds returns the countdown time of a whole session, intro
// included, for a workout of n exercises.
func (p SessionPlan) TotalSeconds(n int) int {
	return IntroSeconds + p.Sets*n*(p.ActiveSeconds+p.RestSeconds)
}
