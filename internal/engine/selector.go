package engine

import (
	"fmt"
	"math/rand/v2"

	"github.com/hammamikhairi/hiitcoach/internal/domain"
	"github.com/hammamikhairi/hiitcoach/internal/logger"
)

// Selector draws the exercises for a session.
type Selector struct {
	rng *rand.Rand
	log *logger.Logger
}

// NewSelector creates a selector drawing from rng. A nil rng is seeded
// randomly.
func NewSelector(rng *rand.Rand, log *logger.Logger) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Selector{rng: rng, log: log}
}

// Select picks one exercise per catalog category at level, in catalog
// order, then one more from the focus category. Every draw excludes the
// names already picked, so the result never repeats an exercise. A pool
// with nothing left to draw fails with ErrNoExerciseAvailable.
func (s *Selector) Select(c *domain.Catalog, level domain.Level, focus domain.Category) (domain.WorkoutSet, error) {
	if !c.Has(focus) {
		return nil, fmt.Errorf("focus category %q not in catalog: %w", focus, domain.ErrNoExerciseAvailable)
	}

	cats := c.Categories()
	set := make(domain.WorkoutSet, 0, len(cats)+1)

	for _, cat := range cats {
		name, err := s.draw(c, cat, level, set)
		if err != nil {
			return nil, err
		}
		set = append(set, name)
	}

	name, err := s.draw(c, focus, level, set)
	if err != nil {
		return nil, fmt.Errorf("focus: %w", err)
	}
	set = append(set, name)

	s.log.Debug("selected %d exercises (level=%s focus=%s): %v", len(set), level, focus, set)
	return set, nil
}

// draw picks uniformly among the pool entries not already in taken.
func (s *Selector) draw(c *domain.Catalog, cat domain.Category, level domain.Level, taken domain.WorkoutSet) (string, error) {
	pool := c.Pool(cat, level)

	candidates := pool[:0]
	for _, name := range pool {
		if !taken.Contains(name) && !contains(candidates, name) {
			candidates = append(candidates, name)
		}
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("category %q level %q exhausted after %d picks: %w",
			cat, level, len(taken), domain.ErrNoExerciseAvailable)
	}
	return candidates[s.rng.IntN(len(candidates))], nil
}

func contains(list []string, name string) bool {
	for _, n := range list {
		if n == name {
			return true
		}
	}
	return false
}
