package catalog

import (
	"context"

	"github.com/hammamikhairi/hiitcoach/internal/domain"
	"github.com/hammamikhairi/hiitcoach/internal/logger"
)

// Compile-time interface check.
var _ domain.CatalogSource = (*MemorySource)(nil)

// MemorySource serves the built-in catalog. Used when no catalog file is
// configured.
type MemorySource struct {
	catalog *domain.Catalog
	log     *logger.Logger
}

// NewMemorySource creates a source preloaded with the built-in exercises.
func NewMemorySource(log *logger.Logger) *MemorySource {
	src := &MemorySource{log: log}
	src.catalog = Default()
	log.Debug("seeded built-in catalog (%d categories)", len(src.catalog.Categories()))
	return src
}

// Catalog returns the built-in catalog.
func (s *MemorySource) Catalog(ctx context.Context) (*domain.Catalog, error) {
	return s.catalog, nil
}

// Default builds the built-in catalog. Every pool has at least five
// exercises so a focus area can always draw a fifth distinct one.
func Default() *domain.Catalog {
	c := domain.NewCatalog()
	seed := []struct {
		category domain.Category
		level    domain.Level
		names    []string
	}{
		{domain.CategoryCore, domain.LevelBeginner, []string{
			"plank", "dead bug", "bird dog", "glute bridge", "bicycle crunches", "flutter kicks",
		}},
		{domain.CategoryCore, domain.LevelIntermediate, []string{
			"side plank", "russian twists", "hollow hold", "plank shoulder taps", "v-ups", "reverse crunches",
		}},
		{domain.CategoryCore, domain.LevelAdvanced, []string{
			"hanging leg raises", "dragon flag negatives", "plank with leg lift", "l-sit", "hollow rocks", "windshield wipers",
		}},
		{domain.CategoryUpperBody, domain.LevelBeginner, []string{
			"knee push-ups", "incline push-ups", "arm circles", "wall push-ups", "shoulder taps", "tricep dips",
		}},
		{domain.CategoryUpperBody, domain.LevelIntermediate, []string{
			"push-ups", "diamond push-ups", "pike push-ups", "wide push-ups", "plank up-downs", "bench dips",
		}},
		{domain.CategoryUpperBody, domain.LevelAdvanced, []string{
			"clap push-ups", "archer push-ups", "handstand push-ups", "decline push-ups", "pseudo planche push-ups", "ring dips",
		}},
		{domain.CategoryLowerBody, domain.LevelBeginner, []string{
			"bodyweight squats", "reverse lunges", "calf raises", "wall sit", "step-ups", "donkey kicks",
		}},
		{domain.CategoryLowerBody, domain.LevelIntermediate, []string{
			"jump squats", "walking lunges", "sumo squats", "curtsy lunges", "single-leg glute bridge", "squat pulses",
		}},
		{domain.CategoryLowerBody, domain.LevelAdvanced, []string{
			"pistol squats", "jumping lunges", "bulgarian split squats", "skater jumps", "tuck jumps", "shrimp squats",
		}},
		{domain.CategoryCardio, domain.LevelBeginner, []string{
			"jumping jacks", "high knees", "butt kicks", "marching in place", "step jacks", "shadow boxing",
		}},
		{domain.CategoryCardio, domain.LevelIntermediate, []string{
			"mountain climbers", "burpees", "skaters", "fast feet", "seal jacks", "lateral shuffles",
		}},
		{domain.CategoryCardio, domain.LevelAdvanced, []string{
			"burpee tuck jumps", "star jumps", "sprint in place", "cross-body mountain climbers", "broad jumps", "plyo lunges",
		}},
	}
	for _, s := range seed {
		c.Add(s.category, s.level, s.names...)
	}
	return c
}
