package engine

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/hiitcoach/internal/catalog"
	"github.com/hammamikhairi/hiitcoach/internal/domain"
	"github.com/hammamikhairi/hiitcoach/internal/logger"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// smallCatalog gives every category/level exactly n exercises.
func smallCatalog(n int) *domain.Catalog {
	c := domain.NewCatalog()
	for _, cat := range domain.FocusAreas() {
		for _, lvl := range domain.Levels() {
			var names []string
			for i := 0; i < n; i++ {
				names = append(names, fmt.Sprintf("%s %s %d", cat, lvl, i))
			}
			c.Add(cat, lvl, names...)
		}
	}
	return c
}

func requireUnique(t *testing.T, set domain.WorkoutSet) {
	t.Helper()
	seen := make(map[string]bool, len(set))
	for _, name := range set {
		require.False(t, seen[name], "duplicate exercise %q in %v", name, set)
		seen[name] = true
	}
}

func TestSelectAllPreferences(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	c := catalog.Default()

	for seed := uint64(1); seed <= 20; seed++ {
		sel := NewSelector(seeded(seed), log)
		for _, lvl := range domain.Levels() {
			for _, focus := range domain.FocusAreas() {
				set, err := sel.Select(c, lvl, focus)
				require.NoError(t, err)
				require.Len(t, set, 5)
				requireUnique(t, set)

				for i, cat := range c.Categories() {
					require.Contains(t, c.Pool(cat, lvl), set[i], "slot %d should come from %s", i, cat)
				}
				require.Contains(t, c.Pool(focus, lvl), set[4], "last slot should come from the focus pool")
			}
		}
	}
}

func TestSelectExactlyFivePerPool(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	c := smallCatalog(5)

	for seed := uint64(1); seed <= 50; seed++ {
		set, err := NewSelector(seeded(seed), log).Select(c, domain.LevelAdvanced, domain.CategoryCardio)
		require.NoError(t, err)
		require.Len(t, set, 5)
		requireUnique(t, set)
	}
}

func TestSelectFocusPoolOfTwo(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	c := smallCatalog(2)

	set, err := NewSelector(seeded(7), log).Select(c, domain.LevelBeginner, domain.CategoryCore)
	require.NoError(t, err)
	requireUnique(t, set)
	require.NotEqual(t, set[0], set[4])
}

func TestSelectExhaustedPool(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)

	t.Run("focus pool of one", func(t *testing.T) {
		_, err := NewSelector(seeded(1), log).Select(smallCatalog(1), domain.LevelBeginner, domain.CategoryCore)
		require.ErrorIs(t, err, domain.ErrNoExerciseAvailable)
		require.Contains(t, err.Error(), `"core"`)
	})

	t.Run("name shared across categories", func(t *testing.T) {
		c := domain.NewCatalog()
		for _, cat := range []domain.Category{domain.CategoryCore, domain.CategoryCardio} {
			for _, lvl := range domain.Levels() {
				c.Add(cat, lvl, "burpees")
			}
		}
		_, err := NewSelector(seeded(1), log).Select(c, domain.LevelIntermediate, domain.CategoryCardio)
		require.ErrorIs(t, err, domain.ErrNoExerciseAvailable)
	})

	t.Run("focus missing from catalog", func(t *testing.T) {
		c := domain.NewCatalog()
		for _, lvl := range domain.Levels() {
			c.Add(domain.CategoryCore, lvl, "plank", "dead bug")
		}
		_, err := NewSelector(seeded(1), log).Select(c, domain.LevelBeginner, domain.CategoryCardio)
		require.ErrorIs(t, err, domain.ErrNoExerciseAvailable)
	})
}

func TestSelectIsReproducibleWithSeed(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	c := catalog.Default()

	a, err := NewSelector(seeded(42), log).Select(c, domain.LevelIntermediate, domain.CategoryLowerBody)
	require.NoError(t, err)
	b, err := NewSelector(seeded(42), log).Select(c, domain.LevelIntermediate, domain.CategoryLowerBody)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestSelectReachesWholePool(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	c := smallCatalog(5)
	sel := NewSelector(seeded(3), log)

	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		set, err := sel.Select(c, domain.LevelBeginner, domain.CategoryUpperBody)
		require.NoError(t, err)
		seen[set[0]] = true
	}
	require.Len(t, seen, 5, "first slot should eventually use every core exercise")
}

func TestSelectDoesNotMutateCatalog(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	c := smallCatalog(5)
	before := c.Pool(domain.CategoryCore, domain.LevelBeginner)

	_, err := NewSelector(seeded(9), log).Select(c, domain.LevelBeginner, domain.CategoryCore)
	require.NoError(t, err)
	require.Equal(t, before, c.Pool(domain.CategoryCore, domain.LevelBeginner))
}
