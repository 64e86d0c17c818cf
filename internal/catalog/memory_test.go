package catalog

import (
	"context"
	"testing"

	"github.com/hammamikhairi/hiitcoach/internal/domain"
	"github.com/hammamikhairi/hiitcoach/internal/logger"
)

func TestMemorySourceCatalog(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	src := NewMemorySource(log)

	c, err := src.Catalog(context.Background())
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("built-in catalog invalid: %v", err)
	}

	want := []domain.Category{domain.CategoryCore, domain.CategoryUpperBody, domain.CategoryLowerBody, domain.CategoryCardio}
	got := c.Categories()
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("category %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDefaultPoolsAreLargeEnough(t *testing.T) {
	c := Default()

	for _, cat := range c.Categories() {
		for _, lvl := range domain.Levels() {
			pool := c.Pool(cat, lvl)
			if len(pool) < 5 {
				t.Errorf("%s/%s has %d exercises, want at least 5", cat, lvl, len(pool))
			}
			seen := make(map[string]bool)
			for _, name := range pool {
				if seen[name] {
					t.Errorf("%s/%s lists %q twice", cat, lvl, name)
				}
				seen[name] = true
			}
		}
	}
}
