package domain

import (
	"errors"
	"testing"
)

func fullCatalog() *Catalog {
	c := NewCatalog()
	for _, cat := range []Category{CategoryCardio, CategoryCore} {
		for _, lvl := range Levels() {
			c.Add(cat, lvl, string(cat)+"-"+string(lvl))
		}
	}
	return c
}

func TestCatalogOrderAndCopies(t *testing.T) {
	c := fullCatalog()

	cats := c.Categories()
	if len(cats) != 2 || cats[0] != CategoryCardio || cats[1] != CategoryCore {
		t.Fatalf("expected insertion order [cardio core], got %v", cats)
	}

	pool := c.Pool(CategoryCore, LevelBeginner)
	pool[0] = "mutated"
	if c.Pool(CategoryCore, LevelBeginner)[0] == "mutated" {
		t.Fatal("Pool must return a copy")
	}

	if !c.Has(CategoryCardio) || c.Has(CategoryUpperBody) {
		t.Fatal("Has reported the wrong categories")
	}
}

func TestCatalogValidate(t *testing.T) {
	tests := []struct {
		name    string
		build   func() *Catalog
		wantErr bool
	}{
		{"complete", fullCatalog, false},
		{"empty", NewCatalog, true},
		{"missing level", func() *Catalog {
			c := NewCatalog()
			c.Add(CategoryCore, LevelBeginner, "plank")
			c.Add(CategoryCore, LevelIntermediate, "hollow hold")
			return c
		}, true},
		{"empty name", func() *Catalog {
			c := fullCatalog()
			c.Add(CategoryCore, LevelAdvanced, "")
			return c
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build().Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrCatalogMalformed) {
					t.Fatalf("expected ErrCatalogMalformed, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
