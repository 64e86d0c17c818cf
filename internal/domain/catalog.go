package domain

import "fmt"

// Catalog maps category -> level -> exercise names. Categories keep the
// order they were added in, which is the order the selector walks them.
// A Catalog is built once at startup and only read afterwards.
type Catalog struct {
	order []Category
	pools map[Category]map[Level][]string
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{pools: make(map[Category]map[Level][]string)}
}

// Add appends exercises to the pool for category and level. The first Add
// for a category fixes its position.
func (c *Catalog) Add(category Category, level Level, exercises ...string) {
	levels, ok := c.pools[category]
	if !ok {
		levels = make(map[Level][]string)
		c.pools[category] = levels
		c.order = append(c.order, category)
	}
	levels[level] = append(levels[level], exercises...)
}

// Categories returns the categories in catalog order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.order))
	copy(out, c.order)
	return out
}

// Has reports whether the catalog knows category.
func (c *Catalog) Has(category Category) bool {
	_, ok := c.pools[category]
	return ok
}

// Pool returns a copy of the exercises for category at level.
func (c *Catalog) Pool(category Category, level Level) []string {
	src := c.pools[category][level]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Validate checks that every category carries all levels with at least
// one non-empty exercise name.
func (c *Catalog) Validate() error {
	if len(c.order) == 0 {
		return fmt.Errorf("no categories: %w", ErrCatalogMalformed)
	}
	for _, cat := range c.order {
		for _, lvl := range Levels() {
			pool, ok := c.pools[cat][lvl]
			if !ok {
				return fmt.Errorf("category %q is missing level %q: %w", cat, lvl, ErrCatalogMalformed)
			}
			if len(pool) == 0 {
				return fmt.Errorf("category %q level %q has no exercises: %w", cat, lvl, ErrCatalogMalformed)
			}
			for i, name := range pool {
				if name == "" {
					return fmt.Errorf("category %q level %q entry %d is empty: %w", cat, lvl, i, ErrCatalogMalformed)
				}
			}
		}
	}
	return nil
}
