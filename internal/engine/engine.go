// Package engine builds workout sessions and runs them: exercise
// selection, timing derivation and the set/interval state machine.
package engine

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/hammamikhairi/hiitcoach/internal/domain"
	"github.com/hammamikhairi/hiitcoach/internal/logger"
)

// Option configures the engine.
type Option func(*Engine)

// WithSeed makes selection reproducible. A zero seed keeps it random.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		if seed != 0 {
			e.rng = rand.New(rand.NewPCG(seed, seed))
		}
	}
}

// Engine turns preferences into sessions. It depends only on interfaces and
// is fully testable with fakes.
type Engine struct {
	catalogs domain.CatalogSource
	log      *logger.Logger
	rng      *rand.Rand
	selector *Selector
	catalog  *domain.Catalog
}

// New creates an engine reading exercises from catalogs.
func New(catalogs domain.CatalogSource, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		catalogs: catalogs,
		log:      log,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.selector = NewSelector(e.rng, log)
	return e
}

// LoadCatalog fetches the catalog once. Later calls reuse it.
func (e *Engine) LoadCatalog(ctx context.Context) (*domain.Catalog, error) {
	if e.catalog != nil {
		return e.catalog, nil
	}
	c, err := e.catalogs.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	e.catalog = c
	return c, nil
}

// NewSession selects the exercises and derives the plan for prefs.
func (e *Engine) NewSession(ctx context.Context, prefs domain.Preferences) (*domain.Session, error) {
	c, err := e.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	workout, err := e.selector.Select(c, prefs.Level, prefs.Focus)
	if err != nil {
		return nil, fmt.Errorf("selecting exercises: %w", err)
	}

	session := &domain.Session{
		ID:          generateID(),
		Preferences: prefs,
		Workout:     workout,
		Plan:        PlanFor(prefs),
		Phase:       domain.PhaseAwaitingStart,
	}

	e.log.Info("new session %s: %d sets of %d exercises, %ds on / %ds off",
		session.ID, session.Plan.Sets, len(workout), session.Plan.ActiveSeconds, session.Plan.RestSeconds)
	return session, nil
}
