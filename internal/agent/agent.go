// Package agent is the entry point used by the command line: it owns the
// catalog, the user profiles and the current user, and persists them.
package agent

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/melisa48/entertainment-agent/internal/logging"
	"github.com/melisa48/entertainment-agent/internal/model"
	"github.com/melisa48/entertainment-agent/internal/recommend"
	"github.com/melisa48/entertainment-agent/internal/scoring"
	"github.com/melisa48/entertainment-agent/internal/seed"
	"github.com/melisa48/entertainment-agent/internal/store"
)

var (
	// ErrNoCurrentUser is returned by current-user operations when no user is selected.
	ErrNoCurrentUser = errors.New("no user selected")

	// ErrUserNotFound is returned for unknown user ids.
	ErrUserNotFound = errors.New("user not found")

	// ErrItemNotFound is returned for unknown item ids.
	ErrItemNotFound = errors.New("item not found")

	// ErrPersistence wraps every load or save failure.
	ErrPersistence = errors.New("persistence failure")
)

// Groups holds ranked items per kind.
type Groups map[model.Kind][]recommend.Ranked

// Agent is not safe for concurrent use; callers must serialize access.
type Agent struct {
	catalog *model.Catalog
	svc     *recommend.Service
	scorer  scoring.Scorer
	now     func() time.Time

	profiles map[string]*model.Profile
	order    []string
	current  string

	store store.Store
	log   zerolog.Logger
}

// Option configures an Agent.
type Option func(*Agent)

// WithStore sets the store used by Load and Save.
func WithStore(s store.Store) Option {
	return func(a *Agent) { a.store = s }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Agent) { a.log = l }
}

// WithScorer overrides the default scorer.
func WithScorer(s scoring.Scorer) Option {
	return func(a *Agent) { a.scorer = s }
}

// WithClock overrides the clock used for trending.
func WithClock(now func() time.Time) Option {
	return func(a *Agent) { a.now = now }
}

// WithCatalog starts the agent with c instead of the sample catalog.
func WithCatalog(c *model.Catalog) Option {
	return func(a *Agent) { a.catalog = c }
}

// New returns an agent holding the sample catalog and no users.
func New(opts ...Option) *Agent {
	a := &Agent{
		scorer:   scoring.Default(),
		now:      time.Now,
		profiles: map[string]*model.Profile{},
		log:      logging.Nop(),
	}
	for _, o := range opts {
		o(a)
	}
	if a.catalog == nil {
		a.catalog = seed.Catalog()
	}
	a.setCatalog(a.catalog)
	return a
}

func (a *Agent) setCatalog(c *model.Catalog) {
	a.catalog = c
	a.svc = recommend.NewService(c, a.scorer, recommend.WithClock(a.now))
}

// Catalog returns the catalog owned by the agent.
func (a *Agent) Catalog() *model.Catalog {
	return a.catalog
}

// ResetCatalog replaces the catalog with the sample data.
func (a *Agent) ResetCatalog() {
	a.setCatalog(seed.Catalog())
}

// AddItem adds or replaces a catalog item.
func (a *Agent) AddItem(it model.Item) error {
	return a.catalog.Add(it)
}

// Item looks up a catalog item.
func (a *Agent) Item(kind model.Kind, id string) (model.Item, error) {
	it, ok := a.catalog.Get(kind, id)
	if !ok {
		return model.Item{}, fmt.Errorf("%w: %s/%s", ErrItemNotFound, kind, id)
	}
	return it, nil
}
