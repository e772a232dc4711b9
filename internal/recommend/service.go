// Package recommend ranks and searches catalog items.
package recommend

import (
	"sort"
	"strings"
	"time"

	"github.com/melisa48/entertainment-agent/internal/model"
	"github.com/melisa48/entertainment-agent/internal/scoring"
)

// Ranked is an item together with the score it was ranked by.
type Ranked struct {
	Item  model.Item
	Score float64
}

// Results groups items by kind. A kind is present only when it has items.
type Results map[model.Kind][]model.Item

// Service ranks items from a catalog. It reads the catalog on every call and
// holds no other state.
type Service struct {
	catalog *model.Catalog
	scorer  scoring.Scorer
	now     func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the clock used for trending.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a service over catalog.
func NewService(catalog *model.Catalog, scorer scoring.Scorer, opts ...Option) *Service {
	s := &Service{catalog: catalog, scorer: scorer, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Recommend returns the count best-matching items of kind for the profile,
// best first. Equal scores keep catalog order.
func (s *Service) Recommend(p *model.Profile, kind model.Kind, count int) []Ranked {
	return s.rank(kind, count, func(it model.Item) float64 {
		return s.scorer.Match(it, p)
	})
}

// Trending returns the count items of kind with the highest trending score
// for the current calendar year.
func (s *Service) Trending(kind model.Kind, count int) []Ranked {
	year := s.now().Year()
	return s.rank(kind, count, func(it model.Item) float64 {
		return s.scorer.Trending(it, year)
	})
}

func (s *Service) rank(kind model.Kind, count int, score func(model.Item) float64) []Ranked {
	items := s.catalog.List(kind)
	if len(items) == 0 || count <= 0 {
		return []Ranked{}
	}

	ranked := make([]Ranked, len(items))
	for i, it := range items {
		ranked[i] = Ranked{Item: it, Score: score(it)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if count > len(ranked) {
		count = len(ranked)
	}
	return ranked[:count]
}

// Search finds items whose title or any genre contains query, ignoring case.
// An empty kind searches every kind; an unrecognized kind matches nothing.
func (s *Service) Search(query string, kind model.Kind) Results {
	results := Results{}
	q := strings.ToLower(query)

	kinds := model.Kinds
	if kind != "" {
		if !model.ValidKinds[kind] {
			return results
		}
		kinds = []model.Kind{kind}
	}

	for _, k := range kinds {
		var matched []model.Item
		for _, it := range s.catalog.List(k) {
			if matches(it, q) {
				matched = append(matched, it)
			}
		}
		if len(matched) > 0 {
			results[k] = matched
		}
	}
	return results
}

func matches(it model.Item, q string) bool {
	if strings.Contains(strings.ToLower(it.Title), q) {
		return true
	}
	for _, g := range it.Genres {
		if strings.Contains(strings.ToLower(g), q) {
			return true
		}
	}
	return false
}
