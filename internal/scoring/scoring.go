// Package scoring computes match and trending scores for catalog items.
package scoring

import (
	"slices"

	"github.com/melisa48/entertainment-agent/internal/model"
)

// Weights are the additive terms of the match score.
type Weights struct {
	Genre     float64 `koanf:"genre" validate:"gte=0"`
	YearExact float64 `koanf:"year_exact" validate:"gte=0"`
	YearNear  float64 `koanf:"year_near" validate:"gte=0"`
	YearSpan  int     `koanf:"year_span" validate:"gte=0"`
	Director  float64 `koanf:"director" validate:"gte=0"`
	Actor     float64 `koanf:"actor" validate:"gte=0"`
	Artist    float64 `koanf:"artist" validate:"gte=0"`
	Author    float64 `koanf:"author" validate:"gte=0"`
	Developer float64 `koanf:"developer" validate:"gte=0"`
	Platform  float64 `koanf:"platform" validate:"gte=0"`
	Seen      float64 `koanf:"seen" validate:"gte=0"`
	Recency   float64 `koanf:"recency"`
}

// DefaultWeights returns the standard weights.
func DefaultWeights() Weights {
	return Weights{
		Genre:     0.3,
		YearExact: 0.2,
		YearNear:  0.1,
		YearSpan:  5,
		Director:  0.2,
		Actor:     0.15,
		Artist:    0.4,
		Author:    0.4,
		Developer: 0.2,
		Platform:  0.2,
		Seen:      1.0,
		Recency:   0.1,
	}
}

// Scorer computes scores with a fixed set of weights. It has no state
// beyond the weights and never mutates its inputs.
type Scorer struct {
	W Weights
}

// New returns a scorer using w.
func New(w Weights) Scorer {
	return Scorer{W: w}
}

// Default returns a scorer using DefaultWeights.
func Default() Scorer {
	return New(DefaultWeights())
}

// Match scores how well an item fits a profile. The result is not clamped:
// it can exceed 1 and goes negative for consumed items with low ratings.
func (s Scorer) Match(it model.Item, p *model.Profile) float64 {
	kind := it.Kind()
	prefs := &p.Preferences

	score := it.Rating / 10.0

	genres := prefs.Genres(kind)
	for _, g := range it.Genres {
		if slices.Contains(genres, g) {
			score += s.W.Genre
		}
	}

	// Exact year wins over the near-year bonus; never both.
	years := prefs.Years(kind)
	if slices.Contains(years, it.Year) {
		score += s.W.YearExact
	} else if s.nearYear(it.Year, years) {
		score += s.W.YearNear
	}

	switch d := it.Details.(type) {
	case *model.Movie:
		if slices.Contains(prefs.Movie.Directors, d.Director) {
			score += s.W.Director
		}
		for _, a := range d.Actors {
			if slices.Contains(prefs.Movie.Actors, a) {
				score += s.W.Actor
			}
		}
	case *model.Music:
		if slices.Contains(prefs.Music.Artists, d.Artist) {
			score += s.W.Artist
		}
	case *model.Book:
		if slices.Contains(prefs.Book.Authors, d.Author) {
			score += s.W.Author
		}
	case *model.Game:
		if slices.Contains(prefs.Game.Developers, d.Developer) {
			score += s.W.Developer
		}
		// One platform bonus at most.
		for _, pl := range d.Platforms {
			if slices.Contains(prefs.Game.Platforms, pl) {
				score += s.W.Platform
				break
			}
		}
	}

	if p.Seen(kind, it.ID) {
		score -= s.W.Seen
	}

	return score
}

// Trending scores an item by age and rating relative to currentYear.
func (s Scorer) Trending(it model.Item, currentYear int) float64 {
	return float64(currentYear-it.Year)*s.W.Recency + it.Rating
}

func (s Scorer) nearYear(year int, years []int) bool {
	for _, y := range years {
		d := year - y
		if d < 0 {
			d = -d
		}
		if d <= s.W.YearSpan {
			return true
		}
	}
	return false
}
