package model

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// MoviePreferences are the preference categories recognized for movies.
type MoviePreferences struct {
	Genres    []string  `json:"genres"`
	Actors    []string  `json:"actors"`
	Directors []string  `json:"directors"`
	Years     []int     `json:"years"`
	Ratings   []float64 `json:"ratings"`
}

// MusicPreferences are the preference categories recognized for music.
type MusicPreferences struct {
	Genres  []string  `json:"genres"`
	Artists []string  `json:"artists"`
	Years   []int     `json:"years"`
	Ratings []float64 `json:"ratings"`
}

// BookPreferences are the preference categories recognized for books.
type BookPreferences struct {
	Genres  []string  `json:"genres"`
	Authors []string  `json:"authors"`
	Years   []int     `json:"years"`
	Ratings []float64 `json:"ratings"`
}

// GamePreferences are the preference categories recognized for games.
type GamePreferences struct {
	Genres     []string  `json:"genres"`
	Developers []string  `json:"developers"`
	Platforms  []string  `json:"platforms"`
	Years      []int     `json:"years"`
	Ratings    []float64 `json:"ratings"`
}

// Preferences groups the per-kind preference sets of a profile.
type Preferences struct {
	Movie MoviePreferences `json:"movie"`
	Music MusicPreferences `json:"music"`
	Book  BookPreferences  `json:"book"`
	Game  GamePreferences  `json:"game"`
}

// History maps a kind to the ids the user has already consumed.
type History map[Kind][]string

// Profile is a user's preferences and consumption history.
type Profile struct {
	UserID      string      `json:"user_id"`
	Name        string      `json:"name"`
	Preferences Preferences `json:"preferences"`
	History     History     `json:"history"`
}

var categories = map[Kind][]string{
	KindMovie: {"genres", "actors", "directors", "years", "ratings"},
	KindMusic: {"genres", "artists", "years", "ratings"},
	KindBook:  {"genres", "authors", "years", "ratings"},
	KindGame:  {"genres", "developers", "platforms", "years", "ratings"},
}

// Categories returns the preference categories recognized for a kind.
func Categories(kind Kind) []string {
	return slices.Clone(categories[kind])
}

// ValidCategory reports whether category is recognized for kind.
func ValidCategory(kind Kind, category string) bool {
	return slices.Contains(categories[kind], category)
}

// NewProfile returns a profile with every preference set and history empty.
func NewProfile(userID, name string) *Profile {
	p := &Profile{UserID: userID, Name: name}
	p.Normalize()
	return p
}

// Normalize replaces nil sets with empty ones so that every recognized
// category and kind is present when the profile is serialized.
func (p *Profile) Normalize() {
	for _, k := range Kinds {
		for _, c := range categories[k] {
			switch c {
			case "years":
				if ys := p.Preferences.years(k); *ys == nil {
					*ys = []int{}
				}
			case "ratings":
				if rs := p.Preferences.ratings(k); *rs == nil {
					*rs = []float64{}
				}
			default:
				if ss := p.Preferences.strings(k, c); *ss == nil {
					*ss = []string{}
				}
			}
		}
	}
	if p.History == nil {
		p.History = History{}
	}
	for _, k := range Kinds {
		if p.History[k] == nil {
			p.History[k] = []string{}
		}
	}
}

// AddPreference records value under kind/category. It reports whether the
// value was added; unknown kinds or categories, values that cannot be read
// as the category's type, and values already present are ignored.
func (p *Profile) AddPreference(kind Kind, category string, value any) bool {
	if !ValidCategory(kind, category) {
		return false
	}
	switch category {
	case "years":
		y, ok := toInt(value)
		if !ok {
			return false
		}
		return addUnique(p.Preferences.years(kind), y)
	case "ratings":
		r, ok := toFloat(value)
		if !ok {
			return false
		}
		return addUnique(p.Preferences.ratings(kind), r)
	default:
		return addUnique(p.Preferences.strings(kind, category), fmt.Sprint(value))
	}
}

// AddToHistory marks an item as consumed. It reports whether the id was added.
func (p *Profile) AddToHistory(kind Kind, itemID string) bool {
	if !ValidKinds[kind] {
		return false
	}
	if p.History == nil {
		p.History = History{}
	}
	ids := p.History[kind]
	ok := addUnique(&ids, itemID)
	p.History[kind] = ids
	return ok
}

// Seen reports whether itemID is in the history for kind.
func (p *Profile) Seen(kind Kind, itemID string) bool {
	return slices.Contains(p.History[kind], itemID)
}

// Genres returns the preferred genres for a kind.
func (pr *Preferences) Genres(kind Kind) []string {
	if gs := pr.strings(kind, "genres"); gs != nil {
		return *gs
	}
	return nil
}

// Years returns the preferred years for a kind.
func (pr *Preferences) Years(kind Kind) []int {
	if ys := pr.years(kind); ys != nil {
		return *ys
	}
	return nil
}

func (pr *Preferences) strings(kind Kind, category string) *[]string {
	switch kind {
	case KindMovie:
		switch category {
		case "genres":
			return &pr.Movie.Genres
		case "actors":
			return &pr.Movie.Actors
		case "directors":
			return &pr.Movie.Directors
		}
	case KindMusic:
		switch category {
		case "genres":
			return &pr.Music.Genres
		case "artists":
			return &pr.Music.Artists
		}
	case KindBook:
		switch category {
		case "genres":
			return &pr.Book.Genres
		case "authors":
			return &pr.Book.Authors
		}
	case KindGame:
		switch category {
		case "genres":
			return &pr.Game.Genres
		case "developers":
			return &pr.Game.Developers
		case "platforms":
			return &pr.Game.Platforms
		}
	}
	return nil
}

func (pr *Preferences) years(kind Kind) *[]int {
	switch kind {
	case KindMovie:
		return &pr.Movie.Years
	case KindMusic:
		return &pr.Music.Years
	case KindBook:
		return &pr.Book.Years
	case KindGame:
		return &pr.Game.Years
	}
	return nil
}

func (pr *Preferences) ratings(kind Kind) *[]float64 {
	switch kind {
	case KindMovie:
		return &pr.Movie.Ratings
	case KindMusic:
		return &pr.Music.Ratings
	case KindBook:
		return &pr.Book.Ratings
	case KindGame:
		return &pr.Game.Ratings
	}
	return nil
}

func addUnique[T comparable](set *[]T, v T) bool {
	if set == nil || slices.Contains(*set, v) {
		return false
	}
	*set = append(*set, v)
	return true
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}
