// Package model defines the catalog and user profile data types.
package model

// Kind is the fixed media category of an item.
type Kind string

const (
	KindMovie Kind = "movie"
	KindMusic Kind = "music"
	KindBook  Kind = "book"
	KindGame  Kind = "game"
)

// Kinds lists every kind in display order.
var Kinds = []Kind{KindMovie, KindMusic, KindBook, KindGame}

// ValidKinds are the recognized kinds.
var ValidKinds = map[Kind]bool{
	KindMovie: true,
	KindMusic: true,
	KindBook:  true,
	KindGame:  true,
}

// ParseKind returns the kind named by s.
func ParseKind(s string) (Kind, bool) {
	k := Kind(s)
	return k, ValidKinds[k]
}

// Plural returns the group label used for collections of this kind.
func (k Kind) Plural() string {
	switch k {
	case KindMovie:
		return "movies"
	case KindMusic:
		return "music"
	case KindBook:
		return "books"
	case KindGame:
		return "games"
	}
	return string(k)
}

// Details is the kind-specific payload of an Item. It is implemented only by
// *Movie, *Music, *Book and *Game.
type Details interface {
	kind() Kind
}

// Movie holds movie-specific fields.
type Movie struct {
	Director        string
	Actors          []string
	DurationMinutes int
}

// Music holds music-specific fields. Album and duration are optional.
type Music struct {
	Artist          string
	Album           *string
	DurationSeconds *int
}

// Book holds book-specific fields.
type Book struct {
	Author    string
	Pages     int
	Publisher string
}

// Game holds game-specific fields.
type Game struct {
	Developer   string
	Platforms   []string
	Multiplayer bool
}

func (*Movie) kind() Kind { return KindMovie }
func (*Music) kind() Kind { return KindMusic }
func (*Book) kind() Kind  { return KindBook }
func (*Game) kind() Kind  { return KindGame }

// Item is a catalog entry: a common header plus exactly one Details payload.
type Item struct {
	ID      string
	Title   string
	Genres  []string
	Year    int
	Rating  float64
	Details Details
}

// Kind reports the item's kind, or "" when it has no payload.
func (it Item) Kind() Kind {
	if it.Details == nil {
		return ""
	}
	return it.Details.kind()
}

// NewMovie builds a movie item.
func NewMovie(id, title string, genres []string, year int, rating float64, director string, actors []string, minutes int) Item {
	return Item{
		ID: id, Title: title, Genres: genres, Year: year, Rating: rating,
		Details: &Movie{Director: director, Actors: actors, DurationMinutes: minutes},
	}
}

// NewMusic builds a music item. album and seconds may be nil.
func NewMusic(id, title string, genres []string, year int, rating float64, artist string, album *string, seconds *int) Item {
	return Item{
		ID: id, Title: title, Genres: genres, Year: year, Rating: rating,
		Details: &Music{Artist: artist, Album: album, DurationSeconds: seconds},
	}
}

// NewBook builds a book item.
func NewBook(id, title string, genres []string, year int, rating float64, author string, pages int, publisher string) Item {
	return Item{
		ID: id, Title: title, Genres: genres, Year: year, Rating: rating,
		Details: &Book{Author: author, Pages: pages, Publisher: publisher},
	}
}

// NewGame builds a game item.
func NewGame(id, title string, genres []string, year int, rating float64, developer string, platforms []string, multiplayer bool) Item {
	return Item{
		ID: id, Title: title, Genres: genres, Year: year, Rating: rating,
		Details: &Game{Developer: developer, Platforms: platforms, Multiplayer: multiplayer},
	}
}
