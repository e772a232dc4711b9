package store

import (
	"bytes"
	"fmt"
	"maps"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/melisa48/entertainment-agent/internal/model"
)

var validate = validator.New()

// header holds the fields every item record carries.
type header struct {
	ID     string   `json:"id" validate:"required"`
	Title  *string  `json:"title" validate:"required"`
	Genre  []string `json:"genre" validate:"required"`
	Year   *int     `json:"year" validate:"required"`
	Rating *float64 `json:"rating" validate:"required"`
}

type movieRecord struct {
	header
	Director *string  `json:"director" validate:"required"`
	Actors   []string `json:"actors" validate:"required"`
	Duration *int     `json:"duration" validate:"required"`
	Type     string   `json:"type" validate:"omitempty,eq=movie"`
}

type musicRecord struct {
	header
	Artist   *string `json:"artist" validate:"required"`
	Album    *string `json:"album"`
	Duration *int    `json:"duration"`
	Type     string  `json:"type" validate:"omitempty,eq=music"`
}

type bookRecord struct {
	header
	Author    *string `json:"author" validate:"required"`
	Pages     *int    `json:"pages" validate:"required"`
	Publisher *string `json:"publisher" validate:"required"`
	Type      string  `json:"type" validate:"omitempty,eq=book"`
}

type gameRecord struct {
	header
	Developer   *string  `json:"developer" validate:"required"`
	Platforms   []string `json:"platforms" validate:"required"`
	Multiplayer *bool    `json:"multiplayer" validate:"required"`
	Type        string   `json:"type" validate:"omitempty,eq=game"`
}

type profileRecord struct {
	UserID      string             `json:"user_id" validate:"required"`
	Name        *string            `json:"name" validate:"required"`
	Preferences *model.Preferences `json:"preferences" validate:"required"`
	History     model.History      `json:"history" validate:"required"`
}

func newHeader(it model.Item) header {
	genres := it.Genres
	if genres == nil {
		genres = []string{}
	}
	return header{ID: it.ID, Title: &it.Title, Genre: genres, Year: &it.Year, Rating: &it.Rating}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// encodeItem converts an item into its persisted record.
func encodeItem(it model.Item) (any, error) {
	h := newHeader(it)
	switch d := it.Details.(type) {
	case *model.Movie:
		return movieRecord{header: h, Director: &d.Director, Actors: emptyIfNil(d.Actors), Duration: &d.DurationMinutes, Type: "movie"}, nil
	case *model.Music:
		return musicRecord{header: h, Artist: &d.Artist, Album: d.Album, Duration: d.DurationSeconds, Type: "music"}, nil
	case *model.Book:
		return bookRecord{header: h, Author: &d.Author, Pages: &d.Pages, Publisher: &d.Publisher, Type: "book"}, nil
	case *model.Game:
		return gameRecord{header: h, Developer: &d.Developer, Platforms: emptyIfNil(d.Platforms), Multiplayer: &d.Multiplayer, Type: "game"}, nil
	}
	return nil, fmt.Errorf("item %q has no kind", it.ID)
}

// Record returns the persisted form of an item, for printing.
func Record(it model.Item) (any, error) {
	return encodeItem(it)
}

// ProfileRecord returns the persisted form of a profile, for printing.
func ProfileRecord(p *model.Profile) any {
	return encodeProfile(p)
}

// decodeItem parses and validates a persisted record of the given kind.
func decodeItem(kind model.Kind, raw []byte) (model.Item, error) {
	var rec any
	switch kind {
	case model.KindMovie:
		rec = &movieRecord{}
	case model.KindMusic:
		rec = &musicRecord{}
	case model.KindBook:
		rec = &bookRecord{}
	case model.KindGame:
		rec = &gameRecord{}
	default:
		return model.Item{}, fmt.Errorf("unknown kind %q", kind)
	}
	if err := json.Unmarshal(raw, rec); err != nil {
		return model.Item{}, err
	}
	if err := validate.Struct(rec); err != nil {
		return model.Item{}, err
	}

	switch r := rec.(type) {
	case *movieRecord:
		return model.NewMovie(r.ID, *r.Title, r.Genre, *r.Year, *r.Rating, *r.Director, r.Actors, *r.Duration), nil
	case *musicRecord:
		return model.NewMusic(r.ID, *r.Title, r.Genre, *r.Year, *r.Rating, *r.Artist, r.Album, r.Duration), nil
	case *bookRecord:
		return model.NewBook(r.ID, *r.Title, r.Genre, *r.Year, *r.Rating, *r.Author, *r.Pages, *r.Publisher), nil
	case *gameRecord:
		return model.NewGame(r.ID, *r.Title, r.Genre, *r.Year, *r.Rating, *r.Developer, r.Platforms, *r.Multiplayer), nil
	}
	return model.Item{}, fmt.Errorf("unknown kind %q", kind)
}

func encodeProfile(p *model.Profile) profileRecord {
	cp := *p
	cp.History = maps.Clone(p.History)
	cp.Normalize()
	return profileRecord{UserID: cp.UserID, Name: &cp.Name, Preferences: &cp.Preferences, History: cp.History}
}

func decodeProfile(raw []byte) (*model.Profile, error) {
	var rec profileRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	if err := validate.Struct(rec); err != nil {
		return nil, err
	}
	p := &model.Profile{
		UserID:      rec.UserID,
		Name:        *rec.Name,
		Preferences: *rec.Preferences,
		History:     rec.History,
	}
	p.Normalize()
	return p, nil
}

// entry is one key of an ordered JSON object.
type entry struct {
	key   string
	value any
}

// ordered marshals as a JSON object with keys in slice order.
type ordered []entry

func (o ordered) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// eachEntry walks the members of a JSON object in document order.
func eachEntry(data []byte, fn func(key string, raw json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected JSON object")
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if err := fn(key, raw); err != nil {
			return err
		}
	}
	_, err = dec.Token()
	return err
}

// EncodeCatalog renders the catalog as an indented JSON document with one
// section per kind, keyed by item id in catalog order.
func EncodeCatalog(c *model.Catalog) ([]byte, error) {
	doc := make(ordered, 0, len(model.Kinds))
	for _, k := range model.Kinds {
		section := ordered{}
		for _, it := range c.List(k) {
			rec, err := encodeItem(it)
			if err != nil {
				return nil, err
			}
			section = append(section, entry{key: it.ID, value: rec})
		}
		doc = append(doc, entry{key: k.Plural(), value: section})
	}
	return json.MarshalIndent(doc, "", "    ")
}

// DecodeCatalog parses a catalog document. Missing sections are treated as
// empty and unknown sections are ignored; any invalid record fails the whole
// document.
func DecodeCatalog(data []byte) (*model.Catalog, error) {
	sections := map[string]model.Kind{}
	for _, k := range model.Kinds {
		sections[k.Plural()] = k
	}

	c := model.NewCatalog()
	err := eachEntry(data, func(name string, raw json.RawMessage) error {
		kind, ok := sections[name]
		if !ok || string(raw) == "null" {
			return nil
		}
		return eachEntry(raw, func(key string, rec json.RawMessage) error {
			it, err := decodeItem(kind, rec)
			if err != nil {
				return fmt.Errorf("%s/%s: %w", name, key, err)
			}
			return c.Add(it)
		})
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// EncodeProfiles renders profiles as an indented JSON object keyed by user id.
func EncodeProfiles(profiles []*model.Profile) ([]byte, error) {
	doc := make(ordered, 0, len(profiles))
	for _, p := range profiles {
		doc = append(doc, entry{key: p.UserID, value: encodeProfile(p)})
	}
	return json.MarshalIndent(doc, "", "    ")
}

// DecodeProfiles parses a profiles document in document order.
func DecodeProfiles(data []byte) ([]*model.Profile, error) {
	var out []*model.Profile
	err := eachEntry(data, func(key string, raw json.RawMessage) error {
		p, err := decodeProfile(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		out = append(out, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
