package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/melisa48/entertainment-agent/internal/model"
	"github.com/melisa48/entertainment-agent/internal/seed"
)

func newTestJSONStore(t *testing.T) (*JSONStore, string) {
	t.Helper()
	dir := t.TempDir()
	return NewJSONStore(filepath.Join(dir, "entertainment_db.json"), filepath.Join(dir, "users.json")), dir
}

func TestJSONStoreCatalogRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestJSONStore(t)

	orig := seed.Catalog()
	if err := s.SaveCatalog(ctx, orig); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	assertSameCatalog(t, orig, got)
}

func TestJSONStoreProfilesRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestJSONStore(t)

	p := model.NewProfile("user_1", "John")
	p.AddPreference(model.KindMusic, "artists", "Queen")
	if err := s.SaveProfiles(ctx, []*model.Profile{p}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.LoadProfiles(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].Preferences.Music.Artists[0] != "Queen" {
		t.Errorf("expected restored profile, got %+v", got)
	}
}

func TestJSONStoreMissingFiles(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestJSONStore(t)

	if _, err := s.LoadCatalog(ctx); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.LoadProfiles(ctx); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestJSONStoreMalformedFile(t *testing.T) {
	ctx := context.Background()
	s, dir := newTestJSONStore(t)

	if err := os.WriteFile(filepath.Join(dir, "entertainment_db.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := s.LoadCatalog(ctx)
	if err == nil {
		t.Fatal("expected error for malformed file")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("expected parse error, not ErrNotFound")
	}
}

func TestJSONStoreSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s, dir := newTestJSONStore(t)

	s.SaveCatalog(ctx, seed.Catalog())
	small := model.NewCatalog()
	small.Add(model.NewGame("g9", "Tiny", nil, 2020, 5, "Dev", nil, false))
	if err := s.SaveCatalog(ctx, small); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Total() != 1 {
		t.Errorf("expected 1 item after overwrite, got %d", got.Total())
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("expected no leftover temp files, got %d entries", len(entries))
	}
}

func TestJSONStoreCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	s := NewJSONStore(filepath.Join(dir, "a", "b", "db.json"), filepath.Join(dir, "a", "users.json"))
	if err := s.SaveCatalog(context.Background(), seed.Catalog()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "a", "b", "db.json")); err != nil {
		t.Errorf("expected catalog file: %v", err)
	}
}
