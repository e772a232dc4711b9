package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/melisa48/entertainment-agent/internal/agent"
	"github.com/melisa48/entertainment-agent/internal/config"
	"github.com/melisa48/entertainment-agent/internal/model"
)

// useJSONStore points the package config at files in a temp dir and returns
// the catalog and users paths.
func useJSONStore(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	prev := cfg
	t.Cleanup(func() { cfg = prev })

	cfg = config.Default()
	cfg.Backend = "json"
	cfg.CatalogPath = filepath.Join(dir, "entertainment_db.json")
	cfg.UsersPath = filepath.Join(dir, "users.json")
	return cfg.CatalogPath, cfg.UsersPath
}

func openTestSession(t *testing.T) *session {
	t.Helper()
	sess, err := openAgent(context.Background())
	if err != nil {
		t.Fatalf("open agent: %v", err)
	}
	t.Cleanup(func() { sess.Close() })
	return sess
}

func TestDescribe(t *testing.T) {
	album := "A Night at the Opera"
	tests := []struct {
		item model.Item
		want string
	}{
		{
			model.NewMovie("m3", "Inception", []string{"Action", "Sci-Fi"}, 2010, 8.8, "Christopher Nolan", nil, 148),
			"- Inception (2010) - Action, Sci-Fi",
		},
		{
			model.NewMusic("mu1", "Bohemian Rhapsody", []string{"Rock"}, 1975, 9.5, "Queen", &album, nil),
			"- Bohemian Rhapsody by Queen (1975) - Rock",
		},
		{
			model.NewBook("b2", "1984", []string{"Dystopian"}, 1949, 9.1, "George Orwell", 328, "Secker & Warburg"),
			"- 1984 by George Orwell (1949) - Dystopian",
		},
		{
			model.NewGame("g5", "Minecraft", []string{"Sandbox"}, 2011, 9.3, "Mojang", []string{"PC"}, true),
			"- Minecraft by Mojang (2011) - Sandbox",
		},
	}
	for _, tt := range tests {
		if got := describe(tt.item); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	writeText(&buf, model.KindMusic, nil)
	if got := buf.String(); got != "\nMusic:\n" {
		t.Errorf("expected music heading, got %q", got)
	}
}

func TestWriteDemo(t *testing.T) {
	var buf bytes.Buffer
	if err := writeDemo(&buf, agent.New(), 3); err != nil {
		t.Fatalf("demo: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Personalized Recommendations for John",
		"\nMovies:\n- Inception (2010) - Action, Sci-Fi\n",
		"- Bohemian Rhapsody by Queen (1975) - Rock",
		"- The Lord of the Rings by J.R.R. Tolkien (1954) - Fantasy, Adventure",
		"Trending Entertainment:",
		"Search results for 'action':",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}

	search := out[strings.Index(out, "Search results"):]
	if strings.Contains(search, "Music:") {
		t.Errorf("expected no music group in search results, got:\n%s", search)
	}
}

func TestParseKind(t *testing.T) {
	if k, err := parseKind(""); err != nil || k != "" {
		t.Errorf("expected empty kind for all, got %q, %v", k, err)
	}
	if k, err := parseKind("book"); err != nil || k != model.KindBook {
		t.Errorf("expected book, got %q, %v", k, err)
	}
	if _, err := parseKind("podcast"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestSessionFirstRun(t *testing.T) {
	useJSONStore(t)
	sess := openTestSession(t)

	if sess.catalogErr != nil || sess.profilesErr != nil {
		t.Fatalf("expected missing files to be ignored, got %v / %v", sess.catalogErr, sess.profilesErr)
	}
	if sess.Catalog().Total() != 20 {
		t.Errorf("expected sample catalog, got %d items", sess.Catalog().Total())
	}
}

func TestSeedReplacesUnreadableCatalog(t *testing.T) {
	ctx := context.Background()
	catalogPath, _ := useJSONStore(t)
	if err := os.WriteFile(catalogPath, []byte(`{"movies": {"x": {"id": "x"}}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	sess := openTestSession(t)
	if sess.catalogErr == nil {
		t.Fatal("expected catalog load error")
	}
	if sess.profilesErr != nil {
		t.Fatalf("expected profiles to load, got %v", sess.profilesErr)
	}

	if err := sess.saveCatalog(ctx); err == nil {
		t.Error("expected saving over an unreadable catalog to fail")
	}
	sess.CreateUser("Ann")
	if err := sess.saveProfiles(ctx); err != nil {
		t.Fatalf("expected profiles to save despite the catalog error, got %v", err)
	}
	if err := sess.reseed(ctx); err != nil {
		t.Fatalf("reseed: %v", err)
	}

	again := openTestSession(t)
	if again.catalogErr != nil || again.profilesErr != nil {
		t.Fatalf("expected clean load after seed, got %v / %v", again.catalogErr, again.profilesErr)
	}
	if again.Catalog().Total() != 20 {
		t.Errorf("expected 20 items after seed, got %d", again.Catalog().Total())
	}
	if _, err := again.User("user_1"); err != nil {
		t.Errorf("expected user_1 to be saved, got %v", err)
	}
}

func TestUnreadableProfilesAreNotOverwritten(t *testing.T) {
	ctx := context.Background()
	_, usersPath := useJSONStore(t)
	if err := os.WriteFile(usersPath, []byte(`not json`), 0o644); err != nil {
		t.Fatal(err)
	}

	sess := openTestSession(t)
	if sess.profilesErr == nil {
		t.Fatal("expected profiles load error")
	}
	sess.CreateUser("Ann")
	if err := sess.saveProfiles(ctx); err == nil {
		t.Error("expected saving over unreadable profiles to fail")
	}
	if err := sess.reseed(ctx); err != nil {
		t.Errorf("expected catalog to save, got %v", err)
	}

	data, err := os.ReadFile(usersPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "not json" {
		t.Errorf("expected users file untouched, got %q", data)
	}
}

func TestPrefValue(t *testing.T) {
	tests := []struct {
		category string
		raw      string
		want     any
		wantErr  bool
	}{
		{"years", "2010", 2010, false},
		{"years", "abc", nil, true},
		{"years", "2010.5", nil, true},
		{"ratings", "8.5", 8.5, false},
		{"ratings", "high", nil, true},
		{"genres", "Sci-Fi", "Sci-Fi", false},
	}
	for _, tt := range tests {
		got, err := prefValue(tt.category, tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%s %q: expected error, got %v", tt.category, tt.raw, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s %q: unexpected error: %v", tt.category, tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s %q: expected %v (%T), got %v (%T)", tt.category, tt.raw, tt.want, tt.want, got, got)
		}
	}
}
