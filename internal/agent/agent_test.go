package agent

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/melisa48/entertainment-agent/internal/model"
	"github.com/melisa48/entertainment-agent/internal/store"
)

func newTestAgent(t *testing.T) (*Agent, string) {
	t.Helper()
	dir := t.TempDir()
	s := store.NewJSONStore(filepath.Join(dir, "entertainment_db.json"), filepath.Join(dir, "users.json"))
	clock := func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }
	return New(WithStore(s), WithClock(clock)), dir
}

func TestCreateUserSelectsUser(t *testing.T) {
	a, _ := newTestAgent(t)

	id := a.CreateUser("John")
	if id != "user_1" {
		t.Errorf("expected user_1, got %q", id)
	}
	p, err := a.CurrentUser()
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if p.Name != "John" {
		t.Errorf("expected John, got %q", p.Name)
	}

	id2 := a.CreateUser("Ann")
	if id2 != "user_2" {
		t.Errorf("expected user_2, got %q", id2)
	}
	if len(a.Users()) != 2 || a.Users()[0].UserID != "user_1" {
		t.Errorf("expected users in creation order, got %v", a.Users())
	}
}

func TestCreateUserSkipsTakenIDs(t *testing.T) {
	a, _ := newTestAgent(t)
	a.putProfile(model.NewProfile("user_2", "Loaded"))

	if id := a.CreateUser("New"); id != "user_3" {
		t.Errorf("expected user_3, got %q", id)
	}
}

func TestNoCurrentUser(t *testing.T) {
	a, _ := newTestAgent(t)

	if _, err := a.Recommendations("", 3); !errors.Is(err, ErrNoCurrentUser) {
		t.Errorf("expected ErrNoCurrentUser, got %v", err)
	}
	if _, err := a.AddPreference(model.KindMovie, "genres", "Drama"); !errors.Is(err, ErrNoCurrentUser) {
		t.Errorf("expected ErrNoCurrentUser, got %v", err)
	}
	if _, err := a.AddToHistory(model.KindMovie, "m1"); !errors.Is(err, ErrNoCurrentUser) {
		t.Errorf("expected ErrNoCurrentUser, got %v", err)
	}
}

func TestSetCurrentUser(t *testing.T) {
	a, _ := newTestAgent(t)
	a.CreateUser("John")
	a.CreateUser("Ann")

	if err := a.SetCurrentUser("user_1"); err != nil {
		t.Fatalf("set current: %v", err)
	}
	p, _ := a.CurrentUser()
	if p.Name != "John" {
		t.Errorf("expected John, got %q", p.Name)
	}
	if err := a.SetCurrentUser("user_9"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	p, _ = a.CurrentUser()
	if p.UserID != "user_1" {
		t.Errorf("expected selection unchanged, got %q", p.UserID)
	}
}

func TestRecommendationsScenario(t *testing.T) {
	a, _ := newTestAgent(t)
	a.CreateUser("John")
	a.AddPreference(model.KindMovie, "genres", "Action")
	a.AddPreference(model.KindMovie, "genres", "Sci-Fi")
	a.AddPreference(model.KindMovie, "actors", "Leonardo DiCaprio")

	groups, err := a.Recommendations(model.KindMovie, 1)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	top := groups[model.KindMovie]
	if len(top) != 1 || top[0].Item.ID != "m3" || math.Abs(top[0].Score-1.63) > 1e-9 {
		t.Errorf("expected m3 at 1.63, got %+v", top)
	}

	a.AddToHistory(model.KindMovie, "m3")
	groups, _ = a.Recommendations(model.KindMovie, 5)
	for _, r := range groups[model.KindMovie] {
		if r.Item.ID == "m3" && math.Abs(r.Score-0.63) > 1e-9 {
			t.Errorf("expected m3 at 0.63 after history, got %v", r.Score)
		}
	}
}

func TestRecommendationsSelectors(t *testing.T) {
	a, _ := newTestAgent(t)
	a.CreateUser("John")

	all, err := a.Recommendations("", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 4 {
		t.Errorf("expected 4 kinds, got %d", len(all))
	}
	for k, rs := range all {
		if len(rs) != 2 {
			t.Errorf("%s: expected 2, got %d", k, len(rs))
		}
	}

	none, err := a.Recommendations(model.Kind("podcast"), 2)
	if err != nil {
		t.Errorf("expected no error for unknown kind, got %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected empty groups, got %v", none)
	}

	zero, _ := a.Recommendations(model.KindMovie, 0)
	if len(zero[model.KindMovie]) != 0 {
		t.Errorf("expected empty list for count 0, got %d", len(zero[model.KindMovie]))
	}
}

func TestRecommendationsForExplicitUser(t *testing.T) {
	a, _ := newTestAgent(t)
	a.CreateUser("John")
	a.CreateUser("Ann")
	a.AddPreferenceFor("user_1", model.KindBook, "authors", "George Orwell")

	groups, err := a.RecommendationsFor("user_1", model.KindBook, 1)
	if err != nil {
		t.Fatal(err)
	}
	if groups[model.KindBook][0].Item.ID != "b2" {
		t.Errorf("expected b2 for Orwell fan, got %s", groups[model.KindBook][0].Item.ID)
	}
	if _, err := a.RecommendationsFor("user_7", model.KindBook, 1); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := a.AddToHistoryFor("user_7", model.KindBook, "b1"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestTrendingAndSearch(t *testing.T) {
	a, _ := newTestAgent(t)

	tr := a.Trending(model.KindGame, 2)
	if len(tr) != 1 || len(tr[model.KindGame]) != 2 {
		t.Errorf("expected 2 trending games, got %v", tr)
	}
	if len(a.Trending("", 1)) != 4 {
		t.Error("expected trending for all kinds")
	}

	res := a.Search("survival", "")
	if len(res) != 1 || len(res[model.KindGame]) != 2 {
		t.Errorf("expected 2 survival games only, got %v", res)
	}
}

func TestItem(t *testing.T) {
	a, _ := newTestAgent(t)

	it, err := a.Item(model.KindBook, "b3")
	if err != nil {
		t.Fatal(err)
	}
	if it.Title != "The Lord of the Rings" {
		t.Errorf("unexpected title %q", it.Title)
	}
	if _, err := a.Item(model.KindBook, "m1"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	a, dir := newTestAgent(t)
	a.CreateUser("John")
	a.AddPreference(model.KindMusic, "artists", "Queen")
	a.AddToHistory(model.KindMusic, "mu1")
	a.AddItem(model.NewBook("b6", "Dune", []string{"Science Fiction"}, 1965, 9.0, "Frank Herbert", 412, "Chilton"))

	if err := a.Save(ctx); err != nil {
		t.Fatalf("save: %v", err)
	}

	s := store.NewJSONStore(filepath.Join(dir, "entertainment_db.json"), filepath.Join(dir, "users.json"))
	b := New(WithStore(s), WithCatalog(model.NewCatalog()))
	if err := b.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if b.Catalog().Len(model.KindBook) != 6 {
		t.Errorf("expected 6 books, got %d", b.Catalog().Len(model.KindBook))
	}
	p, err := b.User("user_1")
	if err != nil {
		t.Fatal(err)
	}
	if !p.Seen(model.KindMusic, "mu1") || p.Preferences.Music.Artists[0] != "Queen" {
		t.Errorf("profile not restored: %+v", p)
	}
	if _, err := b.CurrentUser(); !errors.Is(err, ErrNoCurrentUser) {
		t.Errorf("expected no current user after load, got %v", err)
	}
}

func TestLoadFirstRun(t *testing.T) {
	a, _ := newTestAgent(t)

	err := a.Load(context.Background())
	if !errors.Is(err, ErrPersistence) {
		t.Errorf("expected ErrPersistence, got %v", err)
	}
	if !OnlyNotFound(err) {
		t.Errorf("expected only not-found failures, got %v", err)
	}
	if a.Catalog().Total() != 20 {
		t.Errorf("expected sample catalog to remain, got %d", a.Catalog().Total())
	}
}

func TestLoadMalformedKeepsState(t *testing.T) {
	ctx := context.Background()
	a, dir := newTestAgent(t)
	a.CreateUser("John")

	os.WriteFile(filepath.Join(dir, "entertainment_db.json"), []byte(`{"movies": {"m1": {"id": "m1"}}}`), 0o644)
	os.WriteFile(filepath.Join(dir, "users.json"), []byte(`not json`), 0o644)

	err := a.Load(ctx)
	if err == nil {
		t.Fatal("expected load error")
	}
	if OnlyNotFound(err) {
		t.Error("expected malformed data to be reported as a real failure")
	}
	if a.Catalog().Total() != 20 {
		t.Errorf("expected catalog untouched, got %d items", a.Catalog().Total())
	}
	if len(a.Users()) != 1 {
		t.Errorf("expected profiles untouched, got %d", len(a.Users()))
	}
}

func TestLoadHalvesIndependently(t *testing.T) {
	ctx := context.Background()
	a, dir := newTestAgent(t)
	a.CreateUser("John")
	if err := a.SaveProfiles(ctx); err != nil {
		t.Fatalf("save profiles: %v", err)
	}
	os.WriteFile(filepath.Join(dir, "entertainment_db.json"), []byte(`{"games": {"g1": {"id": "g1"}}}`), 0o644)

	b := New(WithStore(store.NewJSONStore(filepath.Join(dir, "entertainment_db.json"), filepath.Join(dir, "users.json"))))
	if err := b.LoadCatalog(ctx); !errors.Is(err, ErrPersistence) || OnlyNotFound(err) {
		t.Errorf("expected catalog failure, got %v", err)
	}
	if err := b.LoadProfiles(ctx); err != nil {
		t.Fatalf("expected profiles to load, got %v", err)
	}
	if _, err := b.User("user_1"); err != nil {
		t.Errorf("expected user_1, got %v", err)
	}

	b.ResetCatalog()
	if err := b.SaveCatalog(ctx); err != nil {
		t.Fatalf("save catalog: %v", err)
	}
	if err := b.Load(ctx); err != nil {
		t.Errorf("expected clean load after reseed, got %v", err)
	}
}

func TestLoadWithoutStore(t *testing.T) {
	a := New()
	if err := a.Load(context.Background()); !errors.Is(err, ErrPersistence) {
		t.Errorf("expected ErrPersistence, got %v", err)
	}
	if err := a.Save(context.Background()); !errors.Is(err, ErrPersistence) {
		t.Errorf("expected ErrPersistence, got %v", err)
	}
}

func TestOnlyNotFound(t *testing.T) {
	nf := errors.Join(errors.New("x"))
	if OnlyNotFound(nf) {
		t.Error("expected false for unrelated error")
	}
	if OnlyNotFound(nil) {
		t.Error("expected false for nil")
	}
}

func TestResetCatalog(t *testing.T) {
	a := New(WithCatalog(model.NewCatalog()))
	if a.Catalog().Total() != 0 {
		t.Fatalf("expected empty catalog, got %d", a.Catalog().Total())
	}
	a.ResetCatalog()
	if a.Catalog().Total() != 20 {
		t.Errorf("expected 20 sample items, got %d", a.Catalog().Total())
	}
	if len(a.Search("inception", model.KindMovie)) != 1 {
		t.Error("expected search to use the new catalog")
	}
}
