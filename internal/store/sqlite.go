package store

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/melisa48/entertainment-agent/internal/model"
)

const (
	targetCatalog  = "catalog"
	targetProfiles = "profiles"
)

// SQLiteStore implements Store using SQLite. Every save replaces the stored
// rows in one transaction and appends an entry to the saves journal.
type SQLiteStore struct {
	db      *sql.DB
	entropy io.Reader
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS items (
		kind    TEXT NOT NULL,
		id      TEXT NOT NULL,
		seq     INTEGER NOT NULL,
		title   TEXT NOT NULL,
		record  TEXT NOT NULL,
		PRIMARY KEY (kind, id)
	);
	CREATE INDEX IF NOT EXISTS idx_items_kind_seq ON items(kind, seq);

	CREATE TABLE IF NOT EXISTS profiles (
		user_id TEXT PRIMARY KEY,
		seq     INTEGER NOT NULL,
		name    TEXT NOT NULL,
		record  TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS saves (
		id         TEXT PRIMARY KEY,
		target     TEXT NOT NULL,
		row_count  INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_saves_target ON saves(target, created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// saved reports whether target has been saved at least once, so that an
// empty catalog can be told apart from a database that was never written.
func (s *SQLiteStore) saved(ctx context.Context, target string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM saves WHERE target = ?`, target).Scan(&n)
	return n > 0, err
}

func (s *SQLiteStore) journal(ctx context.Context, tx *sql.Tx, target string, rows int) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO saves (id, target, row_count, created_at) VALUES (?, ?, ?, ?)`,
		s.newID(), target, rows, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("journal save: %w", err)
	}
	return nil
}

func (s *SQLiteStore) LoadCatalog(ctx context.Context) (*model.Catalog, error) {
	ok, err := s.saved(ctx, targetCatalog)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("catalog: %w", ErrNotFound)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT kind, id, record FROM items ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	c := model.NewCatalog()
	for rows.Next() {
		var kind, id, record string
		if err := rows.Scan(&kind, &id, &record); err != nil {
			return nil, err
		}
		it, err := decodeItem(model.Kind(kind), []byte(record))
		if err != nil {
			return nil, fmt.Errorf("%s/%s: %w", kind, id, err)
		}
		if err := c.Add(it); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *SQLiteStore) SaveCatalog(ctx context.Context, c *model.Catalog) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}

	seq := 0
	for _, k := range model.Kinds {
		for _, it := range c.List(k) {
			rec, err := encodeItem(it)
			if err != nil {
				return err
			}
			b, err := json.Marshal(rec)
			if err != nil {
				return fmt.Errorf("encode %s/%s: %w", k, it.ID, err)
			}
			_, err = tx.ExecContext(ctx,
				`INSERT INTO items (kind, id, seq, title, record) VALUES (?, ?, ?, ?, ?)`,
				string(k), it.ID, seq, it.Title, string(b))
			if err != nil {
				return fmt.Errorf("insert item: %w", err)
			}
			seq++
		}
	}

	if err := s.journal(ctx, tx, targetCatalog, seq); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) LoadProfiles(ctx context.Context) ([]*model.Profile, error) {
	ok, err := s.saved(ctx, targetProfiles)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("profiles: %w", ErrNotFound)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT user_id, record FROM profiles ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*model.Profile
	for rows.Next() {
		var userID, record string
		if err := rows.Scan(&userID, &record); err != nil {
			return nil, err
		}
		p, err := decodeProfile([]byte(record))
		if err != nil {
			return nil, fmt.Errorf("profile %s: %w", userID, err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (s *SQLiteStore) SaveProfiles(ctx context.Context, profiles []*model.Profile) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM profiles`); err != nil {
		return fmt.Errorf("clear profiles: %w", err)
	}

	for i, p := range profiles {
		b, err := json.Marshal(encodeProfile(p))
		if err != nil {
			return fmt.Errorf("encode profile %s: %w", p.UserID, err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO profiles (user_id, seq, name, record) VALUES (?, ?, ?, ?)`,
			p.UserID, i, p.Name, string(b))
		if err != nil {
			return fmt.Errorf("insert profile: %w", err)
		}
	}

	if err := s.journal(ctx, tx, targetProfiles, len(profiles)); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
