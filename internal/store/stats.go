package store

import (
	"context"
	"os"
	"time"
)

// Stats holds database statistics.
type Stats struct {
	DBPath      string         `json:"db_path"`
	DBSizeBytes int64          `json:"db_size_bytes"`
	Items       map[string]int `json:"items"`
	Profiles    int            `json:"profiles"`
	Saves       int            `json:"saves"`
	LastSave    *SaveEntry     `json:"last_save,omitempty"`
}

// SaveEntry is one row of the saves journal.
type SaveEntry struct {
	ID        string    `json:"id"`
	Target    string    `json:"target"`
	Rows      int       `json:"rows"`
	CreatedAt time.Time `json:"created_at"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath, Items: map[string]int{}}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&st.Profiles)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM saves`).Scan(&st.Saves)

	rows, err := s.db.QueryContext(ctx, `SELECT kind, COUNT(*) FROM items GROUP BY kind`)
	if err != nil {
		return st, err
	}
	defer rows.Close()
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return st, err
		}
		st.Items[kind] = n
	}
	rows.Close()

	saves, err := s.Saves(ctx, 1)
	if err != nil {
		return st, err
	}
	if len(saves) > 0 {
		st.LastSave = &saves[0]
	}
	return st, nil
}

// Saves returns the most recent journal entries, newest first.
func (s *SQLiteStore) Saves(ctx context.Context, limit int) ([]SaveEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, target, row_count, created_at FROM saves ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SaveEntry
	for rows.Next() {
		var e SaveEntry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Target, &e.Rows, &createdAt); err != nil {
			return nil, err
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		out = append(out, e)
	}
	return out, rows.Err()
}
