// Package postgre stores key-value entries in a single Postgres table.
package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"frame-notify-srv/pkg/kv"
)

const defaultScanCount = 100

const schema = `
CREATE TABLE IF NOT EXISTS kv_entries (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

// Store is a kv.Store over the kv_entries table.
type Store struct {
	db *sql.DB
}

var _ kv.Store = (*Store)(nil)

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Migrate creates the kv_entries table if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("postgre: migrate kv_entries: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv_entries (key, value, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		key, string(value),
	)
	return err
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv_entries WHERE key = $1`, key)
	return err
}

// Scan pages through keys in lexical order; the cursor is the last key of the previous page.
func (s *Store) Scan(ctx context.Context, prefix, cursor string, count int) ([]string, string, error) {
	if count <= 0 {
		count = defaultScanCount
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT key FROM kv_entries
		 WHERE key LIKE $1 ESCAPE '\' AND key > $2
		 ORDER BY key
		 LIMIT $3`,
		escapeLike(prefix)+"%", cursor, count,
	)
	if err != nil {
		return nil, "", err
	}
	defer rows.Close()

	keys := make([]string, 0, count)
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, "", err
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}

	if len(keys) < count {
		return keys, "", nil
	}
	return keys, keys[len(keys)-1], nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
