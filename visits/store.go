package visits

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteStore is the durable, server-side visit aggregate.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the SQLite database at path, ensures the
// data directory exists, and creates the schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	// WAL lets the stats readers run alongside the writer; the busy timeout is
	// set per connection so concurrent increments wait instead of failing
	// with SQLITE_BUSY.
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open visits db: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &SQLiteStore{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS visit_stats (
    path TEXT PRIMARY KEY,
    count INTEGER NOT NULL DEFAULT 0,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`)
	return err
}

// Load returns every stored path count.
func (s *SQLiteStore) Load(ctx context.Context) (Stats, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT path, count FROM visit_stats`)
	if err != nil {
		return nil, fmt.Errorf("load visit stats: %w", err)
	}
	defer rows.Close()

	stats := Stats{}
	for rows.Next() {
		var path string
		var count int
		if err := rows.Scan(&path, &count); err != nil {
			return nil, fmt.Errorf("scan visit stats: %w", err)
		}
		stats[path] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate visit stats: %w", err)
	}
	return stats, nil
}

// Record increments the count for path by one and returns the stats after
// the write. The read, increment and write happen in one transaction.
func (s *SQLiteStore) Record(ctx context.Context, path string) (Stats, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin record visit: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
INSERT INTO visit_stats (path, count, updated_at) VALUES (?, 1, CURRENT_TIMESTAMP)
ON CONFLICT(path) DO UPDATE SET count = count + 1, updated_at = CURRENT_TIMESTAMP`, path); err != nil {
		return nil, fmt.Errorf("record visit: %w", err)
	}

	rows, err := tx.QueryContext(ctx, `SELECT path, count FROM visit_stats`)
	if err != nil {
		return nil, fmt.Errorf("reload visit stats: %w", err)
	}
	stats := Stats{}
	for rows.Next() {
		var p string
		var n int
		if err := rows.Scan(&p, &n); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan visit stats: %w", err)
		}
		stats[p] = n
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate visit stats: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit record visit: %w", err)
	}
	return stats, nil
}

// Reset removes the count for path. An empty path clears every count.
func (s *SQLiteStore) Reset(ctx context.Context, path string) error {
	var err error
	if path == "" {
		_, err = s.db.ExecContext(ctx, `DELETE FROM visit_stats`)
	} else {
		_, err = s.db.ExecContext(ctx, `DELETE FROM visit_stats WHERE path = ?`, path)
	}
	if err != nil {
		return fmt.Errorf("reset visit stats: %w", err)
	}
	return nil
}
