package cache

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/pyrelgen/internal/core/domain"
	"go.trai.ch/zerr"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const schema = `
CREATE TABLE IF NOT EXISTS releases (
	url      TEXT PRIMARY KEY,
	string   TEXT NOT NULL,
	position INTEGER NOT NULL
);
`

// SQLiteStore persists the cache in a single-table SQLite database.
// A connection is opened per call and closed before returning.
type SQLiteStore struct {
	path string
}

// NewSQLiteStore creates a SQLiteStore for the database at path.
// The file is created on the first Save.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: filepath.Clean(path)}
}

// Load reads every row ordered by position. A missing database yields an empty table.
func (s *SQLiteStore) Load(ctx context.Context) (*domain.CacheTable, error) {
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewCacheTable(nil), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", s.path)
	}

	conn, err := s.open(ctx, sqlite.OpenReadOnly)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", s.path)
	}
	defer func() { _ = conn.Close() }()

	var rows []domain.CacheEntry
	err = sqlitex.Execute(conn, "SELECT url, string FROM releases ORDER BY position", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			rows = append(rows, domain.CacheEntry{
				URL:      stmt.ColumnText(0),
				Fragment: stmt.ColumnText(1),
			})
			return nil
		},
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheDecodeFailed.Error()), "path", s.path)
	}

	return domain.NewCacheTable(rows), nil
}

// Save rewrites the table inside one immediate transaction.
func (s *SQLiteStore) Save(ctx context.Context, table *domain.CacheTable) error {
	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", s.path)
	}

	conn, err := s.open(ctx, sqlite.OpenReadWrite|sqlite.OpenCreate)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", s.path)
	}
	defer func() { _ = conn.Close() }()

	if err := sqlitex.ExecuteScript(conn, schema, nil); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", s.path)
	}

	if err := writeRows(conn, table.Entries()); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", s.path)
	}

	return nil
}

func writeRows(conn *sqlite.Conn, rows []domain.CacheEntry) (err error) {
	endTransaction, err := sqlitex.ImmediateTransaction(conn)
	if err != nil {
		return err
	}
	defer endTransaction(&err)

	if err := sqlitex.Execute(conn, "DELETE FROM releases", nil); err != nil {
		return err
	}

	for i, row := range rows {
		err := sqlitex.Execute(conn, "INSERT INTO releases (url, string, position) VALUES (?, ?, ?)",
			&sqlitex.ExecOptions{
				Args: []any{row.URL, row.Fragment, i},
			})
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *SQLiteStore) open(ctx context.Context, flags sqlite.OpenFlags) (*sqlite.Conn, error) {
	conn, err := sqlite.OpenConn(s.path, flags)
	if err != nil {
		return nil, err
	}
	conn.SetInterrupt(ctx.Done())
	return conn, nil
}
