// Package cache implements the CacheStore port on top of SQLite or single encoded files.
package cache

import (
	"go.trai.ch/pyrelgen/internal/core/domain"
	"go.trai.ch/pyrelgen/internal/core/ports"
	"go.trai.ch/zerr"
)

// New returns the store for path, picking the backend from the file suffix:
// .db, .sqlite and .sqlite3 use SQLite, .json a plain JSON array, .json.zst and
// .json.lz4 the same array compressed with zstd or lz4, .cbor a CBOR array.
func New(path string) (ports.CacheStore, error) {
	format, ok := domain.CacheFormatOf(path)
	if !ok {
		return nil, zerr.With(domain.ErrInvalidConfig, "cache", path)
	}

	switch format {
	case domain.CacheFormatSQLite:
		return NewSQLiteStore(path), nil
	default:
		return NewFileStore(path, format), nil
	}
}
