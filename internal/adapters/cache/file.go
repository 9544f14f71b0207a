package cache

import (
	"context"
	"encoding/json"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
	"go.trai.ch/pyrelgen/internal/adapters/fs"
	"go.trai.ch/pyrelgen/internal/core/domain"
	"go.trai.ch/zerr"
)

// FileStore persists the cache as a single file holding an array of {"url", "string"}
// objects: JSON (optionally compressed with zstd or lz4) or CBOR.
type FileStore struct {
	path   string
	format domain.CacheFormat
}

// NewFileStore creates a FileStore writing to path in the given file based format.
func NewFileStore(path string, format domain.CacheFormat) *FileStore {
	return &FileStore{path: filepath.Clean(path), format: format}
}

// Load reads the persisted rows. A missing file yields an empty table.
func (s *FileStore) Load(_ context.Context) (*domain.CacheTable, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return domain.NewCacheTable(nil), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", s.path)
	}

	data, err = decompress(s.format, data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheDecodeFailed.Error()), "path", s.path)
	}

	rows, err := s.decode(data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheDecodeFailed.Error()), "path", s.path)
	}

	return domain.NewCacheTable(rows), nil
}

// Save replaces the file with every row of table.
func (s *FileStore) Save(_ context.Context, table *domain.CacheTable) error {
	data, err := s.encode(table.Entries())
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	data, err = compress(s.format, data)
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	if err := fs.WriteFileAtomic(s.path, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", s.path)
	}

	return nil
}

func (s *FileStore) encode(rows []domain.CacheEntry) ([]byte, error) {
	if s.format == domain.CacheFormatCBOR {
		return cbor.Marshal(rows)
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (s *FileStore) decode(data []byte) ([]domain.CacheEntry, error) {
	var rows []domain.CacheEntry
	var err error
	if s.format == domain.CacheFormatCBOR {
		err = cbor.Unmarshal(data, &rows)
	} else {
		err = json.Unmarshal(data, &rows)
	}
	return rows, err
}
