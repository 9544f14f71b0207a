package domain

import "strings"

// CacheEntry pairs an artifact URL with the fragment previously rendered for it.
type CacheEntry struct {
	URL      string `json:"url" cbor:"url"`
	Fragment string `json:"string" cbor:"string"`
}

// CacheTable is the in-memory view of the release cache.
//
// Rows loaded from durable storage are never replaced or removed; new rows are
// staged and appended after them. A URL maps to at most one fragment.
type CacheTable struct {
	loaded []CacheEntry
	staged []CacheEntry
	index  map[string]string
}

// NewCacheTable creates a table holding the given persisted rows.
// Later duplicates of a URL are dropped so the first stored fragment wins.
func NewCacheTable(rows []CacheEntry) *CacheTable {
	t := &CacheTable{
		loaded: make([]CacheEntry, 0, len(rows)),
		index:  make(map[string]string, len(rows)),
	}
	for _, row := range rows {
		if _, ok := t.index[row.URL]; ok {
			continue
		}
		t.index[row.URL] = row.Fragment
		t.loaded = append(t.loaded, row)
	}
	return t
}

// Lookup returns the stored fragment for url.
func (t *CacheTable) Lookup(url string) (string, bool) {
	fragment, ok := t.index[url]
	return fragment, ok
}

// Record stages a new row. It reports false and changes nothing when url is already known.
func (t *CacheTable) Record(url, fragment string) bool {
	if _, ok := t.index[url]; ok {
		return false
	}
	t.index[url] = fragment
	t.staged = append(t.staged, CacheEntry{URL: url, Fragment: fragment})
	return true
}

// Entries returns every row: loaded rows in load order, then staged rows in staging order.
func (t *CacheTable) Entries() []CacheEntry {
	out := make([]CacheEntry, 0, len(t.loaded)+len(t.staged))
	out = append(out, t.loaded...)
	return append(out, t.staged...)
}

// Staged returns the rows added since the table was loaded.
func (t *CacheTable) Staged() []CacheEntry {
	return append([]CacheEntry(nil), t.staged...)
}

// Len returns the total number of rows.
func (t *CacheTable) Len() int {
	return len(t.loaded) + len(t.staged)
}

// CacheFormat is the on-disk encoding of the release cache.
type CacheFormat string

const (
	// CacheFormatSQLite stores rows in a SQLite database.
	CacheFormatSQLite CacheFormat = "sqlite"
	// CacheFormatJSON stores rows as a JSON array.
	CacheFormatJSON CacheFormat = "json"
	// CacheFormatJSONZstd stores rows as a zstd compressed JSON array.
	CacheFormatJSONZstd CacheFormat = "json.zst"
	// CacheFormatJSONLZ4 stores rows as an lz4 framed JSON array.
	CacheFormatJSONLZ4 CacheFormat = "json.lz4"
	// CacheFormatCBOR stores rows as a CBOR array.
	CacheFormatCBOR CacheFormat = "cbor"
)

// CacheFormatOf derives the cache encoding from the file name suffix of path.
func CacheFormatOf(path string) (CacheFormat, bool) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".json.zst"):
		return CacheFormatJSONZstd, true
	case strings.HasSuffix(lower, ".json.lz4"):
		return CacheFormatJSONLZ4, true
	case strings.HasSuffix(lower, ".json"):
		return CacheFormatJSON, true
	case strings.HasSuffix(lower, ".cbor"):
		return CacheFormatCBOR, true
	case strings.HasSuffix(lower, ".db"), strings.HasSuffix(lower, ".sqlite"), strings.HasSuffix(lower, ".sqlite3"):
		return CacheFormatSQLite, true
	default:
		return "", false
	}
}
