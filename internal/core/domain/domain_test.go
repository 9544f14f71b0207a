package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pyrelgen/internal/core/domain"
)

func TestRecord_Fragment(t *testing.T) {
	record := domain.Record{
		Kind:               domain.KindCPython,
		Version:            domain.Version{Major: 3, Minor: 11, Patch: 4},
		OS:                 "apple",
		Architecture:       "x86_64",
		BuildConfiguration: "pgo+lto",
		Checksum:           "abc123",
		URL:                "https://example.test/cpython-3.11.4-x86_64-apple-darwin-pgo%2Blto-full.tar.zst",
	}

	want := `NewRelease("cpython", NewVersion(3, 11, 4), "apple", "x86_64", "pgo+lto", "abc123", ` +
		`"https://example.test/cpython-3.11.4-x86_64-apple-darwin-pgo%2Blto-full.tar.zst")`
	assert.Equal(t, want, record.Fragment())
	assert.Equal(t, record.Fragment(), record.Fragment())
}

func TestRecord_FragmentQuotesStrings(t *testing.T) {
	record := domain.Record{Kind: domain.KindCPython, Checksum: "a\"b"}
	assert.Contains(t, record.Fragment(), `"a\"b"`)
}

func TestVersion_String(t *testing.T) {
	assert.Equal(t, "3.10.12", domain.Version{Major: 3, Minor: 10, Patch: 12}.String())
}

func TestCacheTable(t *testing.T) {
	t.Run("first stored fragment wins", func(t *testing.T) {
		table := domain.NewCacheTable([]domain.CacheEntry{
			{URL: "a", Fragment: "first"},
			{URL: "a", Fragment: "second"},
		})

		fragment, ok := table.Lookup("a")
		require.True(t, ok)
		assert.Equal(t, "first", fragment)
		assert.Equal(t, 1, table.Len())
	})

	t.Run("record appends after loaded rows", func(t *testing.T) {
		table := domain.NewCacheTable([]domain.CacheEntry{{URL: "a", Fragment: "A"}})

		assert.True(t, table.Record("b", "B"))
		assert.True(t, table.Record("c", "C"))

		assert.Equal(t, []domain.CacheEntry{
			{URL: "a", Fragment: "A"},
			{URL: "b", Fragment: "B"},
			{URL: "c", Fragment: "C"},
		}, table.Entries())
		assert.Equal(t, []domain.CacheEntry{
			{URL: "b", Fragment: "B"},
			{URL: "c", Fragment: "C"},
		}, table.Staged())
	})

	t.Run("record never replaces", func(t *testing.T) {
		table := domain.NewCacheTable([]domain.CacheEntry{{URL: "a", Fragment: "A"}})

		assert.False(t, table.Record("a", "other"))
		assert.True(t, table.Record("b", "B"))
		assert.False(t, table.Record("b", "other"))

		fragment, _ := table.Lookup("a")
		assert.Equal(t, "A", fragment)
		fragment, _ = table.Lookup("b")
		assert.Equal(t, "B", fragment)
		assert.Equal(t, 2, table.Len())
	})

	t.Run("lookup miss", func(t *testing.T) {
		table := domain.NewCacheTable(nil)
		_, ok := table.Lookup("missing")
		assert.False(t, ok)
		assert.Empty(t, table.Entries())
	})
}

func TestChecksumIndex(t *testing.T) {
	releases := []domain.Release{
		{
			TagName: "20230726",
			Assets: []domain.Asset{
				{Name: "a.tar.zst", URL: "https://example.test/a.tar.zst"},
				{Name: "a.tar.zst.sha256", URL: "https://example.test/a.tar.zst.sha256"},
				{Name: "b.tar.zst", URL: "https://example.test/b.tar.zst"},
			},
		},
		{
			TagName: "20230801",
			// Checksums may be published in a different release than the artifact.
			Assets: []domain.Asset{
				{Name: "b.tar.zst.sha256", URL: "https://example.test/b.tar.zst.sha256"},
			},
		},
	}

	index := domain.ChecksumIndex(releases)

	assert.Len(t, index, 2)
	assert.Contains(t, index, "https://example.test/a.tar.zst")
	assert.Contains(t, index, "https://example.test/b.tar.zst")
	assert.NotContains(t, index, "https://example.test/a.tar.zst.sha256")
}

func TestChecksumURL(t *testing.T) {
	assert.Equal(t, "https://example.test/a.tar.zst.sha256", domain.ChecksumURL("https://example.test/a.tar.zst"))
}

func TestCacheFormatOf(t *testing.T) {
	tests := []struct {
		path   string
		want   domain.CacheFormat
		wantOK bool
	}{
		{path: "releases.db", want: domain.CacheFormatSQLite, wantOK: true},
		{path: "cache/releases.sqlite", want: domain.CacheFormatSQLite, wantOK: true},
		{path: "releases.SQLITE3", want: domain.CacheFormatSQLite, wantOK: true},
		{path: "releases.json", want: domain.CacheFormatJSON, wantOK: true},
		{path: "releases.json.zst", want: domain.CacheFormatJSONZstd, wantOK: true},
		{path: "releases.json.lz4", want: domain.CacheFormatJSONLZ4, wantOK: true},
		{path: "releases.lz4", wantOK: false},
		{path: "releases.cbor", want: domain.CacheFormatCBOR, wantOK: true},
		{path: "releases.yaml", wantOK: false},
		{path: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := domain.CacheFormatOf(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
