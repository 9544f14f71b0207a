// Package generator walks the upstream release listing and produces the rows of the
// generated release table.
package generator

import (
	"context"

	"go.trai.ch/pyrelgen/internal/core/domain"
	"go.trai.ch/pyrelgen/internal/core/ports"
	"go.trai.ch/pyrelgen/internal/engine/extractor"
	"go.trai.ch/zerr"
)

// Stats counts how each artifact of a walk was handled.
type Stats struct {
	Artifacts  int
	Cached     int
	Fresh      int
	NoChecksum int
	Filtered   int
}

// Result is the outcome of a walk.
type Result struct {
	// Rows holds one rendered fragment per emitted artifact, in upstream order.
	Rows []string
	// Fresh holds the entries rendered during this walk, to be staged into the cache.
	Fresh []domain.CacheEntry
	Stats Stats
}

// Generator folds the release listing into table rows.
type Generator struct {
	checksums ports.ChecksumFetcher
	logger    ports.Logger
}

// New creates a new Generator.
func New(checksums ports.ChecksumFetcher, logger ports.Logger) *Generator {
	return &Generator{
		checksums: checksums,
		logger:    logger,
	}
}

// Generate walks every asset of releases in order.
//
// A cached URL replays its stored fragment without any network access. Otherwise the
// asset needs an advertised checksum and must pass the extractor gates; survivors get
// their checksum fetched and are rendered. The table is only read, never modified.
func (g *Generator) Generate(
	ctx context.Context,
	releases []domain.Release,
	table *domain.CacheTable,
) (Result, error) {
	checksummed := domain.ChecksumIndex(releases)

	var res Result
	for _, release := range releases {
		for _, asset := range release.Assets {
			res.Stats.Artifacts++

			if fragment, ok := table.Lookup(asset.URL); ok {
				res.Rows = append(res.Rows, fragment)
				res.Stats.Cached++
				continue
			}

			if _, ok := checksummed[asset.URL]; !ok {
				g.logger.Info("no checksum for " + displayName(asset))
				res.Stats.NoChecksum++
				continue
			}

			extraction, err := extractor.Extract(asset.URL)
			if err != nil {
				return Result{}, zerr.With(err, "release", release.TagName)
			}
			if extraction.Skip {
				res.Stats.Filtered++
				continue
			}

			checksum, err := g.checksums.FetchChecksum(ctx, domain.ChecksumURL(asset.URL))
			if err != nil {
				return Result{}, zerr.With(err, "artifact", displayName(asset))
			}

			record := extraction.Record
			record.Checksum = checksum
			record.URL = asset.URL

			fragment := record.Fragment()
			res.Rows = append(res.Rows, fragment)
			res.Fresh = append(res.Fresh, domain.CacheEntry{URL: asset.URL, Fragment: fragment})
			res.Stats.Fresh++
		}
	}

	return res, nil
}

func displayName(asset domain.Asset) string {
	if asset.Name != "" {
		return asset.Name
	}
	return asset.URL
}
