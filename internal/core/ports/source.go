// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/pyrelgen/internal/core/domain"
)

// ListingFetcher retrieves the upstream release listing.
//
//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type ListingFetcher interface {
	// FetchListing returns every release with its assets in upstream order.
	// Paginated listings are aggregated before returning.
	FetchListing(ctx context.Context) ([]domain.Release, error)
}

// ChecksumFetcher retrieves published checksums.
type ChecksumFetcher interface {
	// FetchChecksum returns the whitespace-trimmed body of the checksum resource at url.
	FetchChecksum(ctx context.Context, url string) (string, error)
}
