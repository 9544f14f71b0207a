package ports

import (
	"context"

	"go.trai.ch/pyrelgen/internal/core/domain"
)

// CacheStore defines the durable storage of the release cache.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheStore interface {
	// Load returns the persisted table, or an empty table when nothing was persisted yet.
	Load(ctx context.Context) (*domain.CacheTable, error)

	// Save replaces the persisted state with every row of table.
	Save(ctx context.Context, table *domain.CacheTable) error
}
