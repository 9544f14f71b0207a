package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pyrelgen/internal/adapters/config"
	"go.trai.ch/pyrelgen/internal/core/domain"
	"go.trai.ch/pyrelgen/internal/core/ports"
)

// NodeID is the unique identifier for the release cache store Graft node.
const NodeID graft.ID = "adapter.cache_store"

func init() {
	graft.Register(graft.Node[ports.CacheStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.CacheStore, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.CachePath)
		},
	})
}
