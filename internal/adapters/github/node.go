package github

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pyrelgen/internal/adapters/config"
	"go.trai.ch/pyrelgen/internal/adapters/logger"
	"go.trai.ch/pyrelgen/internal/core/domain"
	"go.trai.ch/pyrelgen/internal/core/ports"
)

const (
	// ClientNodeID is the unique identifier for the API client Graft node.
	ClientNodeID graft.ID = "adapter.github.client"
	// ListingNodeID is the unique identifier for the release listing Graft node.
	ListingNodeID graft.ID = "adapter.github.listing"
	// ChecksumNodeID is the unique identifier for the checksum fetcher Graft node.
	ChecksumNodeID graft.ID = "adapter.github.checksum"
)

func init() {
	graft.Register(graft.Node[*Client]{
		ID:        ClientNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Client, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			token, err := ReadToken(cfg.TokenFile)
			if err != nil {
				return nil, err
			}
			if token == "" {
				log.Warn("no API token found, listing requests are unauthenticated and heavily rate limited")
			}

			return NewClient(cfg, token), nil
		},
	})

	graft.Register(graft.Node[ports.ListingFetcher]{
		ID:        ListingNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ClientNodeID},
		Run: func(ctx context.Context) (ports.ListingFetcher, error) {
			client, err := graft.Dep[*Client](ctx)
			if err != nil {
				return nil, err
			}
			return client, nil
		},
	})

	graft.Register(graft.Node[ports.ChecksumFetcher]{
		ID:        ChecksumNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ClientNodeID},
		Run: func(ctx context.Context) (ports.ChecksumFetcher, error) {
			client, err := graft.Dep[*Client](ctx)
			if err != nil {
				return nil, err
			}
			return client, nil
		},
	})
}
