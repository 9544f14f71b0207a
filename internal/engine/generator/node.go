package generator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pyrelgen/internal/adapters/github" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pyrelgen/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pyrelgen/internal/core/ports"
)

// NodeID is the unique identifier for the generator Graft node.
const NodeID graft.ID = "engine.generator"

func init() {
	graft.Register(graft.Node[*Generator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			github.ChecksumNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Generator, error) {
			checksums, err := graft.Dep[ports.ChecksumFetcher](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(checksums, log), nil
		},
	})
}
