package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pyrelgen/internal/adapters/cache"     //nolint:depguard // Wired in app layer
	"go.trai.ch/pyrelgen/internal/adapters/emitter"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pyrelgen/internal/adapters/github"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pyrelgen/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pyrelgen/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/pyrelgen/internal/core/ports"
	"go.trai.ch/pyrelgen/internal/engine/generator"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			github.ListingNodeID,
			cache.NodeID,
			generator.NodeID,
			emitter.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	listing, err := graft.Dep[ports.ListingFetcher](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.CacheStore](ctx)
	if err != nil {
		return nil, err
	}

	gen, err := graft.Dep[*generator.Generator](ctx)
	if err != nil {
		return nil, err
	}

	tableEmitter, err := graft.Dep[ports.TableEmitter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(listing, store, gen, tableEmitter, log, tracer), nil
}
