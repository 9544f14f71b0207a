// Package app implements the application layer for pyrelgen.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/pyrelgen/internal/core/domain"
	"go.trai.ch/pyrelgen/internal/core/ports"
	"go.trai.ch/pyrelgen/internal/engine/generator"
)

// App represents the main application logic.
type App struct {
	listing   ports.ListingFetcher
	store     ports.CacheStore
	generator *generator.Generator
	emitter   ports.TableEmitter
	logger    ports.Logger
	tracer    ports.Tracer
}

// New creates a new App instance.
func New(
	listing ports.ListingFetcher,
	store ports.CacheStore,
	gen *generator.Generator,
	emitter ports.TableEmitter,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		listing:   listing,
		store:     store,
		generator: gen,
		emitter:   emitter,
		logger:    log,
		tracer:    tracer,
	}
}

// Run regenerates the release table.
//
// Nothing is written unless the listing and every checksum were fetched successfully.
// On failure the error is logged and the returned error matches domain.ErrGenerationFailed.
func (a *App) Run(ctx context.Context) error {
	summary, err := a.run(ctx)
	if err != nil {
		a.logger.Error(err)
		return errors.Join(domain.ErrGenerationFailed, err)
	}

	a.logger.Info(summary)
	return nil
}

func (a *App) run(ctx context.Context) (string, error) {
	var (
		table    *domain.CacheTable
		releases []domain.Release
		res      generator.Result
		emitted  domain.EmitResult
	)

	// 1. Load the cache and the listing
	err := a.phase(ctx, "cache.load", func(ctx context.Context, span ports.Span) error {
		var err error
		table, err = a.store.Load(ctx)
		if err == nil {
			span.SetAttribute("rows", table.Len())
		}
		return err
	})
	if err != nil {
		return "", err
	}

	err = a.phase(ctx, "listing.fetch", func(ctx context.Context, span ports.Span) error {
		var err error
		releases, err = a.listing.FetchListing(ctx)
		span.SetAttribute("releases", len(releases))
		return err
	})
	if err != nil {
		return "", err
	}

	// 2. Walk
	err = a.phase(ctx, "generate", func(ctx context.Context, span ports.Span) error {
		var err error
		res, err = a.generator.Generate(ctx, releases, table)
		span.SetAttribute("cached", res.Stats.Cached)
		span.SetAttribute("fresh", res.Stats.Fresh)
		return err
	})
	if err != nil {
		return "", err
	}

	// 3. Emit
	err = a.phase(ctx, "emit", func(ctx context.Context, span ports.Span) error {
		var err error
		emitted, err = a.emitter.Emit(ctx, res.Rows)
		span.SetAttribute("rows", len(res.Rows))
		return err
	})
	if err != nil {
		return "", err
	}

	// 4. Persist
	err = a.phase(ctx, "cache.save", func(ctx context.Context, span ports.Span) error {
		for _, entry := range res.Fresh {
			table.Record(entry.URL, entry.Fragment)
		}
		span.SetAttribute("rows", table.Len())
		return a.store.Save(ctx, table)
	})
	if err != nil {
		return "", err
	}

	return formatSummary(res.Stats, len(res.Rows), emitted), nil
}

// phase runs fn inside a span named name.
func (a *App) phase(ctx context.Context, name string, fn func(context.Context, ports.Span) error) error {
	ctx, span := a.tracer.Start(ctx, name)
	defer span.End()

	if err := fn(ctx, span); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func formatSummary(stats generator.Stats, rows int, emitted domain.EmitResult) string {
	state := "updated"
	if emitted.Unchanged {
		state = "unchanged"
	}
	return fmt.Sprintf(
		"wrote %d releases to %s (%s, digest %s): %d cached, %d new, %d without checksum, %d filtered",
		rows, emitted.Path, state, emitted.Digest,
		stats.Cached, stats.Fresh, stats.NoChecksum, stats.Filtered,
	)
}
