package ports

import (
	"context"

	"go.trai.ch/pyrelgen/internal/core/domain"
)

// TableEmitter writes the generated source file.
//
//go:generate mockgen -source=emitter.go -destination=mocks/mock_emitter.go -package=mocks
type TableEmitter interface {
	// Emit wraps rows in the generated source template and overwrites the output file.
	Emit(ctx context.Context, rows []string) (domain.EmitResult, error)
}
