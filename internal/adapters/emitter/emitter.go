// Package emitter implements the TableEmitter port, rendering the release table as Go
// source.
package emitter

import (
	"context"
	"path/filepath"

	"github.com/aymerick/raymond"
	"go.trai.ch/pyrelgen/internal/adapters/fs"
	"go.trai.ch/pyrelgen/internal/core/domain"
	"go.trai.ch/zerr"
)

const generatorName = "pyrelgen"

// Emitter writes the generated source file.
type Emitter struct {
	path        string
	packageName string
	tpl         *raymond.Template
}

// New creates an Emitter writing package packageName to path.
func New(path, packageName string) *Emitter {
	return &Emitter{
		path:        filepath.Clean(path),
		packageName: packageName,
		tpl:         raymond.MustParse(sourceTemplate),
	}
}

// Render returns the generated source for rows without writing it.
func (e *Emitter) Render(rows []string) (string, error) {
	if rows == nil {
		rows = []string{}
	}
	out, err := e.tpl.Exec(map[string]any{
		"generator": generatorName,
		"package":   e.packageName,
		"rows":      rows,
	})
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrTemplateRenderFailed.Error())
	}
	return out, nil
}

// Emit renders rows and overwrites the output file. The file is always rewritten;
// Unchanged reports whether the previous content had the same digest.
func (e *Emitter) Emit(_ context.Context, rows []string) (domain.EmitResult, error) {
	content, err := e.Render(rows)
	if err != nil {
		return domain.EmitResult{}, err
	}

	previous, existed, err := fs.HashFile(e.path)
	if err != nil {
		return domain.EmitResult{}, zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
	}

	data := []byte(content)
	digest := fs.HashBytes(data)

	if err := fs.WriteFileAtomic(e.path, data); err != nil {
		return domain.EmitResult{}, zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", e.path)
	}

	return domain.EmitResult{
		Path:      e.path,
		Digest:    digest,
		Unchanged: existed && previous == digest,
	}, nil
}
