// Package storage writes rendered files to a filesystem.
//
// Writers replace the whole file in one call. Retries, atomic renames and
// partial-write recovery are out of scope. Directory creation is opt-in.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/simonhull/firebird-suite/quill/logger"
	"github.com/spf13/afero"
)

// DefaultFileMode is used when no mode is configured.
const DefaultFileMode os.FileMode = 0644

// Writer persists data at path, replacing any existing contents.
type Writer interface {
	WriteFile(ctx context.Context, path string, data []byte) error
}

// WriterFunc adapts a function to the Writer interface.
type WriterFunc func(ctx context.Context, path string, data []byte) error

// WriteFile calls f(ctx, path, data).
func (f WriterFunc) WriteFile(ctx context.Context, path string, data []byte) error {
	return f(ctx, path, data)
}

// FSWriter writes files through an afero filesystem.
type FSWriter struct {
	fs       afero.Fs
	mode     os.FileMode
	mkdirAll bool
	log      logger.Logger
}

// Option configures an FSWriter.
type Option func(*FSWriter)

// WithFileMode sets the permissions for newly written files.
func WithFileMode(mode os.FileMode) Option {
	return func(w *FSWriter) {
		if mode != 0 {
			w.mode = mode
		}
	}
}

// WithMkdirAll makes the writer create missing parent directories.
func WithMkdirAll(enabled bool) Option {
	return func(w *FSWriter) {
		w.mkdirAll = enabled
	}
}

// WithLogger sets the logger used for write diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(w *FSWriter) {
		if l != nil {
			w.log = l
		}
	}
}

// NewFSWriter creates a writer on top of fs.
func NewFSWriter(fs afero.Fs, opts ...Option) *FSWriter {
	w := &FSWriter{
		fs:   fs,
		mode: DefaultFileMode,
		log:  logger.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// NewOSWriter creates a writer on the real filesystem.
func NewOSWriter(opts ...Option) *FSWriter {
	return NewFSWriter(afero.NewOsFs(), opts...)
}

// WriteFile writes data to path in a single call.
func (w *FSWriter) WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if w.mkdirAll {
		dir := filepath.Dir(path)
		if err := w.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("cannot create directory %s: %w", dir, err)
		}
	}

	if err := afero.WriteFile(w.fs, path, data, w.mode); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	w.log.Debug("wrote file",
		logger.F("path", path),
		logger.F("bytes", len(data)),
	)
	return nil
}

// Exists reports whether path is present on the writer's filesystem.
func (w *FSWriter) Exists(path string) (bool, error) {
	return afero.Exists(w.fs, path)
}
