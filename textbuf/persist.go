package textbuf

import (
	"context"
	"fmt"

	"github.com/simonhull/firebird-suite/quill/storage"
)

// ErrorHandler receives write failures from Persist and PersistAsync.
type ErrorHandler func(err error)

// Persist renders the buffer and writes it to path through w.
//
// If onError is non-nil, a write failure is passed to it and Persist
// returns nil. Otherwise the failure is returned.
func (b *Buffer) Persist(ctx context.Context, w storage.Writer, path string, onError ErrorHandler) error {
	return route(writeRendered(ctx, w, path, b.String()), onError)
}

// PersistAsync renders the buffer immediately and writes the snapshot on a
// separate goroutine. Mutations made after PersistAsync returns do not
// reach the written file.
//
// The returned channel receives the write error, if any, and is then
// closed. When onError is non-nil it receives the failure instead and the
// channel is closed without a value.
func (b *Buffer) PersistAsync(ctx context.Context, w storage.Writer, path string, onError ErrorHandler) <-chan error {
	rendered := b.String()
	done := make(chan error, 1)

	go func() {
		defer close(done)
		if err := route(writeRendered(ctx, w, path, rendered), onError); err != nil {
			done <- err
		}
	}()

	return done
}

// MustPersist is like Persist without a handler but panics on failure.
func (b *Buffer) MustPersist(ctx context.Context, w storage.Writer, path string) {
	if err := b.Persist(ctx, w, path, nil); err != nil {
		panic(err)
	}
}

func writeRendered(ctx context.Context, w storage.Writer, path, rendered string) error {
	if err := w.WriteFile(ctx, path, []byte(rendered)); err != nil {
		return fmt.Errorf("persist %s: %w", path, err)
	}
	return nil
}

func route(err error, onError ErrorHandler) error {
	if err == nil {
		return nil
	}
	if onError != nil {
		onError(err)
		return nil
	}
	return err
}
