package textbuf

import (
	"context"
	"errors"
	"testing"

	"github.com/simonhull/firebird-suite/quill/logger"
	"github.com/simonhull/firebird-suite/quill/storage"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDiskFull = errors.New("disk full")

func failingWriter() storage.Writer {
	return storage.WriterFunc(func(ctx context.Context, path string, data []byte) error {
		return errDiskFull
	})
}

func memWriter() (*storage.FSWriter, afero.Fs) {
	fs := afero.NewMemMapFs()
	return storage.NewFSWriter(fs, storage.WithLogger(logger.NewSilentLogger())), fs
}

func TestPersist_WritesRenderedOutput(t *testing.T) {
	w, fs := memWriter()

	buf := NewWithConfig(Config{CommentPattern: "#", Header: "#!/bin/sh", Footer: "# end"})
	buf.WriteLine("set -e", 0)

	require.NoError(t, buf.Persist(context.Background(), w, "/out/setup.sh", nil))

	data, err := afero.ReadFile(fs, "/out/setup.sh")
	require.NoError(t, err)
	assert.Equal(t, buf.String(), string(data))
	assert.Equal(t, "#!/bin/sh\nset -e\n\n# end", string(data))
}

func TestPersist_FailureGoesToHandler(t *testing.T) {
	buf := New()
	buf.WriteLine("x", 0)

	var got error
	calls := 0
	err := buf.Persist(context.Background(), failingWriter(), "x.go", func(err error) {
		calls++
		got = err
	})

	assert.NoError(t, err, "handled failures must not also be returned")
	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, got, errDiskFull)
}

func TestPersist_FailureWithoutHandlerIsReturned(t *testing.T) {
	buf := New()

	err := buf.Persist(context.Background(), failingWriter(), "x.go", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, errDiskFull)
	assert.Contains(t, err.Error(), "x.go")
}

func TestMustPersist_PanicsOnFailure(t *testing.T) {
	buf := New()

	assert.Panics(t, func() {
		buf.MustPersist(context.Background(), failingWriter(), "x.go")
	})

	w, _ := memWriter()
	assert.NotPanics(t, func() {
		buf.MustPersist(context.Background(), w, "x.go")
	})
}

func TestPersist_CanceledContext(t *testing.T) {
	w, fs := memWriter()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New().Persist(ctx, w, "x.go", nil)

	assert.ErrorIs(t, err, context.Canceled)
	exists, _ := afero.Exists(fs, "x.go")
	assert.False(t, exists)
}

func TestPersistAsync_WritesSnapshot(t *testing.T) {
	_, fs := memWriter()
	inner := storage.NewFSWriter(fs, storage.WithLogger(logger.NewSilentLogger()))

	release := make(chan struct{})
	blocking := storage.WriterFunc(func(ctx context.Context, path string, data []byte) error {
		<-release
		return inner.WriteFile(ctx, path, data)
	})

	buf := New()
	buf.WriteLine("before", 0)

	done := buf.PersistAsync(context.Background(), blocking, "snap.txt", nil)

	buf.WriteLine("after", 0)
	buf.SetHeader("changed")
	close(release)

	err, ok := <-done
	assert.False(t, ok, "channel closes without a value on success")
	assert.NoError(t, err)

	data, err := afero.ReadFile(fs, "snap.txt")
	require.NoError(t, err)
	assert.Equal(t, "\nbefore\n\n", string(data))
}

func TestPersistAsync_ErrorRouting(t *testing.T) {
	t.Run("without handler", func(t *testing.T) {
		done := New().PersistAsync(context.Background(), failingWriter(), "x.go", nil)

		err := <-done
		assert.ErrorIs(t, err, errDiskFull)

		_, ok := <-done
		assert.False(t, ok)
	})

	t.Run("with handler", func(t *testing.T) {
		handled := make(chan error, 1)
		done := New().PersistAsync(context.Background(), failingWriter(), "x.go", func(err error) {
			handled <- err
		})

		_, ok := <-done
		assert.False(t, ok, "handled failures are not sent on the channel")
		assert.ErrorIs(t, <-handled, errDiskFull)
	})
}
