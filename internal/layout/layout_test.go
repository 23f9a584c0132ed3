package layout

import (
	"errors"
	"strings"
	"testing"

	"github.com/simonhull/firebird-suite/quill/textbuf"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rule = strings.Repeat("-", 32)

func TestParse_ConfigSource(t *testing.T) {
	doc := `
buffer:
  comment_pattern: "#"
  header: "#!/bin/sh"
  footer: "# end"
blocks:
  - section: Setup
  - line: "set -e"
    indent: 1
  - comment: "done"
  - blank: true
`
	l, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, l.Blocks, 4)

	buf, err := l.Build(textbuf.DefaultConfig())
	require.NoError(t, err)

	want := "#!/bin/sh\n" +
		"\n\n# Setup\n# " + rule + "\n\n" +
		"\tset -e\n" +
		"# done\n" +
		"\n# end"
	assert.Equal(t, want, buf.String())
}

func TestParse_ScalarSourceSeedsContent(t *testing.T) {
	doc := `
buffer: "package main\n"
blocks:
  - line: "func main() {}"
`
	l, err := Parse([]byte(doc))
	require.NoError(t, err)

	buf, err := l.Build(textbuf.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, "\npackage main\nfunc main() {}\n\n", buf.String())
	assert.Empty(t, buf.CommentPattern())
}

func TestParse_UnrecognizedSourceFallsBackToEmpty(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"sequence", "[1, 2, 3]"},
		{"int", "42"},
		{"bool", "true"},
		{"float", "3.14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := "buffer: " + tt.source + "\nblocks:\n  - comment: x\n"
			l, err := Parse([]byte(doc))
			require.NoError(t, err)

			buf, err := l.Build(textbuf.DefaultConfig())
			require.NoError(t, err)

			assert.Equal(t, "\n x\n", buf.String())
			assert.Empty(t, buf.CommentPattern())
		})
	}
}

func TestParse_QuotedScalarIsContent(t *testing.T) {
	l, err := Parse([]byte("buffer: \"42\"\n"))
	require.NoError(t, err)

	buf, err := l.Build(textbuf.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, "42", buf.Content())
}

func TestParse_NullSourceUsesDefaults(t *testing.T) {
	l, err := Parse([]byte("buffer: ~\nblocks:\n  - comment: x\n"))
	require.NoError(t, err)

	buf, err := l.Build(textbuf.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, "\n// x\n", buf.String())
}

func TestBuild_MissingSourceUsesDefaults(t *testing.T) {
	l, err := Parse([]byte("blocks:\n  - comment: hi\n"))
	require.NoError(t, err)

	buf, err := l.Build(textbuf.Config{CommentPattern: "--"})
	require.NoError(t, err)

	assert.Equal(t, "-- hi", buf.Content())
}

func TestBuild_TextAndBareIndent(t *testing.T) {
	doc := `
blocks:
  - indent: 2
  - text: "raw"
  - text: "more"
    indent: 1
`
	l, err := Parse([]byte(doc))
	require.NoError(t, err)

	buf, err := l.Build(textbuf.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, "\t\traw\tmore", buf.Content())
}

func TestParse_RejectsAmbiguousBlocks(t *testing.T) {
	doc := `
blocks:
  - line: ok
  - line: a
    comment: b
  - section: s
    text: t
    blank: true
`
	_, err := Parse([]byte(doc))
	require.Error(t, err)

	assert.True(t, errors.Is(err, ErrInvalidBlock))

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 2)
	assert.Equal(t, "blocks[1]", verrs[0].Field)
	assert.Contains(t, verrs[0].Message, "line, comment")
	assert.Equal(t, "blocks[2]", verrs[1].Field)
	assert.Greater(t, verrs[1].Line, 0)
	assert.Contains(t, err.Error(), "found 2 validation errors")
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("blocks: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParse_BadBufferConfig(t *testing.T) {
	_, err := Parse([]byte("buffer:\n  header: [a, b]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "buffer config")
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "layouts/a.yml", []byte("blocks:\n  - line: hi\n"), 0644))

	l, err := Load(fs, "layouts/a.yml")
	require.NoError(t, err)
	require.Len(t, l.Blocks, 1)

	_, err = Load(fs, "layouts/missing.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layout file not found")
}
