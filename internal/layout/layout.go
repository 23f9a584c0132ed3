// Package layout describes one generated file as a YAML list of buffer
// writes and replays it onto a textbuf.Buffer.
//
// A layout is a flat sequence of operations. There are no variables,
// loops or conditionals:
//
//	buffer:
//	  comment_pattern: "#"
//	  header: "#!/bin/sh"
//	blocks:
//	  - section: Setup
//	  - line: "set -e"
//	    indent: 1
package layout

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/simonhull/firebird-suite/quill/textbuf"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrInvalidBlock is wrapped by every block validation error.
var ErrInvalidBlock = errors.New("invalid block")

// Layout is a parsed layout document.
type Layout struct {
	Buffer Source  `yaml:"buffer"`
	Blocks []Block `yaml:"blocks"`
}

// Load reads and parses the layout at path from fs.
func Load(fs afero.Fs, path string) (*Layout, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("layout file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a layout document.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Validate checks every block and reports all problems at once.
func (l *Layout) Validate() error {
	var errs ValidationErrors
	for i, b := range l.Blocks {
		keys := b.keys()
		if len(keys) > 1 {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("blocks[%d]", i),
				Message: fmt.Sprintf("block sets %s; only one is allowed", strings.Join(keys, ", ")),
				Line:    b.line,
			})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Build creates a buffer from the layout's buffer source and replays every
// block onto it. defaults is used only when the layout has no buffer key.
func (l *Layout) Build(defaults textbuf.Config) (*textbuf.Buffer, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	buf := l.Buffer.newBuffer(defaults)
	for _, b := range l.Blocks {
		b.apply(buf)
	}
	return buf, nil
}

type sourceKind int

const (
	sourceUnset sourceKind = iota
	sourceContent
	sourceConfig
	sourceOther
)

// Source is the buffer key of a layout. A string seeds the buffer content,
// a mapping is a textbuf.Config, and any other node yields an empty buffer.
type Source struct {
	kind    sourceKind
	content string
	config  textbuf.Config
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Source) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		// numbers and booleans are not content
		if node.ShortTag() != "!!str" {
			s.kind = sourceOther
			return nil
		}
		s.kind = sourceContent
		s.content = node.Value
	case yaml.MappingNode:
		var cfg textbuf.Config
		if err := node.Decode(&cfg); err != nil {
			return fmt.Errorf("buffer config (line %d): %w", node.Line, err)
		}
		s.kind = sourceConfig
		s.config = cfg
	default:
		s.kind = sourceOther
	}
	return nil
}

func (s Source) newBuffer(defaults textbuf.Config) *textbuf.Buffer {
	switch s.kind {
	case sourceContent:
		return textbuf.NewWithContent(s.content)
	case sourceConfig:
		return textbuf.NewWithConfig(s.config)
	case sourceOther:
		return textbuf.NewWithConfig(textbuf.Config{})
	default:
		return textbuf.NewWithConfig(defaults)
	}
}

// Block is a single buffer write. At most one of Section, Line, Comment,
// Text and Blank may be set; a block with none of them only indents.
type Block struct {
	Section *string `yaml:"section"`
	Line    *string `yaml:"line"`
	Comment *string `yaml:"comment"`
	Text    *string `yaml:"text"`
	Blank   bool    `yaml:"blank"`
	Indent  int     `yaml:"indent"`

	line int
}

// UnmarshalYAML records the source line for validation messages.
func (b *Block) UnmarshalYAML(node *yaml.Node) error {
	type plain Block
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*b = Block(p)
	b.line = node.Line
	return nil
}

func (b Block) keys() []string {
	var keys []string
	if b.Section != nil {
		keys = append(keys, "section")
	}
	if b.Line != nil {
		keys = append(keys, "line")
	}
	if b.Comment != nil {
		keys = append(keys, "comment")
	}
	if b.Text != nil {
		keys = append(keys, "text")
	}
	if b.Blank {
		keys = append(keys, "blank")
	}
	return keys
}

func (b Block) apply(buf *textbuf.Buffer) {
	switch {
	case b.Section != nil:
		buf.WriteNewSection(*b.Section, b.Indent)
	case b.Line != nil:
		buf.WriteLine(*b.Line, b.Indent)
	case b.Comment != nil:
		buf.Indent(b.Indent)
		buf.WriteComment(*b.Comment)
	case b.Text != nil:
		buf.Indent(b.Indent)
		buf.Write(*b.Text)
	case b.Blank:
		buf.WriteLine("", b.Indent)
	default:
		buf.Indent(b.Indent)
	}
}
