package textbuf

import (
	"strings"
)

// DefaultCommentPattern is the comment token used by New.
const DefaultCommentPattern = "//"

// sectionRule is the divider written under every section heading.
var sectionRule = strings.Repeat("-", 32)

// Config holds the optional settings for a Buffer.
// Omitted fields are empty, including CommentPattern.
type Config struct {
	CommentPattern string `yaml:"comment_pattern"`
	Header         string `yaml:"header"`
	Footer         string `yaml:"footer"`
}

// DefaultConfig returns the configuration used by New.
func DefaultConfig() Config {
	return Config{CommentPattern: DefaultCommentPattern}
}

// Buffer accumulates generated text.
type Buffer struct {
	content        strings.Builder
	commentPattern string
	header         string
	footer         string
}

// New creates an empty buffer with DefaultConfig.
func New() *Buffer {
	return NewWithConfig(DefaultConfig())
}

// NewWithContent creates a buffer seeded with content.
// The comment pattern, header and footer are left empty.
func NewWithContent(content string) *Buffer {
	b := &Buffer{}
	b.content.WriteString(content)
	return b
}

// NewWithConfig creates an empty buffer using cfg.
func NewWithConfig(cfg Config) *Buffer {
	return &Buffer{
		commentPattern: cfg.CommentPattern,
		header:         cfg.Header,
		footer:         cfg.Footer,
	}
}

// Indent writes count tab characters. Zero or negative counts write nothing.
func (b *Buffer) Indent(count int) {
	if count > 0 {
		b.Write(strings.Repeat("\t", count))
	}
}

// SetHeader replaces the header.
func (b *Buffer) SetHeader(header string) {
	b.header = header
}

// SetFooter replaces the footer.
func (b *Buffer) SetFooter(footer string) {
	b.footer = footer
}

// SetCommentPattern replaces the comment token used by later comment writes.
func (b *Buffer) SetCommentPattern(pattern string) {
	b.commentPattern = pattern
}

// Header returns the current header.
func (b *Buffer) Header() string { return b.header }

// Footer returns the current footer.
func (b *Buffer) Footer() string { return b.footer }

// CommentPattern returns the current comment token.
func (b *Buffer) CommentPattern() string { return b.commentPattern }

// Content returns the accumulated body without header or footer.
func (b *Buffer) Content() string { return b.content.String() }

// Len returns the length of the accumulated body in bytes.
func (b *Buffer) Len() int { return b.content.Len() }

// Write appends text verbatim.
func (b *Buffer) Write(text string) {
	b.content.WriteString(text)
}

// WriteLine writes indent tabs, text and a newline.
func (b *Buffer) WriteLine(text string, indent int) {
	b.Indent(indent)
	b.Write(text + "\n")
}

// WriteComment writes the comment pattern, a space and text.
// No newline is written.
func (b *Buffer) WriteComment(text string) {
	b.Write(b.comment(text))
}

// WriteNewSection writes two blank lines, an indented heading comment,
// an indented divider comment and one more blank line.
func (b *Buffer) WriteNewSection(heading string, indent int) {
	b.Write("\n\n")
	b.Indent(indent)
	b.Write(b.comment(heading) + "\n")
	b.Indent(indent)
	b.Write(b.comment(sectionRule) + "\n\n")
}

// String renders header, content and footer separated by newlines.
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.Grow(len(b.header) + b.content.Len() + len(b.footer) + 2)
	sb.WriteString(b.header)
	sb.WriteByte('\n')
	sb.WriteString(b.content.String())
	sb.WriteByte('\n')
	sb.WriteString(b.footer)
	return sb.String()
}

func (b *Buffer) comment(text string) string {
	return b.commentPattern + " " + text
}
