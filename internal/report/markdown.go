package report

import (
	"io"
	"strings"

	md "github.com/nao1215/markdown"
)

// Markdown wraps the markdown package with the fluent subset the report
// writer uses.
type Markdown struct {
	md     *md.Markdown
	writer io.Writer
	buffer *strings.Builder
}

// NewMarkdown creates a markdown builder that writes to w on Build.
func NewMarkdown(w io.Writer) *Markdown {
	return &Markdown{
		md:     md.NewMarkdown(w),
		writer: w,
	}
}

// NewMarkdownBuffer creates a markdown builder backed by an in-memory buffer.
func NewMarkdownBuffer() *Markdown {
	buffer := &strings.Builder{}
	return &Markdown{
		md:     md.NewMarkdown(buffer),
		writer: buffer,
		buffer: buffer,
	}
}

// String returns the buffered content. It is empty until Build runs and for
// builders backed by an external writer.
func (m *Markdown) String() string {
	if m.buffer != nil {
		return m.buffer.String()
	}
	return ""
}

// H1 creates a level 1 header
func (m *Markdown) H1(text string) *Markdown {
	m.md.H1(text)
	return m
}

// H2 creates a level 2 header
func (m *Markdown) H2(text string) *Markdown {
	m.md.H2(text)
	return m
}

// PlainText adds plain text
func (m *Markdown) PlainText(text string) *Markdown {
	m.md.PlainText(text)
	return m
}

// PlainTextf adds formatted plain text
func (m *Markdown) PlainTextf(format string, args ...any) *Markdown {
	m.md.PlainTextf(format, args...)
	return m
}

// LF adds a line feed
func (m *Markdown) LF() *Markdown {
	m.md.LF()
	return m
}

// Image adds an image reference
func (m *Markdown) Image(alt, url string) *Markdown {
	m.md.PlainText(md.Image(alt, url))
	return m
}

// Table adds a markdown table
func (m *Markdown) Table(table md.TableSet) *Markdown {
	m.md.Table(table)
	return m
}

// Blockquote adds a blockquote
func (m *Markdown) Blockquote(text string) *Markdown {
	m.md.Blockquote(text)
	return m
}

// BulletList adds a bullet list
func (m *Markdown) BulletList(items ...string) *Markdown {
	m.md.BulletList(items...)
	return m
}

// HorizontalRule adds a horizontal rule
func (m *Markdown) HorizontalRule() *Markdown {
	m.md.HorizontalRule()
	return m
}

// Build finalizes the markdown document
func (m *Markdown) Build() error {
	return m.md.Build()
}
