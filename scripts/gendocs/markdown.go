package main

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// MarkdownWriter accumulates a markdown document.
type MarkdownWriter struct {
	buf bytes.Buffer
}

// NewMarkdownWriter creates an empty writer.
func NewMarkdownWriter() *MarkdownWriter {
	return &MarkdownWriter{}
}

// Frontmatter writes a YAML frontmatter block.
func (w *MarkdownWriter) Frontmatter(title, description string) {
	fmt.Fprintf(&w.buf, "---\ntitle: %s\ndescription: %s\n---\n\n", title, description)
}

// GeneratedMarker notes that the file must not be edited by hand.
func (w *MarkdownWriter) GeneratedMarker() {
	w.buf.WriteString("<!-- Code generated by scripts/gendocs. DO NOT EDIT. -->\n\n")
}

// Header writes a heading of the given level.
func (w *MarkdownWriter) Header(level int, text string) {
	fmt.Fprintf(&w.buf, "%s %s\n\n", strings.Repeat("#", level), text)
}

// Paragraph writes a block of text.
func (w *MarkdownWriter) Paragraph(text string) {
	w.buf.WriteString(strings.TrimSpace(text))
	w.buf.WriteString("\n\n")
}

// CodeBlock writes a fenced code block.
func (w *MarkdownWriter) CodeBlock(lang, code string) {
	fmt.Fprintf(&w.buf, "```%s\n%s\n```\n\n", lang, strings.TrimRight(code, "\n"))
}

// BulletList writes one bullet per item.
func (w *MarkdownWriter) BulletList(items []string) {
	for _, item := range items {
		fmt.Fprintf(&w.buf, "- %s\n", item)
	}
	w.buf.WriteString("\n")
}

// Table writes a markdown table rendered by go-pretty.
func (w *MarkdownWriter) Table(headers []string, rows [][]string) {
	t := table.NewWriter()

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	t.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(row))
		for i, cell := range row {
			r[i] = cell
		}
		t.AppendRow(r)
	}

	w.buf.WriteString(t.RenderMarkdown())
	w.buf.WriteString("\n\n")
}

// Bytes returns the document.
func (w *MarkdownWriter) Bytes() []byte {
	return w.buf.Bytes()
}

// String returns the document.
func (w *MarkdownWriter) String() string {
	return w.buf.String()
}

// InlineCode wraps s in backticks.
func InlineCode(s string) string {
	return "`" + s + "`"
}

// Bold wraps s in double asterisks.
func Bold(s string) string {
	return "**" + s + "**"
}

var whitespace = regexp.MustCompile(`\s+`)

// cleanDescription collapses whitespace for table cells.
func cleanDescription(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}
