// Package docparse splits a markdown document into its level-2 sections
// using the goldmark AST, for section-level comparison of documents.
package docparse

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Section is one "## Heading" block and the raw text under it.
type Section struct {
	Heading string
	Body    string
}

// Parser extracts sections from markdown documents.
type Parser struct {
	markdown goldmark.Markdown
}

func New() *Parser {
	return &Parser{markdown: goldmark.New()}
}

// Sections returns every level-2 section in document order. Text before the
// first level-2 heading is ignored.
func (p *Parser) Sections(content string) []Section {
	source := []byte(content)
	root := p.markdown.Parser().Parse(text.NewReader(source))

	type marker struct {
		heading string
		start   int
	}
	var markers []marker

	for node := root.FirstChild(); node != nil; node = node.NextSibling() {
		h, ok := node.(*ast.Heading)
		if !ok || h.Level != 2 {
			continue
		}
		lines := h.Lines()
		if lines.Len() == 0 {
			continue
		}
		seg := lines.At(0)
		markers = append(markers, marker{
			heading: strings.TrimSpace(string(source[seg.Start:seg.Stop])),
			start:   seg.Stop,
		})
	}

	sections := make([]Section, 0, len(markers))
	for i, m := range markers {
		end := len(content)
		if i+1 < len(markers) {
			// Body runs up to the next section's heading line.
			next := markers[i+1]
			headingStart := strings.LastIndex(content[:next.start], "\n## ")
			if headingStart >= 0 {
				end = headingStart
			}
		}
		body := ""
		if m.start < end {
			body = strings.TrimSpace(content[m.start:end])
		}
		sections = append(sections, Section{Heading: m.heading, Body: body})
	}
	return sections
}

// SectionMap indexes sections by heading. Later duplicates win.
func (p *Parser) SectionMap(content string) map[string]string {
	out := make(map[string]string)
	for _, s := range p.Sections(content) {
		out[s.Heading] = s.Body
	}
	return out
}
