// Package inline tokenizes the inline content of paragraphs.
//
// The paragraph parser deliberately leaves inline markup untouched. This
// package re-reads a paragraph's content with goldmark to find links, so
// callers get link lists without a second block-level parse of the file.
package inline

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/mdpara/pkg/block"
	"github.com/yaklabco/mdpara/pkg/paragraph"
	"github.com/yaklabco/mdpara/pkg/span"
)

// LinkKind identifies how a link was written.
type LinkKind int

const (
	// LinkInline is a [text](destination "title") link.
	LinkInline LinkKind = iota

	// LinkImage is an ![alt](source) image.
	LinkImage

	// LinkAuto is a <scheme:...> autolink or a bare URL.
	LinkAuto
)

// String returns the name used in reports.
func (k LinkKind) String() string {
	switch k {
	case LinkInline:
		return "link"
	case LinkImage:
		return "image"
	case LinkAuto:
		return "autolink"
	default:
		return fmt.Sprintf("linkkind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k LinkKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *LinkKind) UnmarshalText(text []byte) error {
	for _, kind := range []LinkKind{LinkInline, LinkImage, LinkAuto} {
		if kind.String() == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown link kind %q", text)
}

// Link is one link found in paragraph content.
type Link struct {
	Kind        LinkKind `json:"kind"`
	Destination string   `json:"destination"`
	Title       string   `json:"title,omitempty"`
	Text        string   `json:"text,omitempty"`
}

// Extractor finds links in paragraph content. It is safe for concurrent use.
type Extractor struct {
	md goldmark.Markdown
}

// NewExtractor creates an Extractor. Bare URLs are recognised as autolinks.
func NewExtractor() *Extractor {
	return &Extractor{
		md: goldmark.New(goldmark.WithExtensions(extension.Linkify)),
	}
}

// Links returns the links in content in source order.
func (e *Extractor) Links(content span.Span) []Link {
	if content.IsBlank() {
		return nil
	}

	source := []byte(content.String())
	doc := e.md.Parser().Parse(text.NewReader(source), parser.WithContext(parser.NewContext()))

	var links []Link
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Link:
			links = append(links, Link{
				Kind:        LinkInline,
				Destination: string(n.Destination),
				Title:       string(n.Title),
				Text:        nodeText(n, source),
			})
			return ast.WalkSkipChildren, nil
		case *ast.Image:
			links = append(links, Link{
				Kind:        LinkImage,
				Destination: string(n.Destination),
				Title:       string(n.Title),
				Text:        nodeText(n, source),
			})
			return ast.WalkSkipChildren, nil
		case *ast.AutoLink:
			links = append(links, Link{
				Kind:        LinkAuto,
				Destination: string(n.URL(source)),
				Text:        string(n.Label(source)),
			})
		}
		return ast.WalkContinue, nil
	})

	return links
}

// ParagraphLinks returns the links of a paragraph. Code paragraphs have none.
func (e *Extractor) ParagraphLinks(p *paragraph.Paragraph) []Link {
	if p.Kind == block.Code || p.Kind == block.HorizontalRule {
		return nil
	}
	return e.Links(p.Content)
}

// nodeText concatenates the literal text below node.
func nodeText(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}
