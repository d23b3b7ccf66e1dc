// Package paragraph merges classified Markdown lines into typed paragraphs.
//
// Parsing is a single pass over the physical lines of one immutable buffer.
// Each line is classified independently (see package block) and then fed to a
// merge state machine that decides whether the line extends the paragraph
// being accumulated, starts a new one, or is discarded. Tables are assembled
// by a bounded lookahead delegated to package table.
package paragraph

import (
	"iter"

	"github.com/yaklabco/mdpara/pkg/block"
	"github.com/yaklabco/mdpara/pkg/span"
	"github.com/yaklabco/mdpara/pkg/table"
)

// NoPredecessor marks the first paragraph of a group.
const NoPredecessor = -1

// Paragraph is one logical block of merged source lines.
type Paragraph struct {
	// Kind is never block.Empty or block.TableDelimiter.
	Kind block.Kind

	// Content is the merged source text with the structural marker of the
	// first line stripped. Whitespace and inline markup are preserved.
	Content span.Span

	// Level is the nesting depth: quote depth, header depth, or list indentation.
	Level int

	// Ordinal is the list number of a Numbered paragraph.
	Ordinal int

	// Predecessor is the index of the previous paragraph in the group, or
	// NoPredecessor. Renderers use it only to decide spacing.
	Predecessor int

	// Table is set when Kind is block.Table.
	Table *table.Table
}

// Text returns the paragraph content as a string.
func (p *Paragraph) Text() string {
	return p.Content.String()
}

// IsTable reports whether the paragraph is a table.
func (p *Paragraph) IsTable() bool {
	return p.Kind == block.Table && p.Table != nil
}

// Group is the ordered, immutable result of one parse.
type Group struct {
	// Source is the buffer every paragraph's Content points into.
	Source *span.Buffer

	// Paragraphs in source order.
	Paragraphs []Paragraph
}

// Len returns the number of paragraphs.
func (g *Group) Len() int {
	if g == nil {
		return 0
	}
	return len(g.Paragraphs)
}

// At returns paragraph i.
func (g *Group) At(i int) *Paragraph {
	return &g.Paragraphs[i]
}

// All iterates over the paragraphs with their indices.
func (g *Group) All() iter.Seq2[int, *Paragraph] {
	return func(yield func(int, *Paragraph) bool) {
		for i := range g.Len() {
			if !yield(i, &g.Paragraphs[i]) {
				return
			}
		}
	}
}

// Predecessor returns the paragraph before paragraph i, if any.
func (g *Group) Predecessor(i int) (*Paragraph, bool) {
	if i < 0 || i >= g.Len() {
		return nil, false
	}
	prev := g.Paragraphs[i].Predecessor
	if prev == NoPredecessor {
		return nil, false
	}
	return &g.Paragraphs[prev], true
}

// Kinds returns the kind of every paragraph in order.
func (g *Group) Kinds() []block.Kind {
	kinds := make([]block.Kind, 0, g.Len())
	for _, p := range g.All() {
		kinds = append(kinds, p.Kind)
	}
	return kinds
}

// CountByKind returns how many paragraphs there are of each kind.
func (g *Group) CountByKind() map[block.Kind]int {
	counts := make(map[block.Kind]int)
	for _, p := range g.All() {
		counts[p.Kind]++
	}
	return counts
}
