package paragraph

import (
	"errors"

	"github.com/yaklabco/mdpara/pkg/block"
	"github.com/yaklabco/mdpara/pkg/span"
	"github.com/yaklabco/mdpara/pkg/table"
)

// DefaultHardBreakSpaces is the number of trailing spaces that ends a paragraph.
const DefaultHardBreakSpaces = 2

// ErrInvalidState reports a classifier or merger bug. Parsing of the input is
// abandoned rather than producing silently wrong structure.
var ErrInvalidState = errors.New("invalid paragrapher state")

// Options controls parsing.
type Options struct {
	// HardBreakSpaces is the trailing space count that forces the next text
	// line into a new paragraph.
	HardBreakSpaces int

	// Lookahead selects how table body rows are read.
	Lookahead table.Lookahead

	// Classifier controls line classification.
	Classifier block.Options
}

// DefaultOptions returns the parsing defaults.
func DefaultOptions() Options {
	return Options{
		HardBreakSpaces: DefaultHardBreakSpaces,
		Lookahead:       table.LookaheadCompat,
		Classifier:      block.DefaultOptions(),
	}
}

func (o Options) hardBreakSpaces() int {
	if o.HardBreakSpaces <= 0 {
		return DefaultHardBreakSpaces
	}
	return o.HardBreakSpaces
}

// Parser turns Markdown text into paragraph groups. It holds no mutable
// state, so one Parser may be used from many goroutines.
type Parser struct {
	opts Options
}

// New creates a Parser with the given options.
func New(opts Options) *Parser {
	return &Parser{opts: opts}
}

// Options returns the parser's options.
func (p *Parser) Options() Options {
	return p.opts
}

// Parse parses text with the default options.
func Parse(text string) (*Group, error) {
	return New(DefaultOptions()).Parse(text)
}

// Parse splits text into physical lines, classifies them and merges them
// into paragraphs. Malformed input never fails; an error is returned only
// when an internal invariant is violated, and always wraps ErrInvalidState.
func (p *Parser) Parse(text string) (*Group, error) {
	buf := span.NewBuffer(text)
	lines := block.ClassifyAll(span.Lines(buf), p.opts.Classifier)

	m := &merger{
		opts:      p.opts,
		lines:     lines,
		effective: make([]block.Kind, len(lines)),
		out:       make([]Paragraph, 0, len(lines)),
	}

	paragraphs, err := m.run()
	if err != nil {
		return nil, err
	}

	return &Group{Source: buf, Paragraphs: paragraphs}, nil
}
