package block

import (
	"strconv"

	"github.com/yaklabco/mdpara/pkg/span"
)

// Classification constants.
const (
	// DefaultCodeIndent is the number of leading spaces that makes a line code.
	DefaultCodeIndent = 4

	minRuleLength    = 3
	maxOrdinalDigits = 9
	minFenceLength   = 3
)

// Line is one classified physical line. It is immutable once produced.
type Line struct {
	// Source is the full physical line, marker included.
	Source span.Span

	// Kind is the block classification.
	Kind Kind

	// LeadingSpaces and TrailingSpaces count ' ' bytes at either end of Source.
	LeadingSpaces  int
	TrailingSpaces int

	// MarkerLength is the length of the structural prefix (indentation plus
	// "> ", "* ", "12. ", "## ", ...) stripped before display.
	MarkerLength int

	// Level is the nesting depth: quote depth, header depth, or list indentation.
	Level int

	// Ordinal is the list number of a Numbered line.
	Ordinal int
}

// Content returns the line with its marker stripped.
func (l Line) Content() span.Span {
	return l.Source.Slice(l.MarkerLength)
}

// Options controls classification.
type Options struct {
	// CodeIndent is the indentation width, in spaces, of an indented code line.
	CodeIndent int

	// FencedCode enables tracking of ``` and ~~~ fences in ClassifyAll.
	FencedCode bool
}

// DefaultOptions returns the classification defaults.
func DefaultOptions() Options {
	return Options{
		CodeIndent: DefaultCodeIndent,
		FencedCode: true,
	}
}

func (o Options) codeIndent() int {
	if o.CodeIndent <= 0 {
		return DefaultCodeIndent
	}
	return o.CodeIndent
}

// Classify classifies one physical line using the default options.
// It never fails; anything unrecognised is Text.
func Classify(line span.Span) Line {
	return classify(line, DefaultOptions())
}

// ClassifyAll classifies every line in order. Unlike Classify it tracks state
// across lines so that fenced code blocks are recognised when enabled.
func ClassifyAll(lines []span.Span, opts Options) []Line {
	out := make([]Line, len(lines))

	var open fence
	for i, src := range lines {
		if !opts.FencedCode {
			out[i] = classify(src, opts)
			continue
		}

		if open.length > 0 {
			out[i] = fencedLine(src, open)
			if closes(src, open, opts) {
				out[i].MarkerLength = src.Len()
				open = fence{}
			}
			continue
		}

		if f, ok := detectFence(src, opts); ok {
			open = f
			out[i] = fencedLine(src, open)
			out[i].MarkerLength = src.Len()
			continue
		}

		out[i] = classify(src, opts)
	}

	return out
}

func classify(src span.Span, opts Options) Line {
	line := Line{
		Source:         src,
		Kind:           Text,
		LeadingSpaces:  src.LeadingSpaces(),
		TrailingSpaces: src.TrailingSpaces(),
	}

	if src.IsBlank() {
		line.Kind = Empty
		return line
	}

	lead := line.LeadingSpaces
	indent := opts.codeIndent()

	switch {
	case lead >= indent:
		line.Kind = Code
		line.MarkerLength = indent
		return line
	case src.At(lead) == '\t':
		line.Kind = Code
		line.MarkerLength = lead + 1
		return line
	}

	rest := src.Slice(lead)

	switch {
	case rest.At(0) == '>':
		classifyQuote(&line, rest)
	case isDelimiterShape(rest):
		line.Kind = TableDelimiter
	case isHorizontalRule(rest):
		line.Kind = HorizontalRule
	case isBulletMarker(rest):
		line.Kind = Bullet
		line.MarkerLength = lead + 2
		line.Level = listLevel(lead)
	case rest.At(0) == '#':
		classifyHeader(&line, rest)
	default:
		classifyNumbered(&line, rest)
	}

	return line
}

func classifyQuote(line *Line, rest span.Span) {
	i := 0
	for i < rest.Len() && (rest.At(i) == '>' || rest.At(i) == ' ') {
		if rest.At(i) == '>' {
			line.Level++
		}
		i++
	}
	line.Kind = Quote
	line.MarkerLength = line.LeadingSpaces + i
}

func classifyHeader(line *Line, rest span.Span) {
	hashes := 0
	for hashes < rest.Len() && rest.At(hashes) == '#' {
		hashes++
	}
	end := hashes
	for end < rest.Len() && isBlank(rest.At(end)) {
		end++
	}
	line.Kind = Header
	line.Level = hashes
	line.MarkerLength = line.LeadingSpaces + end
}

// classifyNumbered marks "12. item" lines; anything else stays Text.
func classifyNumbered(line *Line, rest span.Span) {
	digits := 0
	for digits < rest.Len() && digits <= maxOrdinalDigits && isDigit(rest.At(digits)) {
		digits++
	}
	if digits == 0 || digits > maxOrdinalDigits {
		return
	}
	if digits+1 >= rest.Len() || rest.At(digits) != '.' || !isBlank(rest.At(digits+1)) {
		return
	}

	ordinal, err := strconv.Atoi(rest.Sub(0, digits).String())
	if err != nil {
		return
	}

	line.Kind = Numbered
	line.Ordinal = ordinal
	line.MarkerLength = line.LeadingSpaces + digits + 2
	line.Level = listLevel(line.LeadingSpaces)
}

func isBulletMarker(rest span.Span) bool {
	switch rest.At(0) {
	case '*', '-', '+':
		return rest.Len() > 1 && isBlank(rest.At(1))
	default:
		return false
	}
}

// isHorizontalRule matches three or more of one rule character, optionally
// separated by blanks, e.g. "---", "***", "_ _ _".
func isHorizontalRule(rest span.Span) bool {
	c := rest.At(0)
	if c != '-' && c != '*' && c != '_' {
		return false
	}

	count := 0
	for i := range rest.Len() {
		switch b := rest.At(i); {
		case b == c:
			count++
		case isBlank(b):
		default:
			return false
		}
	}
	return count >= minRuleLength
}

// isDelimiterShape matches a line made only of pipes, colons, dashes and
// blanks that has at least one pipe and one colon or dash.
func isDelimiterShape(rest span.Span) bool {
	var pipe, mark bool
	for i := range rest.Len() {
		switch b := rest.At(i); {
		case b == '|':
			pipe = true
		case b == ':' || b == '-':
			mark = true
		case isBlank(b):
		default:
			return false
		}
	}
	return pipe && mark
}

func listLevel(lead int) int {
	if lead == 0 {
		return 0
	}
	return 1
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
