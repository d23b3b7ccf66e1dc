package block

import "github.com/yaklabco/mdpara/pkg/span"

// fence describes an open ``` or ~~~ code fence.
type fence struct {
	char   byte
	length int
	indent int
	info   string
}

// detectFence reports whether src opens a code fence.
func detectFence(src span.Span, opts Options) (fence, bool) {
	lead := src.LeadingSpaces()
	if lead >= opts.codeIndent() || lead >= src.Len() {
		return fence{}, false
	}

	rest := src.Slice(lead)
	c := rest.At(0)
	if c != '`' && c != '~' {
		return fence{}, false
	}

	count := 0
	for count < rest.Len() && rest.At(count) == c {
		count++
	}
	if count < minFenceLength {
		return fence{}, false
	}

	info := rest.Slice(count).TrimSpace()
	// A backtick fence's info string may not itself contain backticks.
	if c == '`' && info.ContainsByte('`') {
		return fence{}, false
	}

	return fence{char: c, length: count, indent: lead, info: info.String()}, true
}

// closes reports whether src closes the open fence.
func closes(src span.Span, open fence, opts Options) bool {
	f, ok := detectFence(src, opts)
	return ok && f.char == open.char && f.length >= open.length && f.info == ""
}

// fencedLine classifies a line that belongs to an open fence.
func fencedLine(src span.Span, open fence) Line {
	lead := src.LeadingSpaces()
	return Line{
		Source:         src,
		Kind:           Code,
		LeadingSpaces:  lead,
		TrailingSpaces: src.TrailingSpaces(),
		MarkerLength:   min(lead, open.indent),
	}
}
