// Package span provides zero-copy, read-only views over a single immutable
// text buffer. Every parse owns exactly one Buffer; all Spans produced during
// that parse point into it and never copy character data.
package span

import "errors"

// ErrForeignBuffer is returned when two spans from different buffers are rejoined.
var ErrForeignBuffer = errors.New("spans reference different buffers")

// Buffer is the immutable text that spans view into.
type Buffer struct {
	text string
}

// NewBuffer wraps text in a Buffer.
func NewBuffer(text string) *Buffer {
	return &Buffer{text: text}
}

// Len returns the length of the buffer in bytes.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.text)
}

// String returns the full buffer text.
func (b *Buffer) String() string {
	if b == nil {
		return ""
	}
	return b.text
}

// Span returns a span covering the whole buffer.
func (b *Buffer) Span() Span {
	return Span{buf: b, start: 0, length: b.Len()}
}

// Span is a view of length bytes starting at start within a Buffer.
// The zero Span is empty and belongs to no buffer.
type Span struct {
	buf    *Buffer
	start  int
	length int
}

// New returns the span [start, start+length) of buf, clamped to the buffer bounds.
func New(buf *Buffer, start, length int) Span {
	n := buf.Len()
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	if length < 0 {
		length = 0
	}
	if start+length > n {
		length = n - start
	}
	return Span{buf: buf, start: start, length: length}
}

// Buffer returns the buffer this span views.
func (s Span) Buffer() *Buffer { return s.buf }

// Start returns the offset of the first byte in the buffer.
func (s Span) Start() int { return s.start }

// End returns the offset one past the last byte in the buffer.
func (s Span) End() int { return s.start + s.length }

// Len returns the span length in bytes.
func (s Span) Len() int { return s.length }

// IsEmpty reports whether the span has zero length.
func (s Span) IsEmpty() bool { return s.length == 0 }

// String returns the viewed text. Go strings share backing storage, so no
// character data is copied.
func (s Span) String() string {
	if s.buf == nil {
		return ""
	}
	return s.buf.text[s.start : s.start+s.length]
}

// At returns the byte at index i relative to the span start.
func (s Span) At(i int) byte {
	return s.buf.text[s.start+i]
}

// Slice returns the span with the first from bytes removed.
func (s Span) Slice(from int) Span {
	return s.Sub(from, s.length)
}

// Sub returns the sub-span [from, to) relative to the span start, clamped to the span.
func (s Span) Sub(from, to int) Span {
	if from < 0 {
		from = 0
	}
	if to > s.length {
		to = s.length
	}
	if from > to {
		from = to
	}
	return Span{buf: s.buf, start: s.start + from, length: to - from}
}

// SameBuffer reports whether s and other view the same buffer.
func (s Span) SameBuffer(other Span) bool {
	return s.buf == other.buf
}

// IndexByte returns the index of the first c relative to the span start, or -1.
func (s Span) IndexByte(c byte) int {
	for i := range s.length {
		if s.buf.text[s.start+i] == c {
			return i
		}
	}
	return -1
}

// ContainsByte reports whether c occurs in the span.
func (s Span) ContainsByte(c byte) bool {
	return s.IndexByte(c) >= 0
}

// CountByte returns the number of occurrences of c.
func (s Span) CountByte(c byte) int {
	count := 0
	for i := range s.length {
		if s.buf.text[s.start+i] == c {
			count++
		}
	}
	return count
}

// LeadingSpaces returns the number of ' ' bytes at the start of the span.
func (s Span) LeadingSpaces() int {
	n := 0
	for n < s.length && s.At(n) == ' ' {
		n++
	}
	return n
}

// TrailingSpaces returns the number of ' ' bytes at the end of the span.
func (s Span) TrailingSpaces() int {
	n := 0
	for n < s.length && s.At(s.length-1-n) == ' ' {
		n++
	}
	return n
}

// IsBlank reports whether the span holds only spaces and tabs.
func (s Span) IsBlank() bool {
	for i := range s.length {
		if !isBlank(s.At(i)) {
			return false
		}
	}
	return true
}

// TrimSpace returns the span without leading and trailing whitespace.
func (s Span) TrimSpace() Span {
	from, to := 0, s.length
	for from < to && isSpace(s.At(from)) {
		from++
	}
	for to > from && isSpace(s.At(to-1)) {
		to--
	}
	return s.Sub(from, to)
}

// SplitByte splits the span around each c. Like strings.Split it always
// returns at least one span.
func (s Span) SplitByte(c byte) []Span {
	var parts []Span
	last := 0
	for i := range s.length {
		if s.At(i) == c {
			parts = append(parts, s.Sub(last, i))
			last = i + 1
		}
	}
	return append(parts, s.Sub(last, s.length))
}

// Rejoin returns the span covering both a and b, from the earlier start to the
// later end. Callers pass a before b in source order; everything between the
// two in the buffer becomes part of the result.
func Rejoin(a, b Span) (Span, error) {
	if !a.SameBuffer(b) {
		return Span{}, ErrForeignBuffer
	}
	start := min(a.start, b.start)
	end := max(a.End(), b.End())
	return Span{buf: a.buf, start: start, length: end - start}, nil
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}
