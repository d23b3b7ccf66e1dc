package span_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpara/pkg/span"
)

func TestLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{"empty content", "", []string{""}},
		{"single line no newline", "hello", []string{"hello"}},
		{"single line with LF", "hello\n", []string{"hello", ""}},
		{"single line with CRLF", "hello\r\n", []string{"hello", ""}},
		{"multiple lines LF", "line1\nline2\nline3", []string{"line1", "line2", "line3"}},
		{"multiple lines CRLF", "line1\r\nline2\r\n", []string{"line1", "line2", ""}},
		{"only newline", "\n", []string{"", ""}},
		{"blank line between", "a\n\nb", []string{"a", "", "b"}},
		{"lone carriage return kept", "a\rb", []string{"a\rb"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			lines := span.Lines(span.NewBuffer(testCase.content))

			got := make([]string, 0, len(lines))
			for _, line := range lines {
				got = append(got, line.String())
			}
			assert.Equal(t, testCase.expected, got)
		})
	}
}

func TestLines_OffsetsPointIntoBuffer(t *testing.T) {
	t.Parallel()

	buf := span.NewBuffer("ab\r\ncd\nef")
	lines := span.Lines(buf)
	require.Len(t, lines, 3)

	assert.Equal(t, 0, lines[0].Start())
	assert.Equal(t, 2, lines[0].End())
	assert.Equal(t, 4, lines[1].Start())
	assert.Equal(t, 7, lines[2].Start())
	for _, line := range lines {
		assert.Same(t, buf, line.Buffer())
	}
}

func TestRejoin(t *testing.T) {
	t.Parallel()

	buf := span.NewBuffer("first\nsecond\nthird")
	lines := span.Lines(buf)

	joined, err := span.Rejoin(lines[0], lines[1])
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond", joined.String())

	joined, err = span.Rejoin(joined, lines[2])
	require.NoError(t, err)
	assert.Equal(t, buf.String(), joined.String(), "rejoin of all lines reproduces the input")
	assert.Equal(t, 0, joined.Start())
	assert.Equal(t, buf.Len(), joined.End())
}

func TestRejoin_ForeignBuffer(t *testing.T) {
	t.Parallel()

	a := span.NewBuffer("one").Span()
	b := span.NewBuffer("two").Span()

	_, err := span.Rejoin(a, b)
	require.ErrorIs(t, err, span.ErrForeignBuffer)
}

func TestSpan_Sub(t *testing.T) {
	t.Parallel()

	s := span.New(span.NewBuffer("0123456789"), 2, 6) // "234567"
	require.Equal(t, "234567", s.String())

	assert.Equal(t, "4567", s.Slice(2).String())
	assert.Equal(t, "34", s.Sub(1, 3).String())
	assert.Equal(t, "", s.Slice(10).String(), "slice past end is empty")
	assert.Equal(t, "234567", s.Sub(-3, 99).String(), "bounds are clamped")
	assert.Equal(t, 4, s.Slice(2).Start())
}

func TestNew_Clamps(t *testing.T) {
	t.Parallel()

	buf := span.NewBuffer("abc")
	assert.Equal(t, "bc", span.New(buf, 1, 10).String())
	assert.Equal(t, "", span.New(buf, 5, 1).String())
	assert.Equal(t, "ab", span.New(buf, -1, 2).String())
}

func TestSpan_Whitespace(t *testing.T) {
	t.Parallel()

	s := span.NewBuffer("   text  ").Span()
	assert.Equal(t, 3, s.LeadingSpaces())
	assert.Equal(t, 2, s.TrailingSpaces())
	assert.Equal(t, "text", s.TrimSpace().String())
	assert.False(t, s.IsBlank())

	blank := span.NewBuffer(" \t ").Span()
	assert.True(t, blank.IsBlank())
	assert.Equal(t, 3, span.NewBuffer("   ").Span().TrailingSpaces())
	assert.True(t, blank.TrimSpace().IsEmpty())

	var zero span.Span
	assert.True(t, zero.IsBlank())
	assert.Equal(t, "", zero.String())
}

func TestSpan_SplitByte(t *testing.T) {
	t.Parallel()

	s := span.NewBuffer("a|b||c").Span()
	parts := s.SplitByte('|')

	got := make([]string, 0, len(parts))
	for _, p := range parts {
		got = append(got, p.String())
	}
	assert.Equal(t, []string{"a", "b", "", "c"}, got)
	assert.Equal(t, 3, s.CountByte('|'))
	assert.Equal(t, 1, s.IndexByte('|'))
	assert.False(t, s.ContainsByte('x'))

	single := span.NewBuffer("abc").Span().SplitByte('|')
	require.Len(t, single, 1)
	assert.Equal(t, "abc", single[0].String())
}
