package block_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpara/pkg/block"
	"github.com/yaklabco/mdpara/pkg/span"
)

func classify(text string) block.Line {
	return block.Classify(span.NewBuffer(text).Span())
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		line    string
		kind    block.Kind
		content string
		level   int
		ordinal int
	}{
		{name: "plain text", line: "hello world", kind: block.Text, content: "hello world"},
		{name: "empty", line: "", kind: block.Empty},
		{name: "spaces only", line: "    ", kind: block.Empty},
		{name: "tabs only", line: "\t \t", kind: block.Empty},
		{name: "indented code", line: "    x := 1", kind: block.Code, content: "x := 1"},
		{name: "deeply indented code keeps extra indent", line: "      y", kind: block.Code, content: "  y"},
		{name: "tab code", line: "\tcode", kind: block.Code, content: "code"},
		{name: "quote", line: "> quoted", kind: block.Quote, content: "quoted", level: 1},
		{name: "nested quote", line: ">> deep", kind: block.Quote, content: "deep", level: 2},
		{name: "spaced nested quote", line: "> > > deeper", kind: block.Quote, content: "deeper", level: 3},
		{name: "star bullet", line: "* item", kind: block.Bullet, content: "item"},
		{name: "dash bullet", line: "- item", kind: block.Bullet, content: "item"},
		{name: "plus bullet", line: "+ item", kind: block.Bullet, content: "item"},
		{name: "indented bullet", line: "  * sub", kind: block.Bullet, content: "sub", level: 1},
		{name: "star without space is text", line: "*emphasis*", kind: block.Text, content: "*emphasis*"},
		{name: "lone dash is text", line: "-", kind: block.Text, content: "-"},
		{name: "numbered", line: "1. first", kind: block.Numbered, content: "first", ordinal: 1},
		{name: "multi digit numbered", line: "42. answer", kind: block.Numbered, content: "answer", ordinal: 42},
		{name: "indented numbered", line: " 3. x", kind: block.Numbered, content: "x", ordinal: 3, level: 1},
		{name: "number without dot is text", line: "2016 was a year", kind: block.Text, content: "2016 was a year"},
		{name: "number dot without space is text", line: "3.14", kind: block.Text, content: "3.14"},
		{name: "header", line: "# Title", kind: block.Header, content: "Title", level: 1},
		{name: "deep header", line: "### Sub", kind: block.Header, content: "Sub", level: 3},
		{name: "header without space", line: "##Tight", kind: block.Header, content: "Tight", level: 2},
		{name: "dash rule", line: "---", kind: block.HorizontalRule, content: "---"},
		{name: "star rule", line: "*****", kind: block.HorizontalRule, content: "*****"},
		{name: "underscore rule", line: "___", kind: block.HorizontalRule, content: "___"},
		{name: "spaced rule", line: "* * *", kind: block.HorizontalRule, content: "* * *"},
		{name: "two dashes is text", line: "--", kind: block.Text, content: "--"},
		{name: "mixed rule chars is text", line: "-*-", kind: block.Text, content: "-*-"},
		{name: "table delimiter", line: ":---|:---|--", kind: block.TableDelimiter, content: ":---|:---|--"},
		{name: "table delimiter with outer pipes", line: "|:-:|:-:|", kind: block.TableDelimiter, content: "|:-:|:-:|"},
		{name: "colon-only delimiter", line: ":|:|:", kind: block.TableDelimiter, content: ":|:|:"},
		{name: "lone pipe is text", line: "|", kind: block.Text, content: "|"},
		{name: "table row is text", line: "a | b", kind: block.Text, content: "a | b"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			line := classify(testCase.line)

			assert.Equal(t, testCase.kind, line.Kind, "kind")
			if testCase.kind != block.Empty {
				assert.Equal(t, testCase.content, line.Content().String(), "content")
			}
			assert.Equal(t, testCase.level, line.Level, "level")
			assert.Equal(t, testCase.ordinal, line.Ordinal, "ordinal")
		})
	}
}

func TestClassify_Whitespace(t *testing.T) {
	t.Parallel()

	line := classify("  text  ")
	assert.Equal(t, 2, line.LeadingSpaces)
	assert.Equal(t, 2, line.TrailingSpaces)
	assert.Equal(t, 0, line.MarkerLength)
	assert.Equal(t, "  text  ", line.Content().String(), "whitespace is preserved for text")
}

func TestClassifyAll_Fences(t *testing.T) {
	t.Parallel()

	buf := span.NewBuffer("intro\n```go\nfunc main() {\n\n}\n```\nafter")
	lines := block.ClassifyAll(span.Lines(buf), block.DefaultOptions())
	require.Len(t, lines, 7)

	want := []block.Kind{
		block.Text, block.Code, block.Code, block.Code, block.Code, block.Code, block.Text,
	}
	for i, kind := range want {
		assert.Equal(t, kind, lines[i].Kind, "line %d", i)
	}

	assert.True(t, lines[1].Content().IsEmpty(), "opening fence strips to nothing")
	assert.Equal(t, "func main() {", lines[2].Content().String())
	assert.True(t, lines[5].Content().IsEmpty(), "closing fence strips to nothing")
}

func TestClassifyAll_UnclosedFenceRunsToEnd(t *testing.T) {
	t.Parallel()

	buf := span.NewBuffer("~~~\n# not a header\n- not a bullet")
	lines := block.ClassifyAll(span.Lines(buf), block.DefaultOptions())

	for i, line := range lines {
		assert.Equal(t, block.Code, line.Kind, "line %d", i)
	}
}

func TestClassifyAll_FenceMismatchDoesNotClose(t *testing.T) {
	t.Parallel()

	buf := span.NewBuffer("````\n```\n~~~~\n````\ntext")
	lines := block.ClassifyAll(span.Lines(buf), block.DefaultOptions())

	assert.Equal(t, block.Code, lines[1].Kind)
	assert.Equal(t, "```", lines[1].Content().String(), "shorter fence is content")
	assert.Equal(t, "~~~~", lines[2].Content().String(), "other fence char is content")
	assert.Equal(t, block.Code, lines[3].Kind)
	assert.Equal(t, block.Text, lines[4].Kind)
}

func TestClassifyAll_FencesDisabled(t *testing.T) {
	t.Parallel()

	opts := block.DefaultOptions()
	opts.FencedCode = false

	lines := block.ClassifyAll(span.Lines(span.NewBuffer("```\n# title")), opts)
	assert.Equal(t, block.Text, lines[0].Kind)
	assert.Equal(t, block.Header, lines[1].Kind)
}

func TestClassifyAll_CustomCodeIndent(t *testing.T) {
	t.Parallel()

	opts := block.Options{CodeIndent: 2}
	lines := block.ClassifyAll(span.Lines(span.NewBuffer("  code\n text")), opts)

	assert.Equal(t, block.Code, lines[0].Kind)
	assert.Equal(t, "code", lines[0].Content().String())
	assert.Equal(t, block.Text, lines[1].Kind)
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	for _, kind := range block.Kinds() {
		parsed, err := block.ParseKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	_, err := block.ParseKind("paragraph")
	require.Error(t, err)
	assert.Equal(t, "kind(99)", block.Kind(99).String())
}

func TestKind_StartsBlock(t *testing.T) {
	t.Parallel()

	starts := map[block.Kind]bool{
		block.Bullet: true, block.Numbered: true, block.Header: true,
		block.Code: true, block.HorizontalRule: true, block.Quote: true,
	}
	for _, kind := range block.Kinds() {
		assert.Equal(t, starts[kind], kind.StartsBlock(), kind.String())
	}
}
