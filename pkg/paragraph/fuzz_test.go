package paragraph_test

import (
	"testing"

	"github.com/yaklabco/mdpara/pkg/block"
	"github.com/yaklabco/mdpara/pkg/paragraph"
	"github.com/yaklabco/mdpara/pkg/table"
)

// FuzzParse fuzzes the parser in both lookahead modes.
func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"\n",
		"Hello, world!",
		"# Heading\n\nParagraph.",
		"* item\n  more\n- item\n  + nested",
		"1. one\n2. two",
		"> quote\n>> deeper",
		"    code\n\tcode",
		"```\nfenced\n```",
		"---\n***\n___",
		"a | b\n--|--\n1 | 2\n3 | 4",
		"a | b\n:-:|--:\n1 | 2",
		"| x |\n||\n| y |",
		"-|-\n|\n:",
		"hard  \nbreak",
		"line1\r\nline2\r\n\r\n",
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	parsers := []*paragraph.Parser{
		paragraph.New(paragraph.DefaultOptions()),
		paragraph.New(paragraph.Options{
			HardBreakSpaces: paragraph.DefaultHardBreakSpaces,
			Lookahead:       table.LookaheadGreedy,
			Classifier:      block.DefaultOptions(),
		}),
	}

	f.Fuzz(func(t *testing.T, input string) {
		for _, p := range parsers {
			group, err := p.Parse(input)
			if err != nil {
				t.Fatalf("Parse(%q) with %v lookahead: %v", input, p.Options().Lookahead, err)
			}

			for i, para := range group.All() {
				if para.Content.IsBlank() {
					t.Errorf("paragraph %d is blank", i)
				}
				if para.Predecessor != i-1 {
					t.Errorf("paragraph %d has predecessor %d", i, para.Predecessor)
				}
				if para.Kind == block.Empty || para.Kind == block.TableDelimiter {
					t.Errorf("paragraph %d has kind %v", i, para.Kind)
				}
				if !para.IsTable() {
					continue
				}
				bounds := para.Table.RowBoundaries
				if len(bounds) < 3 || bounds[0] != 0 {
					t.Errorf("paragraph %d has table boundaries %v", i, bounds)
				}
			}
		}
	})
}
