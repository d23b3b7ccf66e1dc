// Package config defines mdpara's configuration types. Loading, discovery
// and validation live in internal/configloader; this package is plain data
// plus the conversion to parser options.
package config

import (
	"fmt"

	"github.com/yaklabco/mdpara/pkg/block"
	"github.com/yaklabco/mdpara/pkg/paragraph"
	"github.com/yaklabco/mdpara/pkg/table"
)

// OutputFormat selects how parse results are reported.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// ColorMode controls styled output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid reports whether m is a known colour mode.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// ParserConfig holds the paragraph parser settings.
type ParserConfig struct {
	// TableLookahead is "compat" or "greedy".
	TableLookahead string `yaml:"table_lookahead,omitempty"`

	// HardBreakSpaces is the trailing space count that ends a paragraph.
	HardBreakSpaces int `yaml:"hard_break_spaces,omitempty"`

	// CodeIndent is the number of leading spaces that make a code line.
	CodeIndent int `yaml:"code_indent,omitempty"`

	// FencedCode enables ``` and ~~~ fences.
	FencedCode *bool `yaml:"fenced_code,omitempty"`
}

// DetectConfig toggles the post-parse annotations.
type DetectConfig struct {
	CodeLanguage *bool `yaml:"code_language,omitempty"`
	Links        *bool `yaml:"links,omitempty"`
}

// Config is the root configuration.
type Config struct {
	Parser ParserConfig `yaml:"parser"`
	Detect DetectConfig `yaml:"detect"`

	// Extensions are the file suffixes parsed when walking directories.
	Extensions []string `yaml:"extensions,omitempty"`

	// Ignore holds glob patterns of files and directories to skip.
	Ignore []string `yaml:"ignore,omitempty"`

	// CLI-only fields; never read from or written to files.

	Format  OutputFormat `yaml:"-"`
	Jobs    int          `yaml:"-"`
	Color   ColorMode    `yaml:"-"`
	Compact bool         `yaml:"-"`
}

// DefaultExtensions returns the file suffixes parsed by default.
func DefaultExtensions() []string {
	return []string{".md", ".markdown", ".txt"}
}

// NewConfig returns a Config holding every default.
func NewConfig() *Config {
	return &Config{
		Parser: ParserConfig{
			TableLookahead:  table.LookaheadCompat.String(),
			HardBreakSpaces: paragraph.DefaultHardBreakSpaces,
			CodeIndent:      block.DefaultCodeIndent,
			FencedCode:      boolPtr(true),
		},
		Detect: DetectConfig{
			CodeLanguage: boolPtr(true),
			Links:        boolPtr(true),
		},
		Extensions: DefaultExtensions(),
		Format:     FormatText,
		Color:      ColorAuto,
	}
}

// ParagraphOptions converts the parser section to paragraph.Options.
func (c *Config) ParagraphOptions() (paragraph.Options, error) {
	opts := paragraph.DefaultOptions()
	if c == nil {
		return opts, nil
	}

	mode, err := table.ParseLookahead(c.Parser.TableLookahead)
	if err != nil {
		return opts, fmt.Errorf("parser.table_lookahead: %w", err)
	}
	opts.Lookahead = mode

	if c.Parser.HardBreakSpaces > 0 {
		opts.HardBreakSpaces = c.Parser.HardBreakSpaces
	}
	if c.Parser.CodeIndent > 0 {
		opts.Classifier.CodeIndent = c.Parser.CodeIndent
	}
	opts.Classifier.FencedCode = c.FencedCodeEnabled()

	return opts, nil
}

// FencedCodeEnabled reports whether fences are recognised. Unset means yes.
func (c *Config) FencedCodeEnabled() bool {
	return c == nil || boolOr(c.Parser.FencedCode, true)
}

// CodeLanguageEnabled reports whether code runs get a language. Unset means yes.
func (c *Config) CodeLanguageEnabled() bool {
	return c == nil || boolOr(c.Detect.CodeLanguage, true)
}

// LinksEnabled reports whether links are extracted. Unset means yes.
func (c *Config) LinksEnabled() bool {
	return c == nil || boolOr(c.Detect.Links, true)
}

func boolPtr(b bool) *bool {
	return &b
}

func boolOr(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}
