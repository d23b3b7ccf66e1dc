package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// commentWrapWidth is the maximum width of wrapped template comments.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full writes every setting uncommented with its documentation.
	// Otherwise a short, mostly commented template is produced.
	Full bool

	// Format is "yaml" (default) or "json".
	Format string
}

// setting documents one key of the config file.
type setting struct {
	section string
	key     string
	doc     string
	value   string
}

//nolint:gochecknoglobals // Read-only lookup table.
var settings = []setting{
	{
		section: "parser", key: "table_lookahead", value: "compat",
		doc: "How table body rows are read. compat stops one line short of the end of " +
			"input and swallows the line that ends the table, matching the Reddit " +
			"client; greedy reads every consecutive row containing a pipe.",
	},
	{
		section: "parser", key: "hard_break_spaces", value: "2",
		doc: "Trailing spaces on a line that force the next text line into a new paragraph.",
	},
	{
		section: "parser", key: "code_indent", value: "4",
		doc: "Leading spaces that make a line a code line.",
	},
	{
		section: "parser", key: "fenced_code", value: "true",
		doc: "Treat lines between ``` or ~~~ fences as code.",
	},
	{
		section: "detect", key: "code_language", value: "true",
		doc: "Guess the language of each run of code paragraphs.",
	},
	{
		section: "detect", key: "links", value: "true",
		doc: "Extract links, images and bare URLs from paragraph content.",
	},
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		return templateJSON()
	}
	if opts.Full {
		return fullTemplate(), nil
	}
	return minimalTemplate(), nil
}

func minimalTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString(`

parser:
  # compat or greedy
  table_lookahead: compat
  # hard_break_spaces: 2
  # code_indent: 4
  # fenced_code: true

# detect:
#   code_language: true
#   links: true

# File suffixes parsed when walking directories
# extensions: [.md, .markdown, .txt]

# Glob patterns to skip
# ignore:
#   - "vendor/**"
#   - "node_modules/**"
`)

	return buf.Bytes()
}

func fullTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString("\n#\n# Every setting is shown with its default value.\n")

	section := ""
	for _, s := range settings {
		if s.section != section {
			section = s.section
			fmt.Fprintf(&buf, "\n%s:\n", section)
		}
		fmt.Fprintf(&buf, "  # %s\n", wrapComment(s.doc, commentWrapWidth, "  # "))
		fmt.Fprintf(&buf, "  %s: %s\n", s.key, s.value)
	}

	buf.WriteString("\n# File suffixes parsed when walking directories.\n")
	buf.WriteString("extensions:\n")
	for _, ext := range DefaultExtensions() {
		fmt.Fprintf(&buf, "  - %s\n", ext)
	}

	buf.WriteString("\n# Glob patterns of files and directories to skip.\n")
	buf.WriteString("ignore:\n  - \"vendor/**\"\n  - \"node_modules/**\"\n")

	return buf.Bytes()
}

func templateJSON() ([]byte, error) {
	cfg := NewConfig()
	doc := map[string]any{
		"parser": map[string]any{
			"table_lookahead":   cfg.Parser.TableLookahead,
			"hard_break_spaces": cfg.Parser.HardBreakSpaces,
			"code_indent":       cfg.Parser.CodeIndent,
			"fenced_code":       cfg.FencedCodeEnabled(),
		},
		"detect": map[string]any{
			"code_language": cfg.CodeLanguageEnabled(),
			"links":         cfg.LinksEnabled(),
		},
		"extensions": cfg.Extensions,
		"ignore":     []string{},
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}
	return append(out, '\n'), nil
}

// wrapComment wraps text to maxWidth, continuing lines with prefix.
func wrapComment(text string, maxWidth int, prefix string) string {
	if len(text) <= maxWidth {
		return text
	}

	var (
		lines   []string
		current string
	)
	for _, word := range strings.Fields(text) {
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= maxWidth:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}

	return strings.Join(lines, "\n"+prefix)
}

// DefaultTemplateHeader returns the header comment of generated configs.
func DefaultTemplateHeader() string {
	return `# mdpara configuration
# See: https://github.com/yaklabco/mdpara`
}
