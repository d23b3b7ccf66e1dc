// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Paragraph kind styles
	Header   lipgloss.Style
	Text     lipgloss.Style
	Code     lipgloss.Style
	List     lipgloss.Style
	Quote    lipgloss.Style
	Rule     lipgloss.Style
	Table    lipgloss.Style
	Language lipgloss.Style
	Link     lipgloss.Style

	// Paragraph components
	FilePath lipgloss.Style
	Index    lipgloss.Style
	Content  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Table styles
	TableHeader    lipgloss.Style
	TableBorder    lipgloss.Style
	TableLegend    lipgloss.Style
	TableSeparator lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		Text:     lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Code:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		List:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Quote:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Italic(true),
		Rule:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Table:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Language: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Italic(true),
		Link:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Underline(true),

		FilePath: lipgloss.NewStyle().Bold(true),
		Index:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Content:  lipgloss.NewStyle(),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		TableHeader:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableBorder:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		TableLegend:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		TableSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Header:         plain,
		Text:           plain,
		Code:           plain,
		List:           plain,
		Quote:          plain,
		Rule:           plain,
		Table:          plain,
		Language:       plain,
		Link:           plain,
		FilePath:       plain,
		Index:          plain,
		Content:        plain,
		Error:          plain,
		Warning:        plain,
		SummaryTitle:   plain,
		SummaryValue:   plain,
		Success:        plain,
		Failure:        plain,
		TableHeader:    plain,
		TableBorder:    plain,
		TableLegend:    plain,
		TableSeparator: plain,
		Dim:            plain,
		Bold:           plain,
	}
}

// KindStyle returns the style for a paragraph kind name.
func (s *Styles) KindStyle(kind string) lipgloss.Style {
	switch kind {
	case "header":
		return s.Header
	case "code":
		return s.Code
	case "bullet", "numbered":
		return s.List
	case "quote":
		return s.Quote
	case "hrule":
		return s.Rule
	case "table":
		return s.Table
	default:
		return s.Text
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
