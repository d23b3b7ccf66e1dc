package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/mdpara/pkg/analysis"
)

// contentIndent aligns continuation lines under the paragraph content.
const contentIndent = "        "

// KindLabel renders a paragraph's kind with its level or ordinal,
// e.g. "header/2", "numbered 3." or "code[go]".
func KindLabel(entry analysis.ParagraphEntry) string {
	label := entry.Kind
	switch {
	case entry.Kind == "numbered":
		label += " " + strconv.Itoa(entry.Ordinal) + "."
	case entry.Level > 0:
		label += "/" + strconv.Itoa(entry.Level)
	}
	if entry.Language != "" {
		label += "[" + entry.Language + "]"
	}
	return label
}

// FormatParagraph formats a single paragraph for terminal output.
func (s *Styles) FormatParagraph(entry analysis.ParagraphEntry, showText bool) string {
	var builder strings.Builder

	// Spacing follows the predecessor, so a first paragraph has none.
	if entry.Predecessor != -1 && entry.Kind != "bullet" && entry.Kind != "numbered" {
		builder.WriteString("\n")
	}

	fmt.Fprintf(&builder, "  %s  %s",
		s.Index.Render(fmt.Sprintf("%4d", entry.Index)),
		s.KindStyle(entry.Kind).Render(KindLabel(entry)),
	)
	builder.WriteString(s.Dim.Render(fmt.Sprintf("  [%d:%d]", entry.StartOffset, entry.EndOffset)))
	builder.WriteString("\n")

	if showText {
		switch {
		case entry.Table != nil && len(entry.Table.Header) > 0:
			builder.WriteString(s.FormatGrid(entry.Table))
		case entry.Text != "":
			for line := range strings.Lines(entry.Text) {
				builder.WriteString(contentIndent + s.Content.Render(strings.TrimRight(line, "\r\n")) + "\n")
			}
		}
	}

	for _, link := range entry.Links {
		builder.WriteString(contentIndent + s.Dim.Render(link.Kind.String()+" ") + s.Link.Render(link.Destination) + "\n")
	}

	return builder.String()
}

// FormatGrid renders a table's header and body cells padded to column
// width and aligned as the delimiter row asks.
func (s *Styles) FormatGrid(table *analysis.TableEntry) string {
	widths := make([]int, table.Columns)
	for _, row := range append([][]string{table.Header}, table.Cells...) {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], len(cell))
			}
		}
	}

	row := func(cells []string, style func(...string) string) string {
		out := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			align := "left"
			if i < len(table.Alignments) {
				align = table.Alignments[i]
			}
			out[i] = style(alignCell(cell, widths[i], align))
		}
		return contentIndent + strings.Join(out, s.TableBorder.Render(" | ")) + "\n"
	}

	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}

	var builder strings.Builder
	builder.WriteString(row(table.Header, s.TableHeader.Render))
	builder.WriteString(row(rule, s.TableBorder.Render))
	for _, cells := range table.Cells {
		builder.WriteString(row(cells, s.Content.Render))
	}
	return builder.String()
}

func alignCell(cell string, width int, align string) string {
	pad := width - len(cell)
	if pad <= 0 {
		return cell
	}
	switch align {
	case "right":
		return strings.Repeat(" ", pad) + cell
	case "center":
		left := pad / 2
		return strings.Repeat(" ", left) + cell + strings.Repeat(" ", pad-left)
	default:
		return cell + strings.Repeat(" ", pad)
	}
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, paragraphs int) string {
	header := s.FilePath.Render(path)
	word := "paragraphs"
	if paragraphs == 1 {
		word = "paragraph"
	}
	return header + s.Dim.Render(fmt.Sprintf(" (%d %s)", paragraphs, word))
}

// FormatFileError formats a file that could not be parsed.
func (s *Styles) FormatFileError(path, message string) string {
	return fmt.Sprintf("%s: %s\n", s.FilePath.Render(path), s.Error.Render("error: "+message))
}
