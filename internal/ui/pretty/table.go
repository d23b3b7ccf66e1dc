package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/mdpara/pkg/analysis"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 4 // FILE, #, KIND, CONTENT
	minFileWidth     = 16
	minIndexWidth    = 4
	minKindWidth     = 10
	minContentWidth  = 30
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
	newlineMarker    = " ⏎ "
)

// TableRow represents a single row in the paragraph table.
type TableRow struct {
	File    string
	Index   string
	Kind    string
	Label   string
	Content string
}

// TableFormatter formats paragraphs as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// ParagraphToTableRow converts a report entry to a table row. Content is
// flattened to one line.
func ParagraphToTableRow(entry analysis.ParagraphEntry) TableRow {
	content := entry.Text
	if entry.Table != nil {
		content = fmt.Sprintf("%dx%d %s", entry.Table.Rows-2, entry.Table.Columns, strings.Join(entry.Table.Header, " | "))
	}
	content = strings.ReplaceAll(strings.TrimRight(content, "\r\n"), "\n", newlineMarker)
	content = strings.ReplaceAll(content, "\r", "")

	return TableRow{
		File:    entry.FilePath,
		Index:   strconv.Itoa(entry.Index),
		Kind:    entry.Kind,
		Label:   KindLabel(entry),
		Content: content,
	}
}

// FormatTable formats paragraphs of several files as one table, with a light
// separator between files.
func (t *TableFormatter) FormatTable(entries []analysis.ParagraphEntry) string {
	if len(entries) == 0 {
		return ""
	}

	groups := groupRows(entries)
	colWidths := t.calculateColumnWidths(groups)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(colWidths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(colWidths, heavySeparator))
	builder.WriteString("\n")

	for i, group := range groups {
		if i > 0 {
			builder.WriteString(t.formatSeparator(colWidths, lightSeparator))
			builder.WriteString("\n")
		}
		for _, row := range group {
			builder.WriteString(t.formatRow(row, colWidths))
			builder.WriteString("\n")
		}
	}

	builder.WriteString(t.formatSeparator(colWidths, heavySeparator))
	builder.WriteString("\n")

	return builder.String()
}

// groupRows splits entries into runs of the same file, keeping order.
func groupRows(entries []analysis.ParagraphEntry) [][]TableRow {
	var (
		groups [][]TableRow
		last   string
	)
	for i, entry := range entries {
		row := ParagraphToTableRow(entry)
		if i == 0 || entry.FilePath != last {
			groups = append(groups, nil)
			last = entry.FilePath
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], row)
	}
	return groups
}

type columnWidths struct {
	file    int
	index   int
	kind    int
	content int
}

// calculateColumnWidths determines optimal column widths based on content.
func (t *TableFormatter) calculateColumnWidths(groups [][]TableRow) columnWidths {
	widths := columnWidths{
		file:    minFileWidth,
		index:   minIndexWidth,
		kind:    minKindWidth,
		content: minContentWidth,
	}

	for _, group := range groups {
		for _, row := range group {
			widths.file = max(widths.file, len(row.File))
			widths.index = max(widths.index, len(row.Index))
			widths.kind = max(widths.kind, len(row.Label))
			widths.content = max(widths.content, len(row.Content))
		}
	}

	// Constrain to terminal width
	totalWidth := t.calculateTotalWidth(widths)
	if totalWidth > t.termWidth {
		// Reduce content width first
		excess := totalWidth - t.termWidth
		widths.content = max(minContentWidth, widths.content-excess)

		// If still too wide, reduce file width
		totalWidth = t.calculateTotalWidth(widths)
		if totalWidth > t.termWidth {
			excess = totalWidth - t.termWidth
			widths.file = max(minFileWidth, widths.file-excess)
		}
	}

	return widths
}

func (t *TableFormatter) calculateTotalWidth(widths columnWidths) int {
	return widths.file + widths.index + widths.kind + widths.content + (tablePadding * tableColumnCount)
}

func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-*s  %*s  %-*s  %-*s ",
		widths.file, "FILE",
		widths.index, "#",
		widths.kind, "KIND",
		widths.content, "CONTENT",
	)
	return t.styles.TableHeader.Render(header)
}

func (t *TableFormatter) formatSeparator(widths columnWidths, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, t.calculateTotalWidth(widths)))
}

// formatRow pads every cell before styling so ANSI codes do not skew widths.
func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	file := truncateFilePath(row.File, widths.file)
	label := truncateString(row.Label, widths.kind)
	content := truncateString(row.Content, widths.content)

	return fmt.Sprintf(" %s  %s  %s  %s",
		t.styles.FilePath.Render(fmt.Sprintf("%-*s", widths.file, file)),
		t.styles.Index.Render(fmt.Sprintf("%*s", widths.index, row.Index)),
		t.styles.KindStyle(row.Kind).Render(fmt.Sprintf("%-*s", widths.kind, label)),
		t.styles.Content.Render(content),
	)
}

// FormatTableSummary formats a summary line for table output.
func (t *TableFormatter) FormatTableSummary(totals analysis.Totals, duration string) string {
	parts := []string{fmt.Sprintf("%d files parsed", totals.FilesParsed)}

	if totals.FilesErrored > 0 {
		parts = append(parts, t.styles.Error.Render(fmt.Sprintf("%d failed", totals.FilesErrored)))
	}
	parts = append(parts, fmt.Sprintf("%d paragraphs", totals.Paragraphs))
	if totals.Tables > 0 {
		parts = append(parts, t.styles.Table.Render(fmt.Sprintf("%d tables", totals.Tables)))
	}
	if totals.CodeRuns > 0 {
		parts = append(parts, t.styles.Code.Render(fmt.Sprintf("%d code runs", totals.CodeRuns)))
	}
	if totals.Links > 0 {
		parts = append(parts, t.styles.Link.Render(fmt.Sprintf("%d links", totals.Links)))
	}
	if duration != "" {
		parts = append(parts, t.styles.Dim.Render(duration))
	}

	return " " + strings.Join(parts, " | ")
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}

// truncateFilePath truncates a file path, preserving the end (filename) rather than beginning.
func truncateFilePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return path[len(path)-maxLen:]
	}
	return "..." + path[len(path)-maxLen+3:]
}
