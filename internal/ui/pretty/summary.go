package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/mdpara/pkg/analysis"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run totals as a single line.
// Example: "42 paragraphs (3 tables, 2 code runs, 5 links) in 4 files".
func (s *Styles) FormatSummaryOneLine(totals analysis.Totals) string {
	if totals.Files == 0 {
		return s.Dim.Render("No files to parse") + "\n"
	}

	var parts []string

	var detail []string
	if totals.Tables > 0 {
		detail = append(detail, s.Table.Render(fmt.Sprintf("%d %s", totals.Tables, plural(totals.Tables, "table", "tables"))))
	}
	if totals.CodeRuns > 0 {
		detail = append(detail, s.Code.Render(fmt.Sprintf("%d %s", totals.CodeRuns, plural(totals.CodeRuns, "code run", "code runs"))))
	}
	if totals.Links > 0 {
		detail = append(detail, s.Link.Render(fmt.Sprintf("%d %s", totals.Links, plural(totals.Links, "link", "links"))))
	}

	count := fmt.Sprintf("%d %s", totals.Paragraphs, plural(totals.Paragraphs, "paragraph", "paragraphs"))
	if len(detail) > 0 {
		count += " (" + strings.Join(detail, ", ") + ")"
	}
	parts = append(parts, count)
	parts = append(parts, fmt.Sprintf("in %d %s", totals.FilesParsed, plural(totals.FilesParsed, wordFile, wordFiles)))

	line := strings.Join(parts, " ")
	if totals.FilesErrored > 0 {
		line += ", " + s.Failure.Render(fmt.Sprintf("%d %s failed", totals.FilesErrored, plural(totals.FilesErrored, wordFile, wordFiles)))
	}
	return line + "\n"
}

// FormatSummary formats run totals as a summary block.
func (s *Styles) FormatSummary(totals analysis.Totals) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	row := func(label string, value int) {
		builder.WriteString(fmt.Sprintf("  %-19s", label+":") + s.SummaryValue.Render(strconv.Itoa(value)) + "\n")
	}

	row("Files parsed", totals.FilesParsed)
	if totals.FilesErrored > 0 {
		builder.WriteString(fmt.Sprintf("  %-19s", "Files failed:") + s.Failure.Render(strconv.Itoa(totals.FilesErrored)) + "\n")
	}
	row("Bytes", totals.Bytes)

	builder.WriteString("\n")

	row("Paragraphs", totals.Paragraphs)
	row("  Tables", totals.Tables)
	row("  Code runs", totals.CodeRuns)
	row("Links", totals.Links)

	builder.WriteString("\n")

	switch {
	case totals.HasErrors():
		builder.WriteString(s.Failure.Render("Parse failed for some files"))
	case totals.IsEmpty():
		builder.WriteString(s.Warning.Render("No paragraphs found"))
	default:
		builder.WriteString(s.Success.Render("Parse complete"))
	}
	builder.WriteString("\n")

	return builder.String()
}
