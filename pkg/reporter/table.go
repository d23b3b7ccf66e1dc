package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/mdpara/internal/ui/pretty"
	"github.com/yaklabco/mdpara/pkg/analysis"
)

// defaultTermWidth is used when terminal width cannot be determined.
const defaultTermWidth = 100

// TableRenderer formats paragraphs as a styled table, one row per paragraph.
type TableRenderer struct {
	opts      Options
	styles    *pretty.Styles
	formatter *pretty.TableFormatter
	bw        *bufio.Writer
}

// NewTableRenderer creates a new table renderer.
func NewTableRenderer(opts Options) *TableRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	styles := pretty.NewStyles(colorEnabled)

	return &TableRenderer{
		opts:      opts,
		styles:    styles,
		formatter: pretty.NewTableFormatter(styles, getTerminalWidth(opts.Writer)),
		bw:        bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Render implements Renderer.
func (r *TableRenderer) Render(_ context.Context, report *analysis.Report) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if len(report.ByFile) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Dim.Render("No files to parse."))
		}
		return nil
	}

	if r.opts.PerFile {
		r.renderPerFile(report)
	} else {
		fmt.Fprint(r.bw, r.formatter.FormatTable(report.Paragraphs))
	}

	for _, file := range report.ByFile {
		if file.Error != "" {
			fmt.Fprint(r.bw, r.styles.FormatFileError(file.Path, file.Error))
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw, r.formatter.FormatTableSummary(report.Totals, ""))
	}

	return nil
}

// renderPerFile outputs a separate table for each file with paragraphs.
func (r *TableRenderer) renderPerFile(report *analysis.Report) {
	byFile := paragraphsByFile(report.Paragraphs)

	for i, file := range report.ByFile {
		entries := byFile[file.Path]
		if len(entries) == 0 {
			continue
		}
		if i > 0 {
			fmt.Fprintln(r.bw)
		}
		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(file.Path, file.Paragraphs))
		fmt.Fprint(r.bw, r.formatter.FormatTable(entries))
	}

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw)
		fmt.Fprintln(r.bw, r.styles.TableSeparator.Render(strings.Repeat("═", defaultTermWidth/2)))
		fmt.Fprintln(r.bw, r.styles.Bold.Render("Overall Summary"))
	}
}

// getTerminalWidth attempts to get the terminal width from the writer.
func getTerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
