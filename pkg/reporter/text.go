package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/mdpara/internal/ui/pretty"
	"github.com/yaklabco/mdpara/pkg/analysis"
)

// TextRenderer formats a report as styled terminal output, grouped by file.
type TextRenderer struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextRenderer creates a new text renderer.
func NewTextRenderer(opts Options) *TextRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Render implements Renderer.
func (r *TextRenderer) Render(_ context.Context, report *analysis.Report) (err error) {
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

	byFile := paragraphsByFile(report.Paragraphs)

	for _, file := range report.ByFile {
		if file.Error != "" {
			fmt.Fprint(r.bw, r.styles.FormatFileError(file.Path, file.Error))
			continue
		}

		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(file.Path, file.Paragraphs))
		for _, entry := range byFile[file.Path] {
			fmt.Fprint(r.bw, r.styles.FormatParagraph(entry, r.opts.ShowContent))
		}

		// Blank line between files
		fmt.Fprintln(r.bw)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(report.Totals))
	}

	return nil
}

// paragraphsByFile indexes the flat paragraph list by display path.
func paragraphsByFile(entries []analysis.ParagraphEntry) map[string][]analysis.ParagraphEntry {
	out := make(map[string][]analysis.ParagraphEntry)
	for _, entry := range entries {
		out[entry.FilePath] = append(out[entry.FilePath], entry)
	}
	return out
}
