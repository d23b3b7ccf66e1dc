package reporter

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yaklabco/mdpara/internal/ui/pretty"
	"github.com/yaklabco/mdpara/pkg/analysis"
)

// Table layout constants for summary output.
// All tables use the same width for visual consistency.
const (
	tableWidth        = 90 // Width of table separators.
	kindColWidth      = 30 // Width of the kind and language columns.
	fileColWidth      = 50 // Width of the file path column.
	numColWidth       = 11 // Width of numeric columns.
	maxFilePathLength = 48 // Maximum characters for file path before truncation.
)

// padRight pads a string to the given width with spaces on the right.
// This must be called BEFORE applying ANSI styles.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads a string to the given width with spaces on the left.
// This must be called BEFORE applying ANSI styles.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// SummaryRenderer formats results as aggregated summary tables.
type SummaryRenderer struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewSummaryRenderer creates a new summary renderer.
func NewSummaryRenderer(opts Options) *SummaryRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Render implements Renderer.
func (r *SummaryRenderer) Render(_ context.Context, report *analysis.Report) error {
	if report.Totals.Files == 0 {
		fmt.Fprintln(r.out, r.styles.Dim.Render("No files to parse"))
		return nil
	}

	r.renderKindTable(report.ByKind)
	fmt.Fprintln(r.out)
	r.renderLanguageTable(report.Languages)
	r.renderFileTable(report.ByFile)
	fmt.Fprintln(r.out)

	fmt.Fprint(r.out, r.styles.Bold.Render("Total: ")+r.styles.FormatSummaryOneLine(report.Totals))

	return nil
}

func (r *SummaryRenderer) separator() {
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))
}

func (r *SummaryRenderer) renderKindTable(kinds []analysis.KindAnalysis) {
	if len(kinds) == 0 {
		return
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Kinds Summary"))
	r.separator()
	fmt.Fprintf(r.out, "%s %s %s\n",
		r.styles.TableHeader.Render(padRight("Kind", kindColWidth)),
		r.styles.TableHeader.Render(padLeft("Paragraphs", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Files", numColWidth)),
	)
	r.separator()

	for _, kind := range kinds {
		fmt.Fprintf(r.out, "%s %s %s\n",
			r.styles.KindStyle(kind.Kind).Render(padRight(kind.Kind, kindColWidth)),
			padLeft(strconv.Itoa(kind.Paragraphs), numColWidth),
			padLeft(strconv.Itoa(len(kind.Files)), numColWidth),
		)
	}
}

func (r *SummaryRenderer) renderLanguageTable(languages []analysis.LanguageAnalysis) {
	if len(languages) == 0 {
		return
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Code Languages"))
	r.separator()
	fmt.Fprintf(r.out, "%s %s %s\n",
		r.styles.TableHeader.Render(padRight("Language", kindColWidth)),
		r.styles.TableHeader.Render(padLeft("Runs", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Lines", numColWidth)),
	)
	r.separator()

	for _, lang := range languages {
		fmt.Fprintf(r.out, "%s %s %s\n",
			r.styles.Language.Render(padRight(lang.Language, kindColWidth)),
			padLeft(strconv.Itoa(lang.Runs), numColWidth),
			padLeft(strconv.Itoa(lang.Paragraphs), numColWidth),
		)
	}
	fmt.Fprintln(r.out)
}

func (r *SummaryRenderer) renderFileTable(files []analysis.FileAnalysis) {
	if len(files) == 0 {
		return
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Files Summary"))
	r.separator()
	fmt.Fprintf(r.out, "%s %s %s %s\n",
		r.styles.TableHeader.Render(padRight("File", fileColWidth)),
		r.styles.TableHeader.Render(padLeft("Paragraphs", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Tables", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Links", numColWidth)),
	)
	r.separator()

	for _, file := range files {
		path := file.Path
		if len(path) > maxFilePathLength {
			path = "…" + path[len(path)-(maxFilePathLength-1):]
		}

		paddedPath := padRight(path, fileColWidth)
		if file.Error != "" {
			fmt.Fprintf(r.out, "%s %s\n", r.styles.Failure.Render(paddedPath), r.styles.Error.Render(file.Error))
			continue
		}

		fmt.Fprintf(r.out, "%s %s %s %s\n",
			paddedPath,
			padLeft(strconv.Itoa(file.Paragraphs), numColWidth),
			padLeft(strconv.Itoa(file.Tables), numColWidth),
			padLeft(strconv.Itoa(file.Links), numColWidth),
		)
	}
}
