package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/mdpara/pkg/analysis"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// ErrorWriter is the destination for errors (typically os.Stderr).
	ErrorWriter io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// ShowContent prints paragraph text and table cells.
	ShowContent bool

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// Compact uses compact/minified output where applicable.
	Compact bool

	// PerFile outputs a separate table for each file (table format only).
	PerFile bool

	// SortBy orders the per-file and per-kind views.
	SortBy analysis.SortField

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
		Format:      FormatText,
		Color:       "auto",
		ShowContent: true,
		ShowSummary: true,
		Compact:     false,
		SortBy:      analysis.SortByOrder,
	}
}

// analysisOptions selects the report views the format needs.
func (o Options) analysisOptions() analysis.Options {
	sortBy := o.SortBy
	if sortBy == "" {
		sortBy = analysis.SortByOrder
	}
	return analysis.Options{
		IncludeParagraphs: o.Format != FormatSummary,
		IncludeText:       o.ShowContent || o.Format == FormatTable,
		IncludeByFile:     true,
		IncludeByKind:     o.Format == FormatSummary || o.Format == FormatJSON,
		IncludeLanguages:  o.Format == FormatSummary || o.Format == FormatJSON,
		SortBy:            sortBy,
		SortDesc:          true,
		WorkingDir:        o.WorkingDir,
	}
}
