// Package reporter renders parse results as text, tables, JSON or summaries.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/mdpara/pkg/analysis"
	"github.com/yaklabco/mdpara/pkg/runner"
)

// Compile-time interface check for reporterFacade.
var _ Reporter = (*reporterFacade)(nil)

// Reporter formats and writes parse results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of paragraphs reported and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// reporterFacade bridges the Reporter interface to Renderer implementations.
type reporterFacade struct {
	renderer     Renderer
	analysisOpts analysis.Options
}

// Report implements Reporter by analyzing the result and rendering it.
func (f *reporterFacade) Report(ctx context.Context, result *runner.Result) (int, error) {
	report := analysis.Analyze(result, f.analysisOpts)
	if err := f.renderer.Render(ctx, report); err != nil {
		return 0, fmt.Errorf("render: %w", err)
	}
	return report.Totals.Paragraphs, nil
}

func newRendererFacade(renderer Renderer, opts Options) *reporterFacade {
	return &reporterFacade{
		renderer:     renderer,
		analysisOpts: opts.analysisOptions(),
	}
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	opts.Format = format

	var renderer Renderer
	switch format {
	case FormatJSON:
		renderer = NewJSONRenderer(opts)
	case FormatTable:
		renderer = NewTableRenderer(opts)
	case FormatSummary:
		renderer = NewSummaryRenderer(opts)
	default:
		renderer = NewTextRenderer(opts)
	}
	return newRendererFacade(renderer, opts), nil
}
