package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpara/pkg/analysis"
	"github.com/yaklabco/mdpara/pkg/inline"
	"github.com/yaklabco/mdpara/pkg/paragraph"
	"github.com/yaklabco/mdpara/pkg/reporter"
	"github.com/yaklabco/mdpara/pkg/runner"
)

const post = "# Heading\n\nSee [docs](https://example.com/docs).\n\nName | Score\n---|--:\nAnn | 7\n\n    package main\n"

func createTestResult(t *testing.T) *runner.Result {
	t.Helper()

	r := runner.New(paragraph.New(paragraph.DefaultOptions()),
		runner.WithLinks(inline.NewExtractor()),
		runner.WithCodeLanguages(true),
	)

	result := &runner.Result{}
	outcome := r.ParseBytes(context.Background(), "test.md", []byte(post))
	require.NoError(t, outcome.Error)
	result.Add(outcome)
	result.Add(runner.FileOutcome{Path: "broken.md", Error: errors.New("read broken.md: permission denied")})
	return result
}

func report(t *testing.T, opts reporter.Options, result *runner.Result) (string, int) {
	t.Helper()

	var buf bytes.Buffer
	opts.Writer = &buf
	opts.Color = "never"

	rep, err := reporter.New(opts)
	require.NoError(t, err)

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	return buf.String(), count
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{name: "empty defaults to text", input: "", want: reporter.FormatText},
		{name: "text", input: "text", want: reporter.FormatText},
		{name: "table", input: "table", want: reporter.FormatTable},
		{name: "json", input: "json", want: reporter.FormatJSON},
		{name: "summary", input: "summary", want: reporter.FormatSummary},
		{name: "unknown format", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format reporter.Format
		want   bool
	}{
		{reporter.FormatText, true},
		{reporter.FormatTable, true},
		{reporter.FormatJSON, true},
		{reporter.FormatSummary, true},
		{reporter.Format("sarif"), false},
		{reporter.Format(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.format.IsValid())
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  reporter.Format
		wantErr bool
	}{
		{name: "text reporter", format: reporter.FormatText},
		{name: "table reporter", format: reporter.FormatTable},
		{name: "json reporter", format: reporter.FormatJSON},
		{name: "summary reporter", format: reporter.FormatSummary},
		{name: "empty defaults to text", format: ""},
		{name: "unknown format", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			rep, err := reporter.New(reporter.Options{Writer: &buf, Format: tt.format, Color: "never"})
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, rep)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, rep)
		})
	}
}

func TestTextReporter_NilResult(t *testing.T) {
	t.Parallel()

	out, count := report(t, reporter.Options{Format: reporter.FormatText, ShowSummary: true}, nil)
	assert.Zero(t, count)
	assert.Contains(t, out, "No files to parse")
}

func TestTextReporter_WithParagraphs(t *testing.T) {
	t.Parallel()

	out, count := report(t, reporter.Options{
		Format:      reporter.FormatText,
		ShowContent: true,
		ShowSummary: true,
	}, createTestResult(t))

	assert.Equal(t, 4, count)
	assert.Contains(t, out, "test.md (4 paragraphs)")
	assert.Contains(t, out, "header/1")
	assert.Contains(t, out, "Heading")
	assert.Contains(t, out, "link https://example.com/docs")
	assert.Contains(t, out, "Name | Score")
	assert.Contains(t, out, "code[go]")
	assert.Contains(t, out, "broken.md: error: read broken.md: permission denied")
	assert.Contains(t, out, "4 paragraphs (1 table, 1 code run, 1 link) in 1 file, 1 file failed")
}

func TestTextReporter_HideContent(t *testing.T) {
	t.Parallel()

	out, _ := report(t, reporter.Options{Format: reporter.FormatText}, createTestResult(t))
	assert.Contains(t, out, "header/1")
	assert.NotContains(t, out, "Heading")
	assert.NotContains(t, out, "paragraphs (")
}

func TestTableReporter(t *testing.T) {
	t.Parallel()

	out, count := report(t, reporter.Options{Format: reporter.FormatTable, ShowSummary: true}, createTestResult(t))
	assert.Equal(t, 4, count)
	assert.Contains(t, out, "FILE")
	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, "1x2 Name | Score")
	assert.Contains(t, out, "1 files parsed | 1 failed | 4 paragraphs")
	assert.Contains(t, out, "broken.md: error:")
}

func TestTableReporter_PerFile(t *testing.T) {
	t.Parallel()

	out, _ := report(t, reporter.Options{Format: reporter.FormatTable, PerFile: true, ShowSummary: true}, createTestResult(t))
	assert.Contains(t, out, "test.md (4 paragraphs)")
	assert.Contains(t, out, "Overall Summary")
}

func TestJSONReporter_NilResult(t *testing.T) {
	t.Parallel()

	out, count := report(t, reporter.Options{Format: reporter.FormatJSON}, nil)
	assert.Zero(t, count)

	// Should still produce valid JSON
	var doc analysis.Report
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, analysis.ReportVersion, doc.Version)
	assert.Empty(t, doc.Paragraphs)
}

func TestJSONReporter_WithParagraphs(t *testing.T) {
	t.Parallel()

	out, count := report(t, reporter.Options{Format: reporter.FormatJSON, ShowContent: true}, createTestResult(t))
	assert.Equal(t, 4, count)

	var doc analysis.Report
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	require.Len(t, doc.Paragraphs, 4)
	assert.Equal(t, "header", doc.Paragraphs[0].Kind)
	assert.Equal(t, "Heading", doc.Paragraphs[0].Text)
	require.Len(t, doc.Paragraphs[1].Links, 1)
	assert.Equal(t, inline.LinkInline, doc.Paragraphs[1].Links[0].Kind)
	require.NotNil(t, doc.Paragraphs[2].Table)
	assert.Equal(t, []string{"left", "right"}, doc.Paragraphs[2].Table.Alignments)
	assert.Equal(t, "go", doc.Paragraphs[3].Language)

	assert.Equal(t, 1, doc.Totals.FilesErrored)
	assert.NotEmpty(t, doc.ByKind)
	assert.Equal(t, []analysis.LanguageAnalysis{{Language: "go", Runs: 1, Paragraphs: 1}}, doc.Languages)
}

func TestJSONReporter_Compact(t *testing.T) {
	t.Parallel()

	out, _ := report(t, reporter.Options{Format: reporter.FormatJSON, Compact: true}, createTestResult(t))
	assert.NotContains(t, out, "\n  ")
	assert.True(t, json.Valid([]byte(out)))
}

func TestSummaryReporter(t *testing.T) {
	t.Parallel()

	out, count := report(t, reporter.Options{Format: reporter.FormatSummary}, createTestResult(t))
	assert.Equal(t, 4, count)
	assert.Contains(t, out, "Kinds Summary")
	assert.Contains(t, out, "Code Languages")
	assert.Contains(t, out, "Files Summary")
	assert.Contains(t, out, "Total: 4 paragraphs")
}
