// Package analysis turns runner results into report views.
package analysis

import (
	"cmp"
	"path/filepath"
	"slices"
	"time"

	"github.com/yaklabco/mdpara/pkg/block"
	"github.com/yaklabco/mdpara/pkg/paragraph"
	"github.com/yaklabco/mdpara/pkg/runner"
	"github.com/yaklabco/mdpara/pkg/span"
	"github.com/yaklabco/mdpara/pkg/table"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// makeRelativePath converts an absolute path to a relative path from workDir.
// If workDir is empty or conversion fails, returns the original path.
func makeRelativePath(absPath, workDir string) string {
	if workDir == "" || !filepath.IsAbs(absPath) {
		return absPath
	}
	relPath, err := filepath.Rel(workDir, absPath)
	if err != nil {
		return absPath
	}
	return relPath
}

// analysisContext holds temporary state during analysis.
type analysisContext struct {
	kindMap   map[block.Kind]*KindAnalysis
	kindFiles map[block.Kind]map[string]bool
	langMap   map[string]*LanguageAnalysis
	files     []FileAnalysis
}

func newAnalysisContext() *analysisContext {
	return &analysisContext{
		kindMap:   make(map[block.Kind]*KindAnalysis),
		kindFiles: make(map[block.Kind]map[string]bool),
		langMap:   make(map[string]*LanguageAnalysis),
	}
}

func (ctx *analysisContext) getOrCreateKindAnalysis(kind block.Kind) *KindAnalysis {
	if _, ok := ctx.kindMap[kind]; !ok {
		ctx.kindMap[kind] = &KindAnalysis{Kind: kind.String()}
		ctx.kindFiles[kind] = make(map[string]bool)
	}
	return ctx.kindMap[kind]
}

func (ctx *analysisContext) getOrCreateLanguageAnalysis(lang string) *LanguageAnalysis {
	if _, ok := ctx.langMap[lang]; !ok {
		ctx.langMap[lang] = &LanguageAnalysis{Language: lang}
	}
	return ctx.langMap[lang]
}

// createParagraphEntry builds a ParagraphEntry from a parsed paragraph.
func createParagraphEntry(path string, index int, p *paragraph.Paragraph, opts Options) ParagraphEntry {
	entry := ParagraphEntry{
		FilePath:    path,
		Index:       index,
		Kind:        p.Kind.String(),
		Level:       p.Level,
		Ordinal:     p.Ordinal,
		Predecessor: p.Predecessor,
		StartOffset: p.Content.Start(),
		EndOffset:   p.Content.End(),
	}
	if opts.IncludeText {
		entry.Text = p.Text()
	}

	if p.IsTable() {
		tbl := p.Table
		entry.Table = &TableEntry{
			Rows:    tbl.RowCount(),
			Columns: tbl.Columns(),
		}
		for _, a := range tbl.Alignments() {
			entry.Table.Alignments = append(entry.Table.Alignments, a.String())
		}
		if opts.IncludeText {
			entry.Table.Header = spanStrings(table.Cells(tbl.Header()))
			for _, row := range tbl.Grid() {
				entry.Table.Cells = append(entry.Table.Cells, spanStrings(row))
			}
		}
	}
	return entry
}

func spanStrings(spans []span.Span) []string {
	out := make([]string, len(spans))
	for i, s := range spans {
		out[i] = s.String()
	}
	return out
}

func (ctx *analysisContext) buildByKind(opts Options) []KindAnalysis {
	result := make([]KindAnalysis, 0, len(ctx.kindMap))
	for kind, ka := range ctx.kindMap {
		for f := range ctx.kindFiles[kind] {
			ka.Files = append(ka.Files, f)
		}
		slices.Sort(ka.Files)
		result = append(result, *ka)
	}
	sortKindAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

func (ctx *analysisContext) buildLanguages() []LanguageAnalysis {
	result := make([]LanguageAnalysis, 0, len(ctx.langMap))
	for _, la := range ctx.langMap {
		result = append(result, *la)
	}
	slices.SortFunc(result, func(left, right LanguageAnalysis) int {
		if c := cmp.Compare(right.Runs, left.Runs); c != 0 {
			return c
		}
		return cmp.Compare(left.Language, right.Language)
	})
	return result
}

// Analyze transforms a runner.Result into a Report.
// It performs a single pass through the paragraphs to compute all views.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		Version:   ReportVersion,
		Timestamp: time.Now(),
	}

	if result == nil {
		return report
	}

	ctx := newAnalysisContext()

	for _, file := range result.Files {
		report.Totals.Files++
		displayPath := makeRelativePath(file.Path, opts.WorkingDir)

		fa := FileAnalysis{Path: displayPath, Bytes: file.Bytes}
		if file.Error != nil || file.Group == nil {
			report.Totals.FilesErrored++
			if file.Error != nil {
				fa.Error = file.Error.Error()
			}
			ctx.files = append(ctx.files, fa)
			continue
		}

		report.Totals.FilesParsed++
		report.Totals.Bytes += file.Bytes

		languages := make(map[int]string)
		for _, run := range file.CodeRuns {
			for i := run.First; i <= run.Last; i++ {
				languages[i] = run.Language
			}
			la := ctx.getOrCreateLanguageAnalysis(run.Language)
			la.Runs++
			la.Paragraphs += run.Len()
		}
		fa.CodeRuns = len(file.CodeRuns)
		report.Totals.CodeRuns += fa.CodeRuns

		fa.Kinds = make(map[string]int)
		for i, p := range file.Group.All() {
			report.Totals.Paragraphs++
			fa.Paragraphs++
			fa.Kinds[p.Kind.String()]++
			if p.IsTable() {
				report.Totals.Tables++
				fa.Tables++
			}

			links := file.Links[i]
			fa.Links += len(links)
			report.Totals.Links += len(links)

			ka := ctx.getOrCreateKindAnalysis(p.Kind)
			ka.Paragraphs++
			ctx.kindFiles[p.Kind][displayPath] = true

			if opts.IncludeParagraphs {
				entry := createParagraphEntry(displayPath, i, p, opts)
				entry.Language = languages[i]
				entry.Links = links
				report.Paragraphs = append(report.Paragraphs, entry)
			}
		}

		ctx.files = append(ctx.files, fa)
	}

	if opts.IncludeByFile {
		sortFileAnalysis(ctx.files, opts.SortBy, opts.SortDesc)
		report.ByFile = ctx.files
	}
	if opts.IncludeByKind {
		report.ByKind = ctx.buildByKind(opts)
	}
	if opts.IncludeLanguages {
		report.Languages = ctx.buildLanguages()
	}

	return report
}

func sortKindAnalysis(kinds []KindAnalysis, sortBy SortField, desc bool) {
	slices.SortStableFunc(kinds, func(left, right KindAnalysis) int {
		switch sortBy {
		case SortByAlpha:
			// Alphabetical sorting is always ascending (A-Z)
			return cmp.Compare(left.Kind, right.Kind)
		case SortBySize:
			result := cmp.Compare(len(left.Files), len(right.Files))
			if desc {
				result = -result
			}
			return result
		case SortByOrder:
			return cmp.Compare(kindOrder(left.Kind), kindOrder(right.Kind))
		default: // SortByCount
			result := cmp.Compare(left.Paragraphs, right.Paragraphs)
			if desc {
				result = -result
			}
			if result == 0 {
				result = cmp.Compare(kindOrder(left.Kind), kindOrder(right.Kind))
			}
			return result
		}
	})
}

func sortFileAnalysis(files []FileAnalysis, sortBy SortField, desc bool) {
	slices.SortStableFunc(files, func(left, right FileAnalysis) int {
		switch sortBy {
		case SortByAlpha:
			// Alphabetical sorting is always ascending (A-Z)
			return cmp.Compare(left.Path, right.Path)
		case SortBySize:
			result := cmp.Compare(left.Bytes, right.Bytes)
			if desc {
				result = -result
			}
			return result
		case SortByOrder:
			return 0
		default: // SortByCount
			result := cmp.Compare(left.Paragraphs, right.Paragraphs)
			if desc {
				result = -result
			}
			return result
		}
	})
}

func kindOrder(name string) int {
	kind, err := block.ParseKind(name)
	if err != nil {
		return -1
	}
	return int(kind)
}
