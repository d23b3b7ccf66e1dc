package analysis

import (
	"time"

	"github.com/yaklabco/mdpara/pkg/inline"
)

// Report contains pre-computed views of parse results.
// Computed once by Analyze(), used by all renderers.
type Report struct {
	// Paragraphs is the flat list for detailed output.
	Paragraphs []ParagraphEntry `json:"paragraphs,omitempty"`

	// ByFile summarises each input.
	ByFile []FileAnalysis `json:"byFile,omitempty"`

	// ByKind groups paragraphs by block kind.
	ByKind []KindAnalysis `json:"byKind,omitempty"`

	// Languages groups code runs by detected language.
	Languages []LanguageAnalysis `json:"languages,omitempty"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"summary"`

	// Version is the report format version.
	Version string `json:"version"`

	// Timestamp is when the analysis was performed.
	Timestamp time.Time `json:"timestamp"`
}

// ParagraphEntry represents a single paragraph in the report.
type ParagraphEntry struct {
	FilePath    string        `json:"filePath"`
	Index       int           `json:"index"`
	Kind        string        `json:"kind"`
	Level       int           `json:"level,omitempty"`
	Ordinal     int           `json:"ordinal,omitempty"`
	Predecessor int           `json:"predecessor"`
	StartOffset int           `json:"startOffset"`
	EndOffset   int           `json:"endOffset"`
	Text        string        `json:"text,omitempty"`
	Language    string        `json:"language,omitempty"`
	Table       *TableEntry   `json:"table,omitempty"`
	Links       []inline.Link `json:"links,omitempty"`
}

// TableEntry describes a table paragraph.
type TableEntry struct {
	Rows       int        `json:"rows"`
	Columns    int        `json:"columns"`
	Alignments []string   `json:"alignments"`
	Header     []string   `json:"header,omitempty"`
	Cells      [][]string `json:"cells,omitempty"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Files        int `json:"files"`
	FilesParsed  int `json:"filesParsed"`
	FilesErrored int `json:"filesErrored"`
	Bytes        int `json:"bytes"`
	Paragraphs   int `json:"paragraphs"`
	Tables       int `json:"tables"`
	CodeRuns     int `json:"codeRuns"`
	Links        int `json:"links"`
}

// HasErrors returns true if any file failed to parse.
func (t Totals) HasErrors() bool {
	return t.FilesErrored > 0
}

// IsEmpty returns true if no paragraphs were found.
func (t Totals) IsEmpty() bool {
	return t.Paragraphs == 0
}

// FileAnalysis contains aggregated data for a single file.
type FileAnalysis struct {
	Path       string         `json:"path"`
	Bytes      int            `json:"bytes"`
	Paragraphs int            `json:"paragraphs"`
	Tables     int            `json:"tables"`
	CodeRuns   int            `json:"codeRuns"`
	Links      int            `json:"links"`
	Kinds      map[string]int `json:"kinds,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// KindAnalysis contains aggregated data for a single block kind.
type KindAnalysis struct {
	Kind       string   `json:"kind"`
	Paragraphs int      `json:"paragraphs"`
	Files      []string `json:"files,omitempty"`
}

// LanguageAnalysis contains aggregated data for a detected code language.
type LanguageAnalysis struct {
	Language   string `json:"language"`
	Runs       int    `json:"runs"`
	Paragraphs int    `json:"paragraphs"`
}
