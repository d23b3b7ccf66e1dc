package runner

import (
	"errors"
	"time"

	"github.com/yaklabco/mdpara/pkg/block"
	"github.com/yaklabco/mdpara/pkg/inline"
	"github.com/yaklabco/mdpara/pkg/langdetect"
	"github.com/yaklabco/mdpara/pkg/paragraph"
)

// FileOutcome is the parse result of one input.
type FileOutcome struct {
	// Path is the file path, or "-" style name for streams.
	Path string

	// Group is nil when Error is set.
	Group *paragraph.Group

	// Links maps paragraph index to the links it contains. Paragraphs
	// without links are absent.
	Links map[int][]inline.Link

	// CodeRuns are the consecutive code paragraphs with detected languages.
	CodeRuns []langdetect.Run

	Bytes    int
	Duration time.Duration

	Error error
}

// LinkCount returns the number of links found in the file.
func (o *FileOutcome) LinkCount() int {
	n := 0
	for _, links := range o.Links {
		n += len(links)
	}
	return n
}

// Stats aggregates a run.
type Stats struct {
	FilesDiscovered int
	FilesParsed     int
	FilesErrored    int

	Bytes      int
	Paragraphs int
	Tables     int
	CodeRuns   int
	Links      int

	ByKind map[block.Kind]int
}

// Result is the outcome of a run.
type Result struct {
	// Files are in discovery order.
	Files []FileOutcome

	Stats Stats
}

// HasFailures reports whether any file could not be parsed.
func (r *Result) HasFailures() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// Err joins every per-file error, or returns nil.
func (r *Result) Err() error {
	if r == nil {
		return nil
	}
	var errs []error
	for _, f := range r.Files {
		if f.Error != nil {
			errs = append(errs, f.Error)
		}
	}
	return errors.Join(errs...)
}

// Add records an outcome produced outside Run, e.g. from stdin.
func (r *Result) Add(outcome FileOutcome) {
	r.Stats.FilesDiscovered++
	r.accumulate(outcome)
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil || outcome.Group == nil {
		r.Stats.FilesErrored++
		return
	}

	if r.Stats.ByKind == nil {
		r.Stats.ByKind = make(map[block.Kind]int)
	}

	r.Stats.FilesParsed++
	r.Stats.Bytes += outcome.Bytes
	r.Stats.Paragraphs += outcome.Group.Len()
	r.Stats.CodeRuns += len(outcome.CodeRuns)
	r.Stats.Links += outcome.LinkCount()

	for kind, n := range outcome.Group.CountByKind() {
		r.Stats.ByKind[kind] += n
	}
	r.Stats.Tables = r.Stats.ByKind[block.Table]
}
