package runner

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/yaklabco/mdpara/internal/logging"
	"github.com/yaklabco/mdpara/pkg/config"
	"github.com/yaklabco/mdpara/pkg/fsutil"
	"github.com/yaklabco/mdpara/pkg/inline"
	"github.com/yaklabco/mdpara/pkg/langdetect"
	"github.com/yaklabco/mdpara/pkg/paragraph"
)

// Runner parses files with one shared paragraph.Parser and annotates the
// results. It is safe for concurrent use.
type Runner struct {
	parser     *paragraph.Parser
	links      *inline.Extractor
	detectCode bool
	maxBytes   int64
}

// Option configures a Runner.
type Option func(*Runner)

// WithLinks extracts links from every paragraph using e.
func WithLinks(e *inline.Extractor) Option {
	return func(r *Runner) { r.links = e }
}

// WithCodeLanguages groups code paragraphs into runs and detects their language.
func WithCodeLanguages(enabled bool) Option {
	return func(r *Runner) { r.detectCode = enabled }
}

// WithMaxBytes skips files larger than n bytes with an error. Zero means
// no limit.
func WithMaxBytes(n int64) Option {
	return func(r *Runner) { r.maxBytes = n }
}

// New creates a Runner around parser.
func New(parser *paragraph.Parser, opts ...Option) *Runner {
	r := &Runner{parser: parser}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewFromConfig creates a Runner with the parser and annotations cfg selects.
// extra options are applied last.
func NewFromConfig(cfg *config.Config, extra ...Option) (*Runner, error) {
	parseOpts, err := cfg.ParagraphOptions()
	if err != nil {
		return nil, err
	}

	opts := []Option{WithCodeLanguages(cfg.CodeLanguageEnabled())}
	if cfg.LinksEnabled() {
		opts = append(opts, WithLinks(inline.NewExtractor()))
	}
	opts = append(opts, extra...)
	return New(paragraph.New(parseOpts), opts...), nil
}

// Parser returns the runner's paragraph parser.
func (r *Runner) Parser() *paragraph.Parser {
	return r.parser
}

// Run discovers files under opts.Paths and parses them on a worker pool.
// Files are reported in discovery order whatever order workers finish in.
// A per-file failure is recorded in its FileOutcome and does not stop the run.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	logger.Debug("parsing", logging.FieldFiles, len(files), logging.FieldJobs, jobs)

	type job struct {
		index int
		path  string
	}

	workCh := make(chan job)
	outcomes := make([]*FileOutcome, len(files))

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range workCh {
				if ctx.Err() != nil {
					continue
				}
				outcome := r.ParseFile(ctx, j.path)
				outcomes[j.index] = &outcome
			}
		}()
	}

	go func() {
		defer close(workCh)
		for i, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- job{index: i, path: path}:
			}
		}
	}()

	wg.Wait()

	for _, outcome := range outcomes {
		if outcome != nil {
			result.accumulate(*outcome)
		}
	}

	logger.Debug("parsed",
		logging.FieldFilesParsed, result.Stats.FilesParsed,
		logging.FieldFilesErrored, result.Stats.FilesErrored,
		logging.FieldParagraphs, result.Stats.Paragraphs,
	)

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}
	return result, nil
}

// ParseFile reads and parses one file.
func (r *Runner) ParseFile(ctx context.Context, path string) FileOutcome {
	content, err := fsutil.ReadFile(ctx, path, r.maxBytes)
	if err != nil {
		return FileOutcome{Path: path, Error: err}
	}
	return r.ParseBytes(ctx, path, content)
}

// ParseReader parses everything read from rd, reporting it under name.
func (r *Runner) ParseReader(ctx context.Context, name string, rd io.Reader) FileOutcome {
	content, err := io.ReadAll(rd)
	if err != nil {
		return FileOutcome{Path: name, Error: fmt.Errorf("read %s: %w", name, err)}
	}
	return r.ParseBytes(ctx, name, content)
}

// ParseBytes parses content and applies the configured annotations.
func (r *Runner) ParseBytes(ctx context.Context, name string, content []byte) FileOutcome {
	start := time.Now()
	outcome := FileOutcome{Path: name, Bytes: len(content)}

	group, err := r.parser.Parse(string(content))
	if err != nil {
		outcome.Error = fmt.Errorf("parse %s: %w", name, err)
		logging.FromContext(ctx).Warn("parse failed", logging.FieldPath, name, logging.FieldError, err)
		return outcome
	}
	outcome.Group = group

	if r.links != nil {
		for i, p := range group.All() {
			if links := r.links.ParagraphLinks(p); len(links) > 0 {
				if outcome.Links == nil {
					outcome.Links = make(map[int][]inline.Link)
				}
				outcome.Links[i] = links
			}
		}
	}

	if r.detectCode {
		outcome.CodeRuns = langdetect.Runs(group)
	}

	outcome.Duration = time.Since(start)
	logging.FromContext(ctx).Debug("parsed file",
		logging.FieldPath, name,
		logging.FieldBytes, outcome.Bytes,
		logging.FieldParagraphs, group.Len(),
		logging.FieldDuration, outcome.Duration,
	)

	return outcome
}
