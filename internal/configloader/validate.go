package configloader

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/yaklabco/mdpara/pkg/config"
	"github.com/yaklabco/mdpara/pkg/table"
)

// maxHardBreakSpaces and maxCodeIndent bound values that would otherwise
// make every line a hard break or no line code.
const (
	maxHardBreakSpaces = 16
	maxCodeIndent      = 16
)

// ValidationError is one configuration problem.
type ValidationError struct {
	// Field is the dotted key, e.g. "parser.code_indent".
	Field string

	// Value is the offending value.
	Value any

	// Message describes the problem.
	Message string

	// FilePath is the config file holding the value, when known.
	FilePath string
}

// Error implements error.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, 3)
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult collects every finding of one Validate call.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// Valid reports whether there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings reports whether there are warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns errors then warnings as prefixed strings.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

func (r *ValidationResult) errorf(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warnf(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownFormats = map[config.OutputFormat]bool{
	config.FormatText:    true,
	config.FormatTable:   true,
	config.FormatJSON:    true,
	config.FormatSummary: true,
}

// Validate checks cfg and reports every problem found.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if _, err := table.ParseLookahead(cfg.Parser.TableLookahead); err != nil {
		result.errorf("parser.table_lookahead", cfg.Parser.TableLookahead,
			"invalid lookahead %q; must be one of: compat, greedy", cfg.Parser.TableLookahead)
	}

	switch hb := cfg.Parser.HardBreakSpaces; {
	case hb < 0 || hb > maxHardBreakSpaces:
		result.errorf("parser.hard_break_spaces", hb, "must be between 1 and %d", maxHardBreakSpaces)
	case hb == 1:
		result.warnf("parser.hard_break_spaces", hb, "a single trailing space splits most prose into separate paragraphs")
	}

	if ci := cfg.Parser.CodeIndent; ci < 0 || ci > maxCodeIndent {
		result.errorf("parser.code_indent", ci, "must be between 1 and %d", maxCodeIndent)
	}

	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			result.errorf(fmt.Sprintf("extensions[%d]", i), ext, "extension %q must start with a dot", ext)
		}
	}

	for i, pattern := range cfg.Ignore {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			result.errorf(fmt.Sprintf("ignore[%d]", i), pattern, "invalid glob pattern: %v", err)
		}
	}

	if cfg.Format != "" && !knownFormats[cfg.Format] {
		result.errorf("format", cfg.Format, "invalid format %q; must be one of: text, table, json, summary", cfg.Format)
	}

	if cfg.Jobs < 0 {
		result.errorf("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}

	if cfg.Color != "" && !cfg.Color.IsValid() {
		result.errorf("color", cfg.Color, "invalid color mode %q; must be one of: auto, always, never", cfg.Color)
	}

	return result
}

// ValidateWithFile validates cfg and attributes every finding to filePath.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}
	return result
}

// IsValidFormat reports whether f names a reporter.
func IsValidFormat(f config.OutputFormat) bool {
	return knownFormats[f]
}
