package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/mdpara/internal/configloader"
	"github.com/yaklabco/mdpara/pkg/fsutil"
	"github.com/yaklabco/mdpara/pkg/runner"
)

// Exit codes for mdpara.
const (
	// ExitSuccess indicates every input was parsed.
	ExitSuccess = 0

	// ExitParseFailures indicates the run completed but some inputs failed.
	ExitParseFailures = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Sentinel errors returned by commands. main maps them to exit codes.
var (
	// ErrParseFailures is returned when at least one input could not be parsed.
	ErrParseFailures = errors.New("some inputs could not be parsed")

	// ErrInvalidUsage wraps flag and argument errors.
	ErrInvalidUsage = errors.New("invalid usage")

	// ErrConfig wraps configuration loading failures.
	ErrConfig = errors.New("configuration error")
)

// ExitCodeFromResult determines the exit code of a completed run.
func ExitCodeFromResult(result *runner.Result) int {
	if result.HasFailures() {
		return ExitParseFailures
	}
	return ExitSuccess
}

// ExitCodeFromError maps a command error to a process exit code.
func ExitCodeFromError(err error) int {
	var validationErr *configloader.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrParseFailures), errors.Is(err, ErrInvalidDelimiter):
		return ExitParseFailures
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig), errors.As(err, &validationErr):
		return ExitConfigError
	case errors.Is(err, fs.ErrNotExist),
		errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, fsutil.ErrTooLarge):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
