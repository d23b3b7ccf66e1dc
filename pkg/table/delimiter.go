// Package table validates table delimiter rows and accumulates table rows
// into a single zero-copy Table.
package table

import "strings"

// maxCellColons is the most colons a single alignment cell may hold.
const maxCellColons = 2

// malformedPatterns are substrings that disqualify a delimiter row. The order
// matches the order checks are made in.
//
//nolint:gochecknoglobals // Read-only lookup table.
var malformedPatterns = []string{
	"||",  // empty cell
	"::-", // doubled leading colon
	"-::", // doubled trailing colon
	":::",
	"- -", // dashes split by a space are a rule or a list, not a delimiter
}

// IsValidDelimiter reports whether text is a well-formed table alignment row
// such as ":---|:---:|---:". It is stateless and never fails.
func IsValidDelimiter(text string) bool {
	if len(text) == 1 {
		return false
	}

	for _, pattern := range malformedPatterns {
		if strings.Contains(text, pattern) {
			return false
		}
	}

	for cell := range strings.SplitSeq(text, "|") {
		if strings.Count(cell, ":") > maxCellColons {
			return false
		}
	}

	return true
}
