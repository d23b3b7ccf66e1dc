package analysis

// SortField specifies how to sort analysis results.
type SortField string

const (
	// SortByCount sorts by paragraph count (descending by default).
	SortByCount SortField = "count"
	// SortByAlpha sorts alphabetically.
	SortByAlpha SortField = "alpha"
	// SortBySize sorts files by input size and kinds by the number of files
	// they occur in.
	SortBySize SortField = "size"
	// SortByOrder keeps discovery order for files and declaration order for kinds.
	SortByOrder SortField = "order"
)

// IsValid returns true if the sort field is valid.
func (s SortField) IsValid() bool {
	switch s {
	case SortByCount, SortByAlpha, SortBySize, SortByOrder:
		return true
	default:
		return false
	}
}

// Options configures the Analyze function.
type Options struct {
	// IncludeParagraphs includes the flat paragraph list.
	IncludeParagraphs bool

	// IncludeText copies paragraph content into the flat list. Offsets are
	// always present.
	IncludeText bool

	// IncludeByFile includes the per-file analysis.
	IncludeByFile bool

	// IncludeByKind includes the per-kind analysis.
	IncludeByKind bool

	// IncludeLanguages includes the code language breakdown.
	IncludeLanguages bool

	// SortBy specifies how to sort ByFile and ByKind.
	SortBy SortField

	// SortDesc sorts in descending order (highest first).
	SortDesc bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		IncludeParagraphs: true,
		IncludeText:       true,
		IncludeByFile:     true,
		IncludeByKind:     true,
		IncludeLanguages:  true,
		SortBy:            SortByOrder,
		SortDesc:          true,
	}
}
