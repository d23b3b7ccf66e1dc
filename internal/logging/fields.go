package logging

// Structured field names. Keep log keys stable; scripts grep for them.
const (
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"
	FieldSource     = "source"

	FieldJobs      = "jobs"
	FieldLookahead = "lookahead"
	FieldFormat    = "format"

	FieldBytes      = "bytes"
	FieldParagraphs = "paragraphs"
	FieldTables     = "tables"
	FieldCodeRuns   = "code_runs"
	FieldLinks      = "links"
	FieldDuration   = "duration"

	FieldFilesDiscovered = "files_discovered"
	FieldFilesParsed     = "files_parsed"
	FieldFilesErrored    = "files_errored"

	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
