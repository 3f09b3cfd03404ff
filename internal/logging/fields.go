package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldURL        = "url"
	FieldQuery      = "query"
	FieldWorkingDir = "working_dir"

	// Run configuration fields.
	FieldIgnoreCase = "ignore_case"
	FieldReplace    = "replace"
	FieldContext    = "context"
	FieldSearchAll  = "search_all"
	FieldFormat     = "format"

	// Statistics fields.
	FieldUnits         = "units"
	FieldUnitsSkipped  = "units_skipped"
	FieldMatches       = "matches"
	FieldLinesReplaced = "lines_replaced"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
