// Package search implements substring matching over lines of text.
// It holds the configuration value shared by the CLI and library surfaces,
// the line matcher, and the context window arithmetic.
package search

import "errors"

// Sentinel errors for configuration validation via errors.Is.
var (
	// ErrNoQuery indicates an empty query string.
	ErrNoQuery = errors.New("no query string given")

	// ErrNoTarget indicates that neither a file path, a URL, nor --all was given.
	ErrNoTarget = errors.New("no file path or URL given")

	// ErrNegativeContext indicates a negative context line count.
	ErrNegativeContext = errors.New("context count must not be negative")
)

// Config describes a single search operation.
// It is immutable once constructed and passed by value into the run entry point.
type Config struct {
	// Query is the substring to search for.
	Query string

	// FilePath is the file to search. Ignored when URL or SearchAll is set.
	FilePath string

	// IgnoreCase enables case-insensitive comparison.
	IgnoreCase bool

	// Replace enables the interactive replace workflow.
	Replace bool

	// URL, when non-empty, fetches and searches a web page instead of a file.
	URL string

	// Context is the number of lines shown on each side of a match.
	Context int

	// SearchAll searches every file in the working directory.
	SearchAll bool
}

// Validate checks the configuration before any I/O happens.
func (c Config) Validate() error {
	if c.Query == "" {
		return ErrNoQuery
	}
	if !c.SearchAll && c.FilePath == "" && c.URL == "" {
		return ErrNoTarget
	}
	if c.Context < 0 {
		return ErrNegativeContext
	}
	return nil
}
