package reporter

import (
	"io"
	"os"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// DefaultMaxBlocks caps how many match blocks a text report emits before
// truncating.
const DefaultMaxBlocks = 1000

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output: "auto" (default), "always", "never".
	Color string

	// Context is the number of lines shown on each side of a match.
	Context int

	// Syntax enables syntax-aware coloring of context lines.
	// Effective only when color is enabled.
	Syntax bool

	// ShowHeaders prefixes each unit's matches with its origin label.
	// Set when more than one source is searched.
	ShowHeaders bool

	// ShowTypeNote appends a detected file-type note after a unit's matches.
	ShowTypeNote bool

	// MaxBlocks caps emitted match blocks; 0 means DefaultMaxBlocks.
	MaxBlocks int

	// Compact minifies JSON output.
	Compact bool
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:       os.Stdout,
		Format:       FormatText,
		Color:        "auto",
		Syntax:       true,
		ShowTypeNote: true,
		MaxBlocks:    DefaultMaxBlocks,
	}
}
