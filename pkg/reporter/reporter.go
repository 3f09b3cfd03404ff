// Package reporter renders match results to the output stream.
package reporter

import (
	"context"
	"fmt"

	"github.com/LooneyRichie/looneygrep/pkg/runner"
)

// Compile-time interface checks.
var (
	_ Reporter = (*TextReporter)(nil)
	_ Reporter = (*JSONReporter)(nil)
)

// Reporter formats and writes search results.
//
// ReportUnit is called once per source unit in search order, which lets the
// replace workflow interleave its prompts between units; Finish emits the
// run summary and flushes buffered output.
type Reporter interface {
	ReportUnit(ctx context.Context, outcome *runner.UnitOutcome) error
	Finish(ctx context.Context, result *runner.Result) error
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}
	if opts.MaxBlocks <= 0 {
		opts.MaxBlocks = DefaultMaxBlocks
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatText:
		return NewTextReporter(opts), nil
	case FormatJSON:
		return NewJSONReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
