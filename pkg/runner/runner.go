package runner

import (
	"context"
	"fmt"

	"github.com/LooneyRichie/looneygrep/pkg/search"
	"github.com/LooneyRichie/looneygrep/pkg/source"
)

// Run resolves the configured target into source units and matches each one.
//
// Units are processed sequentially in enumeration order; each is read and
// matched to completion before the next. Under SearchAll, unreadable sources are recorded
// as skipped rather than failing the run; a single-file or URL target that
// cannot be read fails the run outright.
func Run(ctx context.Context, opts Options) (*Result, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	units, skipped, err := gather(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Skipped: skipped}
	result.Stats.UnitsDiscovered = len(units) + len(skipped)
	result.Stats.UnitsSkipped = len(skipped)

	for _, unit := range units {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("run cancelled: %w", ctx.Err())
		default:
		}

		matches := search.FindMatches(unit.Lines, cfg.Query, cfg.IgnoreCase)
		result.accumulate(UnitOutcome{Unit: unit, Matches: matches})
	}

	return result, nil
}

// gather produces the run's source units according to the configuration.
func gather(ctx context.Context, opts Options) ([]*source.Unit, []source.Skipped, error) {
	cfg := opts.Config

	switch {
	case cfg.SearchAll:
		return source.FromDir(ctx, opts.effectiveWorkDir())

	case cfg.URL != "":
		unit, err := source.FromURL(ctx, cfg.URL)
		if err != nil {
			return nil, nil, err
		}
		return []*source.Unit{unit}, nil, nil

	default:
		unit, err := source.FromFile(ctx, cfg.FilePath)
		if err != nil {
			return nil, nil, err
		}
		return []*source.Unit{unit}, nil, nil
	}
}
