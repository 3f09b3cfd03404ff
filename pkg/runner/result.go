package runner

import (
	"github.com/LooneyRichie/looneygrep/pkg/search"
	"github.com/LooneyRichie/looneygrep/pkg/source"
)

// UnitOutcome pairs a source unit with its match list.
type UnitOutcome struct {
	// Unit is the searched source unit.
	Unit *source.Unit

	// Matches are the unit's matches in line order.
	Matches []search.Match
}

// Stats captures aggregate information about a run.
type Stats struct {
	// UnitsDiscovered is the number of source units found for the run.
	UnitsDiscovered int

	// UnitsSearched is the number of units scanned to completion.
	UnitsSearched int

	// UnitsSkipped is the number of unreadable or non-text sources skipped.
	UnitsSkipped int

	// UnitsWithMatches is the number of units with at least one match.
	UnitsWithMatches int

	// MatchesTotal is the total number of matching lines across all units.
	MatchesTotal int

	// LinesReplaced is the number of lines rewritten by the replace workflow.
	LinesReplaced int

	// UnitsModified is the number of files rewritten by the replace workflow.
	UnitsModified int
}

// Result is the overall outcome of a run.
type Result struct {
	// Units contains the outcome for each searched unit, in search order.
	Units []UnitOutcome

	// Skipped records sources that could not be read during enumeration.
	Skipped []source.Skipped

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasMatches reports whether any unit matched.
func (r *Result) HasMatches() bool {
	return r != nil && r.Stats.MatchesTotal > 0
}

// HasSkipped reports whether any source was skipped, i.e. a partial failure.
func (r *Result) HasSkipped() bool {
	return r != nil && r.Stats.UnitsSkipped > 0
}

// RecordReplacement folds a replace outcome for one unit into the stats.
func (r *Result) RecordReplacement(linesReplaced int, written bool) {
	r.Stats.LinesReplaced += linesReplaced
	if written {
		r.Stats.UnitsModified++
	}
}

// accumulate updates the result with one searched unit.
func (r *Result) accumulate(outcome UnitOutcome) {
	r.Units = append(r.Units, outcome)
	r.Stats.UnitsSearched++
	r.Stats.MatchesTotal += len(outcome.Matches)
	if len(outcome.Matches) > 0 {
		r.Stats.UnitsWithMatches++
	}
}
