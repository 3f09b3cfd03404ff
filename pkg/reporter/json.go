package reporter

import (
	"bufio"
	"context"
	"encoding/json"

	"github.com/LooneyRichie/looneygrep/pkg/runner"
)

// jsonSchemaVersion identifies the JSON output layout.
const jsonSchemaVersion = "1"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string        `json:"version"`
	Units   []JSONUnit    `json:"units"`
	Skipped []JSONSkipped `json:"skipped,omitempty"`
	Summary JSONSummary   `json:"summary"`
}

// JSONUnit represents a single source unit's results.
type JSONUnit struct {
	Label   string      `json:"label"`
	Matches []JSONMatch `json:"matches"`
}

// JSONMatch represents a single matching line. Line numbers are 1-based;
// spans are byte ranges within the original text.
type JSONMatch struct {
	Line  int        `json:"line"`
	Text  string     `json:"text"`
	Spans []JSONSpan `json:"spans"`
}

// JSONSpan is the byte range of one occurrence within its line.
type JSONSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// JSONSkipped records a source that could not be read.
type JSONSkipped struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	UnitsSearched    int `json:"unitsSearched"`
	UnitsSkipped     int `json:"unitsSkipped"`
	UnitsWithMatches int `json:"unitsWithMatches"`
	TotalMatches     int `json:"totalMatches"`
}

// JSONReporter formats results as JSON for scripted consumers.
type JSONReporter struct {
	opts  Options
	bw    *bufio.Writer
	units []JSONUnit
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// ReportUnit implements Reporter by accumulating; output happens in Finish
// so the document is emitted once, well-formed.
func (r *JSONReporter) ReportUnit(_ context.Context, outcome *runner.UnitOutcome) error {
	if outcome == nil {
		return nil
	}

	unit := JSONUnit{
		Label:   outcome.Unit.Label,
		Matches: make([]JSONMatch, 0, len(outcome.Matches)),
	}

	for _, m := range outcome.Matches {
		spans := make([]JSONSpan, 0, len(m.Spans))
		for _, span := range m.Spans {
			spans = append(spans, JSONSpan{Start: span.Start, End: span.End})
		}
		unit.Matches = append(unit.Matches, JSONMatch{
			Line:  m.Line + 1,
			Text:  m.Text,
			Spans: spans,
		})
	}

	r.units = append(r.units, unit)
	return nil
}

// Finish implements Reporter.
func (r *JSONReporter) Finish(_ context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := JSONOutput{
		Version: jsonSchemaVersion,
		Units:   r.units,
	}
	if output.Units == nil {
		output.Units = []JSONUnit{}
	}

	if result != nil {
		for _, skip := range result.Skipped {
			output.Skipped = append(output.Skipped, JSONSkipped{
				Path:  skip.Path,
				Error: skip.Err.Error(),
			})
		}
		output.Summary = JSONSummary{
			UnitsSearched:    result.Stats.UnitsSearched,
			UnitsSkipped:     result.Stats.UnitsSkipped,
			UnitsWithMatches: result.Stats.UnitsWithMatches,
			TotalMatches:     result.Stats.MatchesTotal,
		}
	}

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	return encoder.Encode(output)
}
