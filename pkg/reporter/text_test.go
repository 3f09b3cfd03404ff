package reporter_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LooneyRichie/looneygrep/pkg/reporter"
	"github.com/LooneyRichie/looneygrep/pkg/runner"
	"github.com/LooneyRichie/looneygrep/pkg/search"
	"github.com/LooneyRichie/looneygrep/pkg/source"
)

// outcomeFor builds a unit outcome over in-memory lines.
func outcomeFor(label string, lines []string, query string) *runner.UnitOutcome {
	return &runner.UnitOutcome{
		Unit:    &source.Unit{Label: label, Lines: lines},
		Matches: search.FindMatches(lines, query, false),
	}
}

func newTextReporter(t *testing.T, opts reporter.Options, buf *bytes.Buffer) reporter.Reporter {
	t.Helper()

	opts.Writer = buf
	opts.Color = "never"

	rep, err := reporter.New(opts)
	require.NoError(t, err)
	return rep
}

func TestTextReporter_ContextBlocks(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := newTextReporter(t, reporter.Options{Context: 1}, &buf)

	lines := []string{"a", "foo", "b", "foo", "c"}
	outcome := outcomeFor("doc.txt", lines, "foo")

	ctx := context.Background()
	require.NoError(t, rep.ReportUnit(ctx, outcome))

	result := &runner.Result{}
	result.Stats.UnitsSearched = 1
	result.Stats.MatchesTotal = 2
	result.Stats.UnitsWithMatches = 1
	require.NoError(t, rep.Finish(ctx, result))

	out := buf.String()

	// Two independent windows separated by ---, with "b" printed twice.
	assert.Contains(t, out, "1: a\n2: foo\n3: b\n---\n3: b\n4: foo\n5: c\n")
	assert.Equal(t, 2, strings.Count(out, "3: b"))
}

func TestTextReporter_ZeroContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := newTextReporter(t, reporter.Options{}, &buf)

	outcome := outcomeFor("doc.txt", []string{"x", "needle", "y"}, "needle")
	require.NoError(t, rep.ReportUnit(context.Background(), outcome))
	require.NoError(t, rep.Finish(context.Background(), &runner.Result{}))

	out := buf.String()
	assert.Contains(t, out, "2: needle\n")
	assert.NotContains(t, out, "1: x")
	assert.NotContains(t, out, "3: y")
}

func TestTextReporter_HeadersWhenMultipleSources(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := newTextReporter(t, reporter.Options{ShowHeaders: true}, &buf)

	ctx := context.Background()
	require.NoError(t, rep.ReportUnit(ctx, outcomeFor("a.txt", []string{"hit"}, "hit")))
	require.NoError(t, rep.ReportUnit(ctx, outcomeFor("b.txt", []string{"hit"}, "hit")))
	require.NoError(t, rep.Finish(ctx, &runner.Result{}))

	out := buf.String()
	assert.Contains(t, out, "a.txt (1 matches)")
	assert.Contains(t, out, "b.txt (1 matches)")
}

func TestTextReporter_SkipsUnitsWithoutMatches(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := newTextReporter(t, reporter.Options{ShowHeaders: true}, &buf)

	require.NoError(t, rep.ReportUnit(context.Background(), outcomeFor("quiet.txt", []string{"nothing"}, "absent")))
	require.NoError(t, rep.Finish(context.Background(), &runner.Result{}))

	assert.NotContains(t, buf.String(), "quiet.txt")
	assert.Contains(t, buf.String(), "No matches found.")
}

func TestTextReporter_Truncation(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := newTextReporter(t, reporter.Options{MaxBlocks: 2}, &buf)

	lines := []string{"hit", "hit", "hit", "hit"}
	require.NoError(t, rep.ReportUnit(context.Background(), outcomeFor("big.txt", lines, "hit")))
	require.NoError(t, rep.Finish(context.Background(), &runner.Result{}))

	out := buf.String()
	assert.Contains(t, out, "Output truncated. Too many results.")
	assert.Equal(t, 2, strings.Count(out, ": hit"))
}

func TestTextReporter_TruncationIsPerSource(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := newTextReporter(t, reporter.Options{MaxBlocks: 2, ShowHeaders: true}, &buf)

	ctx := context.Background()
	noisy := []string{"hit", "hit", "hit", "hit"}
	require.NoError(t, rep.ReportUnit(ctx, outcomeFor("noisy.txt", noisy, "hit")))
	require.NoError(t, rep.ReportUnit(ctx, outcomeFor("quiet.txt", []string{"lone hit"}, "hit")))
	require.NoError(t, rep.Finish(ctx, &runner.Result{}))

	out := buf.String()

	// A source that blows the cap must not silence the sources after it.
	assert.Equal(t, 1, strings.Count(out, "Output truncated. Too many results."))
	assert.Contains(t, out, "quiet.txt")
	assert.Contains(t, out, "1: lone hit")
}

func TestTextReporter_PartialFailureSummary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := newTextReporter(t, reporter.Options{}, &buf)

	result := &runner.Result{}
	result.Stats.UnitsSearched = 2
	result.Stats.UnitsSkipped = 1
	result.Stats.MatchesTotal = 3
	result.Stats.UnitsWithMatches = 2

	require.NoError(t, rep.Finish(context.Background(), result))

	out := buf.String()
	assert.Contains(t, out, "3 matching lines in 2 of 2 sources.")
	assert.Contains(t, out, "(1 sources skipped)")
}

func TestNew_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := reporter.New(reporter.Options{Format: "sarif"})
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	format, err := reporter.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, reporter.FormatText, format)

	format, err = reporter.ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, reporter.FormatJSON, format)

	_, err = reporter.ParseFormat("xml")
	assert.Error(t, err)
}
