package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/LooneyRichie/looneygrep/internal/ui/pretty"
	"github.com/LooneyRichie/looneygrep/pkg/highlight"
	"github.com/LooneyRichie/looneygrep/pkg/langdetect"
	"github.com/LooneyRichie/looneygrep/pkg/runner"
	"github.com/LooneyRichie/looneygrep/pkg/search"
)

// detectSampleLines bounds how many lines feed language detection.
const detectSampleLines = 32

// TextReporter renders matches as styled terminal output.
type TextReporter struct {
	opts         Options
	styles       *pretty.Styles
	bw           *bufio.Writer
	colorEnabled bool

	printed bool
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:         opts,
		styles:       pretty.NewStyles(colorEnabled),
		bw:           bufio.NewWriterSize(opts.Writer, bufWriterSize),
		colorEnabled: colorEnabled,
	}
}

// ReportUnit implements Reporter. Each match is rendered as an independent
// context block; overlapping windows are not merged, so a line may appear
// in two blocks. The block cap applies per unit, so one huge source does
// not silence the sources after it.
func (r *TextReporter) ReportUnit(_ context.Context, outcome *runner.UnitOutcome) error {
	if outcome == nil || len(outcome.Matches) == 0 {
		return nil
	}

	unit := outcome.Unit

	if r.printed {
		fmt.Fprintln(r.bw)
	}
	r.printed = true

	if r.opts.ShowHeaders {
		fmt.Fprintln(r.bw, r.styles.FormatUnitHeader(unit.Label, len(outcome.Matches)))
	}

	lang := langdetect.Detect(unit.Path, []byte(detectSample(unit.Lines)))
	hl := highlight.New(lang, unit.Path, r.colorEnabled && r.opts.Syntax)

	blocks := 0
	for i, match := range outcome.Matches {
		if blocks >= r.opts.MaxBlocks {
			fmt.Fprintln(r.bw, r.styles.Warning.Render("Output truncated. Too many results."))
			break
		}

		r.reportBlock(unit.Lines, match, hl)
		blocks++

		if i < len(outcome.Matches)-1 && blocks < r.opts.MaxBlocks {
			fmt.Fprintln(r.bw, r.styles.FormatSeparator())
		}
	}

	// The type note only makes sense for local files.
	if r.opts.ShowTypeNote && unit.IsFile() {
		if note := langdetect.Note(lang); note != "" {
			fmt.Fprintln(r.bw, r.styles.FormatTypeNote(note))
		}
	}

	// Flush per unit so interactive prompts interleave with output correctly.
	return r.bw.Flush()
}

// reportBlock writes one match with its clipped context window.
func (r *TextReporter) reportBlock(lines []string, match search.Match, hl *highlight.Highlighter) {
	window := search.ContextWindow(len(lines), match.Line, r.opts.Context)

	for idx := window.Start; idx <= window.End; idx++ {
		if idx == match.Line {
			fmt.Fprintln(r.bw, r.styles.FormatMatchLine(match))
			continue
		}
		fmt.Fprintln(r.bw, r.styles.FormatContextLine(idx, hl.Line(lines[idx])))
	}
}

// Finish implements Reporter: it writes the run summary and flushes.
func (r *TextReporter) Finish(_ context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return nil
	}

	if r.printed {
		fmt.Fprintln(r.bw)
	}

	fmt.Fprintln(r.bw, r.formatSummary(result))

	return nil
}

// formatSummary renders the one-line run summary.
func (r *TextReporter) formatSummary(result *runner.Result) string {
	stats := result.Stats

	if stats.MatchesTotal == 0 {
		summary := r.styles.Dim.Render("No matches found.")
		if stats.UnitsSkipped > 0 {
			summary += " " + r.styles.Warning.Render(fmt.Sprintf("(%d sources skipped)", stats.UnitsSkipped))
		}
		return summary
	}

	noun := "source"
	if stats.UnitsSearched != 1 {
		noun = "sources"
	}

	summary := r.styles.Success.Render(
		fmt.Sprintf("%d matching lines in %d of %d %s.",
			stats.MatchesTotal, stats.UnitsWithMatches, stats.UnitsSearched, noun))

	if stats.UnitsModified > 0 {
		summary += " " + r.styles.Bold.Render(
			fmt.Sprintf("%d lines replaced in %d files.", stats.LinesReplaced, stats.UnitsModified))
	}

	if stats.UnitsSkipped > 0 {
		summary += " " + r.styles.Warning.Render(fmt.Sprintf("(%d sources skipped)", stats.UnitsSkipped))
	}

	return summary
}

// detectSample joins the leading lines of a unit for language detection.
func detectSample(lines []string) string {
	if len(lines) > detectSampleLines {
		lines = lines[:detectSampleLines]
	}
	return strings.Join(lines, "\n")
}
