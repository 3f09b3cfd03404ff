// Package replace implements the interactive replace-in-place workflow.
//
// Per source unit the workflow is: scan (the caller supplies the full match
// list up front, so line indexes cannot drift mid-run), prompt per match,
// accumulate confirmed substitutions, then commit the file once with an
// atomic temp-file rename.
package replace

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/LooneyRichie/looneygrep/internal/ui/pretty"
	"github.com/LooneyRichie/looneygrep/pkg/fsutil"
	"github.com/LooneyRichie/looneygrep/pkg/search"
	"github.com/LooneyRichie/looneygrep/pkg/source"
)

// Sentinel errors for the replace workflow.
var (
	// ErrNotFileBacked indicates a unit with no backing file (a URL source).
	ErrNotFileBacked = errors.New("replace requires a file-backed source")

	// ErrSourceChanged indicates the file was modified externally between
	// scan and commit; the commit is refused to avoid clobbering.
	ErrSourceChanged = errors.New("file changed on disk during replace")
)

// Outcome summarizes one unit's replace run.
type Outcome struct {
	// LinesReplaced is the number of lines rewritten.
	LinesReplaced int

	// Written reports whether the file was committed.
	Written bool

	// Aborted reports whether the operator quit before the last prompt.
	// Confirmed-so-far substitutions are still committed.
	Aborted bool

	// BackupCreated reports whether a sidecar backup was written.
	BackupCreated bool
}

// Replacer drives the prompt loop for file units.
type Replacer struct {
	in     *bufio.Scanner
	out    io.Writer
	styles *pretty.Styles

	// Backup writes a sidecar copy of the original before committing.
	Backup bool
}

// New creates a Replacer reading operator answers from in and writing
// prompts to out.
func New(in io.Reader, out io.Writer, styles *pretty.Styles) *Replacer {
	return &Replacer{
		in:     bufio.NewScanner(in),
		out:    out,
		styles: styles,
	}
}

// Run prompts for each match in order and commits confirmed substitutions.
//
// Answers: "y" confirms the match and solicits its replacement text, "n"
// skips, "all" solicits one replacement applied to this and every remaining
// match, "quit" stops prompting and commits only what was confirmed so far.
// Anything else skips the match. End of input counts as quit.
func (r *Replacer) Run(ctx context.Context, unit *source.Unit, matches []search.Match, cfg search.Config) (*Outcome, error) {
	if unit == nil || !unit.IsFile() {
		return nil, ErrNotFileBacked
	}

	outcome := &Outcome{}
	if len(matches) == 0 {
		return outcome, nil
	}

	lines := make([]string, len(unit.Lines))
	copy(lines, unit.Lines)

	replaceRemaining := false
	replacement := ""

	for _, match := range matches {
		select {
		case <-ctx.Done():
			return outcome, fmt.Errorf("replace cancelled: %w", ctx.Err())
		default:
		}

		if !replaceRemaining {
			fmt.Fprint(r.out, r.styles.FormatReplacePrompt(match))

			answer, ok := r.read()
			if !ok {
				outcome.Aborted = true
				break
			}

			switch answer {
			case "y":
				replacement, ok = r.askReplacement()
				if !ok {
					outcome.Aborted = true
				}
			case "all":
				replacement, ok = r.askReplacement()
				if !ok {
					outcome.Aborted = true
				} else {
					replaceRemaining = true
				}
			case "n":
				continue
			case "quit":
				outcome.Aborted = true
			default:
				continue
			}

			if outcome.Aborted {
				break
			}
		}

		lines[match.Line] = search.ReplaceAll(lines[match.Line], cfg.Query, replacement, cfg.IgnoreCase)
		outcome.LinesReplaced++
	}

	if outcome.LinesReplaced == 0 {
		fmt.Fprintln(r.out, r.styles.Dim.Render("No replacements made."))
		return outcome, nil
	}

	if err := r.commit(ctx, unit, lines, outcome); err != nil {
		return outcome, err
	}

	fmt.Fprintln(r.out, r.styles.Success.Render("Replacements made and file saved."))
	return outcome, nil
}

// commit rewrites the unit's file once with all confirmed substitutions.
func (r *Replacer) commit(ctx context.Context, unit *source.Unit, lines []string, outcome *Outcome) error {
	modified, err := fsutil.CheckModified(ctx, unit.Info)
	if err != nil {
		return fmt.Errorf("verify %s: %w", unit.Path, err)
	}
	if modified {
		return fmt.Errorf("%w: %s", ErrSourceChanged, unit.Path)
	}

	if r.Backup {
		created, err := fsutil.CreateBackup(ctx, unit.Path)
		if err != nil {
			return fmt.Errorf("backup %s: %w", unit.Path, err)
		}
		outcome.BackupCreated = created
	}

	content := source.JoinLines(lines, unit.TrailingNewline)
	if err := fsutil.WriteAtomic(ctx, unit.Path, []byte(content), unit.Info.Mode); err != nil {
		return fmt.Errorf("rewrite %s: %w", unit.Path, err)
	}

	outcome.Written = true
	return nil
}

// askReplacement solicits the replacement text for a confirmed match.
func (r *Replacer) askReplacement() (string, bool) {
	fmt.Fprint(r.out, r.styles.Prompt.Render("Replacement text:")+" ")
	return r.read()
}

// read returns the next trimmed answer line; ok is false at end of input.
func (r *Replacer) read() (string, bool) {
	if !r.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.in.Text()), true
}
