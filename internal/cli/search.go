package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/LooneyRichie/looneygrep/internal/logging"
	"github.com/LooneyRichie/looneygrep/internal/ui/pretty"
	"github.com/LooneyRichie/looneygrep/pkg/replace"
	"github.com/LooneyRichie/looneygrep/pkg/reporter"
	"github.com/LooneyRichie/looneygrep/pkg/runner"
	"github.com/LooneyRichie/looneygrep/pkg/search"
)

// ErrPartialFailure signals that some sources were skipped or failed while
// the rest of the run succeeded. Main maps it to a distinct exit code.
var ErrPartialFailure = errors.New("some sources could not be processed")

// errNotInteractive rejects a replace run without an interactive stdin.
var errNotInteractive = errors.New("--replace requires an interactive terminal")

func runSearch(cmd *cobra.Command, args []string, flags *searchFlags, color string) error {
	logger := logging.Default()

	cfg := search.Config{
		Query:      args[0],
		IgnoreCase: flags.ignoreCase,
		Replace:    flags.replace,
		URL:        flags.url,
		Context:    flags.context,
		SearchAll:  flags.all,
	}
	if len(args) == 2 {
		cfg.FilePath = args[1]
	}

	// Input errors terminate the run before any I/O.
	if err := cfg.Validate(); err != nil {
		return err
	}

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	if cfg.Replace && format != reporter.FormatText {
		return fmt.Errorf("--replace is interactive and requires text output, not %s", format)
	}

	if cfg.Replace && cfg.URL == "" && !stdinIsTerminal(cmd) {
		return errNotInteractive
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger.Debug("starting search",
		logging.FieldQuery, cfg.Query,
		logging.FieldPath, cfg.FilePath,
		logging.FieldURL, cfg.URL,
		logging.FieldIgnoreCase, cfg.IgnoreCase,
		logging.FieldContext, cfg.Context,
		logging.FieldSearchAll, cfg.SearchAll,
	)

	result, err := runner.Run(ctx, runner.Options{Config: cfg})
	if err != nil {
		return err
	}

	for _, skip := range result.Skipped {
		logger.Warn("skipping unreadable source",
			logging.FieldPath, skip.Path,
			logging.FieldError, skip.Err,
		)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:       cmd.OutOrStdout(),
		Format:       format,
		Color:        color,
		Context:      cfg.Context,
		Syntax:       !flags.noSyntax,
		ShowHeaders:  cfg.SearchAll || len(result.Units) > 1,
		ShowTypeNote: true,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	replaceFailures := runUnits(ctx, cmd, cfg, flags, color, result, rep)

	if err := rep.Finish(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	logger.Debug("search finished",
		logging.FieldUnits, result.Stats.UnitsSearched,
		logging.FieldUnitsSkipped, result.Stats.UnitsSkipped,
		logging.FieldMatches, result.Stats.MatchesTotal,
		logging.FieldLinesReplaced, result.Stats.LinesReplaced,
	)

	if skipped := result.Stats.UnitsSkipped + replaceFailures; skipped > 0 {
		return fmt.Errorf("%w (%d)", ErrPartialFailure, skipped)
	}

	return nil
}

// runUnits reports each unit in order and interleaves the replace workflow.
// It returns the number of units whose replace operation failed.
func runUnits(
	ctx context.Context,
	cmd *cobra.Command,
	cfg search.Config,
	flags *searchFlags,
	color string,
	result *runner.Result,
	rep reporter.Reporter,
) int {
	logger := logging.Default()

	var replacer *replace.Replacer
	if cfg.Replace {
		styles := pretty.NewStyles(pretty.IsColorEnabled(color, cmd.OutOrStdout()))
		replacer = replace.New(cmd.InOrStdin(), cmd.OutOrStdout(), styles)
		replacer.Backup = flags.backup
	}

	var failures int

	for i := range result.Units {
		outcome := &result.Units[i]

		if err := rep.ReportUnit(ctx, outcome); err != nil {
			logger.Error("report failed", logging.FieldError, err)
			return failures
		}

		if replacer == nil || len(outcome.Matches) == 0 {
			continue
		}

		if !outcome.Unit.IsFile() {
			logger.Warn("replace is not supported when searching a URL; no changes will be made",
				logging.FieldURL, outcome.Unit.Label)
			continue
		}

		replOutcome, err := replacer.Run(ctx, outcome.Unit, outcome.Matches, cfg)
		if err != nil {
			// A failed commit is fatal for this file only; other files proceed.
			logger.Error("replace failed",
				logging.FieldPath, outcome.Unit.Path,
				logging.FieldError, err,
			)
			failures++
			continue
		}

		result.RecordReplacement(replOutcome.LinesReplaced, replOutcome.Written)
	}

	return failures
}

// stdinIsTerminal reports whether the command's input is an interactive TTY.
// A redirected stdin (tests, pipes) counts as non-interactive only when it
// is the real process stdin.
func stdinIsTerminal(cmd *cobra.Command) bool {
	in := cmd.InOrStdin()
	f, ok := in.(*os.File)
	if !ok {
		// A non-file reader was injected; trust the caller.
		return true
	}
	return term.IsTerminal(int(f.Fd()))
}
