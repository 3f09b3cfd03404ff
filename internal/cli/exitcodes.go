package cli

import (
	"errors"

	"github.com/LooneyRichie/looneygrep/pkg/search"
)

// Exit codes for looneygrep.
const (
	// ExitSuccess indicates a completed run; no matches is still a success.
	ExitSuccess = 0

	// ExitRunError indicates an I/O, network, or internal failure.
	ExitRunError = 1

	// ExitPartialFailure indicates a completed run in which some sources
	// were skipped or failed to replace.
	ExitPartialFailure = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64
)

// ExitCodeFromError maps a command error to the process exit code.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrPartialFailure):
		return ExitPartialFailure
	case errors.Is(err, search.ErrNoQuery),
		errors.Is(err, search.ErrNoTarget),
		errors.Is(err, search.ErrNegativeContext):
		return ExitInvalidUsage
	default:
		return ExitRunError
	}
}
