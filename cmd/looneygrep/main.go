// Package main is the entry point for the looneygrep CLI.
package main

import (
	"errors"
	"os"

	"github.com/LooneyRichie/looneygrep/internal/cli"
	"github.com/LooneyRichie/looneygrep/internal/logging"
)

// Build-time variables set via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.Execute()
	if err != nil {
		logger := logging.Default()
		if errors.Is(err, cli.ErrPartialFailure) {
			logger.Warn("run finished with warnings", logging.FieldError, err)
		} else {
			logger.Error("command failed", logging.FieldError, err)
		}
	}

	return cli.ExitCodeFromError(err)
}
