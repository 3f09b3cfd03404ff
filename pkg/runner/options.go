// Package runner orchestrates a search run: it resolves the configured
// target into source units, matches each in order, and accumulates a Result.
package runner

import "github.com/LooneyRichie/looneygrep/pkg/search"

// Options controls a single run.
type Options struct {
	// Config is the validated search configuration.
	Config search.Config

	// WorkingDir is the directory enumerated when Config.SearchAll is set.
	// If empty, the current process working directory is used.
	WorkingDir string
}

// effectiveWorkDir returns the directory to enumerate, defaulting to ".".
func (o Options) effectiveWorkDir() string {
	if o.WorkingDir == "" {
		return "."
	}
	return o.WorkingDir
}
