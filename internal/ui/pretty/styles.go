// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Match components
	MatchSpan  lipgloss.Style
	LineNumber lipgloss.Style
	SourceLine lipgloss.Style
	Separator  lipgloss.Style

	// Source unit components
	FilePath lipgloss.Style
	TypeNote lipgloss.Style

	// Replace prompt components
	Prompt lipgloss.Style

	// Summary styles
	Success lipgloss.Style
	Failure lipgloss.Style
	Warning lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		MatchSpan:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		LineNumber: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		SourceLine: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Separator:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		FilePath: lipgloss.NewStyle().Bold(true),
		TypeNote: lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),

		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		MatchSpan:  plain,
		LineNumber: plain,
		SourceLine: plain,
		Separator:  plain,
		FilePath:   plain,
		TypeNote:   plain,
		Prompt:     plain,
		Success:    plain,
		Failure:    plain,
		Warning:    plain,
		Dim:        plain,
		Bold:       plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Honor the NO_COLOR convention (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
