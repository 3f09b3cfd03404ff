// Package cli provides the Cobra command structure for looneygrep.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/LooneyRichie/looneygrep/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root looneygrep command.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var color string

	flags := newSearchFlags()

	rootCmd := &cobra.Command{
		Use:   "looneygrep <query> [filename]",
		Short: "A feature-rich substring search over files, directories, and web pages",
		Long: `looneygrep searches files, whole directories, or fetched web pages for a
query substring. Matches are reported with optional surrounding context,
case-insensitive comparison, syntax-aware highlighting, and an interactive
replace-in-place workflow.

Examples:
  looneygrep frog poem.txt                 # Search a single file
  looneygrep frog poem.txt --context 2     # Two lines of context per match
  looneygrep Frog poem.txt --ignore-case   # Case-insensitive comparison
  looneygrep frog --all                    # Search every file in the directory
  looneygrep frog --url https://e.com/p    # Search a fetched web page
  looneygrep frog poem.txt --replace       # Prompt to replace each match
  looneygrep frog poem.txt --format json   # Machine-readable output`,
		Args: cobra.RangeArgs(1, 2),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, flags, color)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	addSearchFlags(rootCmd, flags)

	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// searchFlags holds the root command's flag values.
type searchFlags struct {
	ignoreCase bool
	replace    bool
	context    int
	url        string
	all        bool
	format     string
	backup     bool
	noSyntax   bool
}

// newSearchFlags seeds defaults. The IGNORE_CASE environment variable
// pre-sets case-insensitive matching.
func newSearchFlags() *searchFlags {
	return &searchFlags{
		ignoreCase: os.Getenv("IGNORE_CASE") != "",
	}
}

func addSearchFlags(cmd *cobra.Command, flags *searchFlags) {
	cmd.Flags().BoolVar(&flags.ignoreCase, "ignore-case", flags.ignoreCase,
		"case-insensitive comparison")
	cmd.Flags().BoolVar(&flags.replace, "replace", false,
		"prompt to replace each match and rewrite the file")
	cmd.Flags().IntVar(&flags.context, "context", 0,
		"lines of context on each side of a match")
	cmd.Flags().StringVar(&flags.url, "url", "",
		"fetch and search a web page instead of a file")
	cmd.Flags().BoolVar(&flags.all, "all", false,
		"search every file in the current directory")
	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")
	cmd.Flags().BoolVar(&flags.backup, "backup", false,
		"write a sidecar backup before replacing")
	cmd.Flags().BoolVar(&flags.noSyntax, "no-syntax", false,
		"disable syntax-aware highlighting of context lines")
}
