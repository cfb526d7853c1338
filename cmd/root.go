package cmd

import (
	"fmt"
	"os"

	"github.com/mindwell/companion/internal"
	"github.com/spf13/cobra"
)

var (
	verbose  bool
	dataDir  string
	userName string
	version  string = "dev"
	commit   string = "unknown"
	date     string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mindwell",
	Short: "A private, offline wellness companion for your terminal",
	Long: `MindWell is a terminal wellness companion. Chat with Maya, a
supportive rule-based companion, track your mood, keep a journal, and
build streaks - all stored encrypted on your own machine.

Nothing ever leaves your computer: there is no network, no account, and
no model. Maya's replies come from a local rule table.

Quick Start:
  mindwell chat --user Sam         # Talk with Maya
  mindwell mood 7 --note "Okay day"
  mindwell journal "Today I..."
  mindwell badges                  # See streaks and achievements
  mindwell export --format md      # Export your conversation

For detailed usage, see: https://github.com/mindwell/companion`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "Custom data directory (default ~/.mindwell)")
	rootCmd.PersistentFlags().StringVarP(&userName, "user", "u", "", "Profile name (default from ~/.mindwell.yaml)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
