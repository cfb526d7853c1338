package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/mindwell/companion/internal"
	"github.com/mindwell/companion/internal/companion"
	"github.com/spf13/cobra"
)

var healthcheckVerbose bool

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check that mindwell can reach its data and that the rule table loads",
	Long: `Check the health of mindwell by verifying:
  • Config and data directory resolution
  • Database accessibility and schema
  • Profile inventory
  • Companion rule table validity

Useful when the data directory has been moved or synced between machines.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(sectionStyle.Render("MindWell Health Check"))
		fmt.Println()

		// Step 1: Config
		fmt.Println(infoStyle.Render("Step 1: Loading configuration..."))
		cfg, err := internal.LoadConfig()
		if err != nil {
			fmt.Println(errorStyle.Render("✗ Failed to load config:"), err)
			os.Exit(1)
		}
		fmt.Println(successStyle.Render("✓ Configuration loaded"))
		if healthcheckVerbose {
			fmt.Printf("   Reply delay: %s\n", cfg.ReplyDelay())
			if cfg.DefaultUser != "" {
				fmt.Printf("   Default user: %s\n", cfg.DefaultUser)
			}
		}
		fmt.Println()

		// Step 2: Data directory
		fmt.Println(infoStyle.Render("Step 2: Resolving data directory..."))
		dir, err := internal.ResolveDataDir(dataDir, cfg)
		if err != nil {
			fmt.Println(errorStyle.Render("✗ Failed to resolve data directory:"), err)
			os.Exit(1)
		}
		fmt.Println(successStyle.Render("✓ Data directory resolved"))
		if healthcheckVerbose {
			fmt.Printf("   Path: %s\n", dir)
			fmt.Printf("   Database: %s\n", filepath.Join(dir, internal.DatabaseFile))
		}
		fmt.Println()

		// Step 3: Database
		fmt.Println(infoStyle.Render("Step 3: Opening database..."))
		db, err := internal.OpenDatabase(dir)
		if err != nil {
			fmt.Println(errorStyle.Render("✗ Failed to open database:"), err)
			os.Exit(1)
		}
		defer func() { _ = db.Close() }()
		fmt.Println(successStyle.Render("✓ Database open, schema applied"))
		fmt.Println()

		// Step 4: Profiles
		fmt.Println(infoStyle.Render("Step 4: Checking profiles..."))
		store := internal.NewStore(db)
		profiles, err := store.ListProfiles()
		if err != nil {
			fmt.Println(errorStyle.Render("✗ Failed to list profiles:"), err)
			os.Exit(1)
		}
		if len(profiles) == 0 {
			fmt.Println(warningStyle.Render("⚠ No profiles yet (created on first chat)"))
		} else {
			fmt.Println(successStyle.Render(fmt.Sprintf("✓ Found %d profile(s)", len(profiles))))
			if healthcheckVerbose {
				for _, p := range profiles {
					history, err := store.LoadHistory(p)
					if err != nil {
						fmt.Printf("   %s: failed to load history: %v\n", p.Name, err)
						continue
					}
					fmt.Printf("   %s: %d message(s)\n", p.Name, len(history))
				}
			}
		}
		fmt.Println()

		// Step 5: Rule table
		fmt.Println(infoStyle.Render("Step 5: Validating companion rule table..."))
		if err := companion.ValidateTable(companion.DefaultTable); err != nil {
			fmt.Println(errorStyle.Render("✗ Rule table invalid:"), err)
			os.Exit(1)
		}
		fmt.Println(successStyle.Render(fmt.Sprintf("✓ Rule table valid (%d categories)", len(companion.DefaultTable))))
		fmt.Println()

		fmt.Println(successStyle.Render("All checks passed."))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
	healthcheckCmd.Flags().BoolVar(&healthcheckVerbose, "detail", false, "Show paths and per-profile detail")
}
