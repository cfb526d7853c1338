package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mindwell/companion/internal"
	"github.com/spf13/cobra"
)

var (
	badgesHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62")).
				Underline(true)

	unlockedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	lockedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	statValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)
)

// badgesCmd represents the badges command
var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Show streaks, session stats, and achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(false)
		if err != nil {
			return err
		}
		defer env.close()

		sessions, err := env.store.LoadSessions(env.profile)
		if err != nil {
			return fmt.Errorf("failed to load sessions: %w", err)
		}

		unlocked, err := env.store.UnlockedBadgeIDs(env.profile)
		if err != nil {
			return fmt.Errorf("failed to load badges: %w", err)
		}

		streak := internal.Streak(sessions, time.Now())

		fmt.Println(badgesHeaderStyle.Render(fmt.Sprintf("%s's progress", env.profile.Name)))
		fmt.Println()
		fmt.Printf("Current streak: %s\n", statValueStyle.Render(fmt.Sprintf("%d day(s)", streak)))
		fmt.Printf("Total sessions: %s\n", statValueStyle.Render(fmt.Sprintf("%d", len(sessions))))
		fmt.Println()

		for _, def := range internal.BadgeDefinitions {
			if at, ok := unlocked[def.ID]; ok {
				fmt.Printf("%s %s %s - %s %s\n",
					unlockedStyle.Render("●"),
					def.Icon, def.Name, def.Description,
					lockedStyle.Render(fmt.Sprintf("(unlocked %s)", at.Format("2006-01-02"))))
			} else {
				fmt.Println(lockedStyle.Render(fmt.Sprintf("○ %s %s - %s", def.Icon, def.Name, def.Description)))
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(badgesCmd)
}
