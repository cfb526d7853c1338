package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mindwell/companion/internal"
	"github.com/spf13/cobra"
)

var historyLimit int

var (
	// Styles for history command
	historyHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212")).
				Padding(0, 1).
				MarginBottom(1)

	historyMetaStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243")).
				MarginBottom(1)

	userLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true).
			Padding(0, 1)

	companionLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("135")).
				Bold(true).
				Padding(0, 1)

	messageBodyStyle = lipgloss.NewStyle().
				Padding(0, 2).
				MarginBottom(1)

	historyTimeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Italic(true)
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show your conversation with Maya",
	Long:  `Display the stored (and decrypted) conversation history for a profile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(false)
		if err != nil {
			return err
		}
		defer env.close()

		messages, err := env.store.LoadHistory(env.profile)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}

		fmt.Println(historyHeaderStyle.Render(fmt.Sprintf("Conversation with %s", env.profile.Name)))
		fmt.Println(historyMetaStyle.Render(fmt.Sprintf("%d message(s)", len(messages))))

		if len(messages) == 0 {
			fmt.Println(historyMetaStyle.Render("No messages yet. Start with: mindwell chat"))
			return nil
		}

		if historyLimit > 0 && len(messages) > historyLimit {
			skipped := len(messages) - historyLimit
			messages = messages[skipped:]
			fmt.Println(historyMetaStyle.Render(fmt.Sprintf("(showing last %d, %d earlier hidden)", historyLimit, skipped)))
		}

		for _, msg := range messages {
			label := userLabelStyle.Render(env.profile.Name)
			if msg.Sender == internal.SenderCompanion {
				label = companionLabelStyle.Render("Maya")
			}

			meta := msg.Timestamp.Format("2006-01-02 15:04")
			if msg.Mood != "" {
				meta += " · " + msg.Mood
			}

			fmt.Printf("%s %s\n", label, historyTimeStyle.Render(meta))
			fmt.Println(messageBodyStyle.Render(msg.Text))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 0, "Show only the last N messages (0 = all)")
}
