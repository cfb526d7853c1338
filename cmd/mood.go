package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/mindwell/companion/internal"
	"github.com/spf13/cobra"
)

var (
	moodNote string
	moodList bool
)

var (
	moodScaleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	moodNoteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// moodCmd represents the mood command
var moodCmd = &cobra.Command{
	Use:   "mood [1-10]",
	Short: "Record how you're feeling on a 1-10 scale",
	Long: `Record a mood check-in. Notes are stored encrypted.

  mindwell mood 7 --note "Pretty good day"
  mindwell mood --list`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if moodList {
			return listMoods()
		}

		if len(args) == 0 {
			return fmt.Errorf("mood value required (1-10), or use --list")
		}

		value, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("mood must be a number 1-10, got %q", args[0])
		}

		env, err := openEnv(true)
		if err != nil {
			return err
		}
		defer env.close()

		entry := internal.MoodEntry{
			ID:        uuid.NewString(),
			ProfileID: env.profile.ID,
			Mood:      value,
			Note:      moodNote,
			Timestamp: time.Now(),
		}
		if err := env.store.SaveMoodEntry(env.profile, entry); err != nil {
			return err
		}

		fmt.Printf("Mood recorded: %s\n", renderMoodBar(value))
		return finishSession(env, internal.SessionMood, 0)
	},
}

func listMoods() error {
	env, err := openEnv(false)
	if err != nil {
		return err
	}
	defer env.close()

	entries, err := env.store.LoadMoodEntries(env.profile)
	if err != nil {
		return fmt.Errorf("failed to load mood entries: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No mood entries yet. Record one with: mindwell mood 7")
		return nil
	}

	for _, entry := range entries {
		line := fmt.Sprintf("%s  %s", entry.Timestamp.Format("2006-01-02 15:04"), renderMoodBar(entry.Mood))
		if entry.Note != "" {
			line += "  " + moodNoteStyle.Render(entry.Note)
		}
		fmt.Println(line)
	}

	return nil
}

// renderMoodBar renders a 1-10 value as a filled bar.
func renderMoodBar(value int) string {
	bar := strings.Repeat("█", value) + strings.Repeat("░", 10-value)
	return moodScaleStyle.Render(bar) + fmt.Sprintf(" %d/10", value)
}

func init() {
	rootCmd.AddCommand(moodCmd)
	moodCmd.Flags().StringVarP(&moodNote, "note", "n", "", "Optional note for this check-in")
	moodCmd.Flags().BoolVar(&moodList, "list", false, "List past mood entries")
}
