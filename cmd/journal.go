package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/mindwell/companion/internal"
	"github.com/spf13/cobra"
)

var journalList bool

var (
	journalDateStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("212")).
				Bold(true)

	journalBodyStyle = lipgloss.NewStyle().
				Padding(0, 2).
				MarginBottom(1)
)

// journalCmd represents the journal command
var journalCmd = &cobra.Command{
	Use:   "journal [text...]",
	Short: "Write an encrypted journal entry",
	Long: `Write a journal entry, either inline or from stdin.

  mindwell journal "Slept badly but the walk helped."
  cat notes.txt | mindwell journal
  mindwell journal --list`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if journalList {
			return listJournal()
		}

		content := strings.TrimSpace(strings.Join(args, " "))
		if content == "" {
			// No args: read a full entry from stdin.
			data, err := readStdinEntry()
			if err != nil {
				return err
			}
			content = strings.TrimSpace(data)
		}
		if content == "" {
			return fmt.Errorf("nothing to save: entry is empty")
		}

		env, err := openEnv(true)
		if err != nil {
			return err
		}
		defer env.close()

		entry := internal.JournalEntry{
			ID:        uuid.NewString(),
			ProfileID: env.profile.ID,
			Content:   content,
			Timestamp: time.Now(),
		}
		if err := env.store.SaveJournalEntry(env.profile, entry); err != nil {
			return err
		}

		fmt.Println("Journal entry saved.")
		return finishSession(env, internal.SessionJournal, 0)
	},
}

func readStdinEntry() (string, error) {
	if isInteractive() {
		fmt.Println("Write your entry. Finish with Ctrl+D on an empty line.")
	}

	var sb strings.Builder
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		sb.WriteString(scanner.Text())
		sb.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read entry: %w", err)
	}

	return sb.String(), nil
}

func isInteractive() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

func listJournal() error {
	env, err := openEnv(false)
	if err != nil {
		return err
	}
	defer env.close()

	entries, err := env.store.LoadJournalEntries(env.profile)
	if err != nil {
		return fmt.Errorf("failed to load journal entries: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No journal entries yet. Write one with: mindwell journal \"...\"")
		return nil
	}

	for _, entry := range entries {
		fmt.Println(journalDateStyle.Render(entry.Timestamp.Format("Monday, 2 January 2006 15:04")))
		fmt.Println(journalBodyStyle.Render(entry.Content))
	}

	return nil
}

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.Flags().BoolVar(&journalList, "list", false, "List past journal entries")
}
