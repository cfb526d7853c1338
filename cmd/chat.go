package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/mindwell/companion/internal"
	"github.com/mindwell/companion/internal/companion"
	"github.com/spf13/cobra"
)

var chatDelayMS int

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	mayaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135")).
			Bold(true)

	moodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk with Maya, your wellness companion",
	Long: `Start an interactive conversation with Maya.

Maya greets you on your first visit, remembers the topics from your
recent messages, and tags every reply with a mood. The conversation is
stored encrypted; finish with Ctrl+D, Ctrl+C, or /quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(true)
		if err != nil {
			return err
		}
		defer env.close()

		engine, err := companion.NewEngine()
		if err != nil {
			return fmt.Errorf("failed to load rule table: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		delay := env.cfg.ReplyDelay()
		if cmd.Flags().Changed("delay") {
			delay = time.Duration(chatDelayMS) * time.Millisecond
		}

		history, err := env.store.LoadHistory(env.profile)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		internal.LogDebug("Loaded %d message(s) of history", len(history))

		started := time.Now()

		// First visit gets the one-time welcome.
		if len(history) == 0 {
			welcome := engine.Welcome(env.profile.Name)
			if err := internal.Thinking(ctx, "Maya is thinking...", delay); err != nil {
				return nil
			}
			history = append(history, deliverReply(env, welcome, companion.MoodHappy))
		}

		fmt.Println(hintStyle.Render("Type your message and press Enter. /quit to finish."))
		fmt.Println()

		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		for {
			fmt.Print(promptStyle.Render("You: "))
			if !scanner.Scan() {
				break
			}
			if ctx.Err() != nil {
				break
			}

			text := strings.TrimSpace(scanner.Text())
			if text == "" {
				fmt.Println(hintStyle.Render("(say something - Maya is listening)"))
				continue
			}
			if text == "/quit" || text == "/exit" {
				break
			}

			userMsg := internal.Message{
				ID:        uuid.NewString(),
				Text:      text,
				Sender:    internal.SenderUser,
				Timestamp: time.Now(),
			}
			if err := env.store.AppendMessage(env.profile, userMsg); err != nil {
				return fmt.Errorf("failed to save message: %w", err)
			}

			// The reply is computed immediately; the pause is purely
			// presentational, and cancelling it discards the pending
			// reply instead of applying it to a stale conversation.
			res := engine.Reply(text, history, env.profile.Name)
			history = append(history, userMsg)

			if err := internal.Thinking(ctx, "Maya is thinking...", delay); err != nil {
				internal.LogDebug("Reply discarded: %v", err)
				break
			}

			history = append(history, deliverReply(env, res.Text, res.Mood))
		}

		if err := scanner.Err(); err != nil {
			internal.LogWarn("Input error: %v", err)
		}

		fmt.Println()
		fmt.Println(hintStyle.Render("Take care. Maya will be here when you come back."))

		return finishSession(env, internal.SessionChat, int(time.Since(started).Seconds()))
	},
}

// deliverReply prints a companion reply and persists it.
func deliverReply(env *appEnv, text string, mood companion.Mood) internal.Message {
	fmt.Printf("%s %s %s\n\n",
		mayaStyle.Render("Maya:"),
		text,
		moodStyle.Render(fmt.Sprintf("[%s]", mood)))

	msg := internal.Message{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    internal.SenderCompanion,
		Mood:      string(mood),
		Timestamp: time.Now(),
	}
	if err := env.store.AppendMessage(env.profile, msg); err != nil {
		internal.LogWarn("Failed to save reply: %v", err)
	}

	return msg
}

// finishSession records the session and announces any newly unlocked badges.
func finishSession(env *appEnv, typ internal.SessionType, duration int) error {
	rec := internal.SessionRecord{
		ID:        uuid.NewString(),
		ProfileID: env.profile.ID,
		Type:      typ,
		Duration:  duration,
		Timestamp: time.Now(),
	}
	if err := env.store.RecordSession(env.profile, rec); err != nil {
		return fmt.Errorf("failed to record session: %w", err)
	}

	sessions, err := env.store.LoadSessions(env.profile)
	if err != nil {
		return fmt.Errorf("failed to load sessions: %w", err)
	}

	unlocked, err := env.store.UnlockedBadgeIDs(env.profile)
	if err != nil {
		return fmt.Errorf("failed to load badges: %w", err)
	}

	for _, badge := range internal.EvaluateBadges(sessions, unlocked, time.Now()) {
		if err := env.store.SaveBadge(env.profile, badge); err != nil {
			internal.LogWarn("Failed to save badge %s: %v", badge.ID, err)
			continue
		}
		fmt.Printf("%s %s %s - %s\n",
			badgeStyle.Render("Badge unlocked!"),
			badge.Icon, badge.Name, badge.Description)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().IntVar(&chatDelayMS, "delay", 0, "Reply delay in milliseconds (0 uses config default)")
}
