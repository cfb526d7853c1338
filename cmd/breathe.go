package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mindwell/companion/internal"
	"github.com/spf13/cobra"
)

var breatheCycles int

var (
	breathePhaseStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				Bold(true)

	breatheCountStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243"))
)

// breathePhases is a 4-4-4-4 box-breathing cycle.
var breathePhases = []struct {
	label   string
	seconds int
}{
	{"Breathe in", 4},
	{"Hold", 4},
	{"Breathe out", 4},
	{"Hold", 4},
}

// breatheCmd represents the breathe command
var breatheCmd = &cobra.Command{
	Use:   "breathe",
	Short: "A guided box-breathing exercise",
	Long: `Run a guided box-breathing exercise (4s in, 4s hold, 4s out, 4s hold).

Interrupt any time with Ctrl+C; completed exercises count toward the
Breath Master badge.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(true)
		if err != nil {
			return err
		}
		defer env.close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Printf("Box breathing: %d cycle(s). Follow along.\n\n", breatheCycles)
		started := time.Now()

		for cycle := 1; cycle <= breatheCycles; cycle++ {
			fmt.Println(breatheCountStyle.Render(fmt.Sprintf("Cycle %d of %d", cycle, breatheCycles)))
			for _, phase := range breathePhases {
				if err := countdown(ctx, phase.label, phase.seconds); err != nil {
					fmt.Println("\nStopped early. That's okay - even one breath helps.")
					return nil
				}
			}
		}

		fmt.Println("\nWell done. Notice how your body feels now.")
		return finishSession(env, internal.SessionBreathing, int(time.Since(started).Seconds()))
	},
}

func countdown(ctx context.Context, label string, seconds int) error {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for remaining := seconds; remaining > 0; remaining-- {
		fmt.Printf("\r\033[K%s %s",
			breathePhaseStyle.Render(label),
			breatheCountStyle.Render(fmt.Sprintf("%d", remaining)))
		select {
		case <-ticker.C:
		case <-ctx.Done():
			fmt.Println()
			return ctx.Err()
		}
	}

	fmt.Println()
	return nil
}

func init() {
	rootCmd.AddCommand(breatheCmd)
	breatheCmd.Flags().IntVarP(&breatheCycles, "cycles", "c", 4, "Number of breathing cycles")
}
