package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rescue/internal/registry"
	"github.com/vovakirdan/tui-rescue/internal/storage"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs [game]",
	Short: "Show recent missions",
	Long: `List the most recent finished missions, newest first.

Each run shows its outcome and the seed it was played with, so a
mission can be replayed with --seed.

Examples:
  rescue runs
  rescue runs patrol --limit 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVarP(&flagRunsLimit, "limit", "n", 20, "Number of runs to show")
}

func runRuns(cmd *cobra.Command, args []string) {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
			os.Exit(1)
		}
	}

	store, err := storage.Open(opts.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.RecentRuns(gameID, flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	if len(runs) == 0 {
		fmt.Println("No missions recorded yet.")
		return
	}

	fmt.Printf("  %-8s  %-7s  %-8s  %-8s  %-8s  %-20s  %s\n", "ID", "Game", "Outcome", "Score", "Saved", "Seed", "When")
	for _, r := range runs {
		outcome := "lost"
		if r.Won {
			outcome = "won"
		}
		fmt.Printf("  %-8s  %-7s  %-8s  %-8s  %-8s  %-20d  %s (%s)\n",
			r.ID[:min(8, len(r.ID))],
			r.GameID,
			outcome,
			humanize.Comma(int64(r.Score)),
			fmt.Sprintf("%d/%d", r.Rescues, r.Target),
			r.Seed,
			humanize.Time(r.CreatedAt),
			r.Duration.Round(time.Second),
		)
	}
}
