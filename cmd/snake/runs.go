package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagRunsLimit  int
	flagRunsBrowse bool
	flagRunsClear  bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded runs",
	Long: `Display the most recent finished runs, newest first.

Runs are a journal for replay, not a leaderboard: nothing is ranked.

Examples:
  snake runs
  snake runs --limit 50
  snake runs --browse   # interactive table, Enter replays the run
  snake runs --clear`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVarP(&flagRunsLimit, "limit", "n", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsBrowse, "browse", false, "Open the interactive runs browser")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete every recorded run")
}

func runRuns(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(); err != nil {
			logger.Fatal("cannot clear runs", "error", err)
		}
		fmt.Println("Run journal cleared.")
		return
	}

	if flagRunsBrowse {
		rt := runtimeConfig(config.Default())
		id, err := tui.RunRunsBrowser(store, rt.ScreenW, rt.ScreenH)
		if err != nil {
			logger.Fatal("error running browser", "error", err)
		}
		if id != "" {
			watchRun(store, id)
		}
		return
	}

	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		logger.Fatal("cannot read runs", "error", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' and finish a game to record one.")
		return
	}

	// Print header
	fmt.Printf("  %-8s  %-12s  %6s  %6s  %-10s  %s\n", "Run", "Player", "Length", "Ticks", "Outcome", "Date")
	fmt.Printf("  %-8s  %-12s  %6s  %6s  %-10s  %s\n", "---", "------", "------", "-----", "-------", "----")

	for _, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-8s  %-12.12s  %6d  %6d  %-10s  %s\n",
			shortRunID(r.ID), player, r.Length, r.Ticks, r.Outcome, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
