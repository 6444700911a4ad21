package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/loop"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagReplayWatch bool

var replayCmd = &cobra.Command{
	Use:   "replay <run-id>",
	Short: "Re-simulate a recorded run",
	Long: `Re-run a recorded game from its seed and inputs and check that it
ends exactly as recorded. The run ID may be shortened to any unique prefix.

Examples:
  snake replay 1a2b3c4d
  snake replay 1a2b --watch   # play it back in the terminal`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVarP(&flagReplayWatch, "watch", "w", false, "Play the run back in the terminal at the configured tick rate")
}

func runReplay(_ *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	if flagReplayWatch {
		watchRun(store, args[0])
		return
	}

	entry, rec := loadRecording(store, args[0])
	snap := loop.Replay(rec)

	// Final board as plain text
	w, h := tui.MinScreenSize(rec.Board)
	screen := core.NewScreen(w, h)
	tui.DrawBoard(screen, snap, tui.DefaultTheme(), "Replay "+shortRunID(entry.ID), tui.Overlay{})
	fmt.Println(screen.String())
	fmt.Println()

	fmt.Printf("  %-10s  %10s  %10s\n", "", "Recorded", "Replayed")
	fmt.Printf("  %-10s  %10d  %10d\n", "Ticks", rec.Ticks, snap.Tick)
	fmt.Printf("  %-10s  %10d  %10d\n", "Length", rec.Length, snap.Length())
	fmt.Printf("  %-10s  %10s  %10s\n", "Outcome", rec.Outcome, snap.Outcome)

	if !rec.Matches(snap) {
		logger.Error("replay diverged from the recording", "run", entry.ID)
		os.Exit(1)
	}
	fmt.Println()
	fmt.Println("Replay matches the recording.")
}

// watchRun animates a stored run in the terminal.
func watchRun(store *storage.Store, id string) {
	cfg := loadConfig()
	entry, rec := loadRecording(store, id)

	rt := runtimeConfig(cfg)
	if err := tui.RunReplay(rec, shortRunID(entry.ID), tui.ThemeFromConfig(cfg.Theme), rt); err != nil {
		logger.Fatal("error running replay", "error", err)
	}
}

// loadRecording finds a run by ID or prefix and decodes it.
func loadRecording(store *storage.Store, id string) (storage.RunEntry, loop.Recording) {
	entry, err := store.FindRun(id)
	if err != nil {
		logger.Fatal("cannot find run", "id", id, "error", err)
	}
	rec, err := entry.Recording()
	if err != nil {
		logger.Fatal("cannot decode run", "id", entry.ID, "error", err)
	}
	logger.Debug("loaded run", "id", entry.ID, "seed", rec.Seed, "moves", len(rec.Moves))
	return entry, rec
}
