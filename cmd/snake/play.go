package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagDebugLog string
	flagNoRecord bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game on the configured board (30x30 cells by default).

Controls:
  W/A/S/D, arrows - Change direction (reversing is ignored)
  R               - Restart after game over
  Q/Ctrl+C        - Quit

Every finished run is recorded in the run journal with its seed and
inputs so it can be replayed with 'snake replay'.

Examples:
  snake play
  snake play --seed 42
  snake play --tick 150
  snake play --config ./my-snake.yaml
  snake play --debug-log snake.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDebugLog, "debug-log", "", "Write game logs to this file")
	playCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not record finished runs")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	// The alternate screen owns the terminal, so game logs go to a file or nowhere.
	gameLog := log.New(io.Discard)
	if flagDebugLog != "" {
		f, err := tea.LogToFileWith(flagDebugLog, "snake", gameLog)
		if err != nil {
			logger.Fatal("cannot open debug log", "path", flagDebugLog, "error", err)
		}
		defer f.Close()
		gameLog.SetLevel(log.DebugLevel)
		gameLog.SetReportTimestamp(true)
	}

	opts := tui.ModelOptions{
		Player: os.Getenv("USER"),
		Logger: gameLog,
	}

	if !flagNoRecord {
		store, err := storage.Open(dbPath())
		if err != nil {
			// Continue without storage - game still works
			logger.Warn("could not open run journal, runs will not be recorded", "error", err)
		} else {
			defer store.Close()
			opts.Journal = store
		}
	}

	opts.Runtime = runtimeConfig(cfg)
	width, height := opts.Runtime.ScreenW, opts.Runtime.ScreenH

	board, _ := cfg.SnakeBoard()
	if w, h := tui.MinScreenSize(board); width < w || height < h+1 {
		logger.Warn("terminal is smaller than the board, resize to play",
			"need", fmt.Sprintf("%dx%d", w, h+1), "have", fmt.Sprintf("%dx%d", width, height))
	}

	model, err := tui.NewModel(cfg, opts)
	if err != nil {
		logger.Fatal("cannot create game", "error", err)
	}

	if err := tui.Run(model); err != nil {
		logger.Fatal("error running game", "error", err)
	}
}
