// snake is a single-player grid snake game for the terminal.
//
// Usage:
//
//	snake [play]          - Play a game (default command)
//	snake serve           - Start SSH server, one game per session
//	snake runs            - List recorded runs
//	snake replay <id>     - Re-simulate a recorded run
//
// Global flags:
//
//	--config <path> - Game config YAML (default: search ~/.snake/configs, ./configs)
//	--seed <value>  - RNG seed for the first run
//	--tick <ms>     - Tick period override in milliseconds
//	--db <path>     - Run journal path (default: $SNAKE_DB or ~/.snake/runs.db)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

const defaultDBPath = "~/.snake/runs.db"

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagTick    int
	flagDBPath  string
	flagEnvFile string
	flagVerbose bool
)

// logger writes CLI diagnostics to stderr.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "snake",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Steer the snake with WASD or the arrow keys, eat food to grow,
and avoid the walls and your own body.

Available commands:
  play     - Play a game (default)
  serve    - Start SSH server for remote play
  runs     - List or browse recorded runs
  replay   - Re-simulate a recorded run from its seed and inputs

Examples:
  snake
  snake play --seed 42
  snake serve --ssh :2222
  snake runs --browse
  snake replay 1a2b3c4d --watch`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
		if err := config.LoadDotEnv(flagEnvFile); err != nil {
			logger.Warn("ignoring env file", "error", err)
		}
	},
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for the first run (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagTick, "tick", 0, "Tick period in milliseconds (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run journal (default $"+config.EnvDBPath+" or "+defaultDBPath+")")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Env file loaded before applying SNAKE_* overrides")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
}
