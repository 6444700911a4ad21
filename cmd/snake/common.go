package main

import (
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// loadConfig resolves the game config: file, then SNAKE_* variables, then flags.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}
	if err := config.ApplyEnv(&cfg, os.LookupEnv); err != nil {
		logger.Fatal("bad environment override", "error", err)
	}
	if flagTick > 0 {
		cfg.Loop.TickMS = flagTick
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", "error", err)
	}
	return cfg
}

// dbPath returns the run journal path from --db, SNAKE_DB or the default.
func dbPath() string {
	if flagDBPath != "" {
		return flagDBPath
	}
	if v, ok := os.LookupEnv(config.EnvDBPath); ok && v != "" {
		return v
	}
	return defaultDBPath
}

// mustOpenStore opens the run journal or exits.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(dbPath())
	if err != nil {
		logger.Fatal("cannot open run journal", "path", dbPath(), "error", err)
	}
	return store
}

// runtimeConfig sizes the session to stdout and takes the tick period from
// the config. Off a terminal it keeps the 80x24 default.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}
	rt.Interval = cfg.Interval()
	rt.Seed = flagSeed
	return rt
}

// shortRunID is the ID prefix shown in listings.
func shortRunID(id string) string {
	return id[:min(8, len(id))]
}
