package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/logging"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// loadConfig loads the config file, applies the difficulty preset and validates the result.
func loadConfig() (config.PongConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.PongConfig{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.PongConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return config.PongConfig{}, err
	}
	return cfg, nil
}

// runtimeConfig sizes the screen to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// fileLogger logs to ~/.pong/pong.log, since stderr belongs to the alt screen
// while a match runs. It falls back to discarding.
func fileLogger() (*log.Logger, io.Closer) {
	path := config.UserPath("pong.log")
	if path == "" {
		return logging.Discard(), io.NopCloser(nil)
	}

	logger, closer, err := logging.OpenFile(path, "pong", flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return logging.Discard(), io.NopCloser(nil)
	}
	return logger, closer
}

// openStore opens the replay database, or returns nil with a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open replay database: %v\n", err)
		return nil
	}
	return store
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
