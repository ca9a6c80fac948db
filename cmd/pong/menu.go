package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/rulesets"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick rulesets and replays interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a match with the
selected ruleset. Tab opens the replay browser. After a match ends,
it is saved as a replay and you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select ruleset
  Tab          - Replay browser
  Q            - Quit

Examples:
  pong menu
  pong menu --fps 30
  pong menu --db ./replays.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	gameCfg, err := loadConfig()
	if err != nil {
		fatalf("%v", err)
	}

	logger, closer := fileLogger()
	defer closer.Close()

	// Continue without storage - matches still work
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	rulesetID := rulesets.DefaultID

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg, rulesetID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsReplays {
			if store == nil {
				fmt.Fprintln(os.Stderr, "Replays are unavailable without a database.")
				continue
			}
			if quit := browseReplays(store, gameCfg, cfg, logger); quit {
				return
			}
			continue
		}

		rulesetID = menuResult.RulesetID
		r, settings, err := rulesets.Resolve(rulesetID, gameCfg.Settings())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		// Fresh serves for each match unless the seed is pinned
		matchCfg := cfg
		if flagSeed == 0 {
			matchCfg.Seed = time.Now().UnixNano()
		}

		final, err := tui.Run(tui.MatchOptions{
			Ruleset:  r.ID(),
			Settings: settings,
			Runtime:  matchCfg,
			Controls: gameCfg.Controls,
			Logger:   logger,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running match: %v\n", err)
			continue
		}
		cfg.ScreenW, cfg.ScreenH = final.Config().ScreenW, final.Config().ScreenH

		saveReplay(store, final, logger)
		if final.IsQuitting() {
			return
		}
	}
}

// browseReplays runs the replay browser until the user goes back.
// It reports whether the user quit entirely.
func browseReplays(store *storage.Store, gameCfg config.PongConfig, cfg core.RuntimeConfig, logger *log.Logger) bool {
	for {
		result, err := tui.RunReplayBrowser(store, cfg.ScreenW, cfg.ScreenH, cfg.TickRate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return false
		}

		if result.WatchID == 0 {
			return !result.Back
		}

		final, err := watchReplay(store, result.WatchID, gameCfg, cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if final.IsQuitting() {
			return true
		}
	}
}

// watchReplay plays a stored replay back in the terminal.
func watchReplay(store *storage.Store, id int64, gameCfg config.PongConfig, cfg core.RuntimeConfig, logger *log.Logger) (tui.Model, error) {
	stored, err := store.LoadReplay(id)
	if err != nil {
		return tui.Model{}, err
	}

	cfg.Seed = stored.Replay.Seed
	logger.Info("watching replay", "id", id, "ruleset", stored.Ruleset, "ticks", stored.Ticks)

	return tui.Run(tui.MatchOptions{
		Ruleset:  stored.Replay.Ruleset,
		Settings: stored.Replay.Settings,
		Runtime:  cfg,
		Controls: gameCfg.Controls,
		Logger:   logger,
		Playback: stored.Replay.Runs,
	})
}
