package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/rulesets"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var flagRecord bool

var playCmd = &cobra.Command{
	Use:   "play [ruleset]",
	Short: "Play a match",
	Long: `Start a hot-seat match with the given ruleset (default: classic).

Controls:
  Left/Right  - Move top paddle
  A/D         - Move bottom paddle
  P/Space     - Pause
  R           - Reset match
  ?           - Toggle help
  Esc/Q       - Quit

Difficulty options:
  easy   - Slower ball, faster paddles, gentle speed-up
  normal - Values from the config file
  hard   - Faster ball, steeper speed-up
  fixed  - Rallies never speed up

Examples:
  pong play
  pong play swept
  pong play tournament --difficulty hard
  pong play custom --config ./my-pong.yaml
  pong play --seed 42 --record=false`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagRecord, "record", true, "Save the match as a replay")
}

func runPlay(_ *cobra.Command, args []string) {
	rulesetID := rulesets.DefaultID
	if len(args) > 0 {
		rulesetID = args[0]
	}

	// Check if ruleset exists
	if !registry.Exists(rulesetID) {
		fmt.Fprintf(os.Stderr, "Error: unknown ruleset %q\n", rulesetID)
		fmt.Fprintln(os.Stderr, "Run 'pong list' to see available rulesets.")
		os.Exit(1)
	}

	gameCfg, err := loadConfig()
	if err != nil {
		fatalf("%v", err)
	}

	r, settings, err := rulesets.Resolve(rulesetID, gameCfg.Settings())
	if err != nil {
		fatalf("%v", err)
	}

	logger, closer := fileLogger()
	defer closer.Close()

	var store *storage.Store
	if flagRecord {
		// Continue without storage - the match still works
		if store = openStore(); store != nil {
			defer store.Close()
		}
	}

	final, err := tui.Run(tui.MatchOptions{
		Ruleset:  r.ID(),
		Settings: settings,
		Runtime:  runtimeConfig(),
		Controls: gameCfg.Controls,
		Logger:   logger,
	})
	if err != nil {
		logger.Error("match failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error running match: %v\n", err)
		return
	}

	saveReplay(store, final, logger)
}

// saveReplay stores a finished live match. Matches with no ticks are skipped.
func saveReplay(store *storage.Store, m tui.Model, logger *log.Logger) {
	if store == nil || m.IsPlayback() || m.Recorded() == 0 {
		return
	}

	id, err := store.SaveReplay(m.Replay())
	if err != nil {
		logger.Error("could not save replay", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not save replay: %v\n", err)
		return
	}

	snap := m.Snapshot()
	logger.Info("replay saved", "id", id, "ticks", m.Recorded(), "top", snap.Scores.Top, "bottom", snap.Scores.Bottom)
	fmt.Printf("Replay #%d saved (top %d, bottom %d). Watch it with 'pong replays watch %d'.\n",
		id, snap.Scores.Top, snap.Scores.Bottom, id)
}
