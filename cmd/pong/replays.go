package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/replay"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagReplayRuleset string
	flagReplayLimit   int
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List recorded matches",
	Long: `Display recorded matches, newest first, followed by per-ruleset totals.

Examples:
  pong replays
  pong replays --ruleset tournament --limit 5
  pong replays show 3
  pong replays watch 3
  pong replays rm 3`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

var replayShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Re-simulate a replay and print its final frame",
	Long: `Re-run a recorded match through the engine without a terminal UI
and print where it ended. The same replay always yields the same result.`,
	Args: cobra.ExactArgs(1),
	Run:  runReplayShow,
}

var replayWatchCmd = &cobra.Command{
	Use:   "watch <id>",
	Short: "Watch a replay in the terminal",
	Args:  cobra.ExactArgs(1),
	Run:   runReplayWatch,
}

var replayRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a replay",
	Args:    cobra.ExactArgs(1),
	Run:     runReplayRm,
}

func init() {
	replaysCmd.Flags().StringVar(&flagReplayRuleset, "ruleset", "", "Only list replays of this ruleset")
	replaysCmd.Flags().IntVar(&flagReplayLimit, "limit", 20, "Maximum number of replays to list")

	replaysCmd.AddCommand(replayShowCmd)
	replaysCmd.AddCommand(replayWatchCmd)
	replaysCmd.AddCommand(replayRmCmd)
}

// mustOpenStore opens the replay database or exits.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening replay database: %v", err)
	}
	return store
}

func parseReplayID(arg string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		fatalf("invalid replay id %q", arg)
	}
	return id
}

// matchLength formats a tick count as play time at the current tick rate.
func matchLength(ticks uint64) string {
	rate := flagFPS
	if rate <= 0 {
		rate = 60
	}
	d := time.Duration(ticks) * time.Second / time.Duration(rate)
	return d.Round(time.Second).String()
}

func runReplays(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	entries, err := store.ListReplays(flagReplayRuleset, flagReplayLimit)
	if err != nil {
		store.Close()
		fatalf("listing replays: %v", err)
	}

	if len(entries) == 0 {
		fmt.Println("No replays recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pong play' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-5s  %-12s  %-8s  %-20s  %s\n", "ID", "Ruleset", "Length", "Seed", "Date")
	fmt.Printf("  %-5s  %-12s  %-8s  %-20s  %s\n", "--", "-------", "------", "----", "----")

	for _, e := range entries {
		fmt.Printf("  %-5d  %-12s  %-8s  %-20d  %s\n",
			e.ID, e.Ruleset, matchLength(e.Ticks), e.Seed, e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.RulesetStats()
	if err != nil || len(stats) == 0 {
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println()
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-12s  %d replays, %s played, last %s\n",
			id, s.Replays, matchLength(uint64(s.TotalTicks)), s.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
}

func runReplayShow(_ *cobra.Command, args []string) {
	id := parseReplayID(args[0])

	store := mustOpenStore()
	stored, err := store.LoadReplay(id)
	store.Close()
	if err != nil {
		fatalf("%v", err)
	}

	snap, err := replay.Play(stored.Replay.Settings, stored.Replay.Seed, stored.Replay.Runs)
	if err != nil {
		fatalf("replaying #%d: %v", id, err)
	}

	s := stored.Replay.Settings
	fmt.Printf("Replay #%d - %s\n", id, stored.Ruleset)
	fmt.Println()
	fmt.Printf("  Recorded:  %s\n", stored.CreatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Printf("  Seed:      %d\n", stored.Replay.Seed)
	fmt.Printf("  Ticks:     %d (%s)\n", stored.Ticks, matchLength(stored.Ticks))
	fmt.Printf("  Policies:  %s collision, %s rebound, %s wall, %s miss\n", s.Collision, s.Rebound, s.Wall, s.Miss)
	fmt.Println()
	fmt.Printf("  Score:     top %d, bottom %d\n", snap.Scores.Top, snap.Scores.Bottom)
	fmt.Printf("  Round:     %d (last rally %d hits)\n", snap.Round, snap.Rally)
	if snap.Status.Over() {
		fmt.Printf("  Result:    %s wins\n", snap.Status.Winner)
	} else if s.ScoreLimit > 0 {
		fmt.Printf("  Result:    unfinished (first to %d)\n", s.ScoreLimit)
	}
}

func runReplayWatch(_ *cobra.Command, args []string) {
	id := parseReplayID(args[0])

	gameCfg, err := loadConfig()
	if err != nil {
		fatalf("%v", err)
	}

	logger, closer := fileLogger()
	defer closer.Close()

	store := mustOpenStore()
	defer store.Close()

	if _, err := watchReplay(store, id, gameCfg, runtimeConfig(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

func runReplayRm(_ *cobra.Command, args []string) {
	id := parseReplayID(args[0])

	store := mustOpenStore()
	defer store.Close()

	if err := store.DeleteReplay(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "Replay #%d does not exist.\n", id)
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("Replay #%d deleted.\n", id)
}
