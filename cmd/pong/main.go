// pong is a two-player hot-seat Pong for the terminal.
//
// Usage:
//
//	pong list                 - List available rulesets
//	pong play [ruleset]       - Play a match
//	pong menu                 - Pick rulesets and replays interactively
//	pong serve                - Start SSH server for remote hot-seat play
//	pong replays              - List recorded matches
//	pong replays show <id>    - Re-simulate a replay and print the final frame
//	pong replays watch <id>   - Watch a replay in the terminal
//	pong replays rm <id>      - Delete a replay
//	pong config               - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible serves
//	--db <path>           - Set database path (default: ~/.pong/replays.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import rulesets to register them
	_ "github.com/vovakirdan/tui-pong/internal/rulesets"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Terminal Pong - two paddles, one keyboard",
	Long: `Terminal Pong is a hot-seat Pong for two players sharing one keyboard.
The top paddle moves with the arrow keys, the bottom paddle with A and D.

Available commands:
  list     - Show all rulesets
  play     - Play a match directly
  menu     - Interactive ruleset picker and replay browser
  serve    - Start SSH server for remote play
  replays  - Browse, watch and delete recorded matches
  config   - Print the effective configuration

Examples:
  pong list
  pong play swept
  pong play tournament --difficulty hard
  pong menu
  pong serve --ssh :2222
  pong replays watch 3`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pong/replays.db", "Path to replay database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(configCmd)
}
