package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var flagShowDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a match would use, after the config file
search and the difficulty preset, as YAML. Use it as a starting point for
~/.pong/configs/pong.yaml.

Examples:
  pong config
  pong config --difficulty hard
  pong config --defaults > ~/.pong/configs/pong.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagShowDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagShowDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fatalf("%v", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Print(string(data))
}
