package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/rulesets"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available rulesets",
	Long:  `Shows every registered ruleset together with the policies it selects.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	all := registry.List()

	if len(all) == 0 {
		fmt.Println("No rulesets available.")
		return
	}

	fmt.Println("Available rulesets:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, r := range all {
		maxIDLen = max(maxIDLen, len(r.ID))
		maxTitleLen = max(maxTitleLen, len(r.Title))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Summary")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-------")

	for _, r := range all {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, r.ID, maxTitleLen, r.Title, r.Summary)
	}

	fmt.Println()
	fmt.Printf("Run 'pong play <id>' to start a match (default: %s).\n", rulesets.DefaultID)
}
