package main

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// helpExamples collects the "pong ..." lines from a command's long help and
// from every subcommand's.
func helpExamples(cmd *cobra.Command) []string {
	var lines []string
	for _, line := range strings.Split(cmd.Long, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "pong ") {
			continue
		}
		// Drop trailing comments and shell redirections.
		if i := strings.IndexAny(line, "#>"); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		lines = append(lines, line)
	}
	for _, sub := range cmd.Commands() {
		lines = append(lines, helpExamples(sub)...)
	}
	return lines
}

func TestHelpExamplesParse(t *testing.T) {
	examples := helpExamples(rootCmd)
	if len(examples) == 0 {
		t.Fatal("expected help examples")
	}

	for _, ex := range examples {
		t.Run(ex, func(t *testing.T) {
			args := strings.Fields(ex)[1:]
			cmd, rest, err := rootCmd.Find(args)
			if err != nil {
				t.Fatalf("Find(%v) failed: %v", args, err)
			}
			if err := cmd.ParseFlags(rest); err != nil {
				t.Errorf("%q: %v", ex, err)
			}
			if err := cmd.ValidateArgs(cmd.Flags().Args()); err != nil {
				t.Errorf("%q: %v", ex, err)
			}
		})
	}
}
