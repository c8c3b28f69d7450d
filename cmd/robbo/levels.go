package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-robbo/internal/games/robbo/levels"
	"github.com/vovakirdan/tui-robbo/internal/games/robbo/sim"
	"github.com/vovakirdan/tui-robbo/internal/registry"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Long: `Shows the built-in levels and any found in --levels-dir.
A directory level with the same id replaces the built-in one.`,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	lvls, err := levels.All(flagLevelsDir)
	if err != nil {
		return err
	}
	if len(lvls) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	maxIDLen := 2
	for _, l := range lvls {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	for _, g := range registry.List() {
		fmt.Printf("Game: %s (%s)\n", g.Title, g.ID)
	}
	fmt.Println("Available levels:")
	fmt.Println()
	fmt.Printf("  %-*s  %-7s  %-9s  %-8s  %-8s  %s\n", maxIDLen, "ID", "Size", "Creatures", "Source", "Author", "Name")
	fmt.Printf("  %-*s  %-7s  %-9s  %-8s  %-8s  %s\n", maxIDLen, "--", "----", "---------", "------", "------", "----")

	for _, l := range lvls {
		creatures := 0
		for _, s := range l.Spawns {
			if s.Kind == sim.KindBird || s.Kind == sim.KindLBear {
				creatures++
			}
		}
		source := "builtin"
		if l.FilePath != "" {
			source = "dir"
		}
		fmt.Printf("  %-*s  %-7s  %-9d  %-8s  %-8s  %s\n",
			maxIDLen, l.ID, fmt.Sprintf("%dx%d", l.Width, l.Height), creatures, source, l.Author(), l.Name)
	}

	fmt.Println()
	fmt.Println("Run 'robbo play <id>' to play a level.")
	return nil
}
