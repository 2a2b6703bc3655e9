package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pursuit/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes and levels",
	Long:  `Shows the registered game modes and the maps of the current level pack.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	fmt.Println("Game modes:")
	fmt.Println()
	maxIDLen := 2
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	pack := currentPack()
	fmt.Println()
	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-3s  %-20s  %-7s  %s\n", "#", "Name", "Size", "Key")
	fmt.Printf("  %-3s  %-20s  %-7s  %s\n", "-", "----", "----", "---")
	for i, lvl := range pack {
		w, h := lvl.Size()
		fmt.Printf("  %-3d  %-20s  %-7s  %s\n", i+1, lvl.Name, fmt.Sprintf("%dx%d", w, h), lvl.Fingerprint())
	}

	fmt.Println()
	fmt.Println("Run 'pursuit play --level <n>' to start at a level.")
}
