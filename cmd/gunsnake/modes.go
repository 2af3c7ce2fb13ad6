package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gunsnake/internal/registry"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List the game modes",
	Args:  cobra.NoArgs,
	Run:   runModes,
}

func runModes(_ *cobra.Command, _ []string) {
	modes := registry.List()

	maxIDLen := 2
	for _, m := range modes {
		maxIDLen = max(maxIDLen, len(m.ID))
	}

	fmt.Println("Available modes:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, m := range modes {
		fmt.Printf("  %-*s  %s\n", maxIDLen, m.ID, m.Title)
	}
	fmt.Println()
	fmt.Println("Run 'gunsnake play --mode <id>' to play.")
}
