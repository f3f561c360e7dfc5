package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raycast/internal/registry"
)

var worldsCmd = &cobra.Command{
	Use:   "worlds",
	Short: "List all available worlds",
	Long:  `Shows the built-in worlds. Maps saved from the editor are listed by 'raycast maps list'.`,
	Run:   runWorlds,
}

func runWorlds(cmd *cobra.Command, args []string) {
	infos := registry.List()

	if len(infos) == 0 {
		fmt.Println("No worlds available.")
		return
	}

	fmt.Println("Available worlds:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, w := range infos {
		if len(w.ID) > maxIDLen {
			maxIDLen = len(w.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Name")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "----")

	for _, w := range infos {
		fmt.Printf("  %-*s  %s\n", maxIDLen, w.ID, w.Name)
	}

	fmt.Println()
	fmt.Println("Run 'raycast play <id>' to walk a world.")
}
