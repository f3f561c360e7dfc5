package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raycast/internal/storage"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions [world]",
	Short: "Show recent play sessions",
	Long: `Display the latest recorded sessions, optionally filtered by world.

Examples:
  raycast sessions
  raycast sessions portal-loop`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSessions,
}

func runSessions(cmd *cobra.Command, args []string) {
	worldID := ""
	if len(args) > 0 {
		worldID = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	sessions, err := store.RecentSessions(worldID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	if worldID != "" {
		fmt.Printf("Recent sessions - %s\n", worldID)
	} else {
		fmt.Println("Recent sessions")
	}
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'raycast play <world>' to leave the first trace!")
		return
	}

	fmt.Printf("  %-16s  %-14s  %-8s  %-8s  %s\n", "Date", "World", "Steps", "Portals", "Time")
	fmt.Printf("  %-16s  %-14s  %-8s  %-8s  %s\n", "----", "-----", "-----", "-------", "----")

	for _, s := range sessions {
		dateStr := s.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-16s  %-14s  %-8d  %-8d  %ds\n", dateStr, s.WorldID, s.Steps, s.Teleports, s.Duration)
	}
}
