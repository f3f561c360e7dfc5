package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raycast/internal/storage"
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "Manage maps saved from the editor",
	Long: `List, export, or delete maps saved with Ctrl+S from the in-world editor.

Examples:
  raycast maps list
  raycast maps export corridor-edited > corridor-edited.yaml
  raycast maps delete corridor-edited`,
}

var mapsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved maps",
	Run:   runMapsList,
}

var mapsExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Print a saved map as YAML",
	Args:  cobra.ExactArgs(1),
	Run:   runMapsExport,
}

var mapsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved map",
	Args:  cobra.ExactArgs(1),
	Run:   runMapsDelete,
}

func init() {
	mapsCmd.AddCommand(mapsListCmd)
	mapsCmd.AddCommand(mapsExportCmd)
	mapsCmd.AddCommand(mapsDeleteCmd)
}

func openMapStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runMapsList(cmd *cobra.Command, args []string) {
	store := openMapStore()
	defer store.Close()

	maps, err := store.ListMaps()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing maps: %v\n", err)
		os.Exit(1)
	}

	if len(maps) == 0 {
		fmt.Println("No saved maps.")
		fmt.Println()
		fmt.Println("Save one with Ctrl+S from the in-world editor (Tab).")
		return
	}

	maxIDLen := 2
	for _, m := range maps {
		if len(m.MapID) > maxIDLen {
			maxIDLen = len(m.MapID)
		}
	}

	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "ID", "Name", "Updated")
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "--", "----", "-------")
	for _, m := range maps {
		fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, m.MapID, m.Name, m.UpdatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Run 'raycast play <id> --saved' to walk a saved map.")
}

func runMapsExport(cmd *cobra.Command, args []string) {
	store := openMapStore()
	defer store.Close()

	entry, err := store.LoadMap(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(entry.Data)
}

func runMapsDelete(cmd *cobra.Command, args []string) {
	store := openMapStore()
	defer store.Close()

	if err := store.DeleteMap(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted %s\n", args[0])
}
