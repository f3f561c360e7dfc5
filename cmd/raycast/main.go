// raycast is a first-person TUI raycaster: walk a grid world of walls,
// one-sided mirrors, and portals, rendered as text in your terminal.
//
// Usage:
//
//	raycast worlds            - List available worlds
//	raycast play <world>      - Walk a world
//	raycast menu              - Start the interactive world picker
//	raycast serve             - Start SSH server for remote play
//	raycast sessions [world]  - Show recent play sessions
//	raycast maps              - Manage maps saved from the editor
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible sessions
//	--db <path>     - Set database path (default: ~/.raycast/raycast.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import worlds to register the built-in levels
	_ "github.com/vovakirdan/tui-raycast/internal/worlds"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "raycast",
	Short: "Raycast - a first-person grid world in your terminal",
	Long: `Raycast renders a pseudo-3D first-person view of a 2D grid world
directly in your terminal. Worlds contain walls, one-sided mirrors that
reflect your line of sight, and portal pairs that bend it across the map.
A built-in editor lets you reshape the world while walking it.

Available commands:
  worlds   - Show all available worlds
  play     - Walk a specific world directly
  menu     - Interactive world picker
  serve    - Start SSH server for remote play
  sessions - View recent play sessions
  maps     - Manage maps saved from the editor

Examples:
  raycast worlds
  raycast play corridor
  raycast menu
  raycast serve --ssh :2222
  raycast sessions portal-loop`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.raycast/raycast.db", "Path to database")

	// Add subcommands
	rootCmd.AddCommand(worldsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(mapsCmd)
}
