package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-raycast/internal/config"
	"github.com/vovakirdan/tui-raycast/internal/core"
	"github.com/vovakirdan/tui-raycast/internal/game"
	"github.com/vovakirdan/tui-raycast/internal/platform/tui"
	"github.com/vovakirdan/tui-raycast/internal/registry"
	"github.com/vovakirdan/tui-raycast/internal/storage"
)

var (
	flagConfig  string
	flagQuality string
	flagSaved   bool
)

var playCmd = &cobra.Command{
	Use:   "play <world>",
	Short: "Walk a world",
	Long: `Start a first-person session in the specified world.

Controls:
  W/A/S/D      - Walk and strafe (hold Shift to sprint)
  Left/Right   - Turn
  F            - Turn around
  Tab          - Toggle the map editor
  1/2/3/0      - Edit: wall / mirror / portal / clear
  Ctrl+S       - Save the edited map
  P/Esc        - Pause
  R            - Restart
  Q/Ctrl+C     - Quit

Quality presets:
  low    - 60 rays, small bounce budget
  normal - config values as loaded
  high   - one ray per column, deep bounce budget

Examples:
  raycast play corridor
  raycast play mirror-hall --quality high
  raycast play portal-loop --config ./my-raycast.yaml
  raycast play corridor-edited --saved`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagQuality, "quality", "", "Quality preset: low, normal, high")
	playCmd.Flags().BoolVar(&flagSaved, "saved", false, "Load the world from the saved-map store")
}

func runPlay(cmd *cobra.Command, args []string) {
	worldID := args[0]

	if !flagSaved && !registry.Exists(worldID) {
		fmt.Fprintf(os.Stderr, "Error: unknown world %q\n", worldID)
		fmt.Fprintln(os.Stderr, "Run 'raycast worlds' to see available worlds.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.ApplyQualityPreset(&gameCfg, config.QualityPreset(flagQuality))

	// Open storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without storage - the session still works
		store = nil
	}

	lvl, err := tui.LoadLevel(store, worldID, flagSaved)
	if err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error loading world: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game.New(lvl, gameCfg), store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}
