package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-raycast/internal/config"
	"github.com/vovakirdan/tui-raycast/internal/core"
	"github.com/vovakirdan/tui-raycast/internal/game"
	"github.com/vovakirdan/tui-raycast/internal/platform/tui"
	"github.com/vovakirdan/tui-raycast/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive world picker",
	Long: `Start with an interactive menu of built-in worlds and saved maps.

Use arrow keys or j/k to navigate, Enter to start walking.
After leaving a world you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select world
  Tab          - Session browser
  Q            - Quit

Examples:
  raycast menu
  raycast menu --fps 30
  raycast menu --db ./raycast.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	menuCmd.Flags().StringVar(&flagQuality, "quality", "", "Quality preset: low, normal, high")
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		store = nil
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
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
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
	config.ApplyQualityPreset(&gameCfg, config.QualityPreset(flagQuality))

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsBrowser {
			goBack, brErr := tui.RunBrowser(store, cfg.ScreenW, cfg.ScreenH)
			if brErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", brErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from the browser
		}

		if menuResult.WorldID == "" {
			break
		}

		lvl, err := tui.LoadLevel(store, menuResult.WorldID, menuResult.Saved)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading world: %v\n", err)
			continue
		}

		// Fresh seed for each session
		cfg.Seed = time.Now().UnixNano()

		if err := tui.Run(game.New(lvl, gameCfg), store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running session: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
