package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pate2crabe/mazegame/internal/config"
	"github.com/pate2crabe/mazegame/internal/games/labyrinth"
	"github.com/pate2crabe/mazegame/internal/platform/tui"
	"github.com/pate2crabe/mazegame/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty and play, again and again",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a difficulty, Enter to play.
After a run ends and you quit it, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab          - High scores and run history
  Q            - Quit

Examples:
  mazegame menu
  mazegame menu --config ./my-maze.yaml
  mazegame menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
	menuCmd.Flags().StringVar(&flagTileset, "tileset", "", "Path to tileset YAML")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	// Base config; presets are applied per run
	baseCfg, err := loadMazeConfig(logger, flagConfig, "")
	if err != nil {
		return err
	}
	tiles, err := loadTileset(flagTileset, baseCfg.Tileset)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	last := config.DifficultyNormal

	// Menu loop
	for {
		menuResult, err := tui.RunDifficultySelector(store, labyrinth.ID, last, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, labyrinth.ID, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		last = menuResult.Preset
		mazeCfg := baseCfg
		config.ApplyMazePreset(&mazeCfg, menuResult.Preset)

		game, err := registry.CreateConfigured(labyrinth.ID, mazeCfg, tiles)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh maze for each run unless pinned by --seed
		cfg.Seed = seedOrNow()
		logger.Info("menu selection", "difficulty", menuResult.Preset, "seed", cfg.Seed)

		if err := tui.Run(game, cfg, tui.Options{Store: store, Logger: logger}); err != nil {
			return fmt.Errorf("running game: %w", err)
		}

		// Loop back to menu
	}
}
