package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pate2crabe/mazegame/internal/games/labyrinth"
	"github.com/pate2crabe/mazegame/internal/platform/tui"
	"github.com/pate2crabe/mazegame/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagTileset    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a maze",
	Long: `Generate a maze and start playing.

Controls:
  Arrows/WASD/hjkl  - Move
  P/Esc             - Pause
  R                 - New maze (after the run ends)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy    - 15x15, 4 rewards, 3 minutes
  normal  - 21x21, 6 rewards, 2 minutes
  hard    - 31x21, 10 rewards, 90 seconds
  custom  - Use the config file values as loaded (default)

Examples:
  mazegame play
  mazegame play --difficulty hard
  mazegame play --config ./my-maze.yaml
  mazegame play --tileset ./configs/tilesets/ascii.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, custom")
	playCmd.Flags().StringVar(&flagTileset, "tileset", "", "Path to tileset YAML")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	mazeCfg, err := loadMazeConfig(logger, flagConfig, flagDifficulty)
	if err != nil {
		return err
	}
	tiles, err := loadTileset(flagTileset, mazeCfg.Tileset)
	if err != nil {
		return err
	}

	game, err := registry.CreateConfigured(labyrinth.ID, mazeCfg, tiles)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// Open score storage
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, runtimeConfig(), tui.Options{Store: store, Logger: logger}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
