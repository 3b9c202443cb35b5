// mazegame is a terminal maze runner: walk a generated labyrinth, collect
// every bonus, avoid the traps and reach the exit before time runs out.
//
// Usage:
//
//	mazegame play            - Play one maze
//	mazegame menu            - Pick a difficulty interactively, play again and again
//	mazegame gen             - Print a generated maze to stdout
//	mazegame scores          - Show high scores and recent runs
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible mazes
//	--db <path>          - Set database path (default: ~/.mazegame/scores.db)
//	--log-file <path>    - Write logs here (default: ~/.mazegame/mazegame.log)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/pate2crabe/mazegame/internal/games/labyrinth"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazegame",
	Short: "Maze Run - a labyrinth crawler for your terminal",
	Long: `Maze Run generates a fresh labyrinth for every run. Find all the
bonus rewards, dodge the penalty traps and reach the exit before the
clock runs out.

Available commands:
  play     - Play a single maze
  menu     - Interactive difficulty picker
  gen      - Print a generated maze
  scores   - View high scores and run history

Examples:
  mazegame play
  mazegame play --difficulty hard
  mazegame menu
  mazegame gen --width 31 --height 15 --seed 7
  mazegame scores`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mazegame/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.mazegame/mazegame.log", "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(scoresCmd)
}
