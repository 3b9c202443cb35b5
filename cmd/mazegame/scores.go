package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pate2crabe/mazegame/internal/games/labyrinth"
	"github.com/pate2crabe/mazegame/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and recent runs",
	Long: `Display the top 10 high scores, the 10 most recent runs and
overall statistics.

Examples:
  mazegame scores
  mazegame scores --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func runScores(cmd *cobra.Command, _ []string) error {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(labyrinth.ID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}
	runs, err := store.RecentRuns(labyrinth.ID, 10)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "High Scores - Maze Run")
	fmt.Fprintln(out)

	if len(scores) == 0 && len(runs) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'mazegame play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Recent Runs")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-16s  %-9s  %-6s  %-5s  %-6s  %-5s  %s\n", "Date", "Outcome", "Score", "Bonus", "Time", "Size", "Run")
	for _, r := range runs {
		fmt.Fprintf(out, "  %-16s  %-9s  %-6d  %-5s  %-6s  %-5s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Outcome,
			r.Score,
			fmt.Sprintf("%d/%d", r.BonusFound, r.BonusTotal),
			fmt.Sprintf("%d:%02d", r.Duration/60, r.Duration%60),
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			r.RunID[:8],
		)
	}

	stats, err := store.GetGameStats(labyrinth.ID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  |  Escapes: %d/%d", stats.HighScore, stats.Escapes, stats.Runs)
	if stats.BestEscape > 0 {
		fmt.Fprintf(out, "  |  Fastest: %s", stats.BestEscape)
	}
	fmt.Fprintln(out)
	return nil
}
