package labyrinth

import "github.com/pate2crabe/mazegame/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Seed       int64
	PlayerX    int
	PlayerY    int
	Found      int
	BonusTotal int
	Score      int
	Elapsed    int // Ticks
	Outcome    core.Outcome
	Paused     bool
	Layout     string // ASCII dump of the maze, rewards included
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	layout := ""
	if g.maze != nil {
		layout = g.maze.String()
	}
	return Snapshot{
		Tick:       g.tick,
		Seed:       g.seed,
		PlayerX:    g.player.X,
		PlayerY:    g.player.Y,
		Found:      g.found,
		BonusTotal: g.bonusTotal,
		Score:      g.score,
		Elapsed:    g.elapsed,
		Outcome:    g.outcome,
		Paused:     g.paused,
		Layout:     layout,
	}
}
