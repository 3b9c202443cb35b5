// Package labyrinth implements Maze Run: walk a generated maze from the
// entry to the exit, collecting every bonus before the clock runs out and
// without stepping on a trap.
package labyrinth

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pate2crabe/mazegame/internal/assets"
	"github.com/pate2crabe/mazegame/internal/config"
	"github.com/pate2crabe/mazegame/internal/core"
	"github.com/pate2crabe/mazegame/internal/maze"
	"github.com/pate2crabe/mazegame/internal/registry"
)

// ID is the registry and score-table identifier.
const ID = "maze"

const (
	hudHeight       = 2  // HUD line plus separator
	footerHeight    = 1  // Message line under the maze
	tileW           = 2  // Terminal columns per maze cell
	tileH           = 1  // Terminal rows per maze cell
	messageDuration = 2  // Seconds a HUD message stays up
	defaultTickRate = 60 // Used when RuntimeConfig.TickRate is unset
)

// Game implements the maze game.
type Game struct {
	cfg   config.MazeConfig
	tiles *assets.Tileset

	rng      *rand.Rand
	seed     int64
	tick     uint64
	tickRate int

	maze       *maze.Maze
	genErr     error
	player     maze.Pos
	found      int
	bonusTotal int
	score      int
	elapsed    int // Ticks spent playing, excluding pauses
	outcome    core.Outcome

	message      string
	messageTicks int

	screenW  int
	screenH  int
	originX  int
	originY  int
	paused   bool
	tooSmall bool
}

// New creates a game with the default configuration and tileset.
func New() *Game {
	return &Game{
		cfg:   config.DefaultMazeConfig(),
		tiles: assets.DefaultTileset(),
	}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Configure replaces the configuration and tileset used by the next Reset.
// A nil tileset keeps the current one.
func (g *Game) Configure(cfg config.MazeConfig, tiles *assets.Tileset) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	g.cfg = cfg
	if tiles != nil {
		g.tiles = tiles
	}
	return nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Maze Run"
}

// Reset generates a new maze from cfg.Seed and puts the player on the entry.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = defaultTickRate
	}
	g.found = 0
	g.score = 0
	g.elapsed = 0
	g.outcome = core.OutcomePlaying
	g.paused = false
	g.message = ""
	g.messageTicks = 0

	b := g.cfg.Board
	g.maze, g.genErr = maze.New(b.Width, b.Height, g.rng, g.cfg.GenOptions())
	if g.genErr == nil {
		g.player = g.maze.Entry()
		g.bonusTotal, _ = g.maze.Counts()
	}

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize recomputes the maze origin for a new screen size. The run continues.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height

	needW := g.cfg.Board.Width * tileW
	needH := g.cfg.Board.Height*tileH + hudHeight + footerHeight
	g.tooSmall = width < needW || height < needH

	area := core.NewRect(0, hudHeight, width, height-hudHeight-footerHeight)
	origin := area.Centered(needW, g.cfg.Board.Height*tileH)
	g.originX = max(origin.X, 0)
	g.originY = max(origin.Y, hudHeight)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && g.over() {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.over() {
		g.paused = !g.paused
	}

	if g.over() || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}

	if d, ok := directionFor(input); ok {
		g.move(d)
	}

	g.elapsed++
	if !g.over() && g.limitTicks() > 0 && g.elapsed >= g.limitTicks() {
		g.outcome = core.OutcomeTimeout
	}

	return core.StepResult{State: g.State()}
}

// directionFor picks the movement requested by input, if any.
func directionFor(input core.InputFrame) (maze.Direction, bool) {
	switch {
	case input.Has(core.ActionUp):
		return maze.North, true
	case input.Has(core.ActionDown):
		return maze.South, true
	case input.Has(core.ActionLeft):
		return maze.West, true
	case input.Has(core.ActionRight):
		return maze.East, true
	}
	return 0, false
}

// move steps the player one cell unless a wall is in the way.
func (g *Game) move(d maze.Direction) {
	next := g.player.Step(d, 1)
	if g.maze.IsWall(next) {
		return
	}
	g.player = next
	g.enter(next)
}

// enter applies reward discovery and exit rules for the cell just entered.
func (g *Game) enter(p maze.Pos) {
	if r, changed := g.maze.Discover(p); changed {
		if r.Malus {
			g.score = max(g.score+g.cfg.Scoring.PenaltyPoints, 0)
			g.outcome = core.OutcomeTrapped
			return
		}
		g.found++
		g.score += g.cfg.Scoring.BonusPoints
		g.flash(fmt.Sprintf("Bonus! %d/%d", g.found, g.bonusTotal))
	}

	if p != g.maze.Exit() {
		return
	}
	if g.found < g.bonusTotal {
		g.flash(fmt.Sprintf("The exit is locked: %d bonus left", g.bonusTotal-g.found))
		return
	}
	if g.limitTicks() > 0 {
		g.score += g.secondsLeft() * g.cfg.Scoring.SecondPoints
	}
	g.outcome = core.OutcomeEscaped
}

func (g *Game) flash(msg string) {
	g.message = msg
	g.messageTicks = messageDuration * g.tickRate
}

func (g *Game) over() bool {
	return g.genErr != nil || g.outcome.Finished()
}

func (g *Game) limitTicks() int {
	return g.cfg.Timer.LimitSeconds * g.tickRate
}

// secondsLeft rounds the remaining time down to whole seconds.
func (g *Game) secondsLeft() int {
	return max(g.limitTicks()-g.elapsed, 0) / g.tickRate
}

// elapsedSeconds rounds the time played down to whole seconds.
func (g *Game) elapsedSeconds() int {
	return g.elapsed / g.tickRate
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.over(),
		Won:      g.outcome == core.OutcomeEscaped,
		Paused:   g.paused,
	}
}

// Outcome returns how the current run stands.
func (g *Game) Outcome() core.Outcome {
	return g.outcome
}

// Summary reports the current run for history storage.
func (g *Game) Summary() core.RunSummary {
	return core.RunSummary{
		Seed:       g.seed,
		Width:      g.cfg.Board.Width,
		Height:     g.cfg.Board.Height,
		BonusFound: g.found,
		BonusTotal: g.bonusTotal,
		PenaltyHit: g.outcome == core.OutcomeTrapped,
		Outcome:    g.outcome,
		Duration:   time.Duration(g.elapsed) * time.Second / time.Duration(g.tickRate),
		Score:      g.score,
	}
}

// Maze exposes the current maze for inspection. It is nil if generation failed.
func (g *Game) Maze() *maze.Maze {
	return g.maze
}

// Err returns the generation error of the last Reset, if any.
func (g *Game) Err() error {
	return g.genErr
}
