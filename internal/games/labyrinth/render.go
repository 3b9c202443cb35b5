package labyrinth

import (
	"fmt"

	"github.com/pate2crabe/mazegame/internal/assets"
	"github.com/pate2crabe/mazegame/internal/core"
	"github.com/pate2crabe/mazegame/internal/maze"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.genErr != nil {
		g.renderOverlay(dst, "Maze generation failed", "Check the board settings in maze.yaml")
		return
	}

	// Draw HUD
	g.renderHUD(dst)

	// Handle special states
	if g.tooSmall {
		need := fmt.Sprintf("Need %dx%d", g.cfg.Board.Width*tileW, g.cfg.Board.Height*tileH+hudHeight+footerHeight)
		g.renderOverlay(dst, "Window too small", need)
		return
	}

	g.renderMaze(dst)
	g.renderFooter(dst)

	// Draw overlays
	switch g.outcome {
	case core.OutcomeEscaped:
		g.renderOverlay(dst, "You escaped!", fmt.Sprintf("Score: %d  Time: %ds  R to play again", g.score, g.elapsedSeconds()))
	case core.OutcomeTrapped:
		g.renderOverlay(dst, "Caught by a trap", "Press R to restart")
	case core.OutcomeTimeout:
		g.renderOverlay(dst, "Time's up", fmt.Sprintf("Bonuses: %d/%d  Press R to restart", g.found, g.bonusTotal))
	default:
		if g.paused {
			g.renderOverlay(dst, "Paused", "Press P to continue")
		}
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	clock := fmt.Sprintf("Time: %ds", g.elapsedSeconds())
	clockColor := core.ColorDefault
	if g.limitTicks() > 0 {
		left := g.secondsLeft()
		clock = fmt.Sprintf("Time left: %ds", left)
		if left <= 10 {
			clockColor = core.ColorBrightRed
		}
	}

	x := 1
	x = drawHUDField(dst, x, g.Title(), core.ColorBrightWhite)
	x = drawHUDField(dst, x, fmt.Sprintf("Bonus: %d/%d", g.found, g.bonusTotal), core.ColorBrightCyan)
	x = drawHUDField(dst, x, clock, clockColor)
	drawHUDField(dst, x, fmt.Sprintf("Score: %d", g.score), core.ColorYellow)

	// Draw separator
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// drawHUDField writes text at x and returns where the next field starts.
func drawHUDField(dst *core.Screen, x int, text string, c core.Color) int {
	dst.DrawTextColored(x, 0, text, c)
	return x + len([]rune(text)) + 3
}

// renderMaze draws the board and the player on top of it.
func (g *Game) renderMaze(dst *core.Screen) {
	DrawBoard(dst, g.maze, g.tiles, g.originX, g.originY)
	drawGlyph(dst, g.originX, g.originY, g.player, g.tiles.MustResolve(assets.RolePlayer))
}

// DrawBoard draws tiles, rewards and the exit of m.
// A cell at (x, y) lands at origin + (x, y) * tile size.
func DrawBoard(dst *core.Screen, m *maze.Maze, tiles *assets.Tileset, originX, originY int) {
	m.Tiles(func(p maze.Pos, c maze.CellState) {
		if glyph, ok := tiles.Cell(c); ok {
			drawGlyph(dst, originX, originY, p, glyph)
		}
	})

	for _, r := range m.Rewards() {
		drawGlyph(dst, originX, originY, r.Pos, tiles.Reward(r))
	}
	drawGlyph(dst, originX, originY, m.Exit(), tiles.MustResolve(assets.RoleExit))
}

func drawGlyph(dst *core.Screen, originX, originY int, p maze.Pos, glyph assets.Glyph) {
	px := originX + p.X*tileW
	py := originY + p.Y*tileH
	dst.SetColored(px, py, glyph.Rune, glyph.Color)
	dst.SetColored(px+1, py, glyph.Fill, glyph.Color)
}

// renderFooter draws the transient message under the maze.
func (g *Game) renderFooter(dst *core.Screen) {
	if g.message == "" {
		return
	}
	y := g.originY + g.cfg.Board.Height*tileH
	x := (dst.Width() - len([]rune(g.message))) / 2
	dst.DrawTextColored(x, y, g.message, core.ColorBrightYellow)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := dst.Bounds().Centered(boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	// Draw text
	drawCentered(dst, box, box.Y+1, line1, core.ColorBrightWhite)
	drawCentered(dst, box, box.Y+3, line2, core.ColorDefault)
}

func drawCentered(dst *core.Screen, box core.Rect, y int, text string, c core.Color) {
	x := box.X + (box.W-len([]rune(text)))/2
	dst.DrawTextColored(x, y, text, c)
}

// BoardSize returns the screen columns and rows a w x h maze occupies.
func BoardSize(w, h int) (cols, rows int) {
	return w * tileW, h * tileH
}
