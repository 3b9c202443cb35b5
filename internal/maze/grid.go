package maze

import "fmt"

// CellKind distinguishes walls from walkable ground.
type CellKind uint8

const (
	Wall CellKind = iota
	Ground
)

// String returns the kind name.
func (k CellKind) String() string {
	if k == Ground {
		return "Ground"
	}
	return "Wall"
}

// CellState is the content of one grid cell.
// Texture is only meaningful for walls and stays CategoryNone until the
// classification pass runs (and afterwards for isolated walls).
type CellState struct {
	Kind    CellKind
	Texture Category
}

// WallCell returns an untextured wall.
func WallCell() CellState {
	return CellState{Kind: Wall}
}

// GroundCell returns a ground cell.
func GroundCell() CellState {
	return CellState{Kind: Ground}
}

// IsWall reports whether the cell is a wall.
func (c CellState) IsWall() bool {
	return c.Kind == Wall
}

// Grid is a fixed-size rectangle of cells.
// Cells are stored in row-major order: index = y*width + x.
type Grid struct {
	width  int
	height int
	cells  []CellState
}

// NewGrid creates a grid filled with untextured walls.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	// The zero CellState is Wall(None), so make already fills correctly.
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]CellState, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InRange reports whether p lies inside the grid.
func (g *Grid) InRange(p Pos) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

func (g *Grid) index(p Pos) int {
	return p.Y*g.width + p.X
}

func (g *Grid) outOfBounds(p Pos) error {
	return fmt.Errorf("%w: %s outside %dx%d", ErrOutOfBounds, p, g.width, g.height)
}

// Get returns the cell at p.
func (g *Grid) Get(p Pos) (CellState, error) {
	if !g.InRange(p) {
		return CellState{}, g.outOfBounds(p)
	}
	return g.cells[g.index(p)], nil
}

// Set stores state at p.
func (g *Grid) Set(p Pos, state CellState) error {
	if !g.InRange(p) {
		return g.outOfBounds(p)
	}
	g.cells[g.index(p)] = state
	return nil
}

// isWallAt reports whether p is inside the grid and holds a wall.
func (g *Grid) isWallAt(p Pos) bool {
	return g.InRange(p) && g.cells[g.index(p)].Kind == Wall
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(p Pos, c CellState)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(Pos{X: x, Y: y}, g.cells[y*g.width+x])
		}
	}
}

// Count returns the number of cells of the given kind.
func (g *Grid) Count(kind CellKind) int {
	n := 0
	for _, c := range g.cells {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]CellState, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}
