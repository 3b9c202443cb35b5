package maze

// Category is the connector shape of a wall cell, named after the wall
// piece that joins it to its neighbours.
type Category uint8

const (
	CategoryNone Category = iota // isolated wall, drawn as nothing

	CategoryCornerTopLeft     // walls to the south and east
	CategoryCornerTopRight    // walls to the south and west
	CategoryCornerBottomLeft  // walls to the north and east
	CategoryCornerBottomRight // walls to the north and west
	CategoryCross             // walls on all four sides
	CategoryTeeDown           // missing north
	CategoryTeeUp             // missing south
	CategoryTeeRight          // missing west
	CategoryTeeLeft           // missing east
	CategoryHorizontalRight   // only west
	CategoryHorizontalMid     // east and west
	CategoryHorizontalLeft    // only east
	CategoryVerticalTop       // only south
	CategoryVerticalMid       // north and south
	CategoryVerticalBottom    // only north

	categoryCount
)

var categoryNames = [categoryCount]string{
	CategoryNone:              "",
	CategoryCornerTopLeft:     "wall_corn_top_lft",
	CategoryCornerTopRight:    "wall_corn_top_rgt",
	CategoryCornerBottomLeft:  "wall_corn_bot_lft",
	CategoryCornerBottomRight: "wall_corn_bot_rgt",
	CategoryCross:             "wall_crss_all",
	CategoryTeeDown:           "wall_crss_hori_bot",
	CategoryTeeUp:             "wall_crss_hori_top",
	CategoryTeeRight:          "wall_crss_vert_rgt",
	CategoryTeeLeft:           "wall_crss_vert_lft",
	CategoryHorizontalRight:   "wall_hori_rgt",
	CategoryHorizontalMid:     "wall_hori_mid",
	CategoryHorizontalLeft:    "wall_hori_lft",
	CategoryVerticalTop:       "wall_vert_top",
	CategoryVerticalMid:       "wall_vert_mid",
	CategoryVerticalBottom:    "wall_vert_bot",
}

// Name returns the asset role for the category, or "" for CategoryNone.
func (c Category) Name() string {
	if c >= categoryCount {
		return ""
	}
	return categoryNames[c]
}

// String implements fmt.Stringer.
func (c Category) String() string {
	if c == CategoryNone {
		return "none"
	}
	if n := c.Name(); n != "" {
		return n
	}
	return "unknown"
}

// Categories returns every drawable category.
func Categories() []Category {
	out := make([]Category, 0, categoryCount-1)
	for c := CategoryNone + 1; c < categoryCount; c++ {
		out = append(out, c)
	}
	return out
}

// Neighbour bits, evaluated in south, east, north, west order.
const (
	bitS = 1 << 3
	bitE = 1 << 2
	bitN = 1 << 1
	bitW = 1 << 0
)

// connectorTable maps the SENW wall mask to a category.
var connectorTable = [16]Category{
	0:                         CategoryNone,
	bitS | bitE:               CategoryCornerTopLeft,
	bitS | bitW:               CategoryCornerTopRight,
	bitE | bitN:               CategoryCornerBottomLeft,
	bitN | bitW:               CategoryCornerBottomRight,
	bitS | bitE | bitN | bitW: CategoryCross,
	bitS | bitE | bitW:        CategoryTeeDown,
	bitE | bitN | bitW:        CategoryTeeUp,
	bitS | bitE | bitN:        CategoryTeeRight,
	bitS | bitN | bitW:        CategoryTeeLeft,
	bitW:                      CategoryHorizontalRight,
	bitE | bitW:               CategoryHorizontalMid,
	bitE:                      CategoryHorizontalLeft,
	bitS:                      CategoryVerticalTop,
	bitS | bitN:               CategoryVerticalMid,
	bitN:                      CategoryVerticalBottom,
}

// ClassifyNeighbors returns the category for a wall whose south, east,
// north and west neighbours are (or are not) walls.
func ClassifyNeighbors(s, e, n, w bool) Category {
	mask := 0
	if s {
		mask |= bitS
	}
	if e {
		mask |= bitE
	}
	if n {
		mask |= bitN
	}
	if w {
		mask |= bitW
	}
	return connectorTable[mask]
}

// Classify assigns a texture to every wall cell of g based on which of its
// four neighbours are walls. Cells outside the grid count as not-wall.
// Ground cells are left untouched.
func Classify(g *Grid) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := Pos{X: x, Y: y}
			i := g.index(p)
			if g.cells[i].Kind != Wall {
				continue
			}
			g.cells[i].Texture = ClassifyNeighbors(
				g.isWallAt(p.Step(South, 1)),
				g.isWallAt(p.Step(East, 1)),
				g.isWallAt(p.Step(North, 1)),
				g.isWallAt(p.Step(West, 1)),
			)
		}
	}
}
