package maze

import "fmt"

// Pos is a cell coordinate. X grows to the right, Y grows downward.
type Pos struct {
	X int
	Y int
}

// P is a convenience constructor for Pos.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns the sum of two positions.
func (p Pos) Add(o Pos) Pos {
	return Pos{X: p.X + o.X, Y: p.Y + o.Y}
}

// Scale multiplies both components by k.
func (p Pos) Scale(k int) Pos {
	return Pos{X: p.X * k, Y: p.Y * k}
}

// Step returns the position n cells away in direction d.
func (p Pos) Step(d Direction, n int) Pos {
	return p.Add(d.Delta().Scale(n))
}

// IsLattice reports whether p is a room cell (both coordinates odd).
func (p Pos) IsLattice() bool {
	return p.X%2 == 1 && p.Y%2 == 1
}

// Direction is one of the four cardinal steps.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions returns the four directions in declaration order.
func Directions() [4]Direction {
	return [4]Direction{North, East, South, West}
}

// Delta returns the unit offset for this direction.
// North decreases Y, South increases Y (screen coordinates).
func (d Direction) Delta() Pos {
	switch d {
	case North:
		return Pos{X: 0, Y: -1}
	case East:
		return Pos{X: 1, Y: 0}
	case South:
		return Pos{X: 0, Y: 1}
	case West:
		return Pos{X: -1, Y: 0}
	default:
		return Pos{}
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return d
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}
