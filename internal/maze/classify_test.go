package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyNeighborsTable(t *testing.T) {
	const T, F = true, false

	tests := []struct {
		s, e, n, w bool
		want       Category
	}{
		{T, T, F, F, CategoryCornerTopLeft},
		{T, F, F, T, CategoryCornerTopRight},
		{F, T, T, F, CategoryCornerBottomLeft},
		{F, F, T, T, CategoryCornerBottomRight},
		{T, T, T, T, CategoryCross},
		{T, T, F, T, CategoryTeeDown},
		{F, T, T, T, CategoryTeeUp},
		{T, T, T, F, CategoryTeeRight},
		{T, F, T, T, CategoryTeeLeft},
		{F, F, F, T, CategoryHorizontalRight},
		{F, T, F, T, CategoryHorizontalMid},
		{F, T, F, F, CategoryHorizontalLeft},
		{T, F, F, F, CategoryVerticalTop},
		{T, F, T, F, CategoryVerticalMid},
		{F, F, T, F, CategoryVerticalBottom},
		{F, F, F, F, CategoryNone},
	}

	for _, tc := range tests {
		got := ClassifyNeighbors(tc.s, tc.e, tc.n, tc.w)
		assert.Equal(t, tc.want, got, "S=%v E=%v N=%v W=%v", tc.s, tc.e, tc.n, tc.w)
	}
}

func TestClassifyExhaustive(t *testing.T) {
	seen := make(map[Category]bool)
	for mask := 0; mask < 16; mask++ {
		c := ClassifyNeighbors(mask&8 != 0, mask&4 != 0, mask&2 != 0, mask&1 != 0)
		if mask == 0 {
			assert.Equal(t, CategoryNone, c)
			continue
		}
		assert.NotEqual(t, CategoryNone, c, "mask %04b has no texture", mask)
		assert.NotEmpty(t, c.Name())
		assert.False(t, seen[c], "mask %04b reuses %s", mask, c)
		seen[c] = true
	}
	assert.Len(t, seen, len(Categories()))
}

func TestClassifyGrid(t *testing.T) {
	// .....
	// .###.
	// .#...
	// .....
	g := NewGrid(5, 4)
	g.Each(func(p Pos, _ CellState) {
		require.NoError(t, g.Set(p, GroundCell()))
	})
	for _, p := range []Pos{P(1, 1), P(2, 1), P(3, 1), P(1, 2)} {
		require.NoError(t, g.Set(p, WallCell()))
	}

	Classify(g)

	want := map[Pos]Category{
		P(1, 1): CategoryCornerTopLeft,
		P(2, 1): CategoryHorizontalMid,
		P(3, 1): CategoryHorizontalRight,
		P(1, 2): CategoryVerticalBottom,
	}
	g.Each(func(p Pos, c CellState) {
		if exp, ok := want[p]; ok {
			assert.Equal(t, exp, c.Texture, "at %s", p)
			return
		}
		assert.Equal(t, Ground, c.Kind)
		assert.Equal(t, CategoryNone, c.Texture)
	})
}

func TestClassifyEdgesCountAsOpen(t *testing.T) {
	g := NewGrid(3, 3)
	Classify(g)

	tests := []struct {
		p    Pos
		want Category
	}{
		{P(0, 0), CategoryCornerTopLeft},
		{P(2, 0), CategoryCornerTopRight},
		{P(0, 2), CategoryCornerBottomLeft},
		{P(2, 2), CategoryCornerBottomRight},
		{P(1, 0), CategoryTeeDown},
		{P(1, 1), CategoryCross},
	}
	for _, tc := range tests {
		c, err := g.Get(tc.p)
		require.NoError(t, err)
		assert.Equal(t, tc.want, c.Texture, "at %s", tc.p)
	}

	single := NewGrid(1, 1)
	Classify(single)
	c, err := single.Get(P(0, 0))
	require.NoError(t, err)
	assert.Equal(t, CategoryNone, c.Texture, "isolated wall stays untextured")
}

func TestGeneratedWallsTextured(t *testing.T) {
	m := mustMaze(t, 21, 21, 8, DefaultGenOptions())
	m.Tiles(func(p Pos, c CellState) {
		if !c.IsWall() {
			assert.Equal(t, CategoryNone, c.Texture)
			return
		}
		want := ClassifyNeighbors(
			m.grid.isWallAt(p.Step(South, 1)),
			m.grid.isWallAt(p.Step(East, 1)),
			m.grid.isWallAt(p.Step(North, 1)),
			m.grid.isWallAt(p.Step(West, 1)),
		)
		assert.Equal(t, want, c.Texture, "at %s", p)
	})
}

func TestCategoryNames(t *testing.T) {
	assert.Equal(t, "", CategoryNone.Name())
	assert.Equal(t, "none", CategoryNone.String())
	assert.Equal(t, "wall_crss_all", CategoryCross.Name())
	assert.Equal(t, "unknown", Category(200).String())
	assert.Len(t, Categories(), 15)
}
