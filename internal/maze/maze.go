package maze

import "strings"

// Maze owns a generated grid and its rewards. After construction the only
// mutation it supports is marking rewards as found.
type Maze struct {
	grid    *Grid
	rewards []Reward
	exit    Pos
}

// New generates and classifies a width x height maze. Either a complete
// maze or an error is returned, never a partial one.
func New(width, height int, rng Rand, opts GenOptions) (*Maze, error) {
	resolved, err := opts.resolve(width, height)
	if err != nil {
		return nil, err
	}

	g := NewGrid(width, height)
	rewards, err := Generate(g, rng, resolved)
	if err != nil {
		return nil, err
	}
	Classify(g)

	return &Maze{grid: g, rewards: rewards, exit: resolved.Exit}, nil
}

// Width returns the grid width.
func (m *Maze) Width() int {
	return m.grid.Width()
}

// Height returns the grid height.
func (m *Maze) Height() int {
	return m.grid.Height()
}

// Entry returns the start cell.
func (m *Maze) Entry() Pos {
	return Entry
}

// Exit returns the exit cell.
func (m *Maze) Exit() Pos {
	return m.exit
}

// InRange reports whether p lies inside the maze.
func (m *Maze) InRange(p Pos) bool {
	return m.grid.InRange(p)
}

// Get returns the cell at p.
func (m *Maze) Get(p Pos) (CellState, error) {
	return m.grid.Get(p)
}

// IsWall reports whether p blocks movement. Positions outside the maze
// count as walls.
func (m *Maze) IsWall(p Pos) bool {
	c, err := m.grid.Get(p)
	if err != nil {
		return true
	}
	return c.IsWall()
}

// Reward returns a copy of the reward at p.
func (m *Maze) Reward(p Pos) (Reward, bool) {
	if r := m.RewardRef(p); r != nil {
		return *r, true
	}
	return Reward{}, false
}

// RewardRef returns the reward stored at p, or nil.
func (m *Maze) RewardRef(p Pos) *Reward {
	for i := range m.rewards {
		if m.rewards[i].Pos == p {
			return &m.rewards[i]
		}
	}
	return nil
}

// Discover marks the reward at p as found. It returns the reward and true
// only when this call changed it; repeated calls are no-ops.
func (m *Maze) Discover(p Pos) (Reward, bool) {
	r := m.RewardRef(p)
	if r == nil {
		return Reward{}, false
	}
	changed := r.MarkFound()
	return *r, changed
}

// Rewards returns a copy of all rewards in placement order.
func (m *Maze) Rewards() []Reward {
	out := make([]Reward, len(m.rewards))
	copy(out, m.rewards)
	return out
}

// VisibleRewards returns the rewards not yet found.
func (m *Maze) VisibleRewards() []Reward {
	out := make([]Reward, 0, len(m.rewards))
	for _, r := range m.rewards {
		if !r.Found {
			out = append(out, r)
		}
	}
	return out
}

// Counts returns how many bonuses and penalties the maze holds.
func (m *Maze) Counts() (bonus, penalty int) {
	for _, r := range m.rewards {
		if r.Malus {
			penalty++
		} else {
			bonus++
		}
	}
	return bonus, penalty
}

// Tiles calls fn for every cell in row-major order.
func (m *Maze) Tiles(fn func(p Pos, c CellState)) {
	m.grid.Each(fn)
}

// Reachable flood-fills ground cells from start and returns the set reached.
func (m *Maze) Reachable(start Pos) map[Pos]bool {
	seen := make(map[Pos]bool)
	if m.IsWall(start) {
		return seen
	}
	queue := []Pos{start}
	seen[start] = true
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range Directions() {
			n := p.Step(d, 1)
			if seen[n] || m.IsWall(n) {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return seen
}

// String renders the maze as ASCII: '#' wall, '.' ground, 'S' entry,
// 'E' exit, '+' bonus, 'x' penalty, ' ' found reward.
func (m *Maze) String() string {
	marks := make(map[Pos]byte, len(m.rewards)+2)
	for _, r := range m.rewards {
		switch {
		case r.Found:
			marks[r.Pos] = ' '
		case r.Malus:
			marks[r.Pos] = 'x'
		default:
			marks[r.Pos] = '+'
		}
	}
	marks[Entry] = 'S'
	marks[m.exit] = 'E'

	var b strings.Builder
	b.Grow((m.Width() + 1) * m.Height())
	m.grid.Each(func(p Pos, c CellState) {
		if p.X == 0 && p.Y > 0 {
			b.WriteByte('\n')
		}
		if mark, ok := marks[p]; ok {
			b.WriteByte(mark)
			return
		}
		if c.IsWall() {
			b.WriteByte('#')
		} else {
			b.WriteByte('.')
		}
	})
	return b.String()
}
