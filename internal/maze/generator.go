package maze

import "fmt"

// Rand is the random source used by generation.
// *math/rand.Rand satisfies it; tests inject a seeded one for determinism.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// MinSize is the smallest supported grid side.
const MinSize = 5

const (
	defaultPlacementAttempts = 1000
	defaultLayoutAttempts    = 32
)

// GenOptions controls maze generation.
type GenOptions struct {
	// RewardCount is the number of rewards to place.
	RewardCount int

	// BonusCount is how many of the rewards are bonuses. The first BonusCount
	// placed rewards are bonuses, the rest penalties. Negative means half of
	// RewardCount (rounded down).
	BonusCount int

	// Exit is the designated exit cell. The zero value means (width-2, height-2).
	Exit Pos

	// PlacementAttempts bounds resampling per reward. Zero means 1000.
	PlacementAttempts int

	// LayoutAttempts bounds how many complete layouts are tried before
	// giving up on one where the exit and every reward are reachable.
	// Zero means 32.
	LayoutAttempts int
}

// DefaultGenOptions returns options for the classic 6-reward layout.
func DefaultGenOptions() GenOptions {
	return GenOptions{
		RewardCount: 6,
		BonusCount:  -1,
	}
}

// Entry is the fixed start cell of every maze.
var Entry = Pos{X: 1, Y: 1}

// resolve fills defaults and validates options against the grid size.
func (o GenOptions) resolve(width, height int) (GenOptions, error) {
	if width < MinSize || height < MinSize || width%2 == 0 || height%2 == 0 {
		return o, fmt.Errorf("%w: grid %dx%d must be odd and at least %dx%d",
			ErrConfiguration, width, height, MinSize, MinSize)
	}
	if o.Exit == (Pos{}) {
		o.Exit = Pos{X: width - 2, Y: height - 2}
	}
	if !o.Exit.IsLattice() || o.Exit.X > width-2 || o.Exit.Y > height-2 || o.Exit == Entry {
		return o, fmt.Errorf("%w: exit %s must be an interior room other than the entry",
			ErrConfiguration, o.Exit)
	}
	if o.RewardCount < 0 {
		return o, fmt.Errorf("%w: negative reward count %d", ErrConfiguration, o.RewardCount)
	}
	if o.BonusCount < 0 {
		o.BonusCount = o.RewardCount / 2
	}
	if o.BonusCount > o.RewardCount {
		return o, fmt.Errorf("%w: bonus count %d exceeds reward count %d",
			ErrConfiguration, o.BonusCount, o.RewardCount)
	}
	// Entry and exit are never reward cells.
	rooms := ((width - 1) / 2) * ((height - 1) / 2)
	if o.RewardCount > rooms-2 {
		return o, fmt.Errorf("%w: %d rewards do not fit in %d rooms",
			ErrConfiguration, o.RewardCount, rooms)
	}
	if o.PlacementAttempts <= 0 {
		o.PlacementAttempts = defaultPlacementAttempts
	}
	if o.LayoutAttempts <= 0 {
		o.LayoutAttempts = defaultLayoutAttempts
	}
	return o, nil
}

// Generate places rewards and carves a perfect maze into g, which must be
// all walls. On success g holds the carved layout and the rewards are
// returned in placement order. On error g is left all walls.
func Generate(g *Grid, rng Rand, opts GenOptions) ([]Reward, error) {
	opts, err := opts.resolve(g.Width(), g.Height())
	if err != nil {
		return nil, err
	}

	pristine := g.Clone()
	for attempt := 0; attempt < opts.LayoutAttempts; attempt++ {
		if attempt > 0 {
			copy(g.cells, pristine.cells)
		}

		rewards, err := placeRewards(g, rng, opts)
		if err != nil {
			copy(g.cells, pristine.cells)
			return nil, err
		}

		c := newCarver(g, rng, rewards, opts.Exit)
		c.run(Entry)

		if c.complete() {
			return rewards, nil
		}
	}

	copy(g.cells, pristine.cells)
	return nil, fmt.Errorf("%w: no layout reached the exit and all rewards in %d attempts",
		ErrConfiguration, opts.LayoutAttempts)
}

// placeRewards samples distinct room cells for every reward.
func placeRewards(g *Grid, rng Rand, opts GenOptions) ([]Reward, error) {
	roomsX := (g.Width() - 1) / 2
	roomsY := (g.Height() - 1) / 2

	rewards := make([]Reward, 0, opts.RewardCount)
	taken := make(map[Pos]bool, opts.RewardCount)

	for i := 0; i < opts.RewardCount; i++ {
		placed := false
		for try := 0; try < opts.PlacementAttempts; try++ {
			p := Pos{X: 2*rng.Intn(roomsX) + 1, Y: 2*rng.Intn(roomsY) + 1}
			if p == Entry || p == opts.Exit || taken[p] {
				continue
			}
			taken[p] = true
			rewards = append(rewards, Reward{Pos: p, Malus: i >= opts.BonusCount})
			placed = true
			break
		}
		if !placed {
			return nil, fmt.Errorf("%w: could not place reward %d of %d after %d attempts",
				ErrConfiguration, i+1, opts.RewardCount, opts.PlacementAttempts)
		}
	}
	return rewards, nil
}

// frame is one pending room on the carving stack.
type frame struct {
	cell Pos
	dirs [4]Direction
	next int
}

// carver runs the backtracker with an explicit stack. Exploration order is
// the same as the recursive form: each room shuffles its directions once
// when entered and resumes the remaining ones after a child branch returns.
type carver struct {
	grid        *Grid
	rng         Rand
	rewards     map[Pos]bool
	exit        Pos
	exitReached bool
	stack       []frame
}

func newCarver(g *Grid, rng Rand, rewards []Reward, exit Pos) *carver {
	set := make(map[Pos]bool, len(rewards))
	for _, r := range rewards {
		set[r.Pos] = true
	}
	return &carver{grid: g, rng: rng, rewards: set, exit: exit}
}

func (c *carver) open(p Pos) {
	c.grid.cells[c.grid.index(p)] = GroundCell()
}

// interior reports whether p lies in [1, w-2] x [1, h-2].
func (c *carver) interior(p Pos) bool {
	return p.X >= 1 && p.X <= c.grid.width-2 && p.Y >= 1 && p.Y <= c.grid.height-2
}

// visit opens a room and, unless it ends a branch, pushes it for exploration.
func (c *carver) visit(p Pos) {
	c.open(p)
	if p == c.exit {
		c.exitReached = true
		return
	}
	if c.rewards[p] {
		return
	}
	f := frame{cell: p, dirs: Directions()}
	c.rng.Shuffle(len(f.dirs), func(i, j int) {
		f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
	})
	c.stack = append(c.stack, f)
}

// eligible reports whether the carver may move from a room toward neighbor.
func (c *carver) eligible(neighbor Pos, d Direction) bool {
	if !c.interior(neighbor) {
		return false
	}
	// The exit is opened up front, so it is a target until first reached
	// rather than through the usual unvisited check.
	if neighbor == c.exit {
		return !c.exitReached
	}
	if !c.grid.isWallAt(neighbor) {
		return false
	}
	if c.rewards[neighbor] && d == South {
		return false
	}
	return true
}

func (c *carver) run(start Pos) {
	c.open(c.exit)
	c.visit(start)

	for len(c.stack) > 0 {
		top := &c.stack[len(c.stack)-1]
		if top.next == len(top.dirs) {
			c.stack = c.stack[:len(c.stack)-1]
			continue
		}
		d := top.dirs[top.next]
		top.next++

		neighbor := top.cell.Step(d, 2)
		if !c.eligible(neighbor, d) {
			continue
		}
		c.open(top.cell.Step(d, 1))
		// top may be invalidated by the append in visit.
		c.visit(neighbor)
	}
}

// complete reports whether the exit and every reward were carved into.
func (c *carver) complete() bool {
	if !c.exitReached {
		return false
	}
	for p := range c.rewards {
		if c.grid.isWallAt(p) {
			return false
		}
	}
	return true
}
