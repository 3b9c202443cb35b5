package maze

// Asset role names for rewards.
const (
	RoleBonus   = "reward-bonus"
	RolePenalty = "reward-penalty"
)

// Reward is a point of interest bound to a room cell.
// A bonus counts toward the win condition; a malus (penalty) costs the run.
type Reward struct {
	Pos   Pos
	Malus bool
	Found bool
}

// Role returns the asset role used to draw this reward.
func (r Reward) Role() string {
	if r.Malus {
		return RolePenalty
	}
	return RoleBonus
}

// MarkFound sets Found. It returns true only on the first call.
func (r *Reward) MarkFound() bool {
	if r.Found {
		return false
	}
	r.Found = true
	return true
}
