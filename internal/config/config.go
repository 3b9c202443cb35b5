// Package config provides YAML-based game configuration loading and
// difficulty presets for the maze game.
package config

import (
	"errors"
	"fmt"

	"github.com/pate2crabe/mazegame/internal/maze"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// MazeConfig contains all configuration for a maze run.
type MazeConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Timer   TimerConfig   `yaml:"timer"`
	Scoring ScoringConfig `yaml:"scoring"`
	Tileset string        `yaml:"tileset"` // Path to a tileset YAML, empty for the built-in one
}

// BoardConfig defines the generated maze.
type BoardConfig struct {
	Width       int `yaml:"width"`        // Odd, at least 5
	Height      int `yaml:"height"`       // Odd, at least 5
	RewardCount int `yaml:"reward_count"` // Bonuses plus penalties
	BonusCount  int `yaml:"bonus_count"`  // -1 = half of reward_count, rounded down
}

// TimerConfig defines the run time limit.
type TimerConfig struct {
	LimitSeconds int `yaml:"limit_seconds"` // 0 = no limit, the HUD counts up
}

// ScoringConfig defines how a run is scored.
type ScoringConfig struct {
	BonusPoints   int `yaml:"bonus_points"`   // Per bonus collected
	PenaltyPoints int `yaml:"penalty_points"` // Applied when a penalty is stepped on
	SecondPoints  int `yaml:"second_points"`  // Per second left on the clock at a win
}

// Validate checks that the board can be generated and the timer and
// scoring values are usable.
func (c MazeConfig) Validate() error {
	b := c.Board
	var errs []error
	if b.Width < maze.MinSize || b.Width%2 == 0 {
		errs = append(errs, fmt.Errorf("%w: board.width %d must be odd and >= %d", ErrInvalid, b.Width, maze.MinSize))
	}
	if b.Height < maze.MinSize || b.Height%2 == 0 {
		errs = append(errs, fmt.Errorf("%w: board.height %d must be odd and >= %d", ErrInvalid, b.Height, maze.MinSize))
	}
	if b.RewardCount < 0 {
		errs = append(errs, fmt.Errorf("%w: board.reward_count %d is negative", ErrInvalid, b.RewardCount))
	}
	if b.BonusCount < -1 || b.BonusCount > b.RewardCount {
		errs = append(errs, fmt.Errorf("%w: board.bonus_count %d outside [-1, %d]", ErrInvalid, b.BonusCount, b.RewardCount))
	}
	if len(errs) == 0 {
		// Room cells minus the entry and the exit.
		rooms := ((b.Width-1)/2)*((b.Height-1)/2) - 2
		if b.RewardCount > rooms {
			errs = append(errs, fmt.Errorf("%w: board.reward_count %d exceeds the %d free rooms", ErrInvalid, b.RewardCount, rooms))
		}
	}
	if c.Timer.LimitSeconds < 0 {
		errs = append(errs, fmt.Errorf("%w: timer.limit_seconds %d is negative", ErrInvalid, c.Timer.LimitSeconds))
	}
	return errors.Join(errs...)
}

// GenOptions converts the board settings to generator options.
func (c MazeConfig) GenOptions() maze.GenOptions {
	opts := maze.DefaultGenOptions()
	opts.RewardCount = c.Board.RewardCount
	opts.BonusCount = c.Board.BonusCount
	return opts
}

// BonusTotal returns how many bonuses a board with these settings holds.
func (b BoardConfig) BonusTotal() int {
	if b.BonusCount >= 0 {
		return b.BonusCount
	}
	return b.RewardCount / 2
}
