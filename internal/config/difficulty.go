package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyCustom DifficultyPreset = "custom" // config file values as loaded
)

// Presets lists the selectable presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyCustom}
}

// ParseDifficulty converts a flag value to a preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return DifficultyNormal, nil
	}
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or custom)", s)
}

// Description returns a one-line summary for menus.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "15x15, 4 rewards, 3 minutes"
	case DifficultyNormal:
		return "21x21, 6 rewards, 2 minutes"
	case DifficultyHard:
		return "31x21, 10 rewards, 90 seconds"
	case DifficultyCustom:
		return "values from maze.yaml"
	default:
		return ""
	}
}

// ApplyMazePreset modifies the config based on a difficulty preset.
// DifficultyCustom leaves it untouched.
func ApplyMazePreset(cfg *MazeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Board.Width, cfg.Board.Height = 15, 15
		cfg.Board.RewardCount = 4
		cfg.Board.BonusCount = -1
		cfg.Timer.LimitSeconds = 180
	case DifficultyNormal:
		cfg.Board.Width, cfg.Board.Height = 21, 21
		cfg.Board.RewardCount = 6
		cfg.Board.BonusCount = -1
		cfg.Timer.LimitSeconds = 120
	case DifficultyHard:
		cfg.Board.Width, cfg.Board.Height = 31, 21
		cfg.Board.RewardCount = 10
		cfg.Board.BonusCount = 4
		cfg.Timer.LimitSeconds = 90
	}
}
