package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the default maze configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Board: BoardConfig{
			Width:       21,
			Height:      21,
			RewardCount: 6,
			BonusCount:  -1,
		},
		Timer: TimerConfig{
			LimitSeconds: 120,
		},
		Scoring: ScoringConfig{
			BonusPoints:   100,
			PenaltyPoints: -150,
			SecondPoints:  5,
		},
	}
}

// DefaultYAML returns the embedded default maze YAML.
func DefaultYAML() []byte {
	return defaultMazeYAML
}
