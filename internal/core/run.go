package core

import "time"

// RuntimeConfig is what the platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Terminal columns
	ScreenH  int   // Terminal rows
	TickRate int   // Steps per second; games treat <= 0 as 60
	Seed     int64 // Maze seed; the platform replaces 0 with a time-based seed
}

// GameState is the per-tick status the platform reacts to.
type GameState struct {
	Score    int
	GameOver bool // Run ended, by any outcome
	Won      bool // Run ended by escaping
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}

// Outcome is how a run ended.
type Outcome string

const (
	OutcomePlaying Outcome = "playing"
	OutcomeEscaped Outcome = "escaped"
	OutcomeTrapped Outcome = "trapped"
	OutcomeTimeout Outcome = "timeout"

	// OutcomeAbandoned is recorded by the platform when the player quits mid-run.
	OutcomeAbandoned Outcome = "abandoned"
)

// Finished reports whether the outcome ends a run.
func (o Outcome) Finished() bool {
	return o != OutcomePlaying && o != ""
}

// RunSummary describes one finished or in-progress run for history storage.
type RunSummary struct {
	Seed       int64
	Width      int
	Height     int
	BonusFound int
	BonusTotal int
	PenaltyHit bool
	Outcome    Outcome
	Duration   time.Duration
	Score      int
}
