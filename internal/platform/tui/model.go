// Package tui runs the maze game in the terminal with Bubble Tea: the tick
// loop, key mapping, the difficulty menu and the scoreboard.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/pate2crabe/mazegame/internal/core"
	"github.com/pate2crabe/mazegame/internal/registry"
	"github.com/pate2crabe/mazegame/internal/storage"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	runSaved   bool // Whether score and run have been saved for current game over
	lastRunID  string
	bonusFound int // Last reported bonus count, for discovery logging
}

// TickMsg drives one simulation step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg, rate ticks per second (60 if unset).
func tickCmd(rate int) tea.Cmd {
	if rate <= 0 {
		rate = 60
	}
	return tea.Tick(time.Second/time.Duration(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Options carries the optional collaborators of a Model.
type Options struct {
	Store  *storage.Store // nil disables persistence
	Logger *log.Logger    // nil discards log output
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) *Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		logger:     logger.WithPrefix(game.ID()),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m *Model) Init() tea.Cmd {
	m.start()
	return tickCmd(m.config.TickRate)
}

func (m *Model) start() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.runSaved = false
	m.bonusFound = 0
	m.logger.Info("run started", "seed", m.config.Seed)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.saveRun()
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Games that can re-layout keep their run; others restart.
	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.start()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logDiscovery()

	if m.gameState.GameOver {
		m.saveRun()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// logDiscovery logs newly found bonuses and a sprung trap.
func (m *Model) logDiscovery() {
	s, ok := m.game.(registry.Summarizer)
	if !ok || m.runSaved {
		return
	}
	sum := s.Summary()
	if sum.BonusFound > m.bonusFound {
		m.logger.Debug("bonus found", "found", sum.BonusFound, "total", sum.BonusTotal, "score", sum.Score)
	}
	if sum.PenaltyHit {
		m.logger.Debug("trap sprung", "score", sum.Score)
	}
	m.bonusFound = sum.BonusFound
}

// saveRun stores the score and run record once per run. Runs abandoned
// before any movement are not recorded.
func (m *Model) saveRun() {
	if m.runSaved {
		return
	}
	m.runSaved = true

	var summary core.RunSummary
	s, hasSummary := m.game.(registry.Summarizer)
	if hasSummary {
		summary = s.Summary()
		if !summary.Outcome.Finished() {
			if summary.Duration == 0 {
				return
			}
			summary.Outcome = core.OutcomeAbandoned
		}
		m.logger.Info("run ended",
			"outcome", summary.Outcome,
			"score", summary.Score,
			"bonus", fmt.Sprintf("%d/%d", summary.BonusFound, summary.BonusTotal),
			"duration", summary.Duration)
	}

	if m.store == nil {
		return
	}
	if m.gameState.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
			m.logger.Error("cannot save score", "err", err)
		}
	}
	if hasSummary {
		runID, err := m.store.SaveRun(m.game.ID(), summary)
		if err != nil {
			m.logger.Error("cannot save run", "err", err)
			return
		}
		m.lastRunID = runID
	}
}

// LastRunID returns the ID of the most recently stored run, if any.
func (m *Model) LastRunID() string {
	return m.lastRunID
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".mazegame", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
