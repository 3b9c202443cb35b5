package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pate2crabe/mazegame/internal/core"
	"github.com/pate2crabe/mazegame/internal/storage"
)

// stubGame is a scripted game: Step returns whatever state the test set.
type stubGame struct {
	state   core.GameState
	summary core.RunSummary
	resets  int
	steps   int
	resized [2]int
	last    core.InputFrame
}

func (g *stubGame) ID() string               { return "stub" }
func (g *stubGame) Title() string            { return "Stub" }
func (g *stubGame) State() core.GameState    { return g.state }
func (g *stubGame) Summary() core.RunSummary { return g.summary }
func (g *stubGame) Resize(width, height int) { g.resized = [2]int{width, height} }
func (g *stubGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "stub") }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.last = in
	return core.StepResult{State: g.state}
}

func newTestModel(t *testing.T, g *stubGame, store *storage.Store) *Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
	m := NewModel(g, cfg, Options{Store: store})
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() should schedule a tick")
	}
	return m
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestModelInitResetsGame(t *testing.T) {
	g := &stubGame{}
	newTestModel(t, g, nil)
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
}

func TestModelInputReachesGameOnce(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)

	m.Update(runeKey("d"))
	m.Update(TickMsg(time.Now()))
	if !g.last.Has(core.ActionRight) {
		t.Error("first tick should carry ActionRight")
	}

	m.Update(TickMsg(time.Now()))
	if g.last.Has(core.ActionRight) {
		t.Error("input frame should be cleared after a tick")
	}
	if g.steps != 2 {
		t.Errorf("steps = %d, want 2", g.steps)
	}
}

func TestModelSavesFinishedRunOnce(t *testing.T) {
	store := openStore(t)
	g := &stubGame{}
	m := newTestModel(t, g, store)

	g.state = core.GameState{Score: 420, GameOver: true, Won: true}
	g.summary = core.RunSummary{
		Seed: 1, Width: 21, Height: 21,
		BonusFound: 3, BonusTotal: 3,
		Outcome:  core.OutcomeEscaped,
		Duration: 42 * time.Second,
		Score:    420,
	}

	m.Update(TickMsg(time.Now()))
	m.Update(TickMsg(time.Now()))

	runs, err := store.RecentRuns("stub", 10)
	if err != nil {
		t.Fatalf("RecentRuns() error: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("stored %d runs, want 1", len(runs))
	}
	if runs[0].Outcome != core.OutcomeEscaped || runs[0].Score != 420 {
		t.Errorf("run = %+v", runs[0])
	}
	if m.LastRunID() != runs[0].RunID {
		t.Errorf("LastRunID() = %q, want %q", m.LastRunID(), runs[0].RunID)
	}

	high, err := store.HighScore("stub")
	if err != nil {
		t.Fatalf("HighScore() error: %v", err)
	}
	if high != 420 {
		t.Errorf("HighScore() = %d, want 420", high)
	}
}

func TestModelQuitMidRunRecordsAbandoned(t *testing.T) {
	store := openStore(t)
	g := &stubGame{}
	m := newTestModel(t, g, store)

	g.summary = core.RunSummary{Outcome: core.OutcomePlaying, Duration: 5 * time.Second}

	_, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}

	runs, err := store.RecentRuns("stub", 10)
	if err != nil {
		t.Fatalf("RecentRuns() error: %v", err)
	}
	if len(runs) != 1 || runs[0].Outcome != core.OutcomeAbandoned {
		t.Fatalf("runs = %+v, want one abandoned run", runs)
	}
}

func TestModelQuitBeforeStartRecordsNothing(t *testing.T) {
	store := openStore(t)
	g := &stubGame{}
	m := newTestModel(t, g, store)

	m.Update(runeKey("q"))

	runs, err := store.RecentRuns("stub", 10)
	if err != nil {
		t.Fatalf("RecentRuns() error: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("stored %d runs, want 0", len(runs))
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)

	g.state = core.GameState{GameOver: true}
	m.Update(TickMsg(time.Now()))

	m.Update(runeKey("r"))
	m.Update(TickMsg(time.Now()))

	if g.resets != 2 {
		t.Errorf("resets = %d, want 2", g.resets)
	}
	if g.state.GameOver {
		t.Error("game should be running after restart")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	if g.resized != [2]int{100, 40} {
		t.Errorf("resized = %v, want [100 40]", g.resized)
	}
	if g.resets != 1 {
		t.Errorf("resize should not reset a resizable game, resets = %d", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, want 100x40", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, nil)

	if view := m.View(); !strings.Contains(view, "stub") {
		t.Errorf("View() = %q, want it to contain the rendered game", view)
	}
}
