package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pate2crabe/mazegame/internal/core"
)

func updateScoreboard(m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	next, _ := m.Update(msg)
	return next.(ScoreboardModel)
}

func TestScoreboardViews(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore("maze", 300); err != nil {
		t.Fatalf("SaveScore() error: %v", err)
	}
	if _, err := store.SaveRun("maze", core.RunSummary{
		Width: 21, Height: 21, BonusFound: 2, BonusTotal: 3,
		Outcome: core.OutcomeTimeout, Duration: 90 * time.Second, Score: 300,
	}); err != nil {
		t.Fatalf("SaveRun() error: %v", err)
	}

	m := NewScoreboardModel(store, "maze", 80, 24)
	if m.ActiveView() != ViewTopScores {
		t.Fatalf("initial view = %v, want %v", m.ActiveView(), ViewTopScores)
	}
	if view := m.View(); !strings.Contains(view, "300") {
		t.Errorf("top scores view missing score:\n%s", view)
	}

	m = updateScoreboard(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.ActiveView() != ViewRecentRuns {
		t.Fatalf("view = %v, want %v", m.ActiveView(), ViewRecentRuns)
	}
	view := m.View()
	for _, want := range []string{"timeout", "2/3", "1:30", "21x21"} {
		if !strings.Contains(view, want) {
			t.Errorf("recent runs view missing %q:\n%s", want, view)
		}
	}

	m = updateScoreboard(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.ActiveView() != ViewStats {
		t.Fatalf("view = %v, want %v", m.ActiveView(), ViewStats)
	}
	if view := m.View(); !strings.Contains(view, "Traps sprung") {
		t.Errorf("stats view missing labels:\n%s", view)
	}

	m = updateScoreboard(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.ActiveView() != ViewTopScores {
		t.Errorf("view should wrap to %v, got %v", ViewTopScores, m.ActiveView())
	}
	m = updateScoreboard(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.ActiveView() != ViewStats {
		t.Errorf("shift+tab should wrap to %v, got %v", ViewStats, m.ActiveView())
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, "maze", 80, 24)
	if view := m.View(); !strings.Contains(view, "No entries yet") {
		t.Errorf("empty scoreboard view:\n%s", view)
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := updateScoreboard(NewScoreboardModel(nil, "maze", 80, 24), tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Errorf("esc: back=%v quit=%v", m.IsGoingBack(), m.IsQuitting())
	}

	m = updateScoreboard(NewScoreboardModel(nil, "maze", 80, 24), runeKey("q"))
	if !m.IsQuitting() || m.IsGoingBack() {
		t.Errorf("q: back=%v quit=%v", m.IsGoingBack(), m.IsQuitting())
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := map[int]string{0: "0:00", 59: "0:59", 61: "1:01", 600: "10:00"}
	for in, want := range tests {
		if got := formatSeconds(in); got != want {
			t.Errorf("formatSeconds(%d) = %q, want %q", in, got, want)
		}
	}
}
