package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ladypac/internal/registry"
	"github.com/vovakirdan/ladypac/internal/storage"
)

func TestScoreboardShowsStoredGames(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScore(storage.ScoreRecord{GameID: "retired-level", Player: "ada", Score: 1234, Outcome: "win"}); err != nil {
		t.Fatal(err)
	}

	m := NewScoreboardModel(store, 100, 30, "retired-level")
	if got := m.games[m.cursor].ID; got != "retired-level" {
		t.Fatalf("initial game = %q, expected retired-level", got)
	}
	if len(m.scores) != 1 || m.scores[0].Player != "ada" {
		t.Errorf("scores = %+v", m.scores)
	}

	view := m.View()
	if !strings.Contains(view, "1234") || !strings.Contains(view, "Wins: 1") {
		t.Errorf("view lacks the score or stats:\n%s", view)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || next.(ScoreboardModel).View() != "" {
		t.Error("esc should close the scoreboard")
	}
}

func TestScoreboardCyclesGames(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20, "")
	n := len(registry.List())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.cursor != 1%n {
		t.Errorf("cursor after tab = %d, expected %d", m.cursor, 1%n)
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("a nil store shows the empty message")
	}
}
