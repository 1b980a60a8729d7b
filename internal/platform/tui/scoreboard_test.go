package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

func TestScoreboardFilters(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, r := range []core.Result{
		{GameID: "shooter", Difficulty: "easy", Score: 900, Level: 2},
		{GameID: "shooter", Difficulty: "hard", Score: 300, Level: 1},
		{GameID: "shooter", Difficulty: "hard", Score: 1500, Level: 4},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, "shooter", "Star Shooter", 100, 30)
	if len(m.scores) != 3 || m.scores[0].Score != 1500 {
		t.Fatalf("All filter should list every result, got %+v", m.scores)
	}

	// All -> Easy
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if len(m.scores) != 1 || m.scores[0].Difficulty != "easy" {
		t.Errorf("Easy filter got %+v", m.scores)
	}

	// Easy -> All -> Hard (wraps backwards)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if len(m.scores) != 2 || m.scores[0].Score != 1500 || m.scores[1].Score != 300 {
		t.Errorf("Hard filter got %+v", m.scores)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "shooter", "Star Shooter", 60, 20)
	if len(m.scores) != 0 {
		t.Error("no store means no scores")
	}
	if m.View() == "" {
		t.Error("view should render the empty message")
	}

	next, _ := m.Update(runeKey('b'))
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("b should go back")
	}
}
