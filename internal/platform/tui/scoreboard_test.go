package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

func scoreboardUpdate(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sb
}

func TestScoreboardCyclesVariants(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	for _, r := range []struct {
		id    string
		score int
	}{
		{"snake", 4},
		{"snake", 2},
		{"snake_walls", 7},
	} {
		if _, err := store.SaveScore(r.id, r.score); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}

	m := NewScoreboardModel(store, 9, 100, 30)
	if len(m.runs) != 2 {
		t.Fatalf("Expected 2 runs for snake, got %d", len(m.runs))
	}
	if !strings.Contains(m.View(), "Runs: 2  Best: 4  Average: 3.0") {
		t.Errorf("Missing summary:\n%s", m.View())
	}

	m = scoreboardUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.variants[m.current].ID != "snake_walls" {
		t.Fatalf("Right should select snake_walls, got %s", m.variants[m.current].ID)
	}
	if !strings.Contains(m.View(), "Best: 7") {
		t.Errorf("Missing snake_walls best:\n%s", m.View())
	}

	// Left twice wraps past the first variant
	m = scoreboardUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = scoreboardUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.variants[m.current].ID != "snake_wrap" {
		t.Fatalf("Expected snake_wrap, got %s", m.variants[m.current].ID)
	}
	if len(m.runs) != 0 || !strings.Contains(m.View(), "No runs recorded yet") {
		t.Errorf("snake_wrap should be empty:\n%s", m.View())
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 5, 60, 20)

	view := m.View()
	if !strings.Contains(view, "All-time high: 5") || !strings.Contains(view, "Runs: 0") {
		t.Errorf("Unexpected view:\n%s", view)
	}

	m = scoreboardUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("Esc should go back")
	}

	m = NewScoreboardModel(nil, 0, 60, 20)
	m = scoreboardUpdate(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}
