package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/cozy-arcade/internal/registry"
	"github.com/vovakirdan/cozy-arcade/internal/storage"
)

func newTestBoard(t *testing.T) (ScoreboardModel, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	runs := []storage.Run{
		{GameID: "bird-tab", Score: 300, Outcome: "lose", Difficulty: "easy", Duration: 90 * time.Second},
		{GameID: "bird-tab", Score: 120, Outcome: "lose"},
		{GameID: "invaders-tab", Score: 500, Outcome: "win", Difficulty: "hard", Duration: time.Minute},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	m.games = []registry.GameInfo{
		{ID: "bird-tab", Title: "Healing Bird"},
		{ID: "invaders-tab", Title: "Invaders"},
	}
	m.load()
	return m, store
}

func boardPress(t *testing.T, m ScoreboardModel, key string) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(keyMsg(key))
	return next.(ScoreboardModel)
}

func TestScoreboardSwitchesGames(t *testing.T) {
	m, _ := newTestBoard(t)

	if len(m.scores) != 2 || m.scores[0].Score != 300 {
		t.Fatalf("first tab scores = %+v", m.scores)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"tab", "invaders-tab"},
		{"tab", "bird-tab"}, // wraps
		{"left", "invaders-tab"},
		{"right", "bird-tab"},
	}
	for _, tt := range tests {
		m = boardPress(t, m, tt.key)
		if m.gameID() != tt.want {
			t.Fatalf("after %q game = %q, want %q", tt.key, m.gameID(), tt.want)
		}
	}

	m = boardPress(t, m, "tab")
	if len(m.scores) != 1 || m.scores[0].Outcome != "win" {
		t.Errorf("invaders scores = %+v", m.scores)
	}
}

func TestScoreboardView(t *testing.T) {
	m, _ := newTestBoard(t)
	view := m.View()

	for _, want := range []string{"HIGH SCORES", "Healing Bird  300", "Invaders  500", "easy", "1m30s", "Played 2", "Best 300"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	m.games = []registry.GameInfo{{ID: "bird-tab", Title: "Healing Bird"}}
	m.load()

	view := m.View()
	if !strings.Contains(view, "No runs recorded yet.") {
		t.Error("empty board should say so")
	}
	if m.statsLine() != "" {
		t.Error("no stats line without runs")
	}

	// A single tab has nowhere to switch to.
	m = boardPress(t, m, "tab")
	if m.gameID() != "bird-tab" {
		t.Errorf("game = %q", m.gameID())
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)

	back := boardPress(t, m, "esc")
	if !back.IsGoingBack() || back.IsQuitting() {
		t.Error("esc should go back")
	}

	quit := boardPress(t, m, "q")
	if !quit.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestLabels(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{resultLabel("win"), "won"},
		{resultLabel("lose"), "lost"},
		{resultLabel(""), "-"},
		{levelLabel("hard"), "hard"},
		{levelLabel(""), "-"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("label = %q, want %q", tt.got, tt.want)
		}
	}
}
