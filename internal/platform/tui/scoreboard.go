package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cozy-arcade/internal/registry"
	"github.com/vovakirdan/cozy-arcade/internal/storage"
)

const scoreLimit = 50 // Runs listed per game

var (
	scoreTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	scoreTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	scoreActiveTab  = scoreTabStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	scoreBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	scoreDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// scoreKeys are the scoreboard bindings. Every game gets a tab, so the
// switch keys just move between the tabs.
type scoreKeys struct {
	Scroll key.Binding
	Switch key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Switch, k.Scroll, k.Back, k.Quit}
}

func (k scoreKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newScoreKeys() scoreKeys {
	return scoreKeys{
		Scroll: key.NewBinding(key.WithKeys("up", "k", "down", "j"), key.WithHelp("up/down", "scroll")),
		Switch: key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"), key.WithHelp("tab/left/right", "switch game")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the stored runs of one game at a time, with a tab
// per game carrying its best score.
type ScoreboardModel struct {
	games     []registry.GameInfo
	current   int
	store     *storage.Store
	stats     map[string]*storage.GameStats
	scores    []storage.ScoreEntry
	table     table.Model
	help      help.Model
	keys      scoreKeys
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel loads the first game's runs. A nil store shows an
// empty board.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		stats:  map[string]*storage.GameStats{},
		help:   help.New(),
		keys:   newScoreKeys(),
		width:  width,
		height: height,
	}
	if store != nil {
		if stats, err := store.GetAllGamesStats(); err == nil {
			m.stats = stats
		}
	}
	m.table = newScoreTable(height)
	m.load()
	return m
}

func newScoreTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 8},
			{Title: "Result", Width: 6},
			{Title: "Level", Width: 7},
			{Title: "Time", Width: 7},
			{Title: "Date", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-11, 3)), // Title, tabs, stats, help and borders
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// gameID is the selected game, or "" when nothing is registered.
func (m ScoreboardModel) gameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.current].ID
}

// load fills the table with the selected game's best runs.
func (m *ScoreboardModel) load() {
	m.scores = nil
	if id := m.gameID(); id != "" && m.store != nil {
		if scores, err := m.store.TopScores(id, scoreLimit); err == nil {
			m.scores = scores
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", s.Score),
			resultLabel(s.Outcome),
			levelLabel(s.Difficulty),
			s.Duration.Round(time.Second).String(),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// switchGame moves the tab by delta, wrapping at both ends.
func (m *ScoreboardModel) switchGame(delta int) {
	if len(m.games) < 2 {
		return
	}
	m.current = (m.current + delta + len(m.games)) % len(m.games)
	m.load()
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		case key.Matches(msg, m.keys.Switch):
			switch msg.String() {
			case "shift+tab", "left", "h":
				m.switchGame(-1)
			default:
				m.switchGame(1)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(msg.Height-11, 3))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(scoreTitleStyle.Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	body := scoreDimStyle.Italic(true).Padding(1, 2).Render("No runs recorded yet.\nPlay a game to set a high score!")
	if len(m.scores) > 0 {
		body = m.table.View()
	}
	b.WriteString(centerText(scoreBoxStyle.Render(body), m.width))
	b.WriteString("\n")

	if line := m.statsLine(); line != "" {
		b.WriteString(scoreDimStyle.Render(centerText(line, m.width)))
		b.WriteString("\n")
	}
	b.WriteString(scoreDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs renders one tab per game with its best score.
func (m ScoreboardModel) tabs() string {
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		label := g.Title
		if s, ok := m.stats[g.ID]; ok && s.GamesCount > 0 {
			label = fmt.Sprintf("%s  %d", g.Title, s.HighScore)
		}
		if i == m.current {
			tabs[i] = scoreActiveTab.Render(label)
		} else {
			tabs[i] = scoreTabStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// statsLine summarizes the selected game's history.
func (m ScoreboardModel) statsLine() string {
	s, ok := m.stats[m.gameID()]
	if !ok || s.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("Played %d  |  Wins %d  |  Best %d  |  Average %.0f  |  Last %s",
		s.GamesCount, s.Wins, s.HighScore, s.AvgScore, s.LastPlayed.Format("Jan 02 15:04"))
}

// resultLabel formats a stored outcome for the table.
func resultLabel(outcome string) string {
	switch outcome {
	case "win":
		return "won"
	case "lose":
		return "lost"
	default:
		return "-"
	}
}

// levelLabel formats a stored difficulty; runs saved before presets
// existed have none.
func levelLabel(difficulty string) string {
	if difficulty == "" {
		return "-"
	}
	return difficulty
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
