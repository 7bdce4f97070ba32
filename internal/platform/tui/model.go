package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cozy-arcade/internal/core"
	"github.com/vovakirdan/cozy-arcade/internal/registry"
	"github.com/vovakirdan/cozy-arcade/internal/storage"
)

// Sounds receives game events for playback.
type Sounds interface {
	PlayEvent(e core.Event)
	ToggleMute() bool
}

// ScoreSaver records finished games. *storage.Store implements it.
type ScoreSaver interface {
	SaveRun(r storage.Run) (int64, error)
}

// Resizer is implemented by games that can adapt to a new screen size
// without restarting.
type Resizer interface {
	Resize(cols, rows int)
}

// quietSounds is used when no audio is wired.
type quietSounds struct{ muted bool }

func (q *quietSounds) PlayEvent(core.Event) {}

func (q *quietSounds) ToggleMute() bool {
	q.muted = !q.muted
	return q.muted
}

// ModelOptions holds the collaborators of a game model. Every field is
// optional.
type ModelOptions struct {
	Store      ScoreSaver
	Sounds     Sounds
	Logger     *log.Logger
	Difficulty string // Recorded with saved scores
	AllowBack  bool   // Back returns to a menu instead of quitting
}

// GameModel is the Bubble Tea model that runs one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	opts       ModelOptions
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	played     time.Duration // Unpaused time in the current run
	outcome    string
	muted      bool
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Sounds == nil {
		opts.Sounds = &quietSounds{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
	if s, ok := opts.Sounds.(interface{ Muted() bool }); ok {
		m.muted = s.Muted()
	}
	return m
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.Logger.Debug("game started", "game", m.game.ID(), "size", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionMute:
		m.muted = m.opts.Sounds.ToggleMute()
		m.opts.Logger.Debug("mute toggled", "muted", m.muted)
		return m, nil

	case action == core.ActionBack:
		// Back only leaves a game that is not in motion.
		if m.gameState.Paused || m.gameState.GameOver {
			if m.opts.AllowBack {
				m.backToMenu = true
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	result := m.game.Step(m.inputFrame, dt)
	m.inputFrame.Clear()
	m.applyResult(result, dt)

	return m, tickCmd(m.config.TickRate)
}

// applyResult plays event sounds, tracks the run and saves the score
// once per game over.
func (m *GameModel) applyResult(result core.StepResult, dt time.Duration) {
	for _, e := range result.Events {
		m.opts.Sounds.PlayEvent(e)
		switch e.Kind {
		case core.EventStart:
			m.played = 0
			m.outcome = ""
		case core.EventWin:
			m.outcome = "win"
		case core.EventLose:
			m.outcome = "lose"
		}
	}

	m.gameState = result.State
	if !m.gameState.Paused && !m.gameState.GameOver {
		m.played += dt
	}

	if !m.gameState.GameOver {
		m.scoreSaved = false
		return
	}
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	m.opts.Logger.Info("game over", "game", m.game.ID(), "score", m.gameState.Score, "outcome", m.outcome, "played", m.played.Round(time.Second))

	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}
	_, err := m.opts.Store.SaveRun(storage.Run{
		GameID:     m.game.ID(),
		Score:      m.gameState.Score,
		Outcome:    m.outcome,
		Difficulty: m.opts.Difficulty,
		Duration:   m.played,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.opts.Logger.Warn("could not save score", "game", m.game.ID(), "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	if m.muted {
		label := "[muted]"
		m.screen.DrawTextColor(m.screen.Width()-len(label)-1, m.screen.Height()-1, label, core.ColorDimGray)
	}

	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for a single game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) error {
	model := NewGameModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
