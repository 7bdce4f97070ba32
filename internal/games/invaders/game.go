// Package invaders implements Invaders, a fixed shooter.
// A five by ten formation sweeps side to side, stepping down each time it
// touches an edge. Shoot them all before they reach the cannon.
package invaders

import (
	"fmt"
	"time"

	"github.com/vovakirdan/cozy-arcade/internal/config"
	"github.com/vovakirdan/cozy-arcade/internal/core"
	"github.com/vovakirdan/cozy-arcade/internal/registry"
)

// Phase is the game's top-level state.
type Phase int

const (
	PhaseIdle    Phase = iota // Intro screen or paused
	PhaseRunning              // Simulation advancing
	PhaseEnded                // Won or lost, waiting for acknowledgement
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Outcome records how an ended game finished.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "none"
	}
}

// Player is the cannon at the bottom of the screen.
type Player struct {
	X, Y          float64
	Width, Height float64
}

// Box returns the player's bounding box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Game implements the Invaders game logic.
type Game struct {
	cfg        config.InvadersConfig
	runtime    core.RuntimeConfig
	view       core.Viewport
	difficulty *config.DifficultyManager

	width, height float64 // World size in logical pixels
	left          float64 // Formation offset that centers the grid

	phase   Phase
	outcome Outcome
	started bool // False until the first toggle, selects intro vs pause screen

	player  Player
	intent  int // -1 left, 0 stop, 1 right
	hold    int // Frames left before the intent lapses
	fire    bool
	bullets []Bullet
	grid    []Invader

	score     int
	lives     int
	direction float64
	speed     float64
	descents  int

	clock    time.Duration // Sum of driven dt
	lastFire time.Duration
	hasFired bool
	frames   uint64

	events []core.Event
}

// New creates an Invaders game with the given configuration.
// Reset must be called before the first Step.
func New(cfg config.InvadersConfig) *Game {
	return &Game{
		cfg:        cfg,
		view:       core.NewViewport(cfg.Viewport.CellWidth, cfg.Viewport.CellHeight),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// NewFromOptions loads configuration according to opts and builds a game.
func NewFromOptions(opts registry.Options) (*Game, error) {
	cfg, _, err := config.LoadInvaders(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	preset, err := config.ParsePreset(opts.Difficulty)
	if err != nil {
		return nil, err
	}
	config.ApplyInvadersPreset(&cfg, preset)
	return New(cfg), nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return config.InvadersID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Invaders"
}

// Reset sizes the world to the screen and sets up a fresh idle game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.width, g.height = g.view.WorldSize(cfg.ScreenW, cfg.ScreenH)
	g.started = false
	g.reset()
}

// reset restores a fresh formation and zeroed score. It leaves the game idle.
func (g *Game) reset() {
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.bullets = g.bullets[:0]
	g.left = offsetLeft(g.cfg.Grid, g.width)
	g.grid = buildGrid(g.cfg.Grid, g.left)
	g.direction = 1
	g.speed = g.cfg.Sweep.BaseSpeed
	g.descents = 0
	g.intent, g.hold, g.fire = 0, 0, false
	g.hasFired = false
	g.lastFire = 0
	g.frames = 0
	g.phase = PhaseIdle
	g.outcome = OutcomeNone

	p := g.cfg.Player
	g.player = Player{Width: p.Width, Height: p.Height, X: (g.width - p.Width) / 2}
	g.placePlayer()
}

// Resize adapts the world to a new screen size without ending the game.
// The running formation keeps its position; the next reset recenters it.
func (g *Game) Resize(cols, rows int) {
	g.runtime.ScreenW, g.runtime.ScreenH = cols, rows
	g.width, g.height = g.view.WorldSize(cols, rows)
	g.left = offsetLeft(g.cfg.Grid, g.width)
	g.placePlayer()
}

func (g *Game) placePlayer() {
	g.player.Y = g.height - g.player.Height - g.cfg.Player.BottomMargin
	g.clampPlayer()
}

func (g *Game) clampPlayer() {
	g.player.X = core.ClampF(g.player.X, 0, max(g.width-g.player.Width, 0))
}

// Step handles input and, while running, advances the simulation one frame.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	g.events = nil
	g.clock += dt
	g.handleInput(in)

	if g.phase == PhaseRunning {
		g.update()
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) handleInput(in core.InputFrame) {
	switch g.phase {
	case PhaseIdle:
		if in.Has(core.ActionPause) || in.Has(core.ActionConfirm) {
			g.Toggle()
		}
	case PhaseRunning:
		if in.Has(core.ActionPause) {
			g.Toggle()
			return
		}
		switch {
		case in.Has(core.ActionLeft):
			g.intent, g.hold = -1, g.cfg.Player.HoldTicks
		case in.Has(core.ActionRight):
			g.intent, g.hold = 1, g.cfg.Player.HoldTicks
		case in.Has(core.ActionDown):
			g.intent, g.hold = 0, 0
		}
		// Enter fires too, like space.
		if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
			g.fire = true
		}
	case PhaseEnded:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.reset()
		}
	}
}

// Toggle flips between idle and running. A game with no lives left is
// reset before it resumes. Ended games only leave through a reset.
func (g *Game) Toggle() {
	if g.phase == PhaseEnded {
		return
	}
	if g.lives <= 0 {
		g.reset()
	}
	if g.phase == PhaseRunning {
		g.phase = PhaseIdle
		g.intent, g.hold, g.fire = 0, 0, false
		return
	}
	g.phase = PhaseRunning
	g.started = true
	g.emit(core.EventStart)
}

func (g *Game) emit(kind core.EventKind) {
	g.events = append(g.events, core.Event{Kind: kind})
}

// update runs one frame of simulation.
func (g *Game) update() {
	g.frames++

	g.movePlayer()
	if g.fire {
		g.fire = false
		g.shoot()
	}
	g.bullets = moveBullets(g.bullets, g.cfg.Bullet.Speed, g.cfg.Bullet.Height)
	g.sweep()

	if lowestBottom(g.grid, g.cfg.Grid.Height) >= g.player.Y {
		g.end(OutcomeLose)
		return
	}

	g.checkCollisions()
}

func (g *Game) movePlayer() {
	g.player.X += float64(g.intent) * g.cfg.Player.Speed
	g.clampPlayer()

	if g.intent != 0 {
		g.hold--
		if g.hold <= 0 {
			g.intent = 0
		}
	}
}

// shoot spawns a bullet at the muzzle unless the cooldown is still running.
func (g *Game) shoot() {
	cooldown := time.Duration(g.cfg.Bullet.CooldownMS) * time.Millisecond
	if g.hasFired && g.clock-g.lastFire < cooldown {
		return
	}
	b := g.cfg.Bullet
	g.bullets = append(g.bullets, Bullet{
		X: g.player.X + g.player.Width/2 - b.Width/2,
		Y: g.player.Y - b.Height,
	})
	g.lastFire = g.clock
	g.hasFired = true
	g.emit(core.EventFire)
}

// sweep moves the formation sideways. Touching either padded edge reverses
// it, steps every living invader down and speeds the sweep up.
func (g *Game) sweep() {
	gc := g.cfg.Grid
	for i := range g.grid {
		if g.grid[i].Alive {
			g.grid[i].X += g.speed * g.direction
		}
	}

	minX, maxX, ok := extent(g.grid, gc.Width)
	if !ok {
		return
	}
	if maxX < g.width-gc.Padding && minX > gc.Padding {
		return
	}

	g.direction = -g.direction
	for i := range g.grid {
		if g.grid[i].Alive {
			g.grid[i].Y += g.cfg.Sweep.Descent
		}
	}
	g.speed = g.difficulty.Grow(g.speed, g.cfg.Sweep.Growth, g.cfg.Sweep.MaxSpeed)
	g.descents++
}

// checkCollisions resolves bullet hits, newest bullet and last invader first.
func (g *Game) checkCollisions() {
	gc, bc := g.cfg.Grid, g.cfg.Bullet
	for i := len(g.bullets) - 1; i >= 0; i-- {
		box := g.bullets[i].Box(bc.Width, bc.Height)
		for j := len(g.grid) - 1; j >= 0; j-- {
			if !g.grid[j].Alive || !box.Intersects(g.grid[j].Box(gc.Width, gc.Height)) {
				continue
			}
			g.grid[j].Alive = false
			g.bullets = append(g.bullets[:i], g.bullets[i+1:]...)
			g.score += g.cfg.Gameplay.HitPoints
			g.emit(core.EventHit)

			if living(g.grid) == 0 {
				g.end(OutcomeWin)
				return
			}
			break
		}
	}
}

func (g *Game) end(o Outcome) {
	g.phase = PhaseEnded
	g.outcome = o
	g.intent, g.hold, g.fire = 0, 0, false
	if o == OutcomeWin {
		g.emit(core.EventWin)
	} else {
		g.emit(core.EventLose)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseEnded,
		Paused:   g.phase == PhaseIdle,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Outcome returns how the game ended, or OutcomeNone while it is still on.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Lives returns the lives counter. Nothing in play decrements it; losing is
// decided solely by the formation reaching the cannon.
func (g *Game) Lives() int {
	return g.lives
}

// String returns a short status line, used in logs.
func (g *Game) String() string {
	return fmt.Sprintf("invaders phase=%s outcome=%s score=%d living=%d speed=%.2f",
		g.phase, g.outcome, g.score, living(g.grid), g.speed)
}

// Register the game on package load.
func init() {
	registry.Register(config.InvadersID, "Invaders", func(opts registry.Options) (registry.Game, error) {
		g, err := NewFromOptions(opts)
		if err != nil {
			return nil, err
		}
		return g, nil
	})
}
