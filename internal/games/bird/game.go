// Package bird implements Healing Bird, a gentle side-scroller.
// The player flaps a bird through drifting clouds and balloons, gathering
// hearts and stars. Bumping into things never ends the run; it only costs a
// little confidence.
package bird

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/cozy-arcade/internal/config"
	"github.com/vovakirdan/cozy-arcade/internal/core"
	"github.com/vovakirdan/cozy-arcade/internal/registry"
)

// Phase is the game's top-level state.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game implements the Healing Bird game logic.
type Game struct {
	cfg        config.BirdConfig
	runtime    core.RuntimeConfig
	view       core.Viewport
	rng        core.Rand
	difficulty *config.DifficultyManager

	width, height float64 // World size in logical pixels

	phase        Phase
	bird         Bird
	obstacles    []Obstacle
	collectibles []Collectible
	particles    []Particle
	background   Background
	message      Message

	score           int
	confidence      float64
	elapsedMS       int // Simulated time, advanced by a nominal frame
	lastRewardMS    int
	speed           float64
	obstacleRate    float64
	collectibleRate float64
	frames          uint64

	events []core.Event
}

// New creates a Healing Bird game with the given configuration.
// Reset must be called before the first Step.
func New(cfg config.BirdConfig) *Game {
	return &Game{
		cfg:        cfg,
		view:       core.NewViewport(cfg.Viewport.CellWidth, cfg.Viewport.CellHeight),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// NewFromOptions loads configuration according to opts and builds a game.
func NewFromOptions(opts registry.Options) (*Game, error) {
	cfg, _, err := config.LoadBird(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	preset, err := config.ParsePreset(opts.Difficulty)
	if err != nil {
		return nil, err
	}
	config.ApplyBirdPreset(&cfg, preset)
	return New(cfg), nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return config.BirdID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Healing Bird"
}

// Reset sizes the world to the screen, reseeds randomness and returns to
// the start screen with a fresh run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = core.NewRand(cfg.Seed)
	g.width, g.height = g.view.WorldSize(cfg.ScreenW, cfg.ScreenH)
	g.background.generate(g.rng, g.width, g.height)
	g.phase = PhaseStart
	g.message.Clear()
	g.resetRun()
}

// Resize adapts the world to a new screen size without ending the run.
func (g *Game) Resize(cols, rows int) {
	g.runtime.ScreenW, g.runtime.ScreenH = cols, rows
	g.width, g.height = g.view.WorldSize(cols, rows)
	g.background.generate(g.rng, g.width, g.height)
	g.clampBird()
}

// resetRun restores everything a restart clears. Scenery survives.
func (g *Game) resetRun() {
	g.score = 0
	g.confidence = 0
	g.elapsedMS = 0
	g.lastRewardMS = 0
	g.frames = 0
	g.speed = g.cfg.Spawn.BaseSpeed
	g.obstacleRate = g.cfg.Spawn.ObstacleRate
	g.collectibleRate = g.cfg.Spawn.CollectibleRate
	g.obstacles = g.obstacles[:0]
	g.collectibles = g.collectibles[:0]
	g.particles = g.particles[:0]

	b := g.cfg.Bird
	g.bird = Bird{
		X:      b.X,
		Y:      g.height / 2,
		Width:  b.Width,
		Height: b.Height,
	}
	g.clampBird()
}

// Step handles input for this frame and, while playing, advances the
// simulation by one frame. dt only drives the message fade.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	g.events = nil
	g.message.Update(dt)
	g.handleInput(in)

	if g.phase == PhasePlaying {
		g.update()
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) handleInput(in core.InputFrame) {
	switch g.phase {
	case PhaseStart:
		if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
			g.begin()
		}
	case PhasePlaying:
		if in.Has(core.ActionPause) {
			g.phase = PhasePaused
			return
		}
		if in.Has(core.ActionJump) {
			g.jump()
		}
	case PhasePaused:
		if in.Has(core.ActionPause) {
			g.phase = PhasePlaying
		}
	case PhaseGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.begin()
		}
	}
}

// begin starts a fresh run from the start or game-over screen.
func (g *Game) begin() {
	g.resetRun()
	g.message.Clear()
	g.phase = PhasePlaying
	g.emit(core.EventStart)
}

func (g *Game) jump() {
	g.bird.Velocity = g.cfg.Bird.JumpImpulse
	g.particles = jumpBurst.emit(g.particles, g.rng, g.bird.X-10, g.bird.Y+g.bird.Height/2)
	g.emit(core.EventJump)
}

func (g *Game) emit(kind core.EventKind) {
	g.events = append(g.events, core.Event{Kind: kind})
}

// update runs one frame of simulation.
func (g *Game) update() {
	g.frames++
	g.elapsedMS += g.cfg.Timing.FrameMS

	g.updateBird()

	var avoided int
	g.obstacles, avoided = moveObstacles(g.obstacles, g.speed)
	g.addScore(avoided * g.cfg.Scoring.Avoid)
	g.collectibles = moveCollectibles(g.collectibles, g.speed, g.cfg.Collectibles.Spin)
	g.particles = updateParticles(g.particles)
	g.background.drift(g.rng)

	g.spawn()
	g.checkCollisions()
	g.updateConfidence()
	g.updateDifficulty()

	if g.score >= g.cfg.Scoring.Win {
		g.phase = PhaseGameOver
		g.emit(core.EventWin)
	}
}

func (g *Game) updateBird() {
	g.bird.Velocity += g.cfg.Bird.Gravity
	g.bird.Y += g.bird.Velocity
	g.clampBird()
	g.bird.WingPhase += 0.2
	g.bird.BlinkPhase += 0.1
}

// clampBird keeps the bird on screen, zeroing velocity when it hits an edge.
func (g *Game) clampBird() {
	if g.bird.Y < 0 {
		g.bird.Y = 0
		g.bird.Velocity = 0
	}
	if floor := g.height - g.bird.Height; g.bird.Y > floor {
		g.bird.Y = math.Max(floor, 0)
		g.bird.Velocity = 0
	}
}

func (g *Game) spawn() {
	if g.rng.Float64() < g.obstacleRate {
		g.obstacles = append(g.obstacles, newObstacle(g.rng, g.cfg.Obstacles, g.width, g.height))
	}
	if g.rng.Float64() < g.collectibleRate {
		g.collectibles = append(g.collectibles, newCollectible(g.rng, g.cfg.Collectibles, g.width, g.height))
	}
}

func (g *Game) checkCollisions() {
	box := g.bird.Box()
	for _, o := range g.obstacles {
		if box.Intersects(o.Box()) {
			g.bump()
		}
	}

	bx, by := g.bird.Center()
	for i := len(g.collectibles) - 1; i >= 0; i-- {
		c := g.collectibles[i]
		cx, cy := c.Center()
		if core.CirclesOverlap(bx, by, cx, cy, g.bird.Width/2+c.Size/2) {
			g.collect(i)
		}
	}
}

// bump is the gentle obstacle response: a soft upward bounce and a small
// confidence dip, never a game over.
func (g *Game) bump() {
	g.bird.Velocity = -math.Abs(g.bird.Velocity) * g.cfg.Bird.BounceDamping
	g.confidence = math.Max(0, g.confidence-g.cfg.Confidence.Penalty)
	g.showMessage(collisionMessage)
	cx, cy := g.bird.Center()
	g.particles = collisionBurst.emit(g.particles, g.rng, cx, cy)
	g.emit(core.EventCollision)
}

func (g *Game) collect(i int) {
	c := g.collectibles[i]
	g.collectibles = append(g.collectibles[:i], g.collectibles[i+1:]...)
	g.addScore(g.cfg.Scoring.Collect)
	g.addConfidence(g.cfg.Confidence.CollectBonus)
	g.particles = collectBurst.emit(g.particles, g.rng, c.X, c.Y)
	g.encourage()
	g.emit(core.EventCollect)
}

func (g *Game) updateConfidence() {
	g.addConfidence(g.cfg.Confidence.Trickle)

	if g.elapsedMS-g.lastRewardMS >= g.cfg.Timing.RewardIntervalMS {
		g.addScore(g.cfg.Scoring.Reward)
		g.addConfidence(g.cfg.Confidence.RewardBonus)
		cx, cy := g.bird.Center()
		g.particles = rewardBurst.emit(g.particles, g.rng, cx, cy)
		g.encourage()
		g.emit(core.EventReward)
		g.lastRewardMS = g.elapsedMS
	}
}

// updateDifficulty ramps scroll speed and spawn rates toward their ceilings.
func (g *Game) updateDifficulty() {
	s := g.cfg.Spawn
	g.speed = g.difficulty.Increase(g.speed, s.Increment, s.MaxSpeed)
	g.obstacleRate = g.difficulty.Increase(g.obstacleRate, s.Increment*s.ObstacleFactor, s.MaxObstacleRate)
	g.collectibleRate = g.difficulty.Increase(g.collectibleRate, s.Increment*s.CollectibleFactor, s.MaxCollectibleRate)
}

func (g *Game) addScore(points int) {
	if points > 0 {
		g.score += points
	}
}

func (g *Game) addConfidence(amount float64) {
	g.confidence = core.ClampF(g.confidence+amount, 0, g.cfg.Confidence.Max)
}

func (g *Game) encourage() {
	g.showMessage(core.Pick(g.rng, encouragements))
}

func (g *Game) showMessage(text string) {
	g.message.Show(text, time.Duration(g.cfg.Timing.MessageMS)*time.Millisecond)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhaseStart || g.phase == PhasePaused,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Confidence returns the confidence meter value.
func (g *Game) Confidence() float64 {
	return g.confidence
}

// String returns a short status line, used in logs.
func (g *Game) String() string {
	return fmt.Sprintf("bird phase=%s score=%d confidence=%.1f speed=%.2f",
		g.phase, g.score, g.confidence, g.speed)
}

// Register the game on package load.
func init() {
	registry.Register(config.BirdID, "Healing Bird", func(opts registry.Options) (registry.Game, error) {
		g, err := NewFromOptions(opts)
		if err != nil {
			return nil, err
		}
		return g, nil
	})
}
