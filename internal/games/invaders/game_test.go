package invaders

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/cozy-arcade/internal/config"
	"github.com/vovakirdan/cozy-arcade/internal/core"
)

const frame = 16 * time.Millisecond

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New(config.DefaultInvadersConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	return g
}

func running(t *testing.T) *Game {
	t.Helper()
	g := newTestGame(t)
	g.Toggle()
	if g.phase != PhaseRunning {
		t.Fatalf("expected running after toggle, got %v", g.phase)
	}
	return g
}

// keepOnly kills every invader except the one at index i.
func keepOnly(g *Game, i int) *Invader {
	for j := range g.grid {
		g.grid[j].Alive = j == i
	}
	return &g.grid[i]
}

func countEvents(res core.StepResult, kind core.EventKind) int {
	n := 0
	for _, e := range res.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func TestGridLayout(t *testing.T) {
	g := newTestGame(t)
	gc := g.cfg.Grid

	if len(g.grid) != gc.Rows*gc.Cols {
		t.Fatalf("expected %d invaders, got %d", gc.Rows*gc.Cols, len(g.grid))
	}
	// 640 wide world, formation is 10*25 + 9*10 = 340.
	if g.left != 150 {
		t.Errorf("offset left = %v, expected 150", g.left)
	}

	// Column-major: the first column's rows come first.
	tests := []struct {
		idx      int
		col, row int
		x, y     float64
		color    core.Color
	}{
		{0, 0, 0, 150, 30, core.ColorGreen},
		{1, 0, 1, 150, 60, core.ColorRed},
		{4, 0, 4, 150, 150, core.ColorMagenta},
		{5, 1, 0, 185, 30, core.ColorGreen},
		{49, 9, 4, 465, 150, core.ColorMagenta},
	}
	for _, tt := range tests {
		inv := g.grid[tt.idx]
		if inv.Col != tt.col || inv.Row != tt.row || inv.X != tt.x || inv.Y != tt.y || inv.Color != tt.color {
			t.Errorf("grid[%d] = %+v, expected col=%d row=%d at (%v,%v) color %v",
				tt.idx, inv, tt.col, tt.row, tt.x, tt.y, tt.color)
		}
		if !inv.Alive {
			t.Errorf("grid[%d] should start alive", tt.idx)
		}
	}
}

func TestResetState(t *testing.T) {
	g := newTestGame(t)

	if g.Phase() != PhaseIdle || !g.State().Paused {
		t.Errorf("new game should be idle, got %v", g.Phase())
	}
	if g.score != 0 || g.lives != 3 || len(g.bullets) != 0 {
		t.Errorf("score=%d lives=%d bullets=%d", g.score, g.lives, len(g.bullets))
	}
	if g.direction != 1 || g.speed != g.cfg.Sweep.BaseSpeed {
		t.Errorf("direction=%v speed=%v", g.direction, g.speed)
	}
	if g.player.X != 305 || g.player.Y != 364 {
		t.Errorf("player at (%v,%v), expected (305,364)", g.player.X, g.player.Y)
	}

	// Idle games do not advance.
	g.Step(idle(), frame)
	if g.frames != 0 {
		t.Error("idle game advanced")
	}
}

func TestToggle(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(core.InputOf(core.ActionPause), frame)
	if g.Phase() != PhaseRunning || countEvents(res, core.EventStart) != 1 {
		t.Fatalf("pause key should start the game, phase=%v", g.Phase())
	}
	if g.frames != 1 {
		t.Errorf("starting frame should also simulate, frames=%d", g.frames)
	}

	g.Step(core.InputOf(core.ActionPause), frame)
	if g.Phase() != PhaseIdle {
		t.Fatalf("pause key should pause, got %v", g.Phase())
	}
	frames := g.frames
	g.Step(core.InputOf(core.ActionJump), frame)
	if g.frames != frames || len(g.bullets) != 0 {
		t.Error("paused game should not advance or fire")
	}

	g.Step(core.InputOf(core.ActionPause), frame)
	if g.Phase() != PhaseRunning {
		t.Errorf("expected resume, got %v", g.Phase())
	}
}

func TestConfirmFiresWhileRunning(t *testing.T) {
	g := newTestGame(t)

	g.Step(core.InputOf(core.ActionConfirm), frame)
	if g.Phase() != PhaseRunning {
		t.Fatalf("confirm should start an idle game, got %v", g.Phase())
	}
	if len(g.bullets) != 0 {
		t.Fatal("the starting press should not also fire")
	}

	res := g.Step(core.InputOf(core.ActionConfirm), frame)
	if g.Phase() != PhaseRunning {
		t.Errorf("confirm should keep a running game running, got %v", g.Phase())
	}
	if len(g.bullets) != 1 || countEvents(res, core.EventFire) != 1 {
		t.Errorf("confirm should fire while running: bullets=%d events=%v", len(g.bullets), res.Events)
	}
}

func TestToggleResetsWithoutLives(t *testing.T) {
	g := newTestGame(t)
	g.score = 40
	g.lives = 0
	g.grid[0].Alive = false

	g.Toggle()
	if g.Phase() != PhaseRunning {
		t.Fatalf("expected running, got %v", g.Phase())
	}
	if g.score != 0 || g.lives != 3 || living(g.grid) != 50 {
		t.Errorf("toggle without lives should reset: score=%d lives=%d living=%d",
			g.score, g.lives, living(g.grid))
	}
}

func TestFireCooldown(t *testing.T) {
	g := running(t)

	fire := core.InputOf(core.ActionJump)
	res := g.Step(fire, frame)
	if len(g.bullets) != 1 || countEvents(res, core.EventFire) != 1 {
		t.Fatalf("first shot should always fire, bullets=%d", len(g.bullets))
	}

	b := g.bullets[0]
	wantX := g.player.X + g.player.Width/2 - g.cfg.Bullet.Width/2
	if b.X != wantX {
		t.Errorf("bullet x = %v, expected %v", b.X, wantX)
	}
	// Spawned at the muzzle, then moved once.
	wantY := g.player.Y - g.cfg.Bullet.Height - g.cfg.Bullet.Speed
	if b.Y != wantY {
		t.Errorf("bullet y = %v, expected %v", b.Y, wantY)
	}

	tests := []struct {
		dt      time.Duration
		bullets int
	}{
		{100 * time.Millisecond, 1},
		{100 * time.Millisecond, 1},
		{99 * time.Millisecond, 1},
		{time.Millisecond, 2}, // Exactly 300ms since the first shot
	}
	for i, tt := range tests {
		g.Step(fire, tt.dt)
		if len(g.bullets) != tt.bullets {
			t.Errorf("step %d: bullets = %d, expected %d", i, len(g.bullets), tt.bullets)
		}
	}
}

func TestMoveBullets(t *testing.T) {
	bullets := []Bullet{
		{X: 1, Y: 100},
		{X: 2, Y: -2}, // Bottom edge lands at y=1
		{X: 3, Y: -3}, // Bottom edge lands exactly on the top edge
	}
	bullets = moveBullets(bullets, 7, 10)

	if len(bullets) != 2 {
		t.Fatalf("expected 2 bullets kept, got %d", len(bullets))
	}
	if bullets[0].Y != 93 || bullets[1].Y != -9 {
		t.Errorf("unexpected positions %+v", bullets)
	}
}

func TestMovementIntentLatches(t *testing.T) {
	g := running(t)
	x0 := g.player.X
	speed := g.cfg.Player.Speed
	hold := g.cfg.Player.HoldTicks

	g.Step(core.InputOf(core.ActionRight), frame)
	for i := 1; i < hold; i++ {
		g.Step(idle(), frame)
	}
	want := x0 + float64(hold)*speed
	if g.player.X != want {
		t.Fatalf("after %d latched frames x = %v, expected %v", hold, g.player.X, want)
	}
	if g.intent != 0 {
		t.Errorf("intent should lapse after %d frames", hold)
	}
	g.Step(idle(), frame)
	if g.player.X != want {
		t.Error("player kept moving after the latch expired")
	}

	g.Step(core.InputOf(core.ActionLeft), frame)
	g.Step(core.InputOf(core.ActionDown), frame)
	g.Step(idle(), frame)
	if g.player.X != want-speed {
		t.Errorf("down should stop immediately, x = %v, expected %v", g.player.X, want-speed)
	}
}

func TestPlayerStaysInBounds(t *testing.T) {
	g := running(t)

	for i := 0; i < 150; i++ {
		g.Step(core.InputOf(core.ActionRight), frame)
		if g.player.X < 0 || g.player.X > g.width-g.player.Width {
			t.Fatalf("frame %d: player x=%v out of bounds", i, g.player.X)
		}
	}
	if g.player.X != g.width-g.player.Width {
		t.Errorf("player should rest on the right edge, x=%v", g.player.X)
	}

	for i := 0; i < 150; i++ {
		g.Step(core.InputOf(core.ActionLeft), frame)
	}
	if g.player.X != 0 {
		t.Errorf("player should rest on the left edge, x=%v", g.player.X)
	}
}

func TestSweepReversesAtBoundary(t *testing.T) {
	tests := []struct {
		name      string
		x         float64
		direction float64
	}{
		// 604 + 25 + 2*0.5 reaches 640 - 10 on the second frame.
		{"right edge", 604, 1},
		// 11 - 2*0.5 reaches the left padding on the second frame.
		{"left edge", 11, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := running(t)
			inv := keepOnly(g, 0)
			inv.X = tt.x
			y0 := inv.Y
			g.direction = tt.direction

			g.Step(idle(), frame)
			if g.direction != tt.direction || inv.Y != y0 || g.descents != 0 {
				t.Fatalf("reversed early: x=%v dir=%v", inv.X, g.direction)
			}

			g.Step(idle(), frame)
			if g.direction != -tt.direction {
				t.Errorf("direction should reverse on touching the edge, x=%v", inv.X)
			}
			if inv.Y != y0+g.cfg.Sweep.Descent {
				t.Errorf("y = %v, expected descent to %v on the same frame", inv.Y, y0+g.cfg.Sweep.Descent)
			}
			if want := g.cfg.Sweep.BaseSpeed * g.cfg.Sweep.Growth; g.speed != want {
				t.Errorf("speed = %v, expected %v", g.speed, want)
			}
		})
	}
}

func TestDeadInvadersIgnoredBySweep(t *testing.T) {
	g := running(t)
	dead := g.grid[49]
	g.grid[49].Alive = false

	g.Step(idle(), frame)
	if g.grid[49].X != dead.X || g.grid[49].Y != dead.Y {
		t.Error("dead invader moved")
	}
	if g.grid[0].X != 150+g.cfg.Sweep.BaseSpeed {
		t.Errorf("living invader x = %v", g.grid[0].X)
	}
}

func TestSweepSpeedIsCapped(t *testing.T) {
	g := running(t)
	inv := keepOnly(g, 0)

	for i := 0; i < 200; i++ {
		inv.X = g.width // Always past the edge
		inv.Y = 0
		g.sweep()
		if g.speed > g.cfg.Sweep.MaxSpeed {
			t.Fatalf("speed %v exceeded ceiling", g.speed)
		}
	}
	if g.speed != g.cfg.Sweep.MaxSpeed {
		t.Errorf("speed = %v, expected to settle at %v", g.speed, g.cfg.Sweep.MaxSpeed)
	}
}

func TestFixedDifficultyKeepsSweepSpeed(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	config.ApplyInvadersPreset(&cfg, config.DifficultyFixed)
	g := New(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	g.Toggle()

	inv := keepOnly(g, 0)
	inv.X = g.width
	g.sweep()
	if g.descents != 1 || g.speed != cfg.Sweep.BaseSpeed {
		t.Errorf("descents=%d speed=%v, expected one descent at base speed", g.descents, g.speed)
	}
}

func TestLossWhenFormationReachesPlayer(t *testing.T) {
	g := running(t)
	inv := keepOnly(g, 0)
	inv.X = 300
	inv.Y = g.player.Y - g.cfg.Grid.Height - 0.5

	g.Step(idle(), frame)
	if g.Phase() != PhaseRunning {
		t.Fatalf("bottom edge above the player should not lose")
	}

	inv.Y = g.player.Y - g.cfg.Grid.Height
	// This bullet would hit, but the frame stops at the loss.
	g.bullets = append(g.bullets, Bullet{X: 310, Y: inv.Y + 13})
	res := g.Step(idle(), frame)
	if g.Phase() != PhaseEnded || g.Outcome() != OutcomeLose {
		t.Fatalf("expected loss, phase=%v outcome=%v", g.Phase(), g.Outcome())
	}
	if countEvents(res, core.EventLose) != 1 {
		t.Errorf("expected lose event, got %v", res.Events)
	}
	if g.score != 0 || len(g.bullets) != 1 || !inv.Alive {
		t.Errorf("collisions should be skipped after a loss: score=%d bullets=%d", g.score, len(g.bullets))
	}
	if g.Lives() != 3 {
		t.Errorf("lives = %d, losing never spends lives", g.Lives())
	}
}

func TestLossMeasuredAfterDescent(t *testing.T) {
	g := running(t)
	inv := keepOnly(g, 0)
	g.direction = 1
	// One sweep step reaches the right padding, so this frame also descends.
	inv.X = g.width - g.cfg.Grid.Padding - g.cfg.Grid.Width - g.speed
	// Above the player before the step, on the player's line after the descent.
	inv.Y = g.player.Y - g.cfg.Grid.Height - g.cfg.Sweep.Descent

	res := g.Step(idle(), frame)
	if g.descents != 1 {
		t.Fatalf("descents = %d, expected the bounce on this frame", g.descents)
	}
	if g.Phase() != PhaseEnded || g.Outcome() != OutcomeLose {
		t.Fatalf("descent onto the player's line should lose on the same frame, phase=%v outcome=%v",
			g.Phase(), g.Outcome())
	}
	if countEvents(res, core.EventLose) != 1 {
		t.Errorf("expected one lose event, got %v", res.Events)
	}
}

func TestHitScoresOnce(t *testing.T) {
	g := running(t)
	target := g.grid[10]

	// Placed so that after moving it sits inside the target.
	g.bullets = []Bullet{{X: target.X + 11, Y: target.Y + 12}}
	res := g.Step(idle(), frame)

	if countEvents(res, core.EventHit) != 1 || g.score != 10 {
		t.Fatalf("expected one hit worth 10, events=%v score=%d", res.Events, g.score)
	}
	if g.grid[10].Alive || len(g.bullets) != 0 {
		t.Error("hit should destroy both the bullet and the invader")
	}
	if living(g.grid) != 49 {
		t.Errorf("living = %d, expected 49", living(g.grid))
	}
}

func TestClearingGridWinsOnTriggeringFrame(t *testing.T) {
	g := running(t)
	total := len(g.grid)

	for i := range g.grid {
		inv := g.grid[i]
		g.bullets = append(g.bullets[:0], Bullet{X: inv.X + 11, Y: inv.Y + 12})
		res := g.Step(idle(), frame)

		if g.grid[i].Alive {
			t.Fatalf("invader %d survived its bullet", i)
		}
		if i < total-1 {
			if g.Phase() != PhaseRunning {
				t.Fatalf("game ended early after %d hits", i+1)
			}
			continue
		}
		if g.Phase() != PhaseEnded || g.Outcome() != OutcomeWin || countEvents(res, core.EventWin) != 1 {
			t.Fatalf("last hit should win immediately, phase=%v outcome=%v", g.Phase(), g.Outcome())
		}
	}
	if g.score != total*g.cfg.Gameplay.HitPoints {
		t.Errorf("score = %d, expected %d", g.score, total*g.cfg.Gameplay.HitPoints)
	}
}

func TestWinSkipsRemainingBullets(t *testing.T) {
	g := running(t)
	inv := keepOnly(g, 3)

	g.bullets = []Bullet{
		{X: inv.X + 11, Y: inv.Y + 12},
		{X: inv.X + 11, Y: inv.Y + 12},
	}
	g.Step(idle(), frame)
	if g.Outcome() != OutcomeWin || len(g.bullets) != 1 || g.score != 10 {
		t.Errorf("outcome=%v bullets=%d score=%d", g.Outcome(), len(g.bullets), g.score)
	}
}

func TestEndedWaitsForAcknowledgement(t *testing.T) {
	g := running(t)
	g.score = 120
	g.grid[0].Alive = false
	g.bullets = append(g.bullets, Bullet{X: 1, Y: 300})
	g.end(OutcomeLose)

	g.Step(core.InputOf(core.ActionPause), frame)
	g.Step(core.InputOf(core.ActionJump), frame)
	if g.Phase() != PhaseEnded || g.score != 120 {
		t.Fatalf("ended game should ignore toggles, phase=%v", g.Phase())
	}

	g.Step(core.InputOf(core.ActionConfirm), frame)
	if g.Phase() != PhaseIdle || g.Outcome() != OutcomeNone {
		t.Fatalf("confirm should reset to idle, phase=%v", g.Phase())
	}
	if g.score != 0 || g.lives != 3 || len(g.bullets) != 0 || living(g.grid) != 50 {
		t.Errorf("reset incomplete: score=%d lives=%d bullets=%d living=%d",
			g.score, g.lives, len(g.bullets), living(g.grid))
	}
	if g.speed != g.cfg.Sweep.BaseSpeed || g.direction != 1 {
		t.Errorf("sweep not restored: speed=%v direction=%v", g.speed, g.direction)
	}
}

func TestDeterminism(t *testing.T) {
	g1 := running(t)
	g2 := running(t)

	for i := 0; i < 3000; i++ {
		in := core.NewInputFrame()
		switch i % 40 {
		case 0:
			in.Set(core.ActionLeft)
		case 20:
			in.Set(core.ActionRight)
		}
		if i%7 == 0 {
			in.Set(core.ActionJump)
		}
		g1.Step(in, frame)
		g2.Step(in, frame)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1 != s2 {
		t.Errorf("snapshots diverged:\n%+v\n%+v", s1, s2)
	}
	if s1.Frames == 0 {
		t.Error("game never advanced")
	}
}

func TestResizeKeepsGame(t *testing.T) {
	g := running(t)
	g.Step(idle(), frame)
	before := g.Snapshot()

	g.Resize(100, 30)
	if g.width != 800 || g.height != 480 {
		t.Fatalf("world = %vx%v, expected 800x480", g.width, g.height)
	}
	if g.player.Y != 480-g.player.Height-g.cfg.Player.BottomMargin {
		t.Errorf("player y = %v", g.player.Y)
	}
	after := g.Snapshot()
	if after.Phase != before.Phase || after.Living != before.Living || after.Frames != before.Frames {
		t.Error("resize should not reset the game")
	}

	// Shrinking pulls the player back on screen.
	g.player.X = 790
	g.Resize(40, 12)
	if g.player.X != 320-g.player.Width {
		t.Errorf("player x = %v after shrink", g.player.X)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t)
	s := core.NewScreen(80, 24)
	g.Render(s)

	if !strings.Contains(s.String(), "INVADERS") {
		t.Error("intro should show the title")
	}
	if !strings.Contains(s.Row(0), "Score: 0") || !strings.Contains(s.Row(0), "Lives: 3") {
		t.Errorf("HUD row = %q", s.Row(0))
	}

	g.Toggle()
	s.Clear()
	g.Render(s)
	if c := s.GetCell(39, 22); c.Rune != PlayerChar || c.Color != core.ColorBrightGreen {
		t.Errorf("player cell = %+v", c)
	}
	// Top-left invader covers world (150,30), cell (18,1).
	if c := s.GetCell(18, 1); c.Color != core.ColorGreen {
		t.Errorf("invader cell = %+v", c)
	}

	g.end(OutcomeWin)
	s.Clear()
	g.Render(s)
	if !strings.Contains(s.String(), "VICTORY!") {
		t.Error("win screen missing")
	}
}
