package bird

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/cozy-arcade/internal/core"
)

// Visual characters for rendering
const (
	SunChar         = '☀'
	CloudThinChar   = '░'
	CloudThickChar  = '▒'
	ObstacleChar    = '▓'
	BalloonChar     = '█'
	StringChar      = '│'
	HeartChar       = '♥'
	StarChar        = '★'
	StarAltChar     = '✦'
	BirdBodyChar    = '█'
	EyeOpenChar     = '•'
	EyeClosedChar   = '-'
	BeakChar        = '▶'
	WingUpChar      = '▴'
	WingDownChar    = '▾'
	MeterFullChar   = '■'
	MeterEmptyChar  = '□'
	confidenceWidth = 10
)

var rainbowBands = []core.Color{core.ColorRed, core.ColorOrange, core.ColorYellow}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.renderBackground(dst)
	g.renderObstacles(dst)
	g.renderCollectibles(dst)
	g.renderBird(dst)
	g.renderParticles(dst)
	g.renderHUD(dst)

	switch g.phase {
	case PhaseStart:
		dst.DrawMessageBox(
			"HEALING BIRD",
			"",
			"SPACE or ENTER to start",
			"SPACE to flap, P to pause",
		)
	case PhasePaused:
		dst.DrawMessageBox("PAUSED", "", "Press P to continue")
	case PhaseGameOver:
		dst.DrawMessageBox(
			"YOU DID IT!",
			"",
			fmt.Sprintf("Final score: %d", g.score),
			"",
			"ENTER or R to fly again",
		)
	}
}

func (g *Game) renderBackground(dst *core.Screen) {
	sx, sy := g.view.Cell(g.width-100, 100)
	dst.SetColor(sx, sy, SunChar, core.ColorGold)

	for _, rb := range g.background.Rainbows {
		g.renderRainbow(dst, rb)
	}

	for _, c := range g.background.Clouds {
		// Cloud X, Y is the center of its leftmost puff.
		box := core.NewBox(c.X-c.Height/2, c.Y-c.Height/2, c.Width+c.Height/2, c.Height)
		ch, col := CloudThinChar, core.ColorDimGray
		if c.Opacity >= 0.5 {
			ch, col = CloudThickChar, core.ColorWhite
		}
		dst.DrawRectColor(g.view.Rect(box), ch, col)
	}
}

// renderRainbow traces concentric half-ellipses above the rainbow's anchor.
func (g *Game) renderRainbow(dst *core.Screen, rb Rainbow) {
	glyph := '·'
	if rb.Opacity >= 0.3 {
		glyph = '∙'
	}
	for i, col := range rainbowBands {
		rx := rb.Width/2 - float64(i)*g.view.CellW
		ry := rb.Height - float64(i)*g.view.CellH
		if rx <= 0 || ry <= 0 {
			continue
		}
		steps := core.Max(int(rx/g.view.CellW)*4, 1)
		for s := 0; s <= steps; s++ {
			a := math.Pi * float64(s) / float64(steps)
			x, y := g.view.Cell(rb.X+math.Cos(a)*rx, rb.Y+ry-math.Sin(a)*ry)
			dst.SetColor(x, y, glyph, col)
		}
	}
}

func (g *Game) renderObstacles(dst *core.Screen) {
	for _, o := range g.obstacles {
		switch o.Kind {
		case ObstacleCloud:
			dst.DrawRectColor(g.view.Rect(o.Box()), ObstacleChar, o.Color)
			// Sleepy face
			ex1, ey := g.view.Cell(o.X+o.Width*0.35, o.Y+o.Height*0.25)
			ex2, _ := g.view.Cell(o.X+o.Width*0.65, o.Y+o.Height*0.25)
			dst.SetColor(ex1, ey, EyeOpenChar, core.ColorGray)
			dst.SetColor(ex2, ey, EyeOpenChar, core.ColorGray)
			mx, my := g.view.Cell(o.X+o.Width*0.5, o.Y+o.Height*0.45)
			dst.SetColor(mx, my, '‿', core.ColorGray)
		case ObstacleBalloon:
			body := core.NewBox(o.X, o.Y, o.Width, o.Height*0.8)
			dst.DrawRectColor(g.view.Rect(body), BalloonChar, o.Color)
			x, y0 := g.view.Cell(o.X+o.Width/2, o.Y+o.Height*0.8)
			_, y1 := g.view.Cell(o.X+o.Width/2, o.Bottom())
			for y := y0; y <= y1; y++ {
				dst.SetColor(x, y, StringChar, core.ColorGray)
			}
		}
	}
}

func (g *Game) renderCollectibles(dst *core.Screen) {
	for _, c := range g.collectibles {
		x, y := g.view.Cell(c.Center())
		ch := HeartChar
		if c.Kind == CollectibleStar {
			ch = StarChar
			if math.Sin(c.Rotation) < 0 {
				ch = StarAltChar
			}
		}
		dst.SetColor(x, y, ch, c.Color)
	}
}

func (g *Game) renderBird(dst *core.Screen) {
	b := g.bird
	dst.DrawRectColor(g.view.Rect(b.Box()), BirdBodyChar, core.ColorSunflower)

	// Wings flap opposite each other
	offset := math.Sin(b.WingPhase) * 5
	wing := WingDownChar
	if offset < 0 {
		wing = WingUpChar
	}
	lx, ly := g.view.Cell(b.X-5, b.Y+b.Height/2+offset)
	dst.SetColor(lx, ly, wing, core.ColorOrange)

	eye := EyeOpenChar
	if math.Sin(b.BlinkPhase) <= -0.8 {
		eye = EyeClosedChar
	}
	e1x, ey := g.view.Cell(b.X+12, b.Y+8)
	e2x, _ := g.view.Cell(b.X+28, b.Y+8)
	dst.SetColor(e1x, ey, eye, core.ColorGray)
	if e2x != e1x {
		dst.SetColor(e2x, ey, eye, core.ColorGray)
	}

	bx, by := g.view.Cell(b.X+b.Width+2, b.Y+15)
	dst.SetColor(bx, by, BeakChar, core.ColorCoral)
}

func (g *Game) renderParticles(dst *core.Screen) {
	for _, p := range g.particles {
		x, y := g.view.Cell(p.X, p.Y)
		ch := '·'
		switch {
		case p.Life < 0.3:
			ch = '˙'
		case p.Size >= 6:
			ch = '●'
		case p.Size >= 3:
			ch = '•'
		}
		dst.SetColor(x, y, ch, p.Color)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorBrightWhite)

	filled := int(math.Round(g.confidence / g.cfg.Confidence.Max * confidenceWidth))
	meter := strings.Repeat(string(MeterFullChar), filled) +
		strings.Repeat(string(MeterEmptyChar), confidenceWidth-filled)
	label := fmt.Sprintf("Confidence %s %3.0f%%", meter, g.confidence)
	x := dst.Width() - core.TextWidth(label) - 1
	dst.DrawTextColor(x, 0, label, core.ColorRose)

	if g.message.Visible() {
		col := core.ColorGold
		if g.message.Opacity() < 0.4 {
			col = core.ColorDimGray
		}
		dst.DrawTextCenteredColor(2, g.message.Text(), col)
	}
}
