package invaders

import (
	"fmt"

	"github.com/vovakirdan/cozy-arcade/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar    = '▀'
	CannonChar    = '▲'
	BulletChar    = '│'
	InvaderChar   = '█'
	EyeChar       = ' '
	LegsUpChar    = '▘'
	LegsDownChar  = '▖'
	animateFrames = 20 // Frames per leg pose
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.renderInvaders(dst)
	g.renderPlayer(dst)
	g.renderBullets(dst)
	g.renderHUD(dst)

	switch g.phase {
	case PhaseIdle:
		if !g.started {
			dst.DrawMessageBox(
				"INVADERS",
				"",
				"LEFT/RIGHT or A/D to move, DOWN to stop",
				"SPACE or ENTER to fire, P to pause",
				"P or ENTER to start",
			)
		} else {
			dst.DrawMessageBox("PAUSED", "", "P to resume")
		}
	case PhaseEnded:
		title, line := "GAME OVER", "The invaders reached the ground!"
		if g.outcome == OutcomeWin {
			title, line = "VICTORY!", "You drove off every invader!"
		}
		dst.DrawMessageBox(
			title,
			line,
			fmt.Sprintf("Final score: %d", g.score),
			"",
			"ENTER or R to reset",
		)
	}
}

func (g *Game) renderInvaders(dst *core.Screen) {
	gc := g.cfg.Grid
	legs := LegsUpChar
	if (g.frames/animateFrames)%2 == 1 {
		legs = LegsDownChar
	}

	for _, inv := range g.grid {
		if !inv.Alive {
			continue
		}
		r := g.view.Rect(inv.Box(gc.Width, gc.Height))
		dst.DrawRectColor(r, InvaderChar, inv.Color)
		// Eyes punched out of the top row, legs on the bottom one.
		if r.W >= 3 {
			dst.SetColor(r.X+1, r.Y, EyeChar, inv.Color)
			dst.SetColor(r.Right()-2, r.Y, EyeChar, inv.Color)
		}
		if r.H >= 2 {
			dst.SetColor(r.X, r.Bottom()-1, legs, inv.Color)
			dst.SetColor(r.Right()-1, r.Bottom()-1, legs, inv.Color)
		}
	}
}

func (g *Game) renderPlayer(dst *core.Screen) {
	p := g.player
	dst.DrawRectColor(g.view.Rect(p.Box()), PlayerChar, core.ColorBrightGreen)
	cx, cy := g.view.Cell(p.X+p.Width/2, p.Y-1)
	dst.SetColor(cx, cy, CannonChar, core.ColorBrightGreen)
}

func (g *Game) renderBullets(dst *core.Screen) {
	bc := g.cfg.Bullet
	for _, b := range g.bullets {
		dst.DrawRectColor(g.view.Rect(b.Box(bc.Width, bc.Height)), BulletChar, core.ColorBrightMagenta)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorBrightWhite)
	lives := fmt.Sprintf("Lives: %d", g.lives)
	dst.DrawTextColor(dst.Width()-core.TextWidth(lives)-1, 0, lives, core.ColorBrightGreen)
}
