package invaders

import (
	"math"

	"github.com/vovakirdan/cozy-arcade/internal/config"
	"github.com/vovakirdan/cozy-arcade/internal/core"
)

// rowColors cycle by row, top to bottom.
var rowColors = []core.Color{
	core.ColorGreen, core.ColorRed, core.ColorYellow, core.ColorCyan, core.ColorMagenta,
}

// Invader is one member of the formation.
type Invader struct {
	X, Y     float64
	Col, Row int
	Alive    bool
	Color    core.Color
}

// Box returns the invader's bounding box for a grid cell of w x h.
func (inv Invader) Box(w, h float64) core.Box {
	return core.NewBox(inv.X, inv.Y, w, h)
}

// offsetLeft centers the formation horizontally in a world of width w.
func offsetLeft(cfg config.InvadersGrid, w float64) float64 {
	total := float64(cfg.Cols)*cfg.Width + float64(cfg.Cols-1)*cfg.Padding
	return (w - total) / 2
}

// buildGrid lays out a fresh formation column by column.
func buildGrid(cfg config.InvadersGrid, left float64) []Invader {
	grid := make([]Invader, 0, cfg.Rows*cfg.Cols)
	for c := 0; c < cfg.Cols; c++ {
		for r := 0; r < cfg.Rows; r++ {
			grid = append(grid, Invader{
				X:     float64(c)*(cfg.Width+cfg.Padding) + left,
				Y:     float64(r)*(cfg.Height+cfg.Padding) + cfg.OffsetTop,
				Col:   c,
				Row:   r,
				Alive: true,
				Color: rowColors[r%len(rowColors)],
			})
		}
	}
	return grid
}

// extent returns the horizontal span [minX, maxX] covered by living
// invaders of width w. ok is false when none are alive.
func extent(grid []Invader, w float64) (minX, maxX float64, ok bool) {
	minX, maxX = math.Inf(1), math.Inf(-1)
	for _, inv := range grid {
		if !inv.Alive {
			continue
		}
		minX = math.Min(minX, inv.X)
		maxX = math.Max(maxX, inv.X+w)
		ok = true
	}
	return minX, maxX, ok
}

// lowestBottom returns the largest bottom edge among living invaders of
// height h, or 0 when none are alive.
func lowestBottom(grid []Invader, h float64) float64 {
	lowest := 0.0
	for _, inv := range grid {
		if inv.Alive {
			lowest = math.Max(lowest, inv.Y+h)
		}
	}
	return lowest
}

// living counts the invaders still alive.
func living(grid []Invader) int {
	n := 0
	for _, inv := range grid {
		if inv.Alive {
			n++
		}
	}
	return n
}
