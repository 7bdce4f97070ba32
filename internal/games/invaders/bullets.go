package invaders

import "github.com/vovakirdan/cozy-arcade/internal/core"

// Bullet is a player shot travelling straight up.
type Bullet struct {
	X, Y float64
}

// Box returns the bullet's bounding box for a bullet of w x h.
func (b Bullet) Box(w, h float64) core.Box {
	return core.NewBox(b.X, b.Y, w, h)
}

// moveBullets advances bullets upward and drops those fully above the top
// edge.
func moveBullets(bullets []Bullet, speed, h float64) []Bullet {
	kept := bullets[:0]
	for _, b := range bullets {
		b.Y -= speed
		if b.Y+h <= 0 {
			continue
		}
		kept = append(kept, b)
	}
	return kept
}
