package bird

import "github.com/vovakirdan/cozy-arcade/internal/core"

// Particle shrink factor applied every frame.
const particleShrink = 0.98

// Particle is a short-lived decorative dot.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Color  core.Color
	Life   float64 // 1 when spawned, removed at 0
	Decay  float64 // Life lost per frame
}

// Alive reports whether the particle should still be drawn.
func (p Particle) Alive() bool {
	return p.Life > 0 && p.Size >= 0.5
}

// updateParticles advances every particle one frame and prunes dead ones.
func updateParticles(ps []Particle) []Particle {
	kept := ps[:0]
	for _, p := range ps {
		p.X += p.VX
		p.Y += p.VY
		p.Life -= p.Decay
		p.Size *= particleShrink
		if !p.Alive() {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

// burst describes one family of particle emissions.
type burst struct {
	count   int
	spreadX float64 // vx drawn from [-spreadX/2, spreadX/2)
	spreadY float64 // vy drawn from [-spreadY/2, spreadY/2); ignored when fall is set
	fall    bool    // vy drawn from [1, 3) instead, so the puff drifts down
	minSize float64
	sizeVar float64
	decay   float64
	colors  []core.Color
}

var (
	jumpBurst = burst{
		count: 5, spreadX: 4, fall: true,
		minSize: 2, sizeVar: 4, decay: 0.02,
		colors: []core.Color{core.ColorSunflower},
	}
	collisionBurst = burst{
		count: 8, spreadX: 6, spreadY: 6,
		minSize: 3, sizeVar: 6, decay: 0.03,
		colors: []core.Color{core.ColorCoral},
	}
	collectBurst = burst{
		count: 10, spreadX: 8, spreadY: 8,
		minSize: 2, sizeVar: 5, decay: 0.025,
		colors: []core.Color{core.ColorSunflower},
	}
	rewardBurst = burst{
		count: 20, spreadX: 10, spreadY: 10,
		minSize: 4, sizeVar: 8, decay: 0.02,
		colors: brightColors,
	}
)

// emit appends b.count particles at (x, y).
func (b burst) emit(ps []Particle, r core.Rand, x, y float64) []Particle {
	for i := 0; i < b.count; i++ {
		p := Particle{X: x, Y: y, Life: 1, Decay: b.decay}
		p.VX = core.Spread(r, b.spreadX)
		if b.fall {
			p.VY = core.Between(r, 1, 2)
		} else {
			p.VY = core.Spread(r, b.spreadY)
		}
		p.Size = core.Between(r, b.minSize, b.sizeVar)
		if len(b.colors) == 1 {
			p.Color = b.colors[0]
		} else {
			p.Color = core.Pick(r, b.colors)
		}
		ps = append(ps, p)
	}
	return ps
}
