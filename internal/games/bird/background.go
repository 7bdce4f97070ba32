package bird

import "github.com/vovakirdan/cozy-arcade/internal/core"

const (
	cloudCount   = 8
	rainbowCount = 3
)

// Cloud is a decorative background cloud that drifts and wraps.
type Cloud struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	Opacity       float64
}

// Rainbow is a static decorative arc.
type Rainbow struct {
	X, Y          float64
	Width, Height float64
	Opacity       float64
}

// Background holds scenery generated once per world size.
type Background struct {
	Clouds   []Cloud
	Rainbows []Rainbow
	w, h     float64
}

// generate fills the scenery for a world of w x h. It is a no-op when the
// scenery already matches that size.
func (bg *Background) generate(r core.Rand, w, h float64) {
	if bg.w == w && bg.h == h && len(bg.Clouds) > 0 {
		return
	}
	bg.w, bg.h = w, h
	bg.Clouds = bg.Clouds[:0]
	for i := 0; i < cloudCount; i++ {
		bg.Clouds = append(bg.Clouds, Cloud{
			X:       r.Float64() * w * 2,
			Y:       r.Float64() * h * 0.7,
			Width:   core.Between(r, 60, 40),
			Height:  core.Between(r, 30, 20),
			Speed:   core.Between(r, 0.5, 0.5),
			Opacity: core.Between(r, 0.3, 0.4),
		})
	}
	bg.Rainbows = bg.Rainbows[:0]
	for i := 0; i < rainbowCount; i++ {
		bg.Rainbows = append(bg.Rainbows, Rainbow{
			X:       r.Float64() * w,
			Y:       r.Float64() * h * 0.5,
			Width:   150,
			Height:  80,
			Opacity: core.Between(r, 0.2, 0.2),
		})
	}
}

// drift moves clouds left, wrapping those that left the screen back past the
// right edge at a new height.
func (bg *Background) drift(r core.Rand) {
	for i := range bg.Clouds {
		c := &bg.Clouds[i]
		c.X -= c.Speed
		if c.X+c.Width < 0 {
			c.X = bg.w + c.Width
			c.Y = r.Float64() * bg.h * 0.7
		}
	}
}
