package bird

import (
	"github.com/vovakirdan/cozy-arcade/internal/config"
	"github.com/vovakirdan/cozy-arcade/internal/core"
)

// Bird is the player character. X never changes during a run.
type Bird struct {
	X, Y          float64
	Width, Height float64
	Velocity      float64
	WingPhase     float64 // Drives the wing flap offset
	BlinkPhase    float64 // Pupils hide while sin(BlinkPhase) <= -0.8
}

// Box returns the bird's bounding box.
func (b Bird) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.Width, b.Height)
}

// Center returns the center of the bird's bounding box.
func (b Bird) Center() (float64, float64) {
	return b.Box().Center()
}

// ObstacleKind selects how an obstacle is drawn.
type ObstacleKind int

const (
	ObstacleCloud ObstacleKind = iota
	ObstacleBalloon
)

// String returns the obstacle kind name.
func (k ObstacleKind) String() string {
	if k == ObstacleCloud {
		return "cloud"
	}
	return "balloon"
}

// Obstacle is a soft hazard that scrolls toward the bird.
type Obstacle struct {
	X, Y          float64
	Width, Height float64
	Kind          ObstacleKind
	Color         core.Color
}

// Box returns the obstacle's bounding box.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.Width, o.Height)
}

// Bottom returns the y-coordinate of the obstacle's bottom edge.
func (o Obstacle) Bottom() float64 {
	return o.Y + o.Height
}

// CollectibleKind selects how a collectible is drawn.
type CollectibleKind int

const (
	CollectibleHeart CollectibleKind = iota
	CollectibleStar
)

// String returns the collectible kind name.
func (k CollectibleKind) String() string {
	if k == CollectibleHeart {
		return "heart"
	}
	return "star"
}

// Collectible is a pickup worth points and confidence.
// X, Y is the top-left corner of a Size x Size square.
type Collectible struct {
	X, Y     float64
	Size     float64
	Rotation float64
	Kind     CollectibleKind
	Color    core.Color
}

// Center returns the collectible's center.
func (c Collectible) Center() (float64, float64) {
	return c.X + c.Size/2, c.Y + c.Size/2
}

var (
	pastelColors = []core.Color{
		core.ColorPink, core.ColorPeach, core.ColorApricot, core.ColorLavender, core.ColorHoneydew,
	}
	brightColors = []core.Color{
		core.ColorSunflower, core.ColorCoral, core.ColorTeal, core.ColorMint, core.ColorRose,
	}
)

// newObstacle builds an obstacle at the right edge of a world w x h.
func newObstacle(r core.Rand, cfg config.BirdObstacles, w, h float64) Obstacle {
	o := Obstacle{
		X:      w,
		Y:      r.Float64() * (h - cfg.BottomSpace),
		Width:  core.Between(r, cfg.MinWidth, cfg.MaxWidth-cfg.MinWidth),
		Height: core.Between(r, cfg.MinHeight, cfg.MaxHeight-cfg.MinHeight),
		Kind:   ObstacleBalloon,
	}
	if o.Y < 0 {
		o.Y = 0
	}
	if r.Float64() < cfg.CloudChance {
		o.Kind = ObstacleCloud
	}
	o.Color = core.Pick(r, pastelColors)
	return o
}

// newCollectible builds a collectible at the right edge of a world w x h.
func newCollectible(r core.Rand, cfg config.BirdCollectibles, w, h float64) Collectible {
	c := Collectible{
		X:    w,
		Y:    core.Between(r, cfg.Margin, h-2*cfg.Margin),
		Size: core.Between(r, cfg.MinSize, cfg.MaxSize-cfg.MinSize),
		Kind: CollectibleStar,
	}
	if r.Float64() < cfg.HeartChance {
		c.Kind = CollectibleHeart
	}
	c.Color = core.Pick(r, brightColors)
	return c
}

// moveObstacles scrolls obstacles left and drops those fully past the left
// edge. It returns how many were dropped.
func moveObstacles(obstacles []Obstacle, speed float64) ([]Obstacle, int) {
	kept := obstacles[:0]
	avoided := 0
	for _, o := range obstacles {
		o.X -= speed
		if o.X+o.Width < 0 {
			avoided++
			continue
		}
		kept = append(kept, o)
	}
	return kept, avoided
}

// moveCollectibles scrolls and spins collectibles, dropping those that left the screen.
func moveCollectibles(items []Collectible, speed, spin float64) []Collectible {
	kept := items[:0]
	for _, c := range items {
		c.X -= speed
		c.Rotation += spin
		if c.X+c.Size < 0 {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}
