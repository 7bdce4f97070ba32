// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// ViewportConfig maps world units (logical pixels) onto terminal cells.
type ViewportConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// BirdConfig contains all configuration for the Healing Bird game.
type BirdConfig struct {
	Bird         BirdPhysics      `yaml:"bird"`
	Obstacles    BirdObstacles    `yaml:"obstacles"`
	Collectibles BirdCollectibles `yaml:"collectibles"`
	Scoring      BirdScoring      `yaml:"scoring"`
	Confidence   BirdConfidence   `yaml:"confidence"`
	Timing       BirdTiming       `yaml:"timing"`
	Spawn        BirdSpawn        `yaml:"spawn"`
	Difficulty   DifficultyConfig `yaml:"difficulty"`
	Viewport     ViewportConfig   `yaml:"viewport"`
}

// BirdPhysics defines the bird body and its motion.
type BirdPhysics struct {
	X             float64 `yaml:"x"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Gravity       float64 `yaml:"gravity"`
	JumpImpulse   float64 `yaml:"jump_impulse"`
	BounceDamping float64 `yaml:"bounce_damping"` // Fraction of speed kept after bumping an obstacle
}

// BirdObstacles defines obstacle dimensions.
type BirdObstacles struct {
	MinWidth    float64 `yaml:"min_width"`
	MaxWidth    float64 `yaml:"max_width"`
	MinHeight   float64 `yaml:"min_height"`
	MaxHeight   float64 `yaml:"max_height"`
	BottomSpace float64 `yaml:"bottom_space"` // Spawn y is drawn from [0, H - bottom_space)
	CloudChance float64 `yaml:"cloud_chance"`
}

// BirdCollectibles defines collectible dimensions.
type BirdCollectibles struct {
	MinSize     float64 `yaml:"min_size"`
	MaxSize     float64 `yaml:"max_size"`
	Margin      float64 `yaml:"margin"` // Spawn y is drawn from [margin, H - margin)
	HeartChance float64 `yaml:"heart_chance"`
	Spin        float64 `yaml:"spin"` // Rotation added per frame, radians
}

// BirdScoring defines point awards.
type BirdScoring struct {
	Avoid   int `yaml:"avoid"`
	Collect int `yaml:"collect"`
	Reward  int `yaml:"reward"`
	Win     int `yaml:"win"`
}

// BirdConfidence defines how the confidence meter moves.
type BirdConfidence struct {
	Max          float64 `yaml:"max"`
	Trickle      float64 `yaml:"trickle"`
	Penalty      float64 `yaml:"penalty"`
	CollectBonus float64 `yaml:"collect_bonus"`
	RewardBonus  float64 `yaml:"reward_bonus"`
}

// BirdTiming defines simulated durations in milliseconds.
type BirdTiming struct {
	FrameMS          int `yaml:"frame_ms"`
	RewardIntervalMS int `yaml:"reward_interval_ms"`
	MessageMS        int `yaml:"message_ms"`
}

// BirdSpawn defines per-frame spawn probabilities at the start of a run.
type BirdSpawn struct {
	BaseSpeed          float64 `yaml:"base_speed"`
	ObstacleRate       float64 `yaml:"obstacle_rate"`
	CollectibleRate    float64 `yaml:"collectible_rate"`
	Increment          float64 `yaml:"increment"`            // Scroll speed added per frame
	ObstacleFactor     float64 `yaml:"obstacle_factor"`      // Share of increment added to obstacle rate
	CollectibleFactor  float64 `yaml:"collectible_factor"`   // Share of increment added to collectible rate
	MaxSpeed           float64 `yaml:"max_speed"`            // Ceiling for scroll speed
	MaxObstacleRate    float64 `yaml:"max_obstacle_rate"`    // Ceiling for obstacle rate
	MaxCollectibleRate float64 `yaml:"max_collectible_rate"` // Ceiling for collectible rate
}

// InvadersConfig contains all configuration for the Invaders game.
type InvadersConfig struct {
	Player     InvadersPlayer   `yaml:"player"`
	Bullet     InvadersBullet   `yaml:"bullet"`
	Grid       InvadersGrid     `yaml:"grid"`
	Sweep      InvadersSweep    `yaml:"sweep"`
	Gameplay   InvadersGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Viewport   ViewportConfig   `yaml:"viewport"`
}

// InvadersPlayer defines the cannon.
type InvadersPlayer struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomMargin float64 `yaml:"bottom_margin"`
	HoldTicks    int     `yaml:"hold_ticks"` // Frames a move key stays latched without repeat
}

// InvadersBullet defines projectiles.
type InvadersBullet struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"`
	CooldownMS int     `yaml:"cooldown_ms"`
}

// InvadersGrid defines the formation layout.
type InvadersGrid struct {
	Rows      int     `yaml:"rows"`
	Cols      int     `yaml:"cols"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Padding   float64 `yaml:"padding"`
	OffsetTop float64 `yaml:"offset_top"`
}

// InvadersSweep defines the sweep-and-descend motion.
type InvadersSweep struct {
	BaseSpeed float64 `yaml:"base_speed"`
	Descent   float64 `yaml:"descent"`
	Growth    float64 `yaml:"growth"`
	MaxSpeed  float64 `yaml:"max_speed"`
}

// InvadersGameplay defines scoring and lives.
type InvadersGameplay struct {
	Lives     int `yaml:"lives"`
	HitPoints int `yaml:"hit_points"`
}

// DifficultyConfig defines how strongly the per-game ramp applies.
type DifficultyConfig struct {
	Enabled   bool    `yaml:"enabled"`
	RampScale float64 `yaml:"ramp_scale"` // 1.0 applies configured increments as-is
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty input yields an empty
// preset, meaning the loaded file's values are kept.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// RampScaleForPreset returns the ramp multiplier for a difficulty preset.
func RampScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.5
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// applyPreset updates a difficulty block in place. An empty preset is a no-op.
func (d *DifficultyConfig) applyPreset(preset DifficultyPreset) {
	switch {
	case preset == "":
		return
	case IsFixedPreset(preset):
		d.Enabled = false
	default:
		d.Enabled = true
		d.RampScale = RampScaleForPreset(preset)
	}
}

// ApplyBirdPreset modifies the config based on a difficulty preset.
func ApplyBirdPreset(cfg *BirdConfig, preset DifficultyPreset) {
	cfg.Difficulty.applyPreset(preset)
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	cfg.Difficulty.applyPreset(preset)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

func (v ViewportConfig) validate() error {
	if v.CellWidth <= 0 || v.CellHeight <= 0 {
		return invalid("viewport cell size must be positive")
	}
	return nil
}

func (d DifficultyConfig) validate() error {
	if d.RampScale < 0 {
		return invalid("difficulty.ramp_scale must not be negative")
	}
	return nil
}

func rate(name string, v float64) error {
	if v < 0 || v > 1 {
		return invalid("%s must be within [0, 1], got %g", name, v)
	}
	return nil
}

// Validate checks the Healing Bird config for values the game cannot run with.
func (c BirdConfig) Validate() error {
	b := c.Bird
	if b.Width <= 0 || b.Height <= 0 {
		return invalid("bird size must be positive")
	}
	if b.X < 0 {
		return invalid("bird.x must not be negative")
	}
	if b.BounceDamping < 0 || b.BounceDamping > 1 {
		return invalid("bird.bounce_damping must be within [0, 1]")
	}
	o := c.Obstacles
	if o.MinWidth <= 0 || o.MaxWidth < o.MinWidth || o.MinHeight <= 0 || o.MaxHeight < o.MinHeight {
		return invalid("obstacle size range is empty")
	}
	if err := rate("obstacles.cloud_chance", o.CloudChance); err != nil {
		return err
	}
	k := c.Collectibles
	if k.MinSize <= 0 || k.MaxSize < k.MinSize {
		return invalid("collectible size range is empty")
	}
	if err := rate("collectibles.heart_chance", k.HeartChance); err != nil {
		return err
	}
	if c.Scoring.Win <= 0 {
		return invalid("scoring.win must be positive")
	}
	if c.Confidence.Max <= 0 {
		return invalid("confidence.max must be positive")
	}
	t := c.Timing
	if t.FrameMS <= 0 || t.RewardIntervalMS <= 0 || t.MessageMS <= 0 {
		return invalid("timing values must be positive")
	}
	s := c.Spawn
	if s.BaseSpeed <= 0 {
		return invalid("spawn.base_speed must be positive")
	}
	for _, r := range []struct {
		name string
		val  float64
	}{
		{"spawn.obstacle_rate", s.ObstacleRate},
		{"spawn.collectible_rate", s.CollectibleRate},
		{"spawn.max_obstacle_rate", s.MaxObstacleRate},
		{"spawn.max_collectible_rate", s.MaxCollectibleRate},
	} {
		if err := rate(r.name, r.val); err != nil {
			return err
		}
	}
	if s.MaxSpeed < s.BaseSpeed || s.MaxObstacleRate < s.ObstacleRate || s.MaxCollectibleRate < s.CollectibleRate {
		return invalid("spawn ceilings must not be below their base values")
	}
	if s.Increment < 0 || s.ObstacleFactor < 0 || s.CollectibleFactor < 0 {
		return invalid("spawn increments must not be negative")
	}
	if err := c.Difficulty.validate(); err != nil {
		return err
	}
	return c.Viewport.validate()
}

// Validate checks the Invaders config for values the game cannot run with.
func (c InvadersConfig) Validate() error {
	p := c.Player
	if p.Width <= 0 || p.Height <= 0 || p.Speed <= 0 {
		return invalid("player size and speed must be positive")
	}
	if p.HoldTicks < 1 {
		return invalid("player.hold_ticks must be at least 1")
	}
	b := c.Bullet
	if b.Width <= 0 || b.Height <= 0 || b.Speed <= 0 {
		return invalid("bullet size and speed must be positive")
	}
	if b.CooldownMS < 0 {
		return invalid("bullet.cooldown_ms must not be negative")
	}
	g := c.Grid
	if g.Rows < 1 || g.Cols < 1 || g.Width <= 0 || g.Height <= 0 {
		return invalid("grid dimensions must be positive")
	}
	if g.Padding < 0 || g.OffsetTop < 0 {
		return invalid("grid padding and offset must not be negative")
	}
	s := c.Sweep
	if s.BaseSpeed <= 0 || s.Descent < 0 {
		return invalid("sweep speed must be positive")
	}
	if s.Growth < 1 {
		return invalid("sweep.growth must be at least 1, got %g", s.Growth)
	}
	if s.MaxSpeed < s.BaseSpeed {
		return invalid("sweep.max_speed must not be below sweep.base_speed")
	}
	if c.Gameplay.Lives < 1 {
		return invalid("gameplay.lives must be at least 1")
	}
	if err := c.Difficulty.validate(); err != nil {
		return err
	}
	return c.Viewport.validate()
}
