package config

import "math"

// DifficultyManager applies the per-frame and per-event difficulty ramps.
// Every change is clamped to an explicit ceiling so that long sessions
// converge instead of growing without bound.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.RampScale > 0
}

// Increase returns current advanced by step (scaled by the preset),
// never exceeding ceiling. A value already above the ceiling is pulled down.
func (d *DifficultyManager) Increase(current, step, ceiling float64) float64 {
	if !d.IsEnabled() {
		return math.Min(current, ceiling)
	}
	return math.Min(current+step*d.cfg.RampScale, ceiling)
}

// Grow returns current multiplied by factor, where the part of factor
// above 1 is scaled by the preset, never exceeding ceiling.
func (d *DifficultyManager) Grow(current, factor, ceiling float64) float64 {
	if !d.IsEnabled() {
		return math.Min(current, ceiling)
	}
	return math.Min(current*(1+(factor-1)*d.cfg.RampScale), ceiling)
}
