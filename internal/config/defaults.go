package config

import (
	_ "embed"
)

//go:embed defaults/bird.yaml
var defaultBirdYAML []byte

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// Game IDs with an embedded default config.
const (
	BirdID     = "bird"
	InvadersID = "invaders"
)

var defaultViewport = ViewportConfig{CellWidth: 8, CellHeight: 16}

// DefaultBirdConfig returns the default Healing Bird configuration.
func DefaultBirdConfig() BirdConfig {
	return BirdConfig{
		Bird: BirdPhysics{
			X:             100,
			Width:         40,
			Height:        30,
			Gravity:       0.5,
			JumpImpulse:   -8,
			BounceDamping: 0.5,
		},
		Obstacles: BirdObstacles{
			MinWidth:    50,
			MaxWidth:    80,
			MinHeight:   80,
			MaxHeight:   120,
			BottomSpace: 150,
			CloudChance: 0.5,
		},
		Collectibles: BirdCollectibles{
			MinSize:     20,
			MaxSize:     30,
			Margin:      25,
			HeartChance: 0.7,
			Spin:        0.1,
		},
		Scoring: BirdScoring{
			Avoid:   10,
			Collect: 50,
			Reward:  100,
			Win:     10000,
		},
		Confidence: BirdConfidence{
			Max:          100,
			Trickle:      0.05,
			Penalty:      5,
			CollectBonus: 10,
			RewardBonus:  20,
		},
		Timing: BirdTiming{
			FrameMS:          16,
			RewardIntervalMS: 9000,
			MessageMS:        2000,
		},
		Spawn: BirdSpawn{
			BaseSpeed:          3,
			ObstacleRate:       0.01,
			CollectibleRate:    0.008,
			Increment:          0.0005,
			ObstacleFactor:     0.5,
			CollectibleFactor:  0.3,
			MaxSpeed:           8,
			MaxObstacleRate:    0.03,
			MaxCollectibleRate: 0.02,
		},
		Difficulty: DifficultyConfig{
			Enabled:   true,
			RampScale: 1.0,
		},
		Viewport: defaultViewport,
	}
}

// DefaultInvadersConfig returns the default Invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Player: InvadersPlayer{
			Width:        30,
			Height:       10,
			Speed:        5,
			BottomMargin: 10,
			HoldTicks:    30,
		},
		Bullet: InvadersBullet{
			Width:      3,
			Height:     10,
			Speed:      7,
			CooldownMS: 300,
		},
		Grid: InvadersGrid{
			Rows:      5,
			Cols:      10,
			Width:     25,
			Height:    20,
			Padding:   10,
			OffsetTop: 30,
		},
		Sweep: InvadersSweep{
			BaseSpeed: 0.5,
			Descent:   10,
			Growth:    1.05,
			MaxSpeed:  4,
		},
		Gameplay: InvadersGameplay{
			Lives:     3,
			HitPoints: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:   true,
			RampScale: 1.0,
		},
		Viewport: defaultViewport,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case BirdID:
		return defaultBirdYAML
	case InvadersID:
		return defaultInvadersYAML
	default:
		return nil
	}
}
