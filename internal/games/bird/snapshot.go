package bird

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Frames          uint64
	Phase           Phase
	Score           int
	Confidence      float64
	ElapsedMS       int
	LastRewardMS    int
	Speed           float64
	ObstacleRate    float64
	CollectibleRate float64
	BirdY           float64
	BirdVelocity    float64
	Obstacles       int
	Collectibles    int
	Particles       int
	Message         string
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Frames:          g.frames,
		Phase:           g.phase,
		Score:           g.score,
		Confidence:      g.confidence,
		ElapsedMS:       g.elapsedMS,
		LastRewardMS:    g.lastRewardMS,
		Speed:           g.speed,
		ObstacleRate:    g.obstacleRate,
		CollectibleRate: g.collectibleRate,
		BirdY:           g.bird.Y,
		BirdVelocity:    g.bird.Velocity,
		Obstacles:       len(g.obstacles),
		Collectibles:    len(g.collectibles),
		Particles:       len(g.particles),
		Message:         g.message.Text(),
	}
}
