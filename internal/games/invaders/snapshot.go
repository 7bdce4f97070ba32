package invaders

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Frames    uint64
	Phase     Phase
	Outcome   Outcome
	Score     int
	Lives     int
	PlayerX   float64
	Intent    int
	Direction float64
	Speed     float64
	Descents  int
	Bullets   int
	Living    int
	Lowest    float64
	ClockMS   int64
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Frames:    g.frames,
		Phase:     g.phase,
		Outcome:   g.outcome,
		Score:     g.score,
		Lives:     g.lives,
		PlayerX:   g.player.X,
		Intent:    g.intent,
		Direction: g.direction,
		Speed:     g.speed,
		Descents:  g.descents,
		Bullets:   len(g.bullets),
		Living:    living(g.grid),
		Lowest:    lowestBottom(g.grid, g.cfg.Grid.Height),
		ClockMS:   g.clock.Milliseconds(),
	}
}
