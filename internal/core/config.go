package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused or waiting to start
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// EventKind identifies something noteworthy that happened during a tick.
// The platform uses events for side effects such as sound.
type EventKind int

const (
	EventJump EventKind = iota
	EventCollect
	EventReward
	EventCollision
	EventFire
	EventHit
	EventWin
	EventLose
	EventStart
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventCollect:
		return "collect"
	case EventReward:
		return "reward"
	case EventCollision:
		return "collision"
	case EventFire:
		return "fire"
	case EventHit:
		return "hit"
	case EventWin:
		return "win"
	case EventLose:
		return "lose"
	case EventStart:
		return "start"
	default:
		return "unknown"
	}
}

// Event is a single occurrence emitted by a game tick.
type Event struct {
	Kind EventKind
}
