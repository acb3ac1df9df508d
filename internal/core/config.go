package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 10)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultTickRate is the fixed frame rate of the snake loop.
const DefaultTickRate = 10

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score known to the game, including the current run
	GameOver  bool // Whether the game has ended
	Paused    bool // Whether the game is paused
}

// Event is something that happened during a tick that the platform may react to.
type Event int

const (
	EventAte          Event = iota + 1 // Snake ate an apple
	EventCrashed                       // Run ended in a collision and the game reset
	EventNewHighScore                  // Score passed the stored high score
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventAte:
		return "ate"
	case EventCrashed:
		return "crashed"
	case EventNewHighScore:
		return "new_high_score"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event

	// FinalScore is the score of the run that ended this tick.
	// Only meaningful when Events contains EventCrashed.
	FinalScore int
}

// Has reports whether the given event happened this tick.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
