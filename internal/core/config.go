package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The presentation layer fills in the terminal dimensions; the simulation
// itself runs in a fixed 1200x800 world and only consumes the seed.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic layouts (0 = derive from clock)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// AppState identifies which top-level screen the game is on.
// Transitions are edge-triggered: systems act only when the value changes.
type AppState int

const (
	StateMainMenu AppState = iota
	StateInGame
	StateGameOver
)

// String returns a human-readable name for the state.
func (s AppState) String() string {
	switch s {
	case StateMainMenu:
		return "MainMenu"
	case StateInGame:
		return "InGame"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Status is the externally visible game state, returned by Game.State()
// to drive the HUD and score persistence.
type Status struct {
	State AppState
	Lives int
	Level int
}
