package core

// RuntimeConfig contains configuration passed to the game at
// initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // Reserved for seeded content; 0 means time-based in the platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState communicates the game's status to the platform after each
// transition.
type GameState struct {
	Coins      int  // Coins collected so far
	Steps      int  // Inputs processed, successful or not
	Level      int  // Current level id
	BossHealth int  // Remaining boss health; meaningful on the final level
	Won        bool // Boss defeated
	GameOver   bool // Run finished (currently only by winning)
}

// StepResult is returned after each transition.
type StepResult struct {
	State GameState
}
