package core

// RuntimeConfig contains configuration passed to a session at creation.
// Sessions use this to adapt to screen size and for deterministic piece order.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 120,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}
