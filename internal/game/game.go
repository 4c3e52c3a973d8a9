// Package game defines the mini-game interface, the shared source of
// randomness, and the registry that maps commands to games. Adding a new
// mini-game only requires implementing the Game interface and registering it.
package game

import "math/rand"

// Game is the interface every mini-game implements. Games are stateless:
// they turn command arguments into a reply string and never perform I/O.
type Game interface {
	// Name returns the game's display name (e.g., "Dice Roll").
	Name() string

	// Command returns the command that triggers this game, without the
	// leading slash (e.g., "dice").
	Command() string

	// Description returns a one-line description used by /help.
	Description() string

	// Play produces the reply text for one round. args carries the
	// command's argument tokens; a missing or malformed argument yields a
	// usage hint, never an error.
	Play(args []string) string
}

// Rand supplies the uniform draws behind every game outcome. *rand.Rand
// satisfies it; tests substitute deterministic implementations.
// Implementations must be safe for concurrent use, as the bot handles each
// incoming update on its own goroutine.
type Rand interface {
	// Intn returns a uniform value in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// SystemRand returns a Rand backed by math/rand's shared, locked source.
func SystemRand() Rand {
	return systemRand{}
}

type systemRand struct{}

func (systemRand) Intn(n int) int { return rand.Intn(n) }
