// Package coin implements the coin flip game.
package coin

import (
	"fmt"

	"telegram-ai-bot/internal/game"
)

// sides lists the two coin outcomes paired with their glyphs.
var sides = [2]struct {
	name  string
	emoji string
}{
	{"Heads", "🪙"},
	{"Tails", "🔘"},
}

// CoinGame implements the Game interface for a coin flip.
type CoinGame struct {
	rng game.Rand
}

// New creates a new CoinGame using the given source of randomness.
// A nil rng falls back to the system source.
func New(rng game.Rand) *CoinGame {
	if rng == nil {
		rng = game.SystemRand()
	}
	return &CoinGame{rng: rng}
}

// Name returns the game's display name.
func (c *CoinGame) Name() string {
	return "Coin Flip"
}

// Command returns the command that triggers this game.
func (c *CoinGame) Command() string {
	return "flip"
}

// Description returns a brief description of the game.
func (c *CoinGame) Description() string {
	return "Flip a coin"
}

// Play flips the coin once and renders the result. Arguments are ignored.
func (c *CoinGame) Play(args []string) string {
	return Render(c.rng.Intn(len(sides)))
}

// Render formats a flip outcome as the reply text. side is 0 for heads and
// 1 for tails.
func Render(side int) string {
	s := sides[side]
	return fmt.Sprintf("%s The coin landed on: **%s**!", s.emoji, s.name)
}
