// Package dice implements the single-die roll game.
package dice

import (
	"fmt"

	"telegram-ai-bot/internal/game"
)

// Sides is the number of faces on the die.
const Sides = 6

// faces maps a roll value (1-6) to its die glyph.
var faces = [Sides]string{"⚀", "⚁", "⚂", "⚃", "⚄", "⚅"}

// DiceGame implements the Game interface for a six-sided die roll.
type DiceGame struct {
	rng game.Rand
}

// New creates a new DiceGame using the given source of randomness.
// A nil rng falls back to the system source.
func New(rng game.Rand) *DiceGame {
	if rng == nil {
		rng = game.SystemRand()
	}
	return &DiceGame{rng: rng}
}

// Name returns the game's display name.
func (d *DiceGame) Name() string {
	return "Dice Roll"
}

// Command returns the command that triggers this game.
func (d *DiceGame) Command() string {
	return "dice"
}

// Description returns a brief description of the game.
func (d *DiceGame) Description() string {
	return "Roll a 6-sided dice"
}

// Play rolls the die once and renders the result. Arguments are ignored.
func (d *DiceGame) Play(args []string) string {
	roll := d.rng.Intn(Sides) + 1
	return Render(roll)
}

// Render formats a roll value as the reply text. It panics if roll is
// outside [1, Sides].
func Render(roll int) string {
	return fmt.Sprintf("🎲 You rolled: %s (%d)", faces[roll-1], roll)
}
