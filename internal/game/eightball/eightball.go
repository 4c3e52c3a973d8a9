// Package eightball implements the magic 8-ball game.
package eightball

import (
	"fmt"

	"telegram-ai-bot/internal/game"
)

// answers holds the classic magic 8-ball responses, from affirmative
// through non-committal to negative.
var answers = []string{
	"Yes, definitely!",
	"It is certain.",
	"Without a doubt.",
	"You may rely on it.",
	"As I see it, yes.",
	"Most likely.",
	"Outlook good.",
	"Signs point to yes.",
	"Reply hazy, try again.",
	"Ask again later.",
	"Better not tell you now.",
	"Cannot predict now.",
	"Concentrate and ask again.",
	"Don't count on it.",
	"My reply is no.",
	"My sources say no.",
	"Outlook not so good.",
	"Very doubtful.",
}

// Usage is the reply sent when the player asks nothing.
const Usage = "🔮 Ask the magic 8-ball a yes/no question!\nExample: /8ball Will I win?"

// EightBallGame implements the Game interface for the magic 8-ball.
type EightBallGame struct {
	rng game.Rand
}

// New creates a new EightBallGame using the given source of randomness.
// A nil rng falls back to the system source.
func New(rng game.Rand) *EightBallGame {
	if rng == nil {
		rng = game.SystemRand()
	}
	return &EightBallGame{rng: rng}
}

// Name returns the game's display name.
func (e *EightBallGame) Name() string {
	return "Magic 8-Ball"
}

// Command returns the command that triggers this game.
func (e *EightBallGame) Command() string {
	return "8ball"
}

// Description returns a brief description of the game.
func (e *EightBallGame) Description() string {
	return "Ask the magic 8-ball"
}

// Play draws one answer. The question itself does not influence the
// outcome, but asking nothing yields the usage hint instead of an answer.
func (e *EightBallGame) Play(args []string) string {
	if len(args) == 0 {
		return Usage
	}
	return Render(e.rng.Intn(len(answers)))
}

// Answers returns the number of possible answers.
func Answers() int {
	return len(answers)
}

// Render formats the answer at index i as the reply text.
func Render(i int) string {
	return fmt.Sprintf("🔮 The magic 8-ball says: **%s**", answers[i])
}
