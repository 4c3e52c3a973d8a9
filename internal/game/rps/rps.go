// Package rps implements the rock-paper-scissors game.
package rps

import (
	"fmt"
	"strings"

	"telegram-ai-bot/internal/game"
)

// Choice is one of the three throwable hands.
type Choice int

// The three choices, in the order the bot draws them.
const (
	Rock Choice = iota
	Paper
	Scissors

	// NumChoices is the number of valid choices.
	NumChoices = 3
)

// Outcome is the result of one round from the player's point of view.
type Outcome int

const (
	Tie Outcome = iota
	PlayerWins
	BotWins
)

// Usage is the reply sent when the player's choice is missing or invalid.
const Usage = "✊✋✌️ Choose rock, paper, or scissors!\nExample: /rps rock"

// String returns the lowercase name of the choice.
func (c Choice) String() string {
	switch c {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	default:
		return "scissors"
	}
}

// Emoji returns the hand glyph for the choice.
func (c Choice) Emoji() string {
	switch c {
	case Rock:
		return "✊"
	case Paper:
		return "✋"
	default:
		return "✌️"
	}
}

// Verdict returns the reply line announcing the outcome.
func (o Outcome) Verdict() string {
	switch o {
	case Tie:
		return "It's a tie! 🤝"
	case PlayerWins:
		return "You win! 🎉"
	default:
		return "I win! 🤖"
	}
}

// ParseChoice maps a player's argument to a Choice, ignoring case.
// It reports false for anything that is not rock, paper or scissors.
func ParseChoice(s string) (Choice, bool) {
	switch strings.ToLower(s) {
	case "rock":
		return Rock, true
	case "paper":
		return Paper, true
	case "scissors":
		return Scissors, true
	default:
		return 0, false
	}
}

// Beats reports whether choice a defeats choice b.
func Beats(a, b Choice) bool {
	return (a == Rock && b == Scissors) ||
		(a == Paper && b == Rock) ||
		(a == Scissors && b == Paper)
}

// Judge determines the outcome of a round from the player's point of view.
func Judge(player, bot Choice) Outcome {
	switch {
	case player == bot:
		return Tie
	case Beats(player, bot):
		return PlayerWins
	default:
		return BotWins
	}
}

// Render formats a full round as the reply text.
func Render(player, bot Choice) string {
	return fmt.Sprintf("You chose: %s %s\nI chose: %s %s\n\n%s",
		player.Emoji(), player, bot.Emoji(), bot, Judge(player, bot).Verdict())
}

// RPSGame implements the Game interface for rock-paper-scissors.
type RPSGame struct {
	rng game.Rand
}

// New creates a new RPSGame using the given source of randomness.
// A nil rng falls back to the system source.
func New(rng game.Rand) *RPSGame {
	if rng == nil {
		rng = game.SystemRand()
	}
	return &RPSGame{rng: rng}
}

// Name returns the game's display name.
func (r *RPSGame) Name() string {
	return "Rock Paper Scissors"
}

// Command returns the command that triggers this game.
func (r *RPSGame) Command() string {
	return "rps"
}

// Description returns a brief description of the game.
func (r *RPSGame) Description() string {
	return "Rock, Paper, Scissors"
}

// Play judges the player's first argument against a uniformly drawn bot
// choice. A missing or invalid choice yields the usage hint.
func (r *RPSGame) Play(args []string) string {
	if len(args) == 0 {
		return Usage
	}

	player, ok := ParseChoice(args[0])
	if !ok {
		return Usage
	}

	bot := Choice(r.rng.Intn(NumChoices))
	return Render(player, bot)
}
