package handler

import (
	tele "gopkg.in/telebot.v3"

	"telegram-ai-bot/internal/game"
)

// GameHandler dispatches game commands to registered games.
type GameHandler struct {
	games *game.Registry
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(games *game.Registry) *GameHandler {
	return &GameHandler{games: games}
}

// Handler returns a telebot handler that plays the named game with the
// command's arguments. A command without a registered game is ignored.
func (h *GameHandler) Handler(command string) tele.HandlerFunc {
	return func(c tele.Context) error {
		g, ok := h.games.Get(command)
		if !ok {
			return nil
		}
		return c.Reply(g.Play(c.Args()))
	}
}
