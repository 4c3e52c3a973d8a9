package handler

import (
	"sort"
	"strings"

	tele "gopkg.in/telebot.v3"

	"telegram-ai-bot/internal/game"
)

// InfoHandler handles the /start and /help commands. The game lines of
// both replies are built from the registry so registered games
// self-document.
type InfoHandler struct {
	games *game.Registry
}

// NewInfoHandler creates a new InfoHandler.
func NewInfoHandler(games *game.Registry) *InfoHandler {
	return &InfoHandler{games: games}
}

// HandleStart handles the /start command.
func (h *InfoHandler) HandleStart(c tele.Context) error {
	var b strings.Builder
	b.WriteString("🤖 Hello! I'm an AI-powered bot!\n\n")
	b.WriteString("Commands:\n")
	b.WriteString("/help - Show all commands\n")
	b.WriteString("/ask [question] - Ask me anything\n")
	for _, g := range h.sortedGames() {
		b.WriteString("/" + g.Command() + " - " + g.Description() + "\n")
	}
	b.WriteString("/trivia - Random trivia question\n\n")
	b.WriteString("In groups, mention me or reply to my messages to chat!")

	return c.Reply(b.String())
}

// HandleHelp handles the /help command.
func (h *InfoHandler) HandleHelp(c tele.Context) error {
	var b strings.Builder
	b.WriteString("📚 Available Commands:\n\n")
	b.WriteString("🤖 AI Commands:\n")
	b.WriteString("/ask [question] - Ask me anything\n\n")
	b.WriteString("🎮 Mini-Games:\n")
	for _, g := range h.sortedGames() {
		b.WriteString("/" + g.Command() + " - " + g.Description() + "\n")
	}
	b.WriteString("/trivia - Get a random trivia question\n\n")
	b.WriteString("💬 Group Chat:\n")
	b.WriteString("Mention me or reply to my messages to chat!")

	return c.Reply(b.String())
}

// sortedGames returns the registered games ordered by command.
func (h *InfoHandler) sortedGames() []game.Game {
	games := h.games.List()
	sort.Slice(games, func(i, j int) bool {
		return games[i].Command() < games[j].Command()
	})
	return games
}
