package handler

import (
	"strings"

	tele "gopkg.in/telebot.v3"

	"telegram-ai-bot/internal/game/trivia"
	"telegram-ai-bot/internal/pkg/lock"
)

// TriviaHandler handles the /trivia command. Arguments submit an answer
// to the chat's pending question; without a pending question, or without
// arguments, a new question is asked (replacing any pending one).
type TriviaHandler struct {
	store *trivia.Store
	locks *lock.ChatLock
}

// NewTriviaHandler creates a new TriviaHandler.
func NewTriviaHandler(store *trivia.Store, locks *lock.ChatLock) *TriviaHandler {
	return &TriviaHandler{
		store: store,
		locks: locks,
	}
}

// HandleTrivia handles the /trivia command. The chat lock keeps the
// store update and its replies together when commands from the same chat
// arrive concurrently.
func (h *TriviaHandler) HandleTrivia(c tele.Context) error {
	chat := c.Chat()
	if chat == nil {
		return nil
	}
	args := c.Args()

	return h.locks.WithLock(chat.ID, func() error {
		if len(args) > 0 {
			result, err := h.store.Submit(chat.ID, strings.Join(args, " "))
			if err == nil {
				if err := c.Reply(result.Verdict()); err != nil {
					return err
				}
				return c.Reply(trivia.FollowUp)
			}
			// No question was pending; treat the command as a new request.
		}

		q := h.store.Ask(chat.ID)
		return c.Reply(trivia.RenderQuestion(q))
	})
}
