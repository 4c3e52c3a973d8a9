package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"
)

const (
	askUsage    = "Please provide a question! Example: /ask What is Python?"
	thinking    = "🤔 Thinking..."
	emptyPrompt = "Yes? How can I help you?"
)

// ChatHandler relays prompts to the Generator. It serves the /ask command
// and free-text group messages addressed to the bot.
type ChatHandler struct {
	generator Generator
	botName   string // bot username without the @
	botID     int64
	timeout   time.Duration
}

// NewChatHandler creates a new ChatHandler. timeout bounds each Generator
// call; zero means no bound.
func NewChatHandler(generator Generator, botName string, botID int64, timeout time.Duration) *ChatHandler {
	return &ChatHandler{
		generator: generator,
		botName:   botName,
		botID:     botID,
		timeout:   timeout,
	}
}

// HandleAsk handles the /ask command.
func (h *ChatHandler) HandleAsk(c tele.Context) error {
	args := c.Args()
	if len(args) == 0 {
		return c.Reply(askUsage)
	}

	if err := c.Reply(thinking); err != nil {
		return err
	}

	question := strings.Join(args, " ")
	answer, err := h.generate(question)
	if err != nil {
		log.Error().Err(err).Msg("Generation failed for /ask")
		return c.Reply(fmt.Sprintf("❌ Error: %v", err))
	}

	return c.Reply(answer)
}

// HandleText handles free-text messages. Only group messages addressed to
// the bot (mention or reply to one of its messages) trigger a generation;
// everything else is dropped without a reply.
func (h *ChatHandler) HandleText(c tele.Context) error {
	chat := c.Chat()
	msg := c.Message()
	if chat == nil || msg == nil {
		return nil
	}
	if chat.Type != tele.ChatGroup && chat.Type != tele.ChatSuperGroup {
		return nil
	}

	text := c.Text()
	if strings.HasPrefix(text, "/") {
		// Unrecognized commands fall through to the text handler.
		return nil
	}
	if !MentionsBot(text, h.botName) && !IsReplyToBot(replySenderID(msg), h.botID) {
		return nil
	}

	prompt := StripMention(text, h.botName)
	if prompt == "" {
		return c.Reply(emptyPrompt)
	}

	answer, err := h.generate(prompt)
	if err != nil {
		log.Error().Err(err).Int64("chat_id", chat.ID).Msg("Generation failed for group message")
		return c.Reply(fmt.Sprintf("❌ Sorry, I encountered an error: %v", err))
	}

	return c.Reply(answer)
}

// generate calls the Generator under the handler's timeout.
func (h *ChatHandler) generate(prompt string) (string, error) {
	ctx := context.Background()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}
	return h.generator.Generate(ctx, prompt)
}

// MentionsBot reports whether text contains the bot's @handle. The match
// is case-sensitive, as Telegram preserves the handle's casing in
// mentions.
func MentionsBot(text, botName string) bool {
	return botName != "" && strings.Contains(text, "@"+botName)
}

// IsReplyToBot reports whether a message replied to one sent by the bot
// itself, given the replied-to sender's ID.
func IsReplyToBot(replyToSenderID, botID int64) bool {
	return botID != 0 && replyToSenderID == botID
}

// StripMention removes every occurrence of the bot's @handle from text
// and trims surrounding whitespace.
func StripMention(text, botName string) string {
	if botName != "" {
		text = strings.ReplaceAll(text, "@"+botName, "")
	}
	return strings.TrimSpace(text)
}

// replySenderID extracts the sender ID of the message a message replies
// to, or 0 when it is not a reply.
func replySenderID(msg *tele.Message) int64 {
	if msg == nil || msg.ReplyTo == nil || msg.ReplyTo.Sender == nil {
		return 0
	}
	return msg.ReplyTo.Sender.ID
}
