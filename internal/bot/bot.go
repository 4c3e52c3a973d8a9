// Package bot provides the Telegram bot initialization and handler registration.
package bot

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"

	"telegram-ai-bot/internal/config"
	"telegram-ai-bot/internal/game"
	"telegram-ai-bot/internal/game/trivia"
	"telegram-ai-bot/internal/handler"
	"telegram-ai-bot/internal/pkg/lock"
)

// Bot wraps the telebot instance with application dependencies.
type Bot struct {
	bot   *tele.Bot
	cfg   *config.Config
	games *game.Registry

	// Handlers
	infoHandler   *handler.InfoHandler
	chatHandler   *handler.ChatHandler
	gameHandler   *handler.GameHandler
	triviaHandler *handler.TriviaHandler
}

// Dependencies holds all the dependencies needed by the bot handlers.
type Dependencies struct {
	Config    *config.Config
	Generator handler.Generator
	Games     *game.Registry
	Trivia    *trivia.Store
	Locks     *lock.ChatLock
}

// New creates a new Bot instance with the given dependencies.
func New(deps *Dependencies) (*Bot, error) {
	if deps.Config.Bot.Token == "" {
		return nil, fmt.Errorf("bot token is required")
	}

	pollTimeout := deps.Config.Bot.PollTimeout
	if pollTimeout <= 0 {
		pollTimeout = 10 * time.Second
	}

	pref := tele.Settings{
		Token:   deps.Config.Bot.Token,
		Poller:  &tele.LongPoller{Timeout: pollTimeout},
		OnError: logHandlerError,
	}

	teleBot, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	b := &Bot{
		bot:   teleBot,
		cfg:   deps.Config,
		games: deps.Games,
	}

	// Initialize handlers
	b.infoHandler = handler.NewInfoHandler(deps.Games)
	b.chatHandler = handler.NewChatHandler(deps.Generator, teleBot.Me.Username, teleBot.Me.ID, deps.Config.AI.Timeout)
	b.gameHandler = handler.NewGameHandler(deps.Games)
	b.triviaHandler = handler.NewTriviaHandler(deps.Trivia, deps.Locks)

	// Register middleware
	b.registerMiddleware()

	// Register handlers
	b.registerHandlers()

	return b, nil
}

// registerMiddleware registers all middleware.
func (b *Bot) registerMiddleware() {
	// Logging middleware
	b.bot.Use(LoggingMiddleware())

	// Recovery middleware - a panicking handler must not kill the bot
	b.bot.Use(RecoveryMiddleware())
}

// registerHandlers registers all command and text handlers.
func (b *Bot) registerHandlers() {
	// Info handlers
	b.bot.Handle("/start", b.infoHandler.HandleStart)
	b.bot.Handle("/help", b.infoHandler.HandleHelp)

	// AI chat handler
	b.bot.Handle("/ask", b.chatHandler.HandleAsk)

	// Game handlers, one command per registered game
	for _, cmd := range b.games.Commands() {
		b.bot.Handle("/"+cmd, b.gameHandler.Handler(cmd))
	}

	// Trivia handler
	b.bot.Handle("/trivia", b.triviaHandler.HandleTrivia)

	// Free-text messages: group chat gate for the AI path
	b.bot.Handle(tele.OnText, b.chatHandler.HandleText)
}

// logHandlerError is the telebot OnError hook. Failures are logged with
// their event context; processing of other updates continues unaffected.
func logHandlerError(err error, c tele.Context) {
	logEvent := log.Error().Err(err)
	if c != nil {
		if chat := c.Chat(); chat != nil {
			logEvent = logEvent.Int64("chat_id", chat.ID)
		}
		if sender := c.Sender(); sender != nil {
			logEvent = logEvent.Int64("user_id", sender.ID)
		}
		logEvent = logEvent.Str("text", c.Text())
	}
	logEvent.Msg("Handler failed")
}

// Start starts the bot polling.
func (b *Bot) Start() {
	log.Info().
		Str("username", b.bot.Me.Username).
		Int("games", b.games.Count()).
		Msg("Starting bot...")

	b.bot.Start()
}

// Stop stops the bot gracefully.
func (b *Bot) Stop() {
	log.Info().Msg("Stopping bot...")
	b.bot.Stop()
}
