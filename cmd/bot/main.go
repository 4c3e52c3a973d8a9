// Package main is the entry point for the Telegram AI bot.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"telegram-ai-bot/internal/ai"
	"telegram-ai-bot/internal/bot"
	"telegram-ai-bot/internal/config"
	"telegram-ai-bot/internal/game"
	"telegram-ai-bot/internal/game/coin"
	"telegram-ai-bot/internal/game/dice"
	"telegram-ai-bot/internal/game/eightball"
	"telegram-ai-bot/internal/game/rps"
	"telegram-ai-bot/internal/game/trivia"
	"telegram-ai-bot/internal/ops"
	"telegram-ai-bot/internal/pkg/lock"
)

func main() {
	// Configure zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load .env if present; otherwise secrets come from the process environment
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using process environment")
	}

	// Load configuration
	cfg, err := config.Load("config")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().Msg("Configuration loaded successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the AI generation service
	aiService, err := ai.NewService(ctx, cfg.AI)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize AI service")
	}

	// Initialize game registry and register games
	rng := game.SystemRand()
	registry := game.NewRegistry()
	for _, g := range []game.Game{
		dice.New(rng),
		coin.New(rng),
		eightball.New(rng),
		rps.New(rng),
	} {
		if err := registry.Register(g); err != nil {
			log.Fatal().Err(err).Str("game", g.Command()).Msg("Failed to register game")
		}
	}

	log.Info().
		Int("game_count", registry.Count()).
		Strs("games", registry.Commands()).
		Msg("Games registered")

	// Trivia state and per-chat locking
	triviaStore := trivia.NewStore(rng)
	chatLocks := lock.NewChatLock()

	// Create bot dependencies
	deps := &bot.Dependencies{
		Config:    cfg,
		Generator: aiService,
		Games:     registry,
		Trivia:    triviaStore,
		Locks:     chatLocks,
	}

	// Initialize bot
	telegramBot, err := bot.New(deps)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create bot")
	}

	// Optional operational endpoint
	var opsServer *ops.Server
	if cfg.Ops.Enabled() {
		opsServer = ops.NewServer(cfg.Ops.Addr, registry, triviaStore)
		go func() {
			if err := opsServer.Start(); err != nil {
				log.Error().Err(err).Msg("Ops endpoint failed")
			}
		}()
	}

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start bot in a goroutine
	go func() {
		log.Info().Msg("Bot is starting...")
		telegramBot.Start()
	}()

	// Wait for shutdown signal
	sig := <-sigChan
	log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

	// Graceful shutdown
	telegramBot.Stop()
	if opsServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := opsServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Ops endpoint shutdown failed")
		}
	}
	log.Info().Msg("Bot stopped gracefully")
}
