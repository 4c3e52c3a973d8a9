// Package ai wraps the hosted chat model behind a simple prompt-in,
// text-out generator.
package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"

	"telegram-ai-bot/internal/config"
)

// ErrMissingModel is returned when no model identifier is configured.
var ErrMissingModel = errors.New("ai model is required (set AI_MODEL)")

// systemPrompt frames every generation. Replies go straight to Telegram,
// so the model is asked for short plain text.
const systemPrompt = "You are a helpful assistant chatting with users on Telegram. " +
	"Answer in plain text without markup and keep replies short enough for a chat message."

// Service generates text replies via a compiled prompt-plus-model chain.
// Each call is single turn; no conversation history is kept.
type Service struct {
	chatModel model.ChatModel
	chain     compose.Runnable[map[string]any, *schema.Message]
}

// NewService builds the chat model from the configuration and compiles
// the generation chain.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	if cfg.Model == "" {
		return nil, ErrMissingModel
	}

	chatModel, err := newChatModel(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	return newService(ctx, chatModel)
}

// newService compiles the generation chain around the given chat model.
func newService(ctx context.Context, chatModel model.ChatModel) (*Service, error) {
	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage(systemPrompt),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{
		chatModel: chatModel,
		chain:     runnable,
	}, nil
}

// newChatModel creates the Ark-backed chat model.
func newChatModel(ctx context.Context, cfg config.AIConfig) (model.ChatModel, error) {
	mc := &ark.ChatModelConfig{
		BaseURL: cfg.BaseURL,
		Region:  cfg.Region,
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
	}

	if cfg.MaxTokens > 0 {
		maxTokens := cfg.MaxTokens
		mc.MaxTokens = &maxTokens
	}
	if cfg.Temperature > 0 {
		temperature := float32(cfg.Temperature)
		mc.Temperature = &temperature
	}

	return ark.NewChatModel(ctx, mc)
}

// Generate produces a reply for a single prompt. The returned error
// carries the backend's description and is safe to show to the user.
func (s *Service) Generate(ctx context.Context, prompt string) (string, error) {
	response, err := s.chain.Invoke(ctx, map[string]any{
		"query": prompt,
	})
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}

	log.Debug().
		Int("prompt_len", len(prompt)).
		Int("reply_len", len(response.Content)).
		Msg("Generated reply")

	return response.Content, nil
}
