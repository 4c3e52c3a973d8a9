// Package handler provides Telegram bot command handlers.
package handler

import "context"

// Generator produces a text reply for a prompt. It is the only
// collaborator with externally visible latency; callers bound it with the
// context and surface its error description to the user.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
