package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telegram-ai-bot/internal/config"
)

// stubChatModel returns a canned reply or error and records the messages
// the chain invoked it with.
type stubChatModel struct {
	reply *schema.Message
	err   error
	input []*schema.Message
}

func (m *stubChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	m.input = input
	if m.err != nil {
		return nil, m.err
	}
	return m.reply, nil
}

func (m *stubChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("streaming not supported")
}

func (m *stubChatModel) BindTools(tools []*schema.ToolInfo) error {
	return nil
}

func TestNewService_RequiresModel(t *testing.T) {
	_, err := NewService(context.Background(), config.AIConfig{APIKey: "key"})

	assert.ErrorIs(t, err, ErrMissingModel)
}

func TestGenerate(t *testing.T) {
	stub := &stubChatModel{reply: schema.AssistantMessage("Go is a programming language.", nil)}
	svc, err := newService(context.Background(), stub)
	require.NoError(t, err)

	reply, err := svc.Generate(context.Background(), "What is Go?")
	require.NoError(t, err)
	assert.Equal(t, "Go is a programming language.", reply)

	// The chain renders the template into a system message plus the user
	// prompt before reaching the model.
	require.Len(t, stub.input, 2)
	assert.Equal(t, schema.System, stub.input[0].Role)
	assert.Equal(t, systemPrompt, stub.input[0].Content)
	assert.Equal(t, schema.User, stub.input[1].Role)
	assert.Equal(t, "What is Go?", stub.input[1].Content)
}

func TestGenerate_WrapsModelError(t *testing.T) {
	svc, err := newService(context.Background(), &stubChatModel{err: errors.New("quota exceeded")})
	require.NoError(t, err)

	_, err = svc.Generate(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generation failed")
	assert.Contains(t, err.Error(), "quota exceeded")
}
