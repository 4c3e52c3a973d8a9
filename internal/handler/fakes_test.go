package handler

import (
	"context"
	"fmt"

	tele "gopkg.in/telebot.v3"
)

// fakeContext implements the handful of tele.Context methods the handlers
// touch and records outgoing replies. The embedded interface covers the
// rest; an unstubbed call panics, which is the right failure in a test.
type fakeContext struct {
	tele.Context

	chat    *tele.Chat
	sender  *tele.User
	message *tele.Message
	text    string
	args    []string

	replies []string
}

func (f *fakeContext) Chat() *tele.Chat       { return f.chat }
func (f *fakeContext) Sender() *tele.User     { return f.sender }
func (f *fakeContext) Message() *tele.Message { return f.message }
func (f *fakeContext) Text() string           { return f.text }
func (f *fakeContext) Args() []string         { return f.args }

func (f *fakeContext) Reply(what interface{}, opts ...interface{}) error {
	f.replies = append(f.replies, fmt.Sprint(what))
	return nil
}

// commandContext builds a context for a command with arguments.
func commandContext(chatID int64, args ...string) *fakeContext {
	return &fakeContext{
		chat:    &tele.Chat{ID: chatID, Type: tele.ChatPrivate},
		message: &tele.Message{},
		args:    args,
	}
}

// groupTextContext builds a context for a free-text group message.
func groupTextContext(chatID int64, text string) *fakeContext {
	return &fakeContext{
		chat:    &tele.Chat{ID: chatID, Type: tele.ChatGroup},
		message: &tele.Message{Text: text},
		text:    text,
	}
}

// stubGenerator records prompts and returns a fixed reply or error.
type stubGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

// seqRand returns a fixed sequence of draws, wrapping around at the end.
type seqRand struct {
	vals []int
	i    int
}

func (s *seqRand) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}
