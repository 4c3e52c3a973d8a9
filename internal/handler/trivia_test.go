package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telegram-ai-bot/internal/game/trivia"
	"telegram-ai-bot/internal/pkg/lock"
)

func newTriviaHandler(draws ...int) (*TriviaHandler, *trivia.Store) {
	store := trivia.NewStore(&seqRand{vals: draws})
	return NewTriviaHandler(store, lock.NewChatLock()), store
}

func TestTriviaHandler_AsksNewQuestion(t *testing.T) {
	h, store := newTriviaHandler(0)
	c := commandContext(100)

	require.NoError(t, h.HandleTrivia(c))

	require.Len(t, c.replies, 1)
	assert.Equal(t, "❓ Trivia Question:\n\nWhat is the capital of France?\n\nReply with: /trivia [your answer]", c.replies[0])
	assert.True(t, store.HasPending(100))
}

func TestTriviaHandler_CorrectAnswer(t *testing.T) {
	h, store := newTriviaHandler(0)
	require.NoError(t, h.HandleTrivia(commandContext(100)))

	c := commandContext(100, "paris")
	require.NoError(t, h.HandleTrivia(c))

	assert.Equal(t, []string{"✅ Correct! Well done! 🎉", trivia.FollowUp}, c.replies)
	assert.False(t, store.HasPending(100))
}

func TestTriviaHandler_WrongAnswer(t *testing.T) {
	h, store := newTriviaHandler(0)
	require.NoError(t, h.HandleTrivia(commandContext(100)))

	c := commandContext(100, "London")
	require.NoError(t, h.HandleTrivia(c))

	assert.Equal(t, []string{"❌ Wrong! The correct answer was: Paris", trivia.FollowUp}, c.replies)
	assert.False(t, store.HasPending(100), "a wrong answer still clears the question")
}

func TestTriviaHandler_MultiWordAnswer(t *testing.T) {
	// Draw 3 is "Who painted the Mona Lisa?" -> "Leonardo da Vinci".
	h, _ := newTriviaHandler(3)
	require.NoError(t, h.HandleTrivia(commandContext(100)))

	c := commandContext(100, "leonardo", "da", "vinci")
	require.NoError(t, h.HandleTrivia(c))

	require.Len(t, c.replies, 2)
	assert.Equal(t, "✅ Correct! Well done! 🎉", c.replies[0])
}

func TestTriviaHandler_AnswerWithoutPendingAsksInstead(t *testing.T) {
	h, store := newTriviaHandler(1)
	c := commandContext(100, "4")

	require.NoError(t, h.HandleTrivia(c))

	require.Len(t, c.replies, 1)
	assert.Contains(t, c.replies[0], "❓ Trivia Question:")
	assert.True(t, store.HasPending(100), "the guess becomes a request for a fresh question")
}

func TestTriviaHandler_BareCommandReplacesPending(t *testing.T) {
	h, store := newTriviaHandler(0, 2)
	require.NoError(t, h.HandleTrivia(commandContext(100)))

	c := commandContext(100)
	require.NoError(t, h.HandleTrivia(c))

	// Draw 2 is "What is the largest planet in our solar system?".
	require.Len(t, c.replies, 1)
	assert.Contains(t, c.replies[0], "largest planet")
	assert.Equal(t, 1, store.PendingCount())

	// Only the replacement question's answer counts now.
	verdict := commandContext(100, "Jupiter")
	require.NoError(t, h.HandleTrivia(verdict))
	assert.Equal(t, "✅ Correct! Well done! 🎉", verdict.replies[0])
}

func TestTriviaHandler_ChatsDoNotShareQuestions(t *testing.T) {
	h, store := newTriviaHandler(0, 1)
	require.NoError(t, h.HandleTrivia(commandContext(100)))
	require.NoError(t, h.HandleTrivia(commandContext(200)))

	assert.Equal(t, 2, store.PendingCount())

	// Chat 200 answers its own question; chat 100 keeps its question.
	c := commandContext(200, "4")
	require.NoError(t, h.HandleTrivia(c))

	assert.Equal(t, "✅ Correct! Well done! 🎉", c.replies[0])
	assert.True(t, store.HasPending(100))
	assert.False(t, store.HasPending(200))
}

func TestTriviaHandler_NilChatIgnored(t *testing.T) {
	h, _ := newTriviaHandler(0)
	c := &fakeContext{}

	require.NoError(t, h.HandleTrivia(c))

	assert.Empty(t, c.replies)
}
