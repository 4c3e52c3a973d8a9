// Package trivia implements the per-chat trivia question flow. Each chat
// holds at most one pending question at a time; asking again replaces it
// and answering always clears it.
package trivia

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"telegram-ai-bot/internal/game"
)

// ErrNoPendingQuestion is returned when an answer arrives for a chat that
// has no question waiting.
var ErrNoPendingQuestion = errors.New("no pending question in this chat")

// Question is one trivia question with its canonical answer.
type Question struct {
	Text   string
	Answer string
}

// Result is the outcome of answering a question.
type Result struct {
	Correct bool
	Answer  string // canonical answer, shown when the guess was wrong
}

// FollowUp is the prompt sent after every verdict.
const FollowUp = "Type /trivia for another question!"

// questions is the fixed catalog a new question is drawn from.
var questions = []Question{
	{"What is the capital of France?", "Paris"},
	{"What is 2 + 2?", "4"},
	{"What is the largest planet in our solar system?", "Jupiter"},
	{"Who painted the Mona Lisa?", "Leonardo da Vinci"},
	{"What is the smallest prime number?", "2"},
	{"In what year did World War II end?", "1945"},
	{"What is the chemical symbol for gold?", "Au"},
	{"How many continents are there?", "7"},
}

// Questions returns a copy of the question catalog.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

// Store tracks the pending question per chat. It is safe for concurrent
// use; the bot handles each incoming update on its own goroutine.
type Store struct {
	rng     game.Rand
	mu      sync.RWMutex
	pending map[int64]string // chatID -> canonical answer
}

// NewStore creates an empty Store drawing questions with the given source
// of randomness. A nil rng falls back to the system source.
func NewStore(rng game.Rand) *Store {
	if rng == nil {
		rng = game.SystemRand()
	}
	return &Store{
		rng:     rng,
		pending: make(map[int64]string),
	}
}

// Ask draws a new question for the chat and records its answer as pending.
// Any previously pending question for the chat is replaced.
func (s *Store) Ask(chatID int64) Question {
	q := questions[s.rng.Intn(len(questions))]

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[chatID] = q.Answer

	return q
}

// Submit checks a guess against the chat's pending question. The pending
// question is cleared whether or not the guess was right. Comparison
// ignores case and surrounding whitespace.
func (s *Store) Submit(chatID int64, guess string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	answer, ok := s.pending[chatID]
	if !ok {
		return Result{}, ErrNoPendingQuestion
	}
	delete(s.pending, chatID)

	return Result{
		Correct: Check(guess, answer),
		Answer:  answer,
	}, nil
}

// HasPending reports whether the chat has a question waiting for an answer.
func (s *Store) HasPending(chatID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.pending[chatID]
	return ok
}

// PendingCount returns the number of chats with a question waiting.
func (s *Store) PendingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pending)
}

// Check reports whether a guess matches the canonical answer, ignoring
// case and surrounding whitespace on the guess.
func Check(guess, answer string) bool {
	return strings.EqualFold(strings.TrimSpace(guess), answer)
}

// RenderQuestion formats a question as the reply text.
func RenderQuestion(q Question) string {
	return fmt.Sprintf("❓ Trivia Question:\n\n%s\n\nReply with: /trivia [your answer]", q.Text)
}

// Verdict returns the reply line announcing the result.
func (r Result) Verdict() string {
	if r.Correct {
		return "✅ Correct! Well done! 🎉"
	}
	return fmt.Sprintf("❌ Wrong! The correct answer was: %s", r.Answer)
}
