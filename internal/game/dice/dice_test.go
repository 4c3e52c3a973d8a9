package dice

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// fixedRand always returns the same value from Intn.
type fixedRand struct {
	v int
}

func (f fixedRand) Intn(n int) int { return f.v }

func TestRender(t *testing.T) {
	tests := []struct {
		roll     int
		expected string
	}{
		{1, "🎲 You rolled: ⚀ (1)"},
		{2, "🎲 You rolled: ⚁ (2)"},
		{3, "🎲 You rolled: ⚂ (3)"},
		{4, "🎲 You rolled: ⚃ (4)"},
		{5, "🎲 You rolled: ⚄ (5)"},
		{6, "🎲 You rolled: ⚅ (6)"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("roll %d", tt.roll), func(t *testing.T) {
			assert.Equal(t, tt.expected, Render(tt.roll))
		})
	}
}

func TestDiceGame_Play(t *testing.T) {
	for v := 0; v < Sides; v++ {
		game := New(fixedRand{v: v})
		assert.Equal(t, Render(v+1), game.Play(nil))
	}
}

func TestDiceGame_PlayIgnoresArgs(t *testing.T) {
	game := New(fixedRand{v: 2})

	assert.Equal(t, game.Play(nil), game.Play([]string{"extra", "args"}))
}

func TestDiceGame_Interface(t *testing.T) {
	game := New(nil)

	assert.Equal(t, "Dice Roll", game.Name())
	assert.Equal(t, "dice", game.Command())
	assert.NotEmpty(t, game.Description())
}

// TestDiceRollRangeProperty checks that every reply corresponds to a roll
// in [1, 6] and pairs the matching glyph with the matching number.
func TestDiceRollRangeProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.IntRange(0, Sides-1).Draw(t, "v")

		game := New(fixedRand{v: v})
		got := game.Play(nil)

		roll := v + 1
		if got != Render(roll) {
			t.Fatalf("Play with draw %d: expected %q, got %q", v, Render(roll), got)
		}
	})
}
