package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChallenge(t *testing.T) {
	t.Run("produces single uppercase letters", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			c := NewChallenge()
			require.Len(t, c.FirstLetter, 1)
			require.Len(t, c.LastLetter, 1)
			assert.GreaterOrEqual(t, c.FirstLetter[0], byte('A'))
			assert.LessOrEqual(t, c.FirstLetter[0], byte('Z'))
			assert.GreaterOrEqual(t, c.LastLetter[0], byte('A'))
			assert.LessOrEqual(t, c.LastLetter[0], byte('Z'))
		}
	})

	t.Run("never ends a challenge with Q", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			c := NewChallenge()
			assert.NotEqual(t, "Q", c.LastLetter)
		}
	})

	t.Run("difficulty bonus stays in range", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			c := NewChallenge()
			assert.GreaterOrEqual(t, c.DifficultyBonus, 0)
			assert.LessOrEqual(t, c.DifficultyBonus, 6)
		}
	})
}

func TestDifficultyLevel(t *testing.T) {
	assert.Equal(t, 0, difficultyLevel("A"))
	assert.Equal(t, 0, difficultyLevel("S"))
	assert.Equal(t, 1, difficultyLevel("C"))
	assert.Equal(t, 2, difficultyLevel("V"))
	assert.Equal(t, 3, difficultyLevel("Q"))
	assert.Equal(t, 3, difficultyLevel("Z"))
}

func TestWeightedLetter(t *testing.T) {
	t.Run("only draws letters from the table", func(t *testing.T) {
		for i := 0; i < 500; i++ {
			letter := weightedLetter(nil, goodStartLetters)
			_, ok := letterWeights[letter]
			assert.True(t, ok, "drew unknown letter %q", letter)
		}
	})

	t.Run("respects a restricted table", func(t *testing.T) {
		weights := map[string]int{"X": 1}
		for i := 0; i < 50; i++ {
			assert.Equal(t, "X", weightedLetter(weights, nil))
		}
	})
}

func TestCorpus(t *testing.T) {
	t.Run("contains is case and whitespace insensitive", func(t *testing.T) {
		assert.True(t, Contains("smile"))
		assert.True(t, Contains(" SMILE "))
		assert.False(t, Contains("xzqjv"))
	})

	t.Run("example matches the requested letters", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			word := Example("S", "E")
			require.NotEmpty(t, word)
			assert.Equal(t, byte('s'), word[0])
			assert.Equal(t, byte('e'), word[len(word)-1])
		}
	})

	t.Run("example is empty when nothing fits", func(t *testing.T) {
		assert.Empty(t, Example("Q", "Q"))
	})

	t.Run("corpus words are all long enough to play", func(t *testing.T) {
		for _, w := range Corpus {
			assert.GreaterOrEqual(t, len(w), 3, "word %q too short", w)
		}
	})
}
