package analysis

import (
	"math"
	"testing"

	"github.com/feadoor/cryptopals/internal/domain/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreEnglish(t *testing.T) {
	t.Run("EnglishBeatsGarbage", func(t *testing.T) {
		english := message.FromText("The quick brown fox jumps over the lazy dog")
		garbage := message.FromBytes([]byte{0x01, 0x02, 0x03, 0x9a, 0xff, 0x07, 0x15})

		assert.Greater(t, ScoreEnglish(english), ScoreEnglish(garbage))
	})

	t.Run("EmptyInputScoresZero", func(t *testing.T) {
		assert.Zero(t, ScoreEnglish(message.New()))
	})
}

func TestHammingDistance(t *testing.T) {
	t.Run("KnownVector", func(t *testing.T) {
		a := message.FromText("this is a test")
		b := message.FromText("wokka wokka!!!")

		dist, err := HammingDistance(a, b)
		require.NoError(t, err)
		assert.Equal(t, 37, dist)
	})

	t.Run("IdenticalInputs", func(t *testing.T) {
		a := message.FromText("same")

		dist, err := HammingDistance(a, a)
		require.NoError(t, err)
		assert.Zero(t, dist)
	})

	t.Run("UnequalLengths", func(t *testing.T) {
		_, err := HammingDistance(message.FromText("short"), message.FromText("longer"))
		require.ErrorIs(t, err, ErrUnequalLengths)
	})
}

func TestScoreKeySize(t *testing.T) {
	data := message.FromText("This is a longer piece of text which will be encrypted " +
		"with a repeating XOR key so that the key size can be recovered afterwards")
	key := message.FromText("secret")
	encrypted := message.XOR(data, key)

	// The true key size should score no worse than nearby wrong sizes.
	trueScore := ScoreKeySize(encrypted, 6)
	assert.LessOrEqual(t, trueScore, ScoreKeySize(encrypted, 5))
	assert.LessOrEqual(t, trueScore, ScoreKeySize(encrypted, 7))
}

func TestScoreKeySizeTooLargeRanksWorst(t *testing.T) {
	data := message.FromText("short ciphertext")
	key := message.FromText("ICE")
	encrypted := message.XOR(data, key)

	// A key size without two full blocks cannot be scored; it must never
	// rank better than a scorable one.
	unscorable := ScoreKeySize(encrypted, encrypted.Len())
	assert.True(t, math.IsInf(unscorable, 1))
	assert.Greater(t, unscorable, ScoreKeySize(encrypted, 3))
}

func TestHasRepeatedBlocks(t *testing.T) {
	t.Run("RepeatedBlock", func(t *testing.T) {
		data := message.FromText("0123456789abcdefsomething else..0123456789abcdef")
		assert.True(t, HasRepeatedBlocks(data, 16))
	})

	t.Run("NoRepeatedBlock", func(t *testing.T) {
		data := message.FromText("0123456789abcdeffedcba9876543210")
		assert.False(t, HasRepeatedBlocks(data, 16))
	})
}
