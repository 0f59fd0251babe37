package oracles

import (
	"strings"
	"testing"

	"github.com/feadoor/cryptopals/internal/analysis"
	"github.com/feadoor/cryptopals/internal/domain/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeOracle(t *testing.T) {
	oracle := NewModeOracle()
	input := message.FromBytes([]byte(strings.Repeat("a", 256)))

	// With 256 identical input bytes the mode is detectable from repeated
	// ciphertext blocks, so the oracle must agree with that detection.
	for trial := 0; trial < 20; trial++ {
		encrypted, err := oracle.Encrypt(input)
		require.NoError(t, err)

		guess := analysis.HasRepeatedBlocks(encrypted, 16)
		assert.True(t, oracle.CheckAnswer(guess))
	}
}

func TestSuffixOracle(t *testing.T) {
	suffix := message.FromText("the secret suffix")
	oracle, err := NewSuffixOracle(suffix)
	require.NoError(t, err)

	t.Run("AppendsSuffix", func(t *testing.T) {
		encrypted, err := oracle.Encrypt(message.FromText("hello"))
		require.NoError(t, err)

		// len("hello") + len(suffix) = 22, padded to 32.
		assert.Equal(t, 32, encrypted.Len())
	})

	t.Run("IsDeterministic", func(t *testing.T) {
		first, err := oracle.Encrypt(message.FromText("input"))
		require.NoError(t, err)
		second, err := oracle.Encrypt(message.FromText("input"))
		require.NoError(t, err)

		assert.True(t, first.Equal(second))
	})

	t.Run("CheckAnswer", func(t *testing.T) {
		assert.True(t, oracle.CheckAnswer(suffix))
		assert.False(t, oracle.CheckAnswer(message.FromText("wrong guess")))
	})
}

func TestAffixOracle(t *testing.T) {
	suffix := message.FromText("another secret")
	oracle, err := NewAffixOracle(suffix)
	require.NoError(t, err)

	t.Run("IsDeterministic", func(t *testing.T) {
		first, err := oracle.Encrypt(message.FromText("input"))
		require.NoError(t, err)
		second, err := oracle.Encrypt(message.FromText("input"))
		require.NoError(t, err)

		assert.True(t, first.Equal(second))
	})

	t.Run("CheckAnswer", func(t *testing.T) {
		assert.True(t, oracle.CheckAnswer(suffix))
		assert.False(t, oracle.CheckAnswer(message.New()))
	})
}

func TestProfileOracle(t *testing.T) {
	oracle, err := NewProfileOracle()
	require.NoError(t, err)

	t.Run("HonestTokenIsNotAdmin", func(t *testing.T) {
		token, err := oracle.MakeToken("user@example.com")
		require.NoError(t, err)
		assert.False(t, oracle.IsAdmin(token))
	})

	t.Run("MetacharactersAreStripped", func(t *testing.T) {
		token, err := oracle.MakeToken("user@example.com&role=admin")
		require.NoError(t, err)
		assert.False(t, oracle.IsAdmin(token))
	})

	t.Run("GarbageTokenIsNotAdmin", func(t *testing.T) {
		assert.False(t, oracle.IsAdmin(message.Random(32)))
	})
}
