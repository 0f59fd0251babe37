package attacks

import (
	"strings"
	"testing"

	"github.com/feadoor/cryptopals/internal/domain/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestSingleByteKey(t *testing.T) {
	t.Run("RecoversKnownKey", func(t *testing.T) {
		plain := message.FromText("The quick brown fox jumps over the lazy dog")
		key := message.FromByte(0x37)
		encrypted := message.XOR(plain, key)

		found, _ := BestSingleByteKey(encrypted)
		assert.True(t, found.Equal(key))
	})

	t.Run("KnownChallengeVector", func(t *testing.T) {
		// Set 1 Challenge 3.
		data, err := message.FromHex(
			"1b37373331363f78151b7f2b783431333d78397828372d363c78373e783a393b3736")
		require.NoError(t, err)

		key, _ := BestSingleByteKey(data)
		assert.Equal(t, "Cooking MC's like a pound of bacon",
			message.XOR(data, key).Text())
	})
}

func TestBestRepeatingKey(t *testing.T) {
	verse := "Burning 'em, if you ain't quick and nimble\n" +
		"I go crazy when I hear a cymbal\n" +
		"Quick to the point, to the point, no faking\n" +
		"Cooking MC's like a pound of bacon\n"
	plain := message.FromText(strings.Repeat(verse, 4))
	key := message.FromText("ICE")
	encrypted := message.XOR(plain, key)

	found := BestRepeatingKey(encrypted)

	// The attack may settle on a multiple of the true key size; either way
	// the recovered key must be a repetition of the true key and must
	// decrypt the message.
	require.NotZero(t, found.Len())
	require.Zero(t, found.Len()%key.Len())
	for ix := 0; ix < found.Len(); ix += key.Len() {
		assert.True(t, found.Slice(ix, ix+key.Len()).Equal(key))
	}
	assert.True(t, message.XOR(encrypted, found).Equal(plain))
}
