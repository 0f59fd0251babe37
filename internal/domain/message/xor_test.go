package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXOR(t *testing.T) {
	t.Run("FixedXOR", func(t *testing.T) {
		// Set 1 Challenge 2 vector.
		data, err := FromHex("1c0111001f010100061a024b53535009181c")
		require.NoError(t, err)
		key, err := FromHex("686974207468652062756c6c277320657965")
		require.NoError(t, err)

		assert.Equal(t, "746865206b696420646f6e277420706c6179", XOR(data, key).Hex())
	})

	t.Run("RepeatingKey", func(t *testing.T) {
		data := FromText("Burning 'em, if you ain't quick and nimble\n" +
			"I go crazy when I hear a cymbal")
		key := FromText("ICE")

		want := "0b3637272a2b2e63622c2e69692a23693a2a3c6324202d623d63343c2a26226324272765272" +
			"a282b2f20430a652e2c652a3124333a653e2b2027630c692b20283165286326302e27282f"
		assert.Equal(t, want, XOR(data, key).Hex())
	})

	t.Run("Involution", func(t *testing.T) {
		data := FromText("a secret message")
		key := FromText("key")

		assert.True(t, XOR(XOR(data, key), key).Equal(data))
	})

	t.Run("EmptyKey", func(t *testing.T) {
		data := FromText("unchanged")
		assert.True(t, XOR(data, New()).Equal(data))
	})
}
