package cryptography

import (
	"testing"

	"github.com/feadoor/cryptopals/internal/domain/cryptoalg"
	"github.com/feadoor/cryptopals/internal/domain/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPKCS7Pad(t *testing.T) {
	t.Run("PartialBlock", func(t *testing.T) {
		padded := PKCS7Pad(message.FromText("YELLOW SUBMARINE"), 20)
		assert.Equal(t, "59454c4c4f57205355424d4152494e4504040404", padded.Hex())
	})

	t.Run("AlignedInputGainsFullBlock", func(t *testing.T) {
		padded := PKCS7Pad(message.FromText("exactly 16 bytes"), 16)
		assert.Equal(t, 32, padded.Len())
		assert.Equal(t, byte(16), padded.Bytes()[31])
	})

	t.Run("EmptyInput", func(t *testing.T) {
		padded := PKCS7Pad(message.New(), 4)
		assert.Equal(t, "04040404", padded.Hex())
	})
}

func TestPKCS7Unpad(t *testing.T) {
	withPadding := func(text string, padding ...byte) message.Message {
		return message.FromBytes(append([]byte(text), padding...))
	}

	t.Run("ValidPadding", func(t *testing.T) {
		data := withPadding("ICE ICE BABY", 4, 4, 4, 4)

		out, err := PKCS7Unpad(data, 16)
		require.NoError(t, err)
		assert.Equal(t, "ICE ICE BABY", out.Text())
	})

	t.Run("SingleBytePadding", func(t *testing.T) {
		data := withPadding("ICE ICE BABY!!!", 1)

		out, err := PKCS7Unpad(data, 16)
		require.NoError(t, err)
		assert.Equal(t, "ICE ICE BABY!!!", out.Text())
	})

	t.Run("ValueLargerThanRun", func(t *testing.T) {
		data := withPadding("ICE ICE BABY", 5, 5, 5, 5)
		_, err := PKCS7Unpad(data, 16)
		require.ErrorIs(t, err, cryptoalg.ErrInvalidPadding)
	})

	t.Run("InconsistentRun", func(t *testing.T) {
		data := withPadding("ICE ICE BABY", 1, 2, 3, 4)
		_, err := PKCS7Unpad(data, 16)
		require.ErrorIs(t, err, cryptoalg.ErrInvalidPadding)
	})

	t.Run("ZeroValue", func(t *testing.T) {
		data := withPadding("AAAAAAAAAAAAAAA", 0)
		_, err := PKCS7Unpad(data, 16)
		require.ErrorIs(t, err, cryptoalg.ErrInvalidPadding)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		_, err := PKCS7Unpad(message.New(), 16)
		require.ErrorIs(t, err, cryptoalg.ErrInvalidPadding)
	})
}

func TestValidPKCS7(t *testing.T) {
	valid := message.FromBytes(append([]byte("ICE ICE BABY"), 4, 4, 4, 4))
	invalid := message.FromBytes(append([]byte("ICE ICE BABY"), 1, 2, 3, 4))

	assert.True(t, ValidPKCS7(valid, 16))
	assert.False(t, ValidPKCS7(invalid, 16))
}
