package cryptography

import (
	"crypto/aes"
	stdcipher "crypto/cipher"
	"fmt"

	"github.com/feadoor/cryptopals/internal/domain/cryptoalg"
	"github.com/feadoor/cryptopals/internal/domain/message"
)

// aesBlock wraps the raw AES primitive. Only single-block operations are
// used; the modes of operation are implemented by BlockCipher.
type aesBlock struct {
	inner stdcipher.Block
}

// NewAESBlock creates a single-block AES primitive from the given key.
// Supported key lengths are 16 (AES-128), 24 (AES-192) and 32 (AES-256)
// bytes.
func NewAESBlock(key message.Message) (cryptoalg.Block, error) {
	switch key.Len() {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d bytes", cryptoalg.ErrInvalidKeySize, key.Len())
	}

	inner, err := aes.NewCipher(key.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize AES: %w", err)
	}

	return &aesBlock{inner: inner}, nil
}

// EncryptBlock encrypts a single 16-byte block.
func (b *aesBlock) EncryptBlock(input []byte) []byte {
	out := make([]byte, len(input))
	b.inner.Encrypt(out, input)
	return out
}

// DecryptBlock decrypts a single 16-byte block.
func (b *aesBlock) DecryptBlock(input []byte) []byte {
	out := make([]byte, len(input))
	b.inner.Decrypt(out, input)
	return out
}

// BlockSize returns the AES block size of 16 bytes.
func (b *aesBlock) BlockSize() int {
	return b.inner.BlockSize()
}
