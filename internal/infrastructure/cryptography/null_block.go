package cryptography

import (
	"fmt"

	"github.com/feadoor/cryptopals/internal/domain/cryptoalg"
)

// nullBlock is the identity primitive. It is useful for exercising modes and
// padding in isolation, with any block size.
type nullBlock struct {
	blockSize int
}

// NewNullBlock creates an identity single-block primitive with the given
// block size.
func NewNullBlock(blockSize int) (cryptoalg.Block, error) {
	if blockSize < 1 {
		return nil, fmt.Errorf("%w: %d", cryptoalg.ErrInvalidBlockSize, blockSize)
	}
	return &nullBlock{blockSize: blockSize}, nil
}

// EncryptBlock returns a copy of the input block.
func (b *nullBlock) EncryptBlock(input []byte) []byte {
	out := make([]byte, len(input))
	copy(out, input)
	return out
}

// DecryptBlock returns a copy of the input block.
func (b *nullBlock) DecryptBlock(input []byte) []byte {
	out := make([]byte, len(input))
	copy(out, input)
	return out
}

// BlockSize returns the configured block size.
func (b *nullBlock) BlockSize() int {
	return b.blockSize
}
