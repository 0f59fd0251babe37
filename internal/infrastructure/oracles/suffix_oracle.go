package oracles

import (
	"github.com/feadoor/cryptopals/internal/domain/message"
	"github.com/feadoor/cryptopals/internal/infrastructure/cryptography"
)

// SuffixOracle appends a fixed, secret suffix to its input and encrypts
// under ECB with a fixed, unknown key.
//
// The goal is to recover the suffix without reading it directly.
type SuffixOracle struct {
	cipher *cryptography.BlockCipher
	suffix message.Message
}

// NewSuffixOracle creates a SuffixOracle guarding the given suffix under a
// fresh random key.
func NewSuffixOracle(suffix message.Message) (*SuffixOracle, error) {
	cipher, err := cryptography.NewAESECB(message.Random(16))
	if err != nil {
		return nil, err
	}

	return &SuffixOracle{
		cipher: cipher,
		suffix: suffix,
	}, nil
}

// Encrypt appends the secret suffix to the input and encrypts under ECB.
func (o *SuffixOracle) Encrypt(input message.Message) (message.Message, error) {
	return o.cipher.Encrypt(message.Concat(input, o.suffix))
}

// CheckAnswer reports whether the suffix has been correctly determined.
func (o *SuffixOracle) CheckAnswer(guess message.Message) bool {
	return guess.Equal(o.suffix)
}
