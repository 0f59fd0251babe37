package oracles

import (
	"math/rand"

	"github.com/feadoor/cryptopals/internal/domain/message"
	"github.com/feadoor/cryptopals/internal/infrastructure/cryptography"
)

// AffixOracle surrounds its input with a fixed random prefix and a fixed,
// secret suffix, then encrypts under ECB with a fixed, unknown key.
//
// The goal is to recover the suffix despite the unknown prefix length.
type AffixOracle struct {
	cipher *cryptography.BlockCipher
	prefix message.Message
	suffix message.Message
}

// NewAffixOracle creates an AffixOracle guarding the given suffix, with a
// random prefix of random length between 5 and 24 bytes.
func NewAffixOracle(suffix message.Message) (*AffixOracle, error) {
	cipher, err := cryptography.NewAESECB(message.Random(16))
	if err != nil {
		return nil, err
	}

	return &AffixOracle{
		cipher: cipher,
		prefix: message.Random(5 + rand.Intn(20)),
		suffix: suffix,
	}, nil
}

// Encrypt surrounds the input with the prefix and suffix and encrypts under
// ECB.
func (o *AffixOracle) Encrypt(input message.Message) (message.Message, error) {
	return o.cipher.Encrypt(message.Concat(o.prefix, input, o.suffix))
}

// CheckAnswer reports whether the suffix has been correctly determined.
func (o *AffixOracle) CheckAnswer(guess message.Message) bool {
	return guess.Equal(o.suffix)
}
