package oracles

import (
	"math/rand"

	"github.com/feadoor/cryptopals/internal/domain/message"
	"github.com/feadoor/cryptopals/internal/infrastructure/cryptography"
)

// ModeOracle encrypts input under a fresh random key, choosing ECB or CBC at
// random and adding random noise to both ends of the plaintext.
//
// The goal is to determine which mode was used for each encryption.
type ModeOracle struct {
	lastModeECB bool
}

// NewModeOracle creates a new ModeOracle.
func NewModeOracle() *ModeOracle {
	return &ModeOracle{}
}

// Encrypt encrypts the input under a random mode, remembering which mode
// was chosen so the answer can be checked afterwards.
func (o *ModeOracle) Encrypt(input message.Message) (message.Message, error) {
	key := message.Random(16)

	// 5 to 10 random bytes on each end of the plaintext.
	before := message.Random(5 + rand.Intn(6))
	after := message.Random(5 + rand.Intn(6))
	noisy := message.Concat(before, input, after)

	o.lastModeECB = rand.Intn(2) == 0

	var cipher *cryptography.BlockCipher
	var err error
	if o.lastModeECB {
		cipher, err = cryptography.NewAESECB(key)
	} else {
		cipher, err = cryptography.NewAESCBC(key, message.Random(16))
	}
	if err != nil {
		return message.Message{}, err
	}

	return cipher.Encrypt(noisy)
}

// CheckAnswer reports whether the given guess about the previous encryption
// having used ECB mode is correct.
func (o *ModeOracle) CheckAnswer(guessECB bool) bool {
	return guessECB == o.lastModeECB
}
