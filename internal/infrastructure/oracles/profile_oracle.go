package oracles

import (
	"fmt"
	"strings"

	"github.com/feadoor/cryptopals/internal/domain/message"
	"github.com/feadoor/cryptopals/internal/infrastructure/cryptography"
)

// ProfileOracle issues encrypted user-profile tokens of the form
// `email=<email>&uid=10&role=user`, encrypted under ECB with a fixed,
// unknown key.
//
// The goal is to obtain, by any means, a token that decrypts to a profile
// containing role=admin.
type ProfileOracle struct {
	cipher *cryptography.BlockCipher
}

// NewProfileOracle creates a ProfileOracle with a fresh random key.
func NewProfileOracle() (*ProfileOracle, error) {
	cipher, err := cryptography.NewAESECB(message.Random(16))
	if err != nil {
		return nil, err
	}

	return &ProfileOracle{cipher: cipher}, nil
}

// MakeToken creates an encrypted token for the given email address. The
// metacharacters '&' and '=' are stripped from the address first.
func (o *ProfileOracle) MakeToken(email string) (message.Message, error) {
	sanitized := strings.NewReplacer("&", "", "=", "").Replace(email)
	token := "email=" + sanitized + "&uid=10&role=user"
	return o.cipher.Encrypt(message.FromText(token))
}

// IsAdmin decrypts and parses a token, reporting whether it represents a
// profile with role=admin. Tokens that fail to decrypt or parse are not
// admin.
func (o *ProfileOracle) IsAdmin(token message.Message) bool {
	plain, err := o.cipher.Decrypt(token)
	if err != nil {
		return false
	}

	pairs, err := parseToken(plain.Text())
	if err != nil {
		return false
	}

	return pairs["role"] == "admin"
}

func parseToken(token string) (map[string]string, error) {
	pairs := make(map[string]string)
	for _, pair := range strings.Split(token, "&") {
		keyVal := strings.Split(pair, "=")
		if len(keyVal) != 2 {
			return nil, fmt.Errorf("malformed key-value pair %q", pair)
		}
		pairs[keyVal[0]] = keyVal[1]
	}
	return pairs, nil
}
