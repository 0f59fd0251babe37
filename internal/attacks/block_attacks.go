package attacks

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/feadoor/cryptopals/internal/analysis"
	"github.com/feadoor/cryptopals/internal/domain/message"
	"github.com/feadoor/cryptopals/internal/infrastructure/oracles"
)

// EncryptFunc is a chosen-plaintext encryption interface exposed by an
// oracle under attack.
type EncryptFunc func(message.Message) (message.Message, error)

// DetectECB guesses whether the mode oracle encrypted with ECB by feeding
// it a long run of identical bytes and looking for repeated ciphertext
// blocks.
func DetectECB(oracle *oracles.ModeOracle) (bool, error) {
	input := message.FromBytes(bytes.Repeat([]byte{'a'}, 256))

	encrypted, err := oracle.Encrypt(input)
	if err != nil {
		return false, err
	}
	return analysis.HasRepeatedBlocks(encrypted, 16), nil
}

// FindBlockSize determines the block size of an encryption function by
// growing the input until the ciphertext length steps up.
func FindBlockSize(encrypt EncryptFunc) (int, error) {
	base, err := encrypt(message.New())
	if err != nil {
		return 0, err
	}

	for count := 1; count <= 256; count++ {
		output, err := encrypt(message.FromBytes(make([]byte, count)))
		if err != nil {
			return 0, err
		}
		if output.Len() > base.Len() {
			return output.Len() - base.Len(), nil
		}
	}

	return 0, errors.New("attacks: block size not found")
}

// FindSuffix decrypts the secret suffix guarded by a suffix oracle, one
// byte at a time.
func FindSuffix(oracle *oracles.SuffixOracle) (message.Message, error) {
	blockSize, err := FindBlockSize(oracle.Encrypt)
	if err != nil {
		return message.Message{}, err
	}
	return findECBSuffix(oracle.Encrypt, blockSize)
}

// FindSuffixWithPrefix decrypts the secret suffix guarded by an affix
// oracle. The unknown prefix is located first, then neutralized with
// alignment padding so the byte-at-a-time attack applies unchanged.
func FindSuffixWithPrefix(oracle *oracles.AffixOracle) (message.Message, error) {
	blockSize, err := FindBlockSize(oracle.Encrypt)
	if err != nil {
		return message.Message{}, err
	}

	prefixLen, err := findPrefixLength(oracle.Encrypt, blockSize)
	if err != nil {
		return message.Message{}, err
	}

	// Pad the prefix out to a block boundary, then strip those blocks from
	// every ciphertext. What remains behaves exactly like a suffix oracle.
	alignPad := (blockSize - prefixLen%blockSize) % blockSize
	offset := prefixLen + alignPad

	aligned := func(input message.Message) (message.Message, error) {
		padded := message.Concat(message.FromBytes(make([]byte, alignPad)), input)
		output, err := oracle.Encrypt(padded)
		if err != nil {
			return message.Message{}, err
		}
		return output.Slice(offset, output.Len()), nil
	}

	return findECBSuffix(aligned, blockSize)
}

// CraftAdminToken builds an admin token from honest tokens by cutting and
// pasting ECB blocks.
//
// Three tokens are requested whose blocks line up as follows:
//
//	0123456789ABCDEF 0123456789ABCDEF 0123456789ABCDEF
//	email=email@foo. com&uid=10&role= user
//	email=noone@fake admin&uid=10&rol e=user
//	email=useless@ma deup.com&uid=10& role=user
//
// Taking the first two blocks of the first token, the second block of the
// second and the trailing blocks of the third yields a token that decrypts
// to `email=email@foo.com&uid=10&role=admin&uid=10&rol=user`.
func CraftAdminToken(oracle *oracles.ProfileOracle) (message.Message, error) {
	token1, err := oracle.MakeToken("email@foo.com")
	if err != nil {
		return message.Message{}, err
	}
	token2, err := oracle.MakeToken("noone@fakeadmin")
	if err != nil {
		return message.Message{}, err
	}
	token3, err := oracle.MakeToken("useless@madeup")
	if err != nil {
		return message.Message{}, err
	}

	return message.Concat(
		token1.Slice(0, 32),
		token2.Slice(16, 32),
		token3.Slice(32, token3.Len()),
	), nil
}

// findECBSuffix recovers the suffix appended by an ECB encryption function
// one byte at a time: align the next unknown byte at the end of a block,
// then compare the resulting block against all 256 candidates.
func findECBSuffix(encrypt EncryptFunc, blockSize int) (message.Message, error) {
	var suffix []byte

	for {
		numBytes := blockSize - 1 - len(suffix)%blockSize
		padding := make([]byte, numBytes)
		blockPos := numBytes + len(suffix) + 1 - blockSize

		output, err := encrypt(message.FromBytes(padding))
		if err != nil {
			return message.Message{}, err
		}
		if output.Len() <= blockPos+blockSize {
			// The whole suffix has been recovered.
			break
		}
		block := output.Bytes()[blockPos : blockPos+blockSize]

		partial := append(padding, suffix...)
		partial = partial[blockPos:]

		found := false
		for candidate := 0; candidate < 256; candidate++ {
			test := make([]byte, len(partial), len(partial)+1)
			copy(test, partial)
			test = append(test, byte(candidate))

			testOutput, err := encrypt(message.FromBytes(test))
			if err != nil {
				return message.Message{}, err
			}
			if bytes.Equal(testOutput.Bytes()[:blockSize], block) {
				suffix = append(suffix, byte(candidate))
				found = true
				break
			}
		}
		if !found {
			return message.Message{}, errors.New("attacks: no candidate byte matched")
		}
	}

	return message.FromBytes(suffix), nil
}

// findPrefixLength determines the length of the fixed prefix added by an
// ECB encryption function, by sliding two marker blocks until they land on
// a block boundary.
func findPrefixLength(encrypt EncryptFunc, blockSize int) (int, error) {
	for extra := 0; extra < blockSize; extra++ {
		marker := bytes.Repeat([]byte{'A'}, extra+2*blockSize)

		output, err := encrypt(message.FromBytes(marker))
		if err != nil {
			return 0, err
		}

		raw := output.Bytes()
		for ix := 0; ix+2*blockSize <= len(raw); ix += blockSize {
			if bytes.Equal(raw[ix:ix+blockSize], raw[ix+blockSize:ix+2*blockSize]) {
				return ix - extra, nil
			}
		}
	}

	return 0, fmt.Errorf("attacks: prefix length not found")
}
