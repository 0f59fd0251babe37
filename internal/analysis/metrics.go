package analysis

import (
	"errors"
	"math"
	"math/bits"

	"github.com/feadoor/cryptopals/internal/domain/message"
)

// ErrUnequalLengths indicates that the Hamming distance was requested for
// two messages of different lengths.
var ErrUnequalLengths = errors.New("analysis: inputs have unequal lengths")

// ScoreEnglish returns a numeric score representing how likely it is that
// the given message is English text. A higher score is better.
func ScoreEnglish(data message.Message) float64 {
	raw := data.Bytes()
	if len(raw) == 0 {
		return 0
	}

	score := 0.0
	for _, b := range raw {
		score += byteScore(b)
	}
	return score / float64(len(raw))
}

// HammingDistance calculates the number of differing bits between two
// messages of equal length.
func HammingDistance(a, b message.Message) (int, error) {
	if a.Len() != b.Len() {
		return 0, ErrUnequalLengths
	}

	aBytes, bBytes := a.Bytes(), b.Bytes()
	dist := 0
	for ix := range aBytes {
		dist += bits.OnesCount8(aBytes[ix] ^ bBytes[ix])
	}
	return dist, nil
}

// ScoreKeySize returns a numeric score representing how likely it is that
// the given data was encrypted with a repeating XOR key of the given size.
// A lower score is better.
//
// The score is the average Hamming distance between adjacent blocks of
// keySize bytes, normalized by the key size. A key size too large to give
// two full blocks cannot be scored and is ranked worst.
func ScoreKeySize(data message.Message, keySize int) float64 {
	numPairs := data.Len()/keySize - 1
	if numPairs < 1 {
		return math.Inf(1)
	}

	total := 0
	for ix := 0; ix < numPairs; ix++ {
		block1 := data.Slice(ix*keySize, (ix+1)*keySize)
		block2 := data.Slice((ix+1)*keySize, (ix+2)*keySize)
		dist, _ := HammingDistance(block1, block2)
		total += dist
	}

	return float64(total) / float64(numPairs) / float64(keySize)
}

// HasRepeatedBlocks reports whether the given data contains two identical
// blocks of the given size, the telltale fingerprint of ECB mode.
func HasRepeatedBlocks(data message.Message, blockSize int) bool {
	seen := make(map[string]struct{})
	raw := data.Bytes()

	for ix := 0; ix+blockSize <= len(raw); ix += blockSize {
		block := string(raw[ix : ix+blockSize])
		if _, ok := seen[block]; ok {
			return true
		}
		seen[block] = struct{}{}
	}
	return false
}

// byteScore gives the contribution of a single byte, based on the relative
// frequency of each letter in English text.
func byteScore(b byte) float64 {
	switch b {
	case 'E', 'e':
		return 12.70
	case 'T', 't':
		return 9.06
	case 'A', 'a':
		return 8.17
	case 'O', 'o':
		return 7.51
	case 'I', 'i':
		return 6.97
	case 'N', 'n':
		return 6.75
	case 'S', 's':
		return 6.33
	case 'H', 'h':
		return 6.09
	case 'R', 'r':
		return 5.99
	case 'D', 'd':
		return 4.25
	case 'L', 'l':
		return 4.03
	case 'C', 'c':
		return 2.78
	case 'U', 'u':
		return 2.76
	case 'M', 'm':
		return 2.41
	case 'W', 'w':
		return 2.36
	case 'F', 'f':
		return 2.23
	case 'G', 'g':
		return 2.02
	case 'Y', 'y':
		return 1.97
	case 'P', 'p':
		return 1.93
	case 'B', 'b':
		return 1.49
	case 'V', 'v':
		return 0.98
	case 'K', 'k':
		return 0.77
	case 'J', 'j', 'X', 'x':
		return 0.15
	case 'Q', 'q':
		return 0.10
	case 'Z', 'z':
		return 0.07
	case ' ':
		return 13.0
	}

	switch {
	case b >= 0x21 && b <= 0x40:
		return 0.5
	case b <= 0x08 || (b >= 0x14 && b <= 0x1F):
		return -10.0
	default:
		return -1.0
	}
}
