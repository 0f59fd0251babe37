package attacks

import (
	"math"

	"github.com/feadoor/cryptopals/internal/analysis"
	"github.com/feadoor/cryptopals/internal/domain/message"
)

// BestSingleByteKey finds the most likely single-byte key used to encrypt
// the given data, together with the English score of the resulting
// plaintext.
func BestSingleByteKey(data message.Message) (message.Message, float64) {
	bestKey := message.FromByte(0)
	bestScore := math.Inf(-1)

	for keyByte := 0; keyByte < 256; keyByte++ {
		key := message.FromByte(byte(keyByte))
		score := analysis.ScoreEnglish(message.XOR(data, key))
		if score > bestScore {
			bestKey = key
			bestScore = score
		}
	}

	return bestKey, bestScore
}

// BestRepeatingKey finds the most likely repeating-XOR key used to encrypt
// the given data.
//
// The key size with the lowest normalized block distance is chosen, then
// the data is split into that many interleaved streams and each stream is
// solved as a single-byte XOR cipher.
func BestRepeatingKey(data message.Message) message.Message {
	bestKeySize := 0
	bestScore := math.Inf(1)
	for keySize := 2; keySize < 40; keySize++ {
		if data.Len()/keySize < 2 {
			break
		}
		score := analysis.ScoreKeySize(data, keySize)
		if score < bestScore {
			bestKeySize = keySize
			bestScore = score
		}
	}

	if bestKeySize == 0 {
		key, _ := BestSingleByteKey(data)
		return key
	}

	raw := data.Bytes()
	keyBytes := make([]byte, 0, bestKeySize)
	for ix := 0; ix < bestKeySize; ix++ {
		stream := make([]byte, 0, len(raw)/bestKeySize+1)
		for pos := ix; pos < len(raw); pos += bestKeySize {
			stream = append(stream, raw[pos])
		}

		streamKey, _ := BestSingleByteKey(message.FromBytes(stream))
		keyBytes = append(keyBytes, streamKey.Bytes()[0])
	}

	return message.FromBytes(keyBytes)
}
