package cryptography

import (
	"fmt"

	"github.com/feadoor/cryptopals/internal/domain/cryptoalg"
	"github.com/feadoor/cryptopals/internal/domain/message"
)

// PKCS7Pad pads the given message to a whole number of blocks using PKCS#7.
// Between 1 and blockSize bytes are always added.
func PKCS7Pad(data message.Message, blockSize int) message.Message {
	return message.FromBytes(pkcs7Pad(data.Bytes(), blockSize))
}

// PKCS7Unpad removes PKCS#7 padding from the given message, returning
// ErrInvalidPadding when the padding is malformed.
func PKCS7Unpad(data message.Message, blockSize int) (message.Message, error) {
	out, err := pkcs7Unpad(data.Bytes(), blockSize)
	if err != nil {
		return message.Message{}, err
	}
	return message.FromBytes(out), nil
}

// ValidPKCS7 reports whether the given message carries well-formed PKCS#7
// padding for the given block size.
func ValidPKCS7(data message.Message, blockSize int) bool {
	_, err := PKCS7Unpad(data, blockSize)
	return err == nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padValue := blockSize - len(data)%blockSize

	out := make([]byte, 0, len(data)+padValue)
	out = append(out, data...)
	for ix := 0; ix < padValue; ix++ {
		out = append(out, byte(padValue))
	}
	return out
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: input of %d bytes", cryptoalg.ErrInvalidPadding, len(data))
	}

	padValue := int(data[len(data)-1])
	if padValue < 1 || padValue > blockSize || padValue > len(data) {
		return nil, fmt.Errorf("%w: padding value %d", cryptoalg.ErrInvalidPadding, padValue)
	}

	for _, b := range data[len(data)-padValue:] {
		if int(b) != padValue {
			return nil, fmt.Errorf("%w: inconsistent padding run", cryptoalg.ErrInvalidPadding)
		}
	}

	return data[:len(data)-padValue], nil
}
