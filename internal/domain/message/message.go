package message

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"strings"
)

// Message holds the contents of a message as an immutable sequence of bytes.
type Message struct {
	bytes []byte
}

// New creates a new empty Message.
func New() Message {
	return Message{}
}

// FromBytes creates a Message from a sequence of raw byte values. The input
// slice is copied.
func FromBytes(input []byte) Message {
	buf := make([]byte, len(input))
	copy(buf, input)
	return Message{bytes: buf}
}

// FromText creates a Message from a plain text string.
func FromText(input string) Message {
	return Message{bytes: []byte(input)}
}

// FromByte creates a Message representing a single byte.
func FromByte(input byte) Message {
	return Message{bytes: []byte{input}}
}

// Random creates a Message of n cryptographically random bytes.
func Random(n int) Message {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return Message{bytes: buf}
}

// FromHex creates a Message from a sequence of bytes given as a hexadecimal
// string.
//
// Returns a *HexCharError naming the first non-hexadecimal character, or
// ErrHexLength if the input does not split exactly into a sequence of bytes.
func FromHex(input string) (Message, error) {
	buf := make([]byte, 0, len(input)/2)

	var next byte
	parity := 0
	for ix, ch := range input {
		nibble, ok := hexDigit(ch)
		if !ok {
			return Message{}, &HexCharError{Pos: ix, Char: ch}
		}
		next = next<<4 | nibble
		parity++
		if parity == 2 {
			parity = 0
			buf = append(buf, next)
		}
	}

	if parity != 0 {
		return Message{}, ErrHexLength
	}
	return Message{bytes: buf}, nil
}

// FromBase64 creates a Message from a base64 encoded string using the
// standard alphabet with strict '=' padding.
//
// Returns a *Base64CharError naming the first invalid character (misplaced
// padding included), or ErrBase64Length if the input length is not a
// multiple of four.
func FromBase64(input string) (Message, error) {
	if len(input)%4 != 0 {
		return Message{}, ErrBase64Length
	}

	pad := 0
	switch {
	case strings.HasSuffix(input, "=="):
		pad = 2
	case strings.HasSuffix(input, "="):
		pad = 1
	}
	body := input[:len(input)-pad]

	buf := make([]byte, 0, len(input)/4*3)
	var acc uint32
	count := 0
	for ix := 0; ix < len(body); ix++ {
		v, ok := sextet(body[ix])
		if !ok {
			return Message{}, &Base64CharError{Pos: ix, Char: rune(body[ix])}
		}
		acc = acc<<6 | uint32(v)
		count++
		if count == 4 {
			buf = append(buf, byte(acc>>16), byte(acc>>8), byte(acc))
			acc = 0
			count = 0
		}
	}

	// The body length is congruent to 4-pad mod 4, so the leftover count is
	// fixed by the padding: two sextets carry one byte, three carry two.
	switch count {
	case 2:
		buf = append(buf, byte(acc>>4))
	case 3:
		buf = append(buf, byte(acc>>10), byte(acc>>2))
	}

	return Message{bytes: buf}, nil
}

// Concat creates a Message holding the concatenation of the given messages.
func Concat(msgs ...Message) Message {
	size := 0
	for _, m := range msgs {
		size += len(m.bytes)
	}

	buf := make([]byte, 0, size)
	for _, m := range msgs {
		buf = append(buf, m.bytes...)
	}
	return Message{bytes: buf}
}

// Bytes returns a copy of the byte sequence stored in this Message.
func (m Message) Bytes() []byte {
	buf := make([]byte, len(m.bytes))
	copy(buf, m.bytes)
	return buf
}

// Len returns the number of bytes in this Message.
func (m Message) Len() int {
	return len(m.bytes)
}

// Hex returns the message as a lowercase hexadecimal string.
func (m Message) Hex() string {
	return hex.EncodeToString(m.bytes)
}

// Base64 returns the message as a base64 encoded string.
func (m Message) Base64() string {
	return base64.StdEncoding.EncodeToString(m.bytes)
}

// Text returns the message interpreted as a plain text string.
func (m Message) Text() string {
	return string(m.bytes)
}

// Slice returns a new Message formed of the byte range [start, end).
func (m Message) Slice(start, end int) Message {
	return FromBytes(m.bytes[start:end])
}

// Equal reports whether two Messages hold the same byte sequence.
func (m Message) Equal(other Message) bool {
	return bytes.Equal(m.bytes, other.bytes)
}

func hexDigit(ch rune) (byte, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return byte(ch - '0'), true
	case ch >= 'a' && ch <= 'f':
		return byte(ch-'a') + 10, true
	case ch >= 'A' && ch <= 'F':
		return byte(ch-'A') + 10, true
	default:
		return 0, false
	}
}

func sextet(ch byte) (byte, bool) {
	switch {
	case ch >= 'A' && ch <= 'Z':
		return ch - 'A', true
	case ch >= 'a' && ch <= 'z':
		return ch - 'a' + 26, true
	case ch >= '0' && ch <= '9':
		return ch - '0' + 52, true
	case ch == '+':
		return 62, true
	case ch == '/':
		return 63, true
	default:
		return 0, false
	}
}
