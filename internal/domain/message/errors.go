package message

import (
	"errors"
	"fmt"
)

// Errors returned when parsing encoded input.
var (
	// ErrHexLength indicates a hexadecimal input with an odd number of digits.
	ErrHexLength = errors.New("hex input has an odd number of digits")
	// ErrBase64Length indicates a base64 input whose length is not a
	// multiple of four.
	ErrBase64Length = errors.New("base64 input has invalid length")
)

// HexCharError reports the first non-hexadecimal character found while
// parsing a hex string.
type HexCharError struct {
	Pos  int
	Char rune
}

func (e *HexCharError) Error() string {
	return fmt.Sprintf("invalid hex character %q at position %d", e.Char, e.Pos)
}

// Base64CharError reports the first invalid character found while parsing a
// base64 string, including misplaced padding.
type Base64CharError struct {
	Pos  int
	Char rune
}

func (e *Base64CharError) Error() string {
	return fmt.Sprintf("invalid base64 character %q at position %d", e.Char, e.Pos)
}
