package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the standard error payload returned by the API.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HexToBase64Request carries a hex string to be re-encoded as base64.
type HexToBase64Request struct {
	Hex string `json:"hex" validate:"required"`
}

// HexToBase64Response carries the re-encoded base64 string.
type HexToBase64Response struct {
	Base64 string `json:"base64"`
}

// Base64ToHexRequest carries a base64 string to be re-encoded as hex.
type Base64ToHexRequest struct {
	Base64 string `json:"base64" validate:"required"`
}

// Base64ToHexResponse carries the re-encoded hex string.
type Base64ToHexResponse struct {
	Hex string `json:"hex"`
}

// XORRequest carries hex-encoded data and key for a repeating-key XOR.
type XORRequest struct {
	HexIn  string `json:"hexIn" validate:"required"`
	HexKey string `json:"hexKey" validate:"required"`
}

// XORResponse carries the hex-encoded result of a XOR operation.
type XORResponse struct {
	HexOut string `json:"hexOut"`
}

// CrackSingleByteRequest carries hex-encoded ciphertext encrypted with an
// unknown single-byte XOR key.
type CrackSingleByteRequest struct {
	HexIn string `json:"hexIn" validate:"required"`
}

// CrackSingleByteResponse carries the recovered key and plaintext.
type CrackSingleByteResponse struct {
	HexKey  string  `json:"hexKey"`
	TextOut string  `json:"textOut"`
	Score   float64 `json:"score"`
}

// CrackRepeatingKeyRequest carries base64-encoded ciphertext encrypted with
// an unknown repeating XOR key.
type CrackRepeatingKeyRequest struct {
	Base64In string `json:"base64In" validate:"required"`
}

// CrackRepeatingKeyResponse carries the recovered key and plaintext.
type CrackRepeatingKeyResponse struct {
	TextKey string `json:"textKey"`
	TextOut string `json:"textOut"`
}

// CipherRequest carries the parameters for an AES encryption or decryption.
type CipherRequest struct {
	Mode   string `json:"mode" validate:"required,oneof=ecb cbc"`
	HexKey string `json:"hexKey" validate:"required,hexadecimal"`
	HexIV  string `json:"hexIv" validate:"omitempty,hexadecimal"`
	HexIn  string `json:"hexIn" validate:"required"`
}

// Validate for validating CipherRequest struct
func (r *CipherRequest) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	if r.Mode == "cbc" && r.HexIV == "" {
		return fmt.Errorf("validation failed: CBC mode requires an IV")
	}

	return nil
}

// CipherResponse carries the hex-encoded result of a cipher operation.
type CipherResponse struct {
	HexOut string `json:"hexOut"`
}

// ChallengeInfoResponse describes a single registered challenge.
type ChallengeInfoResponse struct {
	Set         int    `json:"set"`
	Challenge   int    `json:"challenge"`
	Description string `json:"description"`
}

// ChallengeRunResponse describes a recorded challenge run.
type ChallengeRunResponse struct {
	ID              string    `json:"id"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
	Set             int       `json:"set"`
	Challenge       int       `json:"challenge"`
	Description     string    `json:"description"`
	Outputs         string    `json:"outputs"`
	Success         bool      `json:"success"`
	DurationMS      int64     `json:"durationMs"`
}
