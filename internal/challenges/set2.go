package challenges

import (
	"fmt"

	"github.com/feadoor/cryptopals/internal/attacks"
	"github.com/feadoor/cryptopals/internal/domain/message"
	"github.com/feadoor/cryptopals/internal/infrastructure/cryptography"
	"github.com/feadoor/cryptopals/internal/infrastructure/oracles"
)

// rollinBase64 is the secret suffix used by challenges 12 and 14.
const rollinBase64 = "Um9sbGluJyBpbiBteSA1LjAKV2l0aCBteSByYWctdG9wIGRvd24gc28gbXkgaGFpciBjYW4gYmxvdwpU" +
	"aGUgZ2lybGllcyBvbiBzdGFuZGJ5IHdhdmluZyBqdXN0IHRvIHNheSBoaQpEaWQgeW91IHN0b3A/IE5v" +
	"LCBJIGp1c3QgZHJvdmUgYnkK"

// Challenge09 solves Set 2 Challenge 9 (Implement PKCS#7 padding).
func Challenge09(env *Env) (*Result, error) {
	textIn := "YELLOW SUBMARINE"

	data := message.FromText(textIn)
	padded := cryptography.PKCS7Pad(data, 20)

	return NewResultBuilder().
		Set(2).
		Challenge(9).
		Description("Implement PKCS#7 padding").
		Output("text_in", textIn).
		Output("hex_in", data.Hex()).
		Output("hex_out", padded.Hex()).
		Finalize(), nil
}

// Challenge10 solves Set 2 Challenge 10 (Implement CBC mode).
func Challenge10(env *Env) (*Result, error) {
	data, err := readBase64File(env, "set2challenge10.txt")
	if err != nil {
		return nil, err
	}

	textKey := "YELLOW SUBMARINE"
	iv := message.FromBytes(make([]byte, 16))
	cipher, err := cryptography.NewAESCBC(message.FromText(textKey), iv)
	if err != nil {
		return nil, err
	}
	plain, err := cipher.Decrypt(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt input: %w", err)
	}

	return NewResultBuilder().
		Set(2).
		Challenge(10).
		Description("Implement CBC mode").
		Output("base64_in", data.Base64()).
		Output("text_key", textKey).
		Output("text_out", plain.Text()).
		Finalize(), nil
}

// Challenge11 solves Set 2 Challenge 11 (An ECB/CBC detection oracle).
func Challenge11(env *Env) (*Result, error) {
	oracle := oracles.NewModeOracle()

	correct := 0
	trials := 1000
	for i := 0; i < trials; i++ {
		guess, err := attacks.DetectECB(oracle)
		if err != nil {
			return nil, err
		}
		if oracle.CheckAnswer(guess) {
			correct++
		}
	}

	return NewResultBuilder().
		Set(2).
		Challenge(11).
		Description("An ECB/CBC detection oracle").
		Output("success", fmt.Sprintf("%t", correct == trials)).
		Output("success_rate", fmt.Sprintf("%.1f%%", 100*float64(correct)/float64(trials))).
		Finalize(), nil
}

// Challenge12 solves Set 2 Challenge 12 (Byte-at-a-time ECB decryption (Simple)).
func Challenge12(env *Env) (*Result, error) {
	suffix, err := message.FromBase64(rollinBase64)
	if err != nil {
		return nil, err
	}
	oracle, err := oracles.NewSuffixOracle(suffix)
	if err != nil {
		return nil, err
	}

	guess, err := attacks.FindSuffix(oracle)
	if err != nil {
		return nil, err
	}

	return NewResultBuilder().
		Set(2).
		Challenge(12).
		Description("Byte-at-a-time ECB decryption (Simple)").
		Output("success", fmt.Sprintf("%t", oracle.CheckAnswer(guess))).
		Output("text_out", guess.Text()).
		Finalize(), nil
}

// Challenge13 solves Set 2 Challenge 13 (ECB cut-and-paste).
func Challenge13(env *Env) (*Result, error) {
	oracle, err := oracles.NewProfileOracle()
	if err != nil {
		return nil, err
	}

	token, err := attacks.CraftAdminToken(oracle)
	if err != nil {
		return nil, err
	}

	return NewResultBuilder().
		Set(2).
		Challenge(13).
		Description("ECB cut-and-paste").
		Output("success", fmt.Sprintf("%t", oracle.IsAdmin(token))).
		Finalize(), nil
}

// Challenge14 solves Set 2 Challenge 14 (Byte-at-a-time ECB decryption (Harder)).
func Challenge14(env *Env) (*Result, error) {
	suffix, err := message.FromBase64(rollinBase64)
	if err != nil {
		return nil, err
	}
	oracle, err := oracles.NewAffixOracle(suffix)
	if err != nil {
		return nil, err
	}

	guess, err := attacks.FindSuffixWithPrefix(oracle)
	if err != nil {
		return nil, err
	}

	return NewResultBuilder().
		Set(2).
		Challenge(14).
		Description("Byte-at-a-time ECB decryption (Harder)").
		Output("success", fmt.Sprintf("%t", oracle.CheckAnswer(guess))).
		Output("text_out", guess.Text()).
		Finalize(), nil
}

// Challenge15 solves Set 2 Challenge 15 (PKCS#7 padding validation).
func Challenge15(env *Env) (*Result, error) {
	text := message.FromText("ICE ICE BABY")

	withPadding := func(padding ...byte) message.Message {
		return message.Concat(text, message.FromBytes(padding))
	}

	detectValid := cryptography.ValidPKCS7(withPadding(4, 4, 4, 4), 16) &&
		cryptography.ValidPKCS7(withPadding(1, 1, 1, 1), 16)
	detectInvalid := !cryptography.ValidPKCS7(withPadding(5, 5, 5, 5), 16) &&
		!cryptography.ValidPKCS7(withPadding(1, 2, 3, 4), 16)

	return NewResultBuilder().
		Set(2).
		Challenge(15).
		Description("PKCS#7 padding validation").
		Output("success", fmt.Sprintf("%t", detectValid && detectInvalid)).
		Output("detect_valid", fmt.Sprintf("%t", detectValid)).
		Output("detect_invalid", fmt.Sprintf("%t", detectInvalid)).
		Finalize(), nil
}
