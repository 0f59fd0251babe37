package challenges

import (
	"fmt"
	"math"
	"strings"

	"github.com/feadoor/cryptopals/internal/analysis"
	"github.com/feadoor/cryptopals/internal/attacks"
	"github.com/feadoor/cryptopals/internal/domain/message"
	"github.com/feadoor/cryptopals/internal/infrastructure/cryptography"
)

// Challenge01 solves Set 1 Challenge 1 (Convert hex to base64).
func Challenge01(env *Env) (*Result, error) {
	hexIn := "49276d206b696c6c696e6720796f757220627261696e206c" +
		"696b65206120706f69736f6e6f7573206d757368726f6f6d"

	data, err := message.FromHex(hexIn)
	if err != nil {
		return nil, err
	}

	return NewResultBuilder().
		Set(1).
		Challenge(1).
		Description("Convert hex to base64").
		Output("hex_in", hexIn).
		Output("b64_out", data.Base64()).
		Finalize(), nil
}

// Challenge02 solves Set 1 Challenge 2 (Fixed XOR).
func Challenge02(env *Env) (*Result, error) {
	hexIn := "1c0111001f010100061a024b53535009181c"
	hexKey := "686974207468652062756c6c277320657965"

	data, err := message.FromHex(hexIn)
	if err != nil {
		return nil, err
	}
	key, err := message.FromHex(hexKey)
	if err != nil {
		return nil, err
	}

	return NewResultBuilder().
		Set(1).
		Challenge(2).
		Description("Fixed XOR").
		Output("hex_in", hexIn).
		Output("hex_key", hexKey).
		Output("hex_out", message.XOR(data, key).Hex()).
		Finalize(), nil
}

// Challenge03 solves Set 1 Challenge 3 (Single-byte XOR cipher).
func Challenge03(env *Env) (*Result, error) {
	hexIn := "1b37373331363f78151b7f2b783431333d78397828372d363c78373e783a393b3736"

	data, err := message.FromHex(hexIn)
	if err != nil {
		return nil, err
	}
	key, _ := attacks.BestSingleByteKey(data)

	return NewResultBuilder().
		Set(1).
		Challenge(3).
		Description("Single-byte XOR cipher").
		Output("hex_in", hexIn).
		Output("hex_key", key.Hex()).
		Output("text_out", message.XOR(data, key).Text()).
		Finalize(), nil
}

// Challenge04 solves Set 1 Challenge 4 (Detect single-character XOR).
func Challenge04(env *Env) (*Result, error) {
	lines, err := readLines(env, "set1challenge4.txt")
	if err != nil {
		return nil, err
	}

	bestData := message.New()
	bestKey := message.New()
	bestScore := math.Inf(-1)

	for _, line := range lines {
		data, err := message.FromHex(line)
		if err != nil {
			return nil, err
		}
		key, score := attacks.BestSingleByteKey(data)
		if score > bestScore {
			bestData = data
			bestKey = key
			bestScore = score
		}
	}

	return NewResultBuilder().
		Set(1).
		Challenge(4).
		Description("Detect single-character XOR").
		Output("hex_in", bestData.Hex()).
		Output("hex_key", bestKey.Hex()).
		Output("text_out", message.XOR(bestData, bestKey).Text()).
		Finalize(), nil
}

// Challenge05 solves Set 1 Challenge 5 (Implement repeating-key XOR).
func Challenge05(env *Env) (*Result, error) {
	textIn := "Burning 'em, if you ain't quick and nimble\n" +
		"I go crazy when I hear a cymbal"
	textKey := "ICE"

	data := message.FromText(textIn)
	key := message.FromText(textKey)

	return NewResultBuilder().
		Set(1).
		Challenge(5).
		Description("Implement repeating-key XOR").
		Output("text_in", textIn).
		Output("text_key", textKey).
		Output("hex_out", message.XOR(data, key).Hex()).
		Finalize(), nil
}

// Challenge06 solves Set 1 Challenge 6 (Break repeating-key XOR).
func Challenge06(env *Env) (*Result, error) {
	data, err := readBase64File(env, "set1challenge6.txt")
	if err != nil {
		return nil, err
	}

	key := attacks.BestRepeatingKey(data)

	return NewResultBuilder().
		Set(1).
		Challenge(6).
		Description("Break repeating-key XOR").
		Output("base64_in", data.Base64()).
		Output("text_key", key.Text()).
		Output("text_out", message.XOR(data, key).Text()).
		Finalize(), nil
}

// Challenge07 solves Set 1 Challenge 7 (AES in ECB mode).
func Challenge07(env *Env) (*Result, error) {
	data, err := readBase64File(env, "set1challenge7.txt")
	if err != nil {
		return nil, err
	}

	textKey := "YELLOW SUBMARINE"
	cipher, err := cryptography.NewAESECB(message.FromText(textKey))
	if err != nil {
		return nil, err
	}
	plain, err := cipher.Decrypt(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt input: %w", err)
	}

	return NewResultBuilder().
		Set(1).
		Challenge(7).
		Description("AES in ECB mode").
		Output("base64_in", data.Base64()).
		Output("text_key", textKey).
		Output("text_out", plain.Text()).
		Finalize(), nil
}

// Challenge08 solves Set 1 Challenge 8 (Detect AES in ECB mode).
func Challenge08(env *Env) (*Result, error) {
	lines, err := readLines(env, "set1challenge8.txt")
	if err != nil {
		return nil, err
	}

	var found []string
	for _, line := range lines {
		data, err := message.FromHex(line)
		if err != nil {
			return nil, err
		}
		if analysis.HasRepeatedBlocks(data, 16) {
			found = append(found, data.Hex())
		}
	}

	return NewResultBuilder().
		Set(1).
		Challenge(8).
		Description("Detect AES in ECB mode").
		Output("hex_in", strings.Join(found, "\n")).
		Finalize(), nil
}
