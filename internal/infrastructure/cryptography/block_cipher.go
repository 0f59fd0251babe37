package cryptography

import (
	"fmt"

	"github.com/feadoor/cryptopals/internal/domain/cryptoalg"
	"github.com/feadoor/cryptopals/internal/domain/message"
)

// BlockCipher is a generic block cipher: a single-block primitive combined
// with a mode of operation and a padding scheme.
type BlockCipher struct {
	block   cryptoalg.Block
	mode    cryptoalg.Mode
	padding cryptoalg.Padding
	iv      []byte
}

// NewBlockCipher creates a block cipher from the given primitive, mode and
// padding scheme. CBC mode requires an IV whose length equals the primitive
// block size; ECB mode ignores the IV.
func NewBlockCipher(block cryptoalg.Block, mode cryptoalg.Mode, padding cryptoalg.Padding, iv message.Message) (*BlockCipher, error) {
	switch mode {
	case cryptoalg.ModeECB:
	case cryptoalg.ModeCBC:
		if iv.Len() != block.BlockSize() {
			return nil, fmt.Errorf("%w: got %d, want %d",
				cryptoalg.ErrInvalidIVSize, iv.Len(), block.BlockSize())
		}
	default:
		return nil, fmt.Errorf("unsupported operation mode: %d", mode)
	}

	if padding != cryptoalg.PaddingPKCS7 {
		return nil, fmt.Errorf("unsupported padding scheme: %d", padding)
	}

	return &BlockCipher{
		block:   block,
		mode:    mode,
		padding: padding,
		iv:      iv.Bytes(),
	}, nil
}

// NewAESECB creates an AES block cipher in ECB mode with PKCS#7 padding.
func NewAESECB(key message.Message) (*BlockCipher, error) {
	block, err := NewAESBlock(key)
	if err != nil {
		return nil, err
	}
	return NewBlockCipher(block, cryptoalg.ModeECB, cryptoalg.PaddingPKCS7, message.New())
}

// NewAESCBC creates an AES block cipher in CBC mode with PKCS#7 padding and
// the given IV.
func NewAESCBC(key, iv message.Message) (*BlockCipher, error) {
	block, err := NewAESBlock(key)
	if err != nil {
		return nil, err
	}
	return NewBlockCipher(block, cryptoalg.ModeCBC, cryptoalg.PaddingPKCS7, iv)
}

// Encrypt pads the input and encrypts it under the configured mode.
func (c *BlockCipher) Encrypt(input message.Message) (message.Message, error) {
	data := pkcs7Pad(input.Bytes(), c.block.BlockSize())

	var out []byte
	switch c.mode {
	case cryptoalg.ModeECB:
		out = c.ecbEncrypt(data)
	case cryptoalg.ModeCBC:
		out = c.cbcEncrypt(data)
	}

	return message.FromBytes(out), nil
}

// Decrypt decrypts the input under the configured mode and removes the
// padding. Returns ErrNotBlockAligned for ragged ciphertext and
// ErrInvalidPadding when the decrypted padding is malformed.
func (c *BlockCipher) Decrypt(input message.Message) (message.Message, error) {
	data := input.Bytes()
	if len(data)%c.block.BlockSize() != 0 {
		return message.Message{}, fmt.Errorf("%w: %d bytes", cryptoalg.ErrNotBlockAligned, len(data))
	}

	var plain []byte
	switch c.mode {
	case cryptoalg.ModeECB:
		plain = c.ecbDecrypt(data)
	case cryptoalg.ModeCBC:
		plain = c.cbcDecrypt(data)
	}

	out, err := pkcs7Unpad(plain, c.block.BlockSize())
	if err != nil {
		return message.Message{}, err
	}
	return message.FromBytes(out), nil
}

// BlockSize returns the block size of the underlying primitive.
func (c *BlockCipher) BlockSize() int {
	return c.block.BlockSize()
}

func (c *BlockCipher) ecbEncrypt(data []byte) []byte {
	bs := c.block.BlockSize()
	out := make([]byte, 0, len(data))

	for ix := 0; ix+bs <= len(data); ix += bs {
		out = append(out, c.block.EncryptBlock(data[ix:ix+bs])...)
	}
	return out
}

func (c *BlockCipher) ecbDecrypt(data []byte) []byte {
	bs := c.block.BlockSize()
	out := make([]byte, 0, len(data))

	for ix := 0; ix+bs <= len(data); ix += bs {
		out = append(out, c.block.DecryptBlock(data[ix:ix+bs])...)
	}
	return out
}

func (c *BlockCipher) cbcEncrypt(data []byte) []byte {
	bs := c.block.BlockSize()
	out := make([]byte, 0, len(data))

	prev := c.iv
	for ix := 0; ix+bs <= len(data); ix += bs {
		chained := xorBytes(data[ix:ix+bs], prev)
		encrypted := c.block.EncryptBlock(chained)
		out = append(out, encrypted...)
		prev = encrypted
	}
	return out
}

func (c *BlockCipher) cbcDecrypt(data []byte) []byte {
	bs := c.block.BlockSize()
	out := make([]byte, 0, len(data))

	prev := c.iv
	for ix := 0; ix+bs <= len(data); ix += bs {
		decrypted := c.block.DecryptBlock(data[ix : ix+bs])
		out = append(out, xorBytes(decrypted, prev)...)
		prev = data[ix : ix+bs]
	}
	return out
}

func xorBytes(a, b []byte) []byte {
	out := make([]byte, len(a))
	for ix := range a {
		out[ix] = a[ix] ^ b[ix]
	}
	return out
}
