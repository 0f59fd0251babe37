package cryptoalg

// Block encrypts and decrypts a single block of bytes. It is the core
// primitive that a block cipher is built around.
type Block interface {
	// EncryptBlock encrypts a single block. The input length must equal
	// BlockSize.
	EncryptBlock(input []byte) []byte

	// DecryptBlock decrypts a single block. The input length must equal
	// BlockSize.
	DecryptBlock(input []byte) []byte

	// BlockSize returns the block size used by this primitive, in bytes.
	BlockSize() int
}

// Mode is a block cipher mode of operation.
type Mode int

// Supported modes of operation.
const (
	// ModeECB is electronic codebook mode: each block is encrypted
	// independently.
	ModeECB Mode = iota
	// ModeCBC is cipher block chaining mode: each plaintext block is XORed
	// with the previous ciphertext block (or the IV) before encryption.
	ModeCBC
)

// Padding is a block cipher padding scheme.
type Padding int

// Supported padding schemes.
const (
	// PaddingPKCS7 pads with N bytes of value N, always adding at least one
	// byte.
	PaddingPKCS7 Padding = iota
)
