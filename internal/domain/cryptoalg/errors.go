package cryptoalg

import "errors"

// Errors arising from block cipher construction, encryption and decryption.
var (
	// ErrInvalidKeySize indicates a key whose length the algorithm does not
	// support.
	ErrInvalidKeySize = errors.New("cryptoalg: invalid key size")

	// ErrInvalidBlockSize indicates a non-positive block size.
	ErrInvalidBlockSize = errors.New("cryptoalg: block size must be positive")

	// ErrInvalidIVSize indicates an IV whose length differs from the block
	// size.
	ErrInvalidIVSize = errors.New("cryptoalg: IV length must equal the block size")

	// ErrNotBlockAligned indicates ciphertext whose length is not a whole
	// number of blocks.
	ErrNotBlockAligned = errors.New("cryptoalg: input is not a whole number of blocks")

	// ErrInvalidPadding indicates a decrypted message whose padding is
	// malformed.
	ErrInvalidPadding = errors.New("cryptoalg: invalid padding")
)
