// Package cryptography implements the block-cipher primitives and the
// generic block cipher defined by the cryptoalg contracts.
package cryptography
