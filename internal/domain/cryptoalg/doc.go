// Package cryptoalg defines the contracts and failure modes for block-cipher
// construction: the single-block primitive, the supported operation modes
// and padding schemes.
package cryptoalg
