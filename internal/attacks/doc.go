// Package attacks implements cryptanalytic attacks against XOR ciphers and
// against the block-cipher oracles.
package attacks
