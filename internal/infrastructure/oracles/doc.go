// Package oracles implements attackable black boxes around insecure uses of
// block ciphers. Each oracle hides its key and any secret material, exposing
// only an encryption interface and a CheckAnswer method that verifies the
// goal of the corresponding attack.
package oracles
