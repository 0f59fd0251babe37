// Package message defines the Message value used to carry the contents of a
// message between the ciphers, oracles and attacks, supporting input and
// output in a variety of encodings.
package message
