// Package challenges contains the solutions to the cryptopals challenge
// sets, together with a registry so challenges can be run by number.
//
// Each solution returns a Result: the outputs of running that challenge,
// including, when relevant, encrypted or decrypted inputs and outputs,
// recovered keys and the outcomes of attacks. The known answers are checked
// as unit tests for the challenges.
package challenges
