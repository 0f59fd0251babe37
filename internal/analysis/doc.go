// Package analysis provides metrics for evaluating candidate plaintexts and
// ciphertexts: English-likeness scoring, Hamming distance, XOR key-size
// scoring and repeated-block detection.
package analysis
