// Package gf2 provides the GF(2) matrix-vector multiply shared by the data
// channel codecs. Matrices are stored as one row-mask per input bit, so a
// multiply is an XOR fold over the rows selected by the input's set bits.
package gf2

import "fmt"

// Mul multiplies the input vector by a row-mask matrix over GF(2): the result
// is the XOR of rows[i] for every set bit of word, where rows[0] pairs with
// the input's most significant bit. Encoders use this to compute parity bits
// and decoders use it with the dual matrix to compute syndromes.
//
// An input wider than the matrix is a caller bug and panics; it is never a
// decode outcome.
func Mul(word uint32, rows []uint32) uint32 {
	k := len(rows)
	if word>>k != 0 {
		panic(fmt.Sprintf("input %#x wider than the %v matrix rows", word, k))
	}

	var acc uint32
	for i, row := range rows {
		if word>>(k-1-i)&1 == 1 {
			acc ^= row
		}
	}
	return acc
}

// MulSystematic multiplies like Mul but places the input in the high bits
// above parityBits of product, yielding a systematic codeword.
func MulSystematic(data uint32, rows []uint32, parityBits int) uint32 {
	return data<<parityBits | Mul(data, rows)
}
