// Package cyclic implements the (16, 8, 5) shortened cyclic code that
// protects short field groups on the P25 data channel, correcting up to 2 bit
// errors per codeword.
//
// The code is obtained by shortening a (17, 8) cyclic parent code by one bit.
// The decoder exploits the parent's shift invariance: it walks the received
// word through a full 17-step rotation cycle, at each step matching the
// syndrome against a small table of canonical low-bit-set error patterns. The
// parity-check construction follows Hankerson et al, "Coding Theory and
// Cryptography: The Essentials" (2000), and the decoding procedure Lin and
// Costello, "Error Control Coding" (1983).
package cyclic

import (
	"math/bits"

	"github.com/p25go/fec/coding/gf2"
)

const (
	// DataBits is the number of data bits per codeword.
	DataBits = 8
	// WordBits is the number of significant bits per codeword.
	WordBits = 16

	parityBits = 8
	// parentBits is the length of the unshortened cyclic code.
	parentBits = 17
)

// gen holds one parity mask per data bit, most significant data bit first.
var gen = []uint32{
	0b01001110,
	0b00100111,
	0b10001111,
	0b11011011,
	0b11110001,
	0b11100100,
	0b01110010,
	0b00111001,
}

// par holds one syndrome mask per bit of the zero-extended 17-bit parent
// word, most significant bit first. The underlying parity-check rows are
// x^i mod g(x) for the parent code's defining polynomial g.
var par = []uint32{
	0b10000000,
	0b01000000,
	0b00100000,
	0b00010000,
	0b00001000,
	0b00000100,
	0b00000010,
	0b00000001,
	0b10011100,
	0b01001110,
	0b00100111,
	0b10001111,
	0b11011011,
	0b11110001,
	0b11100100,
	0b01110010,
	0b00111001,
}

// Encode encodes 8 data bits into a systematic 16-bit codeword.
func Encode(data uint8) uint16 {
	return uint16(gf2.MulSystematic(uint32(data), gen, parityBits))
}

// Decode tries to resolve the given 16-bit word to the nearest codeword,
// correcting up to 2 bit errors. On success it returns the recovered data
// bits and the number of bits corrected; ok is false when the word lies
// outside the code's correction radius.
func Decode(word uint16) (data uint8, errs int, ok bool) {
	// Run a full rotation cycle of the parent code so the data bits end up
	// back in their original position. The word is zero-extended to the
	// 17-bit parent length.
	w := uint32(word)
	ok = true

	for i := 0; i < parentBits; i++ {
		syndrome := gf2.Mul(w, par)
		if syndrome == 0 {
			w = rotate17(w)
			continue
		}

		// The outcome of the last nonzero-syndrome step stands: a
		// correction here supersedes an earlier miss, and vice versa.
		if pat, found := pattern(syndrome); found {
			w ^= pat
			errs = bits.OnesCount32(pat)
			ok = true
		} else {
			ok = false
		}
		w = rotate17(w)
	}

	if !ok {
		return 0, 0, false
	}
	return uint8(w >> parityBits), errs, true
}

// Validate checks that the generator and parity-check tables are algebraic
// duals over the 17-bit parent code. Run once from tests, never per call.
func Validate() bool {
	g := make([]uint32, DataBits)
	for i := range g {
		g[i] = uint32(Encode(1 << (DataBits - 1 - i)))
	}
	return gf2.Orthogonal(gf2.Dense(g, parentBits), gf2.Dense(par, parityBits).T())
}

// pattern looks up the canonical correctable error pattern for a syndrome.
// Rotation aligns any correctable error with one of these, so only patterns
// with the low bit set need storing. The table is reference data for this
// exact shortened construction, reproduced from the literature rather than
// derived; a wrong entry would silently change which double-bit errors are
// treated as correctable.
func pattern(syndrome uint32) (uint32, bool) {
	switch syndrome {
	case 0b00011001:
		return 0b00100000000000001, true
	case 0b00011110:
		return 0b00000000001000001, true
	case 0b00101001:
		return 0b00010000000000001, true
	case 0b00110001:
		return 0b00001000000000001, true
	case 0b00111000:
		return 0b00000001000000001, true
	case 0b00111001:
		return 0b00000000000000001, true
	case 0b00111011:
		return 0b00000010000000001, true
	case 0b00111101:
		return 0b00000100000000001, true
	case 0b01001011:
		return 0b00000000000000011, true
	case 0b01110111:
		return 0b00000000010000001, true
	case 0b01111001:
		return 0b01000000000000001, true
	case 0b10100101:
		return 0b00000000100000001, true
	case 0b10110110:
		return 0b00000000000100001, true
	case 0b10111001:
		return 0b10000000000000001, true
	case 0b11001000:
		return 0b00000000000001001, true
	case 0b11011101:
		return 0b00000000000000101, true
	case 0b11100010:
		return 0b00000000000010001, true
	}
	return 0, false
}

// rotate17 cyclically rotates the low 17 bits right by one; the LSB wraps to
// bit 16.
func rotate17(w uint32) uint32 {
	return w>>1 | (w&1)<<16
}
