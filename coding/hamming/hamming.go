// Package hamming implements the standard (15, 11, 3) and shortened
// (10, 6, 3) Hamming codes used by the P25 data channel. Both correct a
// single bit error per codeword; the algorithms follow Hankerson et al,
// "Coding Theory and Cryptography: The Essentials" (2000).
package hamming

import (
	"fmt"

	"github.com/p25go/fec/coding/gf2"
)

// parityBits is the syndrome width shared by both variants.
const parityBits = 4

// A Code holds the constant tables for one Hamming variant. The syndrome
// decode procedure is shared; variants differ only in widths and tables.
type Code struct {
	// Name identifies the variant in panics and diagnostics.
	Name string
	// DataBits is the number of data bits per codeword.
	DataBits int
	// Bits is the number of significant bits per codeword.
	Bits int
	// Gen holds one parity mask per data bit, most significant first.
	Gen []uint32
	// Par holds one syndrome mask per codeword bit, most significant first.
	Par []uint32
	// Locations maps a 4-bit syndrome to a single-bit error location. A
	// zero entry marks a syndrome with no valid single-bit explanation.
	Locations [16]uint16
}

// Standard is the (15, 11, 3) code.
var Standard = Code{
	Name:     "hamming(15,11,3)",
	DataBits: 11,
	Bits:     15,
	Gen: []uint32{
		0b1111,
		0b1110,
		0b1101,
		0b1100,
		0b1011,
		0b1010,
		0b1001,
		0b0111,
		0b0110,
		0b0101,
		0b0011,
	},
	Par: []uint32{
		0b1111,
		0b1110,
		0b1101,
		0b1100,
		0b1011,
		0b1010,
		0b1001,
		0b0111,
		0b0110,
		0b0101,
		0b0011,
		0b1000,
		0b0100,
		0b0010,
		0b0001,
	},
	Locations: [16]uint16{
		0,
		0b0000000000000001,
		0b0000000000000010,
		0b0000000000010000,
		0b0000000000000100,
		0b0000000000100000,
		0b0000000001000000,
		0b0000000010000000,
		0b0000000000001000,
		0b0000000100000000,
		0b0000001000000000,
		0b0000010000000000,
		0b0000100000000000,
		0b0001000000000000,
		0b0010000000000000,
		0b0100000000000000,
	},
}

// Shortened is the (10, 6, 3) code. It has fewer codeword positions than the
// syndrome space can address, so several Locations entries are empty.
var Shortened = Code{
	Name:     "hamming(10,6,3)",
	DataBits: 6,
	Bits:     10,
	Gen: []uint32{
		0b1110,
		0b1101,
		0b1011,
		0b0111,
		0b0011,
		0b1100,
	},
	Par: []uint32{
		0b1110,
		0b1101,
		0b1011,
		0b0111,
		0b0011,
		0b1100,
		0b1000,
		0b0100,
		0b0010,
		0b0001,
	},
	Locations: [16]uint16{
		0,
		0b0000000001,
		0b0000000010,
		0b0000100000,
		0b0000000100,
		0,
		0,
		0b0001000000,
		0b0000001000,
		0,
		0,
		0b0010000000,
		0b0000010000,
		0b0100000000,
		0b1000000000,
		0,
	},
}

// Encode encodes the given data bits into a systematic codeword. It panics
// when data exceeds the variant's data width; that is a caller bug, not a
// channel condition.
func (c Code) Encode(data uint16) uint16 {
	if data>>c.DataBits != 0 {
		panic(fmt.Sprintf("%v: data %#x wider than %v bits", c.Name, data, c.DataBits))
	}
	return uint16(gf2.MulSystematic(uint32(data), c.Gen, parityBits))
}

// Decode tries to resolve the given word to the nearest codeword, correcting
// up to 1 bit error. On success it returns the recovered data bits and the
// number of bits corrected; ok is false when the syndrome has no single-bit
// explanation, meaning more errors than the code can correct. It panics when
// word exceeds the variant's codeword width.
func (c Code) Decode(word uint16) (data uint16, errs int, ok bool) {
	if word>>c.Bits != 0 {
		panic(fmt.Sprintf("%v: word %#x wider than %v bits", c.Name, word, c.Bits))
	}

	syndrome := gf2.Mul(uint32(word), c.Par)
	if syndrome == 0 {
		// Already a valid codeword, though possibly not the transmitted
		// one if the channel flipped 3 or more bits.
		return word >> parityBits, 0, true
	}

	loc := c.Locations[syndrome]
	if loc == 0 {
		return 0, 0, false
	}
	return (word ^ loc) >> parityBits, 1, true
}

// Validate checks that the variant's generator and parity-check tables are
// algebraic duals. Run once from tests, never per call.
func (c Code) Validate() bool {
	g := make([]uint32, c.DataBits)
	for i := range g {
		g[i] = uint32(c.Encode(1 << (c.DataBits - 1 - i)))
	}
	return gf2.Orthogonal(gf2.Dense(g, c.Bits), gf2.Dense(c.Par, parityBits).T())
}
