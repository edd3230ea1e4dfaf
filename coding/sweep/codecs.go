package sweep

import (
	"github.com/p25go/fec/coding/cyclic"
	"github.com/p25go/fec/coding/hamming"
)

// A Codec adapts one of the coding packages to the sweep runner over a
// common uint16 word shape.
type Codec struct {
	Name     string
	DataBits int
	Bits     int
	Radius   int // guaranteed correctable errors per codeword
	Encode   func(data uint16) uint16
	Decode   func(word uint16) (data uint16, errs int, ok bool)
}

// Cyclic adapts the (16, 8, 5) shortened cyclic code.
func Cyclic() Codec {
	return Codec{
		Name:     "cyclic(16,8,5)",
		DataBits: cyclic.DataBits,
		Bits:     cyclic.WordBits,
		Radius:   2,
		Encode: func(data uint16) uint16 {
			return cyclic.Encode(uint8(data))
		},
		Decode: func(word uint16) (uint16, int, bool) {
			data, errs, ok := cyclic.Decode(word)
			return uint16(data), errs, ok
		},
	}
}

// Hamming adapts a Hamming code variant.
func Hamming(c hamming.Code) Codec {
	return Codec{
		Name:     c.Name,
		DataBits: c.DataBits,
		Bits:     c.Bits,
		Radius:   1,
		Encode:   c.Encode,
		Decode:   c.Decode,
	}
}

// All returns adapters for every code on the data channel.
func All() []Codec {
	return []Codec{
		Cyclic(),
		Hamming(hamming.Standard),
		Hamming(hamming.Shortened),
	}
}
