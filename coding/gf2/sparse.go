package gf2

import (
	mat "github.com/nathanhack/sparsemat"
)

// Dense expands a row-mask table into a sparsemat matrix with one row per
// mask; mask bit width-1 maps to column 0. The codecs use this to hand their
// constant tables to matrix-level checks.
func Dense(rows []uint32, width int) mat.SparseMat {
	m := mat.CSRMat(len(rows), width)

	for c := 0; c < width; c++ {
		vec := mat.CSRVec(len(rows))
		for r := 0; r < len(rows); r++ {
			if rows[r]>>(width-1-c)&1 == 1 {
				vec.Set(r, 1)
			}
		}
		m.SetColumn(c, vec)
	}
	return m
}

// Orthogonal tests G*H.T == 0 over GF(2), where G is a generator matrix and
// H a parity-check matrix over the same codeword length. Codecs run this once
// from their Validate functions; it is far too slow for the decode path.
func Orthogonal(G, H mat.SparseMat) bool {
	gRows, gCols := G.Dims()
	hRows, hCols := H.Dims()
	if gCols != hCols {
		panic("G and H must share a codeword length")
	}

	cache := make([]mat.SparseVector, hRows)
	for i := 0; i < hRows; i++ {
		cache[i] = H.Row(i)
	}

	for i := 0; i < gRows; i++ {
		row := G.Row(i)
		for j := 0; j < hRows; j++ {
			if row.Dot(cache[j]) > 0 {
				return false
			}
		}
	}
	return true
}
