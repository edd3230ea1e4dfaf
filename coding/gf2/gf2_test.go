package gf2

import (
	"strconv"
	"testing"
)

func TestMul(t *testing.T) {
	rows := []uint32{0b1100, 0b0110, 0b0011}
	tests := []struct {
		word     uint32
		expected uint32
	}{
		{0b000, 0b0000},
		{0b100, 0b1100},
		{0b010, 0b0110},
		{0b001, 0b0011},
		{0b101, 0b1111},
		{0b110, 0b1010},
		{0b111, 0b1001},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := Mul(test.word, rows)
			if actual != test.expected {
				t.Fatalf("expected %04b but found %04b", test.expected, actual)
			}
		})
	}
}

func TestMulPanicsOnWideInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for input wider than the matrix")
		}
	}()
	Mul(0b1000, []uint32{0b1, 0b1, 0b1})
}

func TestMulSystematic(t *testing.T) {
	rows := []uint32{0b11, 0b01}
	actual := MulSystematic(0b10, rows, 2)
	if actual != 0b1011 {
		t.Fatalf("expected %04b but found %04b", 0b1011, actual)
	}
}

func TestDense(t *testing.T) {
	m := Dense([]uint32{0b101, 0b010}, 3)
	rows, cols := m.Dims()
	if rows != 2 || cols != 3 {
		t.Fatalf("expected 2x3 but found %vx%v", rows, cols)
	}

	expected := [][]int{{1, 0, 1}, {0, 1, 0}}
	for r := 0; r < rows; r++ {
		row := m.Row(r)
		for c := 0; c < cols; c++ {
			if row.At(c) != expected[r][c] {
				t.Fatalf("expected %v at (%v,%v) but found %v", expected[r][c], r, c, row.At(c))
			}
		}
	}
}

func TestOrthogonal(t *testing.T) {
	// (3,1) repetition code
	G := Dense([]uint32{0b111}, 3)
	H := Dense([]uint32{0b110, 0b011}, 3)

	if !Orthogonal(G, H) {
		t.Fatalf("expected repetition code G and H to be orthogonal")
	}

	bad := Dense([]uint32{0b100}, 3)
	if Orthogonal(bad, H) {
		t.Fatalf("expected non-dual matrices to fail")
	}
}
