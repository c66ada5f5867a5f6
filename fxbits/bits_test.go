package fxbits

import "testing"

func TestLen32(t *testing.T) {
	tests := []struct {
		in  uint32
		out int
	}{
		{0, 0}, {1, 1}, {2, 2}, {3, 2}, {4, 3}, {7, 3}, {8, 4},
		{0xFFFF, 16}, {0x10000, 17}, {0x7FFFFFFF, 31},
		{0x80000000, 32}, {0xFFFFFFFF, 32},
	}

	for i, test := range tests {
		out := Len32(test.in)
		if out != test.out {
			str := "test #%d: in 0x%X expected len %d, but got %d"
			t.Fatalf(str, i, test.in, test.out, out)
		}
		if Nlz32(test.in) != 32-test.out {
			str := "test #%d: in 0x%X expected nlz %d, but got %d"
			t.Fatalf(str, i, test.in, 32-test.out, Nlz32(test.in))
		}
	}
}

func TestLen64(t *testing.T) {
	tests := []struct {
		in  uint64
		out int
	}{
		{0, 0}, {1, 1}, {0xFFFFFFFF, 32}, {0x100000000, 33},
		{1 << 62, 63}, {1<<63 - 1, 63}, {1 << 63, 64}, {^uint64(0), 64},
	}

	for i, test := range tests {
		out := Len64(test.in)
		if out != test.out {
			str := "test #%d: in 0x%X expected len %d, but got %d"
			t.Fatalf(str, i, test.in, test.out, out)
		}
	}
}

// The de Bruijn path must agree with the public functions bit for bit,
// whichever backend those are bound to.
func TestDeBruijnCross(t *testing.T) {
	for shift := 0; shift < 32; shift++ {
		samples := []uint32{1 << shift, 1<<shift - 1, 1<<shift + 1, 1<<shift | 1}
		for _, value := range samples {
			if deBruijnLen32(value) != Len32(value) {
				str := "value 0x%X: de Bruijn len %d != backend len %d"
				t.Fatalf(str, value, deBruijnLen32(value), Len32(value))
			}
		}
	}

	// dense strided sweep
	for value := uint32(0); value < 0xFFFF0000; value += 0x10741 {
		if deBruijnLen32(value) != Len32(value) {
			str := "value 0x%X: de Bruijn len %d != backend len %d"
			t.Fatalf(str, value, deBruijnLen32(value), Len32(value))
		}
	}
}

func TestSplitMul32Cross(t *testing.T) {
	samples := []uint32{0, 1, 2, 0xFFFF, 0x10000, 0x10001, 0x7FFFFFFF, 0x80000000, 0xFFFFFFFF}
	for _, a := range samples {
		for _, b := range samples {
			shi, slo := splitMul32(a, b)
			bhi, blo := Mul32(a, b)
			if shi != bhi || slo != blo {
				str := "0x%X * 0x%X: split got (0x%X, 0x%X), backend got (0x%X, 0x%X)"
				t.Fatalf(str, a, b, shi, slo, bhi, blo)
			}
		}
	}

	for a := uint32(1); a < 0xF0000000; a += 0x9E3779B1 / 13 {
		b := a ^ 0xA5A5A5A5
		shi, slo := splitMul32(a, b)
		bhi, blo := Mul32(a, b)
		if shi != bhi || slo != blo {
			str := "0x%X * 0x%X: split (0x%X, 0x%X) != backend (0x%X, 0x%X)"
			t.Fatalf(str, a, b, shi, slo, bhi, blo)
		}
	}
}

func TestLimbMul64Cross(t *testing.T) {
	samples := []uint64{0, 1, 0xFFFFFFFF, 0x100000000, 1<<63 - 1, 1 << 63, ^uint64(0)}
	for _, a := range samples {
		for _, b := range samples {
			lhi, llo := limbMul64(a, b)
			bhi, blo := Mul64(a, b)
			if lhi != bhi || llo != blo {
				str := "0x%X * 0x%X: limbs (0x%X, 0x%X) != backend (0x%X, 0x%X)"
				t.Fatalf(str, a, b, lhi, llo, bhi, blo)
			}
		}
	}
}

func TestDiv64(t *testing.T) {
	tests := []struct {
		hi, lo, d uint64
		out       uint64
	}{
		{0, 100, 10, 10},
		{0, 1 << 32, 2, 1 << 31},
		{0, ^uint64(0), 1, ^uint64(0)},
		{1, 0, 2, 1 << 63},
		{0x7FFF, 0, 0x10000, 0x7FFF000000000000},
		{0, 5, 0, ^uint64(0)}, // division by zero saturates
		{7, 0, 7, ^uint64(0)}, // quotient overflow saturates
		{8, 0, 7, ^uint64(0)}, // quotient overflow saturates
	}

	for i, test := range tests {
		out := Div64(test.hi, test.lo, test.d)
		if out != test.out {
			str := "test #%d: (0x%X:0x%X)/0x%X expected 0x%X, but got 0x%X"
			t.Fatalf(str, i, test.hi, test.lo, test.d, test.out, out)
		}
	}
}

func TestKnuthDiv64Cross(t *testing.T) {
	seed := uint64(0x9E3779B97F4A7C15)
	next := func() uint64 { // xorshift, fixed seed, fully reproducible
		seed ^= seed << 13
		seed ^= seed >> 7
		seed ^= seed << 17
		return seed
	}

	for i := 0; i < 20000; i++ {
		d := next() | 1
		hi := next() % d
		lo := next()
		knuth := knuthDiv64(hi, lo, d)
		backend := Div64(hi, lo, d)
		if knuth != backend {
			str := "case #%d: (0x%X:0x%X)/0x%X knuth 0x%X != backend 0x%X"
			t.Fatalf(str, i, hi, lo, d, knuth, backend)
		}
	}
}
