package fixp

import "testing"
import "math"

func TestQ16FromInt(t *testing.T) {
	tests := []struct {
		in  int
		out Q16
	}{
		{0, 0}, {1, 65536}, {-1, -65536}, {2, 131072},
		{32767, 0x7FFF0000}, {-32768, -0x80000000},
		{40000, MaxQ16}, {-40000, MinQ16}, // out of range resolves per policy
	}

	for i, test := range tests {
		out := Q16FromInt(test.in)
		if out != test.out {
			str := "test #%d: in %d expected %d, but got %d"
			t.Fatalf(str, i, test.in, test.out, out)
		}
	}
}

func TestQ16FromFloat64(t *testing.T) {
	tests := []struct {
		in  float64
		out Q16
	}{
		{0, 0}, {1, 65536}, {-1, -65536}, {0.5, 32768}, {-0.5, -32768},
		{1.5, 98304}, {0.25, 16384},
		{1.0 / 3.0, 21845},   // 21845.33 rounds down
		{-1.0 / 3.0, -21845},
		{3.0 / 131072.0, 2},  // exact tie, rounds away from zero
		{-3.0 / 131072.0, -2},
		{32767.99998474121, MaxQ16}, {-32768, MinQ16},
		{100000, MaxQ16}, {-100000, MinQ16},
		{math.Inf(+1), MaxQ16}, {math.Inf(-1), MinQ16},
		{math.NaN(), 0},
	}

	for i, test := range tests {
		out := Q16FromFloat64(test.in)
		if out != test.out {
			str := "test #%d: in %f expected %d, but got %d"
			t.Fatalf(str, i, test.in, test.out, out)
		}
	}
}

func TestQ16ToFloat64(t *testing.T) {
	tests := []struct {
		in  Q16
		out float64
	}{
		{0, 0}, {65536, 1}, {32768, 0.5}, {-32768, -0.5},
		{1, 1.0 / 65536.0}, {-1, -1.0 / 65536.0}, {98304, 1.5},
		{MinQ16, MinFloat64Q16}, {MaxQ16, MaxFloat64Q16},
	}

	for i, test := range tests {
		out := test.in.ToFloat64()
		if out != test.out {
			str := "test #%d: in %d expected out %f, but got %f"
			t.Fatalf(str, i, test.in, test.out, out)
		}
	}
}

func TestQ16ToInt(t *testing.T) {
	tests := []struct {
		in       Q16
		out      int
		outFloor int
	}{
		{0, 0, 0}, {65536, 1, 1}, {65537, 1, 1},
		{32768, 1, 0},   // .5 rounds away from zero
		{32767, 0, 0},
		{-32768, -1, -1}, {-32767, 0, -1}, {-65536, -1, -1},
		{98304, 2, 1}, {-98304, -2, -2},
	}

	for i, test := range tests {
		out := test.in.ToInt()
		if out != test.out {
			str := "test #%d: in %d expected %d, but got %d"
			t.Fatalf(str, i, test.in, test.out, out)
		}
		outFloor := test.in.ToIntFloor()
		if outFloor != test.outFloor {
			str := "test #%d: in %d expected floor %d, but got %d"
			t.Fatalf(str, i, test.in, test.outFloor, outFloor)
		}
	}
}

func TestQ16AddSub(t *testing.T) {
	tests := []struct {
		a, b Q16
		sum  Q16
		diff Q16
	}{
		{0, 0, 0, 0},
		{65536, 65536, 131072, 0},
		{65536, -32768, 32768, 98304},
		{MaxQ16, 1, MaxQ16, MaxQ16 - 1},   // saturating
		{MinQ16, -1, MinQ16, MinQ16 + 1},  // saturating
		{MaxQ16, MinQ16, -1, MaxQ16},
	}

	for i, test := range tests {
		sum := test.a.Add(test.b)
		if sum != test.sum {
			str := "test #%d: %d + %d expected %d, but got %d"
			t.Fatalf(str, i, test.a, test.b, test.sum, sum)
		}
		diff := test.a.Sub(test.b)
		if diff != test.diff {
			str := "test #%d: %d - %d expected %d, but got %d"
			t.Fatalf(str, i, test.a, test.b, test.diff, diff)
		}
	}
}

func TestQ16Mul(t *testing.T) {
	tests := []struct {
		a, b Q16
		out  Q16
	}{
		{0, 0, 0}, {65536, 65536, 65536}, {98304, 98304, 147456}, // 1.5*1.5 = 2.25
		{131072, 32768, 65536},  // 2 * 0.5
		{-131072, 32768, -65536},
		{-131072, -32768, 65536},
		{1, 1, 0},               // delta^2 rounds to zero
		{32768, 1, 1},           // half a delta rounds away
		{-32768, 1, -1},
		{MaxQ16, 131072, MaxQ16}, // overflow saturates
		{MinQ16, 131072, MinQ16},
		{MinQ16, -65536, MaxQ16}, // -min saturates
	}

	for i, test := range tests {
		out := test.a.Mul(test.b)
		if out != test.out {
			str := "test #%d: %d * %d expected %d, but got %d"
			t.Fatalf(str, i, test.a, test.b, test.out, out)
		}
	}
}

func TestQ16Div(t *testing.T) {
	tests := []struct {
		a, b Q16
		out  Q16
	}{
		{65536, 65536, 65536},
		{131072, 65536, 131072},
		{65536, 131072, 32768},
		{65536, 196608, 21845},   // 1/3
		{-65536, 196608, -21845},
		{65536, -196608, -21845},
		{-65536, -196608, 21845},
		{98304, 32768, 196608},   // 1.5 / 0.5 = 3
		{5 << 16, 0, MaxQ16},     // division by zero
		{-5 << 16, 0, MinQ16},
		{0, 0, MaxQ16},
		{MaxQ16, 32768, MaxQ16},  // quotient overflow saturates
		{MinQ16, 32768, MinQ16},
	}

	for i, test := range tests {
		out := test.a.Div(test.b)
		if out != test.out {
			str := "test #%d: %d / %d expected %d, but got %d"
			t.Fatalf(str, i, test.a, test.b, test.out, out)
		}
	}
}

func TestQ16NegAbs(t *testing.T) {
	tests := []struct {
		in  Q16
		neg Q16
		abs Q16
	}{
		{0, 0, 0}, {65536, -65536, 65536}, {-65536, 65536, 65536},
		{1, -1, 1}, {-1, 1, 1},
		{MaxQ16, -MaxQ16, MaxQ16},
		{MinQ16, MaxQ16, MaxQ16}, // -min is unrepresentable, saturates
	}

	for i, test := range tests {
		if out := test.in.Neg(); out != test.neg {
			str := "test #%d: neg(%d) expected %d, but got %d"
			t.Fatalf(str, i, test.in, test.neg, out)
		}
		if out := test.in.Abs(); out != test.abs {
			str := "test #%d: abs(%d) expected %d, but got %d"
			t.Fatalf(str, i, test.in, test.abs, out)
		}
	}
}

func TestQ16Parts(t *testing.T) {
	tests := []struct {
		in      Q16
		whole   bool
		fract   Q16
		floor   Q16
		ceil    Q16
	}{
		{0, true, 0, 0, 0},
		{65536, true, 0, 65536, 65536},
		{98304, false, 32768, 65536, 131072},
		{-98304, false, -32768, -131072, -65536},
		{-65536, true, 0, -65536, -65536},
		{1, false, 1, 0, 65536},
		{-1, false, -1, -65536, 0},
	}

	for i, test := range tests {
		if out := test.in.IsWhole(); out != test.whole {
			str := "test #%d: IsWhole(%d) expected %t, but got %t"
			t.Fatalf(str, i, test.in, test.whole, out)
		}
		if out := test.in.Fract(); out != test.fract {
			str := "test #%d: Fract(%d) expected %d, but got %d"
			t.Fatalf(str, i, test.in, test.fract, out)
		}
		if out := test.in.Floor(); out != test.floor {
			str := "test #%d: Floor(%d) expected %d, but got %d"
			t.Fatalf(str, i, test.in, test.floor, out)
		}
		if out := test.in.Ceil(); out != test.ceil {
			str := "test #%d: Ceil(%d) expected %d, but got %d"
			t.Fatalf(str, i, test.in, test.ceil, out)
		}
	}
}
