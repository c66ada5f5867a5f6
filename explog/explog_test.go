package explog

import "math"
import "testing"

import "github.com/avendel/qfx/fixp"
import "github.com/avendel/qfx/fxbits"

func TestConstantAgreement(t *testing.T) {
	if fixp.ConstFrac(fixp.Ln2Q62, 31) != ln2Q31 {
		t.Fatal("ln2Q31 out of sync with the master constant")
	}
	if fixp.Q16(fixp.ConstFrac(fixp.Ln2Q62, 16)) != fixp.Ln2Q16 {
		t.Fatal("fixp.Ln2Q16 out of sync with the master constant")
	}

	// invLn2Q30 must equal round(2^92/Ln2Q62). The remainder of the
	// floor division comes back through wrapping arithmetic, as 2^92
	// is zero mod 2^64.
	q := fxbits.Div64(1<<28, 0, fixp.Ln2Q62)
	rem := -(q * fixp.Ln2Q62)
	if rem >= fixp.Ln2Q62-rem { q++ }
	if q != invLn2Q30 {
		str := "expected invLn2Q30 == %d, but the master constant gives %d"
		t.Fatalf(str, invLn2Q30, q)
	}
}

func TestExpExact(t *testing.T) {
	tests := []struct {
		in  fixp.Q16
		out fixp.Q16
	}{
		{0, fixp.OneQ16},
		{fixp.Ln2Q16, 131072},  // exp(ln 2) == 2
		{-fixp.Ln2Q16, 32768},  // exp(-ln 2) == 0.5
		{fixp.OneQ16, 178142},  // e, three counts shy of fixp.EQ16
		{-fixp.OneQ16, 24110},
		{fixp.HalfQ16, 108051},
		{-fixp.HalfQ16, 39750},
		{131072, 484249},
		{262144, 3578148},
		{655360, 1443505104},
		{704104, fixp.MaxQ16}, // biggest input the reduction window accepts
		{704105, fixp.MaxQ16}, // smallest input it rejects
		{fixp.MaxQ16, fixp.MaxQ16},
		{-720896, 1},
		{-655360, 3},
		{-794956, 0}, // computed path rounding down to zero
		{-794957, 0}, // reduction window cutoff
		{fixp.MinQ16, 0},
	}

	for i, test := range tests {
		out := Exp(test.in)
		if out != test.out {
			str := "test #%d: expected Exp(%d) == %d, but got %d"
			t.Fatalf(str, i, test.in, test.out, out)
		}
	}
}

func TestLnExact(t *testing.T) {
	tests := []struct {
		in  fixp.Q16
		out fixp.Q16
	}{
		{0, fixp.MinQ16},
		{-327680, fixp.MinQ16},
		{fixp.MinQ16, fixp.MinQ16},
		{1, -726816}, // log of the smallest positive value
		{2, -681390}, // exactly ln(2) above the previous row
		{fixp.OneQ16, 0},
		{fixp.HalfQ16, -fixp.Ln2Q16},
		{131072, fixp.Ln2Q16},
		{262144, 2 * fixp.Ln2Q16},
		{fixp.Ln2Q16, -24020},
		{6553600, 301803}, // ln(100)
		{fixp.MaxQ16, 681381},
	}

	for i, test := range tests {
		out := Ln(test.in)
		if out != test.out {
			str := "test #%d: expected Ln(%d) == %d, but got %d"
			t.Fatalf(str, i, test.in, test.out, out)
		}
	}
}

func TestExpLnInverse(t *testing.T) {
	// on doublings of one the round trip is exact or one count off
	doublings := []struct {
		in  fixp.Q16
		out fixp.Q16
	}{
		{fixp.HalfQ16, 32768},
		{fixp.OneQ16, 65536},
		{131072, 131072},
		{262144, 262143},
	}
	for i, test := range doublings {
		out := Exp(Ln(test.in))
		if out != test.out {
			str := "test #%d: expected Exp(Ln(%d)) == %d, but got %d"
			t.Fatalf(str, i, test.in, test.out, out)
		}
	}

	// elsewhere the round trip error scales with the log quantization
	for x := int64(1); x <= int64(fixp.MaxQ16); x += 99991 {
		back := int64(Exp(Ln(fixp.Q16(x))))
		diff := float64(back - x)
		if math.Abs(diff) > 1.0+float64(x)*0.0004 {
			str := "round trip Exp(Ln(%d)) == %d drifted too far"
			t.Fatalf(str, x, back)
		}
	}

	// the other direction, away from the underflow region
	for x := int64(-131072); x <= 655360; x += 997 {
		back := int64(Ln(Exp(fixp.Q16(x))))
		if back-x > 16 || x-back > 16 {
			str := "round trip Ln(Exp(%d)) == %d drifted too far"
			t.Fatalf(str, x, back)
		}
	}
}

func TestExpContract(t *testing.T) {
	for x := int64(-794956); x <= 704104; x += 9973 {
		want := math.Exp(float64(x)/65536.0) * 65536.0
		if want > float64(fixp.MaxQ16) { continue }
		got := float64(Exp(fixp.Q16(x)))
		if math.Abs(got-want) > 1.0+want*0.0002 {
			str := "expected Exp(%d) ~= %f, but got %f"
			t.Fatalf(str, x, want, got)
		}
	}
}

func TestLnContract(t *testing.T) {
	for x := int64(1); x <= int64(fixp.MaxQ16); x += 999983 {
		want := math.Log(float64(x)/65536.0) * 65536.0
		got := float64(Ln(fixp.Q16(x)))
		if math.Abs(got-want) > 16.0 {
			str := "expected Ln(%d) ~= %f, but got %f"
			t.Fatalf(str, x, want, got)
		}
	}
}
