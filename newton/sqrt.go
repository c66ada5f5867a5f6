package newton

import "github.com/avendel/qfx/fixp"
import "github.com/avendel/qfx/fxbits"
import "github.com/avendel/qfx/internal/fxpolicy"

// 1/sqrt(2) in Q30, folded into the result once when the input's
// binary exponent is odd.
const invSqrt2Q30 = 759250125

// Returns 1/sqrt(x) in Q16.16. Inputs x <= 0 saturate to [fixp.MaxQ16]
// rather than faulting, mirroring how division by zero is handled.
//
// The input splits into mantissa and exponent via CLZ, the mantissa's
// inverse root is solved in Q30 with the division-free iteration
// y' = y*(3 - m*y*y)/2, and the halved exponent shifts the result
// into place. The final narrowing honors the rounding policy.
func InvSqrt(x fixp.Q16) fixp.Q16 {
	if x <= 0 { return fixp.MaxQ16 }
	msb := fxbits.Len32(uint32(x)) - 1
	exp := msb - 16
	m := uint32(x) << uint(30-msb) // mantissa in [1, 2), Q30

	// linear seed 1.3561 - 0.3877*m, within 18% everywhere; each
	// iteration then better than squares the remaining error
	y := uint32(1456106542 - uint64(m)*397>>10)
	for i := 0; i < invSqrtIterations; i++ {
		t := mulShift(m, y, 30)
		t = mulShift(t, y, 30) // m*y*y, approaching 1 from below
		y = mulShift(y, 3<<30-t, 31)
	}

	if exp&1 != 0 {
		y = mulShift(y, invSqrt2Q30, 30)
		exp--
	}
	sh := uint(14 + exp>>1) // in [6, 21], so never a left shift
	return fixp.Q16(int32(fxpolicy.RoundShiftMag(uint64(y), sh, false)))
}

// Returns sqrt(x) in Q16.16, computed as x*InvSqrt(x) with a single
// widened multiply. Inputs x <= 0 return 0.
func Sqrt(x fixp.Q16) fixp.Q16 {
	if x <= 0 { return 0 }
	y := InvSqrt(x)
	hi, lo := fxbits.Mul32(uint32(x), uint32(y))
	mag := uint64(hi)<<16 | uint64(lo)>>16
	if fxpolicy.RoundBump(uint64(lo)&0xFFFF, 1<<16, false) { mag++ }
	return fixp.Q16(int32(mag)) // bounded by sqrt(32768) in Q16, fits easily
}
