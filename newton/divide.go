package newton

import "github.com/avendel/qfx/fixp"
import "github.com/avendel/qfx/internal/fxpolicy"

// Divides two Q16.16 values through the reciprocal solver instead of
// the hardware divider. The widened numerator multiplies the Q2.62
// normalized reciprocal of the denominator, a remainder comparison
// pins the quotient to the exact floor, and the discarded remainder
// then resolves through the rounding policy. The result is
// bit-identical to [fixp.Q16.Div] under every policy combination.
//
// Division by zero returns the saturated extreme matching the sign
// of the dividend, same as everywhere else in the kernel.
func Div(a, b fixp.Q16) fixp.Q16 {
	if b == 0 {
		if a < 0 { return fixp.MinQ16 }
		return fixp.MaxQ16
	}
	magA, negA := fxpolicy.MagOf(int64(a))
	magB, negB := fxpolicy.MagOf(int64(b))
	neg := negA != negB
	if magA == 0 { return 0 }

	num := magA << 16
	var quot uint64
	if magB == 1 {
		quot = num
	} else {
		e, lz := recipNorm(uint32(magB))
		quot = mulHi(num, e) >> uint(30-lz)
		for quot*magB > num { quot-- }
		for (quot+1)*magB <= num { quot++ }
		if fxpolicy.RoundBump(num-quot*magB, magB, neg) { quot++ }
	}
	return fixp.Q16(fxpolicy.CapI32(fxpolicy.SignBack(quot, neg)))
}
