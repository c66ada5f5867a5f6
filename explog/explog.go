// explog implements the base-e exponential and natural logarithm for
// the flagship Q16.16 format. Both run on the same plan: pull the
// power-of-two part of the answer out with integer shifts, so that
// the polynomial only ever sees a small fixed interval where a
// handful of terms is plenty.
//
// Exp splits x into k*ln(2) + r with |r| <= ln(2)/2 and evaluates a
// four-term Taylor polynomial for exp(r); the 2^k part becomes the
// final shift. Ln normalizes x to a mantissa in [1, 2), feeds
// t = (m - 1)/(m + 1) through a short artanh series and adds the
// exponent back in ln(2) units. No floats and no tables are
// involved, so results are bit-identical across architectures.
//
// Worst case accuracy over the non-saturated range is about two
// parts in ten thousand plus one count of quantization, for both
// functions. That's plenty for gameplay math like easing curves,
// decay timers and pitch scaling; it is not a substitute for a
// double-precision libm.
package explog

import "github.com/avendel/qfx/fixp"
import "github.com/avendel/qfx/fxbits"
import "github.com/avendel/qfx/internal/fxpolicy"

// 1/ln(2) in 2.30 fixed point, rounded to nearest. Used to split
// inputs into a power-of-two exponent and a small remainder.
const invLn2Q30 = 1549082005

// ln(2) in 1.31 fixed point, the remainder step matching invLn2Q30.
// Both reduction constants derive from the 2.62 master [fixp.Ln2Q62];
// the tests assert the agreement.
const ln2Q31 = 1488522236

// Exp computes e raised to x. Results past the top of the format
// saturate to [fixp.MaxQ16], starting around x = 10.4 where the true
// exponential outgrows 32768. That saturation is domain semantics
// rather than overflow policy, so even a trapping build keeps it a
// quiet clamp, same as the infinity pins of [Ln] and division by
// zero. Below about x = -11.8 the nearest representable value is
// zero, and zero is what you get.
//
// Powers of two come out exact: Exp of any small multiple of
// [fixp.Ln2Q16] lands exactly on the matching power of two.
func Exp(x fixp.Q16) fixp.Q16 {
	// split x = k*ln(2) + r, rounding k to nearest so that the
	// remainder never exceeds ln(2)/2 in magnitude
	k := int((int64(x)*invLn2Q30 + 1<<45) >> 46)
	if k >= 16 { return fixp.MaxQ16 }
	if k <= -18 { return 0 }
	r := int64(x)<<15 - int64(k)*ln2Q31 // Q31

	// exp(r) through four Taylor terms in Horner form, all in Q31.
	// The coefficients are 1/24, 1/6, 1/2, 1 and 1. Every partial
	// stays strictly positive, as r can't reach -1.
	p := int64(89478485)
	p = (p*r)>>31 + 357913941
	p = (p*r)>>31 + 1073741824
	p = (p*r)>>31 + 2147483648
	p = (p*r)>>31 + 2147483648

	// fold 2^k into the Q31 to Q16 renormalization. The window
	// checks keep the shift within [0, 32], never negative.
	out := int64(fxpolicy.RoundShiftMag(uint64(p), uint(15-k), false))
	if out > int64(fixp.MaxQ16) { return fixp.MaxQ16 }
	return fixp.Q16(out)
}

// Ln computes the natural logarithm of x. Zero and negative inputs
// have no real answer and pin to [fixp.MinQ16], the kernel's stand-in
// for minus infinity. Powers of two come out exact: Ln of 2^n lands
// exactly on n times [fixp.Ln2Q16] for any n the format can hold.
func Ln(x fixp.Q16) fixp.Q16 {
	if x <= 0 { return fixp.MinQ16 }

	// normalize to a mantissa m in [1, 2) as Q30 plus an exponent
	msb := fxbits.Len32(uint32(x)) - 1
	e := msb - 16
	m := uint64(x) << uint(30-msb)

	// t = (m - 1)/(m + 1) in Q30, always inside [0, 1/3). The long
	// division runs through fxbits so that every backend produces
	// the same bits.
	t := fxbits.Div64(0, (m-1<<30)<<30, m+1<<30)

	// ln(m) = 2t * (1 + t^2/3 + t^4/5), evaluated in Q30. The final
	// shift by 29 instead of 30 is the doubling.
	t2 := (t * t) >> 30
	t4 := (t2 * t2) >> 30
	term := 1<<30 + (t2*357913941)>>30 + (t4*214748365)>>30
	lnm := (t * term) >> 29

	// stitch exponent and mantissa back together in Q16.16. The sum
	// is bounded by the log of the format range, it always fits.
	out := int64(fxpolicy.RoundShiftMag(lnm, 14, false)) + int64(e)*int64(fixp.Ln2Q16)
	return fixp.Q16(out)
}
