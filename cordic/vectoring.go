package cordic

import "github.com/avendel/qfx/angle"
import "github.com/avendel/qfx/fixp"
import "github.com/avendel/qfx/fxbits"
import "github.com/avendel/qfx/internal/fxpolicy"

// Returns the angle of the vector (x, y) measured counterclockwise
// from the positive x axis, in (-180°, 180°] like math.Atan2, but as
// a brad16. The argument order also follows math.Atan2: y first.
//
// Defined for every input, including both coordinates zero (which
// returns angle 0 rather than faulting).
func Atan2(y, x fixp.Q16) angle.Brad16 {
	a, _ := Polar(y, x)
	return a
}

// Converts the vector (x, y) to polar form, returning its angle (as
// [Atan2] would) and its magnitude in the same Q16.16 scale as the
// inputs. Magnitudes that exceed the format resolve through the
// overflow policy.
//
// Inputs on the axes resolve exactly. Everything else runs the
// CORDIC loop in vectoring mode: the vector is mirrored into the
// right half-plane (a quarter-turn basis swap when x < 0, a sign
// flip when y < 0), rotated step by step onto the x axis while the
// applied micro-angles accumulate, and whatever length survives on
// the x axis is the magnitude scaled by the CORDIC gain. Small
// vectors are lifted up to bit 28 first so the deep shifts of the
// later iterations keep their precision.
func Polar(y, x fixp.Q16) (angle.Brad16, fixp.Q16) {
	if y == 0 {
		if x >= 0 { return 0, x }
		return angle.HalfTurnBrad16, fixp.Q16(fxpolicy.CapI32(-int64(x)))
	}
	if x == 0 {
		if y > 0 { return angle.RightBrad16, y }
		return -angle.RightBrad16, fixp.Q16(fxpolicy.CapI32(-int64(y)))
	}

	// int64 registers so the extreme int32 magnitudes can't wrap
	xi, yi := int64(x), int64(y)
	negY := false
	if yi < 0 { yi = -yi; negY = true }
	z := int32(0)
	if xi < 0 { xi, yi = yi, -xi; z = 0x4000 }

	m := xi
	if yi > m { m = yi }
	up := fxbits.Nlz32(uint32(m)) - 3 // lift the larger component to bit 28
	if up > 0 {
		xi <<= uint(up)
		yi <<= uint(up)
	} else {
		up = 0
	}

	for i := 0; i < Iterations; i++ {
		if yi > 0 {
			xi, yi = xi + yi>>i, yi - xi>>i
			z += atanTable[i]
		} else {
			xi, yi = xi - yi>>i, yi + xi>>i
			z -= atanTable[i]
		}
	}

	mag := fxpolicy.RoundShiftMag(uint64(xi)*invGainQ30, uint(30+up), false)
	a := angle.Brad16(z) // the int16 conversion is the modular wrap
	if negY { a = -a }
	return a, fixp.Q16(fxpolicy.CapI32(int64(mag)))
}
