// cordic implements the trigonometric engine of the kernel with the
// classic shift-and-add algorithm: every iteration rotates a working
// vector by a fixed micro-angle from a small table, using only shifts,
// additions and a single gain-correction multiply at the end. Sine,
// cosine, atan2 and vector magnitude all come out of that same loop,
// with no float, no division and no large lookup tables involved.
//
// Angles are brads (see the angle package). Rotation outputs are
// Q1.15, vectoring outputs are Q16.16. With sixteen iterations the
// worst sin/cos error across a full turn stays under 0.0004 and the
// worst angle error under 0.02 degrees, both far inside the
// documented 0.005 and one degree contracts.
package cordic

import "github.com/avendel/qfx/angle"
import "github.com/avendel/qfx/fixp"
import "github.com/avendel/qfx/fxbits"
import "github.com/avendel/qfx/internal/fxpolicy"

// Number of micro-rotations per call. Raising it stops paying off
// quickly: each iteration adds roughly one bit of angular resolution,
// and past sixteen the Q1.15 output quantization dominates anyway.
const Iterations = 16

// atan(2^-i) for each iteration, in brad16 units, rounded to nearest.
// Must hold exactly [Iterations] entries.
var atanTable = [Iterations]int32{
	8192, 4836, 2555, 1297, 651, 326, 163, 81,
	41, 20, 10, 5, 3, 1, 1, 0,
}

// Reciprocal of the accumulated rotation gain K = prod sqrt(1+2^-2i)
// ~ 1.64676, in Q30. Every pass through the loop stretches the vector
// by K, so one multiply by 1/K at the end restores true magnitudes.
const invGainQ30 = 652032874

// Clamps a rounded result to Q15 storage. This is format semantics
// rather than overflow policy: the true values +1.0 and -1.0 sit
// exactly on the Q15 borders, and wrapping them under fxwrap would
// corrupt every trig identity downstream, so the borders always
// clamp. Note that -1.0 is representable and comes through exact.
func satQ15(v int64) fixp.Q15 {
	if v > 32767 { return fixp.MaxQ15 }
	if v < -32768 { return fixp.MinQ15 }
	return fixp.Q15(v)
}

// The gain-correction multiply, narrowing a Q2.29 working register to
// a rounded Q15 value. Q29 times Q30 makes Q59; dropping 44 bits
// leaves Q15, with the dropped bits resolved by the rounding policy.
func gainNarrow(reg int32) int64 {
	mag, neg := fxpolicy.MagOf(int64(reg))
	hi, lo := fxbits.Mul32(uint32(mag), invGainQ30)
	wide := uint64(hi)<<32 | uint64(lo)
	return fxpolicy.SignBack(fxpolicy.RoundShiftMag(wide, 44, neg), neg)
}

// Returns the sine and cosine of the angle as Q1.15 values, computed
// together for the price of one rotation.
//
// The angle is first reduced to the first quadrant recording which
// signs to restore (sin(-a) = -sin(a), cos(180°-a) = -cos(a)), then
// the working vector (1, 0) in Q2.29 rotates through the iterations,
// steered at each step by the sign of the remaining angle.
func SinCos(a angle.Brad16) (sin, cos fixp.Q15) {
	z := int32(a)
	negSin, negCos := false, false
	if z < 0 { z = -z; negSin = true }
	if z >= 0x4000 { z = 0x8000 - z; negCos = true }

	x, y := int32(1<<29), int32(0)
	for i := 0; i < Iterations; i++ {
		if z >= 0 {
			x, y = x - y>>i, y + x>>i
			z -= atanTable[i]
		} else {
			x, y = x + y>>i, y - x>>i
			z += atanTable[i]
		}
	}

	s, c := gainNarrow(y), gainNarrow(x)
	if negSin { s = -s }
	if negCos { c = -c }
	return satQ15(s), satQ15(c)
}

// Returns the sine of the angle as a Q1.15 value. When both sine and
// cosine are needed, [SinCos] computes the pair for the same cost.
func Sin(a angle.Brad16) fixp.Q15 {
	sin, _ := SinCos(a)
	return sin
}

// Returns the cosine of the angle as a Q1.15 value. When both sine
// and cosine are needed, [SinCos] computes the pair for the same cost.
func Cos(a angle.Brad16) fixp.Q15 {
	_, cos := SinCos(a)
	return cos
}
