// newton implements the Newton-Raphson solvers of the kernel: an
// exact 32-bit integer reciprocal, an inverse square root and square
// root pair in Q16.16, and a fast Q16.16 division built on the
// reciprocal. Everything runs on integer registers with fixed
// iteration counts, so results are bit-identical across platforms
// and replay-safe like the rest of the kernel.
//
// Newton-Raphson roughly doubles the correct digits of an estimate
// per step. Starting from a linear seed accurate to a few percent,
// three iterations push the error beyond the output precision, and
// where an exact result is required a final fixup (compare and
// subtract, never a division) pins the value to the true floor.
package newton

import "github.com/avendel/qfx/fxbits"

// Fixed iteration counts. Not worth raising: convergence already
// exceeds the output precision of every solver below.
const (
	recipIterations = 3
	invSqrtIterations = 3
)

// The classic reciprocal seed 48/17 - 32/17*v, in Q2.62. Over
// v in [0.5, 1) its relative error stays below 1/17, which the
// quadratic iterations then square down to nothing.
const (
	recipSeedC1 uint64 = 13021231110853801984
	recipSeedC2 uint64 = 8680820740569200640
)

// High word of a full 64x64 multiplication, through fxbits so that
// the fxportable backend serves builds without a wide multiplier.
func mulHi(a, b uint64) uint64 {
	hi, _ := fxbits.Mul64(a, b)
	return hi
}

// Widened 32x32 multiply followed by a truncating right shift. The
// caller guarantees the shifted product fits back in 32 bits.
func mulShift(a, b uint32, shift uint) uint32 {
	hi, lo := fxbits.Mul32(a, b)
	return hi<<(32-shift) | lo>>shift
}

// Computes the Q2.62 reciprocal of x normalized into [0.5, 1),
// returning it along with the normalization shift. Requires x >= 2.
// After the fixed iterations the estimate sits within an ulp or two
// of the true reciprocal, always from below.
func recipNorm(x uint32) (uint64, int) {
	lz := fxbits.Nlz32(x)
	v := (uint64(x) << lz) << 30 // normalized mantissa in [0.5, 1), Q62
	e := recipSeedC1 - mulHi(recipSeedC2, v)<<2
	for i := 0; i < recipIterations; i++ {
		t := mulHi(v, e) << 2 // v*e, approaching 1 from below
		e = mulHi(e, (2<<62)-t) << 2
	}
	return e, lz
}

// Returns floor(2^32 / x) for x >= 2; the degenerate inputs 0 and 1
// saturate to the maximum uint32. The result is exact: after the
// Newton-Raphson iterations a remainder comparison nudges the
// estimate onto the true floor, so no division instruction is ever
// involved.
func Recip32(x uint32) uint32 {
	if x < 2 { return 0xFFFFFFFF }
	e, lz := recipNorm(x)
	quot := e >> (62 - lz)
	for quot*uint64(x) > 1<<32 { quot-- }
	for (quot+1)*uint64(x) <= 1<<32 { quot++ }
	return uint32(quot)
}
