//go:build fxportable

package fxbits

// Number of bits required to represent x. Len32(0) == 0.
func Len32(x uint32) int { return deBruijnLen32(x) }

// Number of bits required to represent x. Len64(0) == 0.
func Len64(x uint64) int { return deBruijnLen64(x) }

// Count of leading zero bits. Nlz32(0) == 32.
func Nlz32(x uint32) int { return 32 - deBruijnLen32(x) }

// Count of leading zero bits. Nlz64(0) == 64.
func Nlz64(x uint64) int { return 64 - deBruijnLen64(x) }

// Full 32x32 -> 64 multiplication, returned as high and low words.
func Mul32(a, b uint32) (hi, lo uint32) { return splitMul32(a, b) }

// Full 64x64 -> 128 multiplication, returned as high and low words.
func Mul64(a, b uint64) (hi, lo uint64) { return limbMul64(a, b) }

// Quotient of the 128-bit value hi:lo divided by d. Quotient
// overflow and division by zero saturate to the maximum uint64.
func Div64(hi, lo, d uint64) uint64 {
	if hi >= d { return ^uint64(0) } // covers d == 0 too
	return knuthDiv64(hi, lo, d)
}
