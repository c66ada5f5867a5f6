package fixp

import "math"

import "github.com/avendel/qfx/fxbits"

// Fixed point type with a 31.32 split, the widest format of the
// family. The extra range and resolution make it the natural choice
// for accumulated quantities (world coordinates, elapsed simulation
// time) where Q16 error would build up call after call.
//
// Products and quotients stage through 128 bits via [fxbits.Mul64]
// and [fxbits.Div64], so results stay exact before the final policy
// rounding even at the extremes.
type Q32 int64

// Converts an int to its Q32 representation.
func Q32FromInt(value int) Q32 {
	mag, neg := magOf(int64(value))
	return Q32(capI64(mag<<32, neg, mag >= 1<<32))
}

// Converts a float64 to the nearest Q32, resolving ties through the
// rounding policy. NaN converts to zero. Note that float64 can't
// distinguish every Q32 value: above 2^21 or so its own resolution
// is already coarser than 2^-32.
func Q32FromFloat64(value float64) Q32 {
	if math.IsNaN(value) { return 0 }
	neg := value < 0
	mag := math.Abs(value) * 4294967296.0
	if neg && mag == 9223372036854775808.0 { return MinQ32 } // exactly representable
	if mag >= 9223372036854775808.0 {
		return Q32(capI64(1<<63-1, neg, true))
	}
	whole := math.Floor(mag)
	if roundBumpFloat(mag-whole, neg) { whole += 1 }
	return Q32(capI64(uint64(whole), neg, false))
}

func (self Q32) IsWhole() bool {
	return self & 0xFFFFFFFF == 0
}

func (self Q32) Fract() Q32 {
	return self % (1 << 32)
}

func (self Q32) ToFloat64() float64 {
	return float64(self)/4294967296.0
}

// Defaults to the compiled rounding policy. For the fastest possible
// conversion to int, use [Q32.ToIntFloor]() instead.
func (self Q32) ToInt() int {
	mag, neg := magOf(int64(self))
	return int(signBack(roundShiftMag(mag, 32, neg), neg))
}

// Fastest conversion from Q32 to int.
func (self Q32) ToIntFloor() int {
	return int(self >> 32)
}

func (self Q32) Add(other Q32) Q32 {
	return Q32(capAdd64(int64(self), int64(other)))
}

func (self Q32) Sub(other Q32) Q32 {
	return Q32(capSub64(int64(self), int64(other)))
}

// Multiplies two Q32 values through an exact 128-bit product.
func (self Q32) Mul(other Q32) Q32 {
	aMag, aNeg := magOf(int64(self))
	bMag, bNeg := magOf(int64(other))
	neg := aNeg != bNeg
	hi, lo := fxbits.Mul64(aMag, bMag)
	over := hi>>32 != 0
	mag := hi<<32 | lo>>32
	if roundBump(lo&0xFFFFFFFF, 1<<32, neg) {
		mag++
		if mag == 0 { over = true } // bump wrapped past 2^64
	}
	return Q32(capI64(mag, neg, over))
}

// Divides two Q32 values. Division by zero returns the saturated
// extreme matching the sign of the dividend, under every policy.
func (self Q32) Div(other Q32) Q32 {
	if other == 0 {
		if self < 0 { return MinQ32 }
		return MaxQ32
	}
	numMag, numNeg := magOf(int64(self))
	denMag, denNeg := magOf(int64(other))
	neg := numNeg != denNeg
	hi := numMag >> 32
	lo := numMag << 32
	if hi >= denMag { return Q32(capI64(0, neg, true)) } // quotient beyond 64 bits
	quot := fxbits.Div64(hi, lo, denMag)
	rem := lo - quot*denMag // exact: both sides agree modulo 2^64
	if roundBump(rem, denMag, neg) {
		quot++
		if quot == 0 { return Q32(capI64(0, neg, true)) }
	}
	return Q32(capI64(quot, neg, false))
}

func (self Q32) Abs() Q32 {
	if self >= 0 { return self }
	return self.Neg()
}

// Negates the value. Note that the minimum Q32 has no positive
// counterpart, so negating it is resolved by the overflow policy.
func (self Q32) Neg() Q32 {
	mag, neg := magOf(int64(self))
	return Q32(capI64(mag, !neg, false))
}
