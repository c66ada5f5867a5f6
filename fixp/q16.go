package fixp

import "math"
import "strconv"

// Fixed point type to represent fractional values with a 15.16 split.
//
// 15 bits represent the integer part of the value, while the remaining
// 16 bits represent the decimal part (plus one bit for the sign). For
// an intuitive understanding, if you can understand that var ms Millis
// = 1000 is storing the equivalent to 1 second, with Q16, instead of
// thousandths of a value, you are storing 65536ths. So, var q Q16 =
// 65536 would mean 1.0, and 98304 would be 1.5.
//
// Q16 is the workhorse of the kernel: the Newton-Raphson solvers and
// the exponential/logarithm operate on it, and [Point] builds 2D
// coordinates from it. Every operation resolves out-of-range results
// through the compiled [OverflowPolicy] and discarded bits through
// the compiled [RoundingPolicy]; nothing is ever left undefined.
type Q16 int32

// Converts an int to its Q16 representation. Values outside
// [MinIntQ16, MaxIntQ16] are resolved by the overflow policy.
func Q16FromInt(value int) Q16 {
	return Q16(capI32(int64(value) << 16))
}

// Converts a float64 to the nearest Q16, resolving ties through the
// rounding policy. NaN converts to zero; infinites and values beyond
// [MinFloat64Q16, MaxFloat64Q16] are resolved by the overflow policy.
func Q16FromFloat64(value float64) Q16 {
	if math.IsNaN(value) { return 0 }
	neg := value < 0
	mag := math.Abs(value) * 65536.0
	if mag >= 9223372036854775808.0 { // can't stage through int64, resolve directly
		return Q16(capI32(signBack(1<<63-1, neg)))
	}
	whole := math.Floor(mag)
	if roundBumpFloat(mag-whole, neg) { whole += 1 }
	return Q16(capI32(signBack(uint64(whole), neg)))
}

// Returns whether the Q16 is a whole number or if it
// has a fractional part.
func (self Q16) IsWhole() bool {
	return self & 0xFFFF == 0
}

// Returns only the fractional part of the Q16.
// Negative values report a negative fractional part.
func (self Q16) Fract() Q16 {
	return self % 65536
}

func (self Q16) Floor() Q16 {
	return self & ^Q16(0xFFFF)
}

func (self Q16) Ceil() Q16 {
	return Q16(capI32(int64(self) + 0xFFFF)).Floor()
}

func (self Q16) ToFloat64() float64 {
	return float64(self)/65536.0
}

// Defaults to the compiled rounding policy. For the fastest possible
// conversion to int, use [Q16.ToIntFloor]() instead.
func (self Q16) ToInt() int {
	mag, neg := magOf(int64(self))
	return int(signBack(roundShiftMag(mag, 16, neg), neg))
}

// Fastest conversion from Q16 to int.
func (self Q16) ToIntFloor() int {
	return int(self >> 16)
}

func (self Q16) Add(other Q16) Q16 {
	return Q16(capI32(int64(self) + int64(other)))
}

func (self Q16) Sub(other Q16) Q16 {
	return Q16(capI32(int64(self) - int64(other)))
}

// Multiplies two Q16 values. The product of the underlying integers
// is exact in Q32 form; shifting it back down by 16 costs only the
// configured rounding error.
func (self Q16) Mul(other Q16) Q16 {
	product := int64(self)*int64(other)
	mag, neg := magOf(product)
	return Q16(capI32(signBack(roundShiftMag(mag, 16, neg), neg)))
}

// Divides two Q16 values. Division by zero returns the saturated
// extreme matching the sign of the dividend, under every policy.
// For a division that avoids the hardware divider entirely, see
// the newton subpackage.
func (self Q16) Div(other Q16) Q16 {
	if other == 0 {
		if self < 0 { return MinQ16 }
		return MaxQ16
	}
	numMag, numNeg := magOf(int64(self) << 16)
	denMag, denNeg := magOf(int64(other))
	neg := numNeg != denNeg
	quot := numMag / denMag
	if roundBump(numMag%denMag, denMag, neg) { quot++ }
	return Q16(capI32(signBack(quot, neg)))
}

func (self Q16) Abs() Q16 {
	if self >= 0 { return self }
	return self.Neg()
}

// Negates the value. Note that the minimum Q16 has no positive
// counterpart, so negating it is resolved by the overflow policy.
func (self Q16) Neg() Q16 {
	mag, neg := magOf(int64(self))
	return Q16(capI32(signBack(mag, !neg)))
}

// Returns a textual representation of the Q16 (e.g.: "2.5").
func (self Q16) String() string {
	return strconv.FormatFloat(self.ToFloat64(), 'f', -1, 64)
}
