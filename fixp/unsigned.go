package fixp

import "math"

import "github.com/avendel/qfx/longdiv"

// Unsigned fixed point type with an 8.8 split. Unsigned formats trade
// the sign for one extra integer bit; subtraction below zero is an
// underflow for them and resolves through the overflow policy.
type UQ8 uint16

func UQ8FromInt(value int) UQ8 {
	mag, neg := magOf(int64(value))
	return UQ8(capU16(mag<<8, neg, mag >= 1<<56))
}

func UQ8FromFloat64(value float64) UQ8 {
	if math.IsNaN(value) { return 0 }
	neg := value < 0
	mag := math.Abs(value) * 256.0
	if mag >= 9223372036854775808.0 {
		return UQ8(capU16(1<<63-1, neg, true))
	}
	whole := math.Floor(mag)
	if roundBumpFloat(mag-whole, neg) { whole += 1 }
	return UQ8(capU16(uint64(whole), neg, false))
}

func (self UQ8) ToFloat64() float64 {
	return float64(self)/256.0
}

func (self UQ8) ToInt() int {
	return int(roundShiftMag(uint64(self), 8, false))
}

func (self UQ8) Add(other UQ8) UQ8 {
	return UQ8(capU16(uint64(self)+uint64(other), false, false))
}

func (self UQ8) Sub(other UQ8) UQ8 {
	if self >= other { return UQ8(capU16(uint64(self-other), false, false)) }
	return UQ8(capU16(uint64(other-self), true, false))
}

func (self UQ8) Mul(other UQ8) UQ8 {
	product := uint64(self)*uint64(other)
	return UQ8(capU16(roundShiftMag(product, 8, false), false, false))
}

// Divides two UQ8 values through the shift-and-subtract divider.
// Division by zero returns the maximum value, under every policy.
func (self UQ8) Div(other UQ8) UQ8 {
	if other == 0 { return MaxUQ8 }
	quot, rem := longdiv.DivMod32(uint32(self)<<8, uint32(other))
	if roundBump(uint64(rem), uint64(other), false) { quot++ }
	return UQ8(capU16(uint64(quot), false, false))
}

// Identity: unsigned values are their own absolute value.
func (self UQ8) Abs() UQ8 { return self }

// Negation underflows for every value except zero, so this mostly
// exists to honor the policy: saturate yields 0, wrap yields the
// two's complement bits, trap panics.
func (self UQ8) Neg() UQ8 {
	return UQ8(capU16(uint64(self), self != 0, false))
}

// Unsigned fixed point type with a 16.16 split, the unsigned
// counterpart of [Q16].
type UQ16 uint32

func UQ16FromInt(value int) UQ16 {
	mag, neg := magOf(int64(value))
	return UQ16(capU32(mag<<16, neg, mag >= 1<<48))
}

func UQ16FromFloat64(value float64) UQ16 {
	if math.IsNaN(value) { return 0 }
	neg := value < 0
	mag := math.Abs(value) * 65536.0
	if mag >= 9223372036854775808.0 {
		return UQ16(capU32(1<<63-1, neg, true))
	}
	whole := math.Floor(mag)
	if roundBumpFloat(mag-whole, neg) { whole += 1 }
	return UQ16(capU32(uint64(whole), neg, false))
}

func (self UQ16) ToFloat64() float64 {
	return float64(self)/65536.0
}

func (self UQ16) ToInt() int {
	return int(roundShiftMag(uint64(self), 16, false))
}

func (self UQ16) Add(other UQ16) UQ16 {
	return UQ16(capU32(uint64(self)+uint64(other), false, false))
}

func (self UQ16) Sub(other UQ16) UQ16 {
	if self >= other { return UQ16(capU32(uint64(self-other), false, false)) }
	return UQ16(capU32(uint64(other-self), true, false))
}

func (self UQ16) Mul(other UQ16) UQ16 {
	product := uint64(self)*uint64(other)
	return UQ16(capU32(roundShiftMag(product, 16, false), false, false))
}

// Divides two UQ16 values. Division by zero returns the maximum
// value, under every policy.
func (self UQ16) Div(other UQ16) UQ16 {
	if other == 0 { return MaxUQ16 }
	num := uint64(self) << 16
	den := uint64(other)
	quot := num / den
	if roundBump(num%den, den, false) { quot++ }
	return UQ16(capU32(quot, false, false))
}

// Identity: unsigned values are their own absolute value.
func (self UQ16) Abs() UQ16 { return self }

// See [UQ8.Neg]; same policy-driven underflow semantics.
func (self UQ16) Neg() UQ16 {
	return UQ16(capU32(uint64(self), self != 0, false))
}
