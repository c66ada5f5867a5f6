package fixp

import "math"

import "github.com/avendel/qfx/longdiv"

// Fixed point type with a 7.8 split on 16 bits. A good fit for
// cheap per-cell quantities where range beyond [-128, 128) is
// never needed and memory is tight.
type Q8 int16

func Q8FromInt(value int) Q8 {
	return Q8(capI16(int64(value) << 8))
}

func Q8FromFloat64(value float64) Q8 {
	if math.IsNaN(value) { return 0 }
	neg := value < 0
	mag := math.Abs(value) * 256.0
	if mag >= 9223372036854775808.0 {
		return Q8(capI16(signBack(1<<63-1, neg)))
	}
	whole := math.Floor(mag)
	if roundBumpFloat(mag-whole, neg) { whole += 1 }
	return Q8(capI16(signBack(uint64(whole), neg)))
}

func (self Q8) ToFloat64() float64 {
	return float64(self)/256.0
}

func (self Q8) ToInt() int {
	mag, neg := magOf(int64(self))
	return int(signBack(roundShiftMag(mag, 8, neg), neg))
}

func (self Q8) Add(other Q8) Q8 {
	return Q8(capI16(int64(self) + int64(other)))
}

func (self Q8) Sub(other Q8) Q8 {
	return Q8(capI16(int64(self) - int64(other)))
}

func (self Q8) Mul(other Q8) Q8 {
	product := int64(self)*int64(other)
	mag, neg := magOf(product)
	return Q8(capI16(signBack(roundShiftMag(mag, 8, neg), neg)))
}

// Divides two Q8 values through the shift-and-subtract divider, the
// same path an 8/16-bit target without hardware division would take.
// Division by zero returns the saturated extreme matching the sign
// of the dividend, under every policy.
func (self Q8) Div(other Q8) Q8 {
	if other == 0 {
		if self < 0 { return MinQ8 }
		return MaxQ8
	}
	numMag, numNeg := magOf(int64(self) << 8)
	denMag, denNeg := magOf(int64(other))
	neg := numNeg != denNeg
	quot, rem := longdiv.DivMod32(uint32(numMag), uint32(denMag))
	if roundBump(uint64(rem), denMag, neg) { quot++ }
	return Q8(capI16(signBack(uint64(quot), neg)))
}

func (self Q8) Abs() Q8 {
	if self >= 0 { return self }
	return self.Neg()
}

func (self Q8) Neg() Q8 {
	mag, neg := magOf(int64(self))
	return Q8(capI16(signBack(mag, !neg)))
}
