package fixp

import "math"

import "github.com/avendel/qfx/longdiv"

// Fixed point type with 15 fractional bits on 16 bits, covering
// [-1, 1). This is the classic DSP sample format and what the
// CORDIC engine emits for sine and cosine: the whole useful range
// of those functions fits with maximum resolution.
//
// Q15 can't represent 1.0 itself; [OneQ15] is the saturated
// 1 - 2^-15 by the usual convention, so multiplying by it loses
// up to one unit instead of being a perfect identity.
type Q15 int16

func Q15FromInt(value int) Q15 {
	return Q15(capI16(int64(value) << 15))
}

func Q15FromFloat64(value float64) Q15 {
	if math.IsNaN(value) { return 0 }
	neg := value < 0
	mag := math.Abs(value) * 32768.0
	if mag >= 9223372036854775808.0 {
		return Q15(capI16(signBack(1<<63-1, neg)))
	}
	whole := math.Floor(mag)
	if roundBumpFloat(mag-whole, neg) { whole += 1 }
	return Q15(capI16(signBack(uint64(whole), neg)))
}

func (self Q15) ToFloat64() float64 {
	return float64(self)/32768.0
}

func (self Q15) ToInt() int {
	mag, neg := magOf(int64(self))
	return int(signBack(roundShiftMag(mag, 15, neg), neg))
}

func (self Q15) Add(other Q15) Q15 {
	return Q15(capI16(int64(self) + int64(other)))
}

func (self Q15) Sub(other Q15) Q15 {
	return Q15(capI16(int64(self) - int64(other)))
}

func (self Q15) Mul(other Q15) Q15 {
	product := int64(self)*int64(other)
	mag, neg := magOf(product)
	return Q15(capI16(signBack(roundShiftMag(mag, 15, neg), neg)))
}

// Divides two Q15 values through the shift-and-subtract divider.
// Division by zero returns the saturated extreme matching the sign
// of the dividend, under every policy.
func (self Q15) Div(other Q15) Q15 {
	if other == 0 {
		if self < 0 { return MinQ15 }
		return MaxQ15
	}
	numMag, numNeg := magOf(int64(self) << 15)
	denMag, denNeg := magOf(int64(other))
	neg := numNeg != denNeg
	quot, rem := longdiv.DivMod32(uint32(numMag), uint32(denMag))
	if roundBump(uint64(rem), denMag, neg) { quot++ }
	return Q15(capI16(signBack(uint64(quot), neg)))
}

func (self Q15) Abs() Q15 {
	if self >= 0 { return self }
	return self.Neg()
}

func (self Q15) Neg() Q15 {
	mag, neg := magOf(int64(self))
	return Q15(capI16(signBack(mag, !neg)))
}
