package fixp

import "math"

import "github.com/avendel/qfx/longdiv"

// The smallest format of the family: a 3.4 split on a single byte.
// Mostly useful as the wire form of coarse quantities, or on targets
// where even 16-bit arithmetic has a cost.
type Q4 int8

func Q4FromInt(value int) Q4 {
	return Q4(capI8(int64(value) << 4))
}

func Q4FromFloat64(value float64) Q4 {
	if math.IsNaN(value) { return 0 }
	neg := value < 0
	mag := math.Abs(value) * 16.0
	if mag >= 9223372036854775808.0 {
		return Q4(capI8(signBack(1<<63-1, neg)))
	}
	whole := math.Floor(mag)
	if roundBumpFloat(mag-whole, neg) { whole += 1 }
	return Q4(capI8(signBack(uint64(whole), neg)))
}

func (self Q4) ToFloat64() float64 {
	return float64(self)/16.0
}

func (self Q4) ToInt() int {
	mag, neg := magOf(int64(self))
	return int(signBack(roundShiftMag(mag, 4, neg), neg))
}

func (self Q4) Add(other Q4) Q4 {
	return Q4(capI8(int64(self) + int64(other)))
}

func (self Q4) Sub(other Q4) Q4 {
	return Q4(capI8(int64(self) - int64(other)))
}

func (self Q4) Mul(other Q4) Q4 {
	product := int64(self)*int64(other)
	mag, neg := magOf(product)
	return Q4(capI8(signBack(roundShiftMag(mag, 4, neg), neg)))
}

// Divides two Q4 values through the shift-and-subtract divider.
// Division by zero returns the saturated extreme matching the sign
// of the dividend, under every policy.
func (self Q4) Div(other Q4) Q4 {
	if other == 0 {
		if self < 0 { return MinQ4 }
		return MaxQ4
	}
	numMag, numNeg := magOf(int64(self) << 4)
	denMag, denNeg := magOf(int64(other))
	neg := numNeg != denNeg
	quot, rem := longdiv.DivMod32(uint32(numMag), uint32(denMag))
	if roundBump(uint64(rem), denMag, neg) { quot++ }
	return Q4(capI8(signBack(uint64(quot), neg)))
}

func (self Q4) Abs() Q4 {
	if self >= 0 { return self }
	return self.Neg()
}

func (self Q4) Neg() Q4 {
	mag, neg := magOf(int64(self))
	return Q4(capI8(signBack(mag, !neg)))
}
