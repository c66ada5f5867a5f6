package fixp

import "golang.org/x/image/math/fixed"

// Interop with [golang.org/x/image/math/fixed], whose 26.6 values are
// the lingua franca of Golang font and rasterization code. Rendering
// sits outside the kernel, but positions computed here in Q16 often
// end up as 26.6 pen coordinates, so the bridge lives in this package
// rather than being reimplemented downstream.

// Converts a [fixed.Int26_6] to Q16. The 26.6 form has ten fewer
// fractional bits but eleven more integer ones, so values beyond the
// Q16 range resolve through the overflow policy.
func FromInt26_6(value fixed.Int26_6) Q16 {
	return Q16(capI32(int64(value) << 10))
}

// Converts the Q16 to a [fixed.Int26_6], resolving the ten dropped
// fractional bits through the rounding policy. Never overflows.
func (self Q16) ToInt26_6() fixed.Int26_6 {
	mag, neg := magOf(int64(self))
	return fixed.Int26_6(signBack(roundShiftMag(mag, 10, neg), neg))
}

// Converts a [fixed.Int52_12] to Q16. Values beyond the Q16 range
// resolve through the overflow policy.
func FromInt52_12(value fixed.Int52_12) Q16 {
	mag, neg := magOf(int64(value))
	return Q16(capI32(capI64(mag<<4, neg, mag >= 1<<60)))
}

// Converts the Q16 to a [fixed.Int52_12], resolving the four dropped
// fractional bits through the rounding policy. Never overflows.
func (self Q16) ToInt52_12() fixed.Int52_12 {
	mag, neg := magOf(int64(self))
	return fixed.Int52_12(signBack(roundShiftMag(mag, 4, neg), neg))
}

// Converts a [fixed.Int52_12] to Q32, the wide to wide pairing. The
// 52.12 form has twenty more integer bits, so values beyond the Q32
// range resolve through the overflow policy.
func Q32FromInt52_12(value fixed.Int52_12) Q32 {
	mag, neg := magOf(int64(value))
	return Q32(capI64(mag<<20, neg, mag > 1<<43))
}

// Converts the Q32 to a [fixed.Int52_12], resolving the twenty
// dropped fractional bits through the rounding policy. Never
// overflows.
func (self Q32) ToInt52_12() fixed.Int52_12 {
	mag, neg := magOf(int64(self))
	return fixed.Int52_12(signBack(roundShiftMag(mag, 20, neg), neg))
}

// Converts a [fixed.Point26_6] to a [Point].
func PointFromFixed(point fixed.Point26_6) Point {
	return Point{ X: FromInt26_6(point.X), Y: FromInt26_6(point.Y) }
}

// Converts the point to a [fixed.Point26_6].
func (self Point) ToFixedPoint26_6() fixed.Point26_6 {
	return fixed.Point26_6{ X: self.X.ToInt26_6(), Y: self.Y.ToInt26_6() }
}
