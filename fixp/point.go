package fixp

import "image"
import "strconv"

// A pair of [Q16] coordinates. Commonly used to pass positions and
// velocities between the kernel and trajectory or rendering code.
type Point struct {
	X Q16
	Y Q16
}

// Creates a point from a pair of Q16 values.
func ValuesToPoint(x, y Q16) Point {
	return Point{ X: x, Y: y }
}

// Creates a point from a pair of ints.
func IntsToPoint(x, y int) Point {
	return Point{ X: Q16FromInt(x), Y: Q16FromInt(y) }
}

// Converts the point coordinates to ints and returns
// them as an [image.Point] stdlib value. The conversion
// will round the values if necessary, which could be
// problematic in some contexts.
func (self Point) ImagePoint() image.Point {
	x, y := self.ToInts()
	return image.Pt(x, y)
}

// Returns the point coordinates as a pair of ints.
// The conversion will round the values if necessary, which
// could be problematic in some contexts.
func (self Point) ToInts() (int, int) {
	return self.X.ToInt(), self.Y.ToInt()
}

// Returns the point coordinates as a pair of float64s.
func (self Point) ToFloat64s() (x, y float64) {
	return self.X.ToFloat64(), self.Y.ToFloat64()
}

// Returns the result of adding the given pair of values to
// the current point coordinates.
func (self Point) AddValues(x, y Q16) Point {
	self.X = self.X.Add(x)
	self.Y = self.Y.Add(y)
	return self
}

// Returns the result of adding the two points.
func (self Point) AddPoint(point Point) Point {
	self.X = self.X.Add(point.X)
	self.Y = self.Y.Add(point.Y)
	return self
}

// Returns the result of subtracting the given point.
func (self Point) SubPoint(point Point) Point {
	self.X = self.X.Sub(point.X)
	self.Y = self.Y.Sub(point.Y)
	return self
}

// Returns the result of scaling both coordinates by the given factor.
func (self Point) Scale(factor Q16) Point {
	self.X = self.X.Mul(factor)
	self.Y = self.Y.Mul(factor)
	return self
}

// Returns the dot product of the two points as vectors.
func (self Point) Dot(point Point) Q16 {
	return self.X.Mul(point.X).Add(self.Y.Mul(point.Y))
}

// Returns a textual representation of the point (e.g.: "(2.5, -4)").
func (self Point) String() string {
	x := strconv.FormatFloat(self.X.ToFloat64(), 'f', -1, 64)
	y := strconv.FormatFloat(self.Y.ToFloat64(), 'f', -1, 64)
	return "(" + x + ", " + y + ")"
}
