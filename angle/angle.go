// angle defines binary angle types, also known as "brads" or binary
// radians. A brad angle stores the fraction of a full turn directly in
// the bits of a fixed width integer: with [Brad16], one full turn
// equals 2^16 counts, so a quarter turn is 0x4000 and one count is
// 360/65536 degrees.
//
// The payoff of this representation is that angle arithmetic never
// needs an explicit modulo: adding, subtracting and negating angles
// with the native operators wraps around the circle exactly, because
// integer overflow *is* the wraparound. Zero and the modulus denote
// the same direction, 350° + 20° lands on 10°, and so on. This is why
// the types intentionally expose no Add or Sub methods; use + and -
// directly, they are already correct.
//
// Float conversions are provided for program boundaries (input
// parsing, display, interop with float based code). The rest of the
// kernel only ever consumes brads as integers.
package angle

import "math"

// Binary angle in 1/65536ths of a turn. This is the working angle
// size of the kernel, and the one the cordic package consumes.
type Brad16 int16

// Binary angle in 1/4294967296ths of a turn. Used when accumulating
// many small rotations where Brad16 granularity would drift.
type Brad32 int32

// Common angles. There's no full turn constant because a full turn
// wraps back to zero, which is the whole point of the representation.
const (
	Deg45Brad16 Brad16 = 0x2000
	RightBrad16 Brad16 = 0x4000
	HalfTurnBrad16 Brad16 = -0x8000 // 180° and -180° are the same direction

	Deg45Brad32 Brad32 = 0x20000000
	RightBrad32 Brad32 = 0x40000000
	HalfTurnBrad32 Brad32 = -0x80000000
)

// Converts a number of turns to the nearest [Brad16]. The value is
// reduced modulo one turn first, so any finite float is acceptable.
// NaN and infinities convert to zero.
func FromTurns(turns float64) Brad16 {
	turns = math.Mod(turns, 1.0)
	if math.IsNaN(turns) { return 0 }
	scaled := turns*65536.0
	whole := math.Floor(scaled)
	if scaled - whole >= 0.5 { whole += 1 }
	return Brad16(int32(whole))
}

// Converts an angle in degrees to the nearest [Brad16].
// See [FromTurns] for the handling of non-finite values.
func FromDegrees(degrees float64) Brad16 {
	return FromTurns(degrees/360.0)
}

// Converts an angle in radians to the nearest [Brad16].
// See [FromTurns] for the handling of non-finite values.
func FromRadians(radians float64) Brad16 {
	return FromTurns(radians/(2*math.Pi))
}

// Converts a whole number of degrees to the nearest [Brad16] using
// integer arithmetic only. Out of range degrees wrap around the
// circle, so DegreesToBrad16(360) == 0 and DegreesToBrad16(-90) ==
// DegreesToBrad16(270).
func DegreesToBrad16(degrees int) Brad16 {
	scaled := degrees*8192 // 65536/360 == 8192/45
	if scaled >= 0 { return Brad16((scaled + 22)/45) }
	return Brad16((scaled - 22)/45)
}

// Returns the angle as a fraction of a full turn, in [-0.5, 0.5).
func (self Brad16) ToTurns() float64 {
	return float64(self)/65536.0
}

// Returns the angle in degrees, in [-180, 180).
func (self Brad16) ToDegrees() float64 {
	return self.ToTurns()*360.0
}

// Returns the angle in radians, in [-pi, pi).
func (self Brad16) ToRadians() float64 {
	return self.ToTurns()*(2*math.Pi)
}

// Returns the angle of opposite sign. Unlike the fixed point types,
// negation here is total: -HalfTurnBrad16 wraps back to itself, which
// is geometrically exact since 180° and -180° are the same direction.
func (self Brad16) Neg() Brad16 {
	return -self
}

// Returns the angle itself. Every Brad16 is already normalized, since
// all arithmetic wraps modulo 2^16; the method only exists so that
// code ported from degree or radian representations has somewhere
// explicit to hang that invariant.
func (self Brad16) Normalize() Brad16 {
	return self
}

// Widens the angle to [Brad32] resolution. Exact.
func (self Brad16) ToBrad32() Brad32 {
	return Brad32(self) << 16
}

// Converts a number of turns to the nearest [Brad32]. The value is
// reduced modulo one turn first. NaN and infinities convert to zero.
func FromTurns32(turns float64) Brad32 {
	turns = math.Mod(turns, 1.0)
	if math.IsNaN(turns) { return 0 }
	scaled := turns*4294967296.0
	whole := math.Floor(scaled)
	if scaled - whole >= 0.5 { whole += 1 }
	return Brad32(int64(whole))
}

// Converts an angle in degrees to the nearest [Brad32].
func FromDegrees32(degrees float64) Brad32 {
	return FromTurns32(degrees/360.0)
}

// Converts an angle in radians to the nearest [Brad32].
func FromRadians32(radians float64) Brad32 {
	return FromTurns32(radians/(2*math.Pi))
}

// Returns the angle as a fraction of a full turn, in [-0.5, 0.5).
func (self Brad32) ToTurns() float64 {
	return float64(self)/4294967296.0
}

// Returns the angle in degrees, in [-180, 180).
func (self Brad32) ToDegrees() float64 {
	return self.ToTurns()*360.0
}

// Returns the angle in radians, in [-pi, pi).
func (self Brad32) ToRadians() float64 {
	return self.ToTurns()*(2*math.Pi)
}

// Returns the angle of opposite sign. Total, like [Brad16.Neg].
func (self Brad32) Neg() Brad32 {
	return -self
}

// Returns the angle itself. See [Brad16.Normalize].
func (self Brad32) Normalize() Brad32 {
	return self
}

// Narrows the angle to [Brad16] resolution, rounding to the nearest
// count. Rounding past the top of the range wraps, consistently with
// everything else in this package.
func (self Brad32) ToBrad16() Brad16 {
	return Brad16((self + 0x8000) >> 16)
}
