package fixp

import "github.com/avendel/qfx/internal/fxpolicy"

// Overflow and rounding behavior are compile-time choices, mirroring
// how the rest of the kernel pins every configuration knob at build
// time so replays stay bit-identical. The implementation lives in
// internal/fxpolicy, where the solver packages can share it and
// narrow their results exactly like this package does; the two
// functions below report which policies the current binary was built
// with, mostly so test suites and diagnostics can label their output.

// Returns the overflow policy compiled into the binary: "saturate"
// (the default), "wrap" (-tags fxwrap) or "trap" (-tags fxtrap).
//
// Division by zero is the one exception that ignores this setting:
// it always returns the saturated extreme matching the sign of the
// dividend, even under fxtrap, so callers never have to guard kernel
// calls with zero checks to stay fault-free.
func OverflowPolicy() string { return fxpolicy.OverflowName }

// Returns the rounding policy compiled into the binary: "nearest"
// (the default, ties away from zero), "truncate" (-tags fxtrunc),
// "floor" (-tags fxfloor) or "ceil" (-tags fxceil). The policy
// applies to every narrowing step: widened products shifted back
// down, divisions, float conversions and ToInt calls.
func RoundingPolicy() string { return fxpolicy.RoundingName }

// Local aliases keeping the arithmetic methods short.

func magOf(v int64) (uint64, bool)        { return fxpolicy.MagOf(v) }
func signBack(mag uint64, neg bool) int64 { return fxpolicy.SignBack(mag, neg) }

func roundShiftMag(mag uint64, sh uint, neg bool) uint64 {
	return fxpolicy.RoundShiftMag(mag, sh, neg)
}
func roundBump(rem, den uint64, neg bool) bool   { return fxpolicy.RoundBump(rem, den, neg) }
func roundBumpFloat(frac float64, neg bool) bool { return fxpolicy.RoundBumpFloat(frac, neg) }

func capI8(v int64) int8   { return fxpolicy.CapI8(v) }
func capI16(v int64) int16 { return fxpolicy.CapI16(v) }
func capI32(v int64) int32 { return fxpolicy.CapI32(v) }

func capI64(mag uint64, neg bool, over bool) int64  { return fxpolicy.CapI64(mag, neg, over) }
func capU16(mag uint64, neg bool, over bool) uint16 { return fxpolicy.CapU16(mag, neg, over) }
func capU32(mag uint64, neg bool, over bool) uint32 { return fxpolicy.CapU32(mag, neg, over) }

func capAdd64(a, b int64) int64 { return fxpolicy.CapAdd64(a, b) }
func capSub64(a, b int64) int64 { return fxpolicy.CapSub64(a, b) }
