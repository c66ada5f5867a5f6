// fxpolicy implements the compile-time overflow and rounding policies
// shared by every package of the kernel. The policy of a binary is
// selected through build tags (fxwrap, fxtrap, fxtrunc, fxfloor,
// fxceil), never at run time, so that replays of recorded inputs stay
// bit-identical: two builds with the same tags produce the same bits
// on every architecture.
//
// The package only deals in widened magnitudes. Callers compute exact
// wide results, split them into magnitude and sign, and come here to
// narrow them back into their storage format. Keeping that final step
// in one place is what lets a single build tag change the behavior of
// the whole kernel consistently.
package fxpolicy

// Magnitude and sign of a signed 64-bit value. The unsigned negation
// trick keeps the minimum int64 from overflowing.
func MagOf(v int64) (uint64, bool) {
	if v >= 0 { return uint64(v), false }
	return -uint64(v), true
}

func SignBack(mag uint64, neg bool) int64 {
	if neg { return -int64(mag) }
	return int64(mag)
}

// Shifts a magnitude right by sh bits, resolving the dropped bits
// through the active rounding policy. The sign is needed because
// floor and ceil round negative values in opposite directions.
func RoundShiftMag(mag uint64, sh uint, neg bool) uint64 {
	q := mag >> sh
	rem := mag & (1<<sh - 1)
	if RoundBump(rem, 1<<sh, neg) { q++ }
	return q
}
