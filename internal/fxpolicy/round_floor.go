//go:build fxfloor && !fxceil

package fxpolicy

const RoundingName = "floor"

// Rounding toward negative infinity: negative magnitudes grow when
// any bits were discarded, positive ones just truncate.
func RoundBump(rem, den uint64, neg bool) bool {
	return neg && rem != 0
}

func RoundBumpFloat(frac float64, neg bool) bool {
	return neg && frac != 0
}
