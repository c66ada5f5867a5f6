//go:build fxtrunc && !fxfloor && !fxceil

package fxpolicy

const RoundingName = "truncate"

// Truncation never bumps: discarded bits are simply dropped,
// rounding every value toward zero.
func RoundBump(rem, den uint64, neg bool) bool {
	return false
}

func RoundBumpFloat(frac float64, neg bool) bool {
	return false
}
