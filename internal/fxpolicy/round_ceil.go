//go:build fxceil

package fxpolicy

const RoundingName = "ceil"

// Rounding toward positive infinity: mirror image of floor.
func RoundBump(rem, den uint64, neg bool) bool {
	return !neg && rem != 0
}

func RoundBumpFloat(frac float64, neg bool) bool {
	return !neg && frac != 0
}
