//go:build !fxtrunc && !fxfloor && !fxceil

package fxpolicy

const RoundingName = "nearest"

// Reports whether a truncated magnitude must be bumped one step away
// from zero. The discarded part of the value is rem out of den; rem
// is always smaller than den. Ties round away from zero.
func RoundBump(rem, den uint64, neg bool) bool {
	return rem >= den-rem // rem*2 >= den, written overflow-safe
}

// Float flavor of [RoundBump] for conversions: frac is the discarded
// fractional part of the scaled magnitude, in [0, 1).
func RoundBumpFloat(frac float64, neg bool) bool {
	return frac >= 0.5
}
