// The longdiv subpackage implements restoring binary long division:
// one quotient bit per iteration, using nothing beyond shifts,
// subtractions and comparisons. It is the universal fallback the
// rest of the kernel leans on where a hardware divider may not
// exist, and the reference that faster division paths (such as the
// Newton-Raphson reciprocal) are tested against. O(width) per call,
// never approximates, never faults.
package longdiv

// Divides a by b the long way: 32 restoring iterations producing one
// quotient bit each. Division by zero saturates to all ones rather
// than faulting.
func Div32(a, b uint32) uint32 {
	quot, _ := DivMod32(a, b)
	return quot
}

// Like [Div32], but also returning the remainder. For a division by
// zero the quotient saturates to all ones and the remainder is a.
func DivMod32(a, b uint32) (uint32, uint32) {
	if b == 0 { return 0xFFFFFFFF, a }

	var quot, rem uint32
	for i := 31; i >= 0; i-- {
		rem = rem<<1 | (a>>i)&1
		if rem >= b {
			rem -= b
			quot |= 1 << i
		}
	}
	return quot, rem
}

// Signed wrapper over [Div32]: divides magnitudes, then restores the
// sign. Division by zero returns the extreme matching the sign of a;
// the one overflowing quotient (minimum int32 divided by -1) comes
// back saturated.
func SDiv32(a, b int32) int32 {
	if b == 0 {
		if a < 0 { return -0x7FFFFFFF - 1 }
		return 0x7FFFFFFF
	}

	// unsigned negation sidesteps the minimum int32 overflow
	neg := false
	magA, magB := uint32(a), uint32(b)
	if a < 0 {
		magA = -magA
		neg = !neg
	}
	if b < 0 {
		magB = -magB
		neg = !neg
	}

	// magnitudes are at most 2^31, so the quotient always fits back
	// except for minimum int32 over -1, which saturates
	quot := Div32(magA, magB)
	if neg { return int32(-quot) }
	if quot > 0x7FFFFFFF { return 0x7FFFFFFF }
	return int32(quot)
}
