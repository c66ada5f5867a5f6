package fixp

// This file contains a fake test ensuring that the binary was built
// with the policy configuration the value expectations assume. The
// exact results asserted across this package (and the solver packages
// above it) encode the default saturate/nearest behavior; building
// with the fxwrap/fxtrap/fxtrunc/fxfloor/fxceil tags legitimately
// changes those results, and this test turns the resulting wall of
// mismatches into one clear message instead.

import "testing"

func TestPolicyConfiguration(t *testing.T) {
	overflow, rounding := OverflowPolicy(), RoundingPolicy()
	if overflow != "saturate" || rounding != "nearest" {
		str := "tests encode the default saturate/nearest expectations, but " +
			"this binary was compiled as %s/%s; the value mismatches that " +
			"follow are the policy change at work, not kernel bugs"
		t.Fatalf(str, overflow, rounding)
	}
}
