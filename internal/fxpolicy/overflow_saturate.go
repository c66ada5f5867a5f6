//go:build !fxwrap && !fxtrap

package fxpolicy

const OverflowName = "saturate"

// Default overflow policy: out-of-range results clamp to the nearest
// representable extreme. Each helper narrows an already computed wide
// result down to the target storage width.

func CapI8(v int64) int8 {
	if v > 0x7F { return 0x7F }
	if v < -0x7F-1 { return -0x7F - 1 }
	return int8(v)
}

func CapI16(v int64) int16 {
	if v > 0x7FFF { return 0x7FFF }
	if v < -0x7FFF-1 { return -0x7FFF - 1 }
	return int16(v)
}

func CapI32(v int64) int32 {
	if v > 0x7FFFFFFF { return 0x7FFFFFFF }
	if v < -0x7FFFFFFF-1 { return -0x7FFFFFFF - 1 }
	return int32(v)
}

// The 64-bit case receives sign-magnitude form because its inputs
// come from 128-bit intermediates; over marks magnitudes that no
// longer fit in the uint64 either.
func CapI64(mag uint64, neg bool, over bool) int64 {
	if neg {
		if over || mag > 1<<63 { return -0x7FFFFFFFFFFFFFFF - 1 }
		return -int64(mag) // mag == 1<<63 wraps to the minimum, which is exact here
	}
	if over || mag > 1<<63-1 { return 0x7FFFFFFFFFFFFFFF }
	return int64(mag)
}

func CapU16(mag uint64, neg bool, over bool) uint16 {
	if neg { return 0 }
	if over || mag > 0xFFFF { return 0xFFFF }
	return uint16(mag)
}

func CapU32(mag uint64, neg bool, over bool) uint32 {
	if neg { return 0 }
	if over || mag > 0xFFFFFFFF { return 0xFFFFFFFF }
	return uint32(mag)
}

func CapAdd64(a, b int64) int64 {
	sum := a + b
	if (a >= 0) == (b >= 0) && (sum >= 0) != (a >= 0) {
		if a >= 0 { return 0x7FFFFFFFFFFFFFFF }
		return -0x7FFFFFFFFFFFFFFF - 1
	}
	return sum
}

func CapSub64(a, b int64) int64 {
	diff := a - b
	if (a >= 0) != (b >= 0) && (diff >= 0) != (a >= 0) {
		if a >= 0 { return 0x7FFFFFFFFFFFFFFF }
		return -0x7FFFFFFFFFFFFFFF - 1
	}
	return diff
}
