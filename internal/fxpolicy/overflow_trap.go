//go:build fxtrap

package fxpolicy

const OverflowName = "trap"

// Trap policy: out-of-range results panic. Intended for debug builds
// hunting the exact call site of an overflow; release builds should
// use saturate or wrap instead. Division by zero still returns its
// sentinel without panicking.

func CapI8(v int64) int8 {
	if v > 0x7F || v < -0x7F-1 { panic("fixed point overflow") }
	return int8(v)
}

func CapI16(v int64) int16 {
	if v > 0x7FFF || v < -0x7FFF-1 { panic("fixed point overflow") }
	return int16(v)
}

func CapI32(v int64) int32 {
	if v > 0x7FFFFFFF || v < -0x7FFFFFFF-1 { panic("fixed point overflow") }
	return int32(v)
}

func CapI64(mag uint64, neg bool, over bool) int64 {
	if over { panic("fixed point overflow") }
	if neg {
		if mag > 1<<63 { panic("fixed point overflow") }
		return -int64(mag)
	}
	if mag > 1<<63-1 { panic("fixed point overflow") }
	return int64(mag)
}

func CapU16(mag uint64, neg bool, over bool) uint16 {
	if neg && mag != 0 { panic("fixed point underflow") }
	if over || mag > 0xFFFF { panic("fixed point overflow") }
	return uint16(mag)
}

func CapU32(mag uint64, neg bool, over bool) uint32 {
	if neg && mag != 0 { panic("fixed point underflow") }
	if over || mag > 0xFFFFFFFF { panic("fixed point overflow") }
	return uint32(mag)
}

func CapAdd64(a, b int64) int64 {
	sum := a + b
	if (a >= 0) == (b >= 0) && (sum >= 0) != (a >= 0) {
		panic("fixed point overflow")
	}
	return sum
}

func CapSub64(a, b int64) int64 {
	diff := a - b
	if (a >= 0) != (b >= 0) && (diff >= 0) != (a >= 0) {
		panic("fixed point overflow")
	}
	return diff
}
