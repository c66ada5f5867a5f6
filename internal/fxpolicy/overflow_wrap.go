//go:build fxwrap && !fxtrap

package fxpolicy

const OverflowName = "wrap"

// Wrap policy: results keep only their low bits, like raw two's
// complement hardware. Go defines both the narrowing conversions and
// the signed overflow used here, so behavior is identical everywhere.

func CapI8(v int64) int8   { return int8(v) }
func CapI16(v int64) int16 { return int16(v) }
func CapI32(v int64) int32 { return int32(v) }

func CapI64(mag uint64, neg bool, over bool) int64 {
	if neg { return -int64(mag) }
	return int64(mag)
}

func CapU16(mag uint64, neg bool, over bool) uint16 {
	if neg { return -uint16(mag) }
	return uint16(mag)
}

func CapU32(mag uint64, neg bool, over bool) uint32 {
	if neg { return -uint32(mag) }
	return uint32(mag)
}

func CapAdd64(a, b int64) int64 { return a + b }
func CapSub64(a, b int64) int64 { return a - b }
