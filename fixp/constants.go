package fixp

// Minimum, maximum, one and half for each format.
const (
	MaxQ4 Q4 = +0x7F
	MinQ4 Q4 = -0x7F - 1
	OneQ4 Q4 = 1 << 4
	HalfQ4 Q4 = 1 << 3

	MaxQ8 Q8 = +0x7FFF
	MinQ8 Q8 = -0x7FFF - 1
	OneQ8 Q8 = 1 << 8
	HalfQ8 Q8 = 1 << 7

	// Q15 can't represent 1.0 exactly; its "one" is the customary
	// DSP convention of the largest positive value, 1 - 2^-15.
	MaxQ15 Q15 = +0x7FFF
	MinQ15 Q15 = -0x7FFF - 1
	OneQ15 Q15 = MaxQ15
	HalfQ15 Q15 = 1 << 14

	MaxQ16 Q16 = +0x7FFFFFFF
	MinQ16 Q16 = -0x7FFFFFFF - 1
	OneQ16 Q16 = 1 << 16
	HalfQ16 Q16 = 1 << 15

	MaxQ32 Q32 = +0x7FFFFFFFFFFFFFFF
	MinQ32 Q32 = -0x7FFFFFFFFFFFFFFF - 1
	OneQ32 Q32 = 1 << 32
	HalfQ32 Q32 = 1 << 31

	MaxUQ8 UQ8 = 0xFFFF
	MinUQ8 UQ8 = 0
	OneUQ8 UQ8 = 1 << 8
	HalfUQ8 UQ8 = 1 << 7

	MaxUQ16 UQ16 = 0xFFFFFFFF
	MinUQ16 UQ16 = 0
	OneUQ16 UQ16 = 1 << 16
	HalfUQ16 UQ16 = 1 << 15
)

// Integer and float64 bounds for the flagship format.
const (
	MaxIntQ16 int = +32767
	MinIntQ16 int = -32768
	MaxFloat64Q16 float64 = +32767.99998474121
	MinFloat64Q16 float64 = -32768
	DeltaQ16 float64 = 0.0000152587890625 // 1.0/65536.0
)

// Master copies of the irrational constants in Q2.62, the highest
// precision a uint64 can hold with room for the two integer bits
// that π and e need. Every per-format constant below derives from
// these through [ConstFrac], so all formats agree on the shared
// value down to their last bit.
const (
	PiQ62 uint64 = 0xC90FDAA22168C235
	EQ62 uint64 = 0xADF85458A2BB4A9B
	Sqrt2Q62 uint64 = 0x5A827999FCEF3242
	Ln2Q62 uint64 = 0x2C5C85FDF473DE6B
)

// Derives a fixed point constant with the given fractional bit count
// from one of the Q2.62 masters, rounding to nearest. Fractional bit
// counts above 62 are not supported and return the master unchanged.
func ConstFrac(master uint64, fracBits uint) int64 {
	if fracBits >= 62 { return int64(master) }
	shift := 62 - fracBits
	return int64((master + 1<<(shift-1)) >> shift)
}

// Pi derives π with the given fractional bit count. For example,
// Pi(16) is π as a Q16.16 value.
func Pi(fracBits uint) int64 { return ConstFrac(PiQ62, fracBits) }

// E derives Euler's number with the given fractional bit count.
func E(fracBits uint) int64 { return ConstFrac(EQ62, fracBits) }

// Sqrt2 derives the square root of two with the given fractional
// bit count.
func Sqrt2(fracBits uint) int64 { return ConstFrac(Sqrt2Q62, fracBits) }

// Ln2 derives the natural logarithm of two with the given fractional
// bit count.
func Ln2(fracBits uint) int64 { return ConstFrac(Ln2Q62, fracBits) }

// Pre-derived constants for the two formats that see the most use.
// Each one equals ConstFrac of its master, the tests keep us honest.
const (
	PiQ16 Q16 = 205887
	EQ16 Q16 = 178145
	Sqrt2Q16 Q16 = 92682
	Ln2Q16 Q16 = 45426

	PiQ32 Q32 = 13493037705
	EQ32 Q32 = 11674931555
	Sqrt2Q32 Q32 = 6074001000
	Ln2Q32 Q32 = 2977044472
)
