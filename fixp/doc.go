// Replay determinism starts with the numbers themselves: floating
// point results drift between FPUs, compilers and optimization
// levels, so simulation state that must checksum identically on
// every machine has to be stored and computed as plain integers.
// That's what brings us to this subpackage.
//
// The fixp subpackage defines the Q-format family: fixed point types
// from the one-byte [Q4] up to the 64-bit [Q32], plus the unsigned
// [UQ8] and [UQ16] and the DSP-style [Q15] that the CORDIC engine
// emits. Each format carries the full conversion and arithmetic set,
// with out-of-range results resolved by the compile-time
// [OverflowPolicy] and discarded bits by the compile-time
// [RoundingPolicy]. The 8 and 16 bit formats divide through the
// longdiv subpackage, like targets without a hardware divider would;
// [Q32] stages its products and quotients through 128 bits via the
// fxbits subpackage.
//
// Other fixed point Golang packages tend to target font metrics and
// depend on [golang.org/x/image/math/fixed] instead; this subpackage
// interoperates with those through the conversions in compat.go while
// keeping the arithmetic policies the kernel needs.
package fixp
