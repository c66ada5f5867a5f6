// Replay-safe arithmetic lives or dies by the guarantee that every
// build computes the exact same bits, so the few places where a CPU
// intrinsic would normally sneak in (count-leading-zeros, widening
// multiplication, narrowing division) are funneled through this
// subpackage instead.
//
// The fxbits subpackage exposes a single set of functions with two
// interchangeable backends selected at build time: the default one
// delegates to [math/bits], while the -tags fxportable one uses a
// de Bruijn sequence for bit lengths and 16x16 and 32x32 partial
// products for the wide operations, mirroring what targets without
// the corresponding hardware instructions have to do. Both backends
// return identical results for every input; the portable code is
// always compiled so the tests can verify that claim directly.
//
// Nothing here allocates, panics or depends on platform detection
// at run time.
package fxbits
