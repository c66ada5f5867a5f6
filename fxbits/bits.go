package fxbits

// Portable implementations shared by both backends. The fxportable
// build routes the public functions through these; the default build
// prefers math/bits but keeps this file compiled so the tests can
// cross-check the two backends against each other.

// Classic de Bruijn lookup for base-2 logarithms of 32-bit values.
var deBruijnTable = [32]byte{
	0, 9, 1, 10, 13, 21, 2, 29, 11, 14, 16, 18, 22, 25, 3, 30,
	8, 12, 20, 28, 15, 17, 24, 7, 19, 27, 23, 6, 26, 5, 4, 31,
}

const deBruijnMul = 0x07C4ACDD

func deBruijnLen32(x uint32) int {
	if x == 0 { return 0 }

	// smear the highest set bit downwards, then multiply by the
	// de Bruijn constant so the top five bits index the table
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	return int(deBruijnTable[(x*deBruijnMul)>>27]) + 1
}

func deBruijnLen64(x uint64) int {
	if x >= 1<<32 { return deBruijnLen32(uint32(x>>32)) + 32 }
	return deBruijnLen32(uint32(x))
}

// 32x32 -> 64 multiplication composed from 16x16 -> 32 partial
// products, the way targets without a widening multiplier do it.
// The recombination can't overflow: each partial product is at
// most 0xFFFE0001, which leaves room for the carried halves.
func splitMul32(a, b uint32) (hi, lo uint32) {
	a0, a1 := a&0xFFFF, a>>16
	b0, b1 := b&0xFFFF, b>>16
	p00  := a0*b0
	mid  := a0*b1 + (p00 >> 16)
	mid2 := a1*b0 + (mid & 0xFFFF)
	hi = a1*b1 + (mid >> 16) + (mid2 >> 16)
	lo = (mid2 << 16) | (p00 & 0xFFFF)
	return hi, lo
}

// 64x64 -> 128 multiplication from 32-bit limbs.
func limbMul64(x, y uint64) (hi, lo uint64) {
	const mask = 1<<32 - 1
	x0, x1 := x&mask, x>>32
	y0, y1 := y&mask, y>>32
	w0 := x0 * y0
	t  := x1*y0 + w0>>32
	w1, w2 := t&mask, t>>32
	w1 += x0 * y1
	hi = x1*y1 + w2 + w1>>32
	lo = x * y
	return hi, lo
}

// 128/64 -> 64 division in two 32-bit digit steps (Knuth's algorithm D).
// Requires hi < d; callers saturate beforehand.
func knuthDiv64(hi, lo, d uint64) uint64 {
	const (
		b2 = 1 << 32
		m2 = b2 - 1
	)

	s := uint(64 - deBruijnLen64(d))
	d <<= s
	vn1 := d >> 32
	vn0 := d & m2
	un32 := hi<<s | lo>>(64-s) // shift by 64 is defined as 0 in Go
	un10 := lo << s
	un1 := un10 >> 32
	un0 := un10 & m2

	q1 := un32 / vn1
	rhat := un32 - q1*vn1
	for q1 >= b2 || q1*vn0 > b2*rhat+un1 {
		q1--
		rhat += vn1
		if rhat >= b2 { break }
	}

	un21 := un32*b2 + un1 - q1*d
	q0 := un21 / vn1
	rhat = un21 - q0*vn1
	for q0 >= b2 || q0*vn0 > b2*rhat+un0 {
		q0--
		rhat += vn1
		if rhat >= b2 { break }
	}
	return q1*b2 + q0
}
