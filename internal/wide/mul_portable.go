package wide

const mask32 = 1<<32 - 1

// mulPortable computes the 128-bit product on 32-bit limbs:
//
//	x*y = x1*y1<<64 + (x1*y0 + x0*y1)<<32 + x0*y0
//
// The low word is the wrapped 64-bit product; only the high word needs
// the cross-term carries.
func mulPortable(x, y uint64) (hi, lo uint64) {
	x0, x1 := x&mask32, x>>32
	y0, y1 := y&mask32, y>>32

	w0 := x0 * y0
	t := x1*y0 + w0>>32
	w1 := t & mask32
	w2 := t >> 32
	w1 += x0 * y1

	hi = x1*y1 + w2 + w1>>32
	lo = x * y
	return hi, lo
}
