package decnum

import (
	"math/bits"
)

// u256 implements just enough of a 256-bit unsigned integer to hold the
// intermediate results of Decimal arithmetic: two aligned 96-bit mantissas,
// a 192-bit product, or a dividend scaled up by 10^46.
type u256 struct {
	hi, hm, lm, lo uint64
}

func u256From128(in U128) u256 {
	return u256{lm: in.hi, lo: in.lo}
}

func (u u256) isZero() bool {
	return u.hi|u.hm|u.lm|u.lo == 0
}

// asU128 truncates u to its low 128 bits.
func (u u256) asU128() U128 { return U128{hi: u.lm, lo: u.lo} }

// fitsMantissa reports whether u is no larger than the 96-bit Decimal
// mantissa ceiling.
func (u u256) fitsMantissa() bool {
	return u.hi == 0 && u.hm == 0 && u.lm <= maxMantissa.hi
}

func (u u256) cmp(n u256) int {
	if u.hi != n.hi {
		return cmpUint64(u.hi, n.hi)
	} else if u.hm != n.hm {
		return cmpUint64(u.hm, n.hm)
	} else if u.lm != n.lm {
		return cmpUint64(u.lm, n.lm)
	}
	return cmpUint64(u.lo, n.lo)
}

func cmpUint64(a, b uint64) int {
	if a > b {
		return 1
	} else if a < b {
		return -1
	}
	return 0
}

func (u u256) add(n u256) (v u256) {
	var c uint64
	v.lo, c = bits.Add64(u.lo, n.lo, 0)
	v.lm, c = bits.Add64(u.lm, n.lm, c)
	v.hm, c = bits.Add64(u.hm, n.hm, c)
	v.hi, _ = bits.Add64(u.hi, n.hi, c)
	return v
}

func (u u256) sub(n u256) (v u256) {
	var b uint64
	v.lo, b = bits.Sub64(u.lo, n.lo, 0)
	v.lm, b = bits.Sub64(u.lm, n.lm, b)
	v.hm, b = bits.Sub64(u.hm, n.hm, b)
	v.hi, _ = bits.Sub64(u.hi, n.hi, b)
	return v
}

// mul64 returns the low 256 bits of u * n.
func (u u256) mul64(n uint64) (v u256) {
	var c, h uint64
	h, v.lo = bits.Mul64(u.lo, n)

	c, v.lm = bits.Mul64(u.lm, n)
	var carry uint64
	v.lm, carry = bits.Add64(v.lm, h, 0)
	h = c + carry

	c, v.hm = bits.Mul64(u.hm, n)
	v.hm, carry = bits.Add64(v.hm, h, 0)
	h = c + carry

	v.hi = u.hi*n + h
	return v
}

// mulPow10 returns the low 256 bits of u * 10^n.
func (u u256) mulPow10(n int) u256 {
	for n >= len(pow10U64) {
		u = u.mul64(pow10U64[len(pow10U64)-1])
		n -= len(pow10U64) - 1
	}
	return u.mul64(pow10U64[n])
}

// canMul10 reports whether u * 10 is guaranteed not to overflow.
func (u u256) canMul10() bool {
	return u.hi < 0x1999999999999999
}

// quoRem64 divides u by a non-zero 64-bit divisor.
func (u u256) quoRem64(by uint64) (q u256, r uint64) {
	q.hi, r = bits.Div64(0, u.hi, by)
	q.hm, r = bits.Div64(r, u.hm, by)
	q.lm, r = bits.Div64(r, u.lm, by)
	q.lo, r = bits.Div64(r, u.lo, by)
	return q, r
}

func (u u256) leadingZeros() uint {
	if u.hi != 0 {
		return uint(bits.LeadingZeros64(u.hi))
	} else if u.hm != 0 {
		return uint(bits.LeadingZeros64(u.hm)) + 64
	} else if u.lm != 0 {
		return uint(bits.LeadingZeros64(u.lm)) + 128
	}
	return uint(bits.LeadingZeros64(u.lo)) + 192
}

func (u u256) lsh1() u256 {
	return u256{
		hi: (u.hi << 1) | (u.hm >> 63),
		hm: (u.hm << 1) | (u.lm >> 63),
		lm: (u.lm << 1) | (u.lo >> 63),
		lo: u.lo << 1,
	}
}

func (u u256) rsh1() u256 {
	return u256{
		hi: u.hi >> 1,
		hm: (u.hm >> 1) | (u.hi << 63),
		lm: (u.lm >> 1) | (u.hm << 63),
		lo: (u.lo >> 1) | (u.lm << 63),
	}
}

func (u u256) lsh(n uint) u256 {
	for ; n >= 64; n -= 64 {
		u = u256{hi: u.hm, hm: u.lm, lm: u.lo}
	}
	if n == 0 {
		return u
	}
	return u256{
		hi: (u.hi << n) | (u.hm >> (64 - n)),
		hm: (u.hm << n) | (u.lm >> (64 - n)),
		lm: (u.lm << n) | (u.lo >> (64 - n)),
		lo: u.lo << n,
	}
}

// quoRem128 divides u by a non-zero U128. Divisors that fit in 64 bits take
// the word-by-word path; the rest use binary long division.
func (u u256) quoRem128(by U128) (q, r u256) {
	if by.hi == 0 {
		var r64 uint64
		q, r64 = u.quoRem64(by.lo)
		return q, u256{lo: r64}
	}

	d := u256From128(by)
	if u.cmp(d) < 0 {
		return q, u
	}

	shift := int(d.leadingZeros() - u.leadingZeros())
	d = d.lsh(uint(shift))
	for {
		q = q.lsh1()
		if u.cmp(d) >= 0 {
			u = u.sub(d)
			q.lo |= 1
		}
		d = d.rsh1()

		if shift <= 0 {
			break
		}
		shift--
	}
	return q, u
}
